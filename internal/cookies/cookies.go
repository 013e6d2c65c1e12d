// Package cookies exports browser cookies for a target site into a Netscape
// cookies.txt that yt-dlp accepts through --cookies.
package cookies

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"blobdl/internal/domain/consts"
	"blobdl/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// FileName is the name of the exported cookie file.
const FileName = "blobdl-cookies.txt"

const netscapeHeader = "# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"

// ReadFunc reads cookies from the browsers present on the system. Browsers
// that cannot be read are skipped.
type ReadFunc func(filters ...kooky.Filter) []*kooky.Cookie

// Exporter writes the cookies of a site to disk.
type Exporter struct {
	Read ReadFunc
}

// NewExporter returns an Exporter reading every browser kooky supports.
func NewExporter() *Exporter {
	return &Exporter{Read: kooky.ReadCookies}
}

// Export writes the valid cookies of the target's registrable domain to
// dir/FileName and returns the path. When no cookie is found the returned
// path is empty and the error nil.
func (e *Exporter) Export(ctx context.Context, targetURL, dir string) (string, error) {
	domain, err := BaseDomain(targetURL)
	if err != nil {
		return "", fmt.Errorf("error extracting base domain in cookie export: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	found := e.Read(kooky.Valid, kooky.DomainHasSuffix(domain))
	if len(found) == 0 {
		logging.I("No cookies found for %s, proceeding without cookies", domain)
		return "", nil
	}
	logging.I("Found %d cookies for %s", len(found), domain)

	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, consts.PermsOutputDir); err != nil {
		return "", fmt.Errorf("failed to create cookie directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsCookieFile)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", path, err)
		}
	}()

	if err := WriteNetscape(f, found); err != nil {
		return "", fmt.Errorf("failed to write cookies to %q: %w", path, err)
	}
	logging.D(1, "Saved %d cookies to %s", len(found), path)
	return path, nil
}

// BaseDomain returns the registrable domain of rawURL ("music.youtube.com"
// yields "youtube.com").
func BaseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("no host in %q", rawURL)
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, nil
	}
	return domain, nil
}

// WriteNetscape writes cookies in the Netscape cookies.txt format, duplicates
// (same domain, path and name) collapsing to the last one.
func WriteNetscape(w io.Writer, cookies []*kooky.Cookie) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(netscapeHeader); err != nil {
		return err
	}

	for _, c := range dedupe(cookies) {
		domain := c.Domain
		if domain == "" {
			continue
		}

		prefix := ""
		if c.HttpOnly {
			prefix = "#HttpOnly_"
		}

		var expires int64
		if !c.Expires.IsZero() {
			expires = c.Expires.Unix()
		}

		path := c.Path
		if path == "" {
			path = "/"
		}

		if _, err := fmt.Fprintf(bw, "%s%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			prefix, domain, boolField(strings.HasPrefix(domain, ".")), path,
			boolField(c.Secure), expires, c.Name, c.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// dedupe keeps the last cookie per domain, path and name in first-seen order.
func dedupe(cookies []*kooky.Cookie) []*kooky.Cookie {
	index := make(map[string]int, len(cookies))
	out := make([]*kooky.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if c == nil {
			continue
		}
		key := c.Domain + "|" + c.Path + "|" + c.Name
		if i, ok := index[key]; ok {
			out[i] = c
			continue
		}
		index[key] = len(out)
		out = append(out, c)
	}
	return slices.Clip(out)
}

func boolField(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
