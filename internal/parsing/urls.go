// Package parsing handles user-supplied targets and date values.
package parsing

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"blobdl/internal/utils/logging"

	"golang.org/x/net/publicsuffix"
)

// Target describes one URL handed to blobdl.
type Target struct {
	URL      string
	Domain   string // registrable domain, e.g. "youtube.com"
	Playlist bool
	// ItemIndex is the 1-based playlist position from "index=N", 0 when the
	// URL carries none.
	ItemIndex int
}

// Root returns which root of a format dump describes the requested item.
func (t Target) Root() int {
	return max(t.ItemIndex, 1)
}

// AnalyzeURL validates a target URL and classifies it.
func AnalyzeURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Target{}, fmt.Errorf("url passed in blank")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, fmt.Errorf("url %q is invalid: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Target{}, fmt.Errorf("url %q must use http or https", raw)
	}
	host := u.Hostname()
	if host == "" {
		return Target{}, fmt.Errorf("url %q has no host", raw)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		logging.D(1, "Could not derive registrable domain for %q: %v", host, err)
		domain = host
	}

	q := u.Query()
	t := Target{
		URL:      raw,
		Domain:   domain,
		Playlist: q.Get("list") != "" || strings.HasPrefix(u.Path, "/playlist"),
	}

	if idx := q.Get("index"); idx != "" {
		n, err := strconv.Atoi(idx)
		if err != nil || n < 1 {
			return Target{}, fmt.Errorf("url %q has invalid index %q", raw, idx)
		}
		t.ItemIndex = n
	}

	// A watch URL with a list parameter refers to one video inside a playlist.
	if q.Get("v") != "" {
		t.Playlist = false
	}

	return t, nil
}

// URLFileParser is used to parse URLs from a file.
type URLFileParser struct {
	Filepath string
	mu       sync.RWMutex
}

// NewURLFileParser returns an instance of a URLFileParser.
func NewURLFileParser(fpath string) *URLFileParser {
	return &URLFileParser{
		Filepath: fpath,
	}
}

// ParseURLs returns the URLs of a file in order, without duplicates.
//
// Users should put a single URL on each line in the file for proper parsing.
// Hashtags exclude lines (i.e. '# Comment').
func (up *URLFileParser) ParseURLs() ([]string, error) {
	up.mu.RLock()
	defer up.mu.RUnlock()

	f, err := os.Open(up.Filepath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("Failed to close file %q: %v", up.Filepath, err)
		}
	}()

	seen := make(map[string]struct{})
	var result []string
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		u := strings.TrimSpace(scanner.Text())
		if u == "" || strings.HasPrefix(u, "#") {
			continue
		}

		parsedURL, err := url.Parse(u)
		if err != nil {
			logging.E("URL %q is invalid: %v", u, err)
			continue
		}
		key := parsedURL.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
