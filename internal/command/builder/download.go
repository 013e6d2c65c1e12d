// Package builder assembles yt-dlp invocations.
package builder

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"blobdl/internal/domain/command"
	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"
	"blobdl/internal/formats"
	"blobdl/internal/utils/logging"

	"github.com/alessio/shellescape"
)

// Common holds the flags shared by every yt-dlp invocation of a run.
type Common struct {
	Executable             string
	CookieSource           string // browser name for --cookies-from-browser
	CookieFile             string // Netscape cookies.txt, preferred over CookieSource
	Retries                string
	ExternalDownloader     string
	ExternalDownloaderArgs string
	RestrictFilenames      bool
}

// DownloadConfig is everything needed to download a target.
type DownloadConfig struct {
	Common

	URL          string
	Playlist     bool
	OutputDir    string
	Selection    formats.Selection
	Media        enums.MediaKind
	IncludeIndex bool
}

// Build returns the download command for the whole target.
func (c *DownloadConfig) Build(ctx context.Context) *exec.Cmd {
	args := c.Common.args()
	if c.Playlist {
		args = append(args, command.IgnoreErrors)
	} else {
		args = append(args, command.NoPlaylist)
	}
	args = append(args, command.Output, c.outputTemplate(c.Playlist && c.IncludeIndex))
	args = append(args, selectionArgs(c.Selection, c.Media)...)
	args = append(args, c.URL)

	return c.Common.command(ctx, args)
}

// BuildForItem returns a command downloading only the item with the given id,
// keeping the selection and output configuration of the batch. The playlist
// index prefix is dropped since a lone item has no index.
func (c *DownloadConfig) BuildForItem(ctx context.Context, itemID string) *exec.Cmd {
	args := c.Common.args()
	args = append(args, command.NoPlaylist)
	args = append(args, command.Output, c.outputTemplate(false))
	args = append(args, selectionArgs(c.Selection, c.Media)...)
	args = append(args, ItemURL(itemID))

	return c.Common.command(ctx, args)
}

// ItemURL returns the watch URL of a single item.
func ItemURL(itemID string) string {
	return fmt.Sprintf(consts.ItemURLTemplate, itemID)
}

func (c *DownloadConfig) outputTemplate(indexed bool) string {
	name := command.FilenameSyntax
	if indexed {
		name = command.IndexedFilename
	}
	if c.OutputDir == "" {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// args returns the flags common to all commands.
func (c *Common) args() []string {
	args := []string{command.Newline}

	switch {
	case c.CookieFile != "":
		args = append(args, command.CookiePath, c.CookieFile)
	case c.CookieSource != "":
		args = append(args, command.CookiesFromBrowser, c.CookieSource)
	}

	if c.Retries != "" {
		args = append(args, command.Retries, c.Retries)
	}
	if c.ExternalDownloader != "" {
		args = append(args, command.ExternalDLer, c.ExternalDownloader)
	}
	if c.ExternalDownloaderArgs != "" {
		args = append(args, command.ExternalDLArgs, c.ExternalDownloaderArgs)
	}
	if c.RestrictFilenames {
		args = append(args, command.RestrictFilenames)
	}
	return args
}

func (c *Common) executable() string {
	if c.Executable == "" {
		return command.YTDLP
	}
	return c.Executable
}

func (c *Common) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.executable(), args...)
	logging.D(1, "Built command: %s", shellescape.QuoteCommand(cmd.Args))
	return cmd
}
