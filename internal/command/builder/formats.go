package builder

import (
	"context"
	"os/exec"

	"blobdl/internal/domain/command"
)

// FormatsCommand returns the command listing every format of every item of
// url. Structured listings use "-j -i" (one JSON root per item, skipping
// broken items); otherwise the legacy "-F" table is requested. noPlaylist
// restricts a watch URL carrying a list parameter to its own video.
func (c *Common) FormatsCommand(ctx context.Context, url string, structured, noPlaylist bool) *exec.Cmd {
	var args []string
	switch {
	case c.CookieFile != "":
		args = append(args, command.CookiePath, c.CookieFile)
	case c.CookieSource != "":
		args = append(args, command.CookiesFromBrowser, c.CookieSource)
	}

	if noPlaylist {
		args = append(args, command.NoPlaylist)
	}
	if structured {
		args = append(args, command.DumpJSON, command.IgnoreErrors, url)
	} else {
		args = append(args, command.ListFormats, url)
	}
	return c.command(ctx, args)
}
