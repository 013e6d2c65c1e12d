// Package execute runs yt-dlp commands whose output blobdl consumes itself.
package execute

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"blobdl/internal/failures"
	"blobdl/internal/runner"
	"blobdl/internal/utils/logging"

	"github.com/alessio/shellescape"
)

// ErrNoFormats is returned when yt-dlp printed nothing to stdout.
var ErrNoFormats = errors.New("no format information received")

// FetchFormats runs a format-listing command and returns its stdout. A
// non-zero exit is tolerated as long as some output arrived, since "-i" lets
// yt-dlp carry on past broken items. Errors yt-dlp reported are returned
// alongside the dump.
func FetchFormats(cmd *exec.Cmd) (string, []failures.DownloadError, error) {
	if cmd == nil {
		return "", nil, fmt.Errorf("%w: command is nil", runner.ErrSpawn)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.D(1, "Fetching formats: %s", shellescape.QuoteCommand(cmd.Args))
	runErr := cmd.Run()

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return "", nil, fmt.Errorf("%w: %s: %v", runner.ErrSpawn, cmd.Path, runErr)
	}

	var errs []failures.DownloadError
	for _, line := range strings.Split(stderr.String(), "\n") {
		if e, ok := failures.Classify(line); ok {
			errs = append(errs, e)
			logging.D(1, "Format listing error: %s", e)
		}
	}

	dump := stdout.String()
	if strings.TrimSpace(dump) == "" {
		if exitErr != nil {
			return "", errs, fmt.Errorf("%w: yt-dlp exited with code %d: %s",
				ErrNoFormats, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return "", errs, ErrNoFormats
	}
	if exitErr != nil {
		logging.D(1, "yt-dlp exited with code %d after printing formats", exitErr.ExitCode())
	}
	return dump, errs, nil
}
