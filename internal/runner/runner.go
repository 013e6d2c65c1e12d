// Package runner executes yt-dlp, echoes its output according to the
// requested verbosity and collects every error line it prints.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"
	"blobdl/internal/failures"
	"blobdl/internal/utils/logging"

	"github.com/alessio/shellescape"
	"golang.org/x/sync/errgroup"
)

// ErrSpawn is returned when the downloader process could not be started.
var ErrSpawn = errors.New("failed to start downloader")

const maxLineBytes = 1 << 20

// Runner runs downloader commands one at a time.
type Runner struct {
	Out io.Writer
	mu  sync.Mutex
}

// New returns a Runner echoing to out (stdout when nil).
func New(out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{Out: out}
}

// Run starts cmd and blocks until both of its output streams are drained and
// it has exited. Every line containing the error marker becomes a
// DownloadError, in arrival order. A non-zero exit status is logged only.
func (r *Runner) Run(ctx context.Context, cmd *exec.Cmd, v enums.Verbosity) ([]failures.DownloadError, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: command is nil", ErrSpawn)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", ErrSpawn, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stderr pipe: %v", ErrSpawn, err)
	}

	logging.D(1, "Executing command: %s", shellescape.QuoteCommand(cmd.Args))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, cmd.Path, err)
	}

	lines := make(chan string)
	var g errgroup.Group
	for _, rd := range []io.Reader{stdout, stderr} {
		g.Go(func() error {
			return scanLines(rd, lines)
		})
	}

	readDone := make(chan error, 1)
	go func() {
		readDone <- g.Wait()
		close(lines)
	}()

	var errs []failures.DownloadError
	for line := range lines {
		if e, ok := failures.Classify(line); ok {
			errs = append(errs, e)
			logging.D(2, "Captured downloader error: %s", e)
			if v != enums.VerbosityQuiet {
				fmt.Fprintln(r.out(), consts.ColorRed+line+consts.ColorReset)
			}
			continue
		}
		r.echo(line, v)
	}

	if err := <-readDone; err != nil {
		logging.E("Error reading downloader output: %v", err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logging.D(1, "Downloader exited with code %d", exitErr.ExitCode())
		} else {
			logging.E("Downloader did not exit cleanly: %v", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return errs, err
	}
	return errs, nil
}

// echo prints a non-error line if the verbosity allows it.
func (r *Runner) echo(line string, v enums.Verbosity) {
	switch v {
	case enums.VerbosityQuiet:
		return
	case enums.VerbosityVerbose:
		fmt.Fprintln(r.out(), line)
	default:
		if strings.Contains(line, consts.ProgressMarker) {
			fmt.Fprintln(r.out(), line)
		}
	}
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// scanLines sends each line of rd to out. Lines longer than maxLineBytes are
// truncated and reading continues with the next line.
func scanLines(rd io.Reader, out chan<- string) error {
	br := bufio.NewReader(rd)
	var buf []byte
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			_, _ = io.Copy(io.Discard, rd)
			return err
		}

		if room := maxLineBytes - len(buf); room > 0 {
			buf = append(buf, chunk[:min(len(chunk), room)]...)
		}
		if more {
			continue
		}
		if len(buf) == maxLineBytes {
			logging.D(2, "Truncated downloader output line to %d bytes", maxLineBytes)
		}
		out <- strings.TrimRight(string(buf), "\r")
		buf = buf[:0]
	}
}
