// Package retry decides which failed items are worth another attempt and
// re-runs them exactly once.
package retry

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"

	"blobdl/internal/domain/consts"
	"blobdl/internal/failures"
	"blobdl/internal/utils/logging"
	"blobdl/internal/utils/prompt"

	"github.com/samber/lo"
)

// Fixed leading options of the retry prompt.
const (
	retryAllIndex  = 0
	retryNoneIndex = 1
	fixedOptions   = 2
)

// BuildFunc returns the command downloading a single item again.
type BuildFunc func(ctx context.Context, itemID string) *exec.Cmd

// Coordinator turns a run's errors into retry commands.
type Coordinator struct {
	Table    *failures.Table
	Prompter prompt.Prompter
	Build    BuildFunc
	Out      io.Writer
}

// Resolve reports unrecoverable errors, asks which recoverable ones to retry
// and returns one command per chosen item. No prompt is issued when nothing
// is recoverable.
func (c *Coordinator) Resolve(ctx context.Context, errs []failures.DownloadError) ([]*exec.Cmd, error) {
	recoverable, unrecoverable := failures.Partition(errs, c.Table)
	c.reportUnrecoverable(unrecoverable)

	if len(recoverable) == 0 {
		logging.D(1, "No recoverable errors among %d", len(errs))
		return nil, nil
	}

	options := make([]string, 0, fixedOptions+len(recoverable))
	options = append(options, consts.RetryAllOption, consts.RetryNoneOption)
	for _, e := range recoverable {
		options = append(options, e.String())
	}

	picked, err := c.Prompter.SelectMany(consts.RetryPrompt, options)
	if err != nil {
		return nil, fmt.Errorf("retry selection: %w", err)
	}
	fmt.Fprintln(c.out(), consts.DebugReportMsg)

	chosen := chooseErrors(picked, recoverable)
	return c.commands(ctx, chosen), nil
}

// chooseErrors maps prompt indices back to errors. "Retry all" wins over
// every other index, then "retry none" wins over the rest.
func chooseErrors(picked []int, recoverable []failures.DownloadError) []failures.DownloadError {
	picked = slices.Clone(picked)
	slices.Sort(picked)

	switch {
	case slices.Contains(picked, retryAllIndex):
		return recoverable
	case slices.Contains(picked, retryNoneIndex):
		return nil
	}

	var chosen []failures.DownloadError
	for _, idx := range lo.Uniq(picked) {
		i := idx - fixedOptions
		if i < 0 || i >= len(recoverable) {
			logging.D(1, "Ignoring out of range retry index %d", idx)
			continue
		}
		chosen = append(chosen, recoverable[i])
	}
	return chosen
}

// commands builds one command per distinct item id.
func (c *Coordinator) commands(ctx context.Context, chosen []failures.DownloadError) []*exec.Cmd {
	withID := lo.Filter(chosen, func(e failures.DownloadError, _ int) bool {
		if e.ItemID == "" {
			logging.W("Cannot retry %q: yt-dlp did not name the item", e.Message)
			return false
		}
		return true
	})
	unique := lo.UniqBy(withID, func(e failures.DownloadError) string { return e.ItemID })

	cmds := make([]*exec.Cmd, 0, len(unique))
	for _, e := range unique {
		cmds = append(cmds, c.Build(ctx, e.ItemID))
	}
	return cmds
}

func (c *Coordinator) reportUnrecoverable(errs []failures.DownloadError) {
	if len(errs) == 0 {
		return
	}
	out := c.out()
	fmt.Fprintln(out, consts.UnrecoverableHeader)
	for _, e := range errs {
		fmt.Fprintf(out, "   %s\n", e)
	}
}

func (c *Coordinator) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
