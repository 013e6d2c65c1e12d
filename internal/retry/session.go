package retry

import (
	"context"
	"fmt"
	"os/exec"

	"blobdl/internal/domain/enums"
	"blobdl/internal/failures"
	"blobdl/internal/runner"
	"blobdl/internal/utils/logging"
)

// Result summarizes a download session.
type Result struct {
	Errors    []failures.DownloadError // errors of the first pass
	Retried   int                      // retry commands run
	Remaining []failures.DownloadError // errors of the retry pass, never retried
}

// Session drives one download: run, resolve retries, run the retries once.
type Session struct {
	Runner      *runner.Runner
	Coordinator *Coordinator
	Verbosity   enums.Verbosity
}

// Run executes cmd and, if it produced errors, the retries the user picked.
// Spawn failures abort the session.
func (s *Session) Run(ctx context.Context, cmd *exec.Cmd) (Result, error) {
	var res Result

	errs, err := s.Runner.Run(ctx, cmd, s.Verbosity)
	if err != nil {
		return res, err
	}
	res.Errors = errs

	if len(errs) == 0 {
		logging.D(1, "Command completed without errors")
		return res, nil
	}
	logging.I("yt-dlp reported %d error(s)", len(errs))

	cmds, err := s.Coordinator.Resolve(ctx, errs)
	if err != nil {
		return res, err
	}

	for i, retryCmd := range cmds {
		logging.I("Retrying item %d of %d", i+1, len(cmds))
		retryErrs, err := s.Runner.Run(ctx, retryCmd, s.Verbosity)
		res.Retried++
		if err != nil {
			return res, fmt.Errorf("retry %d: %w", i+1, err)
		}
		res.Remaining = append(res.Remaining, retryErrs...)
	}

	if len(res.Remaining) > 0 {
		logging.W("%d error(s) remain after retrying", len(res.Remaining))
		for _, e := range res.Remaining {
			logging.D(1, "Remaining error: %s", e)
		}
	} else if res.Retried > 0 {
		logging.S("All retried items completed")
	}
	return res, nil
}
