// Package app runs blobdl: one interview and one download session per target.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"blobdl/internal/cfg"
	"blobdl/internal/cookies"
	"blobdl/internal/domain/consts"
	"blobdl/internal/failures"
	"blobdl/internal/parsing"
	"blobdl/internal/retry"
	"blobdl/internal/runner"
	"blobdl/internal/utils/logging"
	"blobdl/internal/utils/prompt"
	"blobdl/internal/wizard"
)

// App holds what every target of a run shares.
type App struct {
	Settings cfg.Settings
	Prompter prompt.Prompter
	Out      io.Writer
	Exporter *cookies.Exporter

	table  *failures.Table
	runner *runner.Runner
}

// New returns an App prompting on the terminal and echoing to stdout.
func New(s cfg.Settings) *App {
	return &App{
		Settings: s,
		Prompter: prompt.NewSurvey(),
		Out:      os.Stdout,
		Exporter: cookies.NewExporter(),
	}
}

// Run processes every target in order. Spawn failures, interrupts and
// aborted prompts stop the run; other failures are reported and the next
// target is processed.
func (a *App) Run(ctx context.Context) error {
	var errs []error
	for i, raw := range a.Settings.Targets {
		logging.I("Processing target %d of %d: %s", i+1, len(a.Settings.Targets), raw)

		res, err := a.Download(ctx, raw)
		if err != nil {
			if fatal(ctx, err) {
				return err
			}
			logging.E("Target %q failed: %v", raw, err)
			errs = append(errs, fmt.Errorf("%s: %w", raw, err))
			continue
		}
		report(raw, res)
	}
	return errors.Join(errs...)
}

// Download interviews the user about one target and downloads it.
func (a *App) Download(ctx context.Context, raw string) (retry.Result, error) {
	target, err := parsing.AnalyzeURL(raw)
	if err != nil {
		return retry.Result{}, err
	}
	if a.runner == nil {
		a.table = failures.DefaultTable()
		logging.D(2, "Classifying downloader errors against %d known messages", a.table.Len())
		a.runner = runner.New(a.Out)
	}

	common := a.Settings.Common
	if a.Settings.ExportBrowserCookies && common.CookieFile == "" && a.Exporter != nil {
		path, err := a.Exporter.Export(ctx, target.URL, os.TempDir())
		if err != nil {
			logging.W("Could not export browser cookies for %s: %v", target.Domain, err)
		} else if path != "" {
			common.CookieFile = path
			defer func() {
				if err := os.Remove(path); err != nil {
					logging.D(1, "Could not remove exported cookie file %q: %v", path, err)
				}
			}()
		}
	}

	w := wizard.New(a.Prompter, common, a.Settings.Structured)
	w.OutputDir = a.Settings.OutputDir

	dl, err := w.Assemble(ctx, target)
	if err != nil {
		return retry.Result{}, err
	}

	if dl.OutputDir != "" {
		if err := os.MkdirAll(dl.OutputDir, consts.PermsOutputDir); err != nil {
			return retry.Result{}, fmt.Errorf("failed to create output directory %q: %w", dl.OutputDir, err)
		}
	}

	s := &retry.Session{
		Runner: a.runner,
		Coordinator: &retry.Coordinator{
			Table:    a.table,
			Prompter: a.Prompter,
			Build:    dl.BuildForItem,
			Out:      a.Out,
		},
		Verbosity: a.Settings.Verbosity,
	}
	return s.Run(ctx, dl.Build(ctx))
}

func fatal(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, runner.ErrSpawn) ||
		errors.Is(err, prompt.ErrCanceled) ||
		errors.Is(err, context.Canceled)
}

func report(raw string, res retry.Result) {
	if len(res.Errors) == 0 {
		logging.S("Downloaded %s", raw)
		return
	}
	logging.W("Finished %s: %d error(s) reported, %d item(s) retried, %d error(s) remain",
		raw, len(res.Errors), res.Retried, len(res.Remaining))
}
