// Package wizard interviews the user and assembles a download configuration.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"blobdl/internal/command/builder"
	"blobdl/internal/command/execute"
	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"
	"blobdl/internal/failures"
	"blobdl/internal/formats"
	"blobdl/internal/parsing"
	"blobdl/internal/utils/logging"
	"blobdl/internal/utils/prompt"
)

// ErrNoFormats is returned when no selectable format could be offered.
var ErrNoFormats = errors.New("no selectable formats")

// FetchFunc runs a format-listing command.
type FetchFunc func(cmd *exec.Cmd) (string, []failures.DownloadError, error)

// Wizard asks the questions needed to download one target.
type Wizard struct {
	Prompter prompt.Prompter
	Common   builder.Common

	// Structured selects "-j" JSON listings over legacy "-F" tables.
	Structured bool
	// OutputDir skips the output directory prompt when set.
	OutputDir string

	Fetch    FetchFunc
	LookPath func(file string) (string, error)
}

// New returns a Wizard that fetches formats with yt-dlp.
func New(p prompt.Prompter, common builder.Common, structured bool) *Wizard {
	return &Wizard{
		Prompter:   p,
		Common:     common,
		Structured: structured,
		Fetch:      execute.FetchFormats,
		LookPath:   exec.LookPath,
	}
}

// Assemble runs the interview for target.
func (w *Wizard) Assemble(ctx context.Context, target parsing.Target) (*builder.DownloadConfig, error) {
	media, err := w.askMedia()
	if err != nil {
		return nil, err
	}

	var sel formats.Selection
	if target.Playlist {
		sel, err = w.playlistSelection(ctx, target, media)
	} else {
		sel, err = w.videoSelection(ctx, target, media)
	}
	if err != nil {
		return nil, err
	}
	logging.D(1, "Selected %s for %s download", sel, media)

	dir, err := w.askOutputDir()
	if err != nil {
		return nil, err
	}

	cfg := &builder.DownloadConfig{
		Common:    w.Common,
		URL:       target.URL,
		Playlist:  target.Playlist,
		OutputDir: dir,
		Selection: sel,
		Media:     media,
	}

	if target.Playlist {
		if cfg.IncludeIndex, err = w.askIndexPreference(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (w *Wizard) askMedia() (enums.MediaKind, error) {
	kinds := []enums.MediaKind{enums.MediaVideo, enums.MediaAudioOnly, enums.MediaVideoOnly}
	labels := []string{consts.MediaVideoOption, consts.MediaAudioOnlyOption, consts.MediaVideoOnlyOption}

	idx, err := w.Prompter.SelectOne(consts.MediaPrompt, labels, 0)
	if err != nil {
		return enums.MediaVideo, err
	}
	return kinds[idx], nil
}

func (w *Wizard) askOutputDir() (string, error) {
	if w.OutputDir != "" {
		return w.OutputDir, nil
	}
	return w.Prompter.Input(consts.OutputDirPrompt, ".")
}

func (w *Wizard) askIndexPreference() (bool, error) {
	idx, err := w.Prompter.SelectOne(consts.IndexPrompt, []string{consts.IndexYesOption, consts.IndexNoOption}, 0)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// fetch runs the listing and logs what yt-dlp complained about.
func (w *Wizard) fetch(ctx context.Context, url string, noPlaylist bool) (string, error) {
	logging.I("Fetching available formats...")
	dump, errs, err := w.Fetch(w.Common.FormatsCommand(ctx, url, w.Structured, noPlaylist))
	for _, e := range errs {
		logging.D(1, "Format listing reported: %s", e)
	}
	if err != nil {
		return "", fmt.Errorf("fetching formats for %q: %w", url, err)
	}
	return dump, nil
}
