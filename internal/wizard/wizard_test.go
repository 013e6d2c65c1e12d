package wizard_test

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"testing"

	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"
	"blobdl/internal/failures"
	"blobdl/internal/formats"
	"blobdl/internal/parsing"
	"blobdl/internal/utils/prompt"
	"blobdl/internal/wizard"
)

func jsonItem(id string, formatIDs ...string) string {
	var fs []string
	for _, f := range formatIDs {
		res, acodec, vcodec := "1280x720", "mp4a", "avc1"
		if f == "140" || f == "251" {
			res, vcodec = "audio only", "none"
		}
		fs = append(fs, fmt.Sprintf(`{"format_id":%q,"ext":"mp4","resolution":%q,"vcodec":%q,"acodec":%q,"format_note":"n","filesize":1000,"tbr":100}`,
			f, res, vcodec, acodec))
	}
	return fmt.Sprintf(`{"id":%q,"title":"T","upload_date":"20240101","formats":[%s]}`, id, strings.Join(fs, ","))
}

type fakeFetch struct {
	dump string
	args []string
}

func (f *fakeFetch) fetch(cmd *exec.Cmd) (string, []failures.DownloadError, error) {
	f.args = cmd.Args
	return f.dump, nil, nil
}

func newWizard(p prompt.Prompter, f *fakeFetch, ffmpeg bool) *wizard.Wizard {
	w := wizard.New(p, builderCommon(), true)
	w.Fetch = f.fetch
	w.LookPath = func(string) (string, error) {
		if ffmpeg {
			return "/usr/bin/ffmpeg", nil
		}
		return "", exec.ErrNotFound
	}
	return w
}

func mustTarget(t *testing.T, raw string) parsing.Target {
	t.Helper()
	target, err := parsing.AnalyzeURL(raw)
	if err != nil {
		t.Fatalf("bad fixture url: %v", err)
	}
	return target
}

func TestPlaylistFlow(t *testing.T) {
	f := &fakeFetch{dump: jsonItem("a", "18", "22", "140") + "\n" + jsonItem("b", "22", "140", "251") + "\n"}
	p := &prompt.Scripted{
		One:    []int{0, 2, 1},
		Inputs: []string{"/media/out"},
	}

	cfg, err := newWizard(p, f, true).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/playlist?list=PL1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Selection != formats.UniqueFormat("22") || cfg.Media != enums.MediaVideo {
		t.Fatalf("unexpected selection %v / %v", cfg.Selection, cfg.Media)
	}
	if cfg.OutputDir != "/media/out" || cfg.IncludeIndex || !cfg.Playlist {
		t.Fatalf("unexpected config %+v", cfg)
	}

	offered := p.Shown[1]
	if len(offered) != 3 || offered[0] != consts.BestPerItemOption || offered[1] != consts.WorstPerItemOption {
		t.Fatalf("unexpected playlist options %v", offered)
	}
	if !slices.Contains(f.args, "-j") || slices.Contains(f.args, "--no-playlist") {
		t.Fatalf("unexpected listing command %v", f.args)
	}
	if p.Asked[len(p.Asked)-1] != consts.IndexPrompt {
		t.Fatalf("playlist flow must end with the index prompt, asked %v", p.Asked)
	}
}

func TestPlaylistSkipsMalformedLaterItems(t *testing.T) {
	f := &fakeFetch{dump: jsonItem("a", "22") + "\n{\"id\":\"broken\"}\n" + jsonItem("c", "22") + "\n"}
	p := &prompt.Scripted{One: []int{0, 2, 0}, Inputs: []string{""}}

	cfg, err := newWizard(p, f, true).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/playlist?list=PL1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Selection != formats.UniqueFormat("22") || cfg.OutputDir != "." || !cfg.IncludeIndex {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestPlaylistMalformedFirstItemFails(t *testing.T) {
	f := &fakeFetch{dump: "{\"id\":\"broken\"}\n" + jsonItem("b", "22") + "\n"}
	p := &prompt.Scripted{One: []int{0}}

	_, err := newWizard(p, f, true).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/playlist?list=PL1"))
	if !errors.Is(err, formats.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestVideoFlow(t *testing.T) {
	tests := []struct {
		name   string
		ffmpeg bool
		media  int
		pick   []int
		want   formats.Selection
	}{
		{name: "best", ffmpeg: true, pick: []int{0}, want: formats.BestQuality()},
		{name: "smallest", ffmpeg: false, pick: []int{1}, want: formats.SmallestSize()},
		{name: "convert audio", ffmpeg: true, media: 1, pick: []int{2, 0}, want: formats.ConvertTo("mp3")},
		{name: "format list without ffmpeg", ffmpeg: false, pick: []int{2, 0}, want: formats.UniqueFormat("22")},
		{name: "format list audio only", ffmpeg: true, media: 1, pick: []int{3, 0}, want: formats.UniqueFormat("140")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetch{dump: jsonItem("v", "22", "140") + "\n"}
			p := &prompt.Scripted{
				One:    append([]int{tt.media}, tt.pick...),
				Inputs: []string{"out"},
			}

			cfg, err := newWizard(p, f, tt.ffmpeg).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/watch?v=v&list=PL1"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Selection != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, cfg.Selection)
			}
			if cfg.Playlist || cfg.IncludeIndex {
				t.Fatalf("single video must not be a playlist download: %+v", cfg)
			}
			if slices.Contains(p.Asked, consts.IndexPrompt) {
				t.Fatalf("single video must not ask for the index preference")
			}
			offered := p.Shown[1]
			if slices.Contains(offered, consts.ConvertSingleOption) != tt.ffmpeg {
				t.Fatalf("convert option offered=%v with ffmpeg=%v", !tt.ffmpeg, tt.ffmpeg)
			}
		})
	}
}

func TestVideoFlowUsesPlaylistIndex(t *testing.T) {
	f := &fakeFetch{dump: jsonItem("first", "18") + "\n" + jsonItem("second", "22") + "\n"}
	p := &prompt.Scripted{One: []int{0, 2, 0}}

	w := newWizard(p, f, false)
	w.OutputDir = "preset"

	cfg, err := w.Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/watch?v=x&list=PL1&index=2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Selection != formats.UniqueFormat("22") || cfg.OutputDir != "preset" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if slices.Contains(f.args, "--no-playlist") {
		t.Fatalf("an explicit index needs the playlist listing: %v", f.args)
	}
	if slices.Contains(p.Asked, consts.OutputDirPrompt) {
		t.Fatalf("preset output dir must skip the prompt")
	}
}

func TestVideoFlowNoEligibleFormats(t *testing.T) {
	f := &fakeFetch{dump: jsonItem("v", "140") + "\n"}
	p := &prompt.Scripted{One: []int{2, 2}}

	_, err := newWizard(p, f, false).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/watch?v=v"))
	if !errors.Is(err, wizard.ErrNoFormats) {
		t.Fatalf("expected ErrNoFormats, got %v", err)
	}
}

func TestPlaylistSkipsItemsWithoutFormats(t *testing.T) {
	f := &fakeFetch{dump: jsonItem("a", "18", "22") + "\n" + jsonItem("live") + "\n" + jsonItem("c", "22") + "\n"}
	p := &prompt.Scripted{One: []int{0, 2, 1}, Inputs: []string{""}}

	cfg, err := newWizard(p, f, true).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/playlist?list=PL1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offered := p.Shown[1]; len(offered) != 3 {
		t.Fatalf("format 22 must be offered, got %q", offered)
	}
	if cfg.Selection != formats.UniqueFormat("22") {
		t.Fatalf("unexpected selection %v", cfg.Selection)
	}
}

func TestVideoFlowIndexMatchesPlaylistPosition(t *testing.T) {
	// Item 2 failed to list, so the second root describes item 3.
	item := func(id string, idx int, formatIDs ...string) string {
		return strings.Replace(jsonItem(id, formatIDs...), "{", fmt.Sprintf(`{"playlist_index":%d,`, idx), 1)
	}
	f := &fakeFetch{dump: item("first", 1, "18") + "\n" + item("third", 3, "22") + "\n"}
	p := &prompt.Scripted{One: []int{0, 2, 0}, Inputs: []string{""}}

	cfg, err := newWizard(p, f, false).Assemble(context.Background(), mustTarget(t, "https://www.youtube.com/watch?v=x&list=PL1&index=3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Selection != formats.UniqueFormat("22") {
		t.Fatalf("expected the format of item 3, got %v", cfg.Selection)
	}
}

func TestLegacyVideoFlowIndexKeepsEmptyItems(t *testing.T) {
	const (
		line18 = "18           mp4        640x360    360p  300k , avc1.42001E, mp4a.40.2"
		line22 = "22           mp4        1280x720   720p  468k , avc1.64001F, mp4a.40.2"
	)
	dump := "[youtube:tab] Downloading playlist\n" +
		consts.LegacyItemSeparator + " 1 of 3\nERROR: Private video\n" +
		consts.LegacyItemSeparator + " 2 of 3\n" + line18 + "\n" +
		consts.LegacyItemSeparator + " 3 of 3\n" + line22 + "\n"

	tests := []struct {
		name    string
		url     string
		want    formats.Selection
		wantErr error
	}{
		{name: "item after an empty one", url: "https://www.youtube.com/watch?v=x&list=PL1&index=2", want: formats.UniqueFormat("18")},
		{name: "last item", url: "https://www.youtube.com/watch?v=x&list=PL1&index=3", want: formats.UniqueFormat("22")},
		{name: "empty item", url: "https://www.youtube.com/watch?v=x&list=PL1&index=1", wantErr: wizard.ErrNoFormats},
		{name: "past the end", url: "https://www.youtube.com/watch?v=x&list=PL1&index=4", wantErr: formats.ErrNoSuchRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &prompt.Scripted{One: []int{0, 2, 0}, Inputs: []string{""}}
			w := wizard.New(p, builderCommon(), false)
			w.Fetch = (&fakeFetch{dump: dump}).fetch
			w.LookPath = func(string) (string, error) { return "", exec.ErrNotFound }

			cfg, err := w.Assemble(context.Background(), mustTarget(t, tt.url))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Selection != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, cfg.Selection)
			}
		})
	}
}
