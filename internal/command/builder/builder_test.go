package builder_test

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"blobdl/internal/command/builder"
	"blobdl/internal/domain/enums"
	"blobdl/internal/formats"
)

func argString(args []string) string {
	return strings.Join(args, " ")
}

func TestBuildSelection(t *testing.T) {
	tests := []struct {
		name  string
		sel   formats.Selection
		media enums.MediaKind
		want  string
	}{
		{"unique", formats.UniqueFormat("22"), enums.MediaVideo, "-f 22"},
		{"best video", formats.BestQuality(), enums.MediaVideo, "-f bestvideo*+bestaudio/best"},
		{"best audio", formats.BestQuality(), enums.MediaAudioOnly, "-f bestaudio/best"},
		{"worst video only", formats.WorstQuality(), enums.MediaVideoOnly, "-f worstvideo"},
		{"smallest", formats.SmallestSize(), enums.MediaVideo, "-S +size,+br,+res,+fps -f bv*+ba/b"},
		{"convert video", formats.ConvertTo("mkv"), enums.MediaVideo, "-f bv*+ba/b --recode-video mkv"},
		{"convert audio", formats.ConvertTo("mp3"), enums.MediaAudioOnly, "-f ba/b -x --audio-format mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := builder.DownloadConfig{
				URL:       "https://www.youtube.com/watch?v=abc",
				Selection: tt.sel,
				Media:     tt.media,
			}
			cmd := c.Build(context.Background())
			got := argString(cmd.Args)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("expected %q in %q", tt.want, got)
			}
			if cmd.Args[len(cmd.Args)-1] != c.URL {
				t.Fatalf("url must be the last argument, got %q", got)
			}
			if !strings.Contains(got, "--no-playlist") {
				t.Fatalf("single video download must not walk a playlist: %q", got)
			}
		})
	}
}

func TestBuildCommonFlags(t *testing.T) {
	c := builder.DownloadConfig{
		Common: builder.Common{
			Executable:             "/opt/yt-dlp",
			CookieSource:           "firefox",
			CookieFile:             "/tmp/cookies.txt",
			Retries:                "5",
			ExternalDownloader:     "aria2c",
			ExternalDownloaderArgs: "-x 4",
			RestrictFilenames:      true,
		},
		URL:          "https://www.youtube.com/playlist?list=PL1",
		Playlist:     true,
		OutputDir:    "/media",
		Selection:    formats.BestQuality(),
		IncludeIndex: true,
	}

	cmd := c.Build(context.Background())
	got := argString(cmd.Args[1:])

	for _, want := range []string{
		"--newline",
		"--cookies /tmp/cookies.txt",
		"--retries 5",
		"--external-downloader aria2c",
		"--external-downloader-args -x 4",
		"--restrict-filenames",
		"-i",
		"-o " + filepath.Join("/media", "%(playlist_index)s_%(title)s.%(ext)s"),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "--cookies-from-browser") {
		t.Errorf("a cookie file must take precedence over the browser, got %q", got)
	}
	if cmd.Args[0] != "/opt/yt-dlp" {
		t.Errorf("expected custom executable, got %q", cmd.Args[0])
	}
}

func TestBuildForItem(t *testing.T) {
	c := builder.DownloadConfig{
		URL:          "https://www.youtube.com/playlist?list=PL1",
		Playlist:     true,
		Selection:    formats.UniqueFormat("22"),
		IncludeIndex: true,
	}

	cmd := c.BuildForItem(context.Background(), "abc123")
	args := cmd.Args

	if args[len(args)-1] != "https://www.youtube.com/watch?v=abc123" {
		t.Fatalf("expected item url last, got %v", args)
	}
	if !slices.Contains(args, "--no-playlist") || slices.Contains(args, "-i") {
		t.Fatalf("single item command must not walk a playlist: %v", args)
	}
	if !slices.Contains(args, "%(title)s.%(ext)s") {
		t.Fatalf("expected unindexed output template: %v", args)
	}
	if !strings.Contains(argString(args), "-f 22") {
		t.Fatalf("selection must be reused: %v", args)
	}
}

func TestFormatsCommand(t *testing.T) {
	c := builder.Common{CookieSource: "chrome"}

	structured := argString(c.FormatsCommand(context.Background(), "https://x.test/v", true, false).Args[1:])
	if structured != "--cookies-from-browser chrome -j -i https://x.test/v" {
		t.Fatalf("unexpected structured listing %q", structured)
	}

	legacy := argString(c.FormatsCommand(context.Background(), "https://x.test/v", false, true).Args[1:])
	if legacy != "--cookies-from-browser chrome --no-playlist -F https://x.test/v" {
		t.Fatalf("unexpected legacy listing %q", legacy)
	}
}
