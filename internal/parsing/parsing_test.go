package parsing

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestAnalyzeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Target
		wantErr bool
	}{
		{
			name: "single video",
			raw:  "https://www.youtube.com/watch?v=abc",
			want: Target{URL: "https://www.youtube.com/watch?v=abc", Domain: "youtube.com"},
		},
		{
			name: "playlist",
			raw:  "https://www.youtube.com/playlist?list=PL1",
			want: Target{URL: "https://www.youtube.com/playlist?list=PL1", Domain: "youtube.com", Playlist: true},
		},
		{
			name: "video inside playlist",
			raw:  "https://www.youtube.com/watch?v=abc&list=PL1&index=3",
			want: Target{URL: "https://www.youtube.com/watch?v=abc&list=PL1&index=3", Domain: "youtube.com", ItemIndex: 3},
		},
		{
			name: "surrounding whitespace",
			raw:  "  https://example.co.uk/v/1 ",
			want: Target{URL: "https://example.co.uk/v/1", Domain: "example.co.uk"},
		},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "ftp scheme", raw: "ftp://example.com/file", wantErr: true},
		{name: "no scheme", raw: "example.com/watch", wantErr: true},
		{name: "bad index", raw: "https://www.youtube.com/watch?v=abc&index=zero", wantErr: true},
		{name: "zero index", raw: "https://www.youtube.com/watch?v=abc&index=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnalyzeURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTargetRoot(t *testing.T) {
	if got := (Target{}).Root(); got != 1 {
		t.Errorf("no index: got root %d, want 1", got)
	}
	if got := (Target{ItemIndex: 4}).Root(); got != 4 {
		t.Errorf("index 4: got root %d, want 4", got)
	}
}

func TestHyphenateYyyyMmDd(t *testing.T) {
	tests := map[string]string{
		"20240102":   "2024-01-02",
		"2024-01-02": "2024-01-02",
		"2024 01 02": "2024-01-02",
		"2024":       "2024",
	}
	for in, want := range tests {
		if got := HyphenateYyyyMmDd(in); got != want {
			t.Errorf("HyphenateYyyyMmDd(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseUploadDate(t *testing.T) {
	got, err := ParseUploadDate("20231115")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got, err := ParseUploadDate(""); err != nil || !got.IsZero() {
		t.Fatalf("blank date: got %v, %v", got, err)
	}

	if _, err := ParseUploadDate("not a date"); err == nil {
		t.Fatal("expected an error for garbage input")
	}
}

func TestURLFileParser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "# my list\n" +
		"https://a.test/1\n" +
		"\n" +
		"  https://b.test/2  \n" +
		"https://a.test/1\n" +
		"#https://c.test/3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewURLFileParser(path).ParseURLs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://a.test/1", "https://b.test/2"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := NewURLFileParser(filepath.Join(t.TempDir(), "missing")).ParseURLs(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
