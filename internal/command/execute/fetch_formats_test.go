package execute_test

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"blobdl/internal/command/execute"
	"blobdl/internal/runner"
)

func TestFetchFormats(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	tests := []struct {
		name     string
		script   string
		wantDump string
		wantErrs int
		wantErr  error
	}{
		{
			name:     "clean",
			script:   `echo '{"id":"a"}'; echo '{"id":"b"}'`,
			wantDump: "{\"id\":\"a\"}\n{\"id\":\"b\"}\n",
		},
		{
			name:     "partial failure tolerated",
			script:   `echo '{"id":"a"}'; echo "ERROR: [youtube] b: Private video" >&2; exit 1`,
			wantDump: "{\"id\":\"a\"}\n",
			wantErrs: 1,
		},
		{
			name:     "nothing printed",
			script:   `echo "ERROR: Unable to download webpage" >&2; exit 1`,
			wantErrs: 1,
			wantErr:  execute.ErrNoFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dump, errs, err := execute.FetchFormats(exec.Command("sh", "-c", tt.script))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dump != tt.wantDump {
				t.Errorf("expected dump %q, got %q", tt.wantDump, dump)
			}
			if len(errs) != tt.wantErrs {
				t.Errorf("expected %d errors, got %d", tt.wantErrs, len(errs))
			}
		})
	}
}

func TestFetchFormatsMissingBinary(t *testing.T) {
	_, _, err := execute.FetchFormats(exec.Command("/nonexistent/yt-dlp", "-j"))
	if !errors.Is(err, runner.ErrSpawn) {
		t.Fatalf("expected ErrSpawn, got %v", err)
	}
	if !strings.Contains(err.Error(), "yt-dlp") {
		t.Fatalf("error should name the binary: %v", err)
	}
}
