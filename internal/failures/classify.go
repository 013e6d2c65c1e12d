package failures

import (
	"fmt"
	"regexp"
	"strings"

	"blobdl/internal/domain/consts"
)

// reErrorLine splits "ERROR: [extractor] id: message" into its parts. The
// extractor tag and item id are both optional.
var (
	reErrorLine = regexp.MustCompile(`ERROR:\s*(?:\[([^\]]+)\]\s*)?(?:([\w-]+):\s+)?(.*)$`)
	reANSI      = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// DownloadError is one failure reported by yt-dlp for one item.
type DownloadError struct {
	Line      string // full original line
	Extractor string
	ItemID    string // empty when the line names no item
	Message   string
}

// String renders the error for reports and retry prompts.
func (e DownloadError) String() string {
	if e.ItemID == "" {
		return e.Message
	}
	return fmt.Sprintf("[%s] %s", e.ItemID, e.Message)
}

// Classify parses a yt-dlp output line. The second return is false when the
// line carries no error marker.
func Classify(line string) (DownloadError, bool) {
	clean := strings.TrimSpace(reANSI.ReplaceAllString(line, ""))
	if !strings.Contains(clean, consts.ErrorMarker) {
		return DownloadError{}, false
	}

	e := DownloadError{Line: line}
	m := reErrorLine.FindStringSubmatch(clean)
	if m == nil {
		_, e.Message, _ = strings.Cut(clean, consts.ErrorMarker)
		e.Message = strings.TrimSpace(e.Message)
		return e, true
	}

	e.Extractor = m[1]
	e.Message = strings.TrimSpace(m[3])

	// Without an extractor tag a leading "word:" is part of the message
	// ("Unable to download webpage: ..." has no id).
	if m[1] != "" {
		e.ItemID = m[2]
	} else if m[2] != "" {
		e.Message = m[2] + ": " + e.Message
	}
	return e, true
}
