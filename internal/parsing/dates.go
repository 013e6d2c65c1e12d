package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// HyphenateYyyyMmDd simply hyphenates yyyymmdd date values for display.
func HyphenateYyyyMmDd(d string) string {
	d = strings.ReplaceAll(d, " ", "")
	d = strings.ReplaceAll(d, "-", "")
	if len(d) < 8 {
		return d
	}

	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}

// ParseUploadDate parses an item's upload date (yt-dlp prints yyyymmdd).
// A blank input yields the zero time and no error.
func ParseUploadDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if len(s) == 8 && strings.Trim(s, "0123456789") == "" {
		s = HyphenateYyyyMmDd(s)
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
	}
	return t, nil
}
