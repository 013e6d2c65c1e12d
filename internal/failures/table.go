package failures

import (
	"maps"
	"slices"
	"strings"
)

// Table is a read-only mapping from known error messages to recoverability.
// Lookups scan entries longest message first so a more specific message wins
// over one it contains.
type Table struct {
	entries []entry
}

type entry struct {
	message     string
	recoverable bool
}

// NewTable copies m into an immutable Table.
func NewTable(m map[string]bool) *Table {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	t := &Table{entries: make([]entry, 0, len(keys))}
	for _, k := range keys {
		if k == "" {
			continue
		}
		t.entries = append(t.entries, entry{message: k, recoverable: m[k]})
	}
	return t
}

// DefaultTable returns the table of documented yt-dlp messages.
func DefaultTable() *Table {
	return NewTable(knownMessages)
}

// Lookup reports the recoverability of the first known message contained in
// msg. The second return is false when no entry matches.
func (t *Table) Lookup(msg string) (recoverable, known bool) {
	if t == nil {
		return false, false
	}
	for _, e := range t.entries {
		if strings.Contains(msg, e.message) {
			return e.recoverable, true
		}
	}
	return false, false
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// IsRecoverable reports whether retrying the item could plausibly succeed.
// "Video unavailable" is never recoverable; unknown messages always are.
func IsRecoverable(err DownloadError, t *Table) bool {
	if strings.Contains(err.Message, VideoUnavailable) {
		return false
	}
	if recoverable, known := t.Lookup(err.Message); known {
		return recoverable
	}
	return true
}

// Partition splits errs into recoverable and unrecoverable, keeping order.
func Partition(errs []DownloadError, t *Table) (recoverable, unrecoverable []DownloadError) {
	for _, e := range errs {
		if IsRecoverable(e, t) {
			recoverable = append(recoverable, e)
		} else {
			unrecoverable = append(unrecoverable, e)
		}
	}
	return recoverable, unrecoverable
}
