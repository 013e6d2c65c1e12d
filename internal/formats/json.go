package formats

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"blobdl/internal/parsing"
	"blobdl/internal/utils/logging"
)

var (
	// ErrMalformed is returned when a structured dump does not match the expected shape.
	ErrMalformed = errors.New("malformed format dump")
	// ErrNoSuchRoot is returned when a multi-root dump has fewer roots than requested.
	ErrNoSuchRoot = errors.New("no such item in format dump")
)

// rawItem mirrors the subset of a yt-dlp "-j" root that blobdl reads.
type rawItem struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	UploadDate string       `json:"upload_date"`
	Formats    *[]rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID       *string  `json:"format_id"`
	Ext            *string  `json:"ext"`
	Resolution     *string  `json:"resolution"`
	VCodec         *string  `json:"vcodec"`
	ACodec         *string  `json:"acodec"`
	FormatNote     *string  `json:"format_note"`
	Filesize       *int64   `json:"filesize"`
	FilesizeApprox *int64   `json:"filesize_approx"`
	TBR            *float64 `json:"tbr"`
	AudioChannels  *int     `json:"audio_channels"`
}

// SelectRoot returns the 1-based index-th JSON root of a newline-delimited dump.
func SelectRoot(dump string, index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: index %d is not 1-based", ErrNoSuchRoot, index)
	}

	n := 0
	for _, line := range strings.Split(dump, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n++
		if n == index {
			return line, nil
		}
	}
	return "", fmt.Errorf("%w: requested item %d, dump has %d", ErrNoSuchRoot, index, n)
}

// Roots returns every non-blank root line of a newline-delimited dump.
func Roots(dump string) []string {
	var roots []string
	for _, line := range strings.Split(dump, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			roots = append(roots, line)
		}
	}
	return roots
}

// ItemAt returns the catalog of the item at 1-based playlist position index.
// Roots carrying "playlist_index" are matched on it, so items yt-dlp skipped
// do not shift the lookup. A dump without playlist positions falls back to
// the index-th root.
func ItemAt(dump string, index int) (Catalog, error) {
	roots := Roots(dump)

	positional := true
	for _, root := range roots {
		var pos struct {
			PlaylistIndex *int `json:"playlist_index"`
		}
		if err := json.Unmarshal([]byte(root), &pos); err != nil || pos.PlaylistIndex == nil {
			continue
		}
		positional = false
		if *pos.PlaylistIndex == index {
			return ParseJSON(root)
		}
	}

	if !positional {
		return Catalog{}, fmt.Errorf("%w: no item at playlist index %d among %d", ErrNoSuchRoot, index, len(roots))
	}
	root, err := SelectRoot(dump, index)
	if err != nil {
		return Catalog{}, err
	}
	return ParseJSON(root)
}

// ParseJSON strictly decodes one item's structured format dump.
func ParseJSON(root string) (Catalog, error) {
	var item rawItem
	if err := json.Unmarshal([]byte(root), &item); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if item.Formats == nil {
		return Catalog{}, fmt.Errorf("%w: item %q has no formats field", ErrMalformed, item.ID)
	}

	c := Catalog{
		ItemID:  item.ID,
		Title:   item.Title,
		Formats: make([]Descriptor, 0, len(*item.Formats)),
	}

	if date, err := parsing.ParseUploadDate(item.UploadDate); err != nil {
		logging.D(2, "Item %q: %v", item.ID, err)
	} else {
		c.UploadDate = date
	}

	seen := make(map[string]struct{}, len(*item.Formats))
	for i, rf := range *item.Formats {
		d, err := rf.descriptor()
		if err != nil {
			return Catalog{}, fmt.Errorf("%w: item %q format %d: %v", ErrMalformed, item.ID, i, err)
		}
		if _, dup := seen[d.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: item %q repeats format id %q", ErrMalformed, item.ID, d.ID)
		}
		seen[d.ID] = struct{}{}
		c.Formats = append(c.Formats, d)
	}
	return c, nil
}

func (rf rawFormat) descriptor() (Descriptor, error) {
	required := []struct {
		name string
		val  *string
	}{
		{"format_id", rf.FormatID},
		{"ext", rf.Ext},
		{"resolution", rf.Resolution},
		{"vcodec", rf.VCodec},
		{"acodec", rf.ACodec},
		{"format_note", rf.FormatNote},
	}
	for _, r := range required {
		if r.val == nil {
			return Descriptor{}, fmt.Errorf("missing field %q", r.name)
		}
	}

	d := Descriptor{
		ID:         *rf.FormatID,
		Extension:  *rf.Ext,
		Resolution: *rf.Resolution,
		VideoCodec: *rf.VCodec,
		AudioCodec: *rf.ACodec,
		Note:       *rf.FormatNote,
		Bitrate:    rf.TBR,
	}
	if rf.AudioChannels != nil {
		d.AudioChannels = *rf.AudioChannels
	}

	switch {
	case rf.Filesize != nil:
		d.SizeBytes = *rf.Filesize
	case rf.FilesizeApprox != nil:
		d.SizeBytes = *rf.FilesizeApprox
		d.SizeApprox = true
	case d.Bitrate != nil:
		return Descriptor{}, fmt.Errorf("format %q has a bitrate but no size", d.ID)
	}
	return d, nil
}
