package formats

import (
	"fmt"
	"strings"
	"time"

	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"
)

// Descriptor is one downloadable variant of one item.
type Descriptor struct {
	ID         string
	Extension  string
	Resolution string // consts.ResolutionAudioOnly for audio-only variants
	VideoCodec string // consts.CodecNone when absent
	AudioCodec string // consts.CodecNone when absent
	Note       string

	SizeBytes  int64
	SizeApprox bool

	// Bitrate is nil for thumbnail and storyboard variants.
	Bitrate       *float64
	AudioChannels int
}

// AudioOnly reports whether the descriptor carries no picture.
func (d Descriptor) AudioOnly() bool {
	return d.Resolution == consts.ResolutionAudioOnly
}

// Eligible reports whether the descriptor may be offered for kind.
func (d Descriptor) Eligible(kind enums.MediaKind) bool {
	switch kind {
	case enums.MediaAudioOnly:
		return d.AudioOnly()
	case enums.MediaVideoOnly:
		return !d.AudioOnly() && d.AudioCodec == consts.CodecNone
	default:
		return !d.AudioOnly()
	}
}

// Label renders the descriptor for a prompt. The second return is false for
// descriptors without a bitrate, which must not be shown.
func (d Descriptor) Label() (string, bool) {
	if d.Bitrate == nil {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s ", d.Extension)

	if !d.AudioOnly() {
		fmt.Fprintf(&b, "| %-13s ", d.Resolution)
	}

	fmt.Fprintf(&b, "%-24s", "| filesize: "+d.sizeText())

	if d.AudioChannels > 0 {
		fmt.Fprintf(&b, "| %d audio ch ", d.AudioChannels)
	}

	fmt.Fprintf(&b, "| tbr: %-8.2f ", *d.Bitrate)

	if d.VideoCodec != consts.CodecNone && d.VideoCodec != "" {
		fmt.Fprintf(&b, "| vcodec: %-13s ", d.VideoCodec)
	}
	if d.AudioCodec != consts.CodecNone && d.AudioCodec != "" {
		fmt.Fprintf(&b, "| acodec: %-13s ", d.AudioCodec)
	}
	if d.Note != "" {
		fmt.Fprintf(&b, "| %s", d.Note)
	}

	return strings.TrimRight(b.String(), " "), true
}

func (d Descriptor) sizeText() string {
	if d.SizeBytes <= 0 {
		return "unknown"
	}
	mb := float64(d.SizeBytes) * 0.000001
	if d.SizeApprox {
		return fmt.Sprintf("~%.2fMB", mb)
	}
	return fmt.Sprintf("%.2fMB", mb)
}

// Catalog is the ordered list of descriptors available for one item.
type Catalog struct {
	ItemID     string
	Title      string
	UploadDate time.Time
	Formats    []Descriptor
}

// Empty reports whether the catalog carries no format information.
func (c Catalog) Empty() bool {
	return len(c.Formats) == 0
}

// IDs returns the descriptor ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.Formats))
	for i, f := range c.Formats {
		ids[i] = f.ID
	}
	return ids
}

// Lookup returns the descriptor with the given id.
func (c Catalog) Lookup(id string) (Descriptor, bool) {
	for _, f := range c.Formats {
		if f.ID == id {
			return f, true
		}
	}
	return Descriptor{}, false
}

// Options lists every labelled descriptor eligible for kind, in catalog order.
func (c Catalog) Options(kind enums.MediaKind) []Option {
	opts := make([]Option, 0, len(c.Formats))
	for _, f := range c.Formats {
		if !f.Eligible(kind) {
			continue
		}
		if label, ok := f.Label(); ok {
			opts = append(opts, Option{Label: label, Selection: UniqueFormat(f.ID)})
		}
	}
	return opts
}

// Heading names the item for prompts and logs.
func (c Catalog) Heading() string {
	name := c.Title
	if name == "" {
		name = c.ItemID
	}
	if c.UploadDate.IsZero() {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, c.UploadDate.Format("2006-01-02"))
}
