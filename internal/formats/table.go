package formats

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"blobdl/internal/domain/consts"
	"blobdl/internal/utils/logging"
)

var (
	reBitrate = regexp.MustCompile(`^(\d+(?:\.\d+)?)k$`)
	reSize    = regexp.MustCompile(`^(~?)(\d+(?:\.\d+)?)(KiB|MiB|GiB)$`)
)

var sizeUnits = map[string]float64{
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
}

var (
	videoCodecPrefixes = []string{"avc1", "avc", "h264", "h265", "hev1", "hvc1", "vp8", "vp9", "vp09", "av01"}
	audioCodecPrefixes = []string{"mp4a", "opus", "vorbis", "mp3", "aac", "ac-3", "ec-3", "flac"}
)

// ParseTableDump splits a multi-item legacy "-F" dump into per-item catalogs.
// Items without a single valid format line carry no format information and
// are dropped.
func ParseTableDump(dump string) []Catalog {
	items := ParseTableItems(dump)

	catalogs := make([]Catalog, 0, len(items))
	for i, c := range items {
		if c.Empty() {
			logging.D(2, "Legacy dump item %d has no format information, skipping", i+1)
			continue
		}
		catalogs = append(catalogs, c)
	}
	return catalogs
}

// ParseTableItems splits a legacy "-F" dump into one catalog per item,
// keeping positions: entry i describes item i+1 even when it is empty. Text
// before the first item marker of a multi-item dump is skipped.
func ParseTableItems(dump string) []Catalog {
	paragraphs := strings.Split(dump, consts.LegacyItemSeparator)
	if len(paragraphs) > 1 {
		paragraphs = paragraphs[1:]
	}

	items := make([]Catalog, len(paragraphs))
	for i, p := range paragraphs {
		items[i] = ParseTable(p)
	}
	return items
}

// ParseTable parses one item's legacy "-F" table. Header, info and malformed
// lines are dropped silently; a table with no valid line yields an empty catalog.
func ParseTable(paragraph string) Catalog {
	var c Catalog
	seen := make(map[string]struct{})

	for _, line := range strings.Split(paragraph, "\n") {
		line = strings.TrimRight(line, "\r")
		if !tableCandidate(line) {
			continue
		}
		d, ok := parseTableLine(line)
		if !ok {
			continue
		}
		if _, dup := seen[d.ID]; dup {
			continue
		}
		seen[d.ID] = struct{}{}
		c.Formats = append(c.Formats, d)
	}
	return c
}

// tableCandidate filters out header/info lines and video-only variants.
func tableCandidate(line string) bool {
	if line == "" {
		return false
	}
	if !unicode.IsDigit(rune(line[0])) {
		return false
	}
	return !strings.Contains(line, "video only")
}

// parseTableLine reads "id ext resolution note... [bitrate] , details...".
func parseTableLine(line string) (Descriptor, bool) {
	head, tail, _ := strings.Cut(line, ",")
	fields := strings.Fields(head)
	if len(fields) < 3 {
		return Descriptor{}, false
	}

	d := Descriptor{
		ID:         fields[0],
		Extension:  fields[1],
		VideoCodec: consts.CodecNone,
		AudioCodec: consts.CodecNone,
	}

	var i int
	if fields[2] == "audio" && len(fields) > 3 && fields[3] == "only" {
		d.Resolution = consts.ResolutionAudioOnly
		i = 4
	} else {
		d.Resolution = fields[2]
		i = 3
	}

	var note []string
	for _, tok := range fields[i:] {
		if m := reBitrate.FindStringSubmatch(tok); m != nil && d.Bitrate == nil {
			if br, err := strconv.ParseFloat(m[1], 64); err == nil {
				d.Bitrate = &br
				continue
			}
		}
		if d.Bitrate == nil {
			note = append(note, tok)
		}
	}
	d.Note = strings.Join(note, " ")

	for _, piece := range strings.Split(tail, ",") {
		for _, tok := range strings.Fields(piece) {
			readDetailToken(&d, tok)
		}
	}
	return d, true
}

func readDetailToken(d *Descriptor, tok string) {
	if m := reSize.FindStringSubmatch(tok); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			d.SizeBytes = int64(v * sizeUnits[m[3]])
			d.SizeApprox = true
		}
		return
	}

	lower := strings.ToLower(tok)
	switch {
	case d.VideoCodec == consts.CodecNone && !d.AudioOnly() && hasAnyPrefix(lower, videoCodecPrefixes):
		d.VideoCodec = tok
	case d.AudioCodec == consts.CodecNone && hasAnyPrefix(lower, audioCodecPrefixes):
		d.AudioCodec = tok
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
