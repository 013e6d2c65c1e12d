// Package enums holds the closed variant types shared across blobdl.
package enums

// Verbosity controls which downloader lines are echoed to the terminal.
type Verbosity int

const (
	VerbosityDefault Verbosity = iota
	VerbosityQuiet
	VerbosityVerbose
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityVerbose:
		return "verbose"
	default:
		return "default"
	}
}

// MediaKind decides which format descriptors are eligible for download.
type MediaKind int

const (
	MediaVideo MediaKind = iota
	MediaAudioOnly
	MediaVideoOnly
)

func (m MediaKind) String() string {
	switch m {
	case MediaAudioOnly:
		return "audio-only"
	case MediaVideoOnly:
		return "video-only"
	default:
		return "video"
	}
}

// SelectionKind is the tag of a format selection.
type SelectionKind int

const (
	SelectBestQuality SelectionKind = iota
	SelectWorstQuality
	SelectSmallestSize
	SelectUniqueFormat
	SelectConvertTo
)

func (s SelectionKind) String() string {
	switch s {
	case SelectWorstQuality:
		return "worst-quality"
	case SelectSmallestSize:
		return "smallest-size"
	case SelectUniqueFormat:
		return "unique-format"
	case SelectConvertTo:
		return "convert-to"
	default:
		return "best-quality"
	}
}
