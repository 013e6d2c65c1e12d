// Package consts holds various global, unchanging values.
package consts

// Downloader output markers.
const (
	ErrorMarker    = "ERROR:"
	ProgressMarker = "[download]"

	// LegacyItemSeparator starts every item's paragraph in a multi-item "-F" dump.
	LegacyItemSeparator = "[download] Downloading video"
)

// Format sentinels, as printed by yt-dlp.
const (
	ResolutionAudioOnly = "audio only"
	CodecNone           = "none"
)

// VideoConvertExtensions lists the containers offered for video re-encoding.
var VideoConvertExtensions = [...]string{"mp4", "mkv", "webm", "mov", "avi", "flv"}

// AudioConvertExtensions lists the formats offered for audio extraction.
var AudioConvertExtensions = [...]string{"mp3", "m4a", "opus", "flac", "wav", "aac", "vorbis"}

// Item URL template used when a single failed item is re-targeted.
const ItemURLTemplate = "https://www.youtube.com/watch?v=%s"

// FFmpeg binary name, required for conversions.
const FFmpeg = "ffmpeg"
