package consts

// Program name.
const ProgramName = "blobdl"

// Prompt texts.
const (
	MediaPrompt          = "Do you want to download video file(s) or audio-only?"
	PlaylistFormatPrompt = "Which quality do you want to apply to all videos?"
	VideoFormatPrompt    = "Which quality or format do you want to apply to the video?"
	FormatListPrompt     = "Which format do you want to apply to the video?"
	ConvertPrompt        = "Which format do you want the file to be converted to?"
	OutputDirPrompt      = "Where do you want the downloaded file(s) to be saved?"
	IndexPrompt          = "Do you want a video's index in the playlist to be in its name?"
	RetryPrompt          = "Some items could not be downloaded. Which ones do you want to retry?"
)

// Fixed prompt options.
const (
	BestPerItemOption    = "Best available quality for each video"
	WorstPerItemOption   = "Worst available quality for each video"
	BestSingleOption     = "Best possible quality"
	SmallestSingleOption = "Smallest file size"
	ConvertSingleOption  = "Convert to a format of your choice (requires ffmpeg)"
	FormatListOption     = "Choose from the formats available for this video"
	RetryAllOption       = "Retry all"
	RetryNoneOption      = "Retry none"
	MediaVideoOption     = "Normal video"
	MediaAudioOnlyOption = "Audio-only"
	MediaVideoOnlyOption = "Video-only"
	IndexYesOption       = "Yes"
	IndexNoOption        = "No"
)

// Program messages.
const (
	UnrecoverableHeader = ColorBold + ColorCyan + "The following items cannot be downloaded:" + ColorReset
	FFmpegMissingWarn   = "ffmpeg was not found on this system, format conversion is disabled"
	DebugReportMsg      = "If any of these errors persist, please report them along with the output of --verbose"
)
