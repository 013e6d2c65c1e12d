package command

// General
const (
	YTDLP              = "yt-dlp"
	CookiesFromBrowser = "--cookies-from-browser"
	CookiePath         = "--cookies"
	ExternalDLer       = "--external-downloader"
	ExternalDLArgs     = "--external-downloader-args"
	FilenameSyntax     = "%(title)s.%(ext)s"
	IndexedFilename    = "%(playlist_index)s_%(title)s.%(ext)s"
	Output             = "-o"
	RestrictFilenames  = "--restrict-filenames"
	Retries            = "--retries"
	Newline            = "--newline"
	IgnoreErrors       = "-i"
	NoPlaylist         = "--no-playlist"
)

// Format selection
const (
	Format      = "-f"
	FormatSort  = "-S"
	RecodeVideo = "--recode-video"
	ExtractAud  = "-x"
	AudioFormat = "--audio-format"
)

// Format selectors per media kind.
const (
	BestVideo      = "bestvideo*+bestaudio/best"
	BestAudioOnly  = "bestaudio/best"
	BestVideoOnly  = "bestvideo"
	WorstVideo     = "worstvideo*+worstaudio/worst"
	WorstAudioOnly = "worstaudio/worst"
	WorstVideoOnly = "worstvideo"
	SmallestSort   = "+size,+br,+res,+fps"
	AnyVideoAudio  = "bv*+ba/b"
	AnyAudio       = "ba/b"
	AnyVideoOnly   = "bv"
)

// Format listing
const (
	DumpJSON    = "-j"
	ListFormats = "-F"
)
