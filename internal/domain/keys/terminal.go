// Package keys holds terminal input keys and internal Viper keys.
package keys

// Files and directories.
const (
	ConfigFile string = "config-file"
	OutputDir  string = "output-dir"
	LogFile    string = "log-file"
	BatchFile  string = "batch-file"
)

// Output.
const (
	Quiet   string = "quiet"
	Verbose string = "verbose"
	Debug   string = "debug"
)

// Downloading.
const (
	Executable             string = "yt-dlp"
	CookiesFromBrowser     string = "cookies-from-browser"
	CookieFile             string = "cookie-file"
	ExportBrowserCookies   string = "export-browser-cookies"
	DLRetries              string = "dl-retries"
	ExternalDownloader     string = "external-downloader"
	ExternalDownloaderArgs string = "external-downloader-args"
	RestrictFilenames      string = "restrict-filenames"
	LegacyFormats          string = "legacy-formats"
)
