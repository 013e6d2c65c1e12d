package failures

// Known yt-dlp error messages, matched as substrings of the error text.
const (
	VideoUnavailable   = "Video unavailable"
	PrivateVideo       = "Private video"
	NonexistentList    = "The playlist does not exist"
	HomepageRedirect   = "The channel/playlist does not exist and the URL redirected to youtube.com home page"
	ViolentVideo       = "This video has been removed for violating YouTube's policy on violent or graphic content"
	RemovedVideo       = "This video has been removed"
	TerminatedAccount  = "account associated with this video has been terminated"
	GaveUp             = "Giving up after"
	VideoNotFound      = "HTTP Error 404"
	NoAPIPage          = "Unable to download API page"
	EncoderStreamError = "Error while opening encoder for output stream"
	NonexistentVideo   = "This video does not exist"
	WebpageFailure     = "Unable to download webpage"
	ConnectionReset    = "Connection reset by peer"
	ReadTimedOut       = "The read operation timed out"
)

// knownMessages maps each documented message to its recoverability.
var knownMessages = map[string]bool{
	PrivateVideo:       false,
	NonexistentList:    false,
	HomepageRedirect:   false,
	ViolentVideo:       false,
	RemovedVideo:       false,
	TerminatedAccount:  false,
	GaveUp:             false,
	VideoNotFound:      false,
	NoAPIPage:          false,
	EncoderStreamError: false,
	NonexistentVideo:   false,
	WebpageFailure:     true,
	ConnectionReset:    true,
	ReadTimedOut:       true,
}
