// Package failures turns yt-dlp diagnostic lines into DownloadErrors and
// decides whether re-attempting the failed item could plausibly succeed.
package failures
