package cfg

import (
	"blobdl/internal/domain/command"
	"blobdl/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// initProgramFlags sets and binds every flag of the root command.
func initProgramFlags(cmd *cobra.Command) error {
	// Files and directories
	cmd.Flags().String(keys.ConfigFile, "", "Load options from a config file (any format viper reads)")
	cmd.Flags().StringP(keys.OutputDir, "o", "", "Directory downloads are saved into (skips the prompt)")
	cmd.Flags().String(keys.LogFile, "", "Append a structured log of the run to this file")
	cmd.Flags().StringP(keys.BatchFile, "a", "", "File holding one URL per line ('#' starts a comment)")

	// Output
	cmd.Flags().BoolP(keys.Quiet, "q", false, "Print nothing from yt-dlp, only errors are collected")
	cmd.Flags().BoolP(keys.Verbose, "V", false, "Print every line yt-dlp outputs")
	cmd.Flags().Int(keys.Debug, 0, "Debug level (0-5)")
	cmd.MarkFlagsMutuallyExclusive(keys.Quiet, keys.Verbose)

	// Downloading
	cmd.Flags().String(keys.Executable, command.YTDLP, "Path of the yt-dlp executable")
	cmd.Flags().String(keys.CookiesFromBrowser, "", "Browser yt-dlp reads cookies from (e.g. firefox)")
	cmd.Flags().String(keys.CookieFile, "", "Netscape cookies.txt handed to yt-dlp")
	cmd.Flags().Bool(keys.ExportBrowserCookies, false, "Export the site's cookies from every local browser into a cookies.txt")
	cmd.Flags().Int(keys.DLRetries, 0, "Retries yt-dlp attempts per fragment (0 keeps its default)")
	cmd.Flags().String(keys.ExternalDownloader, "", "External downloader yt-dlp should use (e.g. aria2c)")
	cmd.Flags().String(keys.ExternalDownloaderArgs, "", "Arguments for the external downloader")
	cmd.Flags().Bool(keys.RestrictFilenames, false, "Restrict filenames to ASCII characters")
	cmd.Flags().Bool(keys.LegacyFormats, false, "Read formats from the legacy \"-F\" table instead of JSON")

	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr := viper.BindPFlag(f.Name, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}
