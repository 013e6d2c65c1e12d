package cfg

import (
	"strconv"

	"blobdl/internal/command/builder"
	"blobdl/internal/domain/enums"
	"blobdl/internal/domain/keys"

	"github.com/spf13/viper"
)

// Settings is the resolved configuration of one run.
type Settings struct {
	Targets    []string
	Verbosity  enums.Verbosity
	DebugLevel int
	LogFile    string
	OutputDir  string

	ExportBrowserCookies bool
	Structured           bool

	Common builder.Common
}

// Load reads the settings from viper, after Execute has run.
func Load() Settings {
	s := Settings{
		Targets:              viper.GetStringSlice(keys.TargetURL),
		Verbosity:            verbosity(),
		DebugLevel:           viper.GetInt(keys.Debug),
		LogFile:              viper.GetString(keys.LogFile),
		OutputDir:            viper.GetString(keys.OutputDir),
		ExportBrowserCookies: viper.GetBool(keys.ExportBrowserCookies),
		Structured:           !viper.GetBool(keys.LegacyFormats),
		Common: builder.Common{
			Executable:             viper.GetString(keys.Executable),
			CookieSource:           viper.GetString(keys.CookiesFromBrowser),
			CookieFile:             viper.GetString(keys.CookieFile),
			ExternalDownloader:     viper.GetString(keys.ExternalDownloader),
			ExternalDownloaderArgs: viper.GetString(keys.ExternalDownloaderArgs),
			RestrictFilenames:      viper.GetBool(keys.RestrictFilenames),
		},
	}

	if r := viper.GetInt(keys.DLRetries); r > 0 {
		s.Common.Retries = strconv.Itoa(r)
	}
	return s
}

// ShouldExecute reports whether the command line asked for a download
// (false after --help).
func ShouldExecute() bool {
	return viper.GetBool(keys.Execute)
}

func verbosity() enums.Verbosity {
	switch {
	case viper.GetBool(keys.Quiet):
		return enums.VerbosityQuiet
	case viper.GetBool(keys.Verbose):
		return enums.VerbosityVerbose
	default:
		return enums.VerbosityDefault
	}
}
