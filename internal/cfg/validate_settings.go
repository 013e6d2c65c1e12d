package cfg

import (
	"fmt"
	"os"

	"blobdl/internal/domain/keys"

	"github.com/spf13/viper"
)

// verify verifies that the user input flags are valid.
func verify() error {
	if viper.GetBool(keys.Quiet) && viper.GetBool(keys.Verbose) {
		return fmt.Errorf("--%s and --%s cannot be combined", keys.Quiet, keys.Verbose)
	}

	if lvl := viper.GetInt(keys.Debug); lvl < 0 || lvl > 5 {
		return fmt.Errorf("debug level %d is out of range (0-5)", lvl)
	}

	if r := viper.GetInt(keys.DLRetries); r < 0 {
		return fmt.Errorf("retries cannot be negative, got %d", r)
	}

	if viper.IsSet(keys.CookieFile) {
		if f := viper.GetString(keys.CookieFile); f != "" {
			info, err := os.Stat(f)
			if err != nil {
				return fmt.Errorf("cookie file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("cookie file %q is a directory", f)
			}
		}
	}

	if viper.GetString(keys.Executable) == "" {
		return fmt.Errorf("yt-dlp executable path is empty")
	}
	return nil
}
