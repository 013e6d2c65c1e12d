package cfg

import (
	"fmt"
	"path/filepath"

	"blobdl/internal/domain/keys"
	"blobdl/internal/parsing"
	"blobdl/internal/utils/logging"

	"github.com/spf13/viper"
)

// loadConfigFile loads in the preset configuration file.
func loadConfigFile(file string) error {
	if filepath.Ext(file) == "" {
		return fmt.Errorf("config file %q needs an extension naming its format", file)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	logging.D(1, "Loaded config file %q", file)
	return nil
}

// collectTargets joins command line URLs with those of the batch file,
// keeping order and dropping duplicates.
func collectTargets(args []string) ([]string, error) {
	targets := make([]string, 0, len(args))
	seen := make(map[string]struct{}, len(args))

	add := func(u string) {
		if _, dup := seen[u]; dup || u == "" {
			return
		}
		seen[u] = struct{}{}
		targets = append(targets, u)
	}

	for _, a := range args {
		add(a)
	}

	if viper.IsSet(keys.BatchFile) && viper.GetString(keys.BatchFile) != "" {
		batch := viper.GetString(keys.BatchFile)
		urls, err := parsing.NewURLFileParser(batch).ParseURLs()
		if err != nil {
			return nil, fmt.Errorf("failed to read batch file %q: %w", batch, err)
		}
		logging.D(1, "Read %d URLs from batch file %q", len(urls), batch)
		for _, u := range urls {
			add(u)
		}
	}
	return targets, nil
}
