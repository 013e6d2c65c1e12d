// Package cfg provides configuration and command-line interface setup for blobdl.
package cfg

import (
	"fmt"
	"os"
	"strings"

	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/keys"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable blobdl reads.
const EnvPrefix = "BLOBDL"

var rootCmd *cobra.Command

// newRootCmd builds the root command and binds its flags into viper.
func newRootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   consts.ProgramName + " [url...]",
		Short: "blobdl downloads videos, playlists and audio through yt-dlp.",
		Long: "blobdl asks which media and quality you want, downloads every item with yt-dlp\n" +
			"and offers to retry the items that failed for reasons worth retrying.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if viper.IsSet(keys.ConfigFile) {
				configFile := viper.GetString(keys.ConfigFile)

				cInfo, err := os.Stat(configFile)
				if err != nil {
					return fmt.Errorf("failed check for config file path: %w", err)
				} else if cInfo.IsDir() {
					return fmt.Errorf("config file %q is a directory, should be a file", configFile)
				}

				if err := loadConfigFile(configFile); err != nil {
					return fmt.Errorf("failed loading config file: %w", err)
				}
			}
			return verify()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := collectTargets(args)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("no URL entered, pass one as an argument or through --%s", keys.BatchFile)
			}
			viper.Set(keys.TargetURL, targets)
			viper.Set(keys.Execute, true)
			return nil
		},
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "output-dir" is read from BLOBDL_OUTPUT_DIR
	viper.AutomaticEnv()

	if err := initProgramFlags(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// InitCommands initializes the root command and its flags.
func InitCommands() error {
	cmd, err := newRootCmd()
	if err != nil {
		return err
	}
	rootCmd = cmd
	return nil
}

// Execute parses the command line. It must follow InitCommands.
func Execute() error {
	if rootCmd == nil {
		return fmt.Errorf("commands not initialized")
	}

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})
	return rootCmd.Execute()
}
