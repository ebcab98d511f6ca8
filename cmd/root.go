package cmd

import (
	"fmt"
	"os"

	"profile-exporter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "profile-exporter",
	Short: "Profile Export Service",
	Long: `Profile Exporter turns captured game traffic into complete player profile files.
It merges the login profile with the sealed monster storage, sorts it like the
game does and writes it to local files, S3 compatible storage, or both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level prints readable ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
