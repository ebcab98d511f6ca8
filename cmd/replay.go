package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"profile-exporter/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipInvalid bool

// replayCmd feeds a recorded capture through the exporter.
var replayCmd = &cobra.Command{
	Use:   "replay <capture.jsonl>",
	Short: "Export profiles from a recorded capture",
	Long: `Reads a capture file with one JSON event per line, in the form
{"command": "...", "request": {...}, "response": {...}}, and delivers the
events in order, exactly as the server would. Profiles are written with the
configured export settings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rt, err := loadDeps(ctx, false)
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open capture: %w", err)
		}
		defer f.Close()

		svc, err := rt.exportService()
		if err != nil {
			return fmt.Errorf("failed to create export service: %w", err)
		}

		start := time.Now()
		stats, replayErr := export.Replay(ctx, f, svc, skipInvalid)

		closeCtx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := svc.Close(closeCtx); err != nil {
			logg.Error("Pending profiles were not saved", zap.Error(err))
		}

		fields := []zap.Field{
			zap.Int("lines", stats.Lines),
			zap.Int("invalid", stats.Invalid),
			zap.Int("held", svc.Pending()),
			zap.Duration("execution_time", time.Since(start)),
		}
		for status, n := range stats.Statuses {
			fields = append(fields, zap.Int(status, n))
		}
		logg.Info("Replay finished", fields...)

		return replayErr
	},
}

func init() {
	RootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip lines that are not valid events instead of stopping")
}
