package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"profile-exporter/core/loader"
	"profile-exporter/core/logger"
	"profile-exporter/core/middleware/auth"
	"profile-exporter/core/middleware/rayid"
	"profile-exporter/feature/export"
	"profile-exporter/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "profile-exporter/docs/swagger"
)

// @title Profile Exporter API
// @version 1.0
// @description Receives captured game events and exports complete player profiles.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the profile export server",
	Long:  `Starts the HTTP server that receives captured events and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadDeps(cmd.Context(), false)
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		svc, err := rt.exportService()
		if err != nil {
			return fmt.Errorf("failed to create export service: %w", err)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager()
		mgr.Register(export.NewFeature(svc))
		mgr.Register(integrity.NewFeature(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Export, rt.db, logg))

		// RayID first so that every log line of a request carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: rt.cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/swagger")
			},
		}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		opts := rt.cfg.Export.Options()
		logg.Info("Profile export configured",
			zap.Bool("enabled", opts.Enabled),
			zap.Bool("sort_data", opts.SortData),
			zap.Bool("merge_storage", opts.MergeStorage),
			zap.Bool("timestamped_copy", opts.TimestampedCopy),
			zap.String("destination", svc.Config().Destination),
		)

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			errCh <- app.Listen(":" + rt.cfg.Server.Port)
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sig:
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
		}

		logg.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), rt.cfg.Server.ShutdownTimeout())
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		if err := svc.Close(ctx); err != nil {
			logg.Error("Pending profiles were not saved", zap.Error(err))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
