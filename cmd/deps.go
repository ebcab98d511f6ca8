package cmd

import (
	"context"
	"fmt"

	"profile-exporter/core/config"
	"profile-exporter/core/database"
	"profile-exporter/core/logger"
	"profile-exporter/core/storage"
	"profile-exporter/feature/export"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the dependencies shared by the commands.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	db     *gorm.DB
}

// loadDeps loads the configuration and connects what it asks for. The
// storage client is created for the storage destinations only. The database
// is connected when the export index is enabled or schemaCheck is set, and a
// failed connection is logged.
func loadDeps(ctx context.Context, schemaCheck bool) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if !cfg.Export.IsValidDestination() {
		return nil, fmt.Errorf("invalid export destination %q", cfg.Export.Destination)
	}

	rt := &deps{cfg: cfg, logger: logg}

	switch cfg.Export.Destination {
	case export.DestinationStorage, export.DestinationBoth:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		rt.store = client
	}

	if needsDatabase(cfg, schemaCheck) {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			rt.db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}
	}

	return rt, nil
}

// needsDatabase reports whether a command has any use for the database.
func needsDatabase(cfg *config.Config, schemaCheck bool) bool {
	return schemaCheck || cfg.Export.Index
}

// exportService builds the export pipeline of rt.
func (rt *deps) exportService() (*export.Service, error) {
	return export.NewService(rt.cfg.Export, rt.store, rt.cfg.Storage.Bucket, rt.db, rt.logger)
}
