package integrity

import (
	"context"
	"errors"

	"profile-exporter/core/storage"
	"profile-exporter/feature/export"
	"profile-exporter/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageDisabled is returned by the structure checks without a storage client.
	ErrStorageDisabled = errors.New("storage destination is not configured")
	// ErrDatabaseDisabled is returned by the schema checks without a database.
	ErrDatabaseDisabled = errors.New("database is not connected")
)

// Service handles integrity checks of the export destinations.
type Service struct {
	client storage.Client
	bucket string
	cfg    export.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(client storage.Client, bucket string, cfg export.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the export folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredFolders(s.cfg.StoragePrefix, export.TimestampFolder))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckLocal inspects the local export folder.
func (s *Service) CheckLocal() (*checks.LocalReport, error) {
	return checks.CheckLocal(s.cfg.FilesPath, export.TimestampFolder)
}

// FixLocal creates the missing local folders.
func (s *Service) FixLocal(missing []string) error {
	return checks.FixLocal(missing)
}

// CheckSchema compares the export index tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseDisabled
	}
	return checks.CheckIndexSchema(s.db)
}

// FixSchema migrates the export index tables.
func (s *Service) FixSchema() error {
	if s.db == nil {
		return ErrDatabaseDisabled
	}
	return export.Migrate(s.db)
}

// UsesStorage reports whether the configured destination writes to the bucket.
func (s *Service) UsesStorage() bool {
	return s.cfg.Destination == export.DestinationStorage || s.cfg.Destination == export.DestinationBoth
}

// UsesFiles reports whether the configured destination writes local files.
func (s *Service) UsesFiles() bool {
	return s.cfg.Destination != export.DestinationStorage
}
