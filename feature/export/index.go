package export

import (
	"context"
	"fmt"
	"time"

	"profile-exporter/feature/export/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the export index table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ExportRecord{}); err != nil {
		return fmt.Errorf("failed to migrate export index: %w", err)
	}
	return nil
}

// IndexedSink records every blob its inner sink saved in the export index.
// A failed index insert is logged and does not fail the write.
type IndexedSink struct {
	inner  Sink
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewIndexedSink wraps inner.
func NewIndexedSink(inner Sink, db *gorm.DB, logger *zap.Logger) *IndexedSink {
	return &IndexedSink{inner: inner, db: db, logger: logger, now: time.Now}
}

func (s *IndexedSink) Write(ctx context.Context, b Blob) error {
	if err := s.inner.Write(ctx, b); err != nil {
		return err
	}

	record := models.ExportRecord{
		ID:         uuid.NewString(),
		WizardID:   b.Identity,
		WizardName: b.DisplayName,
		FileName:   b.Name,
		Folder:     b.Folder,
		Size:       int64(len(b.Data)),
		CreatedAt:  s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		s.logger.Warn("Failed to index saved profile",
			zap.String("file", b.Path()),
			zap.Error(err),
		)
	}
	return nil
}

// History returns the index records of a player, newest first.
func History(ctx context.Context, db *gorm.DB, identity string, limit int) ([]models.ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []models.ExportRecord
	err := db.WithContext(ctx).
		Where("wizard_id = ?", identity).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load export history: %w", err)
	}
	return records, nil
}
