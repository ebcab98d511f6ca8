package export

import (
	"context"
	"errors"

	"profile-exporter/core/event"
	"profile-exporter/core/notify"
	"profile-exporter/core/storage"
	"profile-exporter/feature/export/models"
	"profile-exporter/feature/profile/accumulator"
	profile "profile-exporter/feature/profile/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrIndexDisabled is returned by History when no export index is connected.
var ErrIndexDisabled = errors.New("export index is not enabled")

const feedSize = 100

// Service wires the exporter to its sink, writer and notification feed.
type Service struct {
	cfg        Config
	dispatcher *event.Dispatcher
	exporter   *Exporter
	writer     *Writer
	feed       *notify.Feed
	db         *gorm.DB
	logger     *zap.Logger
}

// NewService builds the export pipeline described by cfg. client and db are
// optional; client is required by the storage destinations and db enables
// the export index when cfg.Index is set.
func NewService(cfg Config, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) (*Service, error) {
	sink, err := NewSink(cfg, client, bucket)
	if err != nil {
		return nil, err
	}

	var indexDB *gorm.DB
	if cfg.Index && db != nil {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		indexDB = db
		sink = NewIndexedSink(sink, db, logger)
	} else if cfg.Index {
		logger.Warn("Export index requested without a database connection")
	}

	feed := notify.NewFeed(feedSize)
	notifier := notify.Fanout{notify.NewZapNotifier(logger), feed}
	writer := NewWriter(sink, notifier, logger, cfg.QueueSize)
	exporter := NewExporter(cfg.Options(), accumulator.NewMemoryStore(), writer, notifier, logger)

	dispatcher := event.NewDispatcher()
	exporter.Register(dispatcher)

	return &Service{
		cfg:        cfg,
		dispatcher: dispatcher,
		exporter:   exporter,
		writer:     writer,
		feed:       feed,
		db:         indexDB,
		logger:     logger,
	}, nil
}

// Dispatch delivers one captured event.
func (s *Service) Dispatch(ctx context.Context, env event.Envelope) (event.Result, error) {
	return s.dispatcher.Dispatch(ctx, env)
}

// Profile returns the profile held for identity.
func (s *Service) Profile(identity string) (*profile.Profile, bool) {
	return s.exporter.Peek(identity)
}

// Pending returns the number of held profiles.
func (s *Service) Pending() int {
	return s.exporter.Pending()
}

// Notifications returns the most recent notifications, oldest first.
func (s *Service) Notifications() []notify.Event {
	return s.feed.Events()
}

// History returns the indexed exports of identity, newest first.
func (s *Service) History(ctx context.Context, identity string, limit int) ([]models.ExportRecord, error) {
	if s.db == nil {
		return nil, ErrIndexDisabled
	}
	return History(ctx, s.db, identity, limit)
}

// Close flushes queued writes.
func (s *Service) Close(ctx context.Context) error {
	return s.writer.Close(ctx)
}

// Config returns the configuration the service was built from.
func (s *Service) Config() Config {
	return s.cfg
}
