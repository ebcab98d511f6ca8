package export

import (
	"context"
	"errors"
	"sync"

	"profile-exporter/core/notify"

	"go.uber.org/zap"
)

// ErrWriterClosed is returned by Submit after Close.
var ErrWriterClosed = errors.New("writer is closed")

// Writer persists blobs in the background. Submit returns as soon as the
// blob is queued; the outcome of every write is reported to the notifier.
type Writer struct {
	sink     Sink
	notifier notify.Notifier
	logger   *zap.Logger

	mu     sync.RWMutex
	closed bool
	jobs   chan Blob
	done   chan struct{}
}

// NewWriter starts a Writer with room for queueSize pending blobs.
func NewWriter(sink Sink, notifier notify.Notifier, logger *zap.Logger, queueSize int) *Writer {
	if queueSize <= 0 {
		queueSize = 32
	}
	w := &Writer{
		sink:     sink,
		notifier: notifier,
		logger:   logger,
		jobs:     make(chan Blob, queueSize),
		done:     make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit queues b for writing. It blocks while the queue is full.
func (w *Writer) Submit(b Blob) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrWriterClosed
	}
	w.jobs <- b
	return nil
}

// Close stops accepting blobs and waits until the queued ones are written
// or ctx is done.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for b := range w.jobs {
		w.write(b)
	}
}

func (w *Writer) write(b Blob) {
	if err := w.sink.Write(context.Background(), b); err != nil {
		w.logger.Error("Failed to save profile data",
			zap.String("file", b.Path()),
			zap.String("wizard_id", b.Identity),
			zap.Error(err),
		)
		w.notifier.Notify(newEvent(notify.TypeError, "Failed to save profile data to "+b.Name+": "+err.Error()))
		return
	}
	w.logger.Debug("Saved profile data",
		zap.String("file", b.Path()),
		zap.Int("bytes", len(b.Data)),
	)
	w.notifier.Notify(newEvent(notify.TypeSuccess, "Saved profile data to "+b.Name))
}
