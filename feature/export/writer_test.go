package export

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"profile-exporter/core/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu    sync.Mutex
	blobs []Blob
	err   error
}

func (s *recordingSink) Write(ctx context.Context, b Blob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.blobs = append(s.blobs, b)
	return nil
}

func (s *recordingSink) Blobs() []Blob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Blob(nil), s.blobs...)
}

func TestWriter_WritesInOrder(t *testing.T) {
	sink := &recordingSink{}
	feed := notify.NewFeed(10)
	w := NewWriter(sink, feed, zap.NewNop(), 4)

	for _, name := range []string{"a.json", "b.json", "c.json"} {
		require.NoError(t, w.Submit(Blob{Name: name}))
	}
	require.NoError(t, w.Close(context.Background()))

	blobs := sink.Blobs()
	require.Len(t, blobs, 3)
	assert.Equal(t, "a.json", blobs[0].Name)
	assert.Equal(t, "c.json", blobs[2].Name)

	events := feed.Events()
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, notify.TypeSuccess, e.Type)
		assert.Equal(t, PluginName, e.Name)
		assert.Equal(t, PluginSource, e.Source)
	}
	assert.Equal(t, "Saved profile data to a.json", events[0].Message)
}

func TestWriter_ReportsFailure(t *testing.T) {
	sink := &recordingSink{err: errors.New("disk full")}
	feed := notify.NewFeed(10)
	w := NewWriter(sink, feed, zap.NewNop(), 1)

	require.NoError(t, w.Submit(Blob{Name: "a.json"}))
	require.NoError(t, w.Close(context.Background()))

	events := feed.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notify.TypeError, events[0].Type)
	assert.Contains(t, events[0].Message, "a.json")
	assert.Contains(t, events[0].Message, "disk full")
}

func TestWriter_SubmitAfterClose(t *testing.T) {
	w := NewWriter(&recordingSink{}, notify.NewFeed(1), zap.NewNop(), 1)
	require.NoError(t, w.Close(context.Background()))
	require.NoError(t, w.Close(context.Background()))

	assert.ErrorIs(t, w.Submit(Blob{Name: "late.json"}), ErrWriterClosed)
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Write(ctx context.Context, b Blob) error {
	<-s.release
	return nil
}

func TestWriter_CloseHonorsContext(t *testing.T) {
	sink := blockingSink{release: make(chan struct{})}
	w := NewWriter(sink, notify.NewFeed(1), zap.NewNop(), 1)
	require.NoError(t, w.Submit(Blob{Name: "slow.json"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Close(ctx), context.DeadlineExceeded)

	close(sink.release)
	assert.NoError(t, w.Close(context.Background()))
}
