package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"profile-exporter/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingSink struct{ err error }

func (s failingSink) Write(ctx context.Context, b Blob) error { return s.err }

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	t.Run("Root", func(t *testing.T) {
		require.NoError(t, sink.Write(context.Background(), Blob{Name: "a-1.json", Data: []byte("{}")}))
		data, err := os.ReadFile(filepath.Join(dir, "a-1.json"))
		require.NoError(t, err)
		assert.Equal(t, "{}", string(data))
	})

	t.Run("CreatesFolder", func(t *testing.T) {
		require.NoError(t, sink.Write(context.Background(), Blob{Folder: TimestampFolder, Name: "a-1-x.json", Data: []byte("[]")}))
		_, err := os.Stat(filepath.Join(dir, TimestampFolder, "a-1-x.json"))
		assert.NoError(t, err)
	})

	t.Run("Overwrites", func(t *testing.T) {
		require.NoError(t, sink.Write(context.Background(), Blob{Name: "b.json", Data: []byte("first")}))
		require.NoError(t, sink.Write(context.Background(), Blob{Name: "b.json", Data: []byte("2")}))
		data, err := os.ReadFile(filepath.Join(dir, "b.json"))
		require.NoError(t, err)
		assert.Equal(t, "2", string(data))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, sink.Write(ctx, Blob{Name: "c.json"}))
	})
}

func TestObjectSink(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "exports", "profiles/profile saves/a.json", mock.Anything, int64(2), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
			return o.ContentType == "application/json"
		})).Return(minio.UploadInfo{}, nil)

		sink := NewObjectSink(mockClient, "exports", "profiles")
		err := sink.Write(context.Background(), Blob{Folder: TimestampFolder, Name: "a.json", Data: []byte("{}")})
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "exports", "a.json", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection refused"))

		sink := NewObjectSink(mockClient, "exports", "")
		err := sink.Write(context.Background(), Blob{Name: "a.json"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestMultiSink(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	sink := MultiSink{failingSink{err: boom}, NewFileSink(dir)}

	err := sink.Write(context.Background(), Blob{Name: "m.json", Data: []byte("{}")})
	assert.ErrorIs(t, err, boom)
	_, statErr := os.Stat(filepath.Join(dir, "m.json"))
	assert.NoError(t, statErr)
}

func TestNewSink(t *testing.T) {
	mockClient := new(mocks.Client)

	tests := []struct {
		name    string
		cfg     Config
		client  *mocks.Client
		want    any
		wantErr bool
	}{
		{"File", Config{Destination: DestinationFile, FilesPath: "out"}, nil, &FileSink{}, false},
		{"Storage", Config{Destination: DestinationStorage}, mockClient, &ObjectSink{}, false},
		{"Both", Config{Destination: DestinationBoth}, mockClient, MultiSink{}, false},
		{"StorageWithoutClient", Config{Destination: DestinationStorage}, nil, nil, true},
		{"Unknown", Config{Destination: "ftp"}, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink Sink
			var err error
			if tt.client != nil {
				sink, err = NewSink(tt.cfg, tt.client, "bucket")
			} else {
				sink, err = NewSink(tt.cfg, nil, "bucket")
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, sink)
		})
	}
}

func TestConfig_IsValidDestination(t *testing.T) {
	assert.True(t, Config{Destination: DestinationFile}.IsValidDestination())
	assert.True(t, Config{Destination: DestinationBoth}.IsValidDestination())
	assert.False(t, Config{Destination: "ftp"}.IsValidDestination())
}
