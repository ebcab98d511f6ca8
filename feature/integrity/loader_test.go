package integrity

import (
	"testing"

	"profile-exporter/core/storage/mocks"
	"profile-exporter/feature/export"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	// The database is optional and only used by the schema check.
	feature := NewFeature(mockClient, "test-bucket", export.Config{Destination: export.DestinationFile}, nil, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
