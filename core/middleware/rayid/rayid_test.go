package rayid

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(FromContext(c))
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(HeaderName)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, id, string(body))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "upstream-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-1", resp.Header.Get(HeaderName))
	})
}
