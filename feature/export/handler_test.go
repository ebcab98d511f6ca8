package export

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"profile-exporter/core/event"
	"profile-exporter/core/notify"
	"profile-exporter/feature/export/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T, db *gorm.DB, index bool) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		Enabled:      true,
		SortData:     true,
		MergeStorage: true,
		FilesPath:    dir,
		Destination:  DestinationFile,
		QueueSize:    4,
		Index:        index,
	}
	svc, err := NewService(cfg, nil, "", db, zap.NewNop())
	require.NoError(t, err)
	return svc, dir
}

func setupHandlerApp(svc *Service) *fiber.App {
	app := fiber.New()
	_ = NewFeature(svc).Load(app)
	return app
}

func postEvent(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHandleEvent_Flow(t *testing.T) {
	svc, dir := setupService(t, nil, false)
	app := setupHandlerApp(svc)

	status, body := postEvent(t, app, `{"command":"HubUserLogin","request":{},"response":`+loginResponse+`}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, "42", body["identity"])

	resp, err := app.Test(httptest.NewRequest("GET", "/profiles/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/profiles", nil))
	require.NoError(t, err)
	var pending map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pending))
	assert.Equal(t, 1, pending["pending"])

	status, body = postEvent(t, app, `{"command":"GetWizardDataPart1","request":{"wizard_id":42},"response":{"GetUnitStorageList":{"unit_storage_list":[]}}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, StatusCompleted, body["status"])

	require.NoError(t, svc.Close(context.Background()))
	_, err = os.Stat(filepath.Join(dir, "Tester-42.json"))
	assert.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/profiles/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/notifications", nil))
	require.NoError(t, err)
	var events []notify.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
	require.Len(t, events, 1)
	assert.Equal(t, "Saved profile data to Tester-42.json", events[0].Message)
}

func TestHandleEvent_Errors(t *testing.T) {
	svc, _ := setupService(t, nil, false)
	app := setupHandlerApp(svc)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"InvalidJSON", `{"command":`, fiber.StatusBadRequest},
		{"MissingCommand", `{"request":{}}`, fiber.StatusBadRequest},
		{"MalformedPayload", `{"command":"getUnitStorageList","request":{"wizard_id":{}}}`, fiber.StatusBadRequest},
		{"Unhandled", `{"command":"BattleRiftDungeonResult"}`, fiber.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postEvent(t, app, tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestHandleEvent_MissingData(t *testing.T) {
	svc, _ := setupService(t, nil, false)
	app := setupHandlerApp(svc)

	status, body := postEvent(t, app, `{"command":"GuestLogin","response":{"wizard_info":{"wizard_id":3}}}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "rejected", body["status"])
	assert.Equal(t, MissingDataMessage, body["message"])

	events := svc.Notifications()
	require.Len(t, events, 1)
	assert.Equal(t, notify.TypeError, events[0].Type)
}

func TestHandleHistory(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		svc, _ := setupService(t, nil, false)
		app := setupHandlerApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/profiles/42/history", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Indexed", func(t *testing.T) {
		db := setupIndexDB(t)
		svc, _ := setupService(t, db, true)
		app := setupHandlerApp(svc)

		_, err := svc.Dispatch(context.Background(), event.Envelope{
			Command:  event.HubUserLogin,
			Response: json.RawMessage(loginResponse),
		})
		require.NoError(t, err)
		_, err = svc.Dispatch(context.Background(), event.Envelope{
			Command: event.GetUnitStorageList,
			Request: json.RawMessage(`{"wizard_id":42}`),
		})
		require.NoError(t, err)
		require.NoError(t, svc.Close(context.Background()))

		resp, err := app.Test(httptest.NewRequest("GET", "/profiles/42/history?limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var records []models.ExportRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		require.Len(t, records, 1)
		assert.Equal(t, "Tester-42.json", records[0].FileName)
	})
}

func TestNewService_InvalidDestination(t *testing.T) {
	_, err := NewService(Config{Destination: DestinationStorage}, nil, "bucket", nil, zap.NewNop())
	assert.Error(t, err)
}

func TestFeature(t *testing.T) {
	svc, _ := setupService(t, nil, false)
	f := NewFeature(svc)
	assert.Equal(t, "export", f.Name())
	assert.True(t, f.IsEnabled())
	assert.Equal(t, DestinationFile, svc.Config().Destination)
}
