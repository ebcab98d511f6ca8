package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"profile-exporter/core/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLine(t *testing.T, env event.Envelope) string {
	t.Helper()
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return string(data)
}

func TestReplay(t *testing.T) {
	e, w, _ := newTestExporter(DefaultOptions())
	d := event.NewDispatcher()
	e.Register(d)

	capture := strings.Join([]string{
		captureLine(t, login(event.HubUserLogin, loginResponse)),
		"",
		`{"command":"BattleScenarioStart"}`,
		captureLine(t, storageListEnvelope("42", `[{"unit_id": 7}]`)),
		captureLine(t, wizardData("42", `[]`)),
	}, "\n")

	stats, err := Replay(context.Background(), strings.NewReader(capture), d, false)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 0, stats.Invalid)
	assert.Equal(t, 1, stats.Statuses["accepted"])
	assert.Equal(t, 1, stats.Statuses["ignored"])
	assert.Equal(t, 1, stats.Statuses["updated"])
	assert.Equal(t, 1, stats.Statuses[StatusCompleted])
	assert.Len(t, w.blobs, 2)
}

func TestReplay_Invalid(t *testing.T) {
	e, _, _ := newTestExporter(DefaultOptions())
	d := event.NewDispatcher()
	e.Register(d)

	capture := "not json\n" +
		`{"request":{}}` + "\n" +
		`{"command":"getUnitStorageList","request":{"wizard_id":[1]}}` + "\n" +
		captureLine(t, login(event.GuestLogin, loginResponse))

	t.Run("Abort", func(t *testing.T) {
		stats, err := Replay(context.Background(), strings.NewReader(capture), d, false)
		assert.ErrorContains(t, err, "line 1")
		assert.Equal(t, 1, stats.Invalid)
	})

	t.Run("Skip", func(t *testing.T) {
		stats, err := Replay(context.Background(), strings.NewReader(capture), d, true)
		require.NoError(t, err)
		assert.Equal(t, 4, stats.Lines)
		assert.Equal(t, 3, stats.Invalid)
		assert.Equal(t, 1, stats.Statuses["accepted"])
	})
}

func TestReplay_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Replay(ctx, strings.NewReader(`{"command":"GuestLogin"}`), event.NewDispatcher(), true)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSortProfile(t *testing.T) {
	out, err := SortProfile([]byte(loginResponse))
	require.NoError(t, err)

	var doc struct {
		UnitList []struct {
			UnitID int `json:"unit_id"`
		} `json:"unit_list"`
		ServerTime int64 `json:"server_time"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.UnitList, 2)
	assert.Equal(t, 2, doc.UnitList[0].UnitID)
	assert.Equal(t, int64(1700000000), doc.ServerTime)
	assert.True(t, strings.HasPrefix(string(out), "{\n  "))

	_, err = SortProfile([]byte(`[1,2]`))
	assert.Error(t, err)
}
