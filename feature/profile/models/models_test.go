package models_test

import (
	"encoding/json"
	"testing"

	"profile-exporter/feature/profile/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"command": "HubUserLogin",
	"wizard_info": {"wizard_id": 42, "wizard_name": "Tester & Co", "wizard_level": 50},
	"building_list": [
		{"building_id": 100, "building_master_id": 1, "island_id": 1},
		{"building_id": 200, "building_master_id": 25}
	],
	"unit_list": [
		{"unit_id": 7, "building_id": 200, "class": 5, "unit_level": 40, "attribute": 2,
		 "unit_master_id": 13413,
		 "runes": {"0": {"set_id": 1, "slot_no": 2, "rune_id": 11}, "1": {"set_id": 3, "slot_no": 1}}}
	],
	"runes": [{"set_id": 2, "slot_no": 1}],
	"rune_craft_item_list": [{"craft_type": 1, "craft_item_id": 9, "amount": 2}]
}`

func TestProfile_Decode(t *testing.T) {
	var p models.Profile
	require.NoError(t, json.Unmarshal([]byte(samplePayload), &p))

	assert.Equal(t, "42", p.Identity())
	assert.Equal(t, "Tester & Co", p.WizardInfo.WizardName)
	assert.True(t, p.HasRequiredData())
	assert.Len(t, p.BuildingList, 2)
	require.Len(t, p.UnitList, 1)
	assert.True(t, p.UnitList[0].Runes.Sparse())
	assert.Equal(t, 2, p.UnitList[0].Runes.Len())
	assert.False(t, p.Runes.Sparse())
	assert.Nil(t, p.UnitStorageList)

	assert.Contains(t, p.Extra, "command")
	assert.Contains(t, p.WizardInfo.Extra, "wizard_level")
	assert.Contains(t, p.UnitList[0].Extra, "unit_master_id")
	assert.Contains(t, p.RuneCraftItemList[0].Extra, "amount")
	assert.NotContains(t, p.Extra, "building_list")
}

func TestProfile_RoundTripKeepsUnmappedMembers(t *testing.T) {
	var p models.Profile
	require.NoError(t, json.Unmarshal([]byte(samplePayload), &p))

	out, err := models.MarshalIndent(&p)
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, json.Unmarshal([]byte(samplePayload), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
	assert.Contains(t, string(out), "Tester & Co")
	assert.Contains(t, string(out), "\n  \"building_list\"")
}

func TestProfile_MissingBuildingList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"Absent", `{"wizard_info": {"wizard_id": 1}}`},
		{"Null", `{"wizard_info": {"wizard_id": 1}, "building_list": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p models.Profile
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))
			assert.False(t, p.HasRequiredData())
		})
	}

	var empty models.Profile
	require.NoError(t, json.Unmarshal([]byte(`{"building_list": []}`), &empty))
	assert.True(t, empty.HasRequiredData())
}

func TestProfile_StorageBuildingID(t *testing.T) {
	p := &models.Profile{BuildingList: []models.Building{
		{BuildingID: models.NewScalar(1), BuildingMasterID: models.NewScalar(25)},
		{BuildingID: models.NewScalar(2), BuildingMasterID: models.NewScalar(3)},
		{BuildingID: models.NewScalar(4), BuildingMasterID: models.NewScalar(25.0)},
		{BuildingID: models.NewScalar(5), BuildingMasterID: models.NewScalar("25")},
	}}

	id, ok := p.StorageBuildingID()
	assert.True(t, ok)
	assert.Equal(t, "4", id.String())

	quoted := &models.Profile{BuildingList: []models.Building{
		{BuildingID: models.NewScalar(5), BuildingMasterID: models.NewScalar("25")},
	}}
	_, ok = quoted.StorageBuildingID()
	assert.False(t, ok)

	none := &models.Profile{BuildingList: []models.Building{}}
	_, ok = none.StorageBuildingID()
	assert.False(t, ok)
}

func TestScalar(t *testing.T) {
	var s models.Scalar
	require.NoError(t, json.Unmarshal([]byte(`9876543210`), &s))
	assert.Equal(t, int64(9876543210), s.Value())
	assert.Equal(t, "9876543210", s.String())

	require.NoError(t, json.Unmarshal([]byte(`"S"`), &s))
	assert.Equal(t, "S", s.Value())

	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.True(t, s.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`true`), &s))

	assert.Equal(t, -1, models.NewScalar(9).Compare(models.NewScalar(10)))
	assert.True(t, models.NewScalar("S").Equal(models.NewScalar("S")))
	assert.True(t, models.NewScalar(5).Equal(models.NewScalar("5")))

	assert.True(t, models.NewScalar(25).Identical(models.NewScalar(25)))
	assert.True(t, models.NewScalar("S").Identical(models.NewScalar("S")))
	assert.False(t, models.NewScalar(25).Identical(models.NewScalar("25")))
	assert.False(t, models.Scalar{}.Identical(models.Scalar{}))

	raw, err := json.Marshal(models.NewScalar(1.50))
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(raw))
}

func TestRuneCollection_Shapes(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		var c models.RuneCollection
		require.NoError(t, json.Unmarshal([]byte(`[{"slot_no": 2}, {"slot_no": 1}]`), &c))
		assert.False(t, c.Sparse())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("MappingUsesObjectValueOrder", func(t *testing.T) {
		var c models.RuneCollection
		require.NoError(t, json.Unmarshal([]byte(`{"b": {"slot_no": 9}, "10": {"slot_no": 3}, "2": {"slot_no": 1}}`), &c))
		require.True(t, c.Sparse())
		assert.Equal(t, []string{"2", "10", "b"}, c.Keys)
		assert.Equal(t, "1", c.Items[0].SlotNo.String())
		assert.Equal(t, "3", c.Items[1].SlotNo.String())
		assert.Equal(t, "9", c.Items[2].SlotNo.String())
	})

	t.Run("MappingReencodesAsMapping", func(t *testing.T) {
		var c models.RuneCollection
		require.NoError(t, json.Unmarshal([]byte(`{"0": {"slot_no": 2}}`), &c))
		out, err := json.Marshal(c)
		require.NoError(t, err)
		assert.JSONEq(t, `{"0": {"slot_no": 2}}`, string(out))

		c.Normalize()
		assert.False(t, c.Sparse())
		out, err = json.Marshal(c)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"slot_no": 2}]`, string(out))
	})

	t.Run("EmptyMappingNormalizesToEmptyList", func(t *testing.T) {
		var c models.RuneCollection
		require.NoError(t, json.Unmarshal([]byte(`{}`), &c))
		c.Normalize()
		out, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(out))
	})

	t.Run("Invalid", func(t *testing.T) {
		var c models.RuneCollection
		assert.Error(t, json.Unmarshal([]byte(`"nope"`), &c))
	})
}

func TestProfile_NullMembersAreOmitted(t *testing.T) {
	p := models.Profile{
		WizardInfo:   models.WizardInfo{WizardID: models.NewScalar(1), WizardName: "a"},
		BuildingList: []models.Building{},
	}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wizard_info": {"wizard_id": 1, "wizard_name": "a"}, "building_list": []}`, string(out))
}
