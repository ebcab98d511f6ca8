package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappedKeys(t *testing.T) {
	type plain Creature
	keys := mappedKeys(reflect.TypeOf(plain{}))

	assert.Equal(t, map[string]struct{}{
		"unit_id":     {},
		"building_id": {},
		"class":       {},
		"unit_level":  {},
		"attribute":   {},
		"runes":       {},
	}, keys)

	again := mappedKeys(reflect.TypeOf(plain{}))
	assert.Equal(t, reflect.ValueOf(keys).Pointer(), reflect.ValueOf(again).Pointer())
}

func TestDecodeObject_KeepsOnlyUnmappedMembers(t *testing.T) {
	type plain Building
	var b plain
	extra, err := decodeObject([]byte(`{"building_id": 3, "building_master_id": null, "island_id": 1}`), &b)
	require.NoError(t, err)

	assert.Equal(t, Document{"island_id": []byte("1")}, extra)
	assert.Equal(t, "3", b.BuildingID.String())
	assert.True(t, b.BuildingMasterID.IsZero())

	extra, err = decodeObject([]byte(`{"building_id": 3}`), &b)
	require.NoError(t, err)
	assert.Nil(t, extra)
}
