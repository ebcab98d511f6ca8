package ordering

import (
	"slices"

	"profile-exporter/feature/profile/models"
)

// Creature roster keys apart from storage residency, which depends on the profile.
var (
	byClass     = Desc(func(c models.Creature) any { return scalar(c.Class) })
	byUnitLevel = Desc(func(c models.Creature) any { return scalar(c.UnitLevel) })
	byAttribute = Asc(func(c models.Creature) any { return scalar(c.Attribute) })
	byUnitID    = Asc(func(c models.Creature) any { return scalar(c.UnitID) })
)

var (
	equippedRuneOrder = By(
		Asc(func(r models.Rune) any { return scalar(r.SlotNo) }),
	)
	inventoryRuneOrder = By(
		Asc(func(r models.Rune) any { return scalar(r.SetID) }),
		Asc(func(r models.Rune) any { return scalar(r.SlotNo) }),
	)
	craftItemOrder = By(
		Asc(func(c models.CraftItem) any { return scalar(c.CraftType) }),
		Asc(func(c models.CraftItem) any { return scalar(c.CraftItemID) }),
	)
)

// Order sorts the nested collections of p into the in-game presentation
// order and returns p. Only element order changes; sparse rune mappings
// are normalized into sequences first.
//
// The storage list is left in the order it was received.
func Order(p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}

	slices.SortStableFunc(p.UnitList, CreatureOrder(p))

	for i := range p.UnitList {
		runes := &p.UnitList[i].Runes
		runes.Normalize()
		slices.SortStableFunc(runes.Items, equippedRuneOrder)
	}

	p.Runes.Normalize()
	slices.SortStableFunc(p.Runes.Items, inventoryRuneOrder)

	slices.SortStableFunc(p.RuneCraftItemList, craftItemOrder)

	return p
}

// CreatureOrder returns the roster comparator for p: creatures outside the
// storage building first, then class and level descending, attribute and
// unit id ascending. Without a storage building the residency key is skipped.
func CreatureOrder(p *models.Profile) func(a, b models.Creature) int {
	storageID, ok := p.StorageBuildingID()
	if !ok {
		return By(byClass, byUnitLevel, byAttribute, byUnitID)
	}

	inStorage := Asc(func(c models.Creature) any {
		if c.BuildingID.Identical(storageID) {
			return int64(1)
		}
		return int64(0)
	})
	return By(inStorage, byClass, byUnitLevel, byAttribute, byUnitID)
}
