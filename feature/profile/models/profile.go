package models

// StorageBuildingMasterID is the building type code of the monster storage.
const StorageBuildingMasterID = 25

// Profile is one player's exported game state as delivered by a login event.
//
// Only the members needed for accumulation and ordering are mapped; every
// other member of the payload is kept in Extra and written back unchanged.
type Profile struct {
	WizardInfo        WizardInfo     `json:"wizard_info"`
	BuildingList      []Building     `json:"building_list"`
	UnitList          []Creature     `json:"unit_list"`
	Runes             RuneCollection `json:"runes"`
	RuneCraftItemList []CraftItem    `json:"rune_craft_item_list"`
	UnitStorageList   []Creature     `json:"unit_storage_list"`

	Extra Document `json:"-"`
}

// Identity returns the key the profile is accumulated under.
func (p *Profile) Identity() string {
	return p.WizardInfo.WizardID.String()
}

// HasRequiredData reports whether the payload carries a building list.
// A profile without one must not be merged or persisted.
func (p *Profile) HasRequiredData() bool {
	return p != nil && p.BuildingList != nil
}

// StorageBuildingID returns the id of the storage building.
// When several buildings qualify the last one wins; ok is false when there is none.
func (p *Profile) StorageBuildingID() (id Scalar, ok bool) {
	for _, b := range p.BuildingList {
		if b.IsStorage() {
			id, ok = b.BuildingID, true
		}
	}
	return id, ok
}

// Clone returns a copy of p whose top-level collections can be replaced
// without affecting p. Elements are shared.
func (p *Profile) Clone() *Profile {
	c := *p
	return &c
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	extra, err := decodeObject(data, (*plain)(p))
	if err != nil {
		return err
	}
	p.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Profile) MarshalJSON() ([]byte, error) {
	type plain Profile
	return encodeObject(plain(p), p.Extra)
}

// WizardInfo identifies the player.
type WizardInfo struct {
	WizardID   Scalar `json:"wizard_id"`
	WizardName string `json:"wizard_name"`

	Extra Document `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *WizardInfo) UnmarshalJSON(data []byte) error {
	type plain WizardInfo
	extra, err := decodeObject(data, (*plain)(w))
	if err != nil {
		return err
	}
	w.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler.
func (w WizardInfo) MarshalJSON() ([]byte, error) {
	type plain WizardInfo
	return encodeObject(plain(w), w.Extra)
}

// Building is a building placed on the player's island.
type Building struct {
	BuildingID       Scalar `json:"building_id"`
	BuildingMasterID Scalar `json:"building_master_id"`

	Extra Document `json:"-"`
}

// IsStorage reports whether the building is the monster storage. The master
// id must be the number 25; the string "25" does not qualify.
func (b Building) IsStorage() bool {
	return b.BuildingMasterID.Identical(NewScalar(StorageBuildingMasterID))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Building) UnmarshalJSON(data []byte) error {
	type plain Building
	extra, err := decodeObject(data, (*plain)(b))
	if err != nil {
		return err
	}
	b.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b Building) MarshalJSON() ([]byte, error) {
	type plain Building
	return encodeObject(plain(b), b.Extra)
}

// Creature is a monster, either in the roster or in the sealed storage list.
// BuildingID references the building the creature is located in.
type Creature struct {
	UnitID     Scalar         `json:"unit_id"`
	BuildingID Scalar         `json:"building_id"`
	Class      Scalar         `json:"class"`
	UnitLevel  Scalar         `json:"unit_level"`
	Attribute  Scalar         `json:"attribute"`
	Runes      RuneCollection `json:"runes"`

	Extra Document `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Creature) UnmarshalJSON(data []byte) error {
	type plain Creature
	extra, err := decodeObject(data, (*plain)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Creature) MarshalJSON() ([]byte, error) {
	type plain Creature
	return encodeObject(plain(c), c.Extra)
}

// Rune is a rune, equipped on a creature or held in the inventory.
type Rune struct {
	SetID  Scalar `json:"set_id"`
	SlotNo Scalar `json:"slot_no"`

	Extra Document `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rune) UnmarshalJSON(data []byte) error {
	type plain Rune
	extra, err := decodeObject(data, (*plain)(r))
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Rune) MarshalJSON() ([]byte, error) {
	type plain Rune
	return encodeObject(plain(r), r.Extra)
}

// CraftItem is a rune crafting item (grindstone, enchant gem, ...).
type CraftItem struct {
	CraftType   Scalar `json:"craft_type"`
	CraftItemID Scalar `json:"craft_item_id"`

	Extra Document `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CraftItem) UnmarshalJSON(data []byte) error {
	type plain CraftItem
	extra, err := decodeObject(data, (*plain)(c))
	if err != nil {
		return err
	}
	c.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c CraftItem) MarshalJSON() ([]byte, error) {
	type plain CraftItem
	return encodeObject(plain(c), c.Extra)
}
