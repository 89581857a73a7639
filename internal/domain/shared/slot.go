package shared

// Slot is a fixed equipment slot on a character
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotHelmet Slot = "helmet"
	SlotArmor  Slot = "armor"
	SlotGloves Slot = "gloves"
	SlotBoots  Slot = "boots"
	SlotBelt   Slot = "belt"
	SlotRing1  Slot = "ring1"
	SlotRing2  Slot = "ring2"
	SlotAmulet Slot = "amulet"
)

// SlotOrder is the fixed iteration order used for stat aggregation and
// serialization. Keeping it stable makes aggregation and snapshots
// deterministic.
var SlotOrder = []Slot{
	SlotWeapon,
	SlotHelmet,
	SlotArmor,
	SlotGloves,
	SlotBoots,
	SlotBelt,
	SlotRing1,
	SlotRing2,
	SlotAmulet,
}

// Canonical maps a physical slot to the slot used for catalog eligibility.
// The two ring slots share one affix and base-type pool.
func (s Slot) Canonical() Slot {
	if s == SlotRing2 {
		return SlotRing1
	}
	return s
}

// Valid reports whether the slot is one of the fixed slot set
func (s Slot) Valid() bool {
	for _, slot := range SlotOrder {
		if s == slot {
			return true
		}
	}
	return false
}
