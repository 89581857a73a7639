package equipment

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// Affix is one rolled modifier on an item instance
type Affix struct {
	AffixID  rulebook.AffixID     `json:"affix_id"`
	Tier     int                  `json:"tier"`
	Value    int                  `json:"value"`
	Position shared.AffixPosition `json:"position"`
}

// Item is a generated item instance. The base type, rarity, and item level
// are fixed at creation; affixes change only through currency operations.
type Item struct {
	ID         string        `json:"id"`
	BaseTypeID string        `json:"base_type_id"`
	Name       string        `json:"name"`
	Rarity     shared.Rarity `json:"rarity"`
	ItemLevel  int           `json:"item_level"`
	Prefixes   []Affix       `json:"prefixes"`
	Suffixes   []Affix       `json:"suffixes"`
	Identified bool          `json:"identified"`
	Corrupted  bool          `json:"corrupted"`
}

// HasAffix reports whether the item already carries the given affix id in
// either position
func (i *Item) HasAffix(id rulebook.AffixID) bool {
	for _, a := range i.Prefixes {
		if a.AffixID == id {
			return true
		}
	}
	for _, a := range i.Suffixes {
		if a.AffixID == id {
			return true
		}
	}
	return false
}

// AffixCount returns the total number of rolled affixes
func (i *Item) AffixCount() int {
	return len(i.Prefixes) + len(i.Suffixes)
}

// Slot returns the equip slot of the item's base type. Unknown base types
// report the default base's slot so stale items stay usable.
func (i *Item) Slot() shared.Slot {
	if def, ok := rulebook.BaseTypeByID(i.BaseTypeID); ok {
		return def.Slot
	}
	def, _ := rulebook.BaseTypeByID(rulebook.DefaultBaseTypeID)
	return def.Slot
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	clone := *i
	clone.Prefixes = make([]Affix, len(i.Prefixes))
	copy(clone.Prefixes, i.Prefixes)
	clone.Suffixes = make([]Affix, len(i.Suffixes))
	copy(clone.Suffixes, i.Suffixes)
	return &clone
}
