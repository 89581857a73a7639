package rulebook

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// BaseStat is an intrinsic stat carried by a base type, expressed as an
// affix id so it feeds the same stat-key mapping as rolled affixes
type BaseStat struct {
	Affix AffixID
	Value int
}

// BaseTypeDefinition is an immutable catalog entry for an unmodified item
// template. Never mutated after load.
type BaseTypeDefinition struct {
	ID            string
	Name          string
	Slot          shared.Slot
	Icon          string
	BaseStats     []BaseStat
	RequiredLevel int
	DropWeight    int
}

// DefaultBaseTypeID is the fallback base used when generation is asked for
// an unknown base type id
const DefaultBaseTypeID = "sword_iron"

// baseTypes is the static base-item catalog. Order matters for weighted
// drop selection, same as the affix pool.
var baseTypes = []*BaseTypeDefinition{
	// Weapons
	{ID: "sword_iron", Name: "Iron Sword", Slot: shared.SlotWeapon, Icon: "items/sword_iron", BaseStats: []BaseStat{{Affix: AffixFlatAttackDamage, Value: 15}}, RequiredLevel: 1, DropWeight: 100},
	{ID: "sword_steel", Name: "Steel Sword", Slot: shared.SlotWeapon, Icon: "items/sword_steel", BaseStats: []BaseStat{{Affix: AffixFlatAttackDamage, Value: 30}}, RequiredLevel: 20, DropWeight: 80},
	{ID: "sword_mithril", Name: "Mithril Sword", Slot: shared.SlotWeapon, Icon: "items/sword_mithril", BaseStats: []BaseStat{{Affix: AffixFlatAttackDamage, Value: 50}}, RequiredLevel: 40, DropWeight: 50},
	{ID: "sword_dragon", Name: "Dragonbone Sword", Slot: shared.SlotWeapon, Icon: "items/sword_dragon", BaseStats: []BaseStat{{Affix: AffixFlatAttackDamage, Value: 75}}, RequiredLevel: 60, DropWeight: 20},

	// Helmets
	{ID: "helmet_leather", Name: "Leather Cap", Slot: shared.SlotHelmet, Icon: "items/helmet_leather", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 2}}, RequiredLevel: 1, DropWeight: 100},
	{ID: "helmet_iron", Name: "Iron Helmet", Slot: shared.SlotHelmet, Icon: "items/helmet_iron", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 5}}, RequiredLevel: 20, DropWeight: 80},
	{ID: "helmet_plate", Name: "Plate Helmet", Slot: shared.SlotHelmet, Icon: "items/helmet_plate", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 10}}, RequiredLevel: 40, DropWeight: 50},

	// Body armor
	{ID: "armor_cloth", Name: "Cloth Robe", Slot: shared.SlotArmor, Icon: "items/armor_cloth", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 3}}, RequiredLevel: 1, DropWeight: 100},
	{ID: "armor_chain", Name: "Chainmail", Slot: shared.SlotArmor, Icon: "items/armor_chain", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 8}}, RequiredLevel: 20, DropWeight: 80},
	{ID: "armor_plate", Name: "Plate Armor", Slot: shared.SlotArmor, Icon: "items/armor_plate", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 15}}, RequiredLevel: 40, DropWeight: 50},

	// Gloves
	{ID: "gloves_cloth", Name: "Cloth Gloves", Slot: shared.SlotGloves, Icon: "items/gloves_cloth", BaseStats: nil, RequiredLevel: 1, DropWeight: 100},
	{ID: "gloves_leather", Name: "Leather Gloves", Slot: shared.SlotGloves, Icon: "items/gloves_leather", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 2}}, RequiredLevel: 20, DropWeight: 80},

	// Boots
	{ID: "boots_leather", Name: "Leather Boots", Slot: shared.SlotBoots, Icon: "items/boots_leather", BaseStats: nil, RequiredLevel: 1, DropWeight: 100},
	{ID: "boots_iron", Name: "Iron Boots", Slot: shared.SlotBoots, Icon: "items/boots_iron", BaseStats: []BaseStat{{Affix: AffixFlatArmor, Value: 3}}, RequiredLevel: 20, DropWeight: 80},

	// Belts
	{ID: "belt_cloth", Name: "Cloth Belt", Slot: shared.SlotBelt, Icon: "items/belt_cloth", BaseStats: nil, RequiredLevel: 1, DropWeight: 100},
	{ID: "belt_leather", Name: "Leather Belt", Slot: shared.SlotBelt, Icon: "items/belt_leather", BaseStats: []BaseStat{{Affix: AffixFlatHealth, Value: 30}}, RequiredLevel: 20, DropWeight: 80},

	// Rings (base types use the canonical ring slot; either physical ring
	// slot accepts them)
	{ID: "ring_iron", Name: "Iron Ring", Slot: shared.SlotRing1, Icon: "items/ring_iron", BaseStats: nil, RequiredLevel: 1, DropWeight: 100},
	{ID: "ring_gold", Name: "Gold Ring", Slot: shared.SlotRing1, Icon: "items/ring_gold", BaseStats: nil, RequiredLevel: 20, DropWeight: 80},

	// Amulets
	{ID: "amulet_stone", Name: "Stone Amulet", Slot: shared.SlotAmulet, Icon: "items/amulet_stone", BaseStats: nil, RequiredLevel: 1, DropWeight: 100},
	{ID: "amulet_gold", Name: "Gold Amulet", Slot: shared.SlotAmulet, Icon: "items/amulet_gold", BaseStats: nil, RequiredLevel: 20, DropWeight: 80},
}

// BaseTypeByID looks up a base type definition in the catalog
func BaseTypeByID(id string) (*BaseTypeDefinition, bool) {
	def, ok := baseTypeIndex[id]
	return def, ok
}

// BaseTypes returns the full base-item catalog in stable catalog order.
// Callers must not mutate the returned definitions.
func BaseTypes() []*BaseTypeDefinition {
	return baseTypes
}

var baseTypeIndex = buildBaseTypeIndex()

func buildBaseTypeIndex() map[string]*BaseTypeDefinition {
	index := make(map[string]*BaseTypeDefinition, len(baseTypes))
	for _, def := range baseTypes {
		index[def.ID] = def
	}
	return index
}
