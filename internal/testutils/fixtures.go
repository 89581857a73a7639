package testutils

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// CreateTestItem creates a plain normal-rarity item on a known base
func CreateTestItem(id, baseTypeID string) *equipment.Item {
	name := baseTypeID
	if def, ok := rulebook.BaseTypeByID(baseTypeID); ok {
		name = def.Name
	}
	return &equipment.Item{
		ID:         id,
		BaseTypeID: baseTypeID,
		Name:       name,
		Rarity:     shared.RarityNormal,
		ItemLevel:  1,
		Prefixes:   []equipment.Affix{},
		Suffixes:   []equipment.Affix{},
		Identified: true,
	}
}

// CreateTestRareItem creates a rare sword with a fixed prefix and suffix
func CreateTestRareItem(id string) *equipment.Item {
	return &equipment.Item{
		ID:         id,
		BaseTypeID: "sword_iron",
		Name:       "Mighty Iron Sword of Wrath",
		Rarity:     shared.RarityRare,
		ItemLevel:  30,
		Prefixes: []equipment.Affix{
			{AffixID: rulebook.AffixFlatStrength, Tier: 3, Value: 16, Position: shared.AffixPrefix},
		},
		Suffixes: []equipment.Affix{
			{AffixID: rulebook.AffixFireResistance, Tier: 3, Value: 20, Position: shared.AffixSuffix},
		},
		Identified: true,
	}
}

// CreateTestPlayerData creates player data with one equipped weapon, one
// inventory item, and some currency
func CreateTestPlayerData() *equipment.PlayerData {
	data := equipment.NewPlayerData()
	data.Equipped[shared.SlotWeapon] = CreateTestRareItem("equipped-sword")
	data.Inventory = append(data.Inventory, CreateTestItem("spare-helmet", "helmet_leather"))
	data.Currency[shared.CurrencyExalted] = 2
	data.Currency[shared.CurrencyChaos] = 4
	data.Currency[shared.CurrencyDivine] = 1
	return data
}
