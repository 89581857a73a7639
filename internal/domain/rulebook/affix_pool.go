package rulebook

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// affixPool is the static affix catalog. Order matters: weighted selection
// walks it in this order, so reordering entries changes tie-break behavior.
var affixPool = []*AffixDefinition{
	// ==================== Prefixes ====================
	{
		ID:          AffixFlatStrength,
		Name:        "Strength",
		Description: "+{value} Strength",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 25, MaxValue: 30, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 18, MaxValue: 24, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 12, MaxValue: 17, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 6, MaxValue: 11, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 1, MaxValue: 5, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"attribute"},
	},
	{
		ID:          AffixFlatAgility,
		Name:        "Agility",
		Description: "+{value} Agility",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 25, MaxValue: 30, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 18, MaxValue: 24, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 12, MaxValue: 17, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 6, MaxValue: 11, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 1, MaxValue: 5, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"attribute"},
	},
	{
		ID:          AffixFlatIntelligence,
		Name:        "Intelligence",
		Description: "+{value} Intelligence",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 25, MaxValue: 30, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 18, MaxValue: 24, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 12, MaxValue: 17, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 6, MaxValue: 11, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 1, MaxValue: 5, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"attribute"},
	},
	{
		ID:          AffixFlatHealth,
		Name:        "Health",
		Description: "+{value} Maximum Health",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 90, MaxValue: 120, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 60, MaxValue: 89, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 40, MaxValue: 59, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 20, MaxValue: 39, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 5, MaxValue: 19, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"life", "defence"},
	},
	{
		ID:          AffixFlatMana,
		Name:        "Mana",
		Description: "+{value} Maximum Mana",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 70, MaxValue: 90, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 50, MaxValue: 69, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 30, MaxValue: 49, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 15, MaxValue: 29, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 5, MaxValue: 14, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"mana", "defence"},
	},
	{
		ID:          AffixFlatArmor,
		Name:        "Armor",
		Description: "+{value} Armor",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 15, MaxValue: 20, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 10, MaxValue: 14, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 6, MaxValue: 9, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 3, MaxValue: 5, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 1, MaxValue: 2, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: []shared.Slot{shared.SlotArmor, shared.SlotHelmet, shared.SlotGloves, shared.SlotBoots, shared.SlotBelt},
		Tags:         []string{"armour", "defence"},
	},
	{
		ID:          AffixFlatAttackDamage,
		Name:        "Attack Damage",
		Description: "+{value} Attack Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 30, MaxValue: 45, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 20, MaxValue: 29, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 12, MaxValue: 19, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 6, MaxValue: 11, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 1, MaxValue: 5, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotRing1, shared.SlotRing2, shared.SlotAmulet},
		Tags:         []string{"damage", "attack"},
	},
	{
		ID:          AffixIncreasedPhysicalDamage,
		Name:        "Increased Physical Damage",
		Description: "+{value}% Physical Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 35, MaxValue: 50, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 25, MaxValue: 34, RequiredItemLevel: 45, Weight: 150},
			{Tier: 3, MinValue: 15, MaxValue: 24, RequiredItemLevel: 30, Weight: 300},
			{Tier: 4, MinValue: 8, MaxValue: 14, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 3, MaxValue: 7, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotRing1, shared.SlotRing2, shared.SlotAmulet},
		Tags:         []string{"damage", "physical", "increased"},
	},
	{
		ID:          AffixIncreasedElementalDamage,
		Name:        "Increased Elemental Damage",
		Description: "+{value}% Elemental Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 30, MaxValue: 40, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 20, MaxValue: 29, RequiredItemLevel: 45, Weight: 150},
			{Tier: 3, MinValue: 12, MaxValue: 19, RequiredItemLevel: 30, Weight: 300},
			{Tier: 4, MinValue: 6, MaxValue: 11, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 2, MaxValue: 5, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotRing1, shared.SlotRing2, shared.SlotAmulet},
		Tags:         []string{"damage", "elemental", "increased"},
	},
	{
		ID:          AffixIncreasedFireDamage,
		Name:        "Increased Fire Damage",
		Description: "+{value}% Fire Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 40, MaxValue: 55, RequiredItemLevel: 60, Weight: 60},
			{Tier: 2, MinValue: 28, MaxValue: 39, RequiredItemLevel: 45, Weight: 120},
			{Tier: 3, MinValue: 18, MaxValue: 27, RequiredItemLevel: 30, Weight: 250},
			{Tier: 4, MinValue: 10, MaxValue: 17, RequiredItemLevel: 15, Weight: 400},
			{Tier: 5, MinValue: 4, MaxValue: 9, RequiredItemLevel: 1, Weight: 600},
		},
		AllowedSlots: nil,
		Tags:         []string{"damage", "fire", "increased"},
	},
	{
		ID:          AffixIncreasedColdDamage,
		Name:        "Increased Cold Damage",
		Description: "+{value}% Cold Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 40, MaxValue: 55, RequiredItemLevel: 60, Weight: 60},
			{Tier: 2, MinValue: 28, MaxValue: 39, RequiredItemLevel: 45, Weight: 120},
			{Tier: 3, MinValue: 18, MaxValue: 27, RequiredItemLevel: 30, Weight: 250},
			{Tier: 4, MinValue: 10, MaxValue: 17, RequiredItemLevel: 15, Weight: 400},
			{Tier: 5, MinValue: 4, MaxValue: 9, RequiredItemLevel: 1, Weight: 600},
		},
		AllowedSlots: nil,
		Tags:         []string{"damage", "cold", "increased"},
	},
	{
		ID:          AffixIncreasedLightningDamage,
		Name:        "Increased Lightning Damage",
		Description: "+{value}% Lightning Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 40, MaxValue: 55, RequiredItemLevel: 60, Weight: 60},
			{Tier: 2, MinValue: 28, MaxValue: 39, RequiredItemLevel: 45, Weight: 120},
			{Tier: 3, MinValue: 18, MaxValue: 27, RequiredItemLevel: 30, Weight: 250},
			{Tier: 4, MinValue: 10, MaxValue: 17, RequiredItemLevel: 15, Weight: 400},
			{Tier: 5, MinValue: 4, MaxValue: 9, RequiredItemLevel: 1, Weight: 600},
		},
		AllowedSlots: nil,
		Tags:         []string{"damage", "lightning", "increased"},
	},
	{
		// The multiplicative bucket. Kept deliberately scarce: three tiers,
		// tiny weights, weapon and amulet only.
		ID:          AffixMoreDamage,
		Name:        "More Damage",
		Description: "+{value}% More Damage",
		Position:    shared.AffixPrefix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 8, MaxValue: 12, RequiredItemLevel: 70, Weight: 5},
			{Tier: 2, MinValue: 5, MaxValue: 7, RequiredItemLevel: 55, Weight: 10},
			{Tier: 3, MinValue: 3, MaxValue: 4, RequiredItemLevel: 40, Weight: 20},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotAmulet},
		Tags:         []string{"damage", "more"},
	},

	// ==================== Suffixes ====================
	{
		ID:          AffixIncreasedAttackSpeed,
		Name:        "Attack Speed",
		Description: "+{value}% Attack Speed",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 12, MaxValue: 15, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 8, MaxValue: 11, RequiredItemLevel: 45, Weight: 150},
			{Tier: 3, MinValue: 5, MaxValue: 7, RequiredItemLevel: 30, Weight: 300},
			{Tier: 4, MinValue: 3, MaxValue: 4, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 1, MaxValue: 2, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotGloves, shared.SlotRing1, shared.SlotRing2},
		Tags:         []string{"attack", "speed"},
	},
	{
		ID:          AffixCritChance,
		Name:        "Critical Chance",
		Description: "+{value}% Critical Chance",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 35, MaxValue: 45, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 25, MaxValue: 34, RequiredItemLevel: 45, Weight: 150},
			{Tier: 3, MinValue: 15, MaxValue: 24, RequiredItemLevel: 30, Weight: 300},
			{Tier: 4, MinValue: 8, MaxValue: 14, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 3, MaxValue: 7, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotRing1, shared.SlotRing2, shared.SlotAmulet},
		Tags:         []string{"crit", "attack"},
	},
	{
		ID:          AffixCritMultiplier,
		Name:        "Critical Damage",
		Description: "+{value}% Critical Damage",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 40, MaxValue: 55, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 28, MaxValue: 39, RequiredItemLevel: 45, Weight: 150},
			{Tier: 3, MinValue: 18, MaxValue: 27, RequiredItemLevel: 30, Weight: 300},
			{Tier: 4, MinValue: 10, MaxValue: 17, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 5, MaxValue: 9, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotRing1, shared.SlotRing2, shared.SlotAmulet},
		Tags:         []string{"crit", "attack"},
	},
	{
		ID:          AffixFireResistance,
		Name:        "Fire Resistance",
		Description: "+{value}% Fire Resistance",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 36, MaxValue: 45, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 26, MaxValue: 35, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 16, MaxValue: 25, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 8, MaxValue: 15, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 3, MaxValue: 7, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"resistance", "fire"},
	},
	{
		ID:          AffixColdResistance,
		Name:        "Cold Resistance",
		Description: "+{value}% Cold Resistance",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 36, MaxValue: 45, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 26, MaxValue: 35, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 16, MaxValue: 25, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 8, MaxValue: 15, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 3, MaxValue: 7, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"resistance", "cold"},
	},
	{
		ID:          AffixLightningResistance,
		Name:        "Lightning Resistance",
		Description: "+{value}% Lightning Resistance",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 36, MaxValue: 45, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 26, MaxValue: 35, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 16, MaxValue: 25, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 8, MaxValue: 15, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 3, MaxValue: 7, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"resistance", "lightning"},
	},
	{
		ID:          AffixAllResistance,
		Name:        "All Resistances",
		Description: "+{value}% All Resistances",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 15, MaxValue: 20, RequiredItemLevel: 60, Weight: 30},
			{Tier: 2, MinValue: 10, MaxValue: 14, RequiredItemLevel: 45, Weight: 60},
			{Tier: 3, MinValue: 6, MaxValue: 9, RequiredItemLevel: 30, Weight: 120},
			{Tier: 4, MinValue: 3, MaxValue: 5, RequiredItemLevel: 15, Weight: 200},
		},
		AllowedSlots: nil,
		Tags:         []string{"resistance", "all"},
	},
	{
		ID:          AffixCooldownReduction,
		Name:        "Cooldown Reduction",
		Description: "+{value}% Cooldown Reduction",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 12, MaxValue: 15, RequiredItemLevel: 60, Weight: 60},
			{Tier: 2, MinValue: 8, MaxValue: 11, RequiredItemLevel: 45, Weight: 120},
			{Tier: 3, MinValue: 5, MaxValue: 7, RequiredItemLevel: 30, Weight: 250},
			{Tier: 4, MinValue: 2, MaxValue: 4, RequiredItemLevel: 15, Weight: 400},
		},
		AllowedSlots: []shared.Slot{shared.SlotHelmet, shared.SlotBelt, shared.SlotAmulet},
		Tags:         []string{"utility", "cooldown"},
	},
	{
		ID:          AffixLifeLeech,
		Name:        "Life Leech",
		Description: "+{value}% Life Leech",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 4, MaxValue: 6, RequiredItemLevel: 60, Weight: 60},
			{Tier: 2, MinValue: 3, MaxValue: 3, RequiredItemLevel: 45, Weight: 120},
			{Tier: 3, MinValue: 2, MaxValue: 2, RequiredItemLevel: 30, Weight: 250},
			{Tier: 4, MinValue: 1, MaxValue: 1, RequiredItemLevel: 15, Weight: 400},
		},
		AllowedSlots: []shared.Slot{shared.SlotWeapon, shared.SlotRing1, shared.SlotRing2, shared.SlotAmulet, shared.SlotGloves},
		Tags:         []string{"life", "leech"},
	},
	{
		ID:          AffixMoveSpeed,
		Name:        "Movement Speed",
		Description: "+{value}% Movement Speed",
		Position:    shared.AffixSuffix,
		IsPercent:   true,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 28, MaxValue: 35, RequiredItemLevel: 60, Weight: 50},
			{Tier: 2, MinValue: 20, MaxValue: 27, RequiredItemLevel: 45, Weight: 100},
			{Tier: 3, MinValue: 12, MaxValue: 19, RequiredItemLevel: 30, Weight: 200},
			{Tier: 4, MinValue: 5, MaxValue: 11, RequiredItemLevel: 15, Weight: 400},
		},
		AllowedSlots: []shared.Slot{shared.SlotBoots},
		Tags:         []string{"movement", "speed"},
	},
	{
		ID:          AffixLifeRegen,
		Name:        "Life Regeneration",
		Description: "+{value} Life Regenerated per Second",
		Position:    shared.AffixSuffix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 15, MaxValue: 20, RequiredItemLevel: 60, Weight: 100},
			{Tier: 2, MinValue: 10, MaxValue: 14, RequiredItemLevel: 45, Weight: 200},
			{Tier: 3, MinValue: 6, MaxValue: 9, RequiredItemLevel: 30, Weight: 400},
			{Tier: 4, MinValue: 3, MaxValue: 5, RequiredItemLevel: 15, Weight: 600},
			{Tier: 5, MinValue: 1, MaxValue: 2, RequiredItemLevel: 1, Weight: 800},
		},
		AllowedSlots: nil,
		Tags:         []string{"life", "regen"},
	},
	{
		ID:          AffixLifeOnKill,
		Name:        "Life on Kill",
		Description: "Recover {value} Life on Kill",
		Position:    shared.AffixSuffix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 25, MaxValue: 35, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 18, MaxValue: 24, RequiredItemLevel: 45, Weight: 160},
			{Tier: 3, MinValue: 12, MaxValue: 17, RequiredItemLevel: 30, Weight: 320},
			{Tier: 4, MinValue: 6, MaxValue: 11, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 2, MaxValue: 5, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: nil,
		Tags:         []string{"life", "kill"},
	},
	{
		ID:          AffixManaOnKill,
		Name:        "Mana on Kill",
		Description: "Recover {value} Mana on Kill",
		Position:    shared.AffixSuffix,
		IsPercent:   false,
		Tiers: []AffixTier{
			{Tier: 1, MinValue: 15, MaxValue: 20, RequiredItemLevel: 60, Weight: 80},
			{Tier: 2, MinValue: 10, MaxValue: 14, RequiredItemLevel: 45, Weight: 160},
			{Tier: 3, MinValue: 6, MaxValue: 9, RequiredItemLevel: 30, Weight: 320},
			{Tier: 4, MinValue: 3, MaxValue: 5, RequiredItemLevel: 15, Weight: 500},
			{Tier: 5, MinValue: 1, MaxValue: 2, RequiredItemLevel: 1, Weight: 700},
		},
		AllowedSlots: nil,
		Tags:         []string{"mana", "kill"},
	},
}
