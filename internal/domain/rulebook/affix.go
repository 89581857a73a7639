package rulebook

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// AffixID identifies an affix definition in the catalog
type AffixID string

const (
	// Prefixes - flat stats
	AffixFlatStrength     AffixID = "flat_strength"
	AffixFlatAgility      AffixID = "flat_agility"
	AffixFlatIntelligence AffixID = "flat_intelligence"
	AffixFlatHealth       AffixID = "flat_health"
	AffixFlatMana         AffixID = "flat_mana"
	AffixFlatArmor        AffixID = "flat_armor"
	AffixFlatAttackDamage AffixID = "flat_attack_damage"

	// Prefixes - increased damage (percent, additive bucket)
	AffixIncreasedPhysicalDamage  AffixID = "inc_physical_damage"
	AffixIncreasedElementalDamage AffixID = "inc_elemental_damage"
	AffixIncreasedFireDamage      AffixID = "inc_fire_damage"
	AffixIncreasedColdDamage      AffixID = "inc_cold_damage"
	AffixIncreasedLightningDamage AffixID = "inc_lightning_damage"

	// Prefixes - more damage (percent, multiplicative bucket, very rare)
	AffixMoreDamage AffixID = "more_damage"

	// Suffixes - offense
	AffixIncreasedAttackSpeed AffixID = "inc_attack_speed"
	AffixCritChance           AffixID = "crit_chance"
	AffixCritMultiplier       AffixID = "crit_multiplier"

	// Suffixes - resistances
	AffixFireResistance      AffixID = "fire_resistance"
	AffixColdResistance      AffixID = "cold_resistance"
	AffixLightningResistance AffixID = "lightning_resistance"
	AffixAllResistance       AffixID = "all_resistance"

	// Suffixes - utility
	AffixCooldownReduction AffixID = "cooldown_reduction"
	AffixLifeLeech         AffixID = "life_leech"
	AffixMoveSpeed         AffixID = "move_speed"
	AffixLifeRegen         AffixID = "life_regen"
	AffixLifeOnKill        AffixID = "life_on_kill"
	AffixManaOnKill        AffixID = "mana_on_kill"
)

// AffixTier is one quality band of an affix. Tier 1 is the best; higher item
// levels unlock lower tier numbers.
type AffixTier struct {
	Tier              int
	MinValue          int
	MaxValue          int
	RequiredItemLevel int
	Weight            int
}

// AffixDefinition is an immutable catalog entry. Definitions are never
// mutated after load.
type AffixDefinition struct {
	ID          AffixID
	Name        string
	Description string // display template; "{value}" is replaced with the rolled value
	Position    shared.AffixPosition
	IsPercent   bool
	Tiers       []AffixTier
	// AllowedSlots restricts where the affix may roll; empty means any slot
	AllowedSlots []shared.Slot
	// Tags support future mutual-exclusion rules
	Tags []string
}

// EligibleTiers returns the tiers unlocked at the given item level, in
// catalog order
func (d *AffixDefinition) EligibleTiers(itemLevel int) []AffixTier {
	var tiers []AffixTier
	for _, t := range d.Tiers {
		if t.RequiredItemLevel <= itemLevel {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// BestEligibleTier returns the lowest-numbered (best) tier unlocked at the
// given item level. Its weight drives affix selection, biasing toward
// affixes with strong tiers unlocked rather than raw availability.
func (d *AffixDefinition) BestEligibleTier(itemLevel int) (AffixTier, bool) {
	var best AffixTier
	found := false
	for _, t := range d.Tiers {
		if t.RequiredItemLevel > itemLevel {
			continue
		}
		if !found || t.Tier < best.Tier {
			best = t
			found = true
		}
	}
	return best, found
}

// TierByNumber looks up a tier by its tier number
func (d *AffixDefinition) TierByNumber(tier int) (AffixTier, bool) {
	for _, t := range d.Tiers {
		if t.Tier == tier {
			return t, true
		}
	}
	return AffixTier{}, false
}

// AllowsSlot reports whether the affix may roll on an item in the given
// slot. The two ring slots are interchangeable for eligibility.
func (d *AffixDefinition) AllowsSlot(slot shared.Slot) bool {
	if len(d.AllowedSlots) == 0 {
		return true
	}
	canonical := slot.Canonical()
	for _, allowed := range d.AllowedSlots {
		if allowed.Canonical() == canonical {
			return true
		}
	}
	return false
}

// AffixByID looks up an affix definition in the catalog
func AffixByID(id AffixID) (*AffixDefinition, bool) {
	def, ok := affixIndex[id]
	return def, ok
}

// AffixPool returns the full affix catalog in stable catalog order. Callers
// must not mutate the returned definitions.
func AffixPool() []*AffixDefinition {
	return affixPool
}

var affixIndex = buildAffixIndex()

func buildAffixIndex() map[AffixID]*AffixDefinition {
	index := make(map[AffixID]*AffixDefinition, len(affixPool))
	for _, def := range affixPool {
		index[def.ID] = def
	}
	return index
}
