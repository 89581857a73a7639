package stats

import (
	"github.com/KirkDiggler/loot-forge/internal/domain/equipment"
	"github.com/KirkDiggler/loot-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// Bundle is the flat-additive aggregation of all equipped items. MoreDamage
// keeps each multiplicative source separate; everything else sums into
// Values.
type Bundle struct {
	Values     map[rulebook.StatKey]int
	MoreDamage []int
}

// NewBundle returns a bundle with every known stat key present at zero
func NewBundle() *Bundle {
	values := make(map[rulebook.StatKey]int, len(rulebook.StatKeys))
	for _, key := range rulebook.StatKeys {
		values[key] = 0
	}
	return &Bundle{
		Values:     values,
		MoreDamage: make([]int, 0),
	}
}

func (b *Bundle) add(key rulebook.StatKey, value int) {
	b.Values[key] += value
	if key == rulebook.StatMoreDamage {
		b.MoreDamage = append(b.MoreDamage, value)
	}
}

// CalculateTotalStats aggregates base stats and affixes across all equipped
// items in slot order. Affixes with no stat mapping contribute nothing.
func CalculateTotalStats(data *equipment.PlayerData) *Bundle {
	bundle := NewBundle()
	if data == nil {
		return bundle
	}

	for _, slot := range shared.SlotOrder {
		item := data.Equipped[slot]
		if item == nil {
			continue
		}

		if base, ok := rulebook.BaseTypeByID(item.BaseTypeID); ok {
			for _, stat := range base.BaseStats {
				if key, ok := rulebook.StatKeyForAffix(stat.Affix); ok {
					bundle.add(key, stat.Value)
				}
			}
		}

		for _, affix := range item.Prefixes {
			if key, ok := rulebook.StatKeyForAffix(affix.AffixID); ok {
				bundle.add(key, affix.Value)
			}
		}
		for _, affix := range item.Suffixes {
			if key, ok := rulebook.StatKeyForAffix(affix.AffixID); ok {
				bundle.add(key, affix.Value)
			}
		}
	}

	return bundle
}

// CharacterStats are the damage-relevant numbers pulled out of a bundle,
// plus character baselines
type CharacterStats struct {
	IncreasedPhysical  int
	IncreasedElemental int
	IncreasedFire      int
	IncreasedCold      int
	IncreasedLightning int
	MoreDamageValues   []int
	CritChance         int // percent
	CritMultiplier     int // percent, 150 means 1.5x crits
}

// DefaultCharacterStats returns the unequipped baselines
func DefaultCharacterStats() CharacterStats {
	return CharacterStats{
		CritChance:     5,
		CritMultiplier: 150,
	}
}

// CharacterStatsFrom folds a bundle onto the baseline character stats
func CharacterStatsFrom(bundle *Bundle) CharacterStats {
	cs := DefaultCharacterStats()
	if bundle == nil {
		return cs
	}
	cs.IncreasedPhysical = bundle.Values[rulebook.StatIncPhysicalDamage]
	cs.IncreasedElemental = bundle.Values[rulebook.StatIncElementalDamage]
	cs.IncreasedFire = bundle.Values[rulebook.StatIncFireDamage]
	cs.IncreasedCold = bundle.Values[rulebook.StatIncColdDamage]
	cs.IncreasedLightning = bundle.Values[rulebook.StatIncLightningDamage]
	cs.MoreDamageValues = append(cs.MoreDamageValues, bundle.MoreDamage...)
	cs.CritChance += bundle.Values[rulebook.StatCritChance]
	cs.CritMultiplier += bundle.Values[rulebook.StatCritMultiplier]
	return cs
}

// DamageSummary breaks a damage computation into its factors
type DamageSummary struct {
	IncreasedMultiplier float64
	MoreMultiplier      float64
	CritExpected        float64
	Total               float64
}

// ComputeDamage multiplies out the damage pipeline. All increased-damage
// percentages sum into one additive multiplier; each more-damage source is
// its own factor; crits contribute their expected value.
func ComputeDamage(base float64, cs CharacterStats) DamageSummary {
	increasedSum := cs.IncreasedPhysical + cs.IncreasedElemental +
		cs.IncreasedFire + cs.IncreasedCold + cs.IncreasedLightning
	increased := 1 + float64(increasedSum)/100

	more := 1.0
	for _, v := range cs.MoreDamageValues {
		more *= 1 + float64(v)/100
	}

	crit := 1 + (float64(cs.CritChance)/100)*(float64(cs.CritMultiplier-100)/100)

	return DamageSummary{
		IncreasedMultiplier: increased,
		MoreMultiplier:      more,
		CritExpected:        crit,
		Total:               base * increased * more * crit,
	}
}
