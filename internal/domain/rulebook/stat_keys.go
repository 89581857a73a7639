package rulebook

// StatKey identifies one accumulated stat in an aggregated bundle
type StatKey string

const (
	StatStrength     StatKey = "strength"
	StatAgility      StatKey = "agility"
	StatIntelligence StatKey = "intelligence"
	StatHealth       StatKey = "health"
	StatMana         StatKey = "mana"
	StatArmor        StatKey = "armor"
	StatAttackDamage StatKey = "attack_damage"
	StatAttackSpeed  StatKey = "attack_speed"
	StatMoveSpeed    StatKey = "move_speed"

	StatCritChance     StatKey = "crit_chance"
	StatCritMultiplier StatKey = "crit_multiplier"

	StatFireResistance      StatKey = "fire_resistance"
	StatColdResistance      StatKey = "cold_resistance"
	StatLightningResistance StatKey = "lightning_resistance"
	StatAllResistance       StatKey = "all_resistance"

	StatCooldownReduction StatKey = "cooldown_reduction"
	StatLifeLeech         StatKey = "life_leech"
	StatLifeRegen         StatKey = "life_regen"
	StatLifeOnKill        StatKey = "life_on_kill"
	StatManaOnKill        StatKey = "mana_on_kill"

	// Additive "increased" damage bucket
	StatIncPhysicalDamage  StatKey = "inc_physical_damage"
	StatIncElementalDamage StatKey = "inc_elemental_damage"
	StatIncFireDamage      StatKey = "inc_fire_damage"
	StatIncColdDamage      StatKey = "inc_cold_damage"
	StatIncLightningDamage StatKey = "inc_lightning_damage"

	// Multiplicative "more" damage bucket
	StatMoreDamage StatKey = "more_damage"
)

// StatKeys lists every known stat key in stable order. Aggregated bundles
// initialize all of them to zero.
var StatKeys = []StatKey{
	StatStrength,
	StatAgility,
	StatIntelligence,
	StatHealth,
	StatMana,
	StatArmor,
	StatAttackDamage,
	StatAttackSpeed,
	StatMoveSpeed,
	StatCritChance,
	StatCritMultiplier,
	StatFireResistance,
	StatColdResistance,
	StatLightningResistance,
	StatAllResistance,
	StatCooldownReduction,
	StatLifeLeech,
	StatLifeRegen,
	StatLifeOnKill,
	StatManaOnKill,
	StatIncPhysicalDamage,
	StatIncElementalDamage,
	StatIncFireDamage,
	StatIncColdDamage,
	StatIncLightningDamage,
	StatMoreDamage,
}

// IncreasedDamageKeys are the stat keys that sum into the additive
// increased-damage multiplier
var IncreasedDamageKeys = []StatKey{
	StatIncPhysicalDamage,
	StatIncElementalDamage,
	StatIncFireDamage,
	StatIncColdDamage,
	StatIncLightningDamage,
}

var affixStatKeys = map[AffixID]StatKey{
	AffixFlatStrength:             StatStrength,
	AffixFlatAgility:              StatAgility,
	AffixFlatIntelligence:         StatIntelligence,
	AffixFlatHealth:               StatHealth,
	AffixFlatMana:                 StatMana,
	AffixFlatArmor:                StatArmor,
	AffixFlatAttackDamage:         StatAttackDamage,
	AffixIncreasedPhysicalDamage:  StatIncPhysicalDamage,
	AffixIncreasedElementalDamage: StatIncElementalDamage,
	AffixIncreasedFireDamage:      StatIncFireDamage,
	AffixIncreasedColdDamage:      StatIncColdDamage,
	AffixIncreasedLightningDamage: StatIncLightningDamage,
	AffixMoreDamage:               StatMoreDamage,
	AffixIncreasedAttackSpeed:     StatAttackSpeed,
	AffixCritChance:               StatCritChance,
	AffixCritMultiplier:           StatCritMultiplier,
	AffixFireResistance:           StatFireResistance,
	AffixColdResistance:           StatColdResistance,
	AffixLightningResistance:      StatLightningResistance,
	AffixAllResistance:            StatAllResistance,
	AffixCooldownReduction:        StatCooldownReduction,
	AffixLifeLeech:                StatLifeLeech,
	AffixMoveSpeed:                StatMoveSpeed,
	AffixLifeRegen:                StatLifeRegen,
	AffixLifeOnKill:               StatLifeOnKill,
	AffixManaOnKill:               StatManaOnKill,
}

// StatKeyForAffix maps an affix id to the stat key it feeds. Unmapped affix
// ids are skipped during aggregation, not treated as errors.
func StatKeyForAffix(id AffixID) (StatKey, bool) {
	key, ok := affixStatKeys[id]
	return key, ok
}
