package generator

import (
	"github.com/KirkDiggler/loot-forge/internal/dice"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

// ChanceCurve is a level-scaled drop chance in per-mille. The chance at a
// given level is Base + level*Num/Den, capped at Cap.
type ChanceCurve struct {
	Base int
	Num  int
	Den  int
	Cap  int
}

// At returns the per-mille chance at the given level
func (c ChanceCurve) At(level int) int {
	chance := c.Base + level*c.Num/c.Den
	if chance > c.Cap {
		return c.Cap
	}
	return chance
}

// RarityPolicy controls rarity distribution for dropped items. Anything not
// captured by the three curves drops as Normal.
type RarityPolicy struct {
	Legendary ChanceCurve
	Rare      ChanceCurve
	Magic     ChanceCurve
}

// DefaultRarityPolicy returns the standard drop distribution
func DefaultRarityPolicy() RarityPolicy {
	return RarityPolicy{
		Legendary: ChanceCurve{Base: 1, Num: 1, Den: 20, Cap: 5},
		Rare:      ChanceCurve{Base: 50, Num: 1, Den: 1, Cap: 150},
		Magic:     ChanceCurve{Base: 200, Num: 2, Den: 1, Cap: 400},
	}
}

// Roll draws a rarity for a drop at the given monster level. Curves stack
// from rarest down; a single per-mille roll lands in one band.
func (p RarityPolicy) Roll(roller dice.Roller, level int) shared.Rarity {
	legendary := p.Legendary.At(level)
	rare := p.Rare.At(level)
	magic := p.Magic.At(level)

	roll := roller.Roll(1, 1000)
	switch {
	case roll <= legendary:
		return shared.RarityLegendary
	case roll <= legendary+rare:
		return shared.RarityRare
	case roll <= legendary+rare+magic:
		return shared.RarityMagic
	default:
		return shared.RarityNormal
	}
}
