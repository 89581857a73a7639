package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/loot-forge/internal/dice"
	"github.com/KirkDiggler/loot-forge/internal/domain/shared"
)

func TestChanceCurve_At(t *testing.T) {
	policy := DefaultRarityPolicy()

	assert.Equal(t, 1, policy.Legendary.At(0))
	assert.Equal(t, 2, policy.Legendary.At(20))
	assert.Equal(t, 5, policy.Legendary.At(80))
	assert.Equal(t, 5, policy.Legendary.At(500), "legendary chance is capped")

	assert.Equal(t, 50, policy.Rare.At(0))
	assert.Equal(t, 100, policy.Rare.At(50))
	assert.Equal(t, 150, policy.Rare.At(100))
	assert.Equal(t, 150, policy.Rare.At(200))

	assert.Equal(t, 200, policy.Magic.At(0))
	assert.Equal(t, 300, policy.Magic.At(50))
	assert.Equal(t, 400, policy.Magic.At(100))
	assert.Equal(t, 400, policy.Magic.At(150))
}

func TestRarityPolicy_RollBands(t *testing.T) {
	// At level 20: legendary 2, rare 70, magic 240
	policy := DefaultRarityPolicy()

	tests := []struct {
		draw     int
		expected shared.Rarity
	}{
		{draw: 1, expected: shared.RarityLegendary},
		{draw: 2, expected: shared.RarityLegendary},
		{draw: 3, expected: shared.RarityRare},
		{draw: 72, expected: shared.RarityRare},
		{draw: 73, expected: shared.RarityMagic},
		{draw: 312, expected: shared.RarityMagic},
		{draw: 313, expected: shared.RarityNormal},
		{draw: 1000, expected: shared.RarityNormal},
	}

	for _, tt := range tests {
		roller := dice.NewMockRoller()
		roller.SetNextRoll(tt.draw)

		assert.Equal(t, tt.expected, policy.Roll(roller, 20), "draw %d", tt.draw)
	}
}

func TestRarityPolicy_HigherLevelsDropBetter(t *testing.T) {
	policy := DefaultRarityPolicy()

	countAbove := func(level int) int {
		roller := dice.NewSeededRoller(11)
		above := 0
		for i := 0; i < 20000; i++ {
			if policy.Roll(roller, level) != shared.RarityNormal {
				above++
			}
		}
		return above
	}

	low := countAbove(1)
	high := countAbove(80)
	assert.Greater(t, high, low, "higher levels should drop non-normal more often")
}
