package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRoller_StaysInRange(t *testing.T) {
	roller := NewSeededRoller(1)

	for i := 0; i < 1000; i++ {
		roll := roller.Roll(1, 6)
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
	}
}

func TestSeededRoller_NegativeRange(t *testing.T) {
	roller := NewSeededRoller(7)

	for i := 0; i < 100; i++ {
		roll := roller.Roll(-2, 2)
		assert.GreaterOrEqual(t, roll, -2)
		assert.LessOrEqual(t, roll, 2)
	}
}

func TestSeededRoller_DegenerateRange(t *testing.T) {
	roller := NewSeededRoller(1)

	assert.Equal(t, 5, roller.Roll(5, 5))
	assert.Equal(t, 5, roller.Roll(5, 3))
}

func TestSeededRoller_Reproducible(t *testing.T) {
	a := NewSeededRoller(99)
	b := NewSeededRoller(99)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(1, 1000), b.Roll(1, 1000))
	}
}

func TestMockRoller_ReturnsQueuedRolls(t *testing.T) {
	roller := NewMockRoller()
	roller.SetRolls([]int{3, 1, 6})

	assert.Equal(t, 3, roller.Roll(1, 6))
	assert.Equal(t, 1, roller.Roll(1, 6))
	assert.Equal(t, 6, roller.Roll(1, 6))
	assert.Equal(t, 0, roller.Remaining())
}

func TestMockRoller_PanicsWhenExhausted(t *testing.T) {
	roller := NewMockRoller()

	assert.Panics(t, func() { roller.Roll(1, 6) })
}

func TestMockRoller_PanicsOnOutOfRangeValue(t *testing.T) {
	roller := NewMockRoller()
	roller.SetNextRoll(7)

	assert.Panics(t, func() { roller.Roll(1, 6) })
}
