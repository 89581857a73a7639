package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller using math/rand
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the wall clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed for reproducible sequences
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}
