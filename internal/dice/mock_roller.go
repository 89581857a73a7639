package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock roller
func NewMockRoller() *MockRoller {
	return &MockRoller{
		rolls: []int{},
	}
}

// SetNextRoll appends a roll result to the queue
func (m *MockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued roll results
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Remaining reports how many queued rolls are left unconsumed
func (m *MockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Roll implements Roller.Roll. It panics when the queue is exhausted or the
// queued value falls outside [min, max], so a miscounted test sequence fails
// loudly instead of skewing later assertions.
func (m *MockRoller) Roll(min, max int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		panic(fmt.Sprintf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls)))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++

	if roll < min || roll > max {
		panic(fmt.Sprintf("predetermined roll %d out of range [%d, %d]", roll, min, max))
	}
	return roll
}
