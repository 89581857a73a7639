package dice

// Roller provides an interface for uniform integer rolls
// This allows us to inject deterministic sequences for testing
type Roller interface {
	// Roll returns a uniformly distributed integer in [min, max] inclusive
	Roll(min, max int) int
}
