package dice

// WeightedChoice selects one candidate with probability proportional to its
// weight. The draw is a uniform integer in [1, totalWeight]; candidates are
// walked in their given order subtracting each weight, and the first
// candidate that brings the running draw to zero or below wins. Walking in
// the caller's order makes tie-breaking follow catalog order, which is part
// of the observable selection policy.
//
// Candidates whose weight function returns zero or less are never selected.
// Returns false when no candidate carries positive weight.
func WeightedChoice[T any](r Roller, candidates []T, weight func(T) int) (T, bool) {
	var zero T

	total := 0
	for _, c := range candidates {
		if w := weight(c); w > 0 {
			total += w
		}
	}
	if total == 0 {
		return zero, false
	}

	draw := r.Roll(1, total)
	for _, c := range candidates {
		w := weight(c)
		if w <= 0 {
			continue
		}
		draw -= w
		if draw <= 0 {
			return c, true
		}
	}

	// Unreachable when weights are stable across both passes
	return candidates[len(candidates)-1], true
}
