package procgen

// Category is one labeled alternative in a weighted selection table.
type Category struct {
	Label  string
	Weight float64
}

// CategoryTable is an ordered cumulative-probability table. Entry order is
// fixed and significant: selection walks the table front to back, so the same
// draw against the same table always lands on the same label. Weights are
// expected to be pre-normalized to sum to 1.0.
type CategoryTable struct {
	Entries  []Category
	Fallback string
}

// Pick returns the first label whose cumulative weight is >= draw. If
// floating-point rounding leaves the cumulative sum slightly under 1.0 and no
// entry satisfies the draw, the table's fallback label is returned instead of
// failing.
func (t CategoryTable) Pick(draw float64) string {
	cumulative := 0.0
	for _, e := range t.Entries {
		cumulative += e.Weight
		if draw <= cumulative {
			return e.Label
		}
	}
	return t.Fallback
}
