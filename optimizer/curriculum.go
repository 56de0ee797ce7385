package optimizer

// Tier is one step of a progressive-curriculum run: a fraction of the
// target level's point budget and a human label for progress
// reporting.
type Tier struct {
	Fraction float64
	Label    string
}

// CurriculumFor mirrors the reference optimizer's tier selection,
// keyed by hunter level rather than a raw point budget: low levels run
// in a single pass since there's little to warm up into, higher levels
// step through intermediate fractions so elite patterns extend rather
// than get rediscovered from scratch at the full level's budget.
func CurriculumFor(level int) []Tier {
	switch {
	case level <= 10:
		return []Tier{{1.00, "100%"}}
	case level <= 20:
		return []Tier{{0.5, "50%"}, {1.00, "100%"}}
	case level <= 40:
		return []Tier{{0.25, "25%"}, {0.5, "50%"}, {1.00, "100%"}}
	default:
		return []Tier{
			{0.05, "5%"}, {0.10, "10%"}, {0.25, "25%"},
			{0.50, "50%"}, {0.75, "75%"}, {1.00, "100%"},
		}
	}
}
