package assessment

// Tier is one of five ordered readiness levels. Level 1 is strongest,
// level 5 weakest; higher levels correlate with lower generated scores.
type Tier struct {
	Level       int
	Title       string
	Probability float64
}

// DefaultTiers returns the five readiness tiers in level order.
// Probabilities sum to 1.0.
func DefaultTiers() []Tier {
	return []Tier{
		{Level: 1, Title: "Launch Ready", Probability: 0.10},
		{Level: 2, Title: "Nearly Ready", Probability: 0.20},
		{Level: 3, Title: "On Track", Probability: 0.30},
		{Level: 4, Title: "Needs Support", Probability: 0.25},
		{Level: 5, Title: "Foundational", Probability: 0.15},
	}
}

// TierFor selects a tier for a uniform draw r in [0,1) by walking the
// cumulative probabilities and returning the first tier whose running
// sum reaches r. When the probabilities drift below 1.0 and leave r
// uncovered, the last (weakest) tier is returned; that fallback is
// deliberate, not an error.
func TierFor(tiers []Tier, r float64) Tier {
	cum := 0.0
	for _, t := range tiers {
		cum += t.Probability
		if cum >= r {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
