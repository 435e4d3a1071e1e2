package assessment

import "math/rand/v2"

// Pillar identifies one of the six scored skill areas. The declaration
// order is meaningful: it is the tie-break order when ranking weakness
// findings in a report.
type Pillar int

const (
	Numeracy Pillar = iota
	Reading
	Computer
	Logic
	Communication
	Mindset
)

// NumPillars is the number of scored pillars per record.
const NumPillars = 6

// scoreRange is an inclusive integer interval used for score draws.
type scoreRange struct {
	Lo, Hi int
}

func (r scoreRange) draw(rng *rand.Rand) int {
	return r.Lo + rng.IntN(r.Hi-r.Lo+1)
}

// Spec holds the scoring bounds for one pillar along with the draw
// ranges used by the synthesizer. All ranges sit strictly above
// WeakThreshold: a score at or below the threshold can only come from
// weakness enforcement, which keeps observed struggle rates tied to the
// configured targets.
type Spec struct {
	Name          string
	MaxScore      int
	WeakThreshold int // score <= WeakThreshold marks a struggle area

	base    scoreRange // pre-tier draw
	boost   scoreRange // tier-1 floor raise
	mid     scoreRange // tier-2 floor raise
	low     scoreRange // tier-4 ceiling cut
	veryLow scoreRange // tier-5 ceiling cut
}

// DefaultPillars returns the six fixed pillar specs in declaration order.
func DefaultPillars() [NumPillars]Spec {
	return [NumPillars]Spec{
		Numeracy: {
			Name: "numeracy", MaxScore: 10, WeakThreshold: 4,
			base:    scoreRange{5, 10},
			boost:   scoreRange{8, 10},
			mid:     scoreRange{7, 10},
			low:     scoreRange{5, 7},
			veryLow: scoreRange{5, 6},
		},
		Reading: {
			Name: "reading", MaxScore: 5, WeakThreshold: 2,
			base:    scoreRange{3, 5},
			boost:   scoreRange{4, 5},
			mid:     scoreRange{4, 5},
			low:     scoreRange{3, 4},
			veryLow: scoreRange{3, 3},
		},
		Computer: {
			Name: "computer", MaxScore: 10, WeakThreshold: 4,
			base:    scoreRange{5, 10},
			boost:   scoreRange{8, 10},
			mid:     scoreRange{7, 10},
			low:     scoreRange{5, 7},
			veryLow: scoreRange{5, 6},
		},
		Logic: {
			Name: "logic", MaxScore: 8, WeakThreshold: 3,
			base:    scoreRange{4, 8},
			boost:   scoreRange{6, 8},
			mid:     scoreRange{5, 8},
			low:     scoreRange{4, 5},
			veryLow: scoreRange{4, 4},
		},
		Communication: {
			Name: "communication", MaxScore: 5, WeakThreshold: 2,
			base:    scoreRange{3, 5},
			boost:   scoreRange{4, 5},
			mid:     scoreRange{4, 5},
			low:     scoreRange{3, 4},
			veryLow: scoreRange{3, 3},
		},
		Mindset: {
			Name: "mindset", MaxScore: 7, WeakThreshold: 3,
			base:    scoreRange{4, 7},
			boost:   scoreRange{6, 7},
			mid:     scoreRange{5, 7},
			low:     scoreRange{4, 5},
			veryLow: scoreRange{4, 4},
		},
	}
}
