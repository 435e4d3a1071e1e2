package assessment

import "time"

// Record is one completed assessment, synthetic or live. Records are
// written once and never updated; aggregation only ever counts them.
type Record struct {
	SessionID string
	Timestamp time.Time

	// Scores holds the six pillar scores, indexed by Pillar. Each is in
	// [0, MaxScore] for its pillar; zero is a legitimate score.
	Scores [NumPillars]int

	ReadinessLevel int // 1..5
	ReadinessTitle string

	// ClientHash is a one-way hash of the originating client identity.
	// Consent records whether the participant agreed to persistence.
	// Neither is consulted by generation or reporting, but both survive
	// the persisted schema for the quiz and export layers.
	ClientHash string
	Consent    bool

	// Synthetic marks generator output so a regeneration can clear the
	// previous batch without touching live rows.
	Synthetic bool
}
