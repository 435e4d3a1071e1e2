package quiz

// Config tunes the quiz conversation and scoring calls.
type Config struct {
	// MaxTurnTokens caps a single interviewer reply.
	MaxTurnTokens int

	// MaxScoreTokens caps the structured scoring payload.
	MaxScoreTokens int

	// Temperature for conversation turns. Scoring always runs at 0.
	Temperature float64
}

// DefaultConfig returns the standard quiz tuning.
func DefaultConfig() Config {
	return Config{
		MaxTurnTokens:  600,
		MaxScoreTokens: 300,
		Temperature:    0.7,
	}
}
