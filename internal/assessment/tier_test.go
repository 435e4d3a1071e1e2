package assessment

import (
	"math"
	"testing"
)

func TestDefaultTiersProbabilitiesSumToOne(t *testing.T) {
	sum := 0.0
	for _, tier := range DefaultTiers() {
		sum += tier.Probability
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("tier probabilities sum = %v, want 1.0", sum)
	}
}

func TestTierForBoundaries(t *testing.T) {
	tiers := DefaultTiers()

	tests := []struct {
		name string
		r    float64
		want int
	}{
		{"zero draw", 0.0, 1},
		{"exact first boundary", 0.10, 1},
		{"just past first boundary", 0.10000001, 2},
		{"middle of third tier", 0.45, 3},
		{"exact third boundary", 0.60, 3},
		{"start of fifth tier", 0.86, 5},
		{"near one", 0.9999999, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TierFor(tiers, tt.r)
			if got.Level != tt.want {
				t.Errorf("TierFor(%v) = level %d, want %d", tt.r, got.Level, tt.want)
			}
		})
	}
}

func TestTierForFallsBackToWeakestTier(t *testing.T) {
	// Probabilities deliberately sum below 1.0; a draw above the final
	// cumulative sum must land on the last tier, not fail.
	tiers := []Tier{
		{Level: 1, Title: "a", Probability: 0.5},
		{Level: 2, Title: "b", Probability: 0.4},
	}
	got := TierFor(tiers, 0.95)
	if got.Level != 2 {
		t.Errorf("fallback tier level = %d, want 2", got.Level)
	}
}
