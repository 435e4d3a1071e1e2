package assessment

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Config gathers everything the synthesizer and reporter need: pillar
// specs, tier model, and the per-pillar weakness targets.
type Config struct {
	Pillars [NumPillars]Spec
	Tiers   []Tier

	// WeaknessTargets is the fraction of the synthetic population to
	// force at-or-below each pillar's weak threshold. Targets are
	// independent per pillar; one record can be forced weak in several
	// pillars at once.
	WeaknessTargets [NumPillars]float64

	// Window is how far back generated timestamps may fall.
	Window time.Duration

	// Now supplies the generation time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the standard cohort model.
func DefaultConfig() Config {
	return Config{
		Pillars: DefaultPillars(),
		Tiers:   DefaultTiers(),
		WeaknessTargets: [NumPillars]float64{
			Numeracy:      0.62,
			Reading:       0.68,
			Computer:      0.55,
			Logic:         0.50,
			Communication: 0.45,
			Mindset:       0.40,
		},
		Window: 30 * 24 * time.Hour,
	}
}

// Synthesizer produces synthetic assessment records from an injected
// random source. It holds no shared mutable state beyond that source,
// so independent callers with independent sources may run concurrently.
type Synthesizer struct {
	cfg Config
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer. The random source must not be
// shared with another synthesizer: reused draws would correlate records
// and skew the target distributions.
func NewSynthesizer(cfg Config, rng *rand.Rand) *Synthesizer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Synthesizer{cfg: cfg, rng: rng}
}

// Generate produces one synthetic record: tier selection, base score
// draws, tier shaping, then weakness enforcement. The two shaping
// mechanisms are independent on purpose — a tier-1 record can still be
// forced weak in any pillar — and their order matters: tier clamps
// first, weakness clamps second.
func (s *Synthesizer) Generate() Record {
	tier := TierFor(s.cfg.Tiers, s.rng.Float64())

	var scores [NumPillars]int
	for p, spec := range s.cfg.Pillars {
		scores[p] = spec.base.draw(s.rng)
	}

	s.applyTier(tier, &scores)
	s.enforceWeakness(&scores)

	now := s.cfg.Now()
	ts := now.Add(-time.Duration(s.rng.Int64N(int64(s.cfg.Window))))

	return Record{
		SessionID:      uuid.NewString(),
		Timestamp:      ts,
		Scores:         scores,
		ReadinessLevel: tier.Level,
		ReadinessTitle: tier.Title,
		Synthetic:      true,
	}
}

// GenerateBatch produces n independent records.
func (s *Synthesizer) GenerateBatch(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = s.Generate()
	}
	return out
}

// tier-2 raises only these pillars; tier-4 lowers only its set. Tiers 1
// and 5 touch all six, tier 3 leaves the base draw untouched.
var (
	tier2Pillars = []Pillar{Numeracy, Computer, Mindset}
	tier4Pillars = []Pillar{Numeracy, Reading, Logic, Communication}
)

// applyTier shapes the base draws toward the selected tier. Every
// adjustment is a one-sided clamp against a fresh sub-range draw, never
// an overwrite, so a strong base draw can still dominate a boost and a
// weak one can dominate a reduction.
func (s *Synthesizer) applyTier(tier Tier, scores *[NumPillars]int) {
	switch tier.Level {
	case 1:
		for p, spec := range s.cfg.Pillars {
			scores[p] = max(scores[p], spec.boost.draw(s.rng))
		}
	case 2:
		for _, p := range tier2Pillars {
			scores[p] = max(scores[p], s.cfg.Pillars[p].mid.draw(s.rng))
		}
	case 4:
		for _, p := range tier4Pillars {
			scores[p] = min(scores[p], s.cfg.Pillars[p].low.draw(s.rng))
		}
	case 5:
		for p, spec := range s.cfg.Pillars {
			scores[p] = min(scores[p], spec.veryLow.draw(s.rng))
		}
	}
}

// enforceWeakness independently clamps each pillar, with probability
// equal to its target, down to a draw in [0, WeakThreshold]. Runs after
// tier shaping and only ever lowers a score.
func (s *Synthesizer) enforceWeakness(scores *[NumPillars]int) {
	for p, spec := range s.cfg.Pillars {
		if s.rng.Float64() < s.cfg.WeaknessTargets[p] {
			weak := s.rng.IntN(spec.WeakThreshold + 1)
			scores[p] = min(scores[p], weak)
		}
	}
}
