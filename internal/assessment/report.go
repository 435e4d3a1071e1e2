package assessment

import "sort"

// TierStat is the share of records landing in one readiness tier.
type TierStat struct {
	Level   int     `json:"level"`
	Title   string  `json:"title"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// PillarStat aggregates one pillar across a record set.
type PillarStat struct {
	Pillar     string  `json:"pillar"`
	WeakCount  int     `json:"weak_count"`
	WeakRate   float64 `json:"weak_rate"`
	Average    float64 `json:"average"`
	AveragePct float64 `json:"average_pct"` // average as a percent of MaxScore
}

// Report is the read-only output of Summarize.
type Report struct {
	Total   int          `json:"total"`
	Tiers   []TierStat   `json:"tiers"`
	Pillars []PillarStat `json:"pillars"`

	// Ranked orders the pillar stats by descending weak rate, ties
	// broken by pillar declaration order. The first two entries are the
	// primary and secondary findings.
	Ranked    []PillarStat `json:"ranked"`
	Primary   string       `json:"primary"`
	Secondary string       `json:"secondary"`
}

// Summarize computes the readiness distribution, per-pillar weakness
// rates and averages, and the weakness ranking for a record set. It
// never mutates its input. An empty input yields zero percentages and
// zero averages rather than an error or NaN.
func Summarize(cfg Config, records []Record) Report {
	total := len(records)

	tierCounts := make(map[int]int, len(cfg.Tiers))
	var weakCounts, scoreSums [NumPillars]int
	for _, rec := range records {
		tierCounts[rec.ReadinessLevel]++
		for p, spec := range cfg.Pillars {
			if rec.Scores[p] <= spec.WeakThreshold {
				weakCounts[p]++
			}
			scoreSums[p] += rec.Scores[p]
		}
	}

	rep := Report{Total: total}

	for _, t := range cfg.Tiers {
		stat := TierStat{Level: t.Level, Title: t.Title, Count: tierCounts[t.Level]}
		if total > 0 {
			stat.Percent = 100 * float64(stat.Count) / float64(total)
		}
		rep.Tiers = append(rep.Tiers, stat)
	}

	for p, spec := range cfg.Pillars {
		stat := PillarStat{Pillar: spec.Name, WeakCount: weakCounts[p]}
		if total > 0 {
			stat.WeakRate = float64(weakCounts[p]) / float64(total)
			stat.Average = float64(scoreSums[p]) / float64(total)
			stat.AveragePct = 100 * stat.Average / float64(spec.MaxScore)
		}
		rep.Pillars = append(rep.Pillars, stat)
	}

	rep.Ranked = append([]PillarStat(nil), rep.Pillars...)
	sort.SliceStable(rep.Ranked, func(i, j int) bool {
		return rep.Ranked[i].WeakRate > rep.Ranked[j].WeakRate
	})
	if len(rep.Ranked) > 0 {
		rep.Primary = rep.Ranked[0].Pillar
	}
	if len(rep.Ranked) > 1 {
		rep.Secondary = rep.Ranked[1].Pillar
	}

	return rep
}
