package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/readiq/internal/assessment"
	"github.com/abhisek/readiq/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show readiness patterns across stored assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.Results().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("read results: %w", err)
		}

		cfg := assessment.DefaultConfig()
		printReport(cmd.OutOrStdout(), cfg, assessment.Summarize(cfg, records))
		return nil
	},
}

// printReport renders the pattern report for terminals. The layout is
// informational only; the computed numbers are the contract.
func printReport(w io.Writer, cfg assessment.Config, rep assessment.Report) {
	fmt.Fprintf(w, "Assessments: %d\n\n", rep.Total)

	fmt.Fprintln(w, "Readiness distribution:")
	for _, ts := range rep.Tiers {
		fmt.Fprintf(w, "  %d. %-14s %6d  (%5.1f%%)\n", ts.Level, ts.Title, ts.Count, ts.Percent)
	}

	fmt.Fprintln(w, "\nPillar averages and struggle rates:")
	for p, ps := range rep.Pillars {
		spec := cfg.Pillars[p]
		fmt.Fprintf(w, "  %-14s avg %4.1f/%d (%5.1f%%)   struggling %5.1f%%\n",
			ps.Pillar, ps.Average, spec.MaxScore, ps.AveragePct, 100*ps.WeakRate)
	}

	if rep.Total > 0 {
		fmt.Fprintf(w, "\nPrimary focus area:   %s\n", rep.Primary)
		fmt.Fprintf(w, "Secondary focus area: %s\n", rep.Secondary)
	}
}
