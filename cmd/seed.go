package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/readiq/internal/assessment"
	"github.com/abhisek/readiq/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic assessment cohort",
	Long: "Seed replaces the previous synthetic batch with freshly generated\n" +
		"records and prints the resulting readiness summary. Live quiz rows\n" +
		"are never touched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		keep, _ := cmd.Flags().GetBool("keep")
		seed, _ := cmd.Flags().GetUint64("seed")

		log, err := newLogger()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		results := st.Results()

		if !keep {
			removed, err := results.DeleteSynthetic(ctx)
			if err != nil {
				return fmt.Errorf("clear previous batch: %w", err)
			}
			if removed > 0 {
				log.Info("cleared previous synthetic batch", zap.Int64("removed", removed))
			}
		}

		var rng *rand.Rand
		if seed != 0 {
			rng = rand.New(rand.NewPCG(seed, seed+1))
		} else {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}

		cfg := assessment.DefaultConfig()
		synth := assessment.NewSynthesizer(cfg, rng)
		batch := synth.GenerateBatch(count)

		inserted, err := results.BulkInsert(ctx, batch)
		if err != nil {
			// Partial failures are logged, not fatal: the rest of the
			// batch is already in.
			log.Warn("some records failed to persist",
				zap.Int("inserted", inserted),
				zap.Int("requested", count),
				zap.Error(err))
		}
		log.Info("synthetic cohort generated",
			zap.Int("inserted", inserted),
			zap.String("db", dbPath))

		records, err := results.List(ctx)
		if err != nil {
			return fmt.Errorf("read back results: %w", err)
		}
		printReport(cmd.OutOrStdout(), cfg, assessment.Summarize(cfg, records))
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("count", 1000, "Number of synthetic records to generate")
	seedCmd.Flags().Bool("keep", false, "Keep the previous synthetic batch")
	seedCmd.Flags().Uint64("seed", 0, "Random seed (0 = nondeterministic)")
}
