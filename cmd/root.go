package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/readiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "readiq",
	Short: "Chat-based career-readiness assessment",
	Long: "Readiq runs a chat-style readiness quiz backed by an LLM, stores\n" +
		"structured results in SQLite, and reports readiness patterns across\n" +
		"six skill pillars.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	// A missing .env is fine; explicit env vars always win.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READIQ_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then READIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the process logger. READIQ_ENV=production switches
// to the JSON encoder.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("READIQ_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
