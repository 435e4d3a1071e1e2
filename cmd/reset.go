package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/readiq/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete synthetic records, keeping live quiz results",
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

		removed, err := st.Results().DeleteSynthetic(cmd.Context())
		if err != nil {
			return fmt.Errorf("delete synthetic records: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d synthetic records\n", removed)
		return nil
	},
}
