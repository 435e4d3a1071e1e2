package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/readiq/internal/export"
	"github.com/abhisek/readiq/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored assessments as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

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

		w := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			w = f
		}

		if err := export.WriteCSV(w, records); err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
		if outPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d records to %s\n", len(records), outPath)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file (default: stdout)")
}
