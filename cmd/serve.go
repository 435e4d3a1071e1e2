package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/readiq/internal/llm"
	"github.com/abhisek/readiq/internal/quiz"
	"github.com/abhisek/readiq/internal/server"
	"github.com/abhisek/readiq/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

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

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		provider, err := llm.NewProviderFromEnv(ctx, log)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		results := st.Results()
		q := quiz.NewService(provider, results, quiz.DefaultConfig(), log)
		h := server.NewHandlers(q, results, log)

		log.Info("starting readiq",
			zap.String("addr", addr),
			zap.String("db", dbPath),
			zap.String("model", provider.ModelID()),
		)
		return server.New(addr, h, log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
