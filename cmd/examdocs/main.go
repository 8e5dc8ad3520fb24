// Command examdocs generates exam seating documents offline from a student list and an exam file.
package main

import (
	"context"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"examdocs/internal/config"
	"examdocs/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(config.Load()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.AppConfig) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "examdocs",
		Short: "Assign students to exam rooms and generate attendance documents",
		Long: `examdocs shuffles a student list into exam rooms and writes a zip with
an attendance sheet and a door list per room plus an alphabetized posting list.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	logger := func() *zap.Logger {
		return logging.New(root.ErrOrStderr(), cfg.Location(), logging.ParseLevel(logLevel))
	}

	root.AddCommand(newGenerateCmd(cfg, logger), newTemplateCmd())
	return root
}
