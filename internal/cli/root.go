package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "Turn-based naval combat on a 10x10 grid",
		Long: `battleship plays the classic naval combat game in the terminal.

Play against another person at the same keyboard or against the computer,
or run batches of computer-only matches to compare targeting strategies.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			// Load .env first so it can supply defaults
			if err := cfg.LoadEnvFile(flags.Changed("env-file")); err != nil {
				return err
			}
			if err := cfg.ApplyEnv(flags.Changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = cfg.NewLogger(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BATTLESHIP_OUTPUT)")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a non-reproducible session (env: BATTLESHIP_SEED)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging to stderr (env: BATTLESHIP_VERBOSE)")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Environment file to load")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newStrategiesCmd())

	return rootCmd
}

// newApp wires the application from the current configuration
func newApp() (*factory.App, error) {
	return factory.New(factory.Config{
		Seed:     cfg.Seed,
		Strategy: cfg.Strategy,
		Logger:   logger,
	})
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt falls through to the default handler and kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		stop()
		os.Exit(1)
	}
}
