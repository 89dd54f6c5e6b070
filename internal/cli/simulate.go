package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/console"
	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/model"
)

func newSimulateCmd() *cobra.Command {
	var (
		games  int
		events bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run computer vs computer matches and summarise the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("--games must be at least 1")
			}

			ctx := cmd.Context()
			app, err := newApp()
			if err != nil {
				return err
			}

			reporter := console.NewReporter(cmd.OutOrStdout(), cfg.Output, !events)
			ai := factory.Seat{Kind: model.CombatantAI}

			for i := range games {
				m, err := app.NewMatch(ai, ai, reporter)
				if err != nil {
					return err
				}
				if _, err := m.Run(ctx); err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
			}

			summaries, err := app.Storage.ListMatchSummaries(ctx)
			if err != nil {
				return err
			}

			result := summarise(summaries)
			result.Strategy = app.StrategyName
			result.Seed = cfg.Seed

			logger.Info("simulation complete",
				slog.Int("games", result.Games),
				slog.Int("player_1_wins", result.PlayerOneWins),
				slog.Int("player_2_wins", result.PlayerTwoWins),
			)

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of matches to play")
	cmd.Flags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "AI targeting strategy (env: BATTLESHIP_STRATEGY)")
	cmd.Flags().BoolVar(&events, "events", false, "Report every event, not just completed matches")

	return cmd
}

// summarise aggregates completed matches
func summarise(summaries []*model.MatchSummary) SimulationResult {
	result := SimulationResult{Games: len(summaries)}
	if len(summaries) == 0 {
		return result
	}

	var halfTurns int
	var hitRate float64
	result.MinHalfTurns = summaries[0].HalfTurns
	for _, s := range summaries {
		if s.Winner == model.PlayerOne {
			result.PlayerOneWins++
		} else {
			result.PlayerTwoWins++
		}
		halfTurns += s.HalfTurns
		hitRate += s.WinnerStats.HitRate()
		result.MinHalfTurns = min(result.MinHalfTurns, s.HalfTurns)
		result.MaxHalfTurns = max(result.MaxHalfTurns, s.HalfTurns)
	}

	result.AvgHalfTurns = float64(halfTurns) / float64(len(summaries))
	result.AvgHitRate = hitRate / float64(len(summaries))
	return result
}
