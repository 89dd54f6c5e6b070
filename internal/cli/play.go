package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/console"
	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/model"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match",
		Long: `Play an interactive match. Player 1 is always a person; player 2 is
either a second person at the same keyboard or the computer.

Coordinates are entered as "x y" or "x,y" with 0-9 on each axis.
Ships are placed as "x y direction" where direction is u, d, l or r.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			app, err := newApp()
			if err != nil {
				return err
			}

			prompter := console.NewPrompter(cmd.InOrStdin(), out, logger)
			NewOutput(cfg.Output, out, cmd.ErrOrStderr()).PrintMessage("Welcome to Battleship!")

			opponent, err := prompter.ChooseOpponent(ctx)
			if err != nil {
				return err
			}

			first, err := setupSeat(ctx, app, prompter, model.PlayerOne, model.CombatantHuman)
			if err != nil {
				return err
			}
			second, err := setupSeat(ctx, app, prompter, model.PlayerTwo, opponent)
			if err != nil {
				return err
			}

			reporter := console.NewReporter(out, cfg.Output, false)
			m, err := app.NewMatch(first, second, reporter)
			if err != nil {
				return err
			}

			_, err = m.Run(ctx)
			return err
		},
	}
}

// setupSeat places a fleet for one seat, asking humans how they want to place it
func setupSeat(ctx context.Context, app *factory.App, prompter *console.Prompter, number int, kind model.CombatantKind) (factory.Seat, error) {
	seat := factory.Seat{Kind: kind, Input: prompter}
	label := kind.Label(number)

	if kind == model.CombatantAI {
		ships, err := app.PlacementService.AutoPlace()
		if err != nil {
			return seat, err
		}
		seat.Ships = ships
		return seat, nil
	}

	auto, err := prompter.AskAutoPlace(ctx, label)
	if err != nil {
		return seat, err
	}
	prompter.PlacementHeader(label, auto)

	if auto {
		seat.Ships, err = app.PlacementService.AutoPlace()
	} else {
		seat.Ships, err = app.PlacementService.ManualPlace(ctx, prompter)
	}
	if err != nil {
		return seat, err
	}

	prompter.Placed(seat.Ships)
	return seat, nil
}
