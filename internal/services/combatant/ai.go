package combatant

import (
	"context"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/targeting"
)

// AI is a combatant that delegates coordinate choice to a targeting strategy
type AI struct {
	base
	strategy targeting.Strategy
}

// Ensure AI implements Combatant
var _ Combatant = (*AI)(nil)

// NewAI creates an AI combatant for the given seat
func NewAI(number int, board *model.Board, strategy targeting.Strategy, logger *slog.Logger) *AI {
	return &AI{
		base:     newBase(number, model.CombatantAI, board, logger),
		strategy: strategy,
	}
}

// Attack asks the strategy for a target based on our own strike history and strikes it
func (a *AI) Attack(ctx context.Context, opponent *model.Board) (model.Impact, error) {
	if err := ctx.Err(); err != nil {
		return model.Impact{}, err
	}
	return a.strike(opponent, a.strategy.Target(a.board)), nil
}
