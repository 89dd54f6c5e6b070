package combatant

import (
	"context"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/model"
)

// CoordinateInput is the collaborator a human uses to choose strike coordinates
type CoordinateInput interface {
	// ReadCoordinate blocks until the player enters an in-bounds coordinate
	ReadCoordinate(ctx context.Context, player string) (model.Point, error)
	// Repeated tells the player the coordinate was already struck
	Repeated(player string, p model.Point)
}

// Human is a combatant driven by external input
type Human struct {
	base
	input CoordinateInput
}

// Ensure Human implements Combatant
var _ Combatant = (*Human)(nil)

// NewHuman creates a human combatant for the given seat
func NewHuman(number int, board *model.Board, input CoordinateInput, logger *slog.Logger) *Human {
	return &Human{
		base:  newBase(number, model.CombatantHuman, board, logger),
		input: input,
	}
}

// Attack reads coordinates until one has not been struck, then strikes it.
// Input failures are returned unchanged and end the match.
func (h *Human) Attack(ctx context.Context, opponent *model.Board) (model.Impact, error) {
	for {
		p, err := h.input.ReadCoordinate(ctx, h.Label())
		if err != nil {
			return model.Impact{}, err
		}
		if h.board.AlreadyStruck(p) {
			h.input.Repeated(h.Label(), p)
			continue
		}
		return h.strike(opponent, p), nil
	}
}
