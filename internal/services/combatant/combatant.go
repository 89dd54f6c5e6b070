package combatant

import (
	"context"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/model"
)

// Combatant is one side of a match. It owns its board for its whole life and
// only borrows the opponent's board for the duration of Attack.
type Combatant interface {
	// Number returns the seat (1 or 2)
	Number() int
	// Kind returns the discriminant used for display
	Kind() model.CombatantKind
	// Label returns a display name such as "Player 1" or "AI Player 2"
	Label() string
	// Board returns the combatant's own board
	Board() *model.Board
	// HitStats reports hits and total strikes launched so far
	HitStats() model.HitStats
	// Attack strikes one new coordinate on the opponent's board and returns the recorded impact
	Attack(ctx context.Context, opponent *model.Board) (model.Impact, error)
}

// base holds the state shared by every combatant variant
type base struct {
	number int
	kind   model.CombatantKind
	board  *model.Board
	logger *slog.Logger
}

func newBase(number int, kind model.CombatantKind, board *model.Board, logger *slog.Logger) base {
	return base{
		number: number,
		kind:   kind,
		board:  board,
		logger: logger.With(
			slog.String("component", "combatant"),
			slog.Int("player", number),
			slog.String("kind", string(kind)),
		),
	}
}

func (b *base) Number() int               { return b.number }
func (b *base) Kind() model.CombatantKind { return b.kind }
func (b *base) Label() string             { return b.kind.Label(b.number) }
func (b *base) Board() *model.Board       { return b.board }

func (b *base) HitStats() model.HitStats {
	return b.board.HitStats()
}

// strike resolves p against the opponent and records the impact on our own board
func (b *base) strike(opponent *model.Board, p model.Point) model.Impact {
	impact := model.Impact{Point: p, Hit: opponent.RegisterStrike(p)}
	b.board.RecordImpact(impact)

	b.logger.Debug("strike resolved",
		slog.Int("x", p.X),
		slog.Int("y", p.Y),
		slog.Bool("hit", impact.Hit),
	)
	return impact
}
