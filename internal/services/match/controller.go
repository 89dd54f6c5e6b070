package match

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/combatant"
	"github.com/mcoot/battleship-go/internal/storage"
)

// MaxHalfTurns is a safety limit for Run. Each side can strike at most every
// cell once, so a match between two non-empty fleets always ends before it.
const MaxHalfTurns = 2 * model.BoardSize * model.BoardSize

// Controller owns the two combatants of a match and drives alternating turns
type Controller struct {
	id         model.MatchID
	state      model.MatchState
	combatants [2]combatant.Combatant
	active     int // Index into combatants of the next attacker
	halfTurns  int
	winner     int
	startedAt  time.Time
	summary    *model.MatchSummary

	storage  storage.Storage
	reporter Reporter
	clock    clock.Clock
	logger   *slog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithIDGenerator replaces the default random UUID match identifiers
func WithIDGenerator(gen func() model.MatchID) Option {
	return func(c *Controller) {
		c.id = gen()
	}
}

// NewController creates a match in the setup state. first is seat 1 and
// attacks first.
func NewController(
	first combatant.Combatant,
	second combatant.Combatant,
	store storage.Storage,
	reporter Reporter,
	clk clock.Clock,
	logger *slog.Logger,
	opts ...Option,
) *Controller {
	if reporter == nil {
		reporter = NopReporter{}
	}
	c := &Controller{
		state:      model.MatchStateSetup,
		combatants: [2]combatant.Combatant{first, second},
		storage:    store,
		reporter:   reporter,
		clock:      clk,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.id == "" {
		c.id = model.MatchID(uuid.NewString())
	}
	c.logger = logger.With(
		slog.String("component", "match-controller"),
		slog.String("match_id", string(c.id)),
	)
	return c
}

// ID returns the match identifier
func (c *Controller) ID() model.MatchID { return c.id }

// State returns the current phase
func (c *Controller) State() model.MatchState { return c.state }

// HalfTurns returns the number of attacks resolved so far
func (c *Controller) HalfTurns() int { return c.halfTurns }

// Winner returns the winning seat, or 0 while the match is not over
func (c *Controller) Winner() int { return c.winner }

// Active returns the combatant who attacks next
func (c *Controller) Active() combatant.Combatant { return c.combatants[c.active] }

// Combatant returns the combatant in the given seat, or nil
func (c *Controller) Combatant(number int) combatant.Combatant {
	if number != model.PlayerOne && number != model.PlayerTwo {
		return nil
	}
	return c.combatants[number-1]
}

// Summary returns the match record once the match is over
func (c *Controller) Summary() (*model.MatchSummary, error) {
	switch c.state {
	case model.MatchStateSetup:
		return nil, model.ErrMatchNotStarted
	case model.MatchStatePlaying:
		return nil, model.ErrMatchNotOver
	}
	result := *c.summary
	return &result, nil
}

// Start moves the match from setup to playing
func (c *Controller) Start(ctx context.Context) error {
	switch c.state {
	case model.MatchStateGameOver:
		return model.ErrMatchOver
	case model.MatchStatePlaying:
		return nil
	}

	c.state = model.MatchStatePlaying
	c.startedAt = c.clock.Now()

	c.emit(ctx, model.EventMatchStarted, 0, model.MatchStartedPayload{
		Labels: [2]string{c.combatants[0].Label(), c.combatants[1].Label()},
		Kinds:  [2]model.CombatantKind{c.combatants[0].Kind(), c.combatants[1].Kind()},
	})

	c.logger.Info("match started",
		slog.String("player_1", string(c.combatants[0].Kind())),
		slog.String("player_2", string(c.combatants[1].Kind())),
	)
	return nil
}

// PlayHalfTurn lets the active combatant attack once, then checks for game
// over and hands the turn to the other side
func (c *Controller) PlayHalfTurn(ctx context.Context) (model.Impact, error) {
	switch c.state {
	case model.MatchStateSetup:
		return model.Impact{}, model.ErrMatchNotStarted
	case model.MatchStateGameOver:
		return model.Impact{}, model.ErrMatchOver
	}

	attacker := c.combatants[c.active]
	defender := c.combatants[1-c.active]

	c.emit(ctx, model.EventTurnStarted, attacker.Number(), model.TurnStartedPayload{
		HalfTurn: c.halfTurns + 1,
		Label:    attacker.Label(),
		Kind:     attacker.Kind(),
		Board:    attacker.Board(),
	})

	impact, err := attacker.Attack(ctx, defender.Board())
	if err != nil {
		c.logger.Error("attack failed",
			slog.Int("player", attacker.Number()),
			slog.String("error", err.Error()),
		)
		return model.Impact{}, err
	}
	c.halfTurns++

	c.emit(ctx, model.EventStrikeResolved, attacker.Number(), model.StrikeResolvedPayload{
		Label:  attacker.Label(),
		Kind:   attacker.Kind(),
		Impact: impact,
	})

	if impact.Hit {
		if ship := defender.Board().ShipAt(impact.Point); ship != nil && ship.Sunk() {
			c.emit(ctx, model.EventShipSunk, attacker.Number(), model.ShipSunkPayload{
				Label: attacker.Label(),
				Kind:  ship.Kind,
			})
		}
	}

	if c.checkGameOver() {
		return impact, c.finish(ctx)
	}

	c.active = 1 - c.active
	return impact, nil
}

// Run starts the match if needed and plays half-turns until one fleet is sunk
func (c *Controller) Run(ctx context.Context) (*model.MatchSummary, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}

	for c.state == model.MatchStatePlaying {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.halfTurns >= MaxHalfTurns {
			return nil, model.ErrTurnLimitExceeded
		}
		if _, err := c.PlayHalfTurn(ctx); err != nil {
			return nil, err
		}
	}

	return c.Summary()
}

// checkGameOver applies the win condition. Player 1's fleet is checked first,
// so if both fleets are sunk player 2 wins. This ordering is kept for
// compatibility; it decides who wins a simultaneous loss.
func (c *Controller) checkGameOver() bool {
	switch {
	case c.combatants[0].Board().AllShipsSunk():
		c.winner = model.PlayerTwo
	case c.combatants[1].Board().AllShipsSunk():
		c.winner = model.PlayerOne
	default:
		return false
	}
	return true
}

// finish records the result and reports it
func (c *Controller) finish(ctx context.Context) error {
	c.state = model.MatchStateGameOver

	winner := c.combatants[c.winner-1]
	loser := c.combatants[2-c.winner]
	elapsed := c.clock.Since(c.startedAt)
	completedAt := c.clock.Now()

	c.summary = &model.MatchSummary{
		ID:          c.id,
		Winner:      c.winner,
		WinnerLabel: winner.Label(),
		WinnerKind:  winner.Kind(),
		WinnerStats: winner.HitStats(),
		LoserStats:  loser.HitStats(),
		HalfTurns:   c.halfTurns,
		StartedAt:   c.startedAt,
		CompletedAt: completedAt,
	}

	c.logger.Info("match completed",
		slog.Int("winner", c.winner),
		slog.Int("half_turns", c.halfTurns),
		slog.Int("winner_hits", c.summary.WinnerStats.Hits),
		slog.Int("winner_strikes", c.summary.WinnerStats.Total),
		slog.Duration("duration", elapsed),
	)

	if c.storage != nil {
		if err := c.storage.SaveMatchSummary(ctx, c.summary); err != nil {
			c.logger.Error("failed to save match summary",
				slog.String("error", err.Error()),
			)
			return err
		}
	}

	c.emit(ctx, model.EventMatchComplete, c.winner, model.MatchCompletePayload{
		Summary: *c.summary,
	})
	return nil
}

func (c *Controller) emit(ctx context.Context, t model.EventType, player int, payload any) {
	c.reporter.Report(ctx, model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		MatchID:   c.id,
		Player:    player,
		Payload:   payload,
	})
}
