package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go/internal/dependencies/clock"
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/combatant"
	"github.com/mcoot/battleship-go/internal/services/match"
	"github.com/mcoot/battleship-go/internal/services/placement"
	"github.com/mcoot/battleship-go/internal/services/targeting"
	"github.com/mcoot/battleship-go/internal/storage"
	"github.com/mcoot/battleship-go/internal/storage/memory"
)

// ErrMissingInput is returned when a human seat has no coordinate input
var ErrMissingInput = errors.New("human combatant requires coordinate input")

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PlacementService *placement.Service
	Strategy         targeting.Strategy
	StrategyName     string

	// MatchIDs generates match identifiers; nil means random UUIDs
	MatchIDs func() model.MatchID

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Seed makes every random draw reproducible (optional)
	// If zero, a crypto-backed source is used
	Seed uint64
	// Strategy names the AI targeting strategy (optional)
	// If empty, defaults to uniform random
	Strategy string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	app, err := newWithDependencies(memory.New(), clock.New(), rnd, cfg.Strategy, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		app.MatchIDs = seededMatchIDs(cfg.Seed)
	}
	return app, nil
}

// seededMatchIDs derives name-based UUIDs from the seed and a match counter,
// leaving the game's random stream untouched
func seededMatchIDs(seed uint64) func() model.MatchID {
	var n int
	return func() model.MatchID {
		n++
		name := fmt.Appendf(nil, "battleship/%d/%d", seed, n)
		return model.MatchID(uuid.NewSHA1(uuid.NameSpaceOID, name).String())
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, strategyName string, logger *slog.Logger) (*App, error) {
	if strategyName == "" {
		strategyName = model.TargetingStrategyRandom
	}
	strategy, err := targeting.New(strategyName, rnd)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", strategyName, err)
	}

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		PlacementService: placement.New(rnd, logger),
		Strategy:         strategy,
		StrategyName:     strategyName,
		Logger:           logger,
	}, nil
}

// Seat describes how one side of a match is set up
type Seat struct {
	Kind model.CombatantKind
	// Ships is the placed fleet; if nil the fleet is placed automatically
	Ships []*model.Ship
	// Input supplies strike coordinates for human seats
	Input combatant.CoordinateInput
}

// NewCombatant builds the board for a seat and the combatant that owns it
func (a *App) NewCombatant(number int, seat Seat) (combatant.Combatant, error) {
	ships := seat.Ships
	if ships == nil {
		placed, err := a.PlacementService.AutoPlace()
		if err != nil {
			return nil, err
		}
		ships = placed
	}

	board, err := a.PlacementService.BuildBoard(ships)
	if err != nil {
		return nil, err
	}

	switch seat.Kind {
	case model.CombatantHuman:
		if seat.Input == nil {
			return nil, ErrMissingInput
		}
		return combatant.NewHuman(number, board, seat.Input, a.Logger), nil
	case model.CombatantAI:
		return combatant.NewAI(number, board, a.Strategy, a.Logger), nil
	default:
		return nil, fmt.Errorf("unknown combatant kind %q", seat.Kind)
	}
}

// NewMatch creates a match controller for two seats, reporting events to reporter
func (a *App) NewMatch(first, second Seat, reporter match.Reporter) (*match.Controller, error) {
	c1, err := a.NewCombatant(model.PlayerOne, first)
	if err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}
	c2, err := a.NewCombatant(model.PlayerTwo, second)
	if err != nil {
		return nil, fmt.Errorf("player 2: %w", err)
	}
	var opts []match.Option
	if a.MatchIDs != nil {
		opts = append(opts, match.WithIDGenerator(a.MatchIDs))
	}
	return match.NewController(c1, c2, a.Storage, reporter, a.Clock, a.Logger, opts...), nil
}
