package placement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// MaxPlacementAttempts bounds the random redraws for a single ship
const MaxPlacementAttempts = 10000

// PositionInput is the collaborator that asks a player where to put each ship
type PositionInput interface {
	// ReadPosition returns a structurally valid position for the ship kind
	ReadPosition(ctx context.Context, kind model.ShipKind) (model.Position, error)
	// Rejected tells the player why the last position could not be used
	Rejected(kind model.ShipKind, reason error)
}

// Service builds fleets and boards
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new placement Service
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "placement-service")),
	}
}

// AutoPlace places one ship of every kind at random, non-overlapping positions
func (s *Service) AutoPlace() ([]*model.Ship, error) {
	grid := &OccupancyGrid{}
	ships := make([]*model.Ship, 0, len(model.AllShipKinds()))

	for _, kind := range model.AllShipKinds() {
		pos, err := s.RandomPosition(kind.Length(), grid)
		if err != nil {
			return nil, fmt.Errorf("placing %s: %w", kind, err)
		}
		ship, err := model.NewShip(kind, pos)
		if err != nil {
			return nil, err
		}
		grid.Mark(pos)
		ships = append(ships, ship)

		s.logger.Debug("ship placed",
			slog.String("kind", kind.String()),
			slog.String("position", pos.String()),
		)
	}

	return ships, nil
}

// RandomPosition draws positions of the given length until one fits the grid
func (s *Service) RandomPosition(length int, grid *OccupancyGrid) (model.Position, error) {
	for range MaxPlacementAttempts {
		pos := s.drawPosition(length)
		if CheckPositionValid(pos, grid) {
			return pos, nil
		}
	}
	return model.Position{}, model.ErrPlacementExhausted
}

func (s *Service) drawPosition(length int) model.Position {
	vertical := s.random.Bool()
	start := s.random.Intn(model.BoardSize - length + 1)
	line := s.random.Intn(model.BoardSize)
	if vertical {
		return model.NewVertical(start, start+length-1, line)
	}
	return model.NewHorizontal(start, start+length-1, line)
}

// ManualPlace asks the input collaborator for each ship's position,
// re-asking until the position is valid
func (s *Service) ManualPlace(ctx context.Context, input PositionInput) ([]*model.Ship, error) {
	grid := &OccupancyGrid{}
	ships := make([]*model.Ship, 0, len(model.AllShipKinds()))

	for _, kind := range model.AllShipKinds() {
		for {
			pos, err := input.ReadPosition(ctx, kind)
			if err != nil {
				return nil, err
			}
			if err := Validate(pos, grid); err != nil {
				input.Rejected(kind, err)
				continue
			}
			ship, err := model.NewShip(kind, pos)
			if err != nil {
				input.Rejected(kind, err)
				continue
			}
			grid.Mark(pos)
			ships = append(ships, ship)
			break
		}
	}

	return ships, nil
}

// BuildBoard creates a board for a complete fleet
func (s *Service) BuildBoard(ships []*model.Ship) (*model.Board, error) {
	if len(ships) == 0 {
		return nil, model.ErrEmptyFleet
	}
	grid := &OccupancyGrid{}
	for _, ship := range ships {
		if err := Validate(ship.Position, grid); err != nil {
			return nil, fmt.Errorf("%s at %s: %w", ship.Kind, ship.Position, err)
		}
		grid.Mark(ship.Position)
	}
	return model.NewBoard(ships), nil
}
