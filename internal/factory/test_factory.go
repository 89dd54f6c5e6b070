package factory

import (
	"time"

	"github.com/mcoot/battleship-go/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/storage/memory"
	"github.com/mcoot/battleship-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, model.TargetingStrategyRandom, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// Fleet builds ships from kind/position pairs, panicking on invalid input
func Fleet(entries map[model.ShipKind]model.Position) []*model.Ship {
	var ships []*model.Ship
	for _, kind := range model.AllShipKinds() {
		pos, ok := entries[kind]
		if !ok {
			continue
		}
		ship, err := model.NewShip(kind, pos)
		if err != nil {
			panic(err)
		}
		ships = append(ships, ship)
	}
	return ships
}
