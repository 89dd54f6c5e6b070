package targeting

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// Strategy defines how an AI combatant chooses where to strike
type Strategy interface {
	// Target returns a coordinate not yet struck according to the attacker's own board.
	// It must terminate while at least one un-struck cell remains.
	Target(board *model.Board) model.Point
}

// New returns the strategy registered under name
func New(name string, rnd random.Random) (Strategy, error) {
	switch name {
	case model.TargetingStrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, model.ErrUnknownStrategy
	}
}

// Registry builds one strategy per valid name, keyed by name
func Registry(rnd random.Random) map[string]Strategy {
	strategies := make(map[string]Strategy)
	for _, name := range model.ValidTargetingStrategies() {
		st, err := New(name, rnd)
		if err != nil {
			continue
		}
		strategies[name] = st
	}
	return strategies
}
