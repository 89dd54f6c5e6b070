package targeting

import (
	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
)

// MaxRedraws is how many rejected draws RandomStrategy tolerates before
// falling back to picking among the remaining cells directly
const MaxRedraws = 1000

// RandomStrategy strikes uniformly at random among un-struck cells.
// It uses rejection sampling, so the expected number of draws grows as the
// board fills; MaxRedraws caps that cost.
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Target draws random coordinates until one has not been struck
func (s *RandomStrategy) Target(board *model.Board) model.Point {
	for range MaxRedraws {
		p := model.Point{
			X: s.random.Intn(model.BoardSize),
			Y: s.random.Intn(model.BoardSize),
		}
		if p.InBounds() && !board.AlreadyStruck(p) {
			return p
		}
	}
	return s.pickUnstruck(board)
}

// pickUnstruck picks uniformly among the cells not yet struck
func (s *RandomStrategy) pickUnstruck(board *model.Board) model.Point {
	var open []model.Point
	for y := 0; y < model.BoardSize; y++ {
		for x := 0; x < model.BoardSize; x++ {
			p := model.Point{X: x, Y: y}
			if !board.AlreadyStruck(p) {
				open = append(open, p)
			}
		}
	}
	if len(open) == 0 {
		return model.Point{X: 0, Y: 0}
	}
	idx := s.random.Intn(len(open))
	if idx < 0 || idx >= len(open) {
		idx = 0
	}
	return open[idx]
}
