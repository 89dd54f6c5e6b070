package placement

import "github.com/mcoot/battleship-go/internal/model"

// OccupancyGrid tracks cells taken by ships committed so far.
// It is derived from the ships being placed and is discarded once the board is built.
type OccupancyGrid [model.BoardSize][model.BoardSize]bool

// Occupied returns true if p is taken; out-of-bounds points are never occupied
func (g *OccupancyGrid) Occupied(p model.Point) bool {
	if !p.InBounds() {
		return false
	}
	return g[p.Y][p.X]
}

// Mark records every cell of pos as taken; out-of-bounds cells are ignored
func (g *OccupancyGrid) Mark(pos model.Position) {
	for _, p := range pos.Coordinates() {
		if p.InBounds() {
			g[p.Y][p.X] = true
		}
	}
}

// GridFromShips rebuilds the occupancy grid for an existing fleet
func GridFromShips(ships []*model.Ship) *OccupancyGrid {
	grid := &OccupancyGrid{}
	for _, ship := range ships {
		grid.Mark(ship.Position)
	}
	return grid
}

// CheckPositionValid returns false if pos is out of bounds, has start past
// end, or overlaps an occupied cell
func CheckPositionValid(pos model.Position, grid *OccupancyGrid) bool {
	return Validate(pos, grid) == nil
}

// Validate performs the same checks as CheckPositionValid and reports which one failed
func Validate(pos model.Position, grid *OccupancyGrid) error {
	if pos.Start > pos.End {
		return model.ErrInvalidRange
	}
	if pos.Line < 0 || pos.Line >= model.BoardSize || pos.Start < 0 || pos.End >= model.BoardSize {
		return model.ErrOutOfBounds
	}
	for _, p := range pos.Coordinates() {
		if grid.Occupied(p) {
			return model.ErrCellOccupied
		}
	}
	return nil
}
