package model

// Impact records one resolved strike
type Impact struct {
	Point Point
	Hit   bool
}

// Board is one player's side of a match: their own fleet and the history of
// strikes they have launched at the opponent.
// Ships are fixed once the board is created. Impacts only ever grow, one per
// distinct coordinate; keeping coordinates unique is the attacker's job.
type Board struct {
	ships   []*Ship
	impacts map[Point]Impact
	order   []Point
}

// NewBoard creates a board owning the given ships
func NewBoard(ships []*Ship) *Board {
	owned := make([]*Ship, len(ships))
	copy(owned, ships)
	return &Board{
		ships:   owned,
		impacts: make(map[Point]Impact),
	}
}

// Ships returns the fleet in placement order
func (b *Board) Ships() []*Ship {
	return b.ships
}

// RegisterStrike resolves an incoming strike against this board's fleet.
// At most one ship is damaged; returns true on a hit.
func (b *Board) RegisterStrike(p Point) bool {
	for _, ship := range b.ships {
		if ship.Hit(p) {
			return true
		}
	}
	return false
}

// AlreadyStruck returns true if this board has recorded a strike at p
func (b *Board) AlreadyStruck(p Point) bool {
	_, ok := b.impacts[p]
	return ok
}

// RecordImpact adds an outgoing strike to the impact history
func (b *Board) RecordImpact(impact Impact) {
	if _, ok := b.impacts[impact.Point]; !ok {
		b.order = append(b.order, impact.Point)
	}
	b.impacts[impact.Point] = impact
}

// AllShipsSunk returns true if every ship is sunk (vacuously true for an empty fleet)
func (b *Board) AllShipsSunk() bool {
	for _, ship := range b.ships {
		if !ship.Sunk() {
			return false
		}
	}
	return true
}

// Impacts returns the impact history in strike order
func (b *Board) Impacts() []Impact {
	result := make([]Impact, 0, len(b.order))
	for _, p := range b.order {
		result = append(result, b.impacts[p])
	}
	return result
}

// ImpactAt returns the recorded impact at p, if any
func (b *Board) ImpactAt(p Point) (Impact, bool) {
	impact, ok := b.impacts[p]
	return impact, ok
}

// ShipAt returns the ship covering p, or nil
func (b *Board) ShipAt(p Point) *Ship {
	for _, ship := range b.ships {
		if ship.Position.Contains(p) {
			return ship
		}
	}
	return nil
}

// HitStats counts hits among the recorded impacts
func (b *Board) HitStats() HitStats {
	hits := 0
	for _, impact := range b.impacts {
		if impact.Hit {
			hits++
		}
	}
	return HitStats{Hits: hits, Total: len(b.impacts)}
}

// UnstruckCount returns the number of cells not yet struck from this board
func (b *Board) UnstruckCount() int {
	return BoardSize*BoardSize - len(b.impacts)
}

// SunkCount returns the number of sunk ships in the fleet
func (b *Board) SunkCount() int {
	count := 0
	for _, ship := range b.ships {
		if ship.Sunk() {
			count++
		}
	}
	return count
}
