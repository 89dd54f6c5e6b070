package model

// ShipKind identifies one of the five ships in a fleet
type ShipKind string

const (
	Submarine  ShipKind = "submarine"
	Destroyer  ShipKind = "destroyer"
	Cruiser    ShipKind = "cruiser"
	Battleship ShipKind = "battleship"
	Carrier    ShipKind = "carrier"
)

// AllShipKinds returns the fleet in placement order
func AllShipKinds() []ShipKind {
	return []ShipKind{Submarine, Destroyer, Cruiser, Battleship, Carrier}
}

// Length returns the fixed number of cells for the kind, or 0 if unknown
func (k ShipKind) Length() int {
	switch k {
	case Submarine:
		return 1
	case Destroyer:
		return 2
	case Cruiser:
		return 3
	case Battleship:
		return 4
	case Carrier:
		return 5
	default:
		return 0
	}
}

// Symbol returns the rune used to draw a live cell of this kind
func (k ShipKind) Symbol() rune {
	switch k {
	case Submarine:
		return 's'
	case Destroyer:
		return 'd'
	case Cruiser:
		return 'c'
	case Battleship:
		return 'B'
	case Carrier:
		return 'C'
	default:
		return '?'
	}
}

func (k ShipKind) String() string {
	return string(k)
}

// Ship is a placed ship with per-cell health.
// Health[i] tracks Position.Coordinates()[i]; true means the cell is intact.
type Ship struct {
	Kind     ShipKind
	Position Position
	Health   []bool
}

// NewShip creates an undamaged ship, rejecting a position whose length
// does not match the kind
func NewShip(kind ShipKind, pos Position) (*Ship, error) {
	if kind.Length() == 0 {
		return nil, ErrUnknownShipKind
	}
	if pos.Len() != kind.Length() {
		return nil, ErrShipLengthMismatch
	}
	health := make([]bool, kind.Length())
	for i := range health {
		health[i] = true
	}
	return &Ship{Kind: kind, Position: pos, Health: health}, nil
}

// Hit marks the cell at p as destroyed. It returns true if p belongs to the
// ship, including cells that were already destroyed.
func (s *Ship) Hit(p Point) bool {
	for i, c := range s.Position.Coordinates() {
		if c == p {
			s.Health[i] = false
			return true
		}
	}
	return false
}

// Sunk returns true if no cell remains intact
func (s *Ship) Sunk() bool {
	for _, alive := range s.Health {
		if alive {
			return false
		}
	}
	return true
}

// CellAlive reports whether the cell at p is intact; ok is false if p is not on the ship
func (s *Ship) CellAlive(p Point) (alive bool, ok bool) {
	for i, c := range s.Position.Coordinates() {
		if c == p {
			return s.Health[i], true
		}
	}
	return false, false
}
