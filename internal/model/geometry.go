package model

import "fmt"

// BoardSize is the edge length of every board
const BoardSize = 10

// Point identifies a cell on the board
type Point struct {
	X int // 0-indexed column
	Y int // 0-indexed row
}

// InBounds returns true if the point lies on a BoardSize x BoardSize grid
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Orientation is the axis a Position runs along
type Orientation string

const (
	Horizontal Orientation = "horizontal" // fixed y, range over x
	Vertical   Orientation = "vertical"   // fixed x, range over y
)

// Position is a straight run of contiguous cells.
// Line is the fixed axis value; Start and End bound the other axis inclusively.
type Position struct {
	Orientation Orientation
	Line        int
	Start       int
	End         int
}

// NewHorizontal returns the run x in [startX, endX] on row y
func NewHorizontal(startX, endX, y int) Position {
	return Position{Orientation: Horizontal, Line: y, Start: startX, End: endX}
}

// NewVertical returns the run y in [startY, endY] on column x
func NewVertical(startY, endY, x int) Position {
	return Position{Orientation: Vertical, Line: x, Start: startY, End: endY}
}

// Coordinates expands the position into points in ascending order along its axis.
// The order is the index basis for ship health.
func (p Position) Coordinates() []Point {
	if p.End < p.Start {
		return nil
	}
	coords := make([]Point, 0, p.End-p.Start+1)
	for i := p.Start; i <= p.End; i++ {
		if p.Orientation == Vertical {
			coords = append(coords, Point{X: p.Line, Y: i})
		} else {
			coords = append(coords, Point{X: i, Y: p.Line})
		}
	}
	return coords
}

// Len returns the number of cells covered
func (p Position) Len() int {
	if p.End < p.Start {
		return 0
	}
	return p.End - p.Start + 1
}

// Contains returns true if the point is one of the position's cells
func (p Position) Contains(pt Point) bool {
	if p.Orientation == Vertical {
		return pt.X == p.Line && pt.Y >= p.Start && pt.Y <= p.End
	}
	return pt.Y == p.Line && pt.X >= p.Start && pt.X <= p.End
}

func (p Position) String() string {
	if p.Orientation == Vertical {
		return fmt.Sprintf("vertical x=%d y=%d..%d", p.Line, p.Start, p.End)
	}
	return fmt.Sprintf("horizontal y=%d x=%d..%d", p.Line, p.Start, p.End)
}

// Direction is the way a manually placed ship extends from its origin cell
type Direction string

const (
	DirectionUp    Direction = "u"
	DirectionDown  Direction = "d"
	DirectionLeft  Direction = "l"
	DirectionRight Direction = "r"
)

// ParseDirection converts a single-letter token into a Direction
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return d, nil
	default:
		return "", ErrInvalidDirection
	}
}

// PositionFrom builds a position of the given length starting at origin and
// extending in dir. The result is normalized so Start <= End; bounds are not checked.
func PositionFrom(origin Point, dir Direction, length int) Position {
	span := length - 1
	switch dir {
	case DirectionUp:
		return NewVertical(origin.Y-span, origin.Y, origin.X)
	case DirectionDown:
		return NewVertical(origin.Y, origin.Y+span, origin.X)
	case DirectionLeft:
		return NewHorizontal(origin.X-span, origin.X, origin.Y)
	default:
		return NewHorizontal(origin.X, origin.X+span, origin.Y)
	}
}
