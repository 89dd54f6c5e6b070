package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/battleship-go/internal/model"
)

// ErrMalformedInput is returned when a line cannot be parsed at all
var ErrMalformedInput = errors.New("malformed input")

// fields splits on whitespace and commas, so "3 4" and "3,4" are equivalent
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parsePoint(xs, ys string) (model.Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return model.Point{}, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, ys)
	}
	return model.Point{X: x, Y: y}, nil
}

// ParseCoordinate parses a strike coordinate written as "x y" or "x,y".
// The result is always on the board.
func ParseCoordinate(s string) (model.Point, error) {
	parts := fields(s)
	if len(parts) != 2 {
		return model.Point{}, fmt.Errorf("%w: expected two numbers", ErrMalformedInput)
	}
	p, err := parsePoint(parts[0], parts[1])
	if err != nil {
		return model.Point{}, err
	}
	if !p.InBounds() {
		return model.Point{}, fmt.Errorf("%w: %s", model.ErrOutOfBounds, p)
	}
	return p, nil
}

// ParseYesNo accepts yes/no or y/n in any case
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("%w: answer with yes or no", ErrMalformedInput)
}

// ParseOpponent accepts "human" or "computer"
func ParseOpponent(s string) (model.CombatantKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return model.CombatantHuman, nil
	case "computer", "ai":
		return model.CombatantAI, nil
	}
	return "", fmt.Errorf("%w: answer with human or computer", ErrMalformedInput)
}

// ParseShipPosition parses "x y dir" into a position of the given length
// extending from the origin in that direction. Bounds and overlap are left to
// placement validation.
func ParseShipPosition(s string, length int) (model.Position, error) {
	parts := fields(s)
	if len(parts) != 3 {
		return model.Position{}, fmt.Errorf("%w: expected x y direction", ErrMalformedInput)
	}
	origin, err := parsePoint(parts[0], parts[1])
	if err != nil {
		return model.Position{}, err
	}
	dir, err := model.ParseDirection(strings.ToLower(parts[2]))
	if err != nil {
		return model.Position{}, err
	}
	return model.PositionFrom(origin, dir, length), nil
}
