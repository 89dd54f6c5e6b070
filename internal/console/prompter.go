package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/combatant"
	"github.com/mcoot/battleship-go/internal/services/placement"
)

// Prompter reads line-oriented answers from a reader, re-prompting on
// anything it cannot parse
type Prompter struct {
	reader *bufio.Reader
	lines  chan lineResult
	start  sync.Once
	out    io.Writer
	logger *slog.Logger
}

type lineResult struct {
	line string
	err  error
}

// Ensure Prompter implements the input collaborators
var (
	_ combatant.CoordinateInput = (*Prompter)(nil)
	_ placement.PositionInput   = (*Prompter)(nil)
)

// NewPrompter creates a prompter over the given input and output
func NewPrompter(in io.Reader, out io.Writer, logger *slog.Logger) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		lines:  make(chan lineResult),
		out:    out,
		logger: logger.With(slog.String("component", "console-prompter")),
	}
}

// readLoop is the only reader of input. It closes lines once input ends.
func (p *Prompter) readLoop() {
	defer close(p.lines)
	for {
		line, err := p.reader.ReadString('\n')
		if line != "" || err == nil {
			p.lines <- lineResult{line: strings.TrimSpace(line)}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.lines <- lineResult{err: fmt.Errorf("reading input: %w", err)}
			}
			return
		}
	}
}

// readLine prints the prompt and returns the next trimmed line.
// A closed input yields model.ErrInputClosed; cancelling ctx abandons the wait.
func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.readLoop() })

	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return "", model.ErrInputClosed
		}
		return res.line, res.err
	}
}

// ask repeats the prompt until parse accepts the line
func ask[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.readLine(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		p.logger.Debug("rejected input", slog.String("input", line), slog.String("error", err.Error()))
		fmt.Fprintf(p.out, "Invalid input: %s\n", describe(err))
	}
}

func describe(err error) string {
	switch {
	case errors.Is(err, model.ErrOutOfBounds):
		return fmt.Sprintf("coordinates must be between 0 and %d", model.BoardSize-1)
	case errors.Is(err, model.ErrInvalidDirection):
		return "direction must be one of u, d, l, r"
	}
	return err.Error()
}

// ChooseOpponent asks whether player 2 is a human or the computer
func (p *Prompter) ChooseOpponent(ctx context.Context) (model.CombatantKind, error) {
	kind, err := ask(ctx, p, "Do you want to play against a human or a computer? ", ParseOpponent)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "You have chosen to battle a %s.\n\n", OpponentName(kind))
	return kind, nil
}

// AskAutoPlace asks a player whether to place their ships automatically
func (p *Prompter) AskAutoPlace(ctx context.Context, player string) (bool, error) {
	return ask(ctx, p, fmt.Sprintf("%s, do you want to automatically place your ships? [yes/no] ", player), ParseYesNo)
}

// ReadCoordinate asks a player for an on-board strike coordinate
func (p *Prompter) ReadCoordinate(ctx context.Context, player string) (model.Point, error) {
	return ask(ctx, p, fmt.Sprintf("%s, enter strike coordinates (x y): ", player), ParseCoordinate)
}

// Repeated tells the player a coordinate was already struck
func (p *Prompter) Repeated(player string, pt model.Point) {
	fmt.Fprintf(p.out, "You have already struck %s. Try again.\n", pt)
}

// ReadPosition asks for the origin and direction of a ship
func (p *Prompter) ReadPosition(ctx context.Context, kind model.ShipKind) (model.Position, error) {
	prompt := fmt.Sprintf("Place your %s (length %d) as x y direction [u/d/l/r]: ", KindName(kind), kind.Length())
	return ask(ctx, p, prompt, func(s string) (model.Position, error) {
		return ParseShipPosition(s, kind.Length())
	})
}

// Rejected explains why a ship position could not be used
func (p *Prompter) Rejected(kind model.ShipKind, reason error) {
	switch {
	case errors.Is(reason, model.ErrCellOccupied):
		fmt.Fprintf(p.out, "%s overlaps another ship, please choose another position.\n", KindName(kind))
	case errors.Is(reason, model.ErrOutOfBounds):
		fmt.Fprintf(p.out, "%s does not fit on the board, please choose another position.\n", KindName(kind))
	default:
		fmt.Fprintf(p.out, "%s cannot be placed there: %s\n", KindName(kind), reason)
	}
}

// PlacementHeader announces the start of a player's placement
func (p *Prompter) PlacementHeader(player string, auto bool) {
	if auto {
		fmt.Fprintf(p.out, "Automatically placing ships for %s...\n", player)
	} else {
		fmt.Fprintf(p.out, "%s, place your ships.\n", player)
	}
	fmt.Fprintln(p.out, strings.Repeat("=", 29))
}

// Placed lists the fleet a player ended up with
func (p *Prompter) Placed(ships []*model.Ship) {
	for _, ship := range ships {
		fmt.Fprintf(p.out, "%s placed at %s\n", KindName(ship.Kind), ship.Position)
	}
	fmt.Fprintln(p.out)
}
