package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/battleship-go/internal/model"
)

// Board cell glyphs
const (
	GlyphEmpty = '.'
	GlyphHit   = 'X'
	GlyphMiss  = 'o'
	GlyphDead  = '†'
)

// Grid is one rendered panel, indexed [y][x]
type Grid [model.BoardSize][model.BoardSize]rune

func emptyGrid() Grid {
	var g Grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = GlyphEmpty
		}
	}
	return g
}

// ImpactGrid shows the strikes recorded on a board
func ImpactGrid(board *model.Board) Grid {
	g := emptyGrid()
	for _, impact := range board.Impacts() {
		if !impact.Point.InBounds() {
			continue
		}
		glyph := GlyphMiss
		if impact.Hit {
			glyph = GlyphHit
		}
		g[impact.Point.Y][impact.Point.X] = glyph
	}
	return g
}

// FleetGrid shows a board's ships, live cells by kind symbol and dead cells as †
func FleetGrid(board *model.Board) Grid {
	g := emptyGrid()
	for _, ship := range board.Ships() {
		for i, p := range ship.Position.Coordinates() {
			if !p.InBounds() {
				continue
			}
			glyph := ship.Kind.Symbol()
			if !ship.Health[i] {
				glyph = GlyphDead
			}
			g[p.Y][p.X] = glyph
		}
	}
	return g
}

func writeGrid(w io.Writer, title string, g Grid) {
	fmt.Fprintln(w, title)
	fmt.Fprint(w, " ")
	for x := range model.BoardSize {
		fmt.Fprintf(w, " %d", x)
	}
	fmt.Fprintln(w)
	for y := range model.BoardSize {
		fmt.Fprintf(w, "%d", y)
		for x := range model.BoardSize {
			fmt.Fprintf(w, " %c", g[y][x])
		}
		fmt.Fprintln(w)
	}
}

// RenderBoard writes the two-panel view a player sees before their turn:
// their strikes on the opponent, then their own fleet
func RenderBoard(w io.Writer, board *model.Board) {
	writeGrid(w, "Impacts", ImpactGrid(board))
	fmt.Fprintln(w, strings.Repeat("-", 2*model.BoardSize+1))
	writeGrid(w, "Your ships", FleetGrid(board))
}
