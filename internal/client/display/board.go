package display

import (
	"fmt"
	"io"
	"strings"

	"checkers/internal/core"
)

// Display writes boards and messages for the terminal clients
type Display struct {
	out io.Writer
	pal Palette
}

func New(out io.Writer, pal Palette) *Display {
	return &Display{out: out, pal: pal}
}

// Palette returns the colors the display paints with
func (d *Display) Palette() Palette {
	return d.pal
}

// RenderBoard draws the 8x8 board. Dark squares show their piece, or their
// position number when empty so a player knows what to type. The selected
// piece and its legal destinations are highlighted.
func RenderBoard(pal Palette, g *core.GameResponse) string {
	dest := make(map[int]bool, len(g.Destinations))
	for _, p := range g.Destinations {
		dest[p] = true
	}

	var sb strings.Builder
	sb.WriteString("    1  2  3  4  5  6  7  8\n")
	for row := 1; row <= core.Rows; row++ {
		cells := [core.Rows]string{}
		for i := range cells {
			cells[i] = "   "
		}

		first := (row-1)*core.RowSize + 1
		for pos := first; pos < first+core.RowSize; pos++ {
			cells[core.Position(pos).Column()-1] = renderSquare(pal, g, pos, dest[pos])
		}

		fmt.Fprintf(&sb, "%d  %s  %2d-%2d\n", row, strings.Join(cells[:], ""), first, first+core.RowSize-1)
	}
	return sb.String()
}

func renderSquare(pal Palette, g *core.GameResponse, pos int, isDest bool) string {
	piece := core.Empty
	if pos-1 < len(g.Layout) {
		piece = core.Piece(g.Layout[pos-1])
	}

	if piece.IsEmpty() {
		label := fmt.Sprintf("%2d ", pos)
		if isDest {
			return pal.paint(pal.Highlight, label)
		}
		return pal.paint(pal.Dim, label)
	}

	label := fmt.Sprintf(" %c ", byte(piece))
	switch {
	case g.SelectionValid && g.Selected == pos:
		return pal.paint(pal.Highlight, fmt.Sprintf("[%c]", byte(piece)))
	case piece.Color() == core.ColorBlack:
		return pal.paint(pal.Black, label)
	default:
		return pal.paint(pal.Red, label)
	}
}

// Board prints the board followed by the status line
func (d *Display) Board(g *core.GameResponse) {
	fmt.Fprint(d.out, RenderBoard(d.pal, g))
	d.Status(g)
}

// Status prints whose turn it is and any pending obligation
func (d *Display) Status(g *core.GameResponse) {
	if g.GameOver {
		fmt.Fprintf(d.out, "%s\n", d.pal.paint(d.pal.Highlight, "Game over: "+g.State))
		return
	}

	line := fmt.Sprintf("Turn %d: %s to move", g.TurnNumber, d.colorName(g.Turn))
	switch {
	case g.MustContinueFrom != 0:
		line += fmt.Sprintf(", continue jumping from %d", g.MustContinueFrom)
	case g.SelectionValid:
		line += fmt.Sprintf(", %d selected", g.Selected)
	}
	if g.MandatoryCapture && g.MustContinueFrom == 0 {
		line += " (capture required)"
	}
	fmt.Fprintf(d.out, "%s  [b %d/%dK  r %d/%dK]\n", line,
		g.Pieces.Black, g.Pieces.BlackKings, g.Pieces.Red, g.Pieces.RedKings)
}

func (d *Display) colorName(c string) string {
	switch c {
	case "black":
		return d.pal.paint(d.pal.Black, "Black")
	case "red":
		return d.pal.paint(d.pal.Red, "Red")
	default:
		return c
	}
}

// Action prints a one-line summary of an accepted click
func (d *Display) Action(a *core.ActionInfo) {
	switch a.Kind {
	case "selected":
		fmt.Fprintf(d.out, "Selected %d\n", a.Position)
	case "deselected":
		fmt.Fprintf(d.out, "Deselected %d\n", a.Position)
	default:
		if a.Move != nil {
			fmt.Fprintln(d.out, FormatMove(a.Move))
		}
		if a.Kind == "game_over" {
			fmt.Fprintf(d.out, "%s\n", d.pal.paint(d.pal.Highlight, "Game over: "+a.Outcome))
		}
	}
}

// FormatMove renders a move as "11-15" or "11x18" with a crown marker
func FormatMove(m *core.MoveInfo) string {
	sep := "-"
	if m.Capture {
		sep = "x"
	}
	s := fmt.Sprintf("%s %d%s%d", m.Color, m.From, sep, m.To)
	if m.Promoted {
		s += " (crowned)"
	}
	return s
}
