package board

import (
	"fmt"
	"strings"

	"checkers/internal/core"
)

const (
	// StartingLayout lists squares 1..32: black on rows 1-3, red on rows 6-8
	StartingLayout = "bbbbbbbbbbbb........rrrrrrrrrrrr"
)

// Board maps every position to a piece. It is a plain store and does not
// check move legality.
type Board struct {
	squares [core.NumSquares]core.Piece
}

// New returns the starting position
func New() Board {
	var b Board
	for i := range b.squares {
		pos := core.Position(i + 1)
		switch {
		case pos <= 12:
			b.squares[i] = core.BlackMan
		case pos >= 21:
			b.squares[i] = core.RedMan
		default:
			b.squares[i] = core.Empty
		}
	}
	return b
}

// Empty returns a board with no pieces
func Empty() Board {
	var b Board
	for i := range b.squares {
		b.squares[i] = core.Empty
	}
	return b
}

// ParseLayout reads 32 piece characters in position order, optionally followed
// by a space and the side to move ("b" or "r"). The returned color is
// ColorNone when no side was given.
func ParseLayout(layout string) (Board, core.Color, error) {
	parts := strings.Fields(layout)
	if len(parts) == 0 || len(parts) > 2 {
		return Board{}, core.ColorNone, fmt.Errorf("invalid layout: expected 1 or 2 parts, got %d", len(parts))
	}

	squares := parts[0]
	if len(squares) != core.NumSquares {
		return Board{}, core.ColorNone, fmt.Errorf("invalid layout: expected %d squares, got %d", core.NumSquares, len(squares))
	}

	var b Board
	for i := 0; i < core.NumSquares; i++ {
		p := core.Piece(squares[i])
		if !p.Valid() {
			return Board{}, core.ColorNone, fmt.Errorf("invalid layout: unknown piece %q at position %d", squares[i], i+1)
		}
		b.squares[i] = p
	}

	turn := core.ColorNone
	if len(parts) == 2 {
		c, err := core.ParseColor(parts[1])
		if err != nil {
			return Board{}, core.ColorNone, fmt.Errorf("invalid layout: %w", err)
		}
		turn = c
	}

	return b, turn, nil
}

// Get returns the piece at pos, Empty for out-of-range positions
func (b *Board) Get(pos core.Position) core.Piece {
	if !pos.Valid() {
		return core.Empty
	}
	return b.squares[pos-1]
}

// Set overwrites the square at pos
func (b *Board) Set(pos core.Position, p core.Piece) {
	if !pos.Valid() {
		panic(fmt.Sprintf("board: position %d out of range", pos))
	}
	b.squares[pos-1] = p
}

// Count returns the number of pieces and kings of color c
func (b *Board) Count(c core.Color) (pieces, kings int) {
	for _, p := range b.squares {
		if p.Color() != c {
			continue
		}
		pieces++
		if p.IsKing() {
			kings++
		}
	}
	return pieces, kings
}

// Positions returns the squares holding pieces of color c, ascending
func (b *Board) Positions(c core.Color) []core.Position {
	var out []core.Position
	for i, p := range b.squares {
		if p.Color() == c {
			out = append(out, core.Position(i+1))
		}
	}
	return out
}

// String returns the layout form accepted by ParseLayout
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(core.NumSquares)
	for _, p := range b.squares {
		sb.WriteByte(byte(p))
	}
	return sb.String()
}

// ToASCII creates an ASCII representation of the board with the position
// range of each row on the right
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("   1 2 3 4 5 6 7 8\n")

	for row := 1; row <= core.Rows; row++ {
		sb.WriteString(fmt.Sprintf("%d  ", row))
		for col := 1; col <= 8; col++ {
			// Playable squares are where row and column parity differ
			if (row+col)%2 == 0 {
				sb.WriteString("  ")
				continue
			}
			pos := core.Position((row-1)*core.RowSize + (col-1)/2 + 1)
			sb.WriteString(fmt.Sprintf("%c ", b.Get(pos)))
		}
		first := (row-1)*core.RowSize + 1
		sb.WriteString(fmt.Sprintf(" %2d-%2d\n", first, first+core.RowSize-1))
	}
	sb.WriteString("   1 2 3 4 5 6 7 8")

	return sb.String()
}
