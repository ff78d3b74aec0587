package core

import "fmt"

const (
	Rows        = 8
	RowSize     = 4
	NumSquares  = Rows * RowSize
	MinPosition = Position(1)
	MaxPosition = Position(NumSquares)
)

type State int

const (
	StateOngoing State = iota
	StateBlackWins
	StateRedWins
	StateTie
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateBlackWins:
		return "black wins"
	case StateRedWins:
		return "red wins"
	case StateTie:
		return "tie"
	default:
		return "unknown"
	}
}

// IsOver reports whether the state is terminal
func (s State) IsOver() bool {
	return s == StateBlackWins || s == StateRedWins || s == StateTie
}

// WinState returns the state in which the given color has won
func WinState(c Color) State {
	switch c {
	case ColorBlack:
		return StateBlackWins
	case ColorRed:
		return StateRedWins
	default:
		return StateTie
	}
}

type Color byte

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	default:
		return "-"
	}
}

// Opponent returns the other side, ColorNone stays ColorNone
func (c Color) Opponent() Color {
	switch c {
	case ColorBlack:
		return ColorRed
	case ColorRed:
		return ColorBlack
	default:
		return ColorNone
	}
}

// ParseColor accepts "black"/"b" and "red"/"r"
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b":
		return ColorBlack, nil
	case "red", "r":
		return ColorRed, nil
	default:
		return ColorNone, fmt.Errorf("invalid color %q", s)
	}
}

// Piece is the content of a square, encoded as its layout character
type Piece byte

const (
	Empty     Piece = '.'
	BlackMan  Piece = 'b'
	BlackKing Piece = 'B'
	RedMan    Piece = 'r'
	RedKing   Piece = 'R'
)

// NewPiece builds a normal or king piece of the given color
func NewPiece(c Color, king bool) Piece {
	switch {
	case c == ColorBlack && king:
		return BlackKing
	case c == ColorBlack:
		return BlackMan
	case c == ColorRed && king:
		return RedKing
	case c == ColorRed:
		return RedMan
	default:
		return Empty
	}
}

func (p Piece) Color() Color {
	switch p {
	case BlackMan, BlackKing:
		return ColorBlack
	case RedMan, RedKing:
		return ColorRed
	default:
		return ColorNone
	}
}

func (p Piece) IsEmpty() bool {
	return p.Color() == ColorNone
}

func (p Piece) IsKing() bool {
	return p == BlackKing || p == RedKing
}

// Promote returns the king of the same color; empty squares stay empty
func (p Piece) Promote() Piece {
	return NewPiece(p.Color(), true)
}

// Valid reports whether the byte is a known piece encoding
func (p Piece) Valid() bool {
	switch p {
	case Empty, BlackMan, BlackKing, RedMan, RedKing:
		return true
	}
	return false
}

func (p Piece) String() string {
	return string(p)
}

// Position is a playable square numbered 1..32, four per row, top row first
type Position int

func (p Position) Valid() bool {
	return p >= MinPosition && p <= MaxPosition
}

// Row returns 1..8, ceil(p/4)
func (p Position) Row() int {
	return (int(p) + RowSize - 1) / RowSize
}

// Index returns the square's slot within its row, 0..3
func (p Position) Index() int {
	return (int(p) - 1) % RowSize
}

// Column returns the 1..8 board column; odd rows are shifted one column right
func (p Position) Column() int {
	col := 2*p.Index() + 1
	if p.Row()%2 == 1 {
		col++
	}
	return col
}

// FarRow is the row where a normal piece of color c is promoted
func FarRow(c Color) int {
	if c == ColorBlack {
		return Rows
	}
	return 1
}
