package rules

import (
	"sort"

	"checkers/internal/board"
	"checkers/internal/core"
)

// Capture is a jump landing on To that removes the opponent piece on Over
type Capture struct {
	To   core.Position
	Over core.Position
}

// Moves holds the legal destinations of a single piece
type Moves struct {
	Simple   []core.Position
	Captures []Capture
}

// Count returns the number of candidate destinations
func (m Moves) Count() int {
	return len(m.Simple) + len(m.Captures)
}

func (m Moves) Empty() bool {
	return m.Count() == 0
}

func (m Moves) HasCapture() bool {
	return len(m.Captures) > 0
}

// HasSimple reports whether pos is a simple destination
func (m Moves) HasSimple(pos core.Position) bool {
	for _, p := range m.Simple {
		if p == pos {
			return true
		}
	}
	return false
}

// CaptureTo returns the capture landing on pos
func (m Moves) CaptureTo(pos core.Position) (Capture, bool) {
	for _, c := range m.Captures {
		if c.To == pos {
			return c, true
		}
	}
	return Capture{}, false
}

// Destinations lists all simple and capture destinations in ascending order
func (m Moves) Destinations() []core.Position {
	out := make([]core.Position, 0, m.Count())
	out = append(out, m.Simple...)
	for _, c := range m.Captures {
		out = append(out, c.To)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LegalDestinations computes the simple moves and captures of the piece on pos
// for the given color. A square that is empty or owned by the other color
// yields no moves; ownership checks belong to the caller.
func LegalDestinations(b *board.Board, pos core.Position, color core.Color) Moves {
	var moves Moves

	piece := b.Get(pos)
	if piece.IsEmpty() || piece.Color() != color {
		return moves
	}

	for _, n := range board.Neighbors(pos) {
		occupant := b.Get(n)

		switch {
		case occupant.IsEmpty():
			if isForward(piece, pos, n) {
				moves.Simple = append(moves.Simple, n)
			}

		case occupant.Color() == color.Opponent():
			dir, ok := board.CornerDirection(pos, n)
			if !ok || !board.IsFeasible(pos, dir) {
				continue
			}
			landing := board.JumpLanding(pos, dir)
			if !landing.Valid() || !b.Get(landing).IsEmpty() {
				continue
			}
			if isForward(piece, pos, landing) {
				moves.Captures = append(moves.Captures, Capture{To: landing, Over: n})
			}
		}
	}

	return moves
}

// isForward applies the normal piece direction rule: black moves toward higher
// position numbers, red toward lower. Kings move both ways.
func isForward(piece core.Piece, from, to core.Position) bool {
	if piece.IsKing() {
		return true
	}
	switch piece.Color() {
	case core.ColorBlack:
		return to > from
	case core.ColorRed:
		return to < from
	default:
		return false
	}
}

// AnyCaptureAvailable reports whether any piece of color can capture
func AnyCaptureAvailable(b *board.Board, color core.Color) bool {
	for _, pos := range b.Positions(color) {
		if LegalDestinations(b, pos, color).HasCapture() {
			return true
		}
	}
	return false
}

// CountMoves sums the candidate destinations over every piece of color
func CountMoves(b *board.Board, color core.Color) int {
	total := 0
	for _, pos := range b.Positions(color) {
		total += LegalDestinations(b, pos, color).Count()
	}
	return total
}
