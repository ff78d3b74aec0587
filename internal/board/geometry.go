package board

import "checkers/internal/core"

type Direction int

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

var allDirections = [...]Direction{UpLeft, UpRight, DownLeft, DownRight}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	default:
		return "unknown"
	}
}

func (d Direction) IsUp() bool {
	return d == UpLeft || d == UpRight
}

func (d Direction) IsLeft() bool {
	return d == UpLeft || d == DownLeft
}

// Single step offsets by row parity. Odd rows sit one column to the right of
// the even rows, so the same direction maps to a different number delta.
var stepOffsets = [2][4]int{
	{-5, -4, 3, 4}, // even rows
	{-4, -3, 4, 5}, // odd rows
}

// A jump always spans two rows, which cancels the parity shift.
var jumpOffsets = [4]int{-9, -7, 7, 9}

// step returns the diagonal neighbor of pos in direction d, if on board
func step(pos core.Position, d Direction) (core.Position, bool) {
	row := pos.Row()
	parity := row % 2

	if d.IsUp() && row == 1 {
		return 0, false
	}
	if !d.IsUp() && row == core.Rows {
		return 0, false
	}
	// Column 1 only exists on even rows, column 8 only on odd rows
	if d.IsLeft() && parity == 0 && pos.Index() == 0 {
		return 0, false
	}
	if !d.IsLeft() && parity == 1 && pos.Index() == core.RowSize-1 {
		return 0, false
	}

	return pos + core.Position(stepOffsets[parity][d]), true
}

// Neighbors returns the up to four diagonal neighbors of pos, ignoring occupancy
func Neighbors(pos core.Position) []core.Position {
	if !pos.Valid() {
		return nil
	}

	neighbors := make([]core.Position, 0, len(allDirections))
	for _, d := range allDirections {
		if n, ok := step(pos, d); ok {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CornerDirection classifies to relative to from. ok is false when to is not
// a diagonal neighbor of from.
func CornerDirection(from, to core.Position) (Direction, bool) {
	if !from.Valid() || !to.Valid() {
		return 0, false
	}
	for _, d := range allDirections {
		if n, ok := step(from, d); ok && n == to {
			return d, true
		}
	}
	return 0, false
}

// JumpLanding returns the square two steps from from along d. The caller checks
// FeasibleDirections and occupancy.
func JumpLanding(from core.Position, d Direction) core.Position {
	return from + core.Position(jumpOffsets[d])
}

// FeasibleDirections lists the jump directions with two rows and two columns
// of clearance from pos.
func FeasibleDirections(pos core.Position) []Direction {
	if !pos.Valid() {
		return nil
	}

	row := pos.Row()
	feasible := make([]Direction, 0, len(allDirections))
	for _, d := range allDirections {
		if d.IsUp() && row <= 2 {
			continue
		}
		if !d.IsUp() && row >= core.Rows-1 {
			continue
		}
		if d.IsLeft() && int(pos)%core.RowSize == 1 {
			continue
		}
		if !d.IsLeft() && int(pos)%core.RowSize == 0 {
			continue
		}
		feasible = append(feasible, d)
	}
	return feasible
}

// IsFeasible reports whether d is among FeasibleDirections(pos)
func IsFeasible(pos core.Position, d Direction) bool {
	for _, f := range FeasibleDirections(pos) {
		if f == d {
			return true
		}
	}
	return false
}
