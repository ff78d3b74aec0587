package board

import (
	"testing"

	"checkers/internal/core"

	"github.com/google/go-cmp/cmp"
)

func positions(ps ...int) []core.Position {
	out := make([]core.Position, len(ps))
	for i, p := range ps {
		out[i] = core.Position(p)
	}
	return out
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Position
		want []core.Position
	}{
		{"top row left", 1, positions(5, 6)},
		{"top row right corner", 4, positions(8)},
		{"even row left edge", 5, positions(1, 9)},
		{"even row right", 8, positions(3, 4, 11, 12)},
		{"odd row left", 9, positions(5, 6, 13, 14)},
		{"odd row right edge", 12, positions(8, 16)},
		{"center", 18, positions(14, 15, 22, 23)},
		{"bottom row left corner", 29, positions(25)},
		{"bottom row right", 32, positions(27, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Neighbors(tt.pos)); diff != "" {
				t.Fatalf("Neighbors(%d) mismatch (-want +got):\n%s", tt.pos, diff)
			}
		})
	}
}

func TestNeighborsSymmetricAndBounded(t *testing.T) {
	for p := core.MinPosition; p <= core.MaxPosition; p++ {
		ns := Neighbors(p)
		if len(ns) < 1 || len(ns) > 4 {
			t.Fatalf("position %d has %d neighbors", p, len(ns))
		}
		for _, n := range ns {
			if !n.Valid() {
				t.Fatalf("position %d has off-board neighbor %d", p, n)
			}
			back := false
			for _, m := range Neighbors(n) {
				if m == p {
					back = true
				}
			}
			if !back {
				t.Fatalf("%d lists %d as neighbor but not the reverse", p, n)
			}
		}
	}
}

func TestNeighborsOutOfRange(t *testing.T) {
	for _, p := range []core.Position{0, 33, -4} {
		if ns := Neighbors(p); ns != nil {
			t.Fatalf("Neighbors(%d) = %v, want nil", p, ns)
		}
	}
}

func TestCornerDirection(t *testing.T) {
	tests := []struct {
		from, to core.Position
		want     Direction
		ok       bool
	}{
		{9, 5, UpLeft, true},
		{9, 6, UpRight, true},
		{9, 13, DownLeft, true},
		{9, 14, DownRight, true},
		{14, 9, UpLeft, true},
		{14, 10, UpRight, true},
		{14, 17, DownLeft, true},
		{14, 18, DownRight, true},
		{4, 9, 0, false}, // +5 would wrap around the right edge
		{9, 18, 0, false},
		{9, 9, 0, false},
	}

	for _, tt := range tests {
		got, ok := CornerDirection(tt.from, tt.to)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("CornerDirection(%d, %d) = %v, %v; want %v, %v", tt.from, tt.to, got, ok, tt.want, tt.ok)
		}
	}
}

func TestJumpLandingMatchesTwoSteps(t *testing.T) {
	for p := core.MinPosition; p <= core.MaxPosition; p++ {
		for _, d := range FeasibleDirections(p) {
			mid, ok := step(p, d)
			if !ok {
				t.Fatalf("feasible direction %v from %d has no neighbor", d, p)
			}
			far, ok := step(mid, d)
			if !ok {
				t.Fatalf("feasible direction %v from %d has no second step", d, p)
			}
			if got := JumpLanding(p, d); got != far {
				t.Fatalf("JumpLanding(%d, %v) = %d, want %d", p, d, got, far)
			}
		}
	}
}

func TestFeasibleDirectionsExcludeEveryWrap(t *testing.T) {
	for p := core.MinPosition; p <= core.MaxPosition; p++ {
		feasible := map[Direction]bool{}
		for _, d := range FeasibleDirections(p) {
			feasible[d] = true
		}
		for _, d := range allDirections {
			mid, ok := step(p, d)
			twoSteps := ok
			if ok {
				_, twoSteps = step(mid, d)
			}
			if feasible[d] != twoSteps {
				t.Fatalf("position %d direction %v: feasible=%v, two steps on board=%v", p, d, feasible[d], twoSteps)
			}
		}
	}
}

func TestFeasibleDirections(t *testing.T) {
	tests := []struct {
		pos  core.Position
		want []Direction
	}{
		{29, []Direction{UpRight}},
		{1, []Direction{DownRight}},
		{4, []Direction{DownLeft}},
		{32, []Direction{UpLeft}},
		{14, []Direction{UpLeft, UpRight, DownLeft, DownRight}},
		{13, []Direction{UpRight, DownRight}},
		{6, []Direction{DownLeft, DownRight}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, FeasibleDirections(tt.pos)); diff != "" {
			t.Fatalf("FeasibleDirections(%d) mismatch (-want +got):\n%s", tt.pos, diff)
		}
	}
}
