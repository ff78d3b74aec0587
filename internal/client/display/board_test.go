package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"checkers/internal/core"
)

func openingGame() *core.GameResponse {
	return &core.GameResponse{
		Layout:     "bbbbbbbbbbbb........rrrrrrrrrrrr",
		Turn:       "black",
		State:      "ongoing",
		TurnNumber: 1,
		Pieces:     core.PieceCounts{Black: 12, Red: 12},
	}
}

func TestRenderBoardPlain(t *testing.T) {
	lines := strings.Split(RenderBoard(Palette{}, openingGame()), "\n")

	want := map[int]string{
		0: "    1  2  3  4  5  6  7  8",
		1: "1      b     b     b     b    1- 4",
		5: "5     17    18    19    20   17-20",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if len(lines) != 10 || lines[9] != "" {
		t.Fatalf("expected 9 lines and a trailing newline, got %d", len(lines))
	}
}

func TestRenderBoardHighlightsSelection(t *testing.T) {
	g := openingGame()
	g.Selected = 9
	g.SelectionValid = true
	g.Destinations = []int{13, 14}

	out := RenderBoard(Palette{}, g)
	if !strings.Contains(out, "[b]") {
		t.Fatalf("selected piece not marked:\n%s", out)
	}

	pal := NewPalette(33, 196, 226, 240)
	colored := RenderBoard(pal, g)
	if !strings.Contains(colored, pal.Highlight+"13 "+pal.Reset) {
		t.Fatalf("destination 13 not highlighted")
	}
	if !strings.Contains(colored, pal.Dim+"15 "+pal.Reset) {
		t.Fatalf("empty square 15 should be dimmed")
	}
}

func TestStatusAndAction(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, Palette{})

	g := openingGame()
	g.MandatoryCapture = true
	d.Status(g)
	if got := buf.String(); got != "Turn 1: Black to move (capture required)  [b 12/0K  r 12/0K]\n" {
		t.Fatalf("status = %q", got)
	}

	buf.Reset()
	d.Action(&core.ActionInfo{
		Kind:    "game_over",
		Outcome: "red wins",
		Move:    &core.MoveInfo{Color: "red", From: 18, To: 9, Capture: true, Captured: 14},
	})
	if got := buf.String(); got != "red 18x9\nGame over: red wins\n" {
		t.Fatalf("action = %q", got)
	}

	buf.Reset()
	d.Error(errors.New("cannot move there"))
	if got := buf.String(); got != "Error: cannot move there\n" {
		t.Fatalf("error = %q", got)
	}
}

func TestFormatMove(t *testing.T) {
	tests := []struct {
		move core.MoveInfo
		want string
	}{
		{core.MoveInfo{Color: "black", From: 9, To: 13}, "black 9-13"},
		{core.MoveInfo{Color: "black", From: 22, To: 31, Capture: true, Promoted: true}, "black 22x31 (crowned)"},
	}
	for _, tt := range tests {
		if got := FormatMove(&tt.move); got != tt.want {
			t.Fatalf("FormatMove = %q, want %q", got, tt.want)
		}
	}
}
