package game

import (
	"errors"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"

	"github.com/google/go-cmp/cmp"
)

func newGame(t *testing.T, pieces map[core.Position]core.Piece, first core.Color) *Game {
	t.Helper()
	b := board.Empty()
	for pos, p := range pieces {
		b.Set(pos, p)
	}
	return NewFromBoard(b, first)
}

func mustSubmit(t *testing.T, g *Game, pos core.Position, want ResultKind) ActionResult {
	t.Helper()
	res := g.Submit(pos)
	if res.Kind != want {
		msg := ""
		if res.Err != nil {
			msg = res.Err.Error()
		}
		t.Fatalf("Submit(%d) = %v %s, want %v", pos, res.Kind, msg, want)
	}
	return res
}

func mustReject(t *testing.T, g *Game, pos core.Position, want *ActionError) {
	t.Helper()
	before := g.Snapshot()
	res := g.Submit(pos)
	if !res.Rejected() {
		t.Fatalf("Submit(%d) = %v, want rejection %s", pos, res.Kind, want.Kind)
	}
	if !errors.Is(res.Err, want) {
		t.Fatalf("Submit(%d) rejected with %s, want %s", pos, res.Err.Kind, want.Kind)
	}
	if diff := cmp.Diff(before, g.Snapshot(), cmp.AllowUnexported(board.Board{})); diff != "" {
		t.Fatalf("rejected Submit(%d) changed state (-before +after):\n%s", pos, diff)
	}
}

func TestOpeningMove(t *testing.T) {
	g := New()

	ts := g.TurnState()
	if ts.CurrentColor != core.ColorBlack || ts.Selected != 0 || ts.Phase() != PhaseAwaitingSelection {
		t.Fatalf("unexpected initial turn state %+v", ts)
	}

	mustSubmit(t, g, 9, ResultSelected)
	if diff := cmp.Diff([]core.Position{13, 14}, g.SelectedDestinations()); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}

	res := mustSubmit(t, g, 13, ResultTurnEnded)
	if res.NextColor != core.ColorRed {
		t.Fatalf("next color = %v, want red", res.NextColor)
	}
	want := &Move{Color: core.ColorBlack, From: 9, To: 13}
	if diff := cmp.Diff(want, res.Move); diff != "" {
		t.Fatalf("move mismatch (-want +got):\n%s", diff)
	}

	b := g.Board()
	if b.Get(9) != core.Empty || b.Get(13) != core.BlackMan {
		t.Fatalf("board not updated: %s", b.String())
	}
	ts = g.TurnState()
	if ts.CurrentColor != core.ColorRed || ts.SelectionValid || ts.TurnNumber != 2 {
		t.Fatalf("unexpected turn state after move %+v", ts)
	}
}

func TestSelectionRejections(t *testing.T) {
	g := New()

	mustReject(t, g, 22, ErrInvalidPieceColor) // red piece on black's turn
	mustReject(t, g, 15, ErrInvalidPieceColor) // empty square
	mustReject(t, g, 0, ErrInvalidPieceColor)
	mustReject(t, g, 40, ErrInvalidPieceColor)
	mustReject(t, g, 1, ErrNoLegalMoves)

	mustSubmit(t, g, 9, ResultSelected)
	mustReject(t, g, 18, ErrIllegalDestination)
	mustReject(t, g, 10, ErrIllegalDestination) // another own piece
	mustReject(t, g, 33, ErrIllegalDestination)

	mustSubmit(t, g, 9, ResultDeselected)
	if ts := g.TurnState(); ts.SelectionValid || ts.Selected != 0 {
		t.Fatalf("selection not cleared: %+v", ts)
	}
	mustSubmit(t, g, 10, ResultSelected)
}

func TestInvalidColorMessageNamesColor(t *testing.T) {
	g := New()
	res := g.Submit(22)
	if res.Err == nil || res.Err.Message != "it is black's turn, select a black piece" {
		t.Fatalf("unexpected rejection %+v", res.Err)
	}
}

func TestMandatoryCapture(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{
		18: core.RedMan,
		30: core.RedMan,
		14: core.BlackMan,
		1:  core.BlackMan,
	}, core.ColorRed)

	if !g.TurnState().MandatoryCaptureAvailable {
		t.Fatalf("capture should be mandatory for red")
	}

	mustReject(t, g, 30, ErrMustUseCapturingPiece)

	mustSubmit(t, g, 18, ResultSelected)
	if diff := cmp.Diff([]core.Position{9}, g.SelectedDestinations()); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}

	mustReject(t, g, 15, ErrMustUseCapturingPiece) // simple move while a skip exists
	mustReject(t, g, 22, ErrIllegalDestination)

	before := g.Board()
	black, _ := before.Count(core.ColorBlack)
	res := mustSubmit(t, g, 9, ResultTurnEnded)
	if !res.Move.Capture || res.Move.Captured != 14 {
		t.Fatalf("expected capture over 14, got %+v", res.Move)
	}

	b := g.Board()
	if after, _ := b.Count(core.ColorBlack); after != black-1 {
		t.Fatalf("black pieces = %d, want %d", after, black-1)
	}
	if b.Get(14) != core.Empty || b.Get(18) != core.Empty || b.Get(9) != core.RedMan {
		t.Fatalf("unexpected board after capture: %s", b.String())
	}
}

func TestMultiJumpPinsPiece(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{
		6:  core.BlackMan,
		2:  core.BlackMan,
		10: core.RedMan,
		19: core.RedMan,
		29: core.RedMan,
	}, core.ColorBlack)

	mustReject(t, g, 2, ErrMustUseCapturingPiece)
	mustSubmit(t, g, 6, ResultSelected)

	res := mustSubmit(t, g, 15, ResultMoved)
	if res.NextColor != core.ColorBlack || res.Position != 15 {
		t.Fatalf("unexpected continuation result %+v", res)
	}

	ts := g.TurnState()
	if ts.MustContinueJumpFrom != 15 || ts.CurrentColor != core.ColorBlack || ts.Phase() != PhaseMustContinueJump {
		t.Fatalf("jump not pinned: %+v", ts)
	}
	if diff := cmp.Diff([]core.Position{24}, g.SelectedDestinations()); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}

	mustReject(t, g, 2, ErrMustFinishJumpSequence)
	mustReject(t, g, 15, ErrMustFinishJumpSequence)
	mustReject(t, g, 18, ErrMustFinishJumpSequence)

	res = mustSubmit(t, g, 24, ResultTurnEnded)
	if res.Move.From != 15 || res.Move.Captured != 19 {
		t.Fatalf("unexpected second jump %+v", res.Move)
	}
	final := g.Board()
	if red, _ := final.Count(core.ColorRed); red != 1 {
		t.Fatalf("red pieces = %d, want 1", red)
	}
	if ts := g.TurnState(); ts.CurrentColor != core.ColorRed || ts.MustContinueJumpFrom != 0 {
		t.Fatalf("turn did not pass to red: %+v", ts)
	}
}

func TestPromotionOnSimpleMove(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{
		27: core.BlackMan,
		20: core.RedMan,
	}, core.ColorBlack)

	mustSubmit(t, g, 27, ResultSelected)
	res := mustSubmit(t, g, 32, ResultTurnEnded)
	if !res.Move.Promoted {
		t.Fatalf("expected promotion, got %+v", res.Move)
	}
	b := g.Board()
	if b.Get(32) != core.BlackKing {
		t.Fatalf("position 32 = %v, want black king", b.Get(32))
	}
}

func TestPromotionMidChainGrantsKingCapture(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{
		22: core.BlackMan,
		26: core.RedMan,
		27: core.RedMan,
		17: core.RedMan,
	}, core.ColorBlack)

	mustSubmit(t, g, 22, ResultSelected)
	res := mustSubmit(t, g, 31, ResultMoved)
	if !res.Move.Promoted {
		t.Fatalf("expected promotion on landing, got %+v", res.Move)
	}

	b := g.Board()
	if b.Get(31) != core.BlackKing {
		t.Fatalf("position 31 = %v, want black king", b.Get(31))
	}
	ts := g.TurnState()
	if ts.Selected != 31 || ts.MustContinueJumpFrom != 31 {
		t.Fatalf("promoted piece lost its pin: %+v", ts)
	}

	res = mustSubmit(t, g, 24, ResultTurnEnded)
	if res.Move.Promoted || res.Move.Captured != 27 {
		t.Fatalf("unexpected king jump %+v", res.Move)
	}
	b = g.Board()
	if b.Get(24) != core.BlackKing {
		t.Fatalf("position 24 = %v, want black king", b.Get(24))
	}
}

func TestBlockedColorLoses(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{
		1:  core.BlackMan,
		14: core.BlackMan,
		5:  core.RedMan,
	}, core.ColorBlack)

	mustSubmit(t, g, 14, ResultSelected)
	res := mustSubmit(t, g, 18, ResultGameOver)
	if res.Outcome != core.StateBlackWins {
		t.Fatalf("outcome = %v, want black wins", res.Outcome)
	}

	ts := g.TurnState()
	if !ts.GameOver || ts.Outcome != core.StateBlackWins || ts.Phase() != PhaseGameOver {
		t.Fatalf("unexpected final state %+v", ts)
	}
	mustReject(t, g, 5, ErrGameAlreadyOver)
	mustReject(t, g, 18, ErrGameAlreadyOver)
}

func TestLastPieceCaptured(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{
		14: core.BlackMan,
		18: core.RedMan,
	}, core.ColorBlack)

	mustSubmit(t, g, 14, ResultSelected)
	res := mustSubmit(t, g, 23, ResultGameOver)
	if res.Outcome != core.StateBlackWins || !res.Move.Capture {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestDecidedLayoutStartsOver(t *testing.T) {
	g := newGame(t, map[core.Position]core.Piece{14: core.BlackMan}, core.ColorRed)

	ts := g.TurnState()
	if !ts.GameOver || ts.Outcome != core.StateBlackWins {
		t.Fatalf("expected finished game, got %+v", ts)
	}
	mustReject(t, g, 14, ErrGameAlreadyOver)
}

// TestScriptedPlayInvariants plays the first legal action repeatedly and
// checks board size, piece accounting and mandatory capture on every step.
func TestScriptedPlayInvariants(t *testing.T) {
	g := New()

	total := func() int {
		b := g.Board()
		black, _ := b.Count(core.ColorBlack)
		red, _ := b.Count(core.ColorRed)
		return black + red
	}

	for step := 0; step < 400 && !g.TurnState().GameOver; step++ {
		ts := g.TurnState()

		if ts.Phase() == PhaseAwaitingSelection {
			selected := false
			for p := core.MinPosition; p <= core.MaxPosition && !selected; p++ {
				selected = g.Submit(p).Kind == ResultSelected
			}
			if !selected {
				t.Fatalf("step %d: no selectable piece but game not over", step)
			}
			continue
		}

		dests := g.SelectedDestinations()
		if len(dests) == 0 {
			t.Fatalf("step %d: selected piece without destinations", step)
		}

		mandatory := g.TurnState().MandatoryCaptureAvailable
		before := total()
		res := g.Submit(dests[0])
		if res.Rejected() {
			t.Fatalf("step %d: destination %d rejected: %s", step, dests[0], res.Err)
		}

		b := g.Board()
		if got := len(b.String()); got != core.NumSquares {
			t.Fatalf("board has %d squares", got)
		}
		want := before
		if res.Move.Capture {
			want--
		}
		if got := total(); got != want {
			t.Fatalf("step %d: piece total %d, want %d", step, got, want)
		}
		if mandatory && !res.Move.Capture {
			t.Fatalf("step %d: simple move applied while a capture was mandatory", step)
		}
		if res.Kind == ResultMoved && g.TurnState().CurrentColor != ts.CurrentColor {
			t.Fatalf("step %d: turn flipped during a jump sequence", step)
		}
	}
}
