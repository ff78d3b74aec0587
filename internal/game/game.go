package game

import (
	"fmt"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/rules"
)

type Phase int

const (
	PhaseAwaitingSelection Phase = iota
	PhasePieceSelected
	PhaseMustContinueJump
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingSelection:
		return "awaiting selection"
	case PhasePieceSelected:
		return "piece selected"
	case PhaseMustContinueJump:
		return "must continue jump"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// TurnState is the controller's view of whose turn it is and what is pinned.
// Position zero means none for Selected and MustContinueJumpFrom.
type TurnState struct {
	CurrentColor              core.Color
	Selected                  core.Position
	SelectionValid            bool
	MandatoryCaptureAvailable bool
	MustContinueJumpFrom      core.Position
	GameOver                  bool
	Outcome                   core.State
	TurnNumber                int
}

func (s TurnState) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.MustContinueJumpFrom != 0:
		return PhaseMustContinueJump
	case s.SelectionValid:
		return PhasePieceSelected
	default:
		return PhaseAwaitingSelection
	}
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	Board        board.Board
	Turn         TurnState
	LastMove     *Move
	Destinations []core.Position // legal targets of the selected piece
	Version      int
}

// Game is the turn controller and the only writer of its board and turn
// state. It is not safe for concurrent use; callers serialize Submit.
type Game struct {
	board    board.Board
	turn     TurnState
	lastMove *Move
	version  int
}

// New starts a game from the opening layout with black to move
func New() *Game {
	return NewFromBoard(board.New(), core.ColorBlack)
}

// NewFromBoard starts a game from an arbitrary layout. A layout that is
// already decided starts in the game over phase.
func NewFromBoard(b board.Board, first core.Color) *Game {
	if first == core.ColorNone {
		first = core.ColorBlack
	}

	g := &Game{
		board: b,
		turn: TurnState{
			CurrentColor: first,
			TurnNumber:   1,
		},
	}

	if state := rules.Evaluate(&g.board, first); state.IsOver() {
		g.finish(state)
		return g
	}
	g.turn.MandatoryCaptureAvailable = rules.AnyCaptureAvailable(&g.board, first)
	return g
}

// Board returns a copy of the current board
func (g *Game) Board() board.Board {
	return g.board
}

// TurnState returns a copy of the current turn state
func (g *Game) TurnState() TurnState {
	return g.turn
}

// LastMove returns the most recent applied step, nil before the first move
func (g *Game) LastMove() *Move {
	if g.lastMove == nil {
		return nil
	}
	m := *g.lastMove
	return &m
}

// Version increases with every accepted action
func (g *Game) Version() int {
	return g.version
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:        g.board,
		Turn:         g.turn,
		LastMove:     g.LastMove(),
		Destinations: g.SelectedDestinations(),
		Version:      g.version,
	}
}

// SelectedDestinations lists the squares the selected piece may move to right
// now, honoring mandatory capture and a pinned jump sequence.
func (g *Game) SelectedDestinations() []core.Position {
	if g.turn.GameOver || !g.turn.SelectionValid {
		return nil
	}

	moves := rules.LegalDestinations(&g.board, g.turn.Selected, g.turn.CurrentColor)
	if g.turn.MandatoryCaptureAvailable || g.turn.MustContinueJumpFrom != 0 {
		moves.Simple = nil
	}
	return moves.Destinations()
}

// Submit applies a player's click on pos and reports the outcome. Rejections
// leave the game untouched.
func (g *Game) Submit(pos core.Position) ActionResult {
	switch g.turn.Phase() {
	case PhaseGameOver:
		return rejectedf(ErrGameAlreadyOver, fmt.Sprintf("game is over: %s", g.turn.Outcome))
	case PhaseMustContinueJump:
		return g.continueJump(pos)
	case PhasePieceSelected:
		return g.moveSelected(pos)
	default:
		return g.selectPiece(pos)
	}
}

func (g *Game) selectPiece(pos core.Position) ActionResult {
	color := g.turn.CurrentColor
	if !pos.Valid() || g.board.Get(pos).Color() != color {
		return rejectedf(ErrInvalidPieceColor, fmt.Sprintf("it is %s's turn, select a %s piece", color, color))
	}

	// Recomputed deliberately before every selection
	g.turn.MandatoryCaptureAvailable = rules.AnyCaptureAvailable(&g.board, color)

	moves := rules.LegalDestinations(&g.board, pos, color)
	if g.turn.MandatoryCaptureAvailable && !moves.HasCapture() {
		return rejected(ErrMustUseCapturingPiece)
	}
	if moves.Empty() {
		return rejected(ErrNoLegalMoves)
	}

	g.turn.Selected = pos
	g.turn.SelectionValid = true
	g.version++
	return ActionResult{Kind: ResultSelected, Position: pos}
}

func (g *Game) moveSelected(pos core.Position) ActionResult {
	from := g.turn.Selected
	if pos == from {
		g.clearSelection()
		g.version++
		return ActionResult{Kind: ResultDeselected, Position: pos}
	}

	moves := rules.LegalDestinations(&g.board, from, g.turn.CurrentColor)
	if c, ok := moves.CaptureTo(pos); ok {
		return g.applyCapture(from, c)
	}
	if moves.HasSimple(pos) {
		if g.turn.MandatoryCaptureAvailable {
			return rejected(ErrMustUseCapturingPiece)
		}
		return g.applySimple(from, pos)
	}
	return rejected(ErrIllegalDestination)
}

func (g *Game) continueJump(pos core.Position) ActionResult {
	from := g.turn.MustContinueJumpFrom
	moves := rules.LegalDestinations(&g.board, from, g.turn.CurrentColor)

	c, ok := moves.CaptureTo(pos)
	if !ok {
		return rejectedf(ErrMustFinishJumpSequence, fmt.Sprintf("you must continue jumping with the piece on %d", from))
	}
	return g.applyCapture(from, c)
}

func (g *Game) applySimple(from, to core.Position) ActionResult {
	color := g.turn.CurrentColor
	promoted := g.relocate(from, to)

	return g.endTurn(&Move{
		Color:    color,
		From:     from,
		To:       to,
		Promoted: promoted,
	})
}

func (g *Game) applyCapture(from core.Position, c rules.Capture) ActionResult {
	color := g.turn.CurrentColor
	g.board.Set(c.Over, core.Empty)
	promoted := g.relocate(from, c.To)

	move := &Move{
		Color:    color,
		From:     from,
		To:       c.To,
		Capture:  true,
		Captured: c.Over,
		Promoted: promoted,
	}

	// A freshly crowned king continues with king movement
	if rules.LegalDestinations(&g.board, c.To, color).HasCapture() {
		g.lastMove = move
		g.turn.Selected = c.To
		g.turn.SelectionValid = true
		g.turn.MustContinueJumpFrom = c.To
		g.turn.MandatoryCaptureAvailable = true
		g.version++
		return ActionResult{Kind: ResultMoved, Position: c.To, Move: move, NextColor: color}
	}

	return g.endTurn(move)
}

// relocate moves the piece on from to to, crowning it on its far row
func (g *Game) relocate(from, to core.Position) bool {
	piece := g.board.Get(from)
	g.board.Set(from, core.Empty)

	promoted := false
	if !piece.IsKing() && to.Row() == core.FarRow(piece.Color()) {
		piece = piece.Promote()
		promoted = true
	}
	g.board.Set(to, piece)
	return promoted
}

func (g *Game) endTurn(move *Move) ActionResult {
	g.lastMove = move
	g.clearSelection()

	next := g.turn.CurrentColor.Opponent()
	g.turn.CurrentColor = next
	g.turn.TurnNumber++
	g.version++

	if state := rules.Evaluate(&g.board, next); state.IsOver() {
		g.finish(state)
		return ActionResult{Kind: ResultGameOver, Move: move, Outcome: state}
	}

	g.turn.MandatoryCaptureAvailable = rules.AnyCaptureAvailable(&g.board, next)
	return ActionResult{Kind: ResultTurnEnded, Move: move, NextColor: next}
}

func (g *Game) clearSelection() {
	g.turn.Selected = 0
	g.turn.SelectionValid = false
	g.turn.MustContinueJumpFrom = 0
}

func (g *Game) finish(state core.State) {
	g.clearSelection()
	g.turn.GameOver = true
	g.turn.Outcome = state
	g.turn.MandatoryCaptureAvailable = false
}
