package game

import (
	"checkers/internal/core"
)

// ErrorKind identifies a rejected action. Values double as API error codes.
type ErrorKind string

const (
	KindInvalidPieceColor      ErrorKind = core.ErrInvalidPieceColor
	KindNoLegalMoves           ErrorKind = core.ErrNoLegalMoves
	KindMustUseCapturingPiece  ErrorKind = core.ErrMustUseCapturingPiece
	KindIllegalDestination     ErrorKind = core.ErrIllegalDestination
	KindMustFinishJumpSequence ErrorKind = core.ErrMustFinishJumpSequence
	KindGameAlreadyOver        ErrorKind = core.ErrGameAlreadyOver
)

// ActionError is a recoverable rejection of a submitted action
type ActionError struct {
	Kind    ErrorKind
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

// Is matches any ActionError of the same kind, so the sentinels below work
// with errors.Is regardless of the message.
func (e *ActionError) Is(target error) bool {
	t, ok := target.(*ActionError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidPieceColor      = &ActionError{Kind: KindInvalidPieceColor, Message: "select one of your own pieces"}
	ErrNoLegalMoves           = &ActionError{Kind: KindNoLegalMoves, Message: "that piece has no legal moves"}
	ErrMustUseCapturingPiece  = &ActionError{Kind: KindMustUseCapturingPiece, Message: "a skip is available, you must skip"}
	ErrIllegalDestination     = &ActionError{Kind: KindIllegalDestination, Message: "cannot move there"}
	ErrMustFinishJumpSequence = &ActionError{Kind: KindMustFinishJumpSequence, Message: "you must finish the jump sequence"}
	ErrGameAlreadyOver        = &ActionError{Kind: KindGameAlreadyOver, Message: "game is over"}
)

type ResultKind int

const (
	ResultRejected ResultKind = iota
	ResultSelected
	ResultDeselected
	ResultMoved // capture applied, the same piece must keep jumping
	ResultTurnEnded
	ResultGameOver
)

func (k ResultKind) String() string {
	switch k {
	case ResultRejected:
		return "rejected"
	case ResultSelected:
		return "selected"
	case ResultDeselected:
		return "deselected"
	case ResultMoved:
		return "moved"
	case ResultTurnEnded:
		return "turn_ended"
	case ResultGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Move describes one applied step. A multi-jump produces one Move per capture.
type Move struct {
	Color    core.Color
	From     core.Position
	To       core.Position
	Capture  bool
	Captured core.Position // zero unless Capture
	Promoted bool
}

// ActionResult is the outcome of Game.Submit
type ActionResult struct {
	Kind      ResultKind
	Position  core.Position // selected square, or landing square for Moved
	Move      *Move         // set for Moved, TurnEnded and GameOver
	NextColor core.Color    // color to act next for Moved and TurnEnded
	Outcome   core.State    // set for GameOver
	Err       *ActionError  // set for Rejected
}

func (r ActionResult) Rejected() bool {
	return r.Kind == ResultRejected
}

func rejected(err *ActionError) ActionResult {
	return ActionResult{Kind: ResultRejected, Err: err}
}

func rejectedf(base *ActionError, message string) ActionResult {
	return rejected(&ActionError{Kind: base.Kind, Message: message})
}
