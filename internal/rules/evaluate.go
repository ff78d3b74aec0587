package rules

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// Evaluate decides whether the game is over once a turn has completed and
// next is the color about to move.
//
// A color without pieces loses. When next has no legal destinations the game
// ends: next loses if the opponent can still move, otherwise the move counts
// are tied and the side with fewer pieces, then fewer kings, loses. Equal
// material is a tie.
func Evaluate(b *board.Board, next core.Color) core.State {
	blackPieces, blackKings := b.Count(core.ColorBlack)
	redPieces, redKings := b.Count(core.ColorRed)

	switch {
	case blackPieces == 0 && redPieces == 0:
		return core.StateTie
	case blackPieces == 0:
		return core.StateRedWins
	case redPieces == 0:
		return core.StateBlackWins
	}

	if CountMoves(b, next) > 0 {
		return core.StateOngoing
	}
	if CountMoves(b, next.Opponent()) > 0 {
		return core.WinState(next.Opponent())
	}

	switch {
	case blackPieces < redPieces:
		return core.StateRedWins
	case redPieces < blackPieces:
		return core.StateBlackWins
	case blackKings < redKings:
		return core.StateRedWins
	case redKings < blackKings:
		return core.StateBlackWins
	default:
		return core.StateTie
	}
}
