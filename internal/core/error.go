package core

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInvalidLayout     = "INVALID_LAYOUT"
	ErrInternalError     = "INTERNAL_ERROR"
	ErrQueueUnavailable  = "QUEUE_UNAVAILABLE"

	// Rule rejections returned by the turn controller
	ErrInvalidPieceColor      = "INVALID_PIECE_COLOR"
	ErrNoLegalMoves           = "NO_LEGAL_MOVES"
	ErrMustUseCapturingPiece  = "MUST_USE_CAPTURING_PIECE"
	ErrIllegalDestination     = "ILLEGAL_DESTINATION"
	ErrMustFinishJumpSequence = "MUST_FINISH_JUMP_SEQUENCE"
	ErrGameAlreadyOver        = "GAME_ALREADY_OVER"
)

// IsRuleError reports whether code is one of the turn controller rejections
func IsRuleError(code string) bool {
	switch code {
	case ErrInvalidPieceColor, ErrNoLegalMoves, ErrMustUseCapturingPiece,
		ErrIllegalDestination, ErrMustFinishJumpSequence, ErrGameAlreadyOver:
		return true
	}
	return false
}
