package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/game"
	"checkers/internal/service"
)

// Processor executes commands against the service. Execute is safe to call
// directly; Submit serializes commands through the queue.
type Processor struct {
	svc   *service.Service
	queue *CommandQueue
}

// New creates a processor and starts its command queue
func New(svc *service.Service, queueBuffer int) *Processor {
	p := &Processor{svc: svc}
	p.queue = NewCommandQueue(p, queueBuffer)
	return p
}

// Submit queues cmd and waits for its response or ctx
func (p *Processor) Submit(ctx context.Context, cmd Command) ProcessorResponse {
	resp, err := p.queue.Submit(ctx, cmd)
	if err != nil {
		return p.errorResponse(err.Error(), core.ErrQueueUnavailable)
	}
	return resp
}

func (p *Processor) Execute(cmd Command) ProcessorResponse {
	switch cmd.Type {
	case CmdCreateGame:
		return p.handleCreateGame(cmd)
	case CmdGetGame:
		return p.handleGetGame(cmd)
	case CmdSubmitAction:
		return p.handleSubmitAction(cmd)
	case CmdGetBoard:
		return p.handleGetBoard(cmd)
	case CmdDeleteGame:
		return p.handleDeleteGame(cmd)
	default:
		return p.errorResponse("unknown command", core.ErrInvalidRequest)
	}
}

func (p *Processor) handleCreateGame(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.CreateGameRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	b := board.New()
	first := core.ColorBlack
	if args.Layout != "" {
		parsed, side, err := board.ParseLayout(args.Layout)
		if err != nil {
			return p.errorResponse(err.Error(), core.ErrInvalidLayout)
		}
		b = parsed
		if side != core.ColorNone {
			first = side
		}
	}
	if args.FirstColor != "" {
		c, err := core.ParseColor(args.FirstColor)
		if err != nil {
			return p.errorResponse(err.Error(), core.ErrInvalidRequest)
		}
		first = c
	}

	gameID := p.svc.GenerateGameID()
	g := game.NewFromBoard(b, first)
	if err := p.svc.CreateGame(gameID, g); err != nil {
		return p.errorResponse(fmt.Sprintf("failed to create game: %v", err), core.ErrInternalError)
	}

	snap := g.Snapshot()
	if snap.Turn.GameOver {
		log.Printf("Game %s created already decided: %s", gameID, snap.Turn.Outcome)
	}

	return ProcessorResponse{
		Success: true,
		Data:    BuildGameResponse(gameID, snap),
	}
}

func (p *Processor) handleGetGame(cmd Command) ProcessorResponse {
	snap, err := p.svc.Snapshot(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data:    BuildGameResponse(cmd.GameID, snap),
	}
}

func (p *Processor) handleSubmitAction(cmd Command) ProcessorResponse {
	args, ok := cmd.Args.(core.ActionRequest)
	if !ok {
		return p.errorResponse("invalid arguments", core.ErrInvalidRequest)
	}

	result, snap, err := p.svc.Submit(cmd.GameID, core.Position(args.Position))
	if err != nil {
		return p.serviceError(err)
	}
	if result.Rejected() {
		return p.errorResponse(result.Err.Message, string(result.Err.Kind))
	}

	if result.Kind == game.ResultGameOver {
		log.Printf("Game %s finished: %s", cmd.GameID, result.Outcome)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.ActionResponse{
			Result: buildActionInfo(result),
			Game:   BuildGameResponse(cmd.GameID, snap),
		},
	}
}

func (p *Processor) handleGetBoard(cmd Command) ProcessorResponse {
	snap, err := p.svc.Snapshot(cmd.GameID)
	if err != nil {
		return p.serviceError(err)
	}

	return ProcessorResponse{
		Success: true,
		Data: core.BoardResponse{
			Layout: snap.Board.String(),
			Board:  snap.Board.ToASCII(),
		},
	}
}

func (p *Processor) handleDeleteGame(cmd Command) ProcessorResponse {
	if err := p.svc.DeleteGame(cmd.GameID); err != nil {
		return p.serviceError(err)
	}
	return ProcessorResponse{Success: true}
}

// BuildGameResponse converts a snapshot to its API form
func BuildGameResponse(gameID string, snap game.Snapshot) core.GameResponse {
	turn := snap.Turn
	black, blackKings := snap.Board.Count(core.ColorBlack)
	red, redKings := snap.Board.Count(core.ColorRed)

	resp := core.GameResponse{
		GameID:           gameID,
		Layout:           snap.Board.String(),
		Turn:             turn.CurrentColor.String(),
		State:            turn.Outcome.String(),
		Selected:         int(turn.Selected),
		SelectionValid:   turn.SelectionValid,
		MandatoryCapture: turn.MandatoryCaptureAvailable,
		MustContinueFrom: int(turn.MustContinueJumpFrom),
		GameOver:         turn.GameOver,
		TurnNumber:       turn.TurnNumber,
		Version:          snap.Version,
		Pieces: core.PieceCounts{
			Black:      black,
			BlackKings: blackKings,
			Red:        red,
			RedKings:   redKings,
		},
		LastMove: buildMoveInfo(snap.LastMove),
	}

	for _, d := range snap.Destinations {
		resp.Destinations = append(resp.Destinations, int(d))
	}
	return resp
}

func buildActionInfo(r game.ActionResult) core.ActionInfo {
	info := core.ActionInfo{
		Kind:     r.Kind.String(),
		Position: int(r.Position),
		Move:     buildMoveInfo(r.Move),
	}
	if r.NextColor != core.ColorNone {
		info.NextColor = r.NextColor.String()
	}
	if r.Kind == game.ResultGameOver {
		info.Outcome = r.Outcome.String()
	}
	return info
}

func buildMoveInfo(m *game.Move) *core.MoveInfo {
	if m == nil {
		return nil
	}
	return &core.MoveInfo{
		Color:    m.Color.String(),
		From:     int(m.From),
		To:       int(m.To),
		Capture:  m.Capture,
		Captured: int(m.Captured),
		Promoted: m.Promoted,
	}
}

func (p *Processor) serviceError(err error) ProcessorResponse {
	if errors.Is(err, service.ErrGameNotFound) {
		return p.errorResponse("game not found", core.ErrGameNotFound)
	}
	return p.errorResponse(err.Error(), core.ErrInternalError)
}

// errorResponse creates error response
func (p *Processor) errorResponse(message, code string) ProcessorResponse {
	return ProcessorResponse{
		Success: false,
		Error: &core.ErrorResponse{
			Error: message,
			Code:  code,
		},
	}
}

// Close stops the command queue
func (p *Processor) Close(timeout time.Duration) error {
	return p.queue.Shutdown(timeout)
}
