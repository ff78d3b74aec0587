// Package local runs the game service in-process for hotseat play, exposing
// the same calls as the HTTP client.
package local

import (
	"context"
	"errors"
	"time"

	"checkers/internal/client/api"
	"checkers/internal/core"
	"checkers/internal/processor"
	"checkers/internal/service"
)

type Backend struct {
	svc  *service.Service
	proc *processor.Processor
}

func New() *Backend {
	svc := service.New(service.DefaultWaitTimeout)
	return &Backend{
		svc:  svc,
		proc: processor.New(svc, 0),
	}
}

func (b *Backend) Close() error {
	return errors.Join(
		b.proc.Close(time.Second),
		b.svc.Shutdown(time.Second),
	)
}

func (b *Backend) do(cmd processor.Command) (any, error) {
	resp := b.proc.Submit(context.Background(), cmd)
	if !resp.Success {
		return nil, &api.Error{ErrorResponse: *resp.Error}
	}
	return resp.Data, nil
}

func (b *Backend) CreateGame(req core.CreateGameRequest) (*core.GameResponse, error) {
	data, err := b.do(processor.NewCreateGameCommand(req))
	if err != nil {
		return nil, err
	}
	g := data.(core.GameResponse)
	return &g, nil
}

func (b *Backend) GetGame(gameID string) (*core.GameResponse, error) {
	data, err := b.do(processor.NewGetGameCommand(gameID))
	if err != nil {
		return nil, err
	}
	g := data.(core.GameResponse)
	return &g, nil
}

// WaitGame blocks until the game moves past version or the wait times out
func (b *Backend) WaitGame(gameID string, version int) (*core.GameResponse, error) {
	ch, err := b.svc.WaitForChange(context.Background(), gameID, version)
	if err != nil {
		return nil, &api.Error{ErrorResponse: core.ErrorResponse{Error: "game not found", Code: core.ErrGameNotFound}}
	}
	<-ch
	return b.GetGame(gameID)
}

func (b *Backend) SubmitAction(gameID string, position int) (*core.ActionResponse, error) {
	data, err := b.do(processor.NewSubmitActionCommand(gameID, core.ActionRequest{Position: position}))
	if err != nil {
		return nil, err
	}
	a := data.(core.ActionResponse)
	return &a, nil
}

func (b *Backend) GetBoard(gameID string) (*core.BoardResponse, error) {
	data, err := b.do(processor.NewGetBoardCommand(gameID))
	if err != nil {
		return nil, err
	}
	br := data.(core.BoardResponse)
	return &br, nil
}

func (b *Backend) DeleteGame(gameID string) error {
	_, err := b.do(processor.NewDeleteGameCommand(gameID))
	return err
}
