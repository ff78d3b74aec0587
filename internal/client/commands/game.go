package commands

import (
	"errors"
	"fmt"
	"strconv"

	"checkers/internal/client/api"
	"checkers/internal/client/display"
	"checkers/internal/core"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Create a new game",
		Usage:       "new [black|red] [layout]",
		Handler:     newGameHandler,
	})

	r.Register(&Command{
		Name:        "join",
		ShortName:   "j",
		Description: "Join/set current game ID",
		Usage:       "join <gameId>",
		Handler:     joinGameHandler,
	})

	r.Register(&Command{
		Name:        "click",
		ShortName:   "c",
		Description: "Click a square: select, deselect or move",
		Usage:       "click <position>",
		Handler:     clickHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "h",
		Description: "Show board and game state",
		Usage:       "show",
		Handler:     showBoardHandler,
	})

	r.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Show the server's ASCII board and layout string",
		Usage:       "board",
		Handler:     asciiBoardHandler,
	})

	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Show raw game JSON",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "poll",
		ShortName:   "p",
		Description: "Wait for the other player's click",
		Usage:       "poll",
		Handler:     pollHandler,
	})

	r.Register(&Command{
		Name:        "delete",
		ShortName:   "d",
		Description: "Delete a game",
		Usage:       "delete [gameId]",
		Handler:     deleteGameHandler,
	})
}

func newGameHandler(s *Session, args []string) error {
	var req core.CreateGameRequest
	for _, arg := range args {
		if c, err := core.ParseColor(arg); err == nil {
			req.FirstColor = c.String()
			continue
		}
		if req.Layout != "" {
			req.Layout += " "
		}
		req.Layout += arg
	}

	g, err := s.Backend.CreateGame(req)
	if err != nil {
		return err
	}

	s.GameID = g.GameID
	s.Game = g
	s.Display.Info("Game created: %s", g.GameID)
	s.Display.Board(g)
	return nil
}

func joinGameHandler(s *Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: join <gameId>")
	}

	g, err := s.Backend.GetGame(args[0])
	if err != nil {
		return err
	}

	s.GameID = g.GameID
	s.Game = g
	s.Display.Info("Joined game %s", g.GameID)
	s.Display.Board(g)
	return nil
}

func clickHandler(s *Session, args []string) error {
	gameID, err := s.requireGame()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: click <position>")
	}

	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < int(core.MinPosition) || pos > int(core.MaxPosition) {
		return fmt.Errorf("position must be a number from %d to %d", core.MinPosition, core.MaxPosition)
	}

	resp, err := s.Backend.SubmitAction(gameID, pos)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.IsRejection() {
			// Rejected clicks leave the game unchanged
			return fmt.Errorf("%s", apiErr.ErrorResponse.Error)
		}
		return err
	}

	s.Game = &resp.Game
	s.Display.Action(&resp.Result)
	s.Display.Board(s.Game)
	return nil
}

func showBoardHandler(s *Session, args []string) error {
	gameID, err := s.requireGame()
	if err != nil {
		return err
	}

	g, err := s.Backend.GetGame(gameID)
	if err != nil {
		return err
	}
	s.Game = g
	s.Display.Board(g)
	if g.LastMove != nil {
		s.Display.Info("Last move: %s", display.FormatMove(g.LastMove))
	}
	return nil
}

func asciiBoardHandler(s *Session, args []string) error {
	gameID, err := s.requireGame()
	if err != nil {
		return err
	}

	b, err := s.Backend.GetBoard(gameID)
	if err != nil {
		return err
	}
	s.Display.Text(b.Board)
	s.Display.Info("Layout: %s", b.Layout)
	return nil
}

func gameStateHandler(s *Session, args []string) error {
	gameID, err := s.requireGame()
	if err != nil {
		return err
	}

	g, err := s.Backend.GetGame(gameID)
	if err != nil {
		return err
	}
	s.Game = g
	s.Display.JSON(g)
	return nil
}

func pollHandler(s *Session, args []string) error {
	gameID, err := s.requireGame()
	if err != nil {
		return err
	}

	version := 0
	if s.Game != nil {
		version = s.Game.Version
	}
	s.Display.Info("Waiting for changes after version %d...", version)

	g, err := s.Backend.WaitGame(gameID, version)
	if err != nil {
		return err
	}
	if g.Version == version {
		s.Display.Info("No change yet")
		return nil
	}
	s.Game = g
	s.Display.Board(g)
	return nil
}

func deleteGameHandler(s *Session, args []string) error {
	gameID := s.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if gameID == "" {
		return fmt.Errorf("usage: delete [gameId]")
	}

	if err := s.Backend.DeleteGame(gameID); err != nil {
		return err
	}

	if gameID == s.GameID {
		s.GameID = ""
		s.Game = nil
	}
	s.Display.Info("Game %s deleted", gameID)
	return nil
}
