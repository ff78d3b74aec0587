package service

import (
	"fmt"

	"checkers/internal/core"
	"checkers/internal/game"
)

// CreateGame registers a game under id
func (s *Service) CreateGame(id string, g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}
	s.games[id] = g
	return nil
}

// Snapshot returns the current view of a game
func (s *Service) Snapshot(gameID string) (game.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g.Snapshot(), nil
}

// Submit forwards a click to the game's turn controller and wakes long-poll
// clients when the action was accepted.
func (s *Service) Submit(gameID string, pos core.Position) (game.ActionResult, game.Snapshot, error) {
	s.mu.Lock()
	g, ok := s.games[gameID]
	if !ok {
		s.mu.Unlock()
		return game.ActionResult{}, game.Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	result := g.Submit(pos)
	snap := g.Snapshot()
	s.mu.Unlock()

	if !result.Rejected() {
		s.waiter.NotifyGame(gameID, snap.Version)
	}
	return result, snap, nil
}

// DeleteGame removes a game and releases its waiters
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	if _, ok := s.games[gameID]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(s.games, gameID)
	s.mu.Unlock()

	s.waiter.RemoveGame(gameID)
	return nil
}
