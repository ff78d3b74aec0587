package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"checkers/internal/game"

	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// Service holds the live games in memory. Every access to a *game.Game goes
// through the service lock, so callers only ever see snapshots.
type Service struct {
	games  map[string]*game.Game
	mu     sync.RWMutex
	waiter *WaitRegistry
}

// New creates a service whose long-poll waiters give up after waitTimeout
func New(waitTimeout time.Duration) *Service {
	return &Service{
		games:  make(map[string]*game.Game),
		waiter: NewWaitRegistry(waitTimeout),
	}
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GameCount returns the number of games held in memory
func (s *Service) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// WaitForChange returns a channel that is closed once the game moves past
// version, the game is deleted, the wait times out or ctx ends. A version
// that is already stale yields a closed channel.
func (s *Service) WaitForChange(ctx context.Context, gameID string, version int) (<-chan struct{}, error) {
	// Registration happens under the read lock so a concurrent Submit
	// cannot slip between the version check and the registration.
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	if g.Version() != version {
		done := make(chan struct{})
		close(done)
		return done, nil
	}
	return s.waiter.RegisterWait(ctx, gameID, version), nil
}

// Shutdown releases all waiters and drops the games
func (s *Service) Shutdown(timeout time.Duration) error {
	var errs []error

	if err := s.waiter.Shutdown(timeout); err != nil {
		errs = append(errs, fmt.Errorf("wait registry: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = make(map[string]*game.Game)

	return errors.Join(errs...)
}
