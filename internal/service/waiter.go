package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultWaitTimeout is the longest a client may wait for a change
const DefaultWaitTimeout = 25 * time.Second

// WaitRegistry manages long-polling clients waiting for game state changes
type WaitRegistry struct {
	mu       sync.Mutex
	waiters  map[string][]*WaitRequest // gameID → waiting clients
	timeout  time.Duration
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

// WaitRequest represents a single client waiting for game updates
type WaitRequest struct {
	GameID  string
	Version int           // last version seen by the client
	Done    chan struct{} // closed exactly once on wake-up
	once    sync.Once
	timer   *time.Timer
}

func (r *WaitRequest) wake() {
	r.once.Do(func() {
		close(r.Done)
	})
}

// NewWaitRegistry creates a wait registry, falling back to
// DefaultWaitTimeout for non-positive timeouts.
func NewWaitRegistry(timeout time.Duration) *WaitRegistry {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	return &WaitRegistry{
		waiters:  make(map[string][]*WaitRequest),
		timeout:  timeout,
		shutdown: make(chan struct{}),
	}
}

// RegisterWait registers a client to wait for game state changes
func (w *WaitRegistry) RegisterWait(ctx context.Context, gameID string, version int) <-chan struct{} {
	req := &WaitRequest{
		GameID:  gameID,
		Version: version,
		Done:    make(chan struct{}),
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Registry already shut down, release immediately
	if w.closed {
		req.wake()
		return req.Done
	}

	// Setup timeout timer
	req.timer = time.AfterFunc(w.timeout, req.wake)
	w.waiters[gameID] = append(w.waiters[gameID], req)

	// Watch for cancellation, wake-up or shutdown
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		select {
		case <-ctx.Done():
			req.wake()
		case <-req.Done:
		case <-w.shutdown:
			req.wake()
		}
		// Cleanup
		req.timer.Stop()
		w.removeWaiter(gameID, req)
	}()

	return req.Done
}

// NotifyGame wakes every client on gameID whose version is behind
func (w *WaitRegistry) NotifyGame(gameID string, version int) {
	// Copy the list, wake-ups happen outside the lock
	w.mu.Lock()
	waitList := append([]*WaitRequest(nil), w.waiters[gameID]...)
	w.mu.Unlock()

	for _, req := range waitList {
		if req.Version != version {
			req.wake()
		}
	}
}

// RemoveGame wakes all waiters of a deleted game
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	delete(w.waiters, gameID)
	w.mu.Unlock()

	for _, req := range waitList {
		req.wake()
	}
}

// Pending returns the number of registered waiters for gameID
func (w *WaitRegistry) Pending(gameID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.waiters[gameID])
}

// Shutdown wakes all waiters and waits for their goroutines
func (w *WaitRegistry) Shutdown(timeout time.Duration) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	w.mu.Unlock()

	// Wait for watcher goroutines with timeout
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("wait registry shutdown timed out after %v", timeout)
	}
}

func (w *WaitRegistry) removeWaiter(gameID string, req *WaitRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()

	waitList := w.waiters[gameID]
	for i, waiter := range waitList {
		if waiter == req {
			w.waiters[gameID] = append(waitList[:i], waitList[i+1:]...)
			break
		}
	}

	if len(w.waiters[gameID]) == 0 {
		delete(w.waiters, gameID)
	}
}
