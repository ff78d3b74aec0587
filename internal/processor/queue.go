package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrQueueFull     = errors.New("command queue is full")
	ErrQueueShutdown = errors.New("command queue is shutting down")
)

const defaultQueueBuffer = 100

// commandTask pairs a command with the channel its response goes to
type commandTask struct {
	cmd      Command
	response chan ProcessorResponse
}

// CommandQueue runs commands one at a time on a single worker goroutine, so
// each game sees a strictly ordered stream of actions.
type CommandQueue struct {
	exec   func(Command) ProcessorResponse
	tasks  chan commandTask
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewCommandQueue creates a queue executing on p and starts its worker
func NewCommandQueue(p *Processor, buffer int) *CommandQueue {
	return newCommandQueue(p.Execute, buffer)
}

func newCommandQueue(exec func(Command) ProcessorResponse, buffer int) *CommandQueue {
	if buffer < 1 {
		buffer = defaultQueueBuffer
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &CommandQueue{
		exec:   exec,
		tasks:  make(chan commandTask, buffer),
		ctx:    ctx,
		cancel: cancel,
	}

	// Start the single worker
	q.wg.Add(1)
	go q.worker()
	return q
}

func (q *CommandQueue) worker() {
	defer q.wg.Done()

	for {
		select {
		case task := <-q.tasks:
			q.run(task)
		case <-q.ctx.Done():
			q.drain()
			return
		}
	}
}

// drain executes whatever was queued before shutdown closed the queue
func (q *CommandQueue) drain() {
	for {
		select {
		case task := <-q.tasks:
			q.run(task)
		default:
			return
		}
	}
}

func (q *CommandQueue) run(task commandTask) {
	// Response channels are buffered, the sender never blocks
	task.response <- q.exec(task.cmd)
}

// Submit enqueues cmd and waits for the worker's response. A command that
// was accepted is always executed, even when Shutdown starts meanwhile.
func (q *CommandQueue) Submit(ctx context.Context, cmd Command) (ProcessorResponse, error) {
	task := commandTask{
		cmd:      cmd,
		response: make(chan ProcessorResponse, 1),
	}

	// Enqueue under the read lock so Shutdown cannot slip in between
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ProcessorResponse{}, ErrQueueShutdown
	}
	select {
	case q.tasks <- task:
	default:
		q.mu.RUnlock()
		return ProcessorResponse{}, ErrQueueFull
	}
	q.mu.RUnlock()

	select {
	case resp := <-task.response:
		return resp, nil
	case <-ctx.Done():
		return ProcessorResponse{}, fmt.Errorf("waiting for %s command: %w", cmd.Type, ctx.Err())
	}
}

// Shutdown refuses new commands, then waits for the worker to finish the
// queued ones.
func (q *CommandQueue) Shutdown(timeout time.Duration) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	// Worker drains the buffer once cancelled
	q.cancel()

	// Wait for the worker with timeout
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("command queue shutdown timed out after %v", timeout)
	}
}
