// Package poll implements a fixed-interval polling task with
// cooperative cancellation.
package poll

import (
	"context"
	"sync"
	"time"
)

// Func performs a single poll. Returning true finishes the task.
// The context is cancelled when the task is stopped, which also
// aborts any request in flight inside fn.
type Func func(ctx context.Context) bool

// Options configures a polling task.
type Options struct {
	// Interval contains delay between polls.
	Interval time.Duration
	// Immediate runs the first poll right away instead of waiting
	// for the first tick.
	Immediate bool
}

// Task is a running polling loop.
type Task struct {
	cancel context.CancelFunc
	waiter sync.WaitGroup
	done   chan struct{}
	stop   sync.Once
}

// Start launches a polling loop in its own goroutine.
func Start(fn Func, opts Options) *Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	t.waiter.Add(1)
	go t.loop(ctx, fn, opts)
	return &t
}

func (t *Task) loop(ctx context.Context, fn Func, opts Options) {
	defer t.waiter.Done()
	defer close(t.done)
	defer t.cancel()
	if opts.Immediate {
		if fn(ctx) {
			return
		}
	}
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if fn(ctx) {
				return
			}
		}
	}
}

// Stop cancels the task and waits for the loop to exit. After Stop
// returns fn is guaranteed not to run again.
func (t *Task) Stop() {
	t.stop.Do(t.cancel)
	t.waiter.Wait()
}

// Done returns a channel that is closed when the loop has exited,
// either by Stop or by fn reporting completion.
func (t *Task) Done() <-chan struct{} {
	return t.done
}
