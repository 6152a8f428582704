// Package standings keeps a contest leaderboard snapshot fresh by
// periodic refresh.
package standings

import (
	"context"
	"sync"
	"time"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/pkg/logs"
	"github.com/arenacode/arenactl/internal/pkg/poll"
)

// DefaultInterval contains delay between leaderboard refreshes.
const DefaultInterval = 20 * time.Second

type Option func(*Watcher)

func WithInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		w.interval = interval
	}
}

func WithLogger(logger *logs.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// Watcher refreshes the leaderboard of a single contest.
//
// A failed refresh is logged and swallowed: the previous snapshot
// stays until the next tick succeeds. Every request carries a
// monotonically increasing generation and a response is applied only
// if its generation is above the highest applied so far, so a slow
// stale response can never overwrite a newer snapshot.
type Watcher struct {
	client    *api.Client
	contestID int64
	interval  time.Duration
	logger    *logs.Logger
	snapshots chan api.Leaderboard
	task      *poll.Task
	waiter    sync.WaitGroup

	mutex   sync.Mutex
	started int64
	applied int64
}

// Watch starts watching a contest leaderboard. The first fetch is
// issued immediately, then one per interval, until Stop.
func Watch(client *api.Client, contestID int64, options ...Option) *Watcher {
	w := Watcher{
		client:    client,
		contestID: contestID,
		interval:  DefaultInterval,
		logger:    logs.NewLogger(),
		snapshots: make(chan api.Leaderboard, 1),
	}
	for _, option := range options {
		option(&w)
	}
	w.task = poll.Start(w.poll, poll.Options{
		Interval:  w.interval,
		Immediate: true,
	})
	go func() {
		<-w.task.Done()
		w.waiter.Wait()
		close(w.snapshots)
	}()
	return &w
}

// Snapshots returns the snapshot stream. Only the freshest snapshot
// is retained when the consumer falls behind. The channel is closed
// after Stop.
func (w *Watcher) Snapshots() <-chan api.Leaderboard {
	return w.snapshots
}

// ContestID returns id of the watched contest.
func (w *Watcher) ContestID() int64 {
	return w.contestID
}

// Stop cancels watching and waits for in-flight requests to be
// discarded. No snapshot is emitted after Stop returns.
func (w *Watcher) Stop() {
	w.task.Stop()
	w.waiter.Wait()
}

// poll launches the fetch in its own goroutine so a slow response
// cannot delay the next tick.
func (w *Watcher) poll(ctx context.Context) bool {
	w.mutex.Lock()
	w.started++
	seq := w.started
	w.mutex.Unlock()
	w.waiter.Add(1)
	go w.fetch(ctx, seq)
	return false
}

func (w *Watcher) fetch(ctx context.Context, seq int64) {
	defer w.waiter.Done()
	leaderboard, err := w.client.ObserveContestLeaderboard(ctx, w.contestID)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		w.logger.Warn("leaderboard refresh failed",
			err, logs.Any("contest", w.contestID))
		return
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if seq <= w.applied {
		return
	}
	w.applied = seq
	w.publish(leaderboard)
}

// publish replaces an unread snapshot instead of blocking, keeping
// last write wins semantics for slow consumers.
func (w *Watcher) publish(leaderboard api.Leaderboard) {
	for {
		select {
		case w.snapshots <- leaderboard:
			return
		default:
		}
		select {
		case <-w.snapshots:
		default:
		}
	}
}

// Manager keeps at most one active watcher at a time.
type Manager struct {
	client  *api.Client
	options []Option
	mutex   sync.Mutex
	watcher *Watcher
}

func NewManager(client *api.Client, options ...Option) *Manager {
	return &Manager{
		client:  client,
		options: options,
	}
}

// Watch switches the manager to a contest. The previous watcher, if
// any, is stopped before the new one starts, including restarts for
// the same contest id.
func (m *Manager) Watch(contestID int64) *Watcher {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.watcher = Watch(m.client, contestID, m.options...)
	return m.watcher
}

// Stop cancels the active watcher, if any.
func (m *Manager) Stop() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}
