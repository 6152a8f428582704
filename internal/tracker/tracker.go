// Package tracker drives a just-created submission from queued to a
// terminal verdict by polling the backend.
package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/pkg/logs"
	"github.com/arenacode/arenactl/internal/pkg/poll"
)

// DefaultInterval contains delay between status polls.
const DefaultInterval = 2 * time.Second

const queuedResult = "Submission queued..."

type Option func(*Tracker)

func WithInterval(interval time.Duration) Option {
	return func(t *Tracker) {
		t.interval = interval
	}
}

func WithLogger(logger *logs.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// Tracker polls status of a single submission.
type Tracker struct {
	client   *api.Client
	id       string
	interval time.Duration
	logger   *logs.Logger
	statuses chan api.SubmissionStatus
	task     *poll.Task
}

// Track starts tracking a submission.
//
// The first emitted snapshot is the synthetic queued status, produced
// locally before any network call. After that one status request is
// issued per interval until a terminal status arrives; exactly one
// terminal status is emitted and the channel is closed. Any request
// failure terminates tracking with a client-local ERROR status.
func Track(client *api.Client, id string, options ...Option) *Tracker {
	t := Tracker{
		client:   client,
		id:       id,
		interval: DefaultInterval,
		logger:   logs.NewLogger(),
		statuses: make(chan api.SubmissionStatus, 1),
	}
	for _, option := range options {
		option(&t)
	}
	t.statuses <- api.SubmissionStatus{
		Status: api.StatusPending,
		Result: queuedResult,
	}
	t.task = poll.Start(t.poll, poll.Options{Interval: t.interval})
	go func() {
		<-t.task.Done()
		close(t.statuses)
	}()
	return &t
}

// Statuses returns the status stream. The channel is closed after the
// terminal status or after Stop.
func (t *Tracker) Statuses() <-chan api.SubmissionStatus {
	return t.statuses
}

// Stop cancels tracking. The in-flight request context is cancelled
// and no status is emitted after Stop returns.
func (t *Tracker) Stop() {
	t.task.Stop()
}

// Done returns a channel that is closed when tracking has finished.
func (t *Tracker) Done() <-chan struct{} {
	return t.task.Done()
}

func (t *Tracker) poll(ctx context.Context) bool {
	status, err := t.client.ObserveSubmissionStatus(ctx, t.id)
	if ctx.Err() != nil {
		return true
	}
	if err != nil {
		t.logger.Warn("tracking failed",
			err, logs.Any("submission", t.id))
		status = api.SubmissionStatus{
			Status: api.StatusError,
			Result: "Failed to check submission status.",
		}
	}
	select {
	case t.statuses <- status:
	case <-ctx.Done():
		return true
	}
	return status.Status.IsTerminal()
}

// Manager enforces at most one active tracking loop per submission id.
type Manager struct {
	client  *api.Client
	options []Option
	mutex   sync.Mutex
	active  map[string]*Tracker
}

func NewManager(client *api.Client, options ...Option) *Manager {
	return &Manager{
		client:  client,
		options: options,
		active:  map[string]*Tracker{},
	}
}

// Start begins tracking a submission. A tracker already active for
// the same id is stopped first: restart replaces, never stacks.
func (m *Manager) Start(id string) *Tracker {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if old, ok := m.active[id]; ok {
		old.Stop()
	}
	t := Track(m.client, id, m.options...)
	m.active[id] = t
	return t
}

// Stop cancels tracking of a submission, if it is active.
func (m *Manager) Stop(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if t, ok := m.active[id]; ok {
		t.Stop()
		delete(m.active, id)
	}
}

// StopAll cancels all active trackers.
func (m *Manager) StopAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for id, t := range m.active {
		t.Stop()
		delete(m.active, id)
	}
}
