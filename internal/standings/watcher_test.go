package standings_test

import (
	"testing"
	"time"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/api/arenatest"
	"github.com/arenacode/arenactl/internal/standings"
)

const testInterval = 50 * time.Millisecond

func entries(n int) []api.LeaderboardEntry {
	result := make([]api.LeaderboardEntry, n)
	for i := range result {
		result[i] = api.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   int64(i + 1),
			UserName: "user",
		}
	}
	return result
}

func receive(t testing.TB, w *standings.Watcher) api.Leaderboard {
	t.Helper()
	select {
	case leaderboard, ok := <-w.Snapshots():
		if !ok {
			t.Fatal("Snapshots closed")
		}
		return leaderboard
	case <-time.After(5 * time.Second):
		t.Fatal("No snapshot received")
	}
	return api.Leaderboard{}
}

func TestWatchRefresh(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	s.PushLeaderboard(1, api.Leaderboard{Entries: entries(3)})
	s.PushLeaderboardError(1)
	s.PushLeaderboard(1, api.Leaderboard{Entries: entries(4)})
	c := api.NewClient(s.URL())
	w := standings.Watch(c, 1, standings.WithInterval(testInterval))
	defer w.Stop()
	if got := receive(t, w); len(got.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got.Entries))
	}
	// The failed refresh produces no snapshot: the next one observed
	// must be the 4 entry result.
	if got := receive(t, w); len(got.Entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(got.Entries))
	}
}

func TestWatchStaleResponseDiscarded(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	gate := make(chan struct{})
	// The first initiated request completes after the second one.
	s.PushLeaderboardGated(1, api.Leaderboard{Entries: entries(1)}, gate)
	s.PushLeaderboard(1, api.Leaderboard{Entries: entries(2)})
	c := api.NewClient(s.URL())
	w := standings.Watch(c, 1, standings.WithInterval(testInterval))
	defer w.Stop()
	if got := receive(t, w); len(got.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got.Entries))
	}
	close(gate)
	time.Sleep(5 * testInterval)
	// Any snapshot observed from now on must still be the newer one:
	// the stale single entry response must have been discarded.
	select {
	case leaderboard, ok := <-w.Snapshots():
		if ok && len(leaderboard.Entries) != 2 {
			t.Fatalf("Stale snapshot applied: %d entries", len(leaderboard.Entries))
		}
	default:
	}
}

func TestWatcherStop(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	s.PushLeaderboard(1, api.Leaderboard{Entries: entries(3)})
	c := api.NewClient(s.URL())
	w := standings.Watch(c, 1, standings.WithInterval(testInterval))
	receive(t, w)
	w.Stop()
	for leaderboard := range w.Snapshots() {
		_ = leaderboard
	}
	// Snapshots is closed and no fetches remain in flight.
}

func TestManagerSwitchContest(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	s.PushLeaderboard(1, api.Leaderboard{Entries: entries(1)})
	s.PushLeaderboard(2, api.Leaderboard{Entries: entries(2)})
	c := api.NewClient(s.URL())
	m := standings.NewManager(c, standings.WithInterval(testInterval))
	defer m.Stop()
	first := m.Watch(1)
	if got := receive(t, first); len(got.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(got.Entries))
	}
	second := m.Watch(2)
	if first.ContestID() == second.ContestID() {
		t.Fatal("Expected a watcher for the new contest")
	}
	select {
	case <-time.After(time.Second):
		t.Fatal("Switching contests did not stop the old watcher")
	case _, ok := <-first.Snapshots():
		if ok {
			// Drain a buffered snapshot, the channel must close next.
			if _, ok := <-first.Snapshots(); ok {
				t.Fatal("Old watcher still emits snapshots")
			}
		}
	}
	if got := receive(t, second); len(got.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got.Entries))
	}
}
