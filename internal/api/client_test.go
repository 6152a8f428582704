package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/nsf/jsondiff"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/api/arenatest"
)

func TestAuthScenario(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	c := api.NewClient(s.URL())
	user, err := c.Signup(context.Background(), api.SignupForm{
		Name:  "test",
		Email: "test@example.com",
	})
	if err != nil {
		t.Fatal("Error:", err)
	}
	if user.UserID == 0 {
		t.Fatal("Expected assigned user ID")
	}
	logged, err := c.Login(context.Background(), api.LoginForm{
		UserID: user.UserID,
		Name:   user.Name,
	})
	if err != nil {
		t.Fatal("Error:", err)
	}
	if logged != user {
		t.Fatalf("Expected %v, got %v", user, logged)
	}
	_, err = c.Login(context.Background(), api.LoginForm{
		UserID: user.UserID,
		Name:   "impostor",
	})
	var backendErr *api.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("Expected backend error, got %v", err)
	}
	if backendErr.StatusCode() != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", backendErr.StatusCode())
	}
	if backendErr.Message != "Invalid user ID or name" {
		t.Fatalf("Unexpected message %q", backendErr.Message)
	}
}

func TestSubmitScenario(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	c := api.NewClient(s.URL())
	submission, err := c.SubmitSolution(context.Background(), api.SubmitForm{
		UserID:    1,
		ProblemID: 2,
		ContestID: 3,
		Code:      "print(42)",
		Language:  api.Python,
	})
	if err != nil {
		t.Fatal("Error:", err)
	}
	if submission.SubmissionID == "" {
		t.Fatal("Expected assigned submission id")
	}
	status, err := c.ObserveSubmissionStatus(
		context.Background(), submission.SubmissionID,
	)
	if err != nil {
		t.Fatal("Error:", err)
	}
	if status.Status != api.StatusPending {
		t.Fatalf("Expected PENDING, got %s", status.Status)
	}
	_, err = c.ObserveSubmissionStatus(context.Background(), "missing")
	var backendErr *api.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("Expected backend error, got %v", err)
	}
	if backendErr.StatusCode() != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", backendErr.StatusCode())
	}
}

func TestObserveContests(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	defer arenatest.SetNow(now)()
	s := arenatest.NewServer()
	defer s.Close()
	s.AddContest(api.Contest{
		ID:        1,
		Title:     "Running round",
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	s.AddContest(api.Contest{
		ID:        2,
		Title:     "Finished round",
		StartTime: now.Add(-3 * time.Hour),
		EndTime:   now.Add(-2 * time.Hour),
	})
	c := api.NewClient(s.URL())
	contests, err := c.ObserveContests(context.Background())
	if err != nil {
		t.Fatal("Error:", err)
	}
	if len(contests) != 2 {
		t.Fatalf("Expected 2 contests, got %d", len(contests))
	}
	active, err := c.ObserveActiveContests(context.Background())
	if err != nil {
		t.Fatal("Error:", err)
	}
	if len(active) != 1 || active[0].ID != 1 {
		t.Fatalf("Expected only the running contest, got %v", active)
	}
}

func TestObserveContestLeaderboard(t *testing.T) {
	s := arenatest.NewServer()
	defer s.Close()
	s.PushLeaderboard(1, api.Leaderboard{Entries: []api.LeaderboardEntry{
		{Rank: 1, UserID: 10, UserName: "alice", ProblemsSolved: 3, TimeToFirstAC: 65},
		{Rank: 2, UserID: 11, UserName: "bob", ProblemsSolved: 1, TimeToFirstAC: 3661},
		{Rank: 3, UserID: 12, UserName: "carol", TimeToFirstAC: api.NoSolveTime},
	}})
	c := api.NewClient(s.URL())
	leaderboard, err := c.ObserveContestLeaderboard(context.Background(), 1)
	if err != nil {
		t.Fatal("Error:", err)
	}
	got, err := json.MarshalIndent(leaderboard, "", "  ")
	if err != nil {
		t.Fatal("Error:", err)
	}
	want, err := os.ReadFile("testdata/leaderboard.json")
	if err != nil {
		t.Fatal("Error:", err)
	}
	opts := jsondiff.DefaultConsoleOptions()
	if diff, desc := jsondiff.Compare(got, want, &opts); diff != jsondiff.FullMatch {
		t.Fatalf("Unexpected leaderboard: %s", desc)
	}
}

func TestTransportError(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	endpoint := s.URL
	s.Close()
	c := api.NewClient(endpoint)
	_, err := c.ObserveContests(context.Background())
	var transportErr *api.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected transport error, got %v", err)
	}
}

func TestDecodeError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		},
	))
	defer s.Close()
	c := api.NewClient(s.URL)
	_, err := c.ObserveContests(context.Background())
	var decodeErr *api.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected decode error, got %v", err)
	}
}

func TestFormatSolveTime(t *testing.T) {
	for _, test := range []struct {
		seconds int64
		result  string
	}{
		{0, "-"},
		{api.NoSolveTime, "-"},
		{42, "42s"},
		{65, "1m 5s"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
	} {
		if s := api.FormatSolveTime(test.seconds); s != test.result {
			t.Fatalf(
				"Expected %q for %d seconds, got %q",
				test.result, test.seconds, s,
			)
		}
	}
}
