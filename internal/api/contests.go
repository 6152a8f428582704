package api

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Contest represents contest.
type Contest struct {
	// ID contains contest ID.
	ID int64 `json:"id"`
	// Title contains contest title.
	Title string `json:"title"`
	// Description contains contest description.
	Description string `json:"description,omitempty"`
	// StartTime contains time when contest opens.
	StartTime time.Time `json:"startTime"`
	// EndTime contains time when contest closes.
	EndTime time.Time `json:"endTime"`
}

// IsActive reports whether now is inside the contest time window.
func (c Contest) IsActive(now time.Time) bool {
	return !now.Before(c.StartTime) && !now.After(c.EndTime)
}

// LeaderboardEntry represents a single leaderboard row.
//
// Rank and tie-breaking are assigned by the backend, entries arrive
// already ordered.
type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         int64  `json:"userId"`
	UserName       string `json:"userName"`
	ProblemsSolved int    `json:"problemsSolved"`
	// TimeToFirstAC contains seconds to first accepted solution.
	// Zero or NoSolveTime means there is no accepted solution yet.
	TimeToFirstAC int64 `json:"timeToFirstAC"`
}

// NoSolveTime is the wire sentinel the backend sends for participants
// without an accepted solution.
const NoSolveTime int64 = math.MaxInt64

// HasSolve reports whether the participant has an accepted solution.
func (e LeaderboardEntry) HasSolve() bool {
	return e.TimeToFirstAC > 0 && e.TimeToFirstAC != NoSolveTime
}

// Leaderboard represents an ordered leaderboard snapshot.
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// FormatSolveTime renders time to first accepted solution.
func FormatSolveTime(seconds int64) string {
	if seconds <= 0 || seconds == NoSolveTime {
		return "-"
	}
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

func (c *Client) ObserveContests(ctx context.Context) ([]Contest, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/contests"), nil,
	)
	if err != nil {
		return nil, err
	}
	var respData []Contest
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}

func (c *Client) ObserveActiveContests(ctx context.Context) ([]Contest, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/contests/active"), nil,
	)
	if err != nil {
		return nil, err
	}
	var respData []Contest
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}

func (c *Client) ObserveContest(ctx context.Context, id int64) (Contest, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/contests/%d", id), nil,
	)
	if err != nil {
		return Contest{}, err
	}
	var respData Contest
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}

func (c *Client) ObserveContestLeaderboard(
	ctx context.Context, id int64,
) (Leaderboard, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/contests/%d/leaderboard", id), nil,
	)
	if err != nil {
		return Leaderboard{}, err
	}
	var respData Leaderboard
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}
