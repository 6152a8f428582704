package api

import (
	"context"
	"net/http"
)

// Difficulty represents problem difficulty.
type Difficulty string

const (
	EasyProblem   Difficulty = "EASY"
	MediumProblem Difficulty = "MEDIUM"
	HardProblem   Difficulty = "HARD"
)

// Problem represents problem.
type Problem struct {
	// ID contains problem ID.
	ID int64 `json:"id"`
	// ContestID contains ID of contest that owns the problem.
	ContestID int64 `json:"contestId,omitempty"`
	// Title contains problem title.
	Title string `json:"title"`
	// Description contains problem statement.
	Description string `json:"description,omitempty"`
	// Difficulty contains problem difficulty.
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

func (c *Client) ObserveProblem(ctx context.Context, id int64) (Problem, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/problems/%d", id), nil,
	)
	if err != nil {
		return Problem{}, err
	}
	var respData Problem
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}

func (c *Client) ObserveContestProblems(
	ctx context.Context, contestID int64,
) ([]Problem, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/problems/contest/%d", contestID), nil,
	)
	if err != nil {
		return nil, err
	}
	var respData []Problem
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}
