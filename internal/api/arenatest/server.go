// Package arenatest provides a scriptable fake Arena backend for
// package tests across the module.
package arenatest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/arenacode/arenactl/internal/api"
)

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

type leaderboardReply struct {
	leaderboard api.Leaderboard
	fail        bool
	gate        <-chan struct{}
}

// Server is a fake Arena backend.
//
// Responses are scripted: tests register contests, problems and
// per-submission status sequences, then point a real api.Client at
// URL(). All methods are safe for concurrent use.
type Server struct {
	server *httptest.Server

	mu           sync.Mutex
	users        map[int64]api.Session
	nextUserID   int64
	contests     map[int64]api.Contest
	problems     map[int64]api.Problem
	statuses     map[string][]api.SubmissionStatus
	requests     map[string]int
	nextSub      int64
	leaderboards map[int64][]leaderboardReply
	lastBoard    map[int64]api.Leaderboard
}

func NewServer() *Server {
	s := Server{
		users:        map[int64]api.Session{},
		contests:     map[int64]api.Contest{},
		problems:     map[int64]api.Problem{},
		statuses:     map[string][]api.SubmissionStatus{},
		requests:     map[string]int{},
		leaderboards: map[int64][]leaderboardReply{},
		lastBoard:    map[int64]api.Leaderboard{},
	}
	e := echo.New()
	e.HideBanner, e.HidePort = true, true
	e.POST("/auth/signup", s.signup)
	e.POST("/auth/login", s.login)
	e.GET("/contests", s.observeContests)
	e.GET("/contests/active", s.observeActiveContests)
	e.GET("/contests/:contest", s.observeContest)
	e.GET("/contests/:contest/leaderboard", s.observeLeaderboard)
	e.GET("/problems/:problem", s.observeProblem)
	e.GET("/problems/contest/:contest", s.observeContestProblems)
	e.POST("/submissions", s.createSubmission)
	e.GET("/submissions/:submission", s.observeSubmission)
	s.server = httptest.NewServer(e)
	return &s
}

// URL returns base endpoint of the fake backend.
func (s *Server) URL() string {
	return s.server.URL
}

func (s *Server) Close() {
	s.server.Close()
}

// AddUser registers a user that can log in.
func (s *Server) AddUser(user api.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
}

func (s *Server) AddContest(contest api.Contest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contests[contest.ID] = contest
}

func (s *Server) AddProblem(problem api.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems[problem.ID] = problem
}

// SetStatuses scripts successive status responses for a submission.
// The last status repeats once the sequence is exhausted.
func (s *Server) SetStatuses(id string, statuses ...api.SubmissionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[id] = statuses
}

// PushLeaderboard scripts the next leaderboard response for a contest.
func (s *Server) PushLeaderboard(contestID int64, leaderboard api.Leaderboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboards[contestID] = append(
		s.leaderboards[contestID], leaderboardReply{leaderboard: leaderboard},
	)
}

// PushLeaderboardError scripts a failed leaderboard fetch.
func (s *Server) PushLeaderboardError(contestID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboards[contestID] = append(
		s.leaderboards[contestID], leaderboardReply{fail: true},
	)
}

// PushLeaderboardGated scripts a response that is written only after
// gate is closed. Used to force out-of-order completion.
func (s *Server) PushLeaderboardGated(
	contestID int64, leaderboard api.Leaderboard, gate <-chan struct{},
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboards[contestID] = append(
		s.leaderboards[contestID],
		leaderboardReply{leaderboard: leaderboard, gate: gate},
	)
}

func (s *Server) signup(c echo.Context) error {
	var form api.SignupForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid form",
		})
	}
	s.mu.Lock()
	s.nextUserID++
	user := api.Session{
		UserID: s.nextUserID,
		Name:   form.Name,
		Email:  form.Email,
	}
	s.users[user.UserID] = user
	s.mu.Unlock()
	return c.JSON(http.StatusOK, user)
}

func (s *Server) login(c echo.Context) error {
	var form api.LoginForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid form",
		})
	}
	s.mu.Lock()
	user, ok := s.users[form.UserID]
	s.mu.Unlock()
	if !ok || user.Name != form.Name {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"message": "Invalid user ID or name",
		})
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) observeContests(c echo.Context) error {
	s.mu.Lock()
	contests := make([]api.Contest, 0, len(s.contests))
	for _, contest := range s.contests {
		contests = append(contests, contest)
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, contests)
}

func (s *Server) observeActiveContests(c echo.Context) error {
	now := nowFunc()
	s.mu.Lock()
	contests := []api.Contest{}
	for _, contest := range s.contests {
		if contest.IsActive(now) {
			contests = append(contests, contest)
		}
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, contests)
}

func (s *Server) observeContest(c echo.Context) error {
	id, err := parseID(c.Param("contest"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid contest id",
		})
	}
	s.mu.Lock()
	contest, ok := s.contests[id]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "contest not found",
		})
	}
	return c.JSON(http.StatusOK, contest)
}

func (s *Server) observeLeaderboard(c echo.Context) error {
	id, err := parseID(c.Param("contest"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid contest id",
		})
	}
	s.mu.Lock()
	var reply leaderboardReply
	if queue := s.leaderboards[id]; len(queue) > 0 {
		reply = queue[0]
		s.leaderboards[id] = queue[1:]
	} else {
		reply = leaderboardReply{leaderboard: s.lastBoard[id]}
	}
	if !reply.fail && reply.gate == nil {
		s.lastBoard[id] = reply.leaderboard
	}
	s.mu.Unlock()
	if reply.gate != nil {
		<-reply.gate
	}
	if reply.fail {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "leaderboard unavailable",
		})
	}
	if reply.leaderboard.Entries == nil {
		reply.leaderboard.Entries = []api.LeaderboardEntry{}
	}
	return c.JSON(http.StatusOK, reply.leaderboard)
}

func (s *Server) observeProblem(c echo.Context) error {
	id, err := parseID(c.Param("problem"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid problem id",
		})
	}
	s.mu.Lock()
	problem, ok := s.problems[id]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "problem not found",
		})
	}
	return c.JSON(http.StatusOK, problem)
}

func (s *Server) observeContestProblems(c echo.Context) error {
	id, err := parseID(c.Param("contest"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid contest id",
		})
	}
	s.mu.Lock()
	problems := []api.Problem{}
	for _, problem := range s.problems {
		if problem.ContestID == id {
			problems = append(problems, problem)
		}
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, problems)
}

func (s *Server) createSubmission(c echo.Context) error {
	var form api.SubmitForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "invalid form",
		})
	}
	s.mu.Lock()
	s.nextSub++
	id := fmt.Sprintf("S%d", s.nextSub)
	if _, ok := s.statuses[id]; !ok {
		s.statuses[id] = []api.SubmissionStatus{
			{Status: api.StatusPending},
		}
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, api.Submission{SubmissionID: id})
}

// StatusRequests returns how many status requests were served for a
// submission.
func (s *Server) StatusRequests(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[id]
}

func (s *Server) observeSubmission(c echo.Context) error {
	id := c.Param("submission")
	s.mu.Lock()
	s.requests[id]++
	statuses, ok := s.statuses[id]
	if !ok || len(statuses) == 0 {
		s.mu.Unlock()
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "submission not found",
		})
	}
	status := statuses[0]
	if len(statuses) > 1 {
		s.statuses[id] = statuses[1:]
	}
	s.mu.Unlock()
	return c.JSON(http.StatusOK, status)
}
