package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Language represents source language of a submission.
type Language string

const (
	Python Language = "PYTHON"
	Cpp    Language = "CPP"
	Java   Language = "JAVA"
)

// Languages contains all languages supported by the backend.
var Languages = []Language{Python, Cpp, Java}

var languageTemplates = map[Language]string{
	Python: `# Write your solution here
def solve():
    pass

solve()
`,
	Cpp: `#include <iostream>
using namespace std;

int main() {
    // Write your solution here
    return 0;
}
`,
	Java: `import java.util.*;

public class Solution {
    public static void main(String[] args) {
        Scanner sc = new Scanner(System.in);
        // Write your solution here
    }
}
`,
}

// Template returns starter source code for the language.
func (l Language) Template() string {
	return languageTemplates[l]
}

// ParseLanguage converts a language tag into Language.
func ParseLanguage(s string) (Language, error) {
	for _, language := range Languages {
		if string(language) == s {
			return language, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Status represents submission status tag.
type Status string

const (
	StatusPending           Status = "PENDING"
	StatusRunning           Status = "RUNNING"
	StatusAccepted          Status = "ACCEPTED"
	StatusWrongAnswer       Status = "WRONG_ANSWER"
	StatusTimeLimitExceeded Status = "TIME_LIMIT_EXCEEDED"
	StatusCompilationError  Status = "COMPILATION_ERROR"
	StatusRuntimeError      Status = "RUNTIME_ERROR"
	// StatusError is never sent by the backend: it is assigned locally
	// when a status request fails.
	StatusError Status = "ERROR"
)

// IsTerminal reports whether no further status change can occur.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusWrongAnswer, StatusTimeLimitExceeded,
		StatusCompilationError, StatusRuntimeError, StatusError:
		return true
	}
	return false
}

// SubmitForm contains a new submission.
type SubmitForm struct {
	UserID    int64    `json:"userId"`
	ProblemID int64    `json:"problemId"`
	ContestID int64    `json:"contestId"`
	Code      string   `json:"code"`
	Language  Language `json:"language"`
}

// Submission represents a created submission.
type Submission struct {
	// SubmissionID contains backend-assigned submission token.
	SubmissionID string `json:"submissionId"`
}

// SubmissionStatus represents a submission status snapshot.
type SubmissionStatus struct {
	// Status contains status tag.
	Status Status `json:"status"`
	// Result contains human-readable result text.
	Result string `json:"result,omitempty"`
	// ExecutionTime contains execution time in milliseconds,
	// zero when not reported.
	ExecutionTime int64 `json:"executionTime,omitempty"`
}

func (c *Client) SubmitSolution(
	ctx context.Context, form SubmitForm,
) (Submission, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return Submission{}, err
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.getURL("/submissions"), bytes.NewReader(data),
	)
	if err != nil {
		return Submission{}, err
	}
	var respData Submission
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}

func (c *Client) ObserveSubmissionStatus(
	ctx context.Context, id string,
) (SubmissionStatus, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.getURL("/submissions/%s", id), nil,
	)
	if err != nil {
		return SubmissionStatus{}, err
	}
	var respData SubmissionStatus
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}
