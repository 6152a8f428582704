package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Session represents an authenticated identity.
type Session struct {
	// UserID contains backend-assigned user ID.
	UserID int64 `json:"userId"`
	// Name contains user display name.
	Name string `json:"name"`
	// Email contains user email.
	Email string `json:"email,omitempty"`
}

// SignupForm contains data for account creation.
type SignupForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginForm contains user credentials.
//
// The backend authenticates by user ID and name pair.
type LoginForm struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

func (c *Client) Signup(ctx context.Context, form SignupForm) (Session, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return Session{}, err
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.getURL("/auth/signup"), bytes.NewReader(data),
	)
	if err != nil {
		return Session{}, err
	}
	var respData Session
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}

func (c *Client) Login(ctx context.Context, form LoginForm) (Session, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return Session{}, err
	}
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.getURL("/auth/login"), bytes.NewReader(data),
	)
	if err != nil {
		return Session{}, err
	}
	var respData Session
	err = c.doRequest(req, http.StatusOK, &respData)
	return respData, err
}
