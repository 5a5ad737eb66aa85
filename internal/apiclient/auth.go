package apiclient

import (
	"context"

	"github.com/6394981696/Lecture-Scheduling/internal/session"
)

// AuthAPI covers the upstream authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*session.Principal, error)
	Register(ctx context.Context, username, email, password string, isAdmin bool) (*session.Principal, error)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// authResponse is the shared login/register envelope: Status false
// means the operation was declined and Msg explains why.
type authResponse struct {
	Status bool              `json:"status"`
	Msg    string            `json:"msg"`
	User   session.Principal `json:"user"`
}

// Login exchanges credentials for the authenticated principal.
// POST /auth/login
func (c *Client) Login(ctx context.Context, username, password string) (*session.Principal, error) {
	var resp authResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, &APIError{Message: resp.Msg}
	}
	p := resp.User
	return &p, nil
}

// Register creates a user and returns the authenticated principal.
// POST /auth/register
func (c *Client) Register(ctx context.Context, username, email, password string, isAdmin bool) (*session.Principal, error) {
	var resp authResponse
	req := registerRequest{Username: username, Email: email, Password: password, IsAdmin: isAdmin}
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, &APIError{Message: resp.Msg}
	}
	p := resp.User
	return &p, nil
}
