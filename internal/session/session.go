package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no session record exists for an ID.
var ErrNotFound = errors.New("session not found")

// Principal is the authenticated identity persisted for a session,
// as returned by the upstream auth endpoints.
type Principal struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Role classifies a visitor. A session holds exactly one role at a
// time; the invalid "both admin and instructor" state of the source
// client's two storage keys is not representable.
type Role int

const (
	RoleAnonymous Role = iota
	RoleInstructor
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleInstructor:
		return "instructor"
	default:
		return "anonymous"
	}
}

// RoleOf resolves the role of a principal. The admin check comes
// first, so an admin principal always resolves to RoleAdmin.
func RoleOf(p *Principal) Role {
	switch {
	case p == nil:
		return RoleAnonymous
	case p.IsAdmin:
		return RoleAdmin
	default:
		return RoleInstructor
	}
}

// Store persists session records keyed by opaque session IDs.
// Set replaces any record already stored under the ID, Get returns
// ErrNotFound for absent or expired records, and Clear removes the
// record regardless of role.
type Store interface {
	Set(ctx context.Context, id string, p *Principal) error
	Get(ctx context.Context, id string) (*Principal, error)
	Clear(ctx context.Context, id string) error
}
