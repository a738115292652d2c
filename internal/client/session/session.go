// Package session holds the client's authenticated identity: the (token,
// userId) pair issued at login or registration. The pair is kept in memory
// for the request pipeline and mirrored to durable local storage so it
// survives restarts.
package session

import "context"

// Session is the (token, userId) pair representing an authenticated
// identity. Both fields are set, or both are empty - never one without the
// other.
type Session struct {
	Token  string
	UserID string
}

// IsAnonymous reports whether no identity is established.
func (s Session) IsAnonymous() bool {
	return s.Token == "" && s.UserID == ""
}

// Store manages the session lifecycle.
//
// Contract:
//   - Hydrate: load the persisted pair at startup; anonymous if either half
//     is missing or the token has expired.
//   - Establish: set both halves, in memory and durably, both-or-neither.
//   - Clear: drop both halves, in memory and durably.
//   - Current: the in-memory session (cheap, no I/O).
//
// Store additionally satisfies api.TokenSource via Token, giving the
// request pipeline read-only access.
type Store interface {
	Hydrate(ctx context.Context) (Session, error)
	Establish(ctx context.Context, token, userID string) error
	Clear(ctx context.Context) error
	Current() Session
	Token() string
}
