// Package identity resolves bearer tokens to stable user identities. The
// core never manages credentials; Supabase owns them. A JWT resolver exists
// for local runs where validating the Supabase-issued token with the
// project's JWT secret avoids a network hop.
package identity

import (
	"context"
	"errors"
)

// RoleModerator marks users allowed to answer and reclassify questions.
const RoleModerator = "moderator"

var (
	ErrMissingToken = errors.New("missing authentication token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// User is a resolved identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsModerator reports whether the user may use moderation endpoints.
func (u *User) IsModerator() bool { return u.Role == RoleModerator }

// Resolver turns a bearer token into a user identity or fails.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*User, error)
}

// Accounts creates accounts through a service credential. Used only by the
// public signup endpoint.
type Accounts interface {
	CreateUser(ctx context.Context, email, password, name string) (*User, error)
}

type ctxKey struct{}

// WithUser attaches the resolved user to the request context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// FromContext returns the resolved user, false when the request was not
// authenticated.
func FromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*User)
	return user, ok && user != nil
}
