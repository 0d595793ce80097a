package identity

import (
	"context"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	apperrors "ejama-backend/pkg/errors"
)

// SupabaseIdentity resolves tokens and manages signup against a Supabase
// project using the service role key.
type SupabaseIdentity struct {
	client *supabase.Client
	logger *zap.Logger
}

// NewSupabaseIdentity builds the Supabase-backed resolver/accounts pair.
func NewSupabaseIdentity(url, serviceRoleKey string, logger *zap.Logger) (*SupabaseIdentity, error) {
	client, err := supabase.NewClient(url, serviceRoleKey, nil)
	if err != nil {
		return nil, apperrors.NewExternalError("supabase", err)
	}
	return &SupabaseIdentity{client: client, logger: logger}, nil
}

var (
	_ Resolver = (*SupabaseIdentity)(nil)
	_ Accounts = (*SupabaseIdentity)(nil)
)

// Resolve asks Supabase who the token belongs to. Any failure maps to an
// invalid token; the caller turns that into an Unauthorized result before
// any store access happens.
func (s *SupabaseIdentity) Resolve(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	// The gotrue client carries the token on the underlying HTTP request;
	// it does not take a context argument.
	resp, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		s.logger.Debug("token resolution failed", zap.Error(err))
		return nil, ErrInvalidToken
	}
	return userFromSupabase(&resp.User), nil
}

// CreateUser provisions an account with a confirmed email, mirroring the
// product behavior of signup without a mail server.
func (s *SupabaseIdentity) CreateUser(ctx context.Context, email, password, name string) (*User, error) {
	resp, err := s.client.Auth.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		Password:     &password,
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{"name": name},
	})
	if err != nil {
		return nil, apperrors.NewExternalError("supabase signup", err)
	}
	return userFromSupabase(&resp.User), nil
}

func userFromSupabase(u *types.User) *User {
	user := &User{
		ID:    u.ID.String(),
		Email: u.Email,
		Role:  u.Role,
	}
	if name, ok := u.UserMetadata["name"].(string); ok {
		user.Name = name
	}
	// An explicit app-level role wins over the Supabase default role.
	if role, ok := u.AppMetadata["role"].(string); ok && role != "" {
		user.Role = role
	}
	return user
}
