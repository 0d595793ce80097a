package services

import (
	"context"

	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/infrastructure/identity"
	apperrors "ejama-backend/pkg/errors"
)

// AccountService handles signup and profile data.
type AccountService struct {
	accounts identity.Accounts
	profiles ports.ProfileRepository
	logger   *zap.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(accounts identity.Accounts, profiles ports.ProfileRepository, logger *zap.Logger) *AccountService {
	return &AccountService{accounts: accounts, profiles: profiles, logger: logger}
}

// Signup provisions a new account with the identity provider.
func (s *AccountService) Signup(ctx context.Context, email, password, name string) (*identity.User, error) {
	user, err := s.accounts.CreateUser(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("account created", zap.String("userID", user.ID))
	return user, nil
}

// SavePicture stores the user's profile picture payload and echoes it back
// so clients can render it immediately.
func (s *AccountService) SavePicture(ctx context.Context, userID, picture string) (string, error) {
	if picture == "" {
		return "", apperrors.NewValidationError("picture is required")
	}
	if err := s.profiles.PutPicture(ctx, userID, picture); err != nil {
		return "", err
	}
	return picture, nil
}

// Picture returns the stored picture payload, empty when never set.
func (s *AccountService) Picture(ctx context.Context, userID string) (string, error) {
	return s.profiles.Picture(ctx, userID)
}
