package services

import (
	"context"

	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	apperrors "ejama-backend/pkg/errors"
)

// PeriodService implements the cycle tracker: one log per user per start
// date, with the full history readable in one call.
type PeriodService struct {
	repo   ports.PeriodRepository
	logger *zap.Logger
}

// NewPeriodService creates a PeriodService.
func NewPeriodService(repo ports.PeriodRepository, logger *zap.Logger) *PeriodService {
	return &PeriodService{repo: repo, logger: logger}
}

// Log stores a period entry. Logging the same start date again replaces the
// earlier entry; corrections are plain re-submissions.
func (s *PeriodService) Log(ctx context.Context, userID string, log entities.PeriodLog) error {
	if log.StartDate == "" {
		return apperrors.NewValidationError("startDate is required")
	}
	log.UserID = userID
	return s.repo.Put(ctx, log)
}

// History returns all of the user's period logs ordered by start date.
func (s *PeriodService) History(ctx context.Context, userID string) ([]entities.PeriodLog, error) {
	return s.repo.History(ctx, userID)
}
