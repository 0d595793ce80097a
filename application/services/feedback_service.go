package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/domain/events"
)

// FeedbackService stores feedback submissions. Feedback is accepted without
// authentication so the contact form works for signed-out visitors.
type FeedbackService struct {
	repo   ports.FeedbackRepository
	bus    ports.EventBus
	logger *zap.Logger
	now    func() time.Time
}

// NewFeedbackService creates a FeedbackService.
func NewFeedbackService(repo ports.FeedbackRepository, bus ports.EventBus, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, bus: bus, logger: logger, now: time.Now}
}

// Submit validates and stores a feedback entry, returning its id.
func (s *FeedbackService) Submit(ctx context.Context, feedback entities.Feedback) (string, error) {
	feedback.Timestamp = s.now().UTC()

	id, err := s.repo.Put(ctx, feedback)
	if err != nil {
		return "", err
	}

	if err := s.bus.Publish(ctx, events.NewFeedbackReceived(id, feedback.Topic, s.now())); err != nil {
		s.logger.Warn("event publish failed",
			zap.String("eventType", "feedback.received"),
			zap.Error(err),
		)
	}
	return id, nil
}
