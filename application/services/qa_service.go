package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/domain/events"
	"ejama-backend/infrastructure/config"
	apperrors "ejama-backend/pkg/errors"
)

// QuestionFilter narrows the public question listing. Zero values mean no
// filtering on that axis.
type QuestionFilter struct {
	Status   entities.QuestionStatus
	Category string
	Search   string
}

// QAService implements anonymous expert questions: submission, public and
// per-user listings, and the moderation transitions.
type QAService struct {
	repo     ports.QuestionRepository
	bus      ports.EventBus
	policies *config.Dynamic
	logger   *zap.Logger
	now      func() time.Time
}

// NewQAService creates a QAService.
func NewQAService(repo ports.QuestionRepository, bus ports.EventBus, policies *config.Dynamic, logger *zap.Logger) *QAService {
	return &QAService{
		repo:     repo,
		bus:      bus,
		policies: policies,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit stores a new pending question and records it on the asker's list.
func (s *QAService) Submit(ctx context.Context, userID, question, category string, isPrivate bool) (*entities.Question, error) {
	if strings.TrimSpace(question) == "" {
		return nil, apperrors.NewValidationError("question text is required")
	}

	q := entities.Question{
		ID:        fmt.Sprintf("q-%s", uuid.NewString()),
		Question:  question,
		Category:  category,
		IsPrivate: isPrivate,
		AskedBy:   userID,
		AskedAt:   s.now(),
		Status:    entities.QuestionPending,
	}
	if err := s.repo.Put(ctx, q); err != nil {
		return nil, err
	}

	asked, err := s.repo.AskedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Newest first on the asker's own list.
	asked = append([]string{q.ID}, asked...)
	if err := s.repo.PutAskedIDs(ctx, userID, asked); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewQuestionSubmitted(q.ID, category, isPrivate, q.AskedAt))
	return &q, nil
}

// List returns public questions matching the filter. Question listings never
// degrade: a failing store surfaces as an error. An empty store is seeded
// with starter questions first when the policy allows.
func (s *QAService) List(ctx context.Context, filter QuestionFilter) ([]entities.Question, error) {
	questions, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	public := publicOnly(questions)
	if len(public) == 0 && s.policies.Current().QASeed {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
		questions, err = s.repo.All(ctx)
		if err != nil {
			return nil, err
		}
		public = publicOnly(questions)
	}

	return applyFilter(public, filter), nil
}

// ListMine returns the caller's own questions, private ones included, in the
// order they were recorded. Ids whose question no longer exists are skipped.
func (s *QAService) ListMine(ctx context.Context, userID string) ([]entities.Question, error) {
	ids, err := s.repo.AskedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions := make([]entities.Question, 0, len(ids))
	for _, id := range ids {
		q, err := s.repo.Get(ctx, id)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

// SaveAnswer sets the answer text and derives the status from it: non-empty
// text marks the question answered, empty text clears the answer and returns
// it to pending.
func (s *QAService) SaveAnswer(ctx context.Context, questionID, answeredBy, text string) (*entities.Question, error) {
	q, err := s.repo.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}

	wasAnswered := q.Answered()
	if strings.TrimSpace(text) == "" {
		q.Answer = ""
		q.AnsweredBy = ""
		q.AnsweredAt = nil
		q.Status = entities.QuestionPending
	} else {
		now := s.now()
		q.Answer = text
		q.AnsweredBy = answeredBy
		q.AnsweredAt = &now
		q.Status = entities.QuestionAnswered
	}

	if err := s.repo.Put(ctx, *q); err != nil {
		return nil, err
	}
	if !wasAnswered && q.Answered() {
		s.publish(ctx, events.NewQuestionAnswered(q.ID, answeredBy, s.now()))
	}
	return q, nil
}

// MarkAnswered flips only the status. Any stored answer text survives a flip
// back to pending, so moderators can unpublish without losing a draft.
func (s *QAService) MarkAnswered(ctx context.Context, questionID, moderator string, answered bool) (*entities.Question, error) {
	q, err := s.repo.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}

	wasAnswered := q.Answered()
	if answered {
		q.Status = entities.QuestionAnswered
		if q.AnsweredAt == nil {
			now := s.now()
			q.AnsweredAt = &now
		}
	} else {
		q.Status = entities.QuestionPending
	}

	if err := s.repo.Put(ctx, *q); err != nil {
		return nil, err
	}
	if !wasAnswered && q.Answered() {
		s.publish(ctx, events.NewQuestionAnswered(q.ID, moderator, s.now()))
	}
	return q, nil
}

func (s *QAService) seed(ctx context.Context) error {
	for _, q := range seedQuestions(s.now()) {
		if err := s.repo.Put(ctx, q); err != nil {
			return err
		}
	}
	s.logger.Info("question starter content written")
	return nil
}

func (s *QAService) publish(ctx context.Context, event events.DomainEvent) {
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}

func publicOnly(questions []entities.Question) []entities.Question {
	public := make([]entities.Question, 0, len(questions))
	for _, q := range questions {
		if !q.IsPrivate {
			public = append(public, q)
		}
	}
	return public
}

func applyFilter(questions []entities.Question, filter QuestionFilter) []entities.Question {
	matched := make([]entities.Question, 0, len(questions))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, q := range questions {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(q.Category, filter.Category) {
			continue
		}
		if search != "" && !matchesSearch(q, search) {
			continue
		}
		matched = append(matched, q)
	}
	return matched
}

// matchesSearch does a case-insensitive substring match over the question
// text, the answer, and the category.
func matchesSearch(q entities.Question, search string) bool {
	return strings.Contains(strings.ToLower(q.Question), search) ||
		strings.Contains(strings.ToLower(q.Answer), search) ||
		strings.Contains(strings.ToLower(q.Category), search)
}
