// Package services holds the application services. Each service owns one
// feature area and talks to the store through the ports interfaces, in the
// same direct style the API handlers consume.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/domain/events"
	"ejama-backend/infrastructure/config"
	apperrors "ejama-backend/pkg/errors"
)

// CommunityService implements the community feature: category listing with
// first-load seeding, membership toggling, and category creation.
type CommunityService struct {
	repo     ports.CommunityRepository
	bus      ports.EventBus
	policies *config.Dynamic
	logger   *zap.Logger
	now      func() time.Time
}

// NewCommunityService creates a CommunityService.
func NewCommunityService(repo ports.CommunityRepository, bus ports.EventBus, policies *config.Dynamic, logger *zap.Logger) *CommunityService {
	return &CommunityService{
		repo:     repo,
		bus:      bus,
		policies: policies,
		logger:   logger,
		now:      time.Now,
	}
}

// LoadData returns everything the community screen needs in one shot. On an
// empty store the starter content is written first, so every client sees the
// same categories. When the store is unreachable and degraded reads are
// allowed, the starter content is served without being written.
func (s *CommunityService) LoadData(ctx context.Context, userID string) (*entities.CommunityData, error) {
	policies := s.policies.Current()

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return s.degradeOrFail(ctx, userID, policies, err)
	}

	if len(categories) == 0 && policies.CommunitySeed {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
		categories, err = s.repo.Categories(ctx)
		if err != nil {
			return s.degradeOrFail(ctx, userID, policies, err)
		}
	}

	threads, err := s.repo.Threads(ctx)
	if err != nil {
		return s.degradeOrFail(ctx, userID, policies, err)
	}
	posts, err := s.repo.Posts(ctx)
	if err != nil {
		return s.degradeOrFail(ctx, userID, policies, err)
	}
	joined, err := s.repo.Membership(ctx, userID)
	if err != nil {
		return s.degradeOrFail(ctx, userID, policies, err)
	}

	return &entities.CommunityData{
		Categories:       categories,
		Threads:          threads,
		Posts:            posts,
		JoinedCategories: joined,
	}, nil
}

// degradeOrFail serves the built-in defaults when the degrade policy allows
// it; membership is reported empty because it cannot be read.
func (s *CommunityService) degradeOrFail(ctx context.Context, userID string, policies config.Policies, cause error) (*entities.CommunityData, error) {
	if !policies.CommunityLoadDegrade {
		return nil, cause
	}
	s.logger.Warn("community load degraded to defaults",
		zap.String("userID", userID),
		zap.Error(cause),
	)
	now := s.now()
	return &entities.CommunityData{
		Categories:       seedCategories(),
		Threads:          seedThreads(now),
		Posts:            seedPosts(now),
		JoinedCategories: []string{},
	}, nil
}

func (s *CommunityService) seed(ctx context.Context) error {
	now := s.now()
	for _, category := range seedCategories() {
		if err := s.repo.PutCategory(ctx, category); err != nil {
			return err
		}
	}
	for _, thread := range seedThreads(now) {
		if err := s.repo.PutThread(ctx, thread); err != nil {
			return err
		}
	}
	for _, post := range seedPosts(now) {
		if err := s.repo.PutPost(ctx, post); err != nil {
			return err
		}
	}
	s.logger.Info("community starter content written")
	return nil
}

// Create stores a new category owned by the calling user. The creator is
// not auto-joined; joining stays an explicit action.
func (s *CommunityService) Create(ctx context.Context, userID, title, description, icon string) (*entities.Category, error) {
	if title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	category := entities.Category{
		ID:           fmt.Sprintf("c-%s", uuid.NewString()),
		Title:        title,
		Description:  description,
		Icon:         icon,
		MembersCount: 1,
		CreatedBy:    userID,
	}
	if err := s.repo.PutCategory(ctx, category); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewCommunityCreated(category.ID, userID, title, s.now()))
	return &category, nil
}

// SetMembership joins or leaves a category. Both directions are idempotent:
// joining twice or leaving something never joined leaves the set unchanged.
func (s *CommunityService) SetMembership(ctx context.Context, userID, categoryID string, join bool) ([]string, error) {
	if categoryID == "" {
		return nil, apperrors.NewValidationError("categoryId is required")
	}

	joined, err := s.repo.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if join {
		if !containsString(joined, categoryID) {
			joined = append(joined, categoryID)
			changed = true
		}
	} else {
		filtered := joined[:0]
		for _, id := range joined {
			if id == categoryID {
				changed = true
				continue
			}
			filtered = append(filtered, id)
		}
		joined = filtered
	}

	if changed {
		if err := s.repo.PutMembership(ctx, userID, joined); err != nil {
			return nil, err
		}
		s.publish(ctx, events.NewMembershipChanged(userID, categoryID, join, s.now()))
	}
	return joined, nil
}

func (s *CommunityService) publish(ctx context.Context, event events.DomainEvent) {
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
	}
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
