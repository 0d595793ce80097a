package services

import (
	"context"

	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	apperrors "ejama-backend/pkg/errors"
)

// LibraryService implements bookmarks and reading progress for the content
// libraries. Every operation is scoped to one content domain, so education
// and health-tips state never mix.
type LibraryService struct {
	repo   ports.LibraryRepository
	logger *zap.Logger
}

// NewLibraryService creates a LibraryService.
func NewLibraryService(repo ports.LibraryRepository, logger *zap.Logger) *LibraryService {
	return &LibraryService{repo: repo, logger: logger}
}

// LoadUserData returns the user's bookmarks and progress for one domain.
// Users who never saved anything get empty collections.
func (s *LibraryService) LoadUserData(ctx context.Context, domain entities.ContentDomain, userID string) (*entities.LibraryData, error) {
	if err := checkDomain(domain); err != nil {
		return nil, err
	}

	bookmarks, err := s.repo.Bookmarks(ctx, domain, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.repo.Progress(ctx, domain, userID)
	if err != nil {
		return nil, err
	}
	return &entities.LibraryData{Bookmarks: bookmarks, Progress: progress}, nil
}

// SetBookmark adds or removes an article from the user's bookmark set.
// Idempotent in both directions.
func (s *LibraryService) SetBookmark(ctx context.Context, domain entities.ContentDomain, userID, articleID string, bookmarked bool) error {
	if err := checkDomain(domain); err != nil {
		return err
	}
	if articleID == "" {
		return apperrors.NewValidationError("articleId is required")
	}

	bookmarks, err := s.repo.Bookmarks(ctx, domain, userID)
	if err != nil {
		return err
	}

	if bookmarked {
		if containsString(bookmarks, articleID) {
			return nil
		}
		bookmarks = append(bookmarks, articleID)
	} else {
		filtered := bookmarks[:0]
		found := false
		for _, id := range bookmarks {
			if id == articleID {
				found = true
				continue
			}
			filtered = append(filtered, id)
		}
		if !found {
			return nil
		}
		bookmarks = filtered
	}
	return s.repo.PutBookmarks(ctx, domain, userID, bookmarks)
}

// SaveProgress records the user's progress for one article. The value is
// stored as sent; the client owns its own progress scale.
func (s *LibraryService) SaveProgress(ctx context.Context, domain entities.ContentDomain, userID, articleID string, progress float64) error {
	if err := checkDomain(domain); err != nil {
		return err
	}
	if articleID == "" {
		return apperrors.NewValidationError("articleId is required")
	}

	progressData, err := s.repo.Progress(ctx, domain, userID)
	if err != nil {
		return err
	}
	progressData[articleID] = progress
	return s.repo.PutProgress(ctx, domain, userID, progressData)
}

func checkDomain(domain entities.ContentDomain) error {
	if !entities.KnownDomain(string(domain)) {
		return apperrors.NewValidationError("unknown content domain: " + string(domain))
	}
	return nil
}
