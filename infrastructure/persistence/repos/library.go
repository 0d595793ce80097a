package repos

import (
	"context"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence"
)

// LibraryRepository persists bookmark sets and progress maps per user and
// content domain. The domain tag is part of the sort key, so the two content
// collections never collide.
type LibraryRepository struct {
	store persistence.Store
}

// NewLibraryRepository creates a library repository over the store.
func NewLibraryRepository(store persistence.Store) *LibraryRepository {
	return &LibraryRepository{store: store}
}

var _ ports.LibraryRepository = (*LibraryRepository)(nil)

func bookmarksKey(domain entities.ContentDomain, userID string) persistence.Key {
	return persistence.Key{
		PartitionKey: userPartition(userID),
		SortKey:      "LIBRARY#" + string(domain) + "#BOOKMARKS",
	}
}

func progressKey(domain entities.ContentDomain, userID string) persistence.Key {
	return persistence.Key{
		PartitionKey: userPartition(userID),
		SortKey:      "LIBRARY#" + string(domain) + "#PROGRESS",
	}
}

// Bookmarks returns the user's bookmark set for the domain, empty when never
// written.
func (r *LibraryRepository) Bookmarks(ctx context.Context, domain entities.ContentDomain, userID string) ([]string, error) {
	var bookmarks []string
	found, err := getJSON(ctx, r.store, bookmarksKey(domain, userID), &bookmarks)
	if err != nil {
		return nil, err
	}
	if !found || bookmarks == nil {
		return []string{}, nil
	}
	return bookmarks, nil
}

// PutBookmarks overwrites the user's bookmark set for the domain.
func (r *LibraryRepository) PutBookmarks(ctx context.Context, domain entities.ContentDomain, userID string, articleIDs []string) error {
	return putJSON(ctx, r.store, bookmarksKey(domain, userID), articleIDs)
}

// Progress returns the user's progress map for the domain, empty when never
// written.
func (r *LibraryRepository) Progress(ctx context.Context, domain entities.ContentDomain, userID string) (map[string]float64, error) {
	var progress map[string]float64
	found, err := getJSON(ctx, r.store, progressKey(domain, userID), &progress)
	if err != nil {
		return nil, err
	}
	if !found || progress == nil {
		return map[string]float64{}, nil
	}
	return progress, nil
}

// PutProgress overwrites the user's progress map for the domain.
func (r *LibraryRepository) PutProgress(ctx context.Context, domain entities.ContentDomain, userID string, progress map[string]float64) error {
	return putJSON(ctx, r.store, progressKey(domain, userID), progress)
}
