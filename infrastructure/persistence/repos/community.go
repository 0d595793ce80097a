package repos

import (
	"context"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence"
)

const (
	communityPartition = "COMMUNITY"
	categoryPrefix     = "CATEGORY#"
	threadPrefix       = "THREAD#"
	postPrefix         = "POST#"
	membershipSortKey  = "JOINED"
)

// CommunityRepository persists forum entities in the COMMUNITY partition and
// membership sets in each user's partition.
type CommunityRepository struct {
	store persistence.Store
}

// NewCommunityRepository creates a community repository over the store.
func NewCommunityRepository(store persistence.Store) *CommunityRepository {
	return &CommunityRepository{store: store}
}

var _ ports.CommunityRepository = (*CommunityRepository)(nil)

func categoryKey(id string) persistence.Key {
	return persistence.Key{PartitionKey: communityPartition, SortKey: categoryPrefix + id}
}

func threadKey(id string) persistence.Key {
	return persistence.Key{PartitionKey: communityPartition, SortKey: threadPrefix + id}
}

func postKey(id string) persistence.Key {
	return persistence.Key{PartitionKey: communityPartition, SortKey: postPrefix + id}
}

func membershipKey(userID string) persistence.Key {
	return persistence.Key{PartitionKey: userPartition(userID), SortKey: membershipSortKey}
}

func userPartition(userID string) string { return "USER#" + userID }

// Categories returns all stored categories.
func (r *CommunityRepository) Categories(ctx context.Context) ([]entities.Category, error) {
	records, err := r.store.QueryPrefix(ctx, communityPartition, categoryPrefix)
	if err != nil {
		return nil, dbError("scan categories", err)
	}
	categories := make([]entities.Category, 0, len(records))
	for _, record := range records {
		var category entities.Category
		if err := decodeValidated(record.Key, record.Data, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Threads returns all stored threads.
func (r *CommunityRepository) Threads(ctx context.Context) ([]entities.Thread, error) {
	records, err := r.store.QueryPrefix(ctx, communityPartition, threadPrefix)
	if err != nil {
		return nil, dbError("scan threads", err)
	}
	threads := make([]entities.Thread, 0, len(records))
	for _, record := range records {
		var thread entities.Thread
		if err := decodeValidated(record.Key, record.Data, &thread); err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	return threads, nil
}

// Posts returns all stored posts.
func (r *CommunityRepository) Posts(ctx context.Context) ([]entities.Post, error) {
	records, err := r.store.QueryPrefix(ctx, communityPartition, postPrefix)
	if err != nil {
		return nil, dbError("scan posts", err)
	}
	posts := make([]entities.Post, 0, len(records))
	for _, record := range records {
		var post entities.Post
		if err := decodeValidated(record.Key, record.Data, &post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// PutCategory upserts a category under its fixed key.
func (r *CommunityRepository) PutCategory(ctx context.Context, category entities.Category) error {
	return putJSON(ctx, r.store, categoryKey(category.ID), category)
}

// PutThread upserts a thread under its fixed key.
func (r *CommunityRepository) PutThread(ctx context.Context, thread entities.Thread) error {
	return putJSON(ctx, r.store, threadKey(thread.ID), thread)
}

// PutPost upserts a post under its fixed key.
func (r *CommunityRepository) PutPost(ctx context.Context, post entities.Post) error {
	return putJSON(ctx, r.store, postKey(post.ID), post)
}

// Membership returns the user's joined category ids; empty when never
// written.
func (r *CommunityRepository) Membership(ctx context.Context, userID string) ([]string, error) {
	var joined []string
	found, err := getJSON(ctx, r.store, membershipKey(userID), &joined)
	if err != nil {
		return nil, err
	}
	if !found || joined == nil {
		return []string{}, nil
	}
	return joined, nil
}

// PutMembership overwrites the user's joined set.
func (r *CommunityRepository) PutMembership(ctx context.Context, userID string, categoryIDs []string) error {
	return putJSON(ctx, r.store, membershipKey(userID), categoryIDs)
}
