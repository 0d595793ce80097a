package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence"
)

const feedbackPartition = "FEEDBACK"

// FeedbackRepository stores feedback submissions under timestamped keys.
type FeedbackRepository struct {
	store persistence.Store
}

// NewFeedbackRepository creates a feedback repository over the store.
func NewFeedbackRepository(store persistence.Store) *FeedbackRepository {
	return &FeedbackRepository{store: store}
}

var _ ports.FeedbackRepository = (*FeedbackRepository)(nil)

// Put stores the feedback entry and returns its generated id. The key embeds
// the submission timestamp plus a random suffix, so concurrent submissions
// never collide.
func (r *FeedbackRepository) Put(ctx context.Context, feedback entities.Feedback) (string, error) {
	id := fmt.Sprintf("%s#%s", feedback.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"), uuid.NewString()[:8])
	key := persistence.Key{PartitionKey: feedbackPartition, SortKey: "ENTRY#" + id}
	if err := putJSON(ctx, r.store, key, feedback); err != nil {
		return "", err
	}
	return id, nil
}
