package repos

import (
	"context"

	"ejama-backend/application/ports"
	"ejama-backend/infrastructure/persistence"
)

const profilePictureSortKey = "PROFILE#PICTURE"

// ProfileRepository stores per-user profile data.
type ProfileRepository struct {
	store persistence.Store
}

// NewProfileRepository creates a profile repository over the store.
func NewProfileRepository(store persistence.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func pictureKey(userID string) persistence.Key {
	return persistence.Key{PartitionKey: userPartition(userID), SortKey: profilePictureSortKey}
}

// PutPicture stores the user's picture payload (base64 data URL).
func (r *ProfileRepository) PutPicture(ctx context.Context, userID, data string) error {
	return putJSON(ctx, r.store, pictureKey(userID), data)
}

// Picture returns the stored picture payload, empty when never set.
func (r *ProfileRepository) Picture(ctx context.Context, userID string) (string, error) {
	var data string
	found, err := getJSON(ctx, r.store, pictureKey(userID), &data)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return data, nil
}
