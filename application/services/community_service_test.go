package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/config"
	"ejama-backend/infrastructure/messaging"
	"ejama-backend/infrastructure/persistence/memory"
	"ejama-backend/infrastructure/persistence/repos"
)

func newCommunityService(t *testing.T) (*CommunityService, *memory.Store) {
	t.Helper()
	store := memory.New()
	logger := zap.NewNop()
	return NewCommunityService(
		repos.NewCommunityRepository(store),
		messaging.NewNoopBus(logger),
		config.NewDynamic(config.DefaultPolicies()),
		logger,
	), store
}

func TestLoadDataSeedsEmptyStore(t *testing.T) {
	svc, store := newCommunityService(t)
	ctx := context.Background()

	data, err := svc.LoadData(ctx, "u1")
	require.NoError(t, err)

	assert.Len(t, data.Categories, 4)
	assert.Len(t, data.Threads, 3)
	assert.Len(t, data.Posts, 3)
	assert.Empty(t, data.JoinedCategories)
	// 4 categories + 3 threads + 3 posts written.
	assert.Equal(t, 10, store.Len())
}

func TestLoadDataSeedsOnlyOnce(t *testing.T) {
	svc, store := newCommunityService(t)
	ctx := context.Background()

	_, err := svc.LoadData(ctx, "u1")
	require.NoError(t, err)
	before := store.Len()

	data, err := svc.LoadData(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, data.Categories, 4)
	assert.Equal(t, before, store.Len())
}

func TestLoadDataSeedDisabled(t *testing.T) {
	store := memory.New()
	logger := zap.NewNop()
	policies := config.NewDynamic(config.Policies{CommunitySeed: false, CommunityLoadDegrade: false})
	svc := NewCommunityService(repos.NewCommunityRepository(store), messaging.NewNoopBus(logger), policies, logger)

	data, err := svc.LoadData(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, data.Categories)
	assert.Equal(t, 0, store.Len())
}

func TestJoinAndLeaveAreIdempotent(t *testing.T) {
	svc, _ := newCommunityService(t)
	ctx := context.Background()

	joined, err := svc.SetMembership(ctx, "u1", "c-1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, joined)

	// Joining again changes nothing.
	joined, err = svc.SetMembership(ctx, "u1", "c-1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, joined)

	joined, err = svc.SetMembership(ctx, "u1", "c-2", true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c-1", "c-2"}, joined)

	joined, err = svc.SetMembership(ctx, "u1", "c-1", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-2"}, joined)

	// Leaving something never joined changes nothing.
	joined, err = svc.SetMembership(ctx, "u1", "c-99", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-2"}, joined)
}

func TestLeaveThenRejoin(t *testing.T) {
	svc, _ := newCommunityService(t)
	ctx := context.Background()

	_, err := svc.SetMembership(ctx, "u1", "c-1", true)
	require.NoError(t, err)
	_, err = svc.SetMembership(ctx, "u1", "c-1", false)
	require.NoError(t, err)

	joined, err := svc.SetMembership(ctx, "u1", "c-1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, joined)
}

func TestCreateDoesNotAutoJoin(t *testing.T) {
	svc, _ := newCommunityService(t)
	ctx := context.Background()

	category, err := svc.Create(ctx, "u1", "PCOS Support", "Talk about PCOS", "💜")
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "u1", category.CreatedBy)
	assert.Equal(t, 1, category.MembersCount)

	joined, err := svc.SetMembership(ctx, "u1", "other", false)
	require.NoError(t, err)
	assert.NotContains(t, joined, category.ID)
}

func TestCreateRequiresTitle(t *testing.T) {
	svc, _ := newCommunityService(t)

	_, err := svc.Create(context.Background(), "u1", "", "", "")
	assert.Error(t, err)
}

// failingCommunityRepo errors on every read, standing in for an unreachable
// store.
type failingCommunityRepo struct{}

var errStoreDown = errors.New("store unreachable")

func (failingCommunityRepo) Categories(ctx context.Context) ([]entities.Category, error) {
	return nil, errStoreDown
}
func (failingCommunityRepo) Threads(ctx context.Context) ([]entities.Thread, error) {
	return nil, errStoreDown
}
func (failingCommunityRepo) Posts(ctx context.Context) ([]entities.Post, error) {
	return nil, errStoreDown
}
func (failingCommunityRepo) PutCategory(ctx context.Context, c entities.Category) error {
	return errStoreDown
}
func (failingCommunityRepo) PutThread(ctx context.Context, th entities.Thread) error {
	return errStoreDown
}
func (failingCommunityRepo) PutPost(ctx context.Context, p entities.Post) error {
	return errStoreDown
}
func (failingCommunityRepo) Membership(ctx context.Context, userID string) ([]string, error) {
	return nil, errStoreDown
}
func (failingCommunityRepo) PutMembership(ctx context.Context, userID string, ids []string) error {
	return errStoreDown
}

var _ ports.CommunityRepository = failingCommunityRepo{}

func TestLoadDataDegradesToDefaults(t *testing.T) {
	logger := zap.NewNop()
	policies := config.NewDynamic(config.Policies{CommunityLoadDegrade: true, CommunitySeed: true})
	svc := NewCommunityService(failingCommunityRepo{}, messaging.NewNoopBus(logger), policies, logger)

	data, err := svc.LoadData(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, data.Categories, 4)
	assert.Empty(t, data.JoinedCategories)
}

func TestLoadDataFailsClosedWhenDegradeDisabled(t *testing.T) {
	logger := zap.NewNop()
	policies := config.NewDynamic(config.Policies{CommunityLoadDegrade: false, CommunitySeed: true})
	svc := NewCommunityService(failingCommunityRepo{}, messaging.NewNoopBus(logger), policies, logger)

	_, err := svc.LoadData(context.Background(), "u1")
	assert.Error(t, err)
}
