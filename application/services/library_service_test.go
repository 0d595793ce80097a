package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence/memory"
	"ejama-backend/infrastructure/persistence/repos"
)

func newLibraryService(t *testing.T) *LibraryService {
	t.Helper()
	return NewLibraryService(repos.NewLibraryRepository(memory.New()), zap.NewNop())
}

func TestLoadUserDataEmptyByDefault(t *testing.T) {
	svc := newLibraryService(t)

	data, err := svc.LoadUserData(context.Background(), entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Empty(t, data.Bookmarks)
	assert.Empty(t, data.Progress)
}

func TestBookmarkToggleIsIdempotent(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-1", true))
	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-1", true))
	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-2", true))

	data, err := svc.LoadUserData(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a-1", "a-2"}, data.Bookmarks)

	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-1", false))
	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-1", false))
	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-never", false))

	data, err = svc.LoadUserData(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-2"}, data.Bookmarks)
}

func TestDomainsStayIsolated(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetBookmark(ctx, entities.DomainEducation, "u1", "a-1", true))
	require.NoError(t, svc.SaveProgress(ctx, entities.DomainHealthTips, "u1", "a-1", 0.5))

	tips, err := svc.LoadUserData(ctx, entities.DomainHealthTips, "u1")
	require.NoError(t, err)
	assert.Empty(t, tips.Bookmarks)
	assert.Equal(t, map[string]float64{"a-1": 0.5}, tips.Progress)

	education, err := svc.LoadUserData(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1"}, education.Bookmarks)
	assert.Empty(t, education.Progress)
}

func TestProgressStoredAsSent(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	// Values outside 0..1 are the client's business.
	require.NoError(t, svc.SaveProgress(ctx, entities.DomainEducation, "u1", "a-1", 1.75))
	require.NoError(t, svc.SaveProgress(ctx, entities.DomainEducation, "u1", "a-2", 0))

	data, err := svc.LoadUserData(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a-1": 1.75, "a-2": 0}, data.Progress)
}

func TestProgressOverwrites(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveProgress(ctx, entities.DomainEducation, "u1", "a-1", 0.25))
	require.NoError(t, svc.SaveProgress(ctx, entities.DomainEducation, "u1", "a-1", 0.8))

	data, err := svc.LoadUserData(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a-1": 0.8}, data.Progress)
}

func TestUnknownDomainRejected(t *testing.T) {
	svc := newLibraryService(t)
	ctx := context.Background()

	_, err := svc.LoadUserData(ctx, "recipes", "u1")
	assert.Error(t, err)
	assert.Error(t, svc.SetBookmark(ctx, "recipes", "u1", "a-1", true))
	assert.Error(t, svc.SaveProgress(ctx, "recipes", "u1", "a-1", 0.5))
}
