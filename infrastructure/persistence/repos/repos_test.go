package repos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence"
	"ejama-backend/infrastructure/persistence/memory"
	apperrors "ejama-backend/pkg/errors"
)

func TestCommunityRepositoryRoundTrip(t *testing.T) {
	store := memory.New()
	repo := NewCommunityRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.PutCategory(ctx, entities.Category{ID: "c-1", Title: "Basics", MembersCount: 12}))
	require.NoError(t, repo.PutThread(ctx, entities.Thread{ID: "t-1", CategoryID: "c-1", Title: "Cycle length", CreatedAt: time.Now()}))
	require.NoError(t, repo.PutPost(ctx, entities.Post{ID: "p-1", ThreadID: "t-1", Content: "hi"}))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Basics", categories[0].Title)

	threads, err := repo.Threads(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "c-1", threads[0].CategoryID)

	posts, err := repo.Posts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestMembershipDefaultsEmpty(t *testing.T) {
	repo := NewCommunityRepository(memory.New())
	ctx := context.Background()

	joined, err := repo.Membership(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, joined)

	require.NoError(t, repo.PutMembership(ctx, "u1", []string{"c-1", "c-2"}))
	joined, err = repo.Membership(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1", "c-2"}, joined)

	// Another user's membership is invisible.
	other, err := repo.Membership(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestQuestionRepositoryGetMissing(t *testing.T) {
	repo := NewQuestionRepository(memory.New())

	_, err := repo.Get(context.Background(), "q-nope")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestQuestionRepositoryRoundTrip(t *testing.T) {
	repo := NewQuestionRepository(memory.New())
	ctx := context.Background()

	q := entities.Question{
		ID:       "q-1",
		Question: "Is this normal?",
		AskedBy:  "u1",
		AskedAt:  time.Now().UTC(),
		Status:   entities.QuestionPending,
	}
	require.NoError(t, repo.Put(ctx, q))

	got, err := repo.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, q.Question, got.Question)
	assert.Equal(t, entities.QuestionPending, got.Status)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAskedIDsDefaultsEmpty(t *testing.T) {
	repo := NewQuestionRepository(memory.New())
	ctx := context.Background()

	ids, err := repo.AskedIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.PutAskedIDs(ctx, "u1", []string{"q-2", "q-1"}))
	ids, err = repo.AskedIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"q-2", "q-1"}, ids)
}

func TestLibraryDomainsDoNotCollide(t *testing.T) {
	repo := NewLibraryRepository(memory.New())
	ctx := context.Background()

	require.NoError(t, repo.PutBookmarks(ctx, entities.DomainEducation, "u1", []string{"a-1"}))
	require.NoError(t, repo.PutBookmarks(ctx, entities.DomainHealthTips, "u1", []string{"a-9"}))

	education, err := repo.Bookmarks(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1"}, education)

	tips, err := repo.Bookmarks(ctx, entities.DomainHealthTips, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-9"}, tips)

	progress, err := repo.Progress(ctx, entities.DomainEducation, "u1")
	require.NoError(t, err)
	assert.Empty(t, progress)
}

func TestPeriodHistorySortedByStartDate(t *testing.T) {
	repo := NewPeriodRepository(memory.New())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entities.PeriodLog{UserID: "u1", StartDate: "2026-03-01"}))
	require.NoError(t, repo.Put(ctx, entities.PeriodLog{UserID: "u1", StartDate: "2026-01-15"}))
	require.NoError(t, repo.Put(ctx, entities.PeriodLog{UserID: "u2", StartDate: "2026-02-01"}))

	history, err := repo.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-01-15", history[0].StartDate)
	assert.Equal(t, "2026-03-01", history[1].StartDate)
}

func TestPeriodSameStartDateOverwrites(t *testing.T) {
	repo := NewPeriodRepository(memory.New())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entities.PeriodLog{UserID: "u1", StartDate: "2026-03-01", Flow: "light"}))
	require.NoError(t, repo.Put(ctx, entities.PeriodLog{UserID: "u1", StartDate: "2026-03-01", Flow: "heavy"}))

	history, err := repo.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "heavy", history[0].Flow)
}

func TestProfilePicture(t *testing.T) {
	repo := NewProfileRepository(memory.New())
	ctx := context.Background()

	picture, err := repo.Picture(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, picture)

	require.NoError(t, repo.PutPicture(ctx, "u1", "data:image/png;base64,AAAA"))
	picture, err = repo.Picture(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", picture)
}

func TestFeedbackIDsAreUnique(t *testing.T) {
	repo := NewFeedbackRepository(memory.New())
	ctx := context.Background()

	now := time.Now().UTC()
	first, err := repo.Put(ctx, entities.Feedback{Message: "great app", Timestamp: now})
	require.NoError(t, err)
	second, err := repo.Put(ctx, entities.Feedback{Message: "needs work", Timestamp: now})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCorruptRecordIsADatabaseError(t *testing.T) {
	store := memory.New()
	repo := NewCommunityRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, persistence.Record{
		Key:  categoryKey("c-bad"),
		Data: []byte("{not json"),
	}))

	_, err := repo.Categories(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsDatabase(err))
}

func TestRecordFailingValidationIsADatabaseError(t *testing.T) {
	store := memory.New()
	repo := NewCommunityRepository(store)
	ctx := context.Background()

	// Valid JSON, but the entity is missing its required fields; it must not
	// come back as a zero-valued category.
	require.NoError(t, store.Put(ctx, persistence.Record{
		Key:  categoryKey("c-empty"),
		Data: []byte("{}"),
	}))

	_, err := repo.Categories(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsDatabase(err))
	assert.False(t, apperrors.IsNotFound(err))
}
