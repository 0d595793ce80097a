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

func newQAService(t *testing.T, policies config.Policies) *QAService {
	t.Helper()
	logger := zap.NewNop()
	return NewQAService(
		repos.NewQuestionRepository(memory.New()),
		messaging.NewNoopBus(logger),
		config.NewDynamic(policies),
		logger,
	)
}

func TestSubmitCreatesPendingQuestion(t *testing.T) {
	svc := newQAService(t, config.DefaultPolicies())
	ctx := context.Background()

	q, err := svc.Submit(ctx, "u1", "Is spotting between periods normal?", "Cycle Health", false)
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, entities.QuestionPending, q.Status)
	assert.Equal(t, "u1", q.AskedBy)
	assert.Empty(t, q.Answer)
	assert.Nil(t, q.AnsweredAt)
}

func TestSubmitRejectsBlankQuestion(t *testing.T) {
	svc := newQAService(t, config.DefaultPolicies())

	_, err := svc.Submit(context.Background(), "u1", "   ", "", false)
	assert.Error(t, err)
}

func TestListMineNewestFirst(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})
	ctx := context.Background()

	first, err := svc.Submit(ctx, "u1", "first question", "", false)
	require.NoError(t, err)
	second, err := svc.Submit(ctx, "u1", "second question", "", true)
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
}

func TestListSeedsEmptyStore(t *testing.T) {
	svc := newQAService(t, config.DefaultPolicies())

	questions, err := svc.List(context.Background(), QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestListSeedDisabled(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})

	questions, err := svc.List(context.Background(), QuestionFilter{})
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestPrivateQuestionsHiddenFromPublicList(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})
	ctx := context.Background()

	_, err := svc.Submit(ctx, "u1", "public question", "", false)
	require.NoError(t, err)
	private, err := svc.Submit(ctx, "u1", "private question", "", true)
	require.NoError(t, err)

	public, err := svc.List(ctx, QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "public question", public[0].Question)

	mine, err := svc.ListMine(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, private.ID, mine[0].ID)
}

func TestListFilters(t *testing.T) {
	svc := newQAService(t, config.DefaultPolicies())
	ctx := context.Background()

	// Starter content: q-1 and q-2 answered, q-3 pending.
	pending, err := svc.List(ctx, QuestionFilter{Status: entities.QuestionPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "q-3", pending[0].ID)

	answered, err := svc.List(ctx, QuestionFilter{Status: entities.QuestionAnswered})
	require.NoError(t, err)
	assert.Len(t, answered, 2)

	// Category matching is case-insensitive.
	byCategory, err := svc.List(ctx, QuestionFilter{Category: "pain management"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "q-3", byCategory[0].ID)

	// Search spans question, answer, and category text.
	bySearch, err := svc.List(ctx, QuestionFilter{Search: "MENSTRUAL CUPS"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "q-2", bySearch[0].ID)

	none, err := svc.List(ctx, QuestionFilter{Search: "no such phrase anywhere"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListMineSkipsDeletedQuestions(t *testing.T) {
	store := memory.New()
	logger := zap.NewNop()
	repo := repos.NewQuestionRepository(store)
	svc := NewQAService(repo, messaging.NewNoopBus(logger), config.NewDynamic(config.Policies{}), logger)
	ctx := context.Background()

	kept, err := svc.Submit(ctx, "u1", "kept question", "", false)
	require.NoError(t, err)

	// Record an id that was never stored alongside the real one.
	ids, err := repo.AskedIDs(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, repo.PutAskedIDs(ctx, "u1", append(ids, "q-gone")))

	mine, err := svc.ListMine(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, kept.ID, mine[0].ID)
}

func TestSaveAnswerSetsAndClears(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})
	ctx := context.Background()

	q, err := svc.Submit(ctx, "u1", "needs an answer", "", false)
	require.NoError(t, err)

	answered, err := svc.SaveAnswer(ctx, q.ID, "Dr. Amina Hassan", "Yes, this is common.")
	require.NoError(t, err)
	assert.Equal(t, entities.QuestionAnswered, answered.Status)
	assert.Equal(t, "Yes, this is common.", answered.Answer)
	assert.Equal(t, "Dr. Amina Hassan", answered.AnsweredBy)
	require.NotNil(t, answered.AnsweredAt)

	cleared, err := svc.SaveAnswer(ctx, q.ID, "Dr. Amina Hassan", "")
	require.NoError(t, err)
	assert.Equal(t, entities.QuestionPending, cleared.Status)
	assert.Empty(t, cleared.Answer)
	assert.Empty(t, cleared.AnsweredBy)
	assert.Nil(t, cleared.AnsweredAt)
}

func TestSaveAnswerMissingQuestion(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})

	_, err := svc.SaveAnswer(context.Background(), "q-missing", "mod", "text")
	assert.Error(t, err)
}

func TestMarkAnsweredRetainsText(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})
	ctx := context.Background()

	q, err := svc.Submit(ctx, "u1", "draft flow", "", false)
	require.NoError(t, err)
	_, err = svc.SaveAnswer(ctx, q.ID, "mod", "draft answer")
	require.NoError(t, err)

	// Unpublish: status flips back but the draft survives.
	unpublished, err := svc.MarkAnswered(ctx, q.ID, "mod", false)
	require.NoError(t, err)
	assert.Equal(t, entities.QuestionPending, unpublished.Status)
	assert.Equal(t, "draft answer", unpublished.Answer)

	republished, err := svc.MarkAnswered(ctx, q.ID, "mod", true)
	require.NoError(t, err)
	assert.Equal(t, entities.QuestionAnswered, republished.Status)
	assert.Equal(t, "draft answer", republished.Answer)
	assert.NotNil(t, republished.AnsweredAt)
}

func TestMarkAnsweredSetsTimestampOnce(t *testing.T) {
	svc := newQAService(t, config.Policies{QASeed: false})
	ctx := context.Background()

	q, err := svc.Submit(ctx, "u1", "timestamp check", "", false)
	require.NoError(t, err)

	first, err := svc.MarkAnswered(ctx, q.ID, "mod", true)
	require.NoError(t, err)
	require.NotNil(t, first.AnsweredAt)
	stamp := *first.AnsweredAt

	again, err := svc.MarkAnswered(ctx, q.ID, "mod", true)
	require.NoError(t, err)
	require.NotNil(t, again.AnsweredAt)
	assert.True(t, stamp.Equal(*again.AnsweredAt), "timestamp must not move on repeat calls")
}

// failingQuestionRepo errors on every call, standing in for an unreachable
// store.
type failingQuestionRepo struct{}

var errQuestionStoreDown = errors.New("store unreachable")

func (failingQuestionRepo) Put(ctx context.Context, question entities.Question) error {
	return errQuestionStoreDown
}
func (failingQuestionRepo) Get(ctx context.Context, id string) (*entities.Question, error) {
	return nil, errQuestionStoreDown
}
func (failingQuestionRepo) All(ctx context.Context) ([]entities.Question, error) {
	return nil, errQuestionStoreDown
}
func (failingQuestionRepo) AskedIDs(ctx context.Context, userID string) ([]string, error) {
	return nil, errQuestionStoreDown
}
func (failingQuestionRepo) PutAskedIDs(ctx context.Context, userID string, ids []string) error {
	return errQuestionStoreDown
}

var _ ports.QuestionRepository = failingQuestionRepo{}

func TestListFailsClosedOnStoreFailure(t *testing.T) {
	logger := zap.NewNop()
	svc := NewQAService(failingQuestionRepo{}, messaging.NewNoopBus(logger), config.NewDynamic(config.DefaultPolicies()), logger)

	questions, err := svc.List(context.Background(), QuestionFilter{})
	assert.Error(t, err)
	assert.Empty(t, questions)
}
