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

func newPeriodService(t *testing.T) *PeriodService {
	t.Helper()
	return NewPeriodService(repos.NewPeriodRepository(memory.New()), zap.NewNop())
}

func TestLogRequiresStartDate(t *testing.T) {
	svc := newPeriodService(t)

	err := svc.Log(context.Background(), "u1", entities.PeriodLog{Flow: "medium"})
	assert.Error(t, err)
}

func TestLogSetsCallerAsOwner(t *testing.T) {
	svc := newPeriodService(t)
	ctx := context.Background()

	// The userId in the payload is ignored in favor of the caller.
	err := svc.Log(ctx, "u1", entities.PeriodLog{UserID: "someone-else", StartDate: "2025-08-01"})
	require.NoError(t, err)

	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "u1", history[0].UserID)
}

func TestHistoryOrderedByStartDate(t *testing.T) {
	svc := newPeriodService(t)
	ctx := context.Background()

	for _, start := range []string{"2025-08-01", "2025-06-03", "2025-07-02"} {
		require.NoError(t, svc.Log(ctx, "u1", entities.PeriodLog{StartDate: start}))
	}

	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-06-03", history[0].StartDate)
	assert.Equal(t, "2025-07-02", history[1].StartDate)
	assert.Equal(t, "2025-08-01", history[2].StartDate)
}

func TestRelogSameStartDateOverwrites(t *testing.T) {
	svc := newPeriodService(t)
	ctx := context.Background()

	require.NoError(t, svc.Log(ctx, "u1", entities.PeriodLog{StartDate: "2025-08-01", Flow: "light"}))
	require.NoError(t, svc.Log(ctx, "u1", entities.PeriodLog{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-06",
		Flow:      "heavy",
		Symptoms:  []string{"cramps", "fatigue"},
	}))

	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "heavy", history[0].Flow)
	assert.Equal(t, "2025-08-06", history[0].EndDate)
	assert.Equal(t, []string{"cramps", "fatigue"}, history[0].Symptoms)
}

func TestHistoryScopedToUser(t *testing.T) {
	svc := newPeriodService(t)
	ctx := context.Background()

	require.NoError(t, svc.Log(ctx, "u1", entities.PeriodLog{StartDate: "2025-08-01"}))

	history, err := svc.History(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, history)
}
