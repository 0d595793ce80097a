package repos

import (
	"context"
	"sort"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence"
)

const periodPrefix = "PERIOD#"

// PeriodRepository persists per-user period logs keyed by start date, so
// re-logging a start date overwrites the earlier entry.
type PeriodRepository struct {
	store persistence.Store
}

// NewPeriodRepository creates a period repository over the store.
func NewPeriodRepository(store persistence.Store) *PeriodRepository {
	return &PeriodRepository{store: store}
}

var _ ports.PeriodRepository = (*PeriodRepository)(nil)

func periodKey(userID, startDate string) persistence.Key {
	return persistence.Key{PartitionKey: userPartition(userID), SortKey: periodPrefix + startDate}
}

// Put upserts a period log.
func (r *PeriodRepository) Put(ctx context.Context, log entities.PeriodLog) error {
	return putJSON(ctx, r.store, periodKey(log.UserID, log.StartDate), log)
}

// History returns every logged period for the user.
func (r *PeriodRepository) History(ctx context.Context, userID string) ([]entities.PeriodLog, error) {
	records, err := r.store.QueryPrefix(ctx, userPartition(userID), periodPrefix)
	if err != nil {
		return nil, dbError("scan periods", err)
	}
	logs := make([]entities.PeriodLog, 0, len(records))
	for _, record := range records {
		var log entities.PeriodLog
		if err := decodeValidated(record.Key, record.Data, &log); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	// Scan order is unspecified; present history in date order.
	sort.Slice(logs, func(i, j int) bool { return logs[i].StartDate < logs[j].StartDate })
	return logs, nil
}
