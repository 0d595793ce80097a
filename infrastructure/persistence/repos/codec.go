// Package repos contains the typed repositories built on the record store.
// All key construction lives here; values are decoded into tagged structs
// and validated on the way out of the store, so malformed records fail fast
// instead of leaking zero-valued fields into the services.
package repos

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"ejama-backend/infrastructure/persistence"
	apperrors "ejama-backend/pkg/errors"
)

var validate = validator.New()

// putJSON serializes v and upserts it under key.
func putJSON(ctx context.Context, store persistence.Store, key persistence.Key, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewInternalError("encode record").WithCause(err)
	}
	if err := store.Put(ctx, persistence.Record{Key: key, Data: data}); err != nil {
		return apperrors.NewDatabaseError("put "+key.SortKey, err)
	}
	return nil
}

// getJSON loads the record under key into out. Returns false with a nil
// error when the record is absent.
func getJSON(ctx context.Context, store persistence.Store, key persistence.Key, out interface{}) (bool, error) {
	record, err := store.Get(ctx, key)
	if errors.Is(err, persistence.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewDatabaseError("get "+key.SortKey, err)
	}
	if err := json.Unmarshal(record.Data, out); err != nil {
		return false, corruptRecord(key, err)
	}
	return true, nil
}

// decodeValidated parses a scanned record payload into out and runs tag
// validation on it. Used for entity-shaped records only.
func decodeValidated(key persistence.Key, data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return corruptRecord(key, err)
	}
	if err := validate.Struct(out); err != nil {
		return corruptRecord(key, err)
	}
	return nil
}

func dbError(operation string, err error) error {
	return apperrors.NewDatabaseError(operation, err)
}

func corruptRecord(key persistence.Key, err error) error {
	return apperrors.NewDatabaseError("decode "+key.SortKey, err).WithDetails(map[string]interface{}{
		"pk": key.PartitionKey,
		"sk": key.SortKey,
	})
}
