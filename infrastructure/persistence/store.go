// Package persistence defines the generic record store the domain modules
// are built on: single-key get/put and prefix-range reads over opaque
// serialized values. No schema awareness lives at this layer; typed
// repositories own key construction and payload interpretation.
package persistence

import (
	"context"
	"errors"
)

// ErrNotFound signals an absent record. Callers must distinguish it from
// transport or storage failures, which surface as ordinary errors.
var ErrNotFound = errors.New("record not found")

// Key addresses a record. A flat logical key such as
// "community_category_c-1" maps to PartitionKey "COMMUNITY" and SortKey
// "CATEGORY#c-1"; prefix scans run within one partition over a sort-key
// prefix.
type Key struct {
	PartitionKey string
	SortKey      string
}

// Record is an opaque serialized value under a key. Data is a JSON payload;
// the store never inspects it. Writes are total overwrites.
type Record struct {
	Key  Key
	Data []byte
}

// Store is the persistence primitive shared by every domain module. The only
// consistency property implementations must provide is read-your-writes on a
// single key; there is no cross-key atomicity and scan order is unspecified.
type Store interface {
	// Get returns the record under key, or ErrNotFound.
	Get(ctx context.Context, key Key) (*Record, error)

	// Put unconditionally upserts the record. Last writer wins.
	Put(ctx context.Context, record Record) error

	// QueryPrefix returns every record in the partition whose sort key
	// starts with skPrefix, and no others. Order must not be relied upon.
	QueryPrefix(ctx context.Context, partitionKey, skPrefix string) ([]Record, error)
}
