// Package memory provides an in-memory record store used by tests and local
// runs. Semantics match the DynamoDB store: last writer wins, ErrNotFound
// for absence, prefix scans with unspecified order.
package memory

import (
	"context"
	"strings"
	"sync"

	"ejama-backend/infrastructure/persistence"
)

// Store is a mutex-guarded in-memory record store.
type Store struct {
	mu sync.RWMutex
	// partition -> sort key -> payload
	partitions map[string]map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		partitions: make(map[string]map[string][]byte),
	}
}

// Get returns the record under key, or persistence.ErrNotFound.
func (s *Store) Get(ctx context.Context, key persistence.Key) (*persistence.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partition, ok := s.partitions[key.PartitionKey]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	data, ok := partition[key.SortKey]
	if !ok {
		return nil, persistence.ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return &persistence.Record{Key: key, Data: out}, nil
}

// Put upserts the record.
func (s *Store) Put(ctx context.Context, record persistence.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partition, ok := s.partitions[record.Key.PartitionKey]
	if !ok {
		partition = make(map[string][]byte)
		s.partitions[record.Key.PartitionKey] = partition
	}

	data := make([]byte, len(record.Data))
	copy(data, record.Data)
	partition[record.Key.SortKey] = data
	return nil
}

// QueryPrefix returns every record in the partition whose sort key starts
// with skPrefix.
func (s *Store) QueryPrefix(ctx context.Context, partitionKey, skPrefix string) ([]persistence.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partition := s.partitions[partitionKey]
	records := make([]persistence.Record, 0, len(partition))
	for sk, data := range partition {
		if !strings.HasPrefix(sk, skPrefix) {
			continue
		}
		out := make([]byte, len(data))
		copy(out, data)
		records = append(records, persistence.Record{
			Key:  persistence.Key{PartitionKey: partitionKey, SortKey: sk},
			Data: out,
		})
	}
	return records, nil
}

// Len reports the number of stored records, for tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, partition := range s.partitions {
		n += len(partition)
	}
	return n
}
