package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ejama-backend/infrastructure/persistence"
)

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := New()

	_, err := store.Get(context.Background(), persistence.Key{PartitionKey: "COMMUNITY", SortKey: "CATEGORY#c-1"})
	assert.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestPutGetRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()
	key := persistence.Key{PartitionKey: "USER#u1", SortKey: "JOINED"}

	require.NoError(t, store.Put(ctx, persistence.Record{Key: key, Data: []byte(`["c-1"]`)}))

	record, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["c-1"]`), record.Data)
}

func TestPutOverwrites(t *testing.T) {
	store := New()
	ctx := context.Background()
	key := persistence.Key{PartitionKey: "QA", SortKey: "QUESTION#q-1"}

	require.NoError(t, store.Put(ctx, persistence.Record{Key: key, Data: []byte(`{"v":1}`)}))
	require.NoError(t, store.Put(ctx, persistence.Record{Key: key, Data: []byte(`{"v":2}`)}))

	record, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), record.Data)
	assert.Equal(t, 1, store.Len())
}

func TestQueryPrefixIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()

	put := func(pk, sk string) {
		require.NoError(t, store.Put(ctx, persistence.Record{
			Key:  persistence.Key{PartitionKey: pk, SortKey: sk},
			Data: []byte(`{}`),
		}))
	}

	put("COMMUNITY", "CATEGORY#c-1")
	put("COMMUNITY", "CATEGORY#c-2")
	put("COMMUNITY", "THREAD#t-1")
	put("USER#u1", "CATEGORY#c-1") // same sort key, other partition

	records, err := store.QueryPrefix(ctx, "COMMUNITY", "CATEGORY#")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "COMMUNITY", record.Key.PartitionKey)
	}

	records, err = store.QueryPrefix(ctx, "COMMUNITY", "THREAD#")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = store.QueryPrefix(ctx, "PERIOD", "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDataIsCopiedInAndOut(t *testing.T) {
	store := New()
	ctx := context.Background()
	key := persistence.Key{PartitionKey: "FEEDBACK", SortKey: "ENTRY#1"}

	payload := []byte(`{"topic":"app"}`)
	require.NoError(t, store.Put(ctx, persistence.Record{Key: key, Data: payload}))
	payload[2] = 'X'

	record, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"topic":"app"}`), record.Data)

	record.Data[2] = 'Y'
	again, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"topic":"app"}`), again.Data)
}
