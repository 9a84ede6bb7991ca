package rfid

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleTag() Tag {
	return Tag{
		Type:      DefaultCatalog[0].Type,
		Frequency: DefaultCatalog[0].Frequency,
		UID:       DefaultCatalog[0].UID,
		Source:    "Gate 3",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, "", 50*time.Second)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleTag()))

	got, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleTag(), got)

	raw, err := mr.Get(DefaultRedisKey)
	require.NoError(t, err)
	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "Gate 3", stored["source"])
	assert.Equal(t, "2026-03-01T12:00:00Z", stored["timestamp"])

	assert.Equal(t, 50*time.Second, mr.TTL(DefaultRedisKey))
}

func TestRedisStoreMissingKey(t *testing.T) {
	_, client := newTestRedis(t)
	_, err := NewRedisStore(client, "", time.Minute).Latest(context.Background())
	assert.ErrorIs(t, err, ErrNoTag)
}

func TestRedisStoreExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, "", 10*time.Second)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleTag()))
	mr.FastForward(11 * time.Second)

	_, err := store.Latest(ctx)
	assert.ErrorIs(t, err, ErrNoTag)
}

func TestFallbackStore(t *testing.T) {
	ctx := context.Background()

	t.Run("reads local copy when redis fails", func(t *testing.T) {
		mr, client := newTestRedis(t)
		local := NewMemoryStore()
		store := NewFallbackStore(NewRedisStore(client, "", time.Minute), local)
		require.NoError(t, local.Save(ctx, sampleTag()))

		mr.SetError("LOADING dataset in memory")
		got, err := store.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleTag().UID, got.UID)
	})

	t.Run("no tag in redis is not a failure", func(t *testing.T) {
		_, client := newTestRedis(t)
		local := NewMemoryStore()
		require.NoError(t, local.Save(ctx, sampleTag()))

		_, err := NewFallbackStore(NewRedisStore(client, "", time.Minute), local).Latest(ctx)
		assert.ErrorIs(t, err, ErrNoTag)
	})

	t.Run("save reaches the secondary when primary fails", func(t *testing.T) {
		local := NewMemoryStore()
		err := NewFallbackStore(failingStore{}, local).Save(ctx, sampleTag())
		assert.Error(t, err)

		got, err := local.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleTag().UID, got.UID)
	})
}
