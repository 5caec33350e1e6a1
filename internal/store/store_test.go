package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contract exercises the Store behavior both backends must share.
func contract(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := s.Get(ctx, "s4j:nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "s4j:greeting", []byte(`{"hello":"world"}`)))
		got, err := s.Get(ctx, "s4j:greeting")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"hello":"world"}`), got)
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "s4j:counter", []byte("1")))
		require.NoError(t, s.Put(ctx, "s4j:counter", []byte("2")))
		got, err := s.Get(ctx, "s4j:counter")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), got)
	})

	t.Run("delete removes, twice is fine", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "s4j:gone", []byte("x")))
		require.NoError(t, s.Delete(ctx, "s4j:gone"))
		_, err := s.Get(ctx, "s4j:gone")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, s.Delete(ctx, "s4j:gone"))
	})

	t.Run("keys lists only the prefix", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "s4j:a", []byte("1")))
		require.NoError(t, s.Put(ctx, "s4j:b", []byte("2")))
		require.NoError(t, s.Put(ctx, "other:c", []byte("3")))

		keys, err := s.Keys(ctx, "s4j:")
		require.NoError(t, err)
		assert.Contains(t, keys, "s4j:a")
		assert.Contains(t, keys, "s4j:b")
		assert.NotContains(t, keys, "other:c")
	})

	t.Run("wipe clears the namespace and nothing else", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "s4j:x", []byte("1")))
		require.NoError(t, s.Put(ctx, "keep:y", []byte("2")))

		require.NoError(t, s.WipePrefix(ctx, "s4j:"))

		keys, err := s.Keys(ctx, "s4j:")
		require.NoError(t, err)
		assert.Empty(t, keys)

		got, err := s.Get(ctx, "keep:y")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), got)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	contract(t, s)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "s4j:durable", []byte("survives")))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, "s4j:durable")
	require.NoError(t, err)
	assert.Equal(t, []byte("survives"), got)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(client)
	defer s.Close()

	contract(t, s)
}
