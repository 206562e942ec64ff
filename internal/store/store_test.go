package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(KeySession, []byte(`{"username":"aldous"}`)))

	value, ok := s.Read(KeySession)
	require.True(t, ok)
	assert.JSONEq(t, `{"username":"aldous"}`, string(value))
}

func TestStore_ReadMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Read("absent")
	assert.False(t, ok)
}

func TestStore_EraseIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Write(KeySession, []byte("x")))
	require.NoError(t, s.Erase(KeySession))
	require.NoError(t, s.Erase(KeySession))

	_, ok := s.Read(KeySession)
	assert.False(t, ok)
}

func TestStore_WatchSeesOwnWrites(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := s.Watch(ctx, KeySession)
	require.NoError(t, err)

	require.NoError(t, s.Write(KeySession, []byte(`{"username":"lenina"}`)))

	select {
	case c := <-changes:
		assert.Equal(t, KeySession, c.Key)
		assert.JSONEq(t, `{"username":"lenina"}`, string(c.Value))
	case <-time.After(2 * time.Second):
		t.Fatal("no change delivered")
	}
}

func TestStore_WatchSeesWritesFromAnotherInstance(t *testing.T) {
	dir := t.TempDir()

	first, err := New(dir)
	require.NoError(t, err)
	second, err := New(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := first.Watch(ctx, KeySession)
	require.NoError(t, err)

	require.NoError(t, second.Write(KeySession, []byte(`{"username":"bernard"}`)))

	select {
	case c := <-changes:
		assert.JSONEq(t, `{"username":"bernard"}`, string(c.Value))
	case <-time.After(2 * time.Second):
		t.Fatal("no cross-instance change delivered")
	}
}

func TestStore_WatchClosesOnCancel(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := s.Watch(ctx, KeySession)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-changes:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
