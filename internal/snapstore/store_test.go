package snapstore

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/stackrank/schema"
	"github.com/stretchr/testify/assert"
)

// newSQLiteStore opens a store against a throwaway database file.
func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(schema.SQLiteBackend, filepath.Join(t.TempDir(), "snapshots.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	value, ok, err := store.Get("missing")
	assert.NoError(t, err)
	assert.False(t, ok, "a miss is ok=false, not an error")
	assert.Nil(t, value)

	assert.NoError(t, store.Set("k1", []byte(`{"total_pipeline":1500}`), 1700000000))

	value, ok, err = store.Get("k1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"total_pipeline":1500}`), value)
}

func TestSQLiteStoreUpsert(t *testing.T) {
	store := newSQLiteStore(t)

	assert.NoError(t, store.Set("k1", []byte("old"), 1))
	assert.NoError(t, store.Set("k1", []byte("new"), 2))

	value, ok, err := store.Get("k1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), value)

	count, err := store.Count()
	assert.NoError(t, err)
	assert.Equal(t, 1, count, "same key replaces, never duplicates")
}

func TestSQLiteStoreCountAndClear(t *testing.T) {
	store := newSQLiteStore(t)

	assert.NoError(t, store.Set("k1", []byte("a"), 1))
	assert.NoError(t, store.Set("k2", []byte("b"), 2))

	count, err := store.Count()
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NoError(t, store.Clear())
	count, err = store.Count()
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestNoneBackendIsNoOp(t *testing.T) {
	store, err := New(schema.NoneBackend, "")
	assert.NoError(t, err)

	assert.NoError(t, store.Set("k", []byte("v"), 1))
	_, ok, err := store.Get("k")
	assert.NoError(t, err)
	assert.False(t, ok, "the none backend never stores anything")

	count, err := store.Count()
	assert.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	_, err := New(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}
