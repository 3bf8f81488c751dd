package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
	assert.Equal(t, dbPath, store.Path())
}

func TestLookupMissAndHit(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Lookup("/src/a.rs", 100, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(Entry{
		Path: "/src/a.rs", Size: 100, MTimeNS: 42, Ext: "rs", Lines: 7,
	}))

	lines, ok, err := store.Lookup("/src/a.rs", 100, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), lines)
}

func TestLookupInvalidatedByChange(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(Entry{
		Path: "/src/a.rs", Size: 100, MTimeNS: 42, Ext: "rs", Lines: 7,
	}))

	t.Run("size changed", func(t *testing.T) {
		_, ok, err := store.Lookup("/src/a.rs", 101, 42)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("mtime changed", func(t *testing.T) {
		_, ok, err := store.Lookup("/src/a.rs", 100, 43)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPutUpserts(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(Entry{
		Path: "/src/a.rs", Size: 100, MTimeNS: 42, Ext: "rs", Lines: 7,
	}))
	require.NoError(t, store.Put(Entry{
		Path: "/src/a.rs", Size: 120, MTimeNS: 99, Ext: "rs", Lines: 11,
	}))

	lines, ok, err := store.Lookup("/src/a.rs", 120, 99)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(11), lines)

	// stale row is gone, not shadowed
	_, ok, err = store.Lookup("/src/a.rs", 100, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)

	tmpDir := t.TempDir()
	alive := filepath.Join(tmpDir, "alive.rs")
	require.NoError(t, os.WriteFile(alive, []byte("fn main() {}\n"), 0644))

	require.NoError(t, store.Put(Entry{Path: alive, Size: 13, MTimeNS: 1, Ext: "rs", Lines: 1}))
	require.NoError(t, store.Put(Entry{
		Path: filepath.Join(tmpDir, "deleted.rs"), Size: 5, MTimeNS: 2, Ext: "rs", Lines: 3,
	}))

	removed, err := store.Prune()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, ok, err := store.Lookup(alive, 13, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenInMemory(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(Entry{Path: "/x.go", Size: 1, MTimeNS: 1, Ext: "go", Lines: 1}))
	_, ok, err := store.Lookup("/x.go", 1, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}
