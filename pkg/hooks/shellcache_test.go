package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCache_RecordAndLookup(t *testing.T) {
	cache := NewShellCache(filepath.Join(t.TempDir(), "shells.json"), 10)

	require.NoError(t, cache.Record("shell-1", "npm run dev"))
	assert.Equal(t, "npm run dev", cache.Lookup("shell-1"))
	assert.Equal(t, "", cache.Lookup("shell-unknown"))

	// Re-recording overwrites
	require.NoError(t, cache.Record("shell-1", "npm run build"))
	assert.Equal(t, "npm run build", cache.Lookup("shell-1"))
}

func TestShellCache_EvictsOldestPastLimit(t *testing.T) {
	cache := NewShellCache(filepath.Join(t.TempDir(), "shells.json"), 3)

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, cache.Record(id, "cmd-"+id))
	}

	assert.Equal(t, "", cache.Lookup("a"), "oldest entry evicted")
	assert.Equal(t, "cmd-d", cache.Lookup("d"))
	assert.Equal(t, "cmd-b", cache.Lookup("b"))
}

func TestShellCache_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shells.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0o644))

	cache := NewShellCache(path, 10)
	assert.Equal(t, "", cache.Lookup("anything"))
	require.NoError(t, cache.Record("x", "echo hi"))
	assert.Equal(t, "echo hi", cache.Lookup("x"))
}
