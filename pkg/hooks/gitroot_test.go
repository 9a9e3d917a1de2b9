package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProjectPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	nested := filepath.Join(root, "internal", "auth")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	// File inside the repo resolves to the git root
	got := ResolveProjectPath(filepath.Join(nested, "login.go"), "/elsewhere")
	assert.Equal(t, root, got)

	// No file: cwd's git root wins
	got = ResolveProjectPath("", nested)
	assert.Equal(t, root, got)

	// Nothing resolvable: the env override applies
	outside := t.TempDir()
	t.Setenv("IJOKA_PROJECT_DIR", "/configured/project")
	got = ResolveProjectPath("", outside)
	assert.Equal(t, "/configured/project", got)

	// Without the override, fall back to cwd as-is
	t.Setenv("IJOKA_PROJECT_DIR", "")
	got = ResolveProjectPath("", outside)
	assert.Equal(t, outside, got)
}

func TestFindGitRoot_NoRepo(t *testing.T) {
	assert.Equal(t, "", findGitRoot(t.TempDir()))
}
