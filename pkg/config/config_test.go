package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPPort, cfg.HTTPPort)
	assert.Equal(t, DefaultStaleThreshold, cfg.StaleThreshold)
	assert.Equal(t, []string{"mcp__ijoka__"}, cfg.MetaToolPrefixes)
	assert.True(t, cfg.IsWorkTool("Edit"))
	assert.True(t, cfg.IsWorkTool("TodoWrite"))
	assert.False(t, cfg.IsWorkTool("UnknownTool"))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IJOKA_STALE_THRESHOLD_MINUTES", "10")
	t.Setenv("IJOKA_META_TOOL_PREFIXES", "mcp__ijoka__, mcp__tracker__")
	t.Setenv("IJOKA_WORK_TOOLS", "Edit,Write")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10m0s", cfg.StaleThreshold.String())
	assert.Equal(t, []string{"mcp__ijoka__", "mcp__tracker__"}, cfg.MetaToolPrefixes)
	assert.True(t, cfg.IsWorkTool("Edit"))
	assert.False(t, cfg.IsWorkTool("Bash"))
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("IJOKA_STALE_THRESHOLD_MINUTES", "zero")
	_, err := Load()
	require.Error(t, err)
}
