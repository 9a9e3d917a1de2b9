// Package config provides environment-driven runtime configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults for tunables. All can be overridden via environment variables.
const (
	DefaultHTTPPort            = "8414"
	DefaultStaleThreshold      = 30 * time.Minute
	DefaultRequestTimeout      = 30 * time.Second
	DefaultWorkCountThreshold  = 3
	DefaultCommitReminderEdits = 5
	DefaultDiscoverLookback    = 60 * time.Minute
	DefaultShellCacheLimit     = 50
)

// defaultWorkTools is the whitelist of tool names that count as "work":
// events from these tools fall back to the session-work feature when no
// user-defined feature matches, and are eligible for discover
// re-attribution.
var defaultWorkTools = []string{
	"Edit", "Write", "Read", "Bash", "Grep", "Glob", "Task", "TodoWrite",
	"WebSearch", "WebFetch", "NotebookEdit", "MultiEdit",
}

// Config holds all runtime configuration for the server, CLI, and hook
// adapter.
type Config struct {
	// HTTPPort is the API server listen port.
	HTTPPort string

	// APIBaseURL is where the CLI and hook adapter reach the server.
	APIBaseURL string

	// StaleThreshold is how long a session may be silent before its claim
	// can be silently overridden.
	StaleThreshold time.Duration

	// RequestTimeout bounds every adapter request.
	RequestTimeout time.Duration

	// WorkTools is the work-tool whitelist (see defaultWorkTools).
	WorkTools []string

	// MetaToolPrefixes marks tools whose calls are project management
	// rather than code change; such events attribute to session-work.
	MetaToolPrefixes []string

	// WorkCountThreshold is the default count for work_count completion
	// criteria.
	WorkCountThreshold int

	// CommitReminderEdits is how many Edit/Write events without a git
	// commit trigger the commit_reminder nudge.
	CommitReminderEdits int

	// DiscoverLookback is the default re-attribution window.
	DiscoverLookback time.Duration

	// ShellCacheLimit bounds ~/.ijoka/background_shells.json.
	ShellCacheLimit int
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:            getEnv("IJOKA_HTTP_PORT", DefaultHTTPPort),
		StaleThreshold:      DefaultStaleThreshold,
		RequestTimeout:      DefaultRequestTimeout,
		WorkTools:           defaultWorkTools,
		MetaToolPrefixes:    []string{"mcp__ijoka__"},
		WorkCountThreshold:  DefaultWorkCountThreshold,
		CommitReminderEdits: DefaultCommitReminderEdits,
		DiscoverLookback:    DefaultDiscoverLookback,
		ShellCacheLimit:     DefaultShellCacheLimit,
	}
	cfg.APIBaseURL = getEnv("IJOKA_API_URL", "http://localhost:"+cfg.HTTPPort)

	if v := os.Getenv("IJOKA_STALE_THRESHOLD_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid IJOKA_STALE_THRESHOLD_MINUTES %q", v)
		}
		cfg.StaleThreshold = time.Duration(minutes) * time.Minute
	}

	if v := os.Getenv("IJOKA_META_TOOL_PREFIXES"); v != "" {
		cfg.MetaToolPrefixes = splitList(v)
	}

	if v := os.Getenv("IJOKA_WORK_TOOLS"); v != "" {
		cfg.WorkTools = splitList(v)
	}

	if v := os.Getenv("IJOKA_COMMIT_REMINDER_EDITS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid IJOKA_COMMIT_REMINDER_EDITS %q", v)
		}
		cfg.CommitReminderEdits = n
	}

	return cfg, nil
}

// IsWorkTool reports whether name is in the work-tool whitelist.
func (c *Config) IsWorkTool(name string) bool {
	for _, t := range c.WorkTools {
		if t == name {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
