package hooks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ShellCache persists background shell launches so later BashOutput
// polls can recover the original command for attribution. The cache is a
// small JSON file under ~/.ijoka, bounded to the newest entries.
type ShellCache struct {
	path  string
	limit int
}

type shellEntry struct {
	Command   string    `json:"command"`
	StartedAt time.Time `json:"started_at"`
}

// NewShellCache creates a cache at the given path with a maximum entry
// count.
func NewShellCache(path string, limit int) *ShellCache {
	return &ShellCache{path: path, limit: limit}
}

// DefaultShellCachePath is ~/.ijoka/background_shells.json.
func DefaultShellCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ijoka-background-shells.json")
	}
	return filepath.Join(home, ".ijoka", "background_shells.json")
}

// Record stores a background shell's command under its shell ID,
// evicting the oldest entries past the limit.
func (c *ShellCache) Record(shellID, command string) error {
	entries, err := c.load()
	if err != nil {
		return err
	}
	entries[shellID] = shellEntry{Command: command, StartedAt: time.Now()}

	if len(entries) > c.limit {
		type keyed struct {
			id    string
			entry shellEntry
		}
		all := make([]keyed, 0, len(entries))
		for id, e := range entries {
			all = append(all, keyed{id, e})
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i].entry.StartedAt.After(all[j].entry.StartedAt)
		})
		entries = make(map[string]shellEntry, c.limit)
		for _, k := range all[:c.limit] {
			entries[k.id] = k.entry
		}
	}

	return c.save(entries)
}

// Lookup returns the command recorded for a shell ID, or "".
func (c *ShellCache) Lookup(shellID string) string {
	entries, err := c.load()
	if err != nil {
		return ""
	}
	return entries[shellID].Command
}

func (c *ShellCache) load() (map[string]shellEntry, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]shellEntry{}, nil
		}
		return nil, err
	}
	entries := map[string]shellEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt cache is not worth failing a hook over
		return map[string]shellEntry{}, nil
	}
	return entries, nil
}

func (c *ShellCache) save(entries map[string]shellEntry) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
