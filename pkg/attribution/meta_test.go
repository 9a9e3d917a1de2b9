package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMetaTool(t *testing.T) {
	prefixes := []string{"mcp__ijoka__"}

	assert.True(t, IsMetaTool("mcp__ijoka__create_feature", prefixes))
	assert.True(t, IsMetaTool("mcp__ijoka__get_status", prefixes))
	assert.False(t, IsMetaTool("Edit", prefixes))
	assert.False(t, IsMetaTool("mcp__github__create_pr", prefixes))
}

func TestIsMetaBashCommand(t *testing.T) {
	assert.True(t, IsMetaBashCommand("ijoka feature list"))
	assert.True(t, IsMetaBashCommand("cd /p && ijoka status"))
	assert.False(t, IsMetaBashCommand("go build ./..."))
}

func TestIsDiagnostic(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		filePath string
		command  string
		want     bool
	}{
		{"psql against ijoka", "Bash", "", "psql ijoka -c 'select 1'", true},
		{"select on features table", "Bash", "", `psql -c "SELECT * FROM features"`, true},
		{"tail hook log", "Bash", "", "tail -f ~/.ijoka/hooks.log", true},
		{"read ijoka state", "Read", "/home/u/.ijoka/background_shells.json", "", true},
		{"read hook script", "Read", "/p/hooks/post-tool.sh", "", true},
		{"ordinary build", "Bash", "", "go build ./...", false},
		{"ordinary read", "Read", "/p/main.go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDiagnostic(tt.toolName, tt.filePath, tt.command))
		})
	}
}
