package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	t.Run("nil and empty maps disable auto-completion", func(t *testing.T) {
		assert.Nil(t, ParseCriteria(nil))
		assert.Nil(t, ParseCriteria(map[string]interface{}{}))
	})

	t.Run("manual disables auto-completion", func(t *testing.T) {
		assert.Nil(t, ParseCriteria(map[string]interface{}{"type": "manual"}))
	})

	t.Run("work_count with JSON number", func(t *testing.T) {
		c := ParseCriteria(map[string]interface{}{"type": "work_count", "count": float64(5)})
		require.NotNil(t, c)
		assert.Equal(t, CriteriaWorkCount, c.Type)
		assert.Equal(t, 5, c.Count)
	})

	t.Run("build with command pattern", func(t *testing.T) {
		c := ParseCriteria(map[string]interface{}{"type": "build", "command_pattern": `^make\s`})
		require.NotNil(t, c)
		assert.Equal(t, `^make\s`, c.CommandPattern)
	})
}

func TestCriteriaMatches(t *testing.T) {
	tests := []struct {
		name      string
		criteria  *Criteria
		toolName  string
		command   string
		success   bool
		workCount int
		want      bool
	}{
		{"build keyword", &Criteria{Type: "build"}, "Bash", "npm run build", true, 0, true},
		{"build via pattern", &Criteria{Type: "build", CommandPattern: `^make\s`}, "Bash", "make all", true, 0, true},
		{"build failure ignored", &Criteria{Type: "build"}, "Bash", "go build ./...", false, 0, false},
		{"test keyword", &Criteria{Type: "test"}, "Bash", "cargo test --all", true, 0, true},
		{"test on non-bash ignored", &Criteria{Type: "test"}, "Edit", "test", true, 0, false},
		{"lint keyword", &Criteria{Type: "lint"}, "Bash", "npx eslint src/", true, 0, true},
		{"any_success edit", &Criteria{Type: "any_success"}, "Edit", "", true, 0, true},
		{"any_success read ignored", &Criteria{Type: "any_success"}, "Read", "", true, 0, false},
		{"work_count reached", &Criteria{Type: "work_count", Count: 3}, "Edit", "", true, 3, true},
		{"work_count not reached", &Criteria{Type: "work_count", Count: 3}, "Edit", "", true, 2, false},
		{"work_count default threshold", &Criteria{Type: "work_count"}, "Edit", "", true, 3, true},
		{"nil criteria", nil, "Bash", "go test", true, 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.criteria.Matches(tt.toolName, tt.command, tt.success, tt.workCount, 3)
			assert.Equal(t, tt.want, got)
		})
	}
}
