package attribution

import (
	"regexp"
	"strings"
)

// Completion criteria types.
const (
	CriteriaBuild      = "build"
	CriteriaTest       = "test"
	CriteriaLint       = "lint"
	CriteriaAnySuccess = "any_success"
	CriteriaWorkCount  = "work_count"
	CriteriaManual     = "manual"
)

var (
	buildKeywords = []string{"build", "compile", "cargo build", "pnpm build", "npm run build"}
	testKeywords  = []string{"test", "pytest", "jest", "vitest", "cargo test"}
	lintKeywords  = []string{"lint", "eslint", "prettier", "clippy"}
)

// Criteria is a feature's parsed completion rule. Absent criteria and
// type "manual" both mean auto-completion is disabled.
type Criteria struct {
	Type           string
	Count          int
	CommandPattern string
}

// ParseCriteria decodes the completion_criteria JSON stored on a feature.
// Returns nil when the map is empty or the rule is manual.
func ParseCriteria(raw map[string]interface{}) *Criteria {
	if len(raw) == 0 {
		return nil
	}
	c := &Criteria{}
	if v, ok := raw["type"].(string); ok {
		c.Type = v
	}
	if c.Type == "" || c.Type == CriteriaManual {
		return nil
	}
	switch v := raw["count"].(type) {
	case float64:
		c.Count = int(v)
	case int:
		c.Count = v
	}
	if v, ok := raw["command_pattern"].(string); ok {
		c.CommandPattern = v
	}
	return c
}

// Matches evaluates the criteria against a just-ingested event.
// workCount is the feature's counter after linking the event.
// defaultCount backs the work_count rule when no count was configured.
func (c *Criteria) Matches(toolName, command string, success bool, workCount, defaultCount int) bool {
	if c == nil {
		return false
	}
	switch c.Type {
	case CriteriaBuild:
		return success && toolName == "Bash" && (containsAny(command, buildKeywords) || c.matchesPattern(command))
	case CriteriaTest:
		return success && toolName == "Bash" && containsAny(command, testKeywords)
	case CriteriaLint:
		return success && toolName == "Bash" && containsAny(command, lintKeywords)
	case CriteriaAnySuccess:
		return success && (toolName == "Edit" || toolName == "Write" || toolName == "Bash")
	case CriteriaWorkCount:
		threshold := c.Count
		if threshold <= 0 {
			threshold = defaultCount
		}
		return workCount >= threshold
	}
	return false
}

func (c *Criteria) matchesPattern(command string) bool {
	if c.CommandPattern == "" {
		return false
	}
	re, err := regexp.Compile(c.CommandPattern)
	if err != nil {
		return false
	}
	return re.MatchString(command)
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
