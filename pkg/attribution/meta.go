package attribution

import "strings"

// IsMetaTool reports whether the tool name marks a project-management
// call (feature creation, status queries, plan updates) rather than a
// code change. Prefixes come from configuration; the default is
// "mcp__ijoka__".
func IsMetaTool(toolName string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(toolName, prefix) {
			return true
		}
	}
	return false
}

// IsMetaBashCommand reports whether a Bash command invokes the ijoka CLI
// itself (also project management, not code change).
func IsMetaBashCommand(command string) bool {
	cmd := strings.TrimSpace(command)
	return strings.HasPrefix(cmd, "ijoka ") || strings.Contains(cmd, " ijoka ")
}

// IsDiagnostic reports whether a tool call read-only inspects ijoka's own
// state (hook logs, queries against ijoka tables). Diagnostic events are
// stored with their session but linked to no feature.
func IsDiagnostic(toolName, filePath, command string) bool {
	switch toolName {
	case "Bash":
		cmd := strings.ToLower(command)
		if strings.Contains(cmd, "ijoka") &&
			(strings.Contains(cmd, "psql") || strings.Contains(cmd, "sqlite3") || strings.Contains(cmd, "select ")) {
			return true
		}
		if strings.Contains(cmd, "select ") &&
			(strings.Contains(cmd, "features") || strings.Contains(cmd, "hook_events") || strings.Contains(cmd, "agent_sessions")) {
			return true
		}
		if strings.Contains(cmd, "hook") &&
			(strings.Contains(cmd, "cat ") || strings.Contains(cmd, "tail ") ||
				strings.Contains(cmd, "head ") || strings.Contains(cmd, "grep ")) {
			return true
		}
	case "Read":
		p := strings.ToLower(filePath)
		if strings.Contains(p, ".ijoka") || strings.Contains(p, "hook") {
			return true
		}
	}
	return false
}
