package attribution

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/google/uuid"
)

// Deterministic event IDs make ingestion idempotent: re-delivery of the
// same hook event upserts the same row instead of creating a duplicate.

// ToolCallEventID uses the agent-supplied tool_use_id when present.
func ToolCallEventID(toolUseID string) string {
	if toolUseID != "" {
		return toolUseID
	}
	return uuid.New().String()
}

// AgentStopEventID derives a per-session stop ID. A session stops many
// times; the latest delivery refreshes the same row.
func AgentStopEventID(sessionID string) string {
	return sessionID + "-AgentStop"
}

// UserQueryEventID derives an ID from the session and a short content
// hash of the prompt, so the same prompt re-delivered is deduplicated
// while distinct prompts in one session stay distinct.
func UserQueryEventID(sessionID, prompt string) string {
	sum := md5.Sum([]byte(prompt))
	return sessionID + "-UserQuery-" + hex.EncodeToString(sum[:])[:8]
}

// SessionMarkerEventID derives IDs for SessionStart/SessionEnd markers.
func SessionMarkerEventID(sessionID, eventType string) string {
	return sessionID + "-" + eventType
}
