package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicEventIDs(t *testing.T) {
	t.Run("tool call uses tool_use_id", func(t *testing.T) {
		assert.Equal(t, "toolu_123", ToolCallEventID("toolu_123"))
	})

	t.Run("tool call without id gets a fresh one", func(t *testing.T) {
		a := ToolCallEventID("")
		b := ToolCallEventID("")
		assert.NotEmpty(t, a)
		assert.NotEqual(t, a, b)
	})

	t.Run("agent stop is per session", func(t *testing.T) {
		assert.Equal(t, "s1-AgentStop", AgentStopEventID("s1"))
	})

	t.Run("user query hashes the prompt", func(t *testing.T) {
		a := UserQueryEventID("s1", "hello")
		b := UserQueryEventID("s1", "hello")
		c := UserQueryEventID("s1", "different prompt")
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, c)
		assert.Contains(t, a, "s1-UserQuery-")
		assert.Len(t, a, len("s1-UserQuery-")+8)
	})
}
