package hooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	input, err := ParseInput(strings.NewReader(`{
		"hook_type": "PostToolUse",
		"session_id": "sess-1",
		"cwd": "/work/repo",
		"tool_name": "Edit",
		"tool_use_id": "tu-1",
		"tool_input": {"file_path": "/work/repo/main.go", "old_string": "a", "new_string": "b"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, HookPostToolUse, input.HookType)
	assert.Equal(t, "sess-1", input.SessionID)
	assert.Equal(t, "Edit", input.ToolName)

	_, err = ParseInput(strings.NewReader(`not json`))
	assert.Error(t, err)

	_, err = ParseInput(strings.NewReader(`{"session_id": "s"}`))
	assert.Error(t, err)

	_, err = ParseInput(strings.NewReader(`{"hook_type": "Stop"}`))
	assert.Error(t, err)
}

func TestBuildEventRequest_ToolCall(t *testing.T) {
	input := &HookInput{
		HookType:  HookPostToolUse,
		SessionID: "sess-1",
		ToolName:  "Edit",
		ToolUseID: "tu-1",
		ToolInput: map[string]interface{}{
			"file_path":  "/work/repo/internal/auth/login.go",
			"old_string": "x",
		},
	}

	req, err := BuildEventRequest(input, "/work/repo", "claude-code")
	require.NoError(t, err)
	assert.Equal(t, "ToolCall", req.EventType)
	assert.Equal(t, "/work/repo", req.ProjectPath)
	assert.Equal(t, "claude-code", req.SourceAgent)
	assert.Equal(t, "/work/repo/internal/auth/login.go", req.FilePath)
	assert.True(t, req.Success)
	assert.False(t, req.IsSubagent)
}

func TestBuildEventRequest_ToolErrorMeansFailure(t *testing.T) {
	input := &HookInput{
		HookType:     HookPostToolUse,
		SessionID:    "sess-1",
		ToolName:     "Bash",
		ToolInput:    map[string]interface{}{"command": "go test ./..."},
		ToolResponse: map[string]interface{}{"is_error": true},
	}

	req, err := BuildEventRequest(input, "/work/repo", "claude-code")
	require.NoError(t, err)
	assert.False(t, req.Success)
	assert.Equal(t, "go test ./...", req.Command)
}

func TestBuildEventRequest_TodoWriteBecomesPlanUpdate(t *testing.T) {
	input := &HookInput{
		HookType:  HookPostToolUse,
		SessionID: "sess-1",
		ToolName:  "TodoWrite",
		ToolInput: map[string]interface{}{
			"todos": []interface{}{
				map[string]interface{}{"content": "first task", "status": "completed"},
				map[string]interface{}{"content": "second task", "status": "in_progress"},
				map[string]interface{}{"status": "pending"},
				"garbage",
			},
		},
	}

	req, err := BuildEventRequest(input, "/work/repo", "claude-code")
	require.NoError(t, err)
	assert.Equal(t, "PlanUpdate", req.EventType)
	require.Len(t, req.Todos, 2, "entries without content are dropped")
	assert.Equal(t, "first task", req.Todos[0].Content)
	assert.Equal(t, "completed", req.Todos[0].Status)
}

func TestBuildEventRequest_HookTypeMapping(t *testing.T) {
	cases := map[string]string{
		HookSessionStart:     "SessionStart",
		HookSessionEnd:       "SessionEnd",
		HookUserPromptSubmit: "UserQuery",
		HookStop:             "AgentStop",
		HookSubagentStop:     "SubagentStop",
	}
	for hookType, want := range cases {
		req, err := BuildEventRequest(&HookInput{HookType: hookType, SessionID: "s"}, "/p", "claude-code")
		require.NoError(t, err)
		assert.Equal(t, want, req.EventType)
	}

	subagent, err := BuildEventRequest(&HookInput{HookType: HookSubagentStop, SessionID: "s"}, "/p", "claude-code")
	require.NoError(t, err)
	assert.True(t, subagent.IsSubagent)

	_, err = BuildEventRequest(&HookInput{HookType: "Mystery", SessionID: "s"}, "/p", "claude-code")
	assert.Error(t, err)
}
