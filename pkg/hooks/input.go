// Package hooks adapts agent hook events (JSON on stdin, one process
// invocation per event) into core API calls. The adapter is deliberately
// fail-open: agents must never be blocked by ijoka being down, so every
// failure path degrades to an empty hook response.
package hooks

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// Hook types delivered on stdin.
const (
	HookSessionStart     = "SessionStart"
	HookSessionEnd       = "SessionEnd"
	HookUserPromptSubmit = "UserPromptSubmit"
	HookPostToolUse      = "PostToolUse"
	HookStop             = "Stop"
	HookSubagentStop     = "SubagentStop"
)

// HookInput is the inbound stdin payload for one hook event.
type HookInput struct {
	HookType     string                 `json:"hook_type"`
	SessionID    string                 `json:"session_id"`
	Cwd          string                 `json:"cwd"`
	ToolName     string                 `json:"tool_name,omitempty"`
	ToolInput    map[string]interface{} `json:"tool_input,omitempty"`
	ToolResponse map[string]interface{} `json:"tool_response,omitempty"`
	ToolUseID    string                 `json:"tool_use_id,omitempty"`
	UserPrompt   string                 `json:"user_prompt,omitempty"`
	StopInput    map[string]interface{} `json:"stop_hook_input,omitempty"`
}

// ParseInput decodes the stdin payload.
func ParseInput(r io.Reader) (*HookInput, error) {
	var input HookInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode hook input: %w", err)
	}
	if input.HookType == "" {
		return nil, fmt.Errorf("hook input has no hook_type")
	}
	if input.SessionID == "" {
		return nil, fmt.Errorf("hook input has no session_id")
	}
	return &input, nil
}

// eventTypeFor maps a hook type (and tool) to the stored event type.
func eventTypeFor(input *HookInput) (string, error) {
	switch input.HookType {
	case HookPostToolUse:
		if input.ToolName == "TodoWrite" {
			return "PlanUpdate", nil
		}
		return "ToolCall", nil
	case HookUserPromptSubmit:
		return "UserQuery", nil
	case HookStop:
		return "AgentStop", nil
	case HookSubagentStop:
		return "SubagentStop", nil
	case HookSessionStart:
		return "SessionStart", nil
	case HookSessionEnd:
		return "SessionEnd", nil
	}
	return "", fmt.Errorf("unknown hook type %q", input.HookType)
}

// BuildEventRequest converts the hook input into an ingestion request.
// projectPath comes from git-root resolution, agent from configuration.
func BuildEventRequest(input *HookInput, projectPath, agent string) (models.IngestEventRequest, error) {
	eventType, err := eventTypeFor(input)
	if err != nil {
		return models.IngestEventRequest{}, err
	}

	req := models.IngestEventRequest{
		EventType:   eventType,
		SessionID:   input.SessionID,
		ProjectPath: projectPath,
		SourceAgent: agent,
		ToolName:    input.ToolName,
		ToolUseID:   input.ToolUseID,
		UserPrompt:  input.UserPrompt,
		Success:     !responseIsError(input.ToolResponse),
		IsSubagent:  input.HookType == HookSubagentStop,
	}

	if len(input.ToolInput) > 0 {
		req.Payload = input.ToolInput
		req.FilePath = stringField(input.ToolInput, "file_path")
		req.Command = stringField(input.ToolInput, "command")
		req.Todos = parseTodos(input.ToolInput["todos"])
	}

	return req, nil
}

// parseTodos decodes a TodoWrite todos array.
func parseTodos(raw interface{}) []models.TodoItem {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	todos := make([]models.TodoItem, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		todo := models.TodoItem{
			Content: stringField(m, "content"),
			Status:  stringField(m, "status"),
		}
		if todo.Content != "" {
			todos = append(todos, todo)
		}
	}
	return todos
}

func responseIsError(response map[string]interface{}) bool {
	if response == nil {
		return false
	}
	isErr, _ := response["is_error"].(bool)
	return isErr
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}
