package models

// IngestEventRequest is one hook event delivered by the adapter.
// EventID may be pre-derived by the adapter; when empty the service
// derives a deterministic ID from the other fields.
type IngestEventRequest struct {
	EventID     string                 `json:"event_id,omitempty"`
	EventType   string                 `json:"event_type"`
	SessionID   string                 `json:"session_id"`
	ProjectPath string                 `json:"project_path"`
	SourceAgent string                 `json:"source_agent"`
	ToolName    string                 `json:"tool_name,omitempty"`
	ToolUseID   string                 `json:"tool_use_id,omitempty"`
	FilePath    string                 `json:"file_path,omitempty"`
	Command     string                 `json:"command,omitempty"`
	UserPrompt  string                 `json:"user_prompt,omitempty"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
	Success     bool                   `json:"success"`
	Summary     string                 `json:"summary,omitempty"`
	IsSubagent  bool                   `json:"is_subagent,omitempty"`
	StartCommit string                 `json:"start_commit,omitempty"`
	Todos       []TodoItem             `json:"todos,omitempty"`
}

// TodoItem is one entry of a TodoWrite plan update
type TodoItem struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

// IngestEventResponse reports the attribution outcome and any nudges the
// adapter should surface to the agent
type IngestEventResponse struct {
	EventID   string   `json:"event_id"`
	FeatureID string   `json:"feature_id,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Nudges    []string `json:"nudges,omitempty"`
}

// SessionEndRequest closes a session and records its commits
type SessionEndRequest struct {
	SessionID string         `json:"session_id"`
	Commits   []CommitRecord `json:"commits,omitempty"`
}

// CommitRecord is one commit captured at session end
type CommitRecord struct {
	Hash      string `json:"hash"`
	Message   string `json:"message"`
	Author    string `json:"author,omitempty"`
	Timestamp string `json:"timestamp"`
}
