package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ijoka-ai/ijoka/pkg/config"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// HookResponse is the stdout payload consumed by the agent runtime.
type HookResponse struct {
	HookSpecificOutput *HookOutput `json:"hookSpecificOutput,omitempty"`
}

// HookOutput carries per-event context back to the agent.
type HookOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// Runner executes one hook invocation.
type Runner struct {
	cfg    *config.Config
	client *APIClient
	shells *ShellCache
	agent  string
	logger *slog.Logger
}

// NewRunner builds a runner from configuration. Logging goes to a
// rotated file; stdout is reserved for the hook response.
func NewRunner(cfg *config.Config, agent string) *Runner {
	return &Runner{
		cfg:    cfg,
		client: NewAPIClient(cfg.APIBaseURL, cfg.RequestTimeout),
		shells: NewShellCache(DefaultShellCachePath(), cfg.ShellCacheLimit),
		agent:  agent,
		logger: newHookLogger(),
	}
}

// Run processes one hook event from stdin and writes the response to
// stdout. It never returns an error to the caller: any failure logs and
// degrades to an empty response so the agent is never blocked.
func (r *Runner) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) {
	input, err := ParseInput(stdin)
	if err != nil {
		r.logger.Error("Failed to parse hook input", "error", err)
		writeEmpty(stdout)
		return
	}

	projectPath := ResolveProjectPath(r.toolFilePath(input), input.Cwd)

	r.trackBackgroundShell(input)

	req, err := BuildEventRequest(input, projectPath, r.agent)
	if err != nil {
		r.logger.Error("Failed to build event request", "error", err, "hook_type", input.HookType)
		writeEmpty(stdout)
		return
	}
	r.enrichFromShellCache(input, &req)

	if input.HookType == HookSessionEnd {
		commits := CaptureRecentCommits(ctx, projectPath, 0)
		if err := r.client.EndSession(ctx, models.SessionEndRequest{
			SessionID: input.SessionID,
			Commits:   commits,
		}); err != nil {
			r.logger.Warn("Failed to report session end", "error", err, "session_id", input.SessionID)
		}
	}

	resp, err := r.client.PostEvent(ctx, req)
	if err != nil {
		r.logger.Error("Failed to deliver event", "error", err, "hook_type", input.HookType, "session_id", input.SessionID)
		writeEmpty(stdout)
		return
	}
	r.logger.Info("Delivered hook event",
		"hook_type", input.HookType,
		"event_id", resp.EventID,
		"feature_id", resp.FeatureID,
		"reason", resp.Reason)

	additional := strings.Join(resp.Nudges, "\n")
	if input.HookType == HookSessionStart {
		if status := r.sessionStartContext(ctx, projectPath); status != "" {
			if additional != "" {
				additional = status + "\n" + additional
			} else {
				additional = status
			}
		}
	}

	writeResponse(stdout, input.HookType, additional)
}

// toolFilePath extracts the touched file path, if any.
func (r *Runner) toolFilePath(input *HookInput) string {
	if input.ToolInput == nil {
		return ""
	}
	return stringField(input.ToolInput, "file_path")
}

// trackBackgroundShell records Bash launches with run_in_background so
// later BashOutput polls can recover the command.
func (r *Runner) trackBackgroundShell(input *HookInput) {
	if input.HookType != HookPostToolUse || input.ToolName != "Bash" {
		return
	}
	background, _ := input.ToolInput["run_in_background"].(bool)
	if !background {
		return
	}
	shellID := stringField(input.ToolResponse, "bash_id")
	command := stringField(input.ToolInput, "command")
	if shellID == "" || command == "" {
		return
	}
	if err := r.shells.Record(shellID, command); err != nil {
		r.logger.Warn("Failed to record background shell", "error", err, "bash_id", shellID)
	}
}

// enrichFromShellCache fills in the original command for BashOutput
// polls of a background shell.
func (r *Runner) enrichFromShellCache(input *HookInput, req *models.IngestEventRequest) {
	if input.ToolName != "BashOutput" || req.Command != "" {
		return
	}
	shellID := stringField(input.ToolInput, "bash_id")
	if shellID == "" {
		return
	}
	if command := r.shells.Lookup(shellID); command != "" {
		req.Command = command
		if req.Payload == nil {
			req.Payload = map[string]interface{}{}
		}
		req.Payload["command"] = command
	}
}

// sessionStartContext builds a short project summary injected into the
// agent's context at session start.
func (r *Runner) sessionStartContext(ctx context.Context, projectPath string) string {
	status, err := r.client.GetStatus(ctx, projectPath)
	if err != nil {
		// First session in a project has no status yet
		r.logger.Info("No project status for session start", "error", err)
		return ""
	}

	summary := fmt.Sprintf("ijoka: %d features (%d in progress, %d pending, %d blocked).",
		status.Stats.Total, status.Stats.InProgress, status.Stats.Pending, status.Stats.Blocked)
	if status.CurrentFeature != nil {
		if f, ok := status.CurrentFeature.(map[string]interface{}); ok {
			if desc, ok := f["description"].(string); ok && desc != "" {
				summary += fmt.Sprintf(" Current: %s", desc)
			}
		}
	}
	return summary
}

func writeResponse(w io.Writer, hookEventName, additionalContext string) {
	resp := HookResponse{}
	if additionalContext != "" {
		resp.HookSpecificOutput = &HookOutput{
			HookEventName:     hookEventName,
			AdditionalContext: additionalContext,
		}
	}
	data, err := json.Marshal(resp)
	if err != nil {
		writeEmpty(w)
		return
	}
	_, _ = w.Write(data)
	_, _ = w.Write([]byte("\n"))
}

func writeEmpty(w io.Writer) {
	_, _ = io.WriteString(w, "{}\n")
}

// newHookLogger logs to ~/.ijoka/hooks.log with rotation. Hooks run
// headless and stdout belongs to the response payload.
func newHookLogger() *slog.Logger {
	logPath := filepath.Join(os.TempDir(), "ijoka-hooks.log")
	if home, err := os.UserHomeDir(); err == nil {
		logPath = filepath.Join(home, ".ijoka", "hooks.log")
		_ = os.MkdirAll(filepath.Dir(logPath), 0o755)
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	return slog.New(slog.NewJSONHandler(writer, nil))
}
