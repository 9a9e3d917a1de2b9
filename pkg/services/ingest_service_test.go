package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
	"github.com/ijoka-ai/ijoka/pkg/config"
	"github.com/ijoka-ai/ijoka/pkg/models"
	testdb "github.com/ijoka-ai/ijoka/test/database"
)

func testConfig() *config.Config {
	cfg, _ := config.Load()
	return cfg
}

func setupIngest(t *testing.T) (*ent.Client, *IngestService, string) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	projectPath := "/tmp/ijoka-test/" + t.Name()
	return client, NewIngestService(client, testConfig()), projectPath
}

func toolCall(projectPath, sessionID, toolUseID, toolName string) models.IngestEventRequest {
	return models.IngestEventRequest{
		EventType:   "ToolCall",
		SessionID:   sessionID,
		ProjectPath: projectPath,
		SourceAgent: "claude-code",
		ToolName:    toolName,
		ToolUseID:   toolUseID,
		Success:     true,
	}
}

func TestIngestEvent_Validation(t *testing.T) {
	_, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	_, err := svc.IngestEvent(ctx, models.IngestEventRequest{
		EventType: "Teleport", SessionID: "s", ProjectPath: projectPath, SourceAgent: "claude-code",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.IngestEvent(ctx, models.IngestEventRequest{
		EventType: "ToolCall", ProjectPath: projectPath, SourceAgent: "claude-code",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.IngestEvent(ctx, models.IngestEventRequest{
		EventType: "ToolCall", SessionID: "s", SourceAgent: "claude-code",
	})
	assert.True(t, IsValidationError(err))
}

func TestIngestEvent_ImplicitSessionAndProject(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "implicit-sess", "tu-1", "Edit"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.EventID)

	// Session was created on the fly from the event
	session, err := client.AgentSession.Get(ctx, "implicit-sess")
	require.NoError(t, err)
	assert.Equal(t, "claude-code", session.Agent)

	// Work tool with no candidates falls back to session-work
	sw, err := NewFeatureService(client).EnsureSessionWork(ctx, session.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, sw.ID, resp.FeatureID)
	assert.Equal(t, "fallback_session_work", resp.Reason)
}

func TestIngestEvent_Duplicate(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	first, err := svc.IngestEvent(ctx, toolCall(projectPath, "dup-sess", "tu-dup", "Edit"))
	require.NoError(t, err)

	second, err := svc.IngestEvent(ctx, toolCall(projectPath, "dup-sess", "tu-dup", "Edit"))
	require.NoError(t, err)
	assert.Equal(t, first.EventID, second.EventID)
	assert.Equal(t, "duplicate", second.Reason)
	assert.Equal(t, first.FeatureID, second.FeatureID)

	count, err := client.HookEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestEvent_MetaToolGoesToSessionWork(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	req := toolCall(projectPath, "meta-sess", "tu-meta", "mcp__ijoka__feature_create")
	resp, err := svc.IngestEvent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "meta", resp.Reason)

	session, err := client.AgentSession.Get(ctx, "meta-sess")
	require.NoError(t, err)
	sw, err := NewFeatureService(client).EnsureSessionWork(ctx, session.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, sw.ID, resp.FeatureID)

	// Meta tools are not in the work whitelist, so no work is counted
	assert.Equal(t, 0, sw.WorkCount)
}

func TestIngestEvent_DiagnosticStaysUnlinked(t *testing.T) {
	_, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	req := toolCall(projectPath, "diag-sess", "tu-diag", "Bash")
	req.Command = "git status"
	resp, err := svc.IngestEvent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "diagnostic", resp.Reason)
	assert.Empty(t, resp.FeatureID)
}

func TestIngestEvent_CachedActiveFeatureWins(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "cached target", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "cache-sess")
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "cache-sess", false)
	require.NoError(t, err)

	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "cache-sess", "tu-c1", "Edit"))
	require.NoError(t, err)
	assert.Equal(t, f.ID, resp.FeatureID)
	assert.Equal(t, "cached", resp.Reason)

	// Work counter moved
	reloaded, err := features.GetFeature(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.WorkCount)
}

func TestIngestEvent_SingleCandidateScoring(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "auth work", Category: "auth",
	})
	require.NoError(t, err)
	_, err = client.Feature.UpdateOneID(f.ID).SetStatus(feature.StatusInProgress).Save(ctx)
	require.NoError(t, err)

	// Session has no cached feature; the lone in-progress candidate wins
	req := toolCall(projectPath, "score-sess", "tu-s1", "Edit")
	req.FilePath = "internal/auth/login.go"
	resp, err := svc.IngestEvent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, f.ID, resp.FeatureID)
	assert.Equal(t, "only_active", resp.Reason)
}

func TestIngestEvent_FirstActivityActivatesPendingFeature(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "pending target", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "first-sess")

	// A confident prompt match links the still-pending feature
	prompt := models.IngestEventRequest{
		EventType:   "UserQuery",
		SessionID:   "first-sess",
		ProjectPath: projectPath,
		SourceAgent: "claude-code",
		UserPrompt:  "keep going on the pending target",
	}
	resp, err := svc.IngestEvent(ctx, prompt)
	require.NoError(t, err)
	assert.Equal(t, f.ID, resp.FeatureID)
	assert.Equal(t, "prompt", resp.Reason)

	// The link itself is the first activity: pending flips in_progress
	activated, err := features.GetFeature(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusInProgress, activated.Status)

	transition, err := client.StatusEvent.Query().
		Where(statusevent.FeatureIDEQ(f.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "auto:first_activity:"+resp.EventID, transition.By)

	// Follow-up work rides the session cache, which now points at live work
	work, err := svc.IngestEvent(ctx, toolCall(projectPath, "first-sess", "tu-f1", "Edit"))
	require.NoError(t, err)
	assert.Equal(t, f.ID, work.FeatureID)
	assert.Equal(t, "cached", work.Reason)
}

func TestIngestEvent_BlockedFeatureEvictedFromSessionCache(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "blocked target", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "evict-sess")
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "evict-sess", false)
	require.NoError(t, err)

	_, err = features.BlockFeature(ctx, f.ID, models.BlockFeatureRequest{Reason: "waiting on upstream"})
	require.NoError(t, err)

	// The cache must not keep steering work at a feature nobody can
	// work on; with no other candidates the event lands on session-work
	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "evict-sess", "tu-ev1", "Edit"))
	require.NoError(t, err)
	assert.Equal(t, "fallback_session_work", resp.Reason)
	assert.NotEqual(t, f.ID, resp.FeatureID)

	session, err := client.AgentSession.Get(ctx, "evict-sess")
	require.NoError(t, err)
	assert.Nil(t, session.ActiveFeatureID)
}

func TestIngestEvent_StartsPendingStepOnFreshPlan(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "planned feature", Category: "core",
		Steps: []string{"first step", "second step"},
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "fresh-sess")
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "fresh-sess", false)
	require.NoError(t, err)

	// No step is in progress yet; work attaches to the lowest-order
	// pending step and starts it
	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "fresh-sess", "tu-fp1", "Edit"))
	require.NoError(t, err)

	event, err := client.HookEvent.Get(ctx, resp.EventID)
	require.NoError(t, err)
	require.NotNil(t, event.StepID)

	started, err := client.Step.Get(ctx, *event.StepID)
	require.NoError(t, err)
	assert.Equal(t, "first step", started.Description)
	assert.Equal(t, step.StatusInProgress, started.Status)
	require.NotNil(t, started.StartedAt)
}

func TestIngestEvent_CriteriaCompletion(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "small fix", Category: "core",
		CompletionCriteria: map[string]interface{}{"type": "work_count", "count": 2},
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "crit-sess")
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "crit-sess", false)
	require.NoError(t, err)

	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "crit-sess", "tu-w1", "Edit"))
	require.NoError(t, err)
	assert.Empty(t, resp.Nudges)

	resp, err = svc.IngestEvent(ctx, toolCall(projectPath, "crit-sess", "tu-w2", "Edit"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Nudges)
	assert.Contains(t, resp.Nudges[0], "marked complete")

	done, err := features.GetFeature(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusComplete, done.Status)
	assert.Nil(t, done.ClaimingSessionID)
	assert.NotNil(t, done.CompletedAt)

	// Completion clears the session cache
	session, err := client.AgentSession.Get(ctx, "crit-sess")
	require.NoError(t, err)
	assert.Nil(t, session.ActiveFeatureID)

	transition, err := client.StatusEvent.Query().
		Where(
			statusevent.FeatureIDEQ(f.ID),
			statusevent.ToStatusEQ("complete"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "auto:criteria:work_count", transition.By)
}

func TestIngestEvent_PromptClassification(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "Implement OAuth login with refresh tokens", Category: "auth",
	})
	require.NoError(t, err)

	req := models.IngestEventRequest{
		EventType:   "UserQuery",
		SessionID:   "prompt-sess",
		ProjectPath: projectPath,
		SourceAgent: "claude-code",
		UserPrompt:  "let's implement the OAuth login flow with refresh tokens",
		Success:     true,
	}
	resp, err := svc.IngestEvent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, f.ID, resp.FeatureID)
	assert.Equal(t, "prompt", resp.Reason)

	session, err := client.AgentSession.Get(ctx, "prompt-sess")
	require.NoError(t, err)
	require.NotNil(t, session.ActiveFeatureID)
	assert.Equal(t, f.ID, *session.ActiveFeatureID)
}

func TestIngestEvent_PromptBelowThreshold(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	req := models.IngestEventRequest{
		EventType:   "UserQuery",
		SessionID:   "vague-sess",
		ProjectPath: projectPath,
		SourceAgent: "claude-code",
		UserPrompt:  "hello there",
		Success:     true,
	}
	resp, err := svc.IngestEvent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "prompt_below_threshold", resp.Reason)

	session, err := client.AgentSession.Get(ctx, "vague-sess")
	require.NoError(t, err)
	assert.Nil(t, session.ActiveFeatureID)
	require.NotNil(t, session.ClassificationSource)
	assert.Equal(t, "prompt_unmatched", *session.ClassificationSource)
}

func TestIngestEvent_SessionEndClosesSession(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	_, err := svc.IngestEvent(ctx, toolCall(projectPath, "end-sess", "tu-e1", "Edit"))
	require.NoError(t, err)

	resp, err := svc.IngestEvent(ctx, models.IngestEventRequest{
		EventType:   "SessionEnd",
		SessionID:   "end-sess",
		ProjectPath: projectPath,
		SourceAgent: "claude-code",
		Success:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "session_marker", resp.Reason)

	session, err := client.AgentSession.Get(ctx, "end-sess")
	require.NoError(t, err)
	assert.Equal(t, "ended", string(session.Status))
	assert.NotNil(t, session.EndedAt)
}

func TestIngestEvent_PlanUpdateSyncsTodos(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	plans := NewPlanService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "planned feature", Category: "core",
		Steps: []string{"first task", "second task"},
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "todo-sess")
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "todo-sess", false)
	require.NoError(t, err)

	resp, err := svc.IngestEvent(ctx, models.IngestEventRequest{
		EventType:   "PlanUpdate",
		SessionID:   "todo-sess",
		ProjectPath: projectPath,
		SourceAgent: "claude-code",
		ToolName:    "TodoWrite",
		ToolUseID:   "tu-todo",
		Success:     true,
		Todos: []models.TodoItem{
			{Content: "first task", Status: "completed"},
			{Content: "second task", Status: "in_progress"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, f.ID, resp.FeatureID)
	assert.Equal(t, "plan_update", resp.Reason)

	plan, err := plans.GetPlan(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", plan.Steps[0].Status)
	assert.Equal(t, "in_progress", plan.Steps[1].Status)
}

func TestIngestEvent_LinksActiveStep(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	plans := NewPlanService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "stepped feature", Category: "core", Steps: []string{"the step"},
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "step-sess")
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "step-sess", false)
	require.NoError(t, err)

	st, err := client.Step.Query().Only(ctx)
	require.NoError(t, err)
	_, err = plans.UpdateStepStatus(ctx, st.ID, "in_progress")
	require.NoError(t, err)

	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "step-sess", "tu-st1", "Edit"))
	require.NoError(t, err)

	event, err := client.HookEvent.Get(ctx, resp.EventID)
	require.NoError(t, err)
	require.NotNil(t, event.StepID)
	assert.Equal(t, st.ID, *event.StepID)
}

func TestDiscoverFeature_ReattributesSessionWork(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)

	// Unclassified work lands on session-work first
	for _, id := range []string{"tu-d1", "tu-d2", "tu-d3"} {
		_, err := svc.IngestEvent(ctx, toolCall(projectPath, "disc-sess", id, "Edit"))
		require.NoError(t, err)
	}

	result, err := svc.DiscoverFeature(ctx, project.ID, "disc-sess", models.DiscoverFeatureRequest{
		Description: "Fix pagination in exports",
		Category:    "bugfix",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.ReattributedCount)

	created, err := features.GetFeature(ctx, result.FeatureID)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusInProgress, created.Status)
	assert.Equal(t, 3, created.WorkCount)

	// Events link to both session-work and the discovered feature
	linked, err := client.HookEvent.Query().
		Where(hookevent.HasFeaturesWith(feature.IDEQ(result.FeatureID))).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, linked)

	sw, err := features.EnsureSessionWork(ctx, project.ID)
	require.NoError(t, err)
	stillLinked, err := client.HookEvent.Query().
		Where(hookevent.HasFeaturesWith(feature.IDEQ(sw.ID))).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stillLinked)

	// The session now works on the discovered feature
	session, err := client.AgentSession.Get(ctx, "disc-sess")
	require.NoError(t, err)
	require.NotNil(t, session.ActiveFeatureID)
	assert.Equal(t, result.FeatureID, *session.ActiveFeatureID)
}

func TestDiscoverFeature_MarkComplete(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)

	_, err = svc.IngestEvent(ctx, toolCall(projectPath, "done-sess", "tu-done", "Write"))
	require.NoError(t, err)

	result, err := svc.DiscoverFeature(ctx, project.ID, "done-sess", models.DiscoverFeatureRequest{
		Description:  "One-off script cleanup",
		Category:     "chore",
		MarkComplete: true,
	})
	require.NoError(t, err)

	created, err := features.GetFeature(ctx, result.FeatureID)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusComplete, created.Status)
	assert.NotNil(t, created.CompletedAt)
}

func TestDiscoverFeature_ReusesSimilarFeature(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	features := NewFeatureService(client)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)
	existing, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "Fix pagination in exports", Category: "bugfix",
	})
	require.NoError(t, err)

	result, err := svc.DiscoverFeature(ctx, project.ID, "", models.DiscoverFeatureRequest{
		Description: "fix pagination in exports",
		Category:    "bugfix",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.FeatureID)

	count, err := client.Feature.Query().Where(feature.IsSessionWork(false)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDiscoverFeature_LookbackWindow(t *testing.T) {
	client, svc, projectPath := setupIngest(t)
	ctx := context.Background()

	project, err := NewProjectService(client).EnsureProject(ctx, projectPath)
	require.NoError(t, err)

	resp, err := svc.IngestEvent(ctx, toolCall(projectPath, "old-sess", "tu-old", "Edit"))
	require.NoError(t, err)

	// Age the event beyond the lookback
	err = client.HookEvent.UpdateOneID(resp.EventID).
		SetTimestamp(time.Now().Add(-3 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	result, err := svc.DiscoverFeature(ctx, project.ID, "old-sess", models.DiscoverFeatureRequest{
		Description:     "Recent work only",
		Category:        "core",
		LookbackMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ReattributedCount)
}
