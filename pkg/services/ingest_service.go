package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/step"
	"github.com/ijoka-ai/ijoka/pkg/attribution"
	"github.com/ijoka-ai/ijoka/pkg/config"
	"github.com/ijoka-ai/ijoka/pkg/database"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

const (
	maxPayloadValueChars = 4096
	maxSummaryChars      = 200
	recentEventWindow    = 10
)

// IngestService runs the event ingestion pipeline: ensure the project,
// session, and session-work sentinel exist, derive a deterministic event
// ID, classify the event onto a feature, persist it, and apply the
// post-link effects (work counter, auto-transitions, completion
// criteria, nudges).
type IngestService struct {
	client   *ent.Client
	cfg      *config.Config
	projects *ProjectService
	features *FeatureService
	sessions *SessionService
	plans    *PlanService
	claims   *ClaimService
}

// NewIngestService creates a new IngestService
func NewIngestService(client *ent.Client, cfg *config.Config) *IngestService {
	return &IngestService{
		client:   client,
		cfg:      cfg,
		projects: NewProjectService(client),
		features: NewFeatureService(client),
		sessions: NewSessionService(client),
		plans:    NewPlanService(client),
		claims:   NewClaimService(client, cfg.StaleThreshold),
	}
}

// classification is the outcome of the attribution pipeline for one event.
type classification struct {
	FeatureID string
	Reason    string
}

// IngestEvent processes one hook event end to end. Ingestion is
// idempotent: re-delivery of an event with the same derived ID is a
// no-op that reports the original attribution.
func (s *IngestService) IngestEvent(httpCtx context.Context, req models.IngestEventRequest) (*models.IngestEventResponse, error) {
	eventType := hookevent.EventType(req.EventType)
	if err := hookevent.EventTypeValidator(eventType); err != nil {
		return nil, NewValidationError("event_type", fmt.Sprintf("unknown event type %q", req.EventType))
	}
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.ProjectPath == "" {
		return nil, NewValidationError("project_path", "required")
	}
	if req.SourceAgent == "" {
		return nil, NewValidationError("source_agent", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	proj, err := s.projects.EnsureProject(ctx, req.ProjectPath)
	if err != nil {
		return nil, err
	}

	session, err := s.ensureSession(ctx, proj.ID, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.TouchActivity(ctx, session.ID); err != nil {
		return nil, err
	}

	eventID := deriveEventID(eventType, req)

	// Idempotence: the same delivery is applied at most once
	if existing, err := s.client.HookEvent.Get(ctx, eventID); err == nil {
		resp := &models.IngestEventResponse{EventID: existing.ID, Reason: "duplicate"}
		if linked, err := existing.QueryFeatures().FirstID(ctx); err == nil {
			resp.FeatureID = linked
		}
		return resp, nil
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check for existing event: %w", err)
	}

	if eventType == hookevent.EventTypeSessionEnd {
		if err := s.sessions.EndSession(ctx, models.SessionEndRequest{SessionID: session.ID}); err != nil && err != ErrNotFound {
			return nil, err
		}
	}

	decision, err := s.classify(ctx, proj.ID, session, eventType, req)
	if err != nil {
		return nil, err
	}

	created, err := s.persistEvent(ctx, eventID, eventType, session.ID, decision, req)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent re-delivery won the race
			return &models.IngestEventResponse{EventID: eventID, FeatureID: decision.FeatureID, Reason: "duplicate"}, nil
		}
		return nil, err
	}

	resp := &models.IngestEventResponse{
		EventID:   created.ID,
		FeatureID: decision.FeatureID,
		Reason:    decision.Reason,
	}

	if decision.FeatureID != "" {
		nudge, err := s.applyLinkEffects(ctx, created, decision, req)
		if err != nil {
			return nil, err
		}
		if nudge != "" {
			resp.Nudges = append(resp.Nudges, nudge)
		}
	}

	if eventType == hookevent.EventTypeToolCall && !req.IsSubagent {
		nudges, err := s.collectNudges(ctx, session.ID, decision.FeatureID, req)
		if err != nil {
			return nil, err
		}
		resp.Nudges = append(resp.Nudges, nudges...)
	}

	return resp, nil
}

// ensureSession loads the session, creating it implicitly when the
// SessionStart hook was lost or this is the first event seen.
func (s *IngestService) ensureSession(ctx context.Context, projectID string, req models.IngestEventRequest) (*ent.AgentSession, error) {
	session, err := s.sessions.GetSession(ctx, req.SessionID)
	if err == nil {
		return session, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	return s.sessions.StartSession(ctx, StartSessionRequest{
		SessionID:   req.SessionID,
		Agent:       req.SourceAgent,
		ProjectID:   projectID,
		IsSubagent:  req.IsSubagent,
		StartCommit: req.StartCommit,
	})
}

func deriveEventID(eventType hookevent.EventType, req models.IngestEventRequest) string {
	if req.EventID != "" {
		return req.EventID
	}
	switch eventType {
	case hookevent.EventTypeToolCall, hookevent.EventTypePlanUpdate:
		return attribution.ToolCallEventID(req.ToolUseID)
	case hookevent.EventTypeUserQuery:
		return attribution.UserQueryEventID(req.SessionID, req.UserPrompt)
	case hookevent.EventTypeAgentStop:
		return attribution.AgentStopEventID(req.SessionID)
	default:
		return attribution.SessionMarkerEventID(req.SessionID, string(eventType))
	}
}

// classify runs the attribution layers in priority order: meta,
// diagnostic, session cache, scoring, prompt classification, and the
// session-work fallback.
func (s *IngestService) classify(ctx context.Context, projectID string, session *ent.AgentSession, eventType hookevent.EventType, req models.IngestEventRequest) (classification, error) {
	switch eventType {
	case hookevent.EventTypeUserQuery:
		return s.classifyPrompt(ctx, projectID, session, req)
	case hookevent.EventTypePlanUpdate:
		return s.classifyPlanUpdate(ctx, projectID, session, req)
	case hookevent.EventTypeToolCall:
		// Handled below
	default:
		// Lifecycle markers carry no code change; they live on session-work
		sw, err := s.features.EnsureSessionWork(ctx, projectID)
		if err != nil {
			return classification{}, err
		}
		return classification{FeatureID: sw.ID, Reason: "session_marker"}, nil
	}

	if attribution.IsMetaTool(req.ToolName, s.cfg.MetaToolPrefixes) ||
		(req.ToolName == "Bash" && attribution.IsMetaBashCommand(req.Command)) {
		sw, err := s.features.EnsureSessionWork(ctx, projectID)
		if err != nil {
			return classification{}, err
		}
		return classification{FeatureID: sw.ID, Reason: "meta"}, nil
	}

	if attribution.IsDiagnostic(req.ToolName, req.FilePath, req.Command) {
		return classification{Reason: "diagnostic"}, nil
	}

	if session.ActiveFeatureID != nil {
		cached, err := s.features.GetFeature(ctx, *session.ActiveFeatureID)
		if err == nil && cached.Status == feature.StatusInProgress {
			return classification{FeatureID: cached.ID, Reason: "cached"}, nil
		}
		if err != nil && err != ErrNotFound {
			return classification{}, err
		}
		// Completed, blocked, or deleted: the cache no longer points at
		// live work, so drop it and fall through to scoring
		if cerr := s.sessions.ClearActiveFeature(ctx, session.ID); cerr != nil {
			return classification{}, cerr
		}
	}

	candidates, err := s.scoringCandidates(ctx, projectID)
	if err != nil {
		return classification{}, err
	}
	result := attribution.Score(attribution.EventContext{
		ToolName: req.ToolName,
		FilePath: req.FilePath,
		Text:     eventText(req),
	}, candidates)
	if result.FeatureID != "" {
		return classification{FeatureID: result.FeatureID, Reason: result.Reason}, nil
	}

	if s.cfg.IsWorkTool(req.ToolName) {
		sw, err := s.features.EnsureSessionWork(ctx, projectID)
		if err != nil {
			return classification{}, err
		}
		return classification{FeatureID: sw.ID, Reason: "fallback_session_work"}, nil
	}
	return classification{Reason: result.Reason}, nil
}

// classifyPrompt matches a user prompt against every feature and caches
// a confident match as the session's active feature.
func (s *IngestService) classifyPrompt(ctx context.Context, projectID string, session *ent.AgentSession, req models.IngestEventRequest) (classification, error) {
	features, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.IsSessionWork(false),
		).
		All(ctx)
	if err != nil {
		return classification{}, fmt.Errorf("failed to query features: %w", err)
	}

	candidates := make([]attribution.PromptCandidate, 0, len(features))
	for _, f := range features {
		candidates = append(candidates, attribution.PromptCandidate{
			FeatureID:   f.ID,
			Description: f.Description,
			Status:      string(f.Status),
		})
	}

	result := attribution.ClassifyPrompt(req.UserPrompt, candidates)
	prompt := attribution.TruncatePrompt(req.UserPrompt, 500)

	if result.Activate {
		err := s.sessions.CacheClassification(ctx, session.ID, result.FeatureID, "prompt", prompt)
		if err != nil {
			return classification{}, err
		}
		return classification{FeatureID: result.FeatureID, Reason: "prompt"}, nil
	}

	if err := s.sessions.CacheClassification(ctx, session.ID, "", "prompt_unmatched", prompt); err != nil {
		return classification{}, err
	}
	sw, err := s.features.EnsureSessionWork(ctx, projectID)
	if err != nil {
		return classification{}, err
	}
	return classification{FeatureID: sw.ID, Reason: "prompt_below_threshold"}, nil
}

// classifyPlanUpdate syncs the todo list into the active feature's plan
// and attributes the event to it.
func (s *IngestService) classifyPlanUpdate(ctx context.Context, projectID string, session *ent.AgentSession, req models.IngestEventRequest) (classification, error) {
	if session.ActiveFeatureID != nil && len(req.Todos) > 0 {
		todos := make([]TodoState, 0, len(req.Todos))
		for _, t := range req.Todos {
			todos = append(todos, TodoState{Description: t.Content, Status: t.Status})
		}
		if _, err := s.plans.SyncTodos(ctx, *session.ActiveFeatureID, todos); err != nil && err != ErrNotFound {
			return classification{}, err
		}
		return classification{FeatureID: *session.ActiveFeatureID, Reason: "plan_update"}, nil
	}

	sw, err := s.features.EnsureSessionWork(ctx, projectID)
	if err != nil {
		return classification{}, err
	}
	return classification{FeatureID: sw.ID, Reason: "plan_update_unclassified"}, nil
}

func (s *IngestService) scoringCandidates(ctx context.Context, projectID string) ([]attribution.Candidate, error) {
	features, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.StatusEQ(feature.StatusInProgress),
			feature.IsSessionWork(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query in-progress features: %w", err)
	}

	candidates := make([]attribution.Candidate, 0, len(features))
	for _, f := range features {
		candidates = append(candidates, attribution.Candidate{
			FeatureID:    f.ID,
			Description:  f.Description,
			FilePatterns: f.FilePatterns,
			Type:         string(f.Type),
			IsPrimary:    f.IsPrimary,
		})
	}
	return candidates, nil
}

// persistEvent writes the event row with its feature link and, when the
// linked feature has an active step, the step link.
func (s *IngestService) persistEvent(ctx context.Context, eventID string, eventType hookevent.EventType, sessionID string, decision classification, req models.IngestEventRequest) (*ent.HookEvent, error) {
	create := s.client.HookEvent.Create().
		SetID(eventID).
		SetEventType(eventType).
		SetSourceAgent(req.SourceAgent).
		SetSessionID(sessionID).
		SetSuccess(req.Success)
	if req.ToolName != "" {
		create = create.SetToolName(req.ToolName)
	}
	if len(req.Payload) > 0 {
		create = create.SetPayload(capPayload(req.Payload))
	}
	if req.Summary != "" {
		create = create.SetSummary(truncate(req.Summary, maxSummaryChars))
	}
	if decision.FeatureID != "" {
		create = create.AddFeatureIDs(decision.FeatureID)

		st, err := s.plans.ActiveStep(ctx, decision.FeatureID)
		if err != nil {
			return nil, err
		}
		if st != nil {
			// Work arriving on a plan nobody has started yet starts it:
			// the first pending step goes in_progress with the event.
			if st.Status == step.StatusPending && eventType == hookevent.EventTypeToolCall && s.cfg.IsWorkTool(req.ToolName) {
				st, err = s.client.Step.UpdateOneID(st.ID).
					SetStatus(step.StatusInProgress).
					SetStartedAt(time.Now()).
					Save(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to start step: %w", err)
				}
			}
			create = create.SetStepID(st.ID)
		}
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist event: %w", err)
	}
	return created, nil
}

// applyLinkEffects runs after an event links to a feature: bump the work
// counter, auto-transition pending features on first activity, and
// evaluate completion criteria. Session-work never transitions.
// Returns a completion nudge when criteria fired.
func (s *IngestService) applyLinkEffects(ctx context.Context, event *ent.HookEvent, decision classification, req models.IngestEventRequest) (string, error) {
	f, err := s.features.GetFeature(ctx, decision.FeatureID)
	if err != nil {
		return "", err
	}

	isWork := event.EventType == hookevent.EventTypeToolCall && s.cfg.IsWorkTool(req.ToolName)
	if isWork {
		// Concurrent sessions race on the counter row
		err = database.WithRetry(ctx, func(ctx context.Context) error {
			var uerr error
			f, uerr = s.client.Feature.UpdateOneID(f.ID).
				AddWorkCount(1).
				Save(ctx)
			return uerr
		})
		if err != nil {
			return "", fmt.Errorf("failed to increment work count: %w", err)
		}
	}

	if f.IsSessionWork {
		return "", nil
	}

	if f.Status == feature.StatusPending {
		err = database.WithRetry(ctx, func(ctx context.Context) error {
			var rerr error
			f, rerr = recordStatus(ctx, s.client.Feature, s.client.StatusEvent, f,
				statusTransition{
					To:        feature.StatusInProgress,
					By:        "auto:first_activity:" + event.ID,
					SessionID: event.SessionID,
				}, nil)
			return rerr
		})
		if err != nil {
			return "", err
		}
	}

	if !isWork {
		return "", nil
	}

	criteria := attribution.ParseCriteria(f.CompletionCriteria)
	if !criteria.Matches(req.ToolName, req.Command, req.Success, f.WorkCount, s.cfg.WorkCountThreshold) {
		return "", nil
	}

	err = database.WithRetry(ctx, func(ctx context.Context) error {
		_, rerr := recordStatus(ctx, s.client.Feature, s.client.StatusEvent, f,
			statusTransition{
				To:        feature.StatusComplete,
				By:        "auto:criteria:" + criteria.Type,
				SessionID: event.SessionID,
			},
			func(u *ent.FeatureUpdateOne) *ent.FeatureUpdateOne {
				return u.
					ClearClaimingSessionID().
					ClearClaimingAgent().
					ClearClaimedAt().
					SetCompletedAt(time.Now())
			})
		return rerr
	})
	if err != nil {
		return "", err
	}

	if err := s.sessions.ClearActiveFeature(ctx, event.SessionID); err != nil {
		return "", err
	}
	// A missing successor is not an error
	_ = s.claims.activateNextPending(ctx, f.ProjectID, f.ID)

	return fmt.Sprintf("Feature %q met its completion criteria and was marked complete.", f.Description), nil
}

// collectNudges evaluates the advisory signals: commit reminder, plan
// drift, and stuckness. Each nudge surfaces at most once per session.
func (s *IngestService) collectNudges(ctx context.Context, sessionID, featureID string, req models.IngestEventRequest) ([]string, error) {
	var nudges []string

	edits, err := s.client.HookEvent.Query().
		Where(
			hookevent.SessionIDEQ(sessionID),
			hookevent.ToolNameIn("Edit", "Write", "MultiEdit", "NotebookEdit"),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count edit events: %w", err)
	}
	if edits >= s.cfg.CommitReminderEdits {
		shown, err := s.sessions.MarkNudgeShown(ctx, sessionID, "commit_reminder")
		if err != nil {
			return nil, err
		}
		if shown {
			nudges = append(nudges, fmt.Sprintf("You have made %d file edits this session without a commit. Consider committing your work.", edits))
		}
	}

	if featureID != "" && (req.ToolName == "Edit" || req.ToolName == "Write") {
		st, err := s.plans.ActiveStep(ctx, featureID)
		if err != nil {
			return nil, err
		}
		if st != nil && !attribution.SharesTokens(eventText(req), st.Description) {
			shown, err := s.sessions.MarkNudgeShown(ctx, sessionID, "drift:"+st.ID)
			if err != nil {
				return nil, err
			}
			if shown {
				nudges = append(nudges, fmt.Sprintf("Current work does not appear related to the active step %q. Update the plan if direction changed.", st.Description))
			}
		}
	}

	stuck, err := s.evaluateStuckness(ctx, sessionID, featureID)
	if err != nil {
		return nil, err
	}
	if stuck.Stuck {
		shown, err := s.sessions.MarkNudgeShown(ctx, sessionID, "stuck")
		if err != nil {
			return nil, err
		}
		if shown {
			nudges = append(nudges, fmt.Sprintf("Progress looks stalled (%s). Consider a different approach or breaking the step down.", stuck.Reason))
		}
	}

	return nudges, nil
}

func (s *IngestService) evaluateStuckness(ctx context.Context, sessionID, featureID string) (attribution.StucknessResult, error) {
	events, err := s.client.HookEvent.Query().
		Where(hookevent.SessionIDEQ(sessionID)).
		Order(ent.Desc(hookevent.FieldTimestamp)).
		Limit(recentEventWindow).
		All(ctx)
	if err != nil {
		return attribution.StucknessResult{}, fmt.Errorf("failed to query recent events: %w", err)
	}

	recent := make([]attribution.RecentEvent, 0, len(events))
	for _, e := range events {
		recent = append(recent, attribution.RecentEvent{
			ToolName:      e.ToolName,
			PayloadPrefix: payloadPrefix(e.Payload),
			Timestamp:     e.Timestamp,
		})
	}

	var stepState *attribution.ActiveStepState
	if featureID != "" {
		st, err := s.plans.ActiveStep(ctx, featureID)
		if err != nil {
			return attribution.StucknessResult{}, err
		}
		if st != nil && st.StartedAt != nil {
			count, err := s.client.HookEvent.Query().
				Where(hookevent.StepIDEQ(st.ID)).
				Count(ctx)
			if err != nil {
				return attribution.StucknessResult{}, fmt.Errorf("failed to count step events: %w", err)
			}
			stepState = &attribution.ActiveStepState{
				StartedAt:  *st.StartedAt,
				EventCount: count,
			}
		}
	}

	return attribution.EvaluateStuckness(recent, stepState, time.Now()), nil
}

// DiscoverFeature creates a feature retroactively and re-attributes
// recent session-work events to it. A similar existing feature is
// reused instead of creating a near-duplicate.
func (s *IngestService) DiscoverFeature(httpCtx context.Context, projectID, sessionID string, req models.DiscoverFeatureRequest) (*models.DiscoverResult, error) {
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if req.Category == "" {
		return nil, NewValidationError("category", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	target, err := s.features.FindSimilar(ctx, projectID, req.Description)
	if err == ErrNotFound {
		target, err = s.features.CreateFeature(ctx, projectID, models.CreateFeatureRequest{
			Description: req.Description,
			Category:    req.Category,
			Type:        req.Type,
			Priority:    req.Priority,
			Steps:       req.Steps,
			BranchHint:  req.BranchHint,
		})
	}
	if err != nil {
		return nil, err
	}

	sessionWork, err := s.features.EnsureSessionWork(ctx, projectID)
	if err != nil {
		return nil, err
	}

	lookback := s.cfg.DiscoverLookback
	if req.LookbackMinutes > 0 {
		lookback = time.Duration(req.LookbackMinutes) * time.Minute
	}
	cutoff := time.Now().Add(-lookback)

	query := s.client.HookEvent.Query().
		Where(
			hookevent.HasFeaturesWith(feature.IDEQ(sessionWork.ID)),
			hookevent.Not(hookevent.HasFeaturesWith(feature.IDEQ(target.ID))),
			hookevent.TimestampGT(cutoff),
			hookevent.EventTypeEQ(hookevent.EventTypeToolCall),
			hookevent.ToolNameIn(s.cfg.WorkTools...),
		)
	if sessionID != "" {
		query = query.Where(hookevent.SessionIDEQ(sessionID))
	}
	events, err := query.Order(ent.Asc(hookevent.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query session-work events: %w", err)
	}

	// The session-work link is kept: attribution history stays intact
	for _, e := range events {
		err := s.client.HookEvent.UpdateOneID(e.ID).
			AddFeatureIDs(target.ID).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-attribute event %s: %w", e.ID, err)
		}
	}

	if len(events) > 0 {
		target, err = s.client.Feature.UpdateOneID(target.ID).
			AddWorkCount(len(events)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update work count: %w", err)
		}
	}

	switch {
	case req.MarkComplete && target.Status != feature.StatusComplete:
		_, err = recordStatus(ctx, s.client.Feature, s.client.StatusEvent, target,
			statusTransition{
				To:        feature.StatusComplete,
				By:        "discover:complete",
				SessionID: sessionID,
			},
			func(u *ent.FeatureUpdateOne) *ent.FeatureUpdateOne {
				return u.SetCompletedAt(time.Now())
			})
		if err != nil {
			return nil, err
		}
	case target.Status == feature.StatusPending:
		by := "discover"
		if len(events) > 0 {
			by = "auto:first_activity:" + events[0].ID
		}
		_, err = recordStatus(ctx, s.client.Feature, s.client.StatusEvent, target,
			statusTransition{To: feature.StatusInProgress, By: by, SessionID: sessionID}, nil)
		if err != nil {
			return nil, err
		}
	}

	if sessionID != "" && !req.MarkComplete {
		if err := s.sessions.CacheClassification(ctx, sessionID, target.ID, "discover", ""); err != nil && err != ErrNotFound {
			return nil, err
		}
	}

	return &models.DiscoverResult{
		FeatureID:         target.ID,
		ReattributedCount: len(events),
	}, nil
}

// eventText flattens the attributable free text of an event for keyword
// matching.
func eventText(req models.IngestEventRequest) string {
	parts := make([]string, 0, 4)
	if req.Command != "" {
		parts = append(parts, req.Command)
	}
	if req.FilePath != "" {
		parts = append(parts, req.FilePath)
	}
	if req.UserPrompt != "" {
		parts = append(parts, req.UserPrompt)
	}
	if req.Summary != "" {
		parts = append(parts, req.Summary)
	}
	for _, key := range []string{"pattern", "old_string", "new_string", "description"} {
		if v, ok := req.Payload[key].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// payloadPrefix extracts a stable prefix of the payload's main text for
// repetition detection.
func payloadPrefix(payload map[string]interface{}) string {
	for _, key := range []string{"command", "file_path", "pattern", "prompt"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// capPayload truncates oversized string values so a single event cannot
// bloat the store.
func capPayload(payload map[string]interface{}) map[string]interface{} {
	capped := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		if s, ok := v.(string); ok && len(s) > maxPayloadValueChars {
			capped[k] = s[:maxPayloadValueChars]
			continue
		}
		capped[k] = v
	}
	return capped
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
