package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/pkg/database"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// SessionService manages agent session lifecycle and the per-session
// classification cache.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// StartSessionRequest carries session creation parameters
type StartSessionRequest struct {
	SessionID   string
	Agent       string
	ProjectID   string
	IsSubagent  bool
	StartCommit string
}

// StartSession upserts a session with status active and links it to the
// latest prior session in the project (session ancestry).
func (s *SessionService) StartSession(httpCtx context.Context, req StartSessionRequest) (*ent.AgentSession, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Agent == "" {
		return nil, NewValidationError("agent", "required")
	}
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.AgentSession.Query().
		Where(agentsession.IDEQ(req.SessionID)).
		Only(ctx)
	if err == nil {
		// Re-delivered SessionStart: refresh activity, keep ancestry
		return existing.Update().
			SetStatus(agentsession.StatusActive).
			SetLastActivity(time.Now()).
			Save(ctx)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	// Latest prior session in the project becomes the predecessor
	prior, err := s.client.AgentSession.Query().
		Where(agentsession.ProjectIDEQ(req.ProjectID)).
		Order(ent.Desc(agentsession.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query prior session: %w", err)
	}

	create := s.client.AgentSession.Create().
		SetID(req.SessionID).
		SetAgent(req.Agent).
		SetProjectID(req.ProjectID).
		SetIsSubagent(req.IsSubagent).
		SetStartedAt(time.Now()).
		SetLastActivity(time.Now())
	if req.StartCommit != "" {
		create = create.SetStartCommit(req.StartCommit)
	}
	if prior != nil {
		create = create.SetContinuedFromID(prior.ID)
	}

	session, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// EndSession marks the session ended and records the commits it made.
// Commits link to the session's active feature when one was cached.
func (s *SessionService) EndSession(httpCtx context.Context, req models.SessionEndRequest) error {
	if req.SessionID == "" {
		return NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := s.client.AgentSession.Query().
		Where(agentsession.IDEQ(req.SessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	err = session.Update().
		SetStatus(agentsession.StatusEnded).
		SetEndedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	for _, c := range req.Commits {
		if c.Hash == "" {
			continue
		}
		ts := time.Now()
		if parsed, perr := time.Parse(time.RFC3339, c.Timestamp); perr == nil {
			ts = parsed
		}
		create := s.client.Commit.Create().
			SetID(c.Hash).
			SetMessage(c.Message).
			SetTimestamp(ts).
			SetSessionID(session.ID)
		if c.Author != "" {
			create = create.SetAuthor(c.Author)
		}
		if session.ActiveFeatureID != nil {
			create = create.SetFeatureID(*session.ActiveFeatureID)
		}
		if err := create.Exec(ctx); err != nil {
			// Commits are append-only; a hash seen before is not an error
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to record commit %s: %w", c.Hash, err)
		}
	}

	return nil
}

// TouchActivity refreshes last_activity and increments event_count.
// Called by the ingestion pipeline on every event.
func (s *SessionService) TouchActivity(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Every event in a session races on this row; transient conflicts
	// retry rather than failing the ingestion.
	var n int
	err := database.WithRetry(writeCtx, func(ctx context.Context) error {
		var serr error
		n, serr = s.client.AgentSession.Update().
			Where(agentsession.IDEQ(sessionID)).
			SetLastActivity(time.Now()).
			AddEventCount(1).
			Save(ctx)
		return serr
	})
	if err != nil {
		return fmt.Errorf("failed to touch session activity: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(agentsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// CacheClassification stores the prompt-classification outcome on the
// session node. Soft state: last writer wins.
func (s *SessionService) CacheClassification(ctx context.Context, sessionID, featureID, source, lastPrompt string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AgentSession.Update().
		Where(agentsession.IDEQ(sessionID)).
		SetClassifiedAt(time.Now()).
		SetClassificationSource(source)
	if featureID != "" {
		update = update.SetActiveFeatureID(featureID)
	}
	if lastPrompt != "" {
		update = update.SetLastPrompt(lastPrompt)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cache classification: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearActiveFeature drops the cached active feature, e.g. when the
// feature completed.
func (s *SessionService) ClearActiveFeature(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.AgentSession.Update().
		Where(agentsession.IDEQ(sessionID)).
		ClearActiveFeatureID().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to clear active feature: %w", err)
	}
	return nil
}

// MarkNudgeShown records a nudge key on the session so it is surfaced at
// most once. Returns false when the nudge was already shown.
func (s *SessionService) MarkNudgeShown(ctx context.Context, sessionID, nudgeKey string) (bool, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, shown := range session.NudgesShown {
		if shown == nudgeKey {
			return false, nil
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = session.Update().
		SetNudgesShown(append(session.NudgesShown, nudgeKey)).
		Exec(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to mark nudge shown: %w", err)
	}
	return true, nil
}

// IsSessionActive reports whether the session had activity within the
// stale threshold. Falls back to scanning recent events when the session
// row is missing.
func (s *SessionService) IsSessionActive(ctx context.Context, sessionID string, staleThreshold time.Duration) (bool, error) {
	cutoff := time.Now().Add(-staleThreshold)

	session, err := s.client.AgentSession.Query().
		Where(agentsession.IDEQ(sessionID)).
		Only(ctx)
	if err == nil {
		return session.LastActivity.After(cutoff), nil
	}
	if !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to query session: %w", err)
	}

	// Session node missing: any recent event from this session counts
	exists, err := s.client.HookEvent.Query().
		Where(
			hookevent.SessionIDEQ(sessionID),
			hookevent.TimestampGT(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query recent events: %w", err)
	}
	return exists, nil
}
