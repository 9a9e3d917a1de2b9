package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/pkg/database"
)

// ClaimService implements the per-feature claim lease protocol that lets
// multiple concurrent agents share a project without stepping on the same
// feature. Claim state lives on the feature node as the
// claiming_session_id / claiming_agent / claimed_at triple.
type ClaimService struct {
	client         *ent.Client
	staleThreshold time.Duration
}

// NewClaimService creates a new ClaimService
func NewClaimService(client *ent.Client, staleThreshold time.Duration) *ClaimService {
	return &ClaimService{client: client, staleThreshold: staleThreshold}
}

// StartFeature claims a feature for (agent, session) and moves it to
// in_progress.
//
// An existing claim by another session blocks the start only while that
// session is active; stale claims are silently overridden, and
// forceOverride bypasses the check entirely. The staleness check runs
// inside the transaction so a concurrent claim cannot slip between read
// and write.
func (s *ClaimService) StartFeature(httpCtx context.Context, featureID, agent, sessionID string, forceOverride bool) (*ent.Feature, error) {
	if agent == "" {
		return nil, NewValidationError("agent", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Concurrent claim attempts on the same feature can deadlock or
	// serialize; transient conflicts are retried, conflict errors are not.
	var updated *ent.Feature
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.startFeatureTx(ctx, featureID, agent, sessionID, forceOverride)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ClaimService) startFeatureTx(ctx context.Context, featureID, agent, sessionID string, forceOverride bool) (*ent.Feature, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	f, err := tx.Feature.Get(ctx, featureID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	if f.ClaimingSessionID != nil && *f.ClaimingSessionID != sessionID && !forceOverride {
		active, err := s.isSessionActive(ctx, tx, *f.ClaimingSessionID)
		if err != nil {
			return nil, err
		}
		if active {
			claimant := ""
			if f.ClaimingAgent != nil {
				claimant = *f.ClaimingAgent
			}
			return nil, &ClaimConflictError{
				FeatureID: featureID,
				HeldBy:    claimant,
				SessionID: *f.ClaimingSessionID,
			}
		}
		// Stale claim: silently override
	}

	now := time.Now()
	updated, err := recordStatus(ctx, tx.Feature, tx.StatusEvent, f,
		statusTransition{To: feature.StatusInProgress, By: "start:" + agent, SessionID: sessionID},
		func(u *ent.FeatureUpdateOne) *ent.FeatureUpdateOne {
			u = u.SetAssignedAgent(agent).ClearBlockReason()
			// A claim is a session lease. Without a session there is
			// nothing to lease against, so the triple stays all-null and
			// only the assignment is recorded.
			if sessionID != "" {
				u = u.SetClaimingSessionID(sessionID).SetClaimingAgent(agent).SetClaimedAt(now)
			} else {
				u = u.ClearClaimingSessionID().ClearClaimingAgent().ClearClaimedAt()
			}
			return u
		})
	if err != nil {
		return nil, err
	}

	if sessionID != "" {
		// Best effort: cache as the session's active feature
		_, err = tx.AgentSession.Update().
			Where(agentsession.IDEQ(sessionID)).
			SetActiveFeatureID(featureID).
			SetClassifiedAt(now).
			SetClassificationSource("manual_start").
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to cache active feature: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return updated, nil
}

// StartNextFeature claims the next startable pending feature: all
// blocking dependencies complete, ordered by priority desc, created_at
// asc. Session-work is never selected.
func (s *ClaimService) StartNextFeature(httpCtx context.Context, projectID, agent, sessionID string) (*ent.Feature, error) {
	next, err := s.NextStartableFeature(httpCtx, projectID)
	if err != nil {
		return nil, err
	}
	return s.StartFeature(httpCtx, next.ID, agent, sessionID, false)
}

// NextStartableFeature returns the pending feature that would be claimed
// next, without claiming it.
func (s *ClaimService) NextStartableFeature(ctx context.Context, projectID string) (*ent.Feature, error) {
	pending, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.StatusEQ(feature.StatusPending),
			feature.IsSessionWork(false),
		).
		Order(ent.Desc(feature.FieldPriority), ent.Asc(feature.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending features: %w", err)
	}

	for _, f := range pending {
		blocked, err := s.hasIncompleteBlockingDeps(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		if !blocked {
			return f, nil
		}
	}
	return nil, ErrNoPendingFeature
}

// CompleteFeature releases the claim, marks the feature complete, and
// activates the next pending feature in the project (if any).
func (s *ClaimService) CompleteFeature(httpCtx context.Context, featureID, agent, sessionID, summary string) (*ent.Feature, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated *ent.Feature
	err := database.WithRetry(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.completeFeatureTx(ctx, featureID, agent, sessionID, summary)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	// Activation of the successor is a separate write; a failure here
	// must not undo the completion.
	_ = s.activateNextPending(ctx, updated.ProjectID, featureID)
	return updated, nil
}

func (s *ClaimService) completeFeatureTx(ctx context.Context, featureID, agent, sessionID, summary string) (*ent.Feature, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	f, err := tx.Feature.Get(ctx, featureID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	by := "complete"
	if agent != "" {
		by = "complete:" + agent
	}
	updated, err := recordStatus(ctx, tx.Feature, tx.StatusEvent, f,
		statusTransition{To: feature.StatusComplete, By: by, SessionID: sessionID, Reason: summary},
		func(u *ent.FeatureUpdateOne) *ent.FeatureUpdateOne {
			return u.
				ClearClaimingSessionID().
				ClearClaimingAgent().
				ClearClaimedAt().
				SetCompletedAt(time.Now())
		})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}
	return updated, nil
}

// activateNextPending moves the next startable pending feature to
// in_progress without claiming it for any session.
func (s *ClaimService) activateNextPending(ctx context.Context, projectID, completedID string) error {
	next, err := s.NextStartableFeature(ctx, projectID)
	if err != nil {
		return err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	f, err := tx.Feature.Get(ctx, next.ID)
	if err != nil {
		return err
	}
	if f.Status != feature.StatusPending {
		return nil
	}

	_, err = recordStatus(ctx, tx.Feature, tx.StatusEvent, f,
		statusTransition{To: feature.StatusInProgress, By: "auto:next_after:" + completedID},
		nil)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// hasIncompleteBlockingDeps reports whether any blocks-dependency of the
// feature is not yet complete.
func (s *ClaimService) hasIncompleteBlockingDeps(ctx context.Context, featureID string) (bool, error) {
	deps, err := s.client.FeatureDependency.Query().
		Where(
			featuredependency.SourceIDEQ(featureID),
			featuredependency.KindEQ(featuredependency.KindBlocks),
		).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query dependencies: %w", err)
	}
	if len(deps) == 0 {
		return false, nil
	}

	targetIDs := make([]string, 0, len(deps))
	for _, d := range deps {
		targetIDs = append(targetIDs, d.TargetID)
	}

	incomplete, err := s.client.Feature.Query().
		Where(
			feature.IDIn(targetIDs...),
			feature.StatusNEQ(feature.StatusComplete),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query blocking features: %w", err)
	}
	return incomplete, nil
}

// isSessionActive checks recency inside the caller's transaction: the
// session's last_activity within the stale threshold, with a fallback on
// recent events when the session row is missing.
func (s *ClaimService) isSessionActive(ctx context.Context, tx *ent.Tx, sessionID string) (bool, error) {
	cutoff := time.Now().Add(-s.staleThreshold)

	session, err := tx.AgentSession.Query().
		Where(agentsession.IDEQ(sessionID)).
		Only(ctx)
	if err == nil {
		return session.LastActivity.After(cutoff), nil
	}
	if !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to query claiming session: %w", err)
	}

	exists, err := tx.HookEvent.Query().
		Where(
			hookevent.SessionIDEQ(sessionID),
			hookevent.TimestampGT(cutoff),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query claiming session events: %w", err)
	}
	return exists, nil
}
