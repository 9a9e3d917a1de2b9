package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/pkg/attribution"
	"github.com/ijoka-ai/ijoka/pkg/database"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// SessionWorkDescription is the fixed description of the per-project
// sentinel feature that receives unattributed events.
const SessionWorkDescription = "Session Work - Project management and meta activities"

// sessionWorkPriority keeps the sentinel at the bottom of every ranking.
const sessionWorkPriority = -100

// FeatureService manages feature nodes: CRUD, the session-work sentinel,
// similarity lookup, and blocking.
type FeatureService struct {
	client *ent.Client
}

// NewFeatureService creates a new FeatureService
func NewFeatureService(client *ent.Client) *FeatureService {
	return &FeatureService{client: client}
}

var validTypes = map[string]feature.Type{
	"feature": feature.TypeFeature,
	"bug":     feature.TypeBug,
	"spike":   feature.TypeSpike,
	"chore":   feature.TypeChore,
	"hotfix":  feature.TypeHotfix,
	"epic":    feature.TypeEpic,
}

// CreateFeature creates a feature with its initial steps.
func (s *FeatureService) CreateFeature(httpCtx context.Context, projectID string, req models.CreateFeatureRequest) (*ent.Feature, error) {
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if req.Category == "" {
		return nil, NewValidationError("category", "required")
	}
	featureType := feature.TypeFeature
	if req.Type != "" {
		t, ok := validTypes[req.Type]
		if !ok {
			return nil, NewValidationError("type", fmt.Sprintf("unknown type %q", req.Type))
		}
		featureType = t
	}
	if req.Priority < -100 || req.Priority > 100 {
		return nil, NewValidationError("priority", "must be in [-100, 100]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if req.IsPrimary {
		// At most one primary feature per project
		_, err = tx.Feature.Update().
			Where(feature.ProjectIDEQ(projectID), feature.IsPrimary(true)).
			SetIsPrimary(false).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to demote previous primary: %w", err)
		}
	}

	create := tx.Feature.Create().
		SetID(uuid.New().String()).
		SetDescription(req.Description).
		SetCategory(req.Category).
		SetType(featureType).
		SetPriority(req.Priority).
		SetIsPrimary(req.IsPrimary).
		SetProjectID(projectID)
	if len(req.FilePatterns) > 0 {
		create = create.SetFilePatterns(req.FilePatterns)
	}
	if req.BranchHint != "" {
		create = create.SetBranchHint(req.BranchHint)
	}
	if len(req.CompletionCriteria) > 0 {
		create = create.SetCompletionCriteria(req.CompletionCriteria)
	}
	if req.ParentID != "" {
		create = create.SetParentID(req.ParentID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}

	for i, desc := range req.Steps {
		err = tx.Step.Create().
			SetID(uuid.New().String()).
			SetDescription(desc).
			SetStepOrder(i).
			SetFeatureID(created.ID).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit feature creation: %w", err)
	}

	return created, nil
}

// GetFeature retrieves a feature by ID
func (s *FeatureService) GetFeature(ctx context.Context, id string) (*ent.Feature, error) {
	f, err := s.client.Feature.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	return f, nil
}

// ListFeatures returns the project's features, optionally filtered by
// status and category, ordered by priority then age.
func (s *FeatureService) ListFeatures(ctx context.Context, projectID, status, category string) ([]*ent.Feature, error) {
	query := s.client.Feature.Query().
		Where(feature.ProjectIDEQ(projectID))
	if status != "" {
		st := feature.Status(status)
		if err := feature.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		query = query.Where(feature.StatusEQ(st))
	}
	if category != "" {
		query = query.Where(feature.CategoryEQ(category))
	}

	features, err := query.
		Order(ent.Desc(feature.FieldPriority), ent.Asc(feature.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}

// FeatureStats aggregates feature counts by status for a project.
func (s *FeatureService) FeatureStats(ctx context.Context, projectID string) (models.FeatureStats, error) {
	var stats models.FeatureStats

	features, err := s.client.Feature.Query().
		Where(feature.ProjectIDEQ(projectID)).
		Select(feature.FieldStatus).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to query feature stats: %w", err)
	}

	stats.Total = len(features)
	for _, f := range features {
		switch f.Status {
		case feature.StatusPending:
			stats.Pending++
		case feature.StatusInProgress:
			stats.InProgress++
		case feature.StatusBlocked:
			stats.Blocked++
		case feature.StatusComplete:
			stats.Complete++
		}
	}
	return stats, nil
}

// UpdateFeature applies a partial update.
func (s *FeatureService) UpdateFeature(httpCtx context.Context, id string, req models.UpdateFeatureRequest) (*ent.Feature, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.GetFeature(ctx, id)
	if err != nil {
		return nil, err
	}

	update := s.client.Feature.UpdateOneID(id)
	if req.Description != nil {
		if *req.Description == "" {
			return nil, NewValidationError("description", "must not be empty")
		}
		update = update.SetDescription(*req.Description)
	}
	if req.Category != nil {
		update = update.SetCategory(*req.Category)
	}
	if req.Priority != nil {
		if *req.Priority < -100 || *req.Priority > 100 {
			return nil, NewValidationError("priority", "must be in [-100, 100]")
		}
		update = update.SetPriority(*req.Priority)
	}
	if req.BranchHint != nil {
		update = update.SetBranchHint(*req.BranchHint)
	}
	if req.FilePatterns != nil {
		update = update.SetFilePatterns(req.FilePatterns)
	}
	if req.CompletionCriteria != nil {
		update = update.SetCompletionCriteria(req.CompletionCriteria)
	}
	if req.IsPrimary != nil && *req.IsPrimary && !existing.IsPrimary {
		_, err = s.client.Feature.Update().
			Where(feature.ProjectIDEQ(existing.ProjectID), feature.IsPrimary(true)).
			SetIsPrimary(false).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to demote previous primary: %w", err)
		}
		update = update.SetIsPrimary(true)
	} else if req.IsPrimary != nil {
		update = update.SetIsPrimary(*req.IsPrimary)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}
	return updated, nil
}

// ArchiveFeature hard-deletes the feature and, via cascade, its steps and
// status events. Events survive; their LINKED_TO edges drop away.
func (s *FeatureService) ArchiveFeature(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Feature.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to archive feature: %w", err)
	}
	return nil
}

// BlockFeature marks a feature blocked with a reason and optionally
// records a blocking dependency edge.
func (s *FeatureService) BlockFeature(httpCtx context.Context, id string, req models.BlockFeatureRequest) (*ent.Feature, error) {
	if req.Reason == "" {
		return nil, NewValidationError("reason", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	f, err := tx.Feature.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	updated, err := recordStatus(ctx, tx.Feature, tx.StatusEvent, f,
		statusTransition{To: feature.StatusBlocked, By: "block", Reason: req.Reason},
		func(u *ent.FeatureUpdateOne) *ent.FeatureUpdateOne {
			return u.SetBlockReason(req.Reason)
		})
	if err != nil {
		return nil, err
	}

	if req.BlockingFeatureID != "" {
		err = tx.FeatureDependency.Create().
			SetID(uuid.New().String()).
			SetKind("blocks").
			SetSourceID(id).
			SetTargetID(req.BlockingFeatureID).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to record blocking dependency: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit block: %w", err)
	}
	return updated, nil
}

// EnsureSessionWork returns the project's session-work sentinel feature,
// creating it on first use.
func (s *FeatureService) EnsureSessionWork(ctx context.Context, projectID string) (*ent.Feature, error) {
	existing, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.IsSessionWork(true),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session-work feature: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var created *ent.Feature
	err = database.WithRetry(writeCtx, func(ctx context.Context) error {
		var serr error
		created, serr = s.client.Feature.Create().
			SetID(uuid.New().String()).
			SetDescription(SessionWorkDescription).
			SetCategory("infrastructure").
			SetType(feature.TypeChore).
			SetPriority(sessionWorkPriority).
			SetIsSessionWork(true).
			SetProjectID(projectID).
			Save(ctx)
		return serr
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race against the partial unique index
			return s.client.Feature.Query().
				Where(feature.ProjectIDEQ(projectID), feature.IsSessionWork(true)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create session-work feature: %w", err)
	}
	return created, nil
}

// ActiveFeature resolves the feature an agent is working on right now,
// for callers that cannot name one: the session's cached active feature
// when it is still in progress, else the primary in-progress feature,
// else the most recently touched in-progress feature.
func (s *FeatureService) ActiveFeature(ctx context.Context, projectID, sessionID string) (*ent.Feature, error) {
	if sessionID != "" {
		sess, err := s.client.AgentSession.Query().
			Where(agentsession.IDEQ(sessionID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query session: %w", err)
		}
		if err == nil && sess.ActiveFeatureID != nil {
			f, ferr := s.client.Feature.Get(ctx, *sess.ActiveFeatureID)
			if ferr == nil && f.Status == feature.StatusInProgress {
				return f, nil
			}
			if ferr != nil && !ent.IsNotFound(ferr) {
				return nil, fmt.Errorf("failed to get cached feature: %w", ferr)
			}
		}
	}

	f, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.StatusEQ(feature.StatusInProgress),
			feature.IsSessionWork(false),
		).
		Order(ent.Desc(feature.FieldIsPrimary), ent.Desc(feature.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query in-progress features: %w", err)
	}
	return f, nil
}

// FindSimilar looks for an existing feature matching the description,
// strongest check first: exact case-insensitive match, then >60% word
// overlap, then substring containment. Deterministic; no embeddings.
func (s *FeatureService) FindSimilar(ctx context.Context, projectID, description string) (*ent.Feature, error) {
	features, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.IsSessionWork(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}

	lowered := strings.ToLower(strings.TrimSpace(description))

	for _, f := range features {
		if strings.ToLower(strings.TrimSpace(f.Description)) == lowered {
			return f, nil
		}
	}

	queryTokens := attribution.TokenSet(description)
	for _, f := range features {
		featureTokens := attribution.TokenSet(f.Description)
		if len(queryTokens) == 0 || len(featureTokens) == 0 {
			continue
		}
		overlap := 0
		for tok := range queryTokens {
			if _, ok := featureTokens[tok]; ok {
				overlap++
			}
		}
		smaller := len(queryTokens)
		if len(featureTokens) < smaller {
			smaller = len(featureTokens)
		}
		if float64(overlap)/float64(smaller) > 0.6 {
			return f, nil
		}
	}

	for _, f := range features {
		fl := strings.ToLower(f.Description)
		if strings.Contains(fl, lowered) || strings.Contains(lowered, fl) {
			return f, nil
		}
	}

	return nil, ErrNotFound
}
