package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/step"
	"github.com/ijoka-ai/ijoka/pkg/attribution"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// PlanService manages the ordered step plan inside a feature: plan
// replacement, todo synchronisation, checkpoint progress, and manual
// step updates.
type PlanService struct {
	client *ent.Client
}

// NewPlanService creates a new PlanService
func NewPlanService(client *ent.Client) *PlanService {
	return &PlanService{client: client}
}

// TodoState is one entry of an agent todo list being synced into the plan.
type TodoState struct {
	Description string
	Status      string
}

// SetPlan replaces the feature's plan with the given step descriptions.
// Delete-then-create in one transaction keeps step_order a clean
// permutation of 0..N-1.
func (s *PlanService) SetPlan(httpCtx context.Context, featureID string, descriptions []string) (*models.PlanResponse, error) {
	if len(descriptions) == 0 {
		return nil, NewValidationError("steps", "at least one step is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := tx.Feature.Query().Where(feature.IDEQ(featureID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query feature: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	_, err = tx.Step.Delete().
		Where(step.FeatureIDEQ(featureID)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear existing plan: %w", err)
	}

	for i, desc := range descriptions {
		if strings.TrimSpace(desc) == "" {
			return nil, NewValidationError("steps", fmt.Sprintf("step %d is empty", i))
		}
		err = tx.Step.Create().
			SetID(uuid.New().String()).
			SetDescription(desc).
			SetStepOrder(i).
			SetFeatureID(featureID).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit plan: %w", err)
	}

	return s.GetPlan(ctx, featureID)
}

// GetPlan returns the feature's plan with the active step and progress.
func (s *PlanService) GetPlan(ctx context.Context, featureID string) (*models.PlanResponse, error) {
	exists, err := s.client.Feature.Query().Where(feature.IDEQ(featureID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query feature: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	steps, err := s.orderedSteps(ctx, featureID)
	if err != nil {
		return nil, err
	}

	resp := &models.PlanResponse{
		FeatureID: featureID,
		Steps:     make([]models.StepView, 0, len(steps)),
		Progress:  planProgress(steps),
	}
	for _, st := range steps {
		resp.Steps = append(resp.Steps, stepView(st))
	}
	if active := activeStepOf(steps); active != nil {
		view := stepView(active)
		resp.ActiveStep = &view
	}
	return resp, nil
}

// SyncTodos reconciles an agent todo list with the stored plan. Todos
// match steps by exact description; matched steps take the todo's
// status, unmatched steps are marked skipped, and new todos append in
// list order.
func (s *PlanService) SyncTodos(httpCtx context.Context, featureID string, todos []TodoState) (*models.PlanResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.Step.Query().
		Where(step.FeatureIDEQ(featureID)).
		Order(ent.Asc(step.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps: %w", err)
	}

	byDescription := make(map[string]*ent.Step, len(existing))
	for _, st := range existing {
		byDescription[st.Description] = st
	}

	matched := make(map[string]struct{}, len(todos))
	now := time.Now()
	for i, todo := range todos {
		status := todoStatus(todo.Status)
		if st, ok := byDescription[todo.Description]; ok {
			matched[st.ID] = struct{}{}
			if st.Status == status {
				continue
			}
			update := tx.Step.UpdateOneID(st.ID).SetStatus(status)
			if status == step.StatusInProgress && st.StartedAt == nil {
				update = update.SetStartedAt(now)
			}
			if status == step.StatusCompleted && st.CompletedAt == nil {
				update = update.SetCompletedAt(now)
			}
			if err := update.Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to sync step %s: %w", st.ID, err)
			}
			continue
		}

		create := tx.Step.Create().
			SetID(uuid.New().String()).
			SetDescription(todo.Description).
			SetStatus(status).
			SetStepOrder(len(existing) + i).
			SetFeatureID(featureID)
		if status == step.StatusInProgress {
			create = create.SetStartedAt(now)
		}
		if status == step.StatusCompleted {
			create = create.SetCompletedAt(now)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create step from todo: %w", err)
		}
		matched[created.ID] = struct{}{}
	}

	// Steps the agent dropped from its list are skipped, not deleted:
	// the audit trail keeps what was planned.
	for _, st := range existing {
		if _, ok := matched[st.ID]; ok {
			continue
		}
		if st.Status == step.StatusCompleted || st.Status == step.StatusSkipped {
			continue
		}
		err := tx.Step.UpdateOneID(st.ID).
			SetStatus(step.StatusSkipped).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to skip step %s: %w", st.ID, err)
		}
	}

	// Close the order holes appends leave behind: step_order stays a
	// permutation of 0..N-1 after every sync.
	final, err := tx.Step.Query().
		Where(step.FeatureIDEQ(featureID)).
		Order(ent.Asc(step.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-query steps: %w", err)
	}
	for i, st := range final {
		if st.StepOrder == i {
			continue
		}
		err := tx.Step.UpdateOneID(st.ID).
			SetStepOrder(i).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to renumber step %s: %w", st.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit todo sync: %w", err)
	}
	return s.GetPlan(ctx, featureID)
}

// Checkpoint applies a progress report: a completed step description
// closes the matching step and activates the next pending one, and the
// current activity is checked for drift against the active step.
// Warnings are advisory; a checkpoint never fails on drift.
func (s *PlanService) Checkpoint(httpCtx context.Context, featureID string, req models.CheckpointRequest) (*models.CheckpointResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	steps, err := s.orderedSteps(ctx, featureID)
	if err != nil {
		return nil, err
	}

	warnings := []string{}
	now := time.Now()

	if req.StepCompleted != "" {
		target := matchStep(steps, req.StepCompleted)
		if target == nil {
			warnings = append(warnings, fmt.Sprintf("no open step matches %q", req.StepCompleted))
		} else {
			err := s.client.Step.UpdateOneID(target.ID).
				SetStatus(step.StatusCompleted).
				SetCompletedAt(now).
				Exec(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to complete step: %w", err)
			}

			if next := nextPendingStep(steps, target.ID); next != nil {
				err := s.client.Step.UpdateOneID(next.ID).
					SetStatus(step.StatusInProgress).
					SetStartedAt(now).
					Exec(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed to activate next step: %w", err)
				}
			}

			steps, err = s.orderedSteps(ctx, featureID)
			if err != nil {
				return nil, err
			}
		}
	}

	active := activeStepOf(steps)

	if req.CurrentActivity != "" && active != nil {
		if !attribution.SharesTokens(req.CurrentActivity, active.Description) {
			warnings = append(warnings, fmt.Sprintf(
				"current activity %q does not match the active step %q", req.CurrentActivity, active.Description))
		}
	}

	resp := &models.CheckpointResponse{
		FeatureID: featureID,
		Progress:  planProgress(steps),
		Warnings:  warnings,
	}
	if active != nil {
		view := stepView(active)
		resp.ActiveStep = &view
	}
	return resp, nil
}

// UpdateStepStatus sets a step's status directly. Transitioning to
// in_progress stamps started_at, to completed stamps completed_at.
func (s *PlanService) UpdateStepStatus(httpCtx context.Context, stepID, status string) (*ent.Step, error) {
	parsed := step.Status(status)
	if err := step.StatusValidator(parsed); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("invalid step status: %s", status))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := s.client.Step.Get(ctx, stepID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}

	update := st.Update().SetStatus(parsed)
	now := time.Now()
	if parsed == step.StatusInProgress && st.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	if parsed == step.StatusCompleted && st.CompletedAt == nil {
		update = update.SetCompletedAt(now)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update step status: %w", err)
	}
	return updated, nil
}

// ActiveStep returns the step work should attach to: the in_progress
// step, or the lowest-order pending step on a plan nothing has started
// yet. Nil when the plan is empty or fully closed out.
func (s *PlanService) ActiveStep(ctx context.Context, featureID string) (*ent.Step, error) {
	st, err := s.client.Step.Query().
		Where(
			step.FeatureIDEQ(featureID),
			step.StatusEQ(step.StatusInProgress),
		).
		Order(ent.Asc(step.FieldStepOrder)).
		First(ctx)
	if err == nil {
		return st, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query active step: %w", err)
	}

	st, err = s.client.Step.Query().
		Where(
			step.FeatureIDEQ(featureID),
			step.StatusEQ(step.StatusPending),
		).
		Order(ent.Asc(step.FieldStepOrder)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending step: %w", err)
	}
	return st, nil
}

// activeStepOf applies the same selection to an already-loaded ordered
// step list.
func activeStepOf(steps []*ent.Step) *ent.Step {
	for _, st := range steps {
		if st.Status == step.StatusInProgress {
			return st
		}
	}
	for _, st := range steps {
		if st.Status == step.StatusPending {
			return st
		}
	}
	return nil
}

func (s *PlanService) orderedSteps(ctx context.Context, featureID string) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(step.FeatureIDEQ(featureID)).
		Order(ent.Asc(step.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps: %w", err)
	}
	return steps, nil
}

// matchStep finds the first open step whose description contains the
// reported text, case-insensitively. Agents rarely echo descriptions
// verbatim, so substring matching is deliberate.
func matchStep(steps []*ent.Step, reported string) *ent.Step {
	needle := strings.ToLower(strings.TrimSpace(reported))
	if needle == "" {
		return nil
	}
	for _, st := range steps {
		if st.Status == step.StatusCompleted || st.Status == step.StatusSkipped {
			continue
		}
		if strings.Contains(strings.ToLower(st.Description), needle) ||
			strings.Contains(needle, strings.ToLower(st.Description)) {
			return st
		}
	}
	return nil
}

func nextPendingStep(steps []*ent.Step, afterID string) *ent.Step {
	for _, st := range steps {
		if st.ID == afterID {
			continue
		}
		if st.Status == step.StatusPending {
			return st
		}
	}
	return nil
}

func planProgress(steps []*ent.Step) models.PlanProgress {
	p := models.PlanProgress{Total: len(steps)}
	for _, st := range steps {
		if st.Status == step.StatusCompleted || st.Status == step.StatusSkipped {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

func stepView(st *ent.Step) models.StepView {
	return models.StepView{
		ID:          st.ID,
		Description: st.Description,
		Status:      string(st.Status),
		StepOrder:   st.StepOrder,
	}
}

func todoStatus(raw string) step.Status {
	switch strings.ToLower(raw) {
	case "in_progress":
		return step.StatusInProgress
	case "completed", "complete", "done":
		return step.StatusCompleted
	case "skipped", "cancelled":
		return step.StatusSkipped
	default:
		return step.StatusPending
	}
}
