package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/step"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

func createPlannedFeature(t *testing.T, client *ent.Client, projectID string, steps ...string) *ent.Feature {
	t.Helper()
	f, err := NewFeatureService(client).CreateFeature(context.Background(), projectID, models.CreateFeatureRequest{
		Description: "planned work",
		Category:    "core",
		Steps:       steps,
	})
	require.NoError(t, err)
	return f
}

func TestSetPlan_ReplacesSteps(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "old step one", "old step two")

	plan, err := plans.SetPlan(ctx, f.ID, []string{"design schema", "write handlers", "add tests"})
	require.NoError(t, err)
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, "design schema", plan.Steps[0].Description)
	assert.Equal(t, 0, plan.Steps[0].StepOrder)
	assert.Equal(t, 2, plan.Steps[2].StepOrder)
	assert.Equal(t, 3, plan.Progress.Total)
	assert.Equal(t, 0, plan.Progress.Completed)

	// Old steps are gone, not renumbered
	count, err := client.Step.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = plans.SetPlan(ctx, f.ID, nil)
	assert.True(t, IsValidationError(err))

	_, err = plans.SetPlan(ctx, f.ID, []string{"ok", "  "})
	assert.True(t, IsValidationError(err))

	_, err = plans.SetPlan(ctx, "missing", []string{"x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncTodos(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "design schema", "write handlers", "add tests")

	plan, err := plans.SyncTodos(ctx, f.ID, []TodoState{
		{Description: "design schema", Status: "completed"},
		{Description: "write handlers", Status: "in_progress"},
		{Description: "wire metrics", Status: "pending"},
	})
	require.NoError(t, err)
	require.Len(t, plan.Steps, 4)

	assert.Equal(t, "completed", plan.Steps[0].Status)
	assert.Equal(t, "in_progress", plan.Steps[1].Status)
	// Dropped from the todo list: skipped, never deleted
	assert.Equal(t, "skipped", plan.Steps[2].Status)
	// New todo appended after the existing steps
	assert.Equal(t, "wire metrics", plan.Steps[3].Description)
	assert.Equal(t, "pending", plan.Steps[3].Status)

	require.NotNil(t, plan.ActiveStep)
	assert.Equal(t, "write handlers", plan.ActiveStep.Description)

	// completed + skipped both count as done
	assert.Equal(t, 2, plan.Progress.Completed)
	assert.Equal(t, 4, plan.Progress.Total)
}

func TestSyncTodos_RenumbersWithoutHoles(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "design schema", "write handlers")

	// "write handlers" drops out (skipped) and two new todos arrive;
	// step_order must stay a gapless 0..N-1 run afterwards
	plan, err := plans.SyncTodos(ctx, f.ID, []TodoState{
		{Description: "design schema", Status: "completed"},
		{Description: "wire metrics", Status: "in_progress"},
		{Description: "add tests", Status: "pending"},
	})
	require.NoError(t, err)
	require.Len(t, plan.Steps, 4)

	for i, st := range plan.Steps {
		assert.Equal(t, i, st.StepOrder)
	}
	assert.Equal(t, "design schema", plan.Steps[0].Description)
	assert.Equal(t, "write handlers", plan.Steps[1].Description)
	assert.Equal(t, "skipped", plan.Steps[1].Status)
	assert.Equal(t, "wire metrics", plan.Steps[2].Description)
	assert.Equal(t, "add tests", plan.Steps[3].Description)
}

func TestActiveStep_FallsBackToLowestPending(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "first step", "second step")

	// Nothing started yet: the lowest-order pending step is the one
	// work should attach to
	active, err := plans.ActiveStep(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "first step", active.Description)
	assert.Equal(t, step.StatusPending, active.Status)

	plan, err := plans.GetPlan(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, plan.ActiveStep)
	assert.Equal(t, "first step", plan.ActiveStep.Description)

	// Completing the first step moves the fallback to the next pending one
	_, err = plans.Checkpoint(ctx, f.ID, models.CheckpointRequest{
		StepCompleted: "first step",
	})
	require.NoError(t, err)

	active, err = plans.ActiveStep(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "second step", active.Description)

	// An in_progress step always wins over pending ones
	st, err := client.Step.Query().Where(step.DescriptionEQ("second step")).Only(ctx)
	require.NoError(t, err)
	_, err = plans.UpdateStepStatus(ctx, st.ID, "in_progress")
	require.NoError(t, err)

	active, err = plans.ActiveStep(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, st.ID, active.ID)
	assert.Equal(t, step.StatusInProgress, active.Status)
}

func TestSyncTodos_StampsTimes(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "only step")

	_, err := plans.SyncTodos(ctx, f.ID, []TodoState{
		{Description: "only step", Status: "in_progress"},
	})
	require.NoError(t, err)

	st, err := client.Step.Query().Only(ctx)
	require.NoError(t, err)
	assert.NotNil(t, st.StartedAt)
	assert.Nil(t, st.CompletedAt)

	_, err = plans.SyncTodos(ctx, f.ID, []TodoState{
		{Description: "only step", Status: "done"},
	})
	require.NoError(t, err)

	st, err = client.Step.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, step.StatusCompleted, st.Status)
	assert.NotNil(t, st.CompletedAt)
}

func TestCheckpoint_CompletesStepAndActivatesNext(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "design the schema", "write the handlers")

	// Agents echo step names loosely; substring matching absorbs that
	resp, err := plans.Checkpoint(ctx, f.ID, models.CheckpointRequest{
		StepCompleted: "Design the Schema",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, 1, resp.Progress.Completed)
	require.NotNil(t, resp.ActiveStep)
	assert.Equal(t, "write the handlers", resp.ActiveStep.Description)
}

func TestCheckpoint_DriftWarning(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "write the handlers")
	_, err := plans.SyncTodos(ctx, f.ID, []TodoState{
		{Description: "write the handlers", Status: "in_progress"},
	})
	require.NoError(t, err)

	resp, err := plans.Checkpoint(ctx, f.ID, models.CheckpointRequest{
		CurrentActivity: "refactoring billing exports",
	})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "does not match the active step")

	// Matching activity: no warning
	resp, err = plans.Checkpoint(ctx, f.ID, models.CheckpointRequest{
		CurrentActivity: "still writing the API handlers",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)
}

func TestCheckpoint_UnmatchedStepWarnsOnly(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "one step")

	resp, err := plans.Checkpoint(ctx, f.ID, models.CheckpointRequest{
		StepCompleted: "something entirely different",
	})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "no open step matches")
	assert.Equal(t, 0, resp.Progress.Completed)
}

func TestUpdateStepStatus(t *testing.T) {
	client, project := setupProject(t)
	plans := NewPlanService(client)
	ctx := context.Background()

	f := createPlannedFeature(t, client, project.ID, "a step")
	st, err := client.Step.Query().Only(ctx)
	require.NoError(t, err)

	updated, err := plans.UpdateStepStatus(ctx, st.ID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, step.StatusInProgress, updated.Status)
	assert.NotNil(t, updated.StartedAt)

	updated, err = plans.UpdateStepStatus(ctx, st.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, step.StatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	_, err = plans.UpdateStepStatus(ctx, st.ID, "paused")
	assert.True(t, IsValidationError(err))

	_, err = plans.UpdateStepStatus(ctx, "missing", "completed")
	assert.ErrorIs(t, err, ErrNotFound)

	// ActiveStep is nil once nothing is in progress
	active, err := plans.ActiveStep(ctx, f.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}
