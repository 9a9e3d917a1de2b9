package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

func TestCreateFeature_WithSteps(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description:  "Add OAuth login",
		Category:     "auth",
		Type:         "feature",
		Priority:     10,
		Steps:        []string{"add provider config", "wire callback route", "add tests"},
		FilePatterns: []string{"internal/auth/*"},
	})
	require.NoError(t, err)
	assert.Equal(t, feature.StatusPending, created.Status)
	assert.Equal(t, 10, created.Priority)

	steps, err := client.Step.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, steps, 3)
}

func TestCreateFeature_Validation(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	_, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{Category: "auth"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{Description: "x"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "x", Category: "auth", Type: "saga",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "x", Category: "auth", Priority: 500,
	})
	assert.True(t, IsValidationError(err))
}

func TestCreateFeature_PrimaryIsExclusive(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	first, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "first focus", Category: "core", IsPrimary: true,
	})
	require.NoError(t, err)

	second, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "new focus", Category: "core", IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsPrimary)

	demoted, err := svc.GetFeature(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsPrimary)
}

func TestListFeatures_FilterAndOrder(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	_, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "low", Category: "auth", Priority: 1,
	})
	require.NoError(t, err)
	high, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "high", Category: "auth", Priority: 50,
	})
	require.NoError(t, err)
	_, err = svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "other", Category: "infra",
	})
	require.NoError(t, err)

	all, err := svc.ListFeatures(ctx, project.ID, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, high.ID, all[0].ID, "highest priority first")

	auth, err := svc.ListFeatures(ctx, project.ID, "", "auth")
	require.NoError(t, err)
	assert.Len(t, auth, 2)

	_, err = svc.ListFeatures(ctx, project.ID, "bogus", "")
	assert.True(t, IsValidationError(err))
}

func TestBlockFeature_RecordsReasonAndDependency(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	blocker, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "schema migration", Category: "db",
	})
	require.NoError(t, err)
	blocked, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "query layer", Category: "db",
	})
	require.NoError(t, err)

	updated, err := svc.BlockFeature(ctx, blocked.ID, models.BlockFeatureRequest{
		Reason:            "waiting on schema migration",
		BlockingFeatureID: blocker.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, feature.StatusBlocked, updated.Status)
	require.NotNil(t, updated.BlockReason)
	assert.Equal(t, "waiting on schema migration", *updated.BlockReason)

	deps, err := client.FeatureDependency.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, blocked.ID, deps[0].SourceID)
	assert.Equal(t, blocker.ID, deps[0].TargetID)

	_, err = svc.BlockFeature(ctx, blocked.ID, models.BlockFeatureRequest{})
	assert.True(t, IsValidationError(err))
}

func TestEnsureSessionWork_IsIdempotent(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	first, err := svc.EnsureSessionWork(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, first.IsSessionWork)
	assert.Equal(t, sessionWorkPriority, first.Priority)

	second, err := svc.EnsureSessionWork(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Feature.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestActiveFeature_Resolution(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	_, err := svc.ActiveFeature(ctx, project.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	recent, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "recent work", Category: "core",
	})
	require.NoError(t, err)
	_, err = client.Feature.UpdateOneID(recent.ID).SetStatus(feature.StatusInProgress).Save(ctx)
	require.NoError(t, err)

	got, err := svc.ActiveFeature(ctx, project.ID, "")
	require.NoError(t, err)
	assert.Equal(t, recent.ID, got.ID)

	// The primary feature outranks a more recently touched one
	primary, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "primary work", Category: "core",
	})
	require.NoError(t, err)
	_, err = client.Feature.UpdateOneID(primary.ID).
		SetStatus(feature.StatusInProgress).
		SetIsPrimary(true).
		Save(ctx)
	require.NoError(t, err)

	got, err = svc.ActiveFeature(ctx, project.ID, "")
	require.NoError(t, err)
	assert.Equal(t, primary.ID, got.ID)

	// The session's own cached feature wins over the project default
	startTestSession(t, client, project.ID, "resolve-sess")
	require.NoError(t, NewSessionService(client).CacheClassification(ctx, "resolve-sess", recent.ID, "prompt", ""))

	got, err = svc.ActiveFeature(ctx, project.ID, "resolve-sess")
	require.NoError(t, err)
	assert.Equal(t, recent.ID, got.ID)

	// A cached feature that is no longer in progress is ignored
	_, err = client.Feature.UpdateOneID(recent.ID).SetStatus(feature.StatusComplete).Save(ctx)
	require.NoError(t, err)

	got, err = svc.ActiveFeature(ctx, project.ID, "resolve-sess")
	require.NoError(t, err)
	assert.Equal(t, primary.ID, got.ID)
}

func TestFindSimilar(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	existing, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "Implement user authentication with OAuth", Category: "auth",
	})
	require.NoError(t, err)

	// Exact match, case-insensitive
	found, err := svc.FindSimilar(ctx, project.ID, "implement user authentication with oauth")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, found.ID)

	// Word overlap
	found, err = svc.FindSimilar(ctx, project.ID, "user authentication OAuth flow")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, found.ID)

	// No match
	_, err = svc.FindSimilar(ctx, project.ID, "rewrite billing exports")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeatureStats(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	for _, desc := range []string{"a", "b", "c"} {
		_, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
			Description: desc, Category: "core",
		})
		require.NoError(t, err)
	}

	stats, err := svc.FeatureStats(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 0, stats.Complete)
}

func TestArchiveFeature_CascadesSteps(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	created, err := svc.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "short lived", Category: "core", Steps: []string{"one", "two"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.ArchiveFeature(ctx, created.ID))

	_, err = svc.GetFeature(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	steps, err := client.Step.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, steps)

	assert.ErrorIs(t, svc.ArchiveFeature(ctx, created.ID), ErrNotFound)
}
