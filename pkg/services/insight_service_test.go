package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

func TestCreateInsight(t *testing.T) {
	client, project := setupProject(t)
	insights := NewInsightService(client)
	features := NewFeatureService(client)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "source feature", Category: "core",
	})
	require.NoError(t, err)

	created, err := insights.CreateInsight(ctx, models.CreateInsightRequest{
		Description: "Retry transient pgx errors with backoff",
		PatternType: "solution",
		Tags:        []string{" Postgres ", "RETRY", ""},
		FeatureID:   f.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"postgres", "retry"}, created.Tags)
	require.NotNil(t, created.FeatureID)
	assert.Equal(t, f.ID, *created.FeatureID)
	assert.Equal(t, 0, created.UsageCount)

	_, err = insights.CreateInsight(ctx, models.CreateInsightRequest{
		Description: "x", PatternType: "vibe",
	})
	assert.True(t, IsValidationError(err))

	_, err = insights.CreateInsight(ctx, models.CreateInsightRequest{
		PatternType: "solution",
	})
	assert.True(t, IsValidationError(err))

	_, err = insights.CreateInsight(ctx, models.CreateInsightRequest{
		Description: "dangling", PatternType: "solution", FeatureID: "missing",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchInsights_BumpsUsageCount(t *testing.T) {
	client, _ := setupProject(t)
	insights := NewInsightService(client)
	ctx := context.Background()

	pg, err := insights.CreateInsight(ctx, models.CreateInsightRequest{
		Description: "Use advisory locks for migration coordination",
		PatternType: "best_practice",
		Tags:        []string{"postgres", "migrations"},
	})
	require.NoError(t, err)
	_, err = insights.CreateInsight(ctx, models.CreateInsightRequest{
		Description: "Avoid mocking the HTTP client in handler tests",
		PatternType: "anti_pattern",
		Tags:        []string{"testing"},
	})
	require.NoError(t, err)

	hits, err := insights.SearchInsights(ctx, "migration locks", nil, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, pg.ID, hits[0].ID)

	// A returned hit counts as used
	reloaded, err := insights.GetInsight(ctx, pg.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.UsageCount)

	// Tag filter
	hits, err = insights.SearchInsights(ctx, "", []string{"Testing"}, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "anti_pattern", string(hits[0].PatternType))

	// No match
	hits, err = insights.SearchInsights(ctx, "kubernetes ingress", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// Empty query with no tags returns newest first up to the limit
	hits, err = insights.SearchInsights(ctx, "", nil, 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestRecordFeedback_EffectivenessScore(t *testing.T) {
	client, _ := setupProject(t)
	insights := NewInsightService(client)
	ctx := context.Background()

	in, err := insights.CreateInsight(ctx, models.CreateInsightRequest{
		Description: "Pin tool versions in CI",
		PatternType: "best_practice",
	})
	require.NoError(t, err)

	updated, err := insights.RecordFeedback(ctx, models.InsightFeedbackRequest{
		InsightID: in.ID, Helpful: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.FeedbackCount)
	assert.Equal(t, 1, updated.HelpfulCount)
	require.NotNil(t, updated.EffectivenessScore)
	assert.InDelta(t, 1.0, *updated.EffectivenessScore, 1e-9)

	updated, err = insights.RecordFeedback(ctx, models.InsightFeedbackRequest{
		InsightID: in.ID, Helpful: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.FeedbackCount)
	assert.Equal(t, 1, updated.HelpfulCount)
	assert.InDelta(t, 0.5, *updated.EffectivenessScore, 1e-9)

	_, err = insights.RecordFeedback(ctx, models.InsightFeedbackRequest{InsightID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = insights.RecordFeedback(ctx, models.InsightFeedbackRequest{})
	assert.True(t, IsValidationError(err))
}
