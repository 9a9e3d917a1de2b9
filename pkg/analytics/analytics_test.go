package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/pkg/models"
	"github.com/ijoka-ai/ijoka/pkg/services"
	testdb "github.com/ijoka-ai/ijoka/test/database"
)

func setupAnalytics(t *testing.T) (*ent.Client, *Service, string) {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	project, err := services.NewProjectService(client).
		EnsureProject(context.Background(), "/tmp/ijoka-analytics/"+t.Name())
	require.NoError(t, err)

	return client, NewService(client), project.ID
}

func createFeature(t *testing.T, client *ent.Client, projectID string, req models.CreateFeatureRequest) *ent.Feature {
	t.Helper()
	f, err := services.NewFeatureService(client).CreateFeature(context.Background(), projectID, req)
	require.NoError(t, err)
	return f
}

// createCompleted seeds a completed feature with explicit timestamps,
// bypassing the service because created_at is immutable.
func createCompleted(t *testing.T, client *ent.Client, projectID, desc, category, agent string, created, completed time.Time) *ent.Feature {
	t.Helper()
	create := client.Feature.Create().
		SetID(uuid.New().String()).
		SetDescription(desc).
		SetCategory(category).
		SetStatus(feature.StatusComplete).
		SetCreatedAt(created).
		SetCompletedAt(completed).
		SetProjectID(projectID)
	if agent != "" {
		create = create.SetAssignedAgent(agent)
	}
	f, err := create.Save(context.Background())
	require.NoError(t, err)
	return f
}

func TestPatterns_ClustersAndBottlenecks(t *testing.T) {
	client, svc, projectID := setupAnalytics(t)
	ctx := context.Background()

	for _, desc := range []string{"login", "logout", "token refresh"} {
		createFeature(t, client, projectID, models.CreateFeatureRequest{Description: desc, Category: "auth"})
	}
	createFeature(t, client, projectID, models.CreateFeatureRequest{Description: "solo", Category: "billing"})

	blocked := createFeature(t, client, projectID, models.CreateFeatureRequest{Description: "stuck one", Category: "auth"})
	_, err := services.NewFeatureService(client).BlockFeature(ctx, blocked.ID, models.BlockFeatureRequest{
		Reason: "waiting on credentials",
	})
	require.NoError(t, err)

	patterns, err := svc.Patterns(ctx, projectID)
	require.NoError(t, err)

	// Singleton categories are not clusters
	require.Len(t, patterns.Clusters, 1)
	assert.Equal(t, "auth", patterns.Clusters[0].Category)
	assert.Equal(t, 4, patterns.Clusters[0].Size)
	assert.Equal(t, "auth work", patterns.Clusters[0].Name)

	require.Len(t, patterns.Bottlenecks, 1)
	b := patterns.Bottlenecks[0]
	assert.Equal(t, blocked.ID, b.FeatureID)
	assert.Equal(t, "waiting on credentials", b.Reason)
	assert.Equal(t, "low", b.Severity, "just blocked")
}

func TestPatterns_RecurringWorkflows(t *testing.T) {
	client, svc, projectID := setupAnalytics(t)
	ctx := context.Background()

	steps := []string{"Write failing test", "Implement fix", "Refactor"}
	for _, desc := range []string{"bug one", "bug two"} {
		f := createFeature(t, client, projectID, models.CreateFeatureRequest{
			Description: desc, Category: "bugfix", Steps: steps,
		})
		_, err := client.Feature.UpdateOneID(f.ID).
			SetStatus(feature.StatusComplete).
			SetCompletedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	patterns, err := svc.Patterns(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, patterns.Workflows, 1)
	assert.Equal(t, 2, patterns.Workflows[0].Frequency)
	assert.Equal(t, []string{"write failing test", "implement fix", "refactor"}, patterns.Workflows[0].Steps)
}

func TestBlockSeverity(t *testing.T) {
	assert.Equal(t, "low", blockSeverity(2))
	assert.Equal(t, "medium", blockSeverity(9))
	assert.Equal(t, "high", blockSeverity(48))
	assert.Equal(t, "critical", blockSeverity(100))
}

func TestVelocity_DriftWarnings(t *testing.T) {
	client, svc, projectID := setupAnalytics(t)
	ctx := context.Background()

	now := time.Now()
	// Prior window: three completions
	for _, desc := range []string{"p1", "p2", "p3"} {
		createCompleted(t, client, projectID, desc, "core", "",
			now.AddDate(0, 0, -12), now.AddDate(0, 0, -10))
	}
	// Current window: one completion
	createCompleted(t, client, projectID, "c1", "core", "",
		now.AddDate(0, 0, -3), now.AddDate(0, 0, -1))

	velocity, err := svc.Velocity(ctx, projectID, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, velocity.Current.Completed)
	assert.InDelta(t, 48, velocity.Current.AvgCycleHours, 1)
	require.Len(t, velocity.DriftWarnings, 1)
	assert.Contains(t, velocity.DriftWarnings[0], "completions dropped")
}

func TestVelocity_NoPriorNoWarning(t *testing.T) {
	_, svc, projectID := setupAnalytics(t)

	velocity, err := svc.Velocity(context.Background(), projectID, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultVelocityWindowDays, velocity.Current.WindowDays)
	assert.Empty(t, velocity.DriftWarnings)
}

func TestProfile(t *testing.T) {
	client, svc, projectID := setupAnalytics(t)
	ctx := context.Background()

	now := time.Now()
	for i, desc := range []string{"done one", "done two"} {
		createCompleted(t, client, projectID, desc, "auth", "claude-code",
			now.Add(-time.Duration(4+i*4)*time.Hour), now)
	}
	open := createFeature(t, client, projectID, models.CreateFeatureRequest{Description: "open one", Category: "infra"})
	_, err := client.Feature.UpdateOneID(open.ID).SetAssignedAgent("claude-code").Save(ctx)
	require.NoError(t, err)
	createFeature(t, client, projectID, models.CreateFeatureRequest{Description: "other agent", Category: "infra"})

	profile, err := svc.Profile(ctx, projectID, "claude-code")
	require.NoError(t, err)
	assert.Equal(t, 3, profile.TotalFeatures)
	assert.Equal(t, 2, profile.CompletedFeatures)
	assert.InDelta(t, 2.0/3.0, profile.CompletionRate, 1e-9)
	assert.InDelta(t, 6, profile.AvgHoursToComplete, 0.1)
	assert.Equal(t, []string{"auth", "infra"}, profile.PreferredCategories)
}

func TestDigest_RanksBySeverity(t *testing.T) {
	client, svc, projectID := setupAnalytics(t)
	ctx := context.Background()

	blocked := createFeature(t, client, projectID, models.CreateFeatureRequest{Description: "long stall", Category: "core"})
	_, err := services.NewFeatureService(client).BlockFeature(ctx, blocked.ID, models.BlockFeatureRequest{
		Reason: "vendor outage",
	})
	require.NoError(t, err)
	// Age the block transition past the critical threshold
	_, err = client.StatusEvent.Delete().Exec(ctx)
	require.NoError(t, err)
	_, err = client.Feature.UpdateOneID(blocked.ID).
		SetUpdatedAt(time.Now().Add(-100 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	digest, err := svc.Digest(ctx, projectID)
	require.NoError(t, err)
	require.NotEmpty(t, digest.TopInsights)
	assert.Equal(t, "bottleneck", digest.TopInsights[0].Kind)
	assert.InDelta(t, impactCriticalBottleneck, digest.TopInsights[0].ImpactScore, 1e-9)
	assert.Equal(t, time.Now().Format("2006-01-02"), digest.Date)
	require.Len(t, digest.ActiveBottlenecks, 1)
}

func TestQuery_Routing(t *testing.T) {
	client, svc, projectID := setupAnalytics(t)
	ctx := context.Background()

	createFeature(t, client, projectID, models.CreateFeatureRequest{Description: "anything", Category: "core"})

	resp, err := svc.Query(ctx, projectID, "what is currently blocked?")
	require.NoError(t, err)
	assert.Equal(t, "bottlenecks", resp.QueryType)
	assert.Equal(t, []string{"Nothing is currently blocked."}, resp.Insights)

	resp, err = svc.Query(ctx, projectID, "how fast are we moving this month?")
	require.NoError(t, err)
	assert.Equal(t, "velocity", resp.QueryType)

	resp, err = svc.Query(ctx, projectID, "any recurring patterns?")
	require.NoError(t, err)
	assert.Equal(t, "patterns", resp.QueryType)

	resp, err = svc.Query(ctx, projectID, "how is claude-code doing?")
	require.NoError(t, err)
	assert.Equal(t, "agent_profile", resp.QueryType)

	resp, err = svc.Query(ctx, projectID, "which agent is best?")
	require.NoError(t, err)
	assert.Equal(t, "agent_profile", resp.QueryType)
	assert.Contains(t, resp.Insights[0], "Name an agent")

	resp, err = svc.Query(ctx, projectID, "summarise the project")
	require.NoError(t, err)
	assert.Equal(t, "digest", resp.QueryType)

	_, err = svc.Query(ctx, projectID, "   ")
	assert.Error(t, err)
}

func TestDetectAgentAndWindow(t *testing.T) {
	assert.Equal(t, "claude-code", detectAgent("How is claude-code doing?"))
	assert.Equal(t, "claude", detectAgent("what about Claude?"))
	assert.Equal(t, "codex", detectAgent("codex profile please"))
	assert.Equal(t, "", detectAgent("who did the most work"))

	assert.Equal(t, 1, windowDaysFor("velocity today"))
	assert.Equal(t, 14, windowDaysFor("pace over two weeks"))
	assert.Equal(t, 30, windowDaysFor("progress this month"))
	assert.Equal(t, 7, windowDaysFor("throughput this week"))
	assert.Equal(t, DefaultVelocityWindowDays, windowDaysFor("how fast are we"))
}
