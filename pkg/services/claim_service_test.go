package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

const testStaleThreshold = 30 * time.Minute

func startTestSession(t *testing.T, client *ent.Client, projectID, sessionID string) {
	t.Helper()
	_, err := NewSessionService(client).StartSession(context.Background(), StartSessionRequest{
		SessionID: sessionID,
		Agent:     "claude-code",
		ProjectID: projectID,
	})
	require.NoError(t, err)
}

func TestStartFeature_ClaimsAndRecordsTransition(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "claimable", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "sess-1")

	claimed, err := claims.StartFeature(ctx, f.ID, "claude-code", "sess-1", false)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.ClaimingSessionID)
	assert.Equal(t, "sess-1", *claimed.ClaimingSessionID)
	require.NotNil(t, claimed.ClaimingAgent)
	assert.Equal(t, "claude-code", *claimed.ClaimingAgent)

	transition, err := client.StatusEvent.Query().
		Where(statusevent.FeatureIDEQ(f.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pending", transition.FromStatus)
	assert.Equal(t, "in_progress", transition.ToStatus)
	assert.Equal(t, "start:claude-code", transition.By)

	// The claiming session caches the feature as its active one
	session, err := client.AgentSession.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, session.ActiveFeatureID)
	assert.Equal(t, f.ID, *session.ActiveFeatureID)
}

func TestStartFeature_WithoutSessionLeavesClaimFree(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "assigned without session", Category: "core",
	})
	require.NoError(t, err)

	// A claim is a session lease; with no session only the assignment
	// is recorded and the claim fields stay all-null
	started, err := claims.StartFeature(ctx, f.ID, "claude-code", "", false)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusInProgress, started.Status)
	require.NotNil(t, started.AssignedAgent)
	assert.Equal(t, "claude-code", *started.AssignedAgent)
	assert.Nil(t, started.ClaimingSessionID)
	assert.Nil(t, started.ClaimingAgent)
	assert.Nil(t, started.ClaimedAt)

	// No phantom claim: a real session can take the feature afterwards
	startTestSession(t, client, project.ID, "later-sess")
	claimed, err := claims.StartFeature(ctx, f.ID, "gemini-cli", "later-sess", false)
	require.NoError(t, err)
	require.NotNil(t, claimed.ClaimingSessionID)
	assert.Equal(t, "later-sess", *claimed.ClaimingSessionID)
}

func TestStartFeature_ConflictWithActiveSession(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "contested", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "sess-a")
	startTestSession(t, client, project.ID, "sess-b")

	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "sess-a", false)
	require.NoError(t, err)

	_, err = claims.StartFeature(ctx, f.ID, "codex", "sess-b", false)
	require.Error(t, err)
	assert.True(t, IsClaimConflict(err))

	conflict := err.(*ClaimConflictError)
	assert.Equal(t, f.ID, conflict.FeatureID)
	assert.Equal(t, "claude-code", conflict.HeldBy)
	assert.Equal(t, "sess-a", conflict.SessionID)

	// Re-claiming from the holding session is fine
	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "sess-a", false)
	assert.NoError(t, err)
}

func TestStartFeature_StaleClaimIsOverridden(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "abandoned", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "sess-old")
	startTestSession(t, client, project.ID, "sess-new")

	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "sess-old", false)
	require.NoError(t, err)

	// Holder went silent past the stale threshold
	err = client.AgentSession.UpdateOneID("sess-old").
		SetLastActivity(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	claimed, err := claims.StartFeature(ctx, f.ID, "codex", "sess-new", false)
	require.NoError(t, err)
	assert.Equal(t, "sess-new", *claimed.ClaimingSessionID)
	assert.Equal(t, "codex", *claimed.ClaimingAgent)
}

func TestStartFeature_ForceOverride(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "forced", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "sess-a")
	startTestSession(t, client, project.ID, "sess-b")

	_, err = claims.StartFeature(ctx, f.ID, "claude-code", "sess-a", false)
	require.NoError(t, err)

	claimed, err := claims.StartFeature(ctx, f.ID, "codex", "sess-b", true)
	require.NoError(t, err)
	assert.Equal(t, "sess-b", *claimed.ClaimingSessionID)
}

func TestStartFeature_NotFound(t *testing.T) {
	client, _ := setupProject(t)
	claims := NewClaimService(client, testStaleThreshold)

	_, err := claims.StartFeature(context.Background(), "missing", "claude-code", "", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = claims.StartFeature(context.Background(), "missing", "", "", false)
	assert.True(t, IsValidationError(err))
}

func TestNextStartableFeature_SkipsBlockedDeps(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	blocker, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "schema first", Category: "db", Priority: 1,
	})
	require.NoError(t, err)
	dependent, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "query layer", Category: "db", Priority: 50,
	})
	require.NoError(t, err)

	// dependent has top priority but is blocked by blocker
	_, err = features.BlockFeature(ctx, dependent.ID, models.BlockFeatureRequest{
		Reason: "needs schema", BlockingFeatureID: blocker.ID,
	})
	require.NoError(t, err)
	// Back to pending, the dependency edge stays
	_, err = client.Feature.UpdateOneID(dependent.ID).
		SetStatus(feature.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	next, err := claims.NextStartableFeature(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, blocker.ID, next.ID, "dependency-free feature wins despite lower priority")

	// Session-work is never offered
	_, err = features.EnsureSessionWork(ctx, project.ID)
	require.NoError(t, err)
	next, err = claims.NextStartableFeature(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, blocker.ID, next.ID)
}

func TestNextStartableFeature_NonePending(t *testing.T) {
	client, project := setupProject(t)
	claims := NewClaimService(client, testStaleThreshold)

	_, err := claims.NextStartableFeature(context.Background(), project.ID)
	assert.ErrorIs(t, err, ErrNoPendingFeature)
}

func TestCompleteFeature_ReleasesClaimAndActivatesNext(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	current, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "current work", Category: "core", Priority: 10,
	})
	require.NoError(t, err)
	successor, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "next up", Category: "core", Priority: 5,
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "sess-1")

	_, err = claims.StartFeature(ctx, current.ID, "claude-code", "sess-1", false)
	require.NoError(t, err)

	completed, err := claims.CompleteFeature(ctx, current.ID, "claude-code", "sess-1", "shipped it")
	require.NoError(t, err)
	assert.Equal(t, feature.StatusComplete, completed.Status)
	assert.Nil(t, completed.ClaimingSessionID)
	assert.Nil(t, completed.ClaimingAgent)
	assert.NotNil(t, completed.CompletedAt)

	// Successor was auto-activated without a claim
	activated, err := client.Feature.Get(ctx, successor.ID)
	require.NoError(t, err)
	assert.Equal(t, feature.StatusInProgress, activated.Status)
	assert.Nil(t, activated.ClaimingSessionID)

	transition, err := client.StatusEvent.Query().
		Where(
			statusevent.FeatureIDEQ(successor.ID),
			statusevent.ToStatusEQ("in_progress"),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "auto:next_after:"+current.ID, transition.By)
}

func TestCompleteFeature_NoSuccessorIsFine(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "only one", Category: "core",
	})
	require.NoError(t, err)

	completed, err := claims.CompleteFeature(ctx, f.ID, "claude-code", "", "")
	require.NoError(t, err)
	assert.Equal(t, feature.StatusComplete, completed.Status)
}

func TestStartNextFeature(t *testing.T) {
	client, project := setupProject(t)
	features := NewFeatureService(client)
	claims := NewClaimService(client, testStaleThreshold)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "only candidate", Category: "core",
	})
	require.NoError(t, err)
	startTestSession(t, client, project.ID, "sess-1")

	claimed, err := claims.StartNextFeature(ctx, project.ID, "claude-code", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, f.ID, claimed.ID)
	assert.Equal(t, feature.StatusInProgress, claimed.Status)

	_, err = claims.StartNextFeature(ctx, project.ID, "claude-code", "sess-1")
	assert.ErrorIs(t, err, ErrNoPendingFeature)
}
