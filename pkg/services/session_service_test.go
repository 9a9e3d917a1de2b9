package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

func TestStartSession_LinksAncestry(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	first, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "ancestor", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, first.ContinuedFromID)

	second, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "descendant", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, second.ContinuedFromID)
	assert.Equal(t, "ancestor", *second.ContinuedFromID)
}

func TestStartSession_RedeliveryRefreshesActivity(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "redelivered", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)

	err = client.AgentSession.UpdateOneID("redelivered").
		SetStatus(agentsession.StatusStale).
		SetLastActivity(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	refreshed, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "redelivered", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusActive, refreshed.Status)
	assert.WithinDuration(t, time.Now(), refreshed.LastActivity, time.Minute)

	count, err := client.AgentSession.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStartSession_Validation(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, StartSessionRequest{Agent: "a", ProjectID: project.ID})
	assert.True(t, IsValidationError(err))
	_, err = svc.StartSession(ctx, StartSessionRequest{SessionID: "s", ProjectID: project.ID})
	assert.True(t, IsValidationError(err))
	_, err = svc.StartSession(ctx, StartSessionRequest{SessionID: "s", Agent: "a"})
	assert.True(t, IsValidationError(err))
}

func TestEndSession_RecordsCommits(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	features := NewFeatureService(client)
	ctx := context.Background()

	f, err := features.CreateFeature(ctx, project.ID, models.CreateFeatureRequest{
		Description: "commit target", Category: "core",
	})
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, StartSessionRequest{
		SessionID: "commit-sess", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)
	require.NoError(t, svc.CacheClassification(ctx, "commit-sess", f.ID, "manual_start", ""))

	err = svc.EndSession(ctx, models.SessionEndRequest{
		SessionID: "commit-sess",
		Commits: []models.CommitRecord{
			{Hash: "abc123", Message: "add login", Author: "dev", Timestamp: "2026-08-24T10:00:00Z"},
			{Hash: "def456", Message: "fix tests", Timestamp: "not-a-time"},
		},
	})
	require.NoError(t, err)

	commits, err := client.Commit.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, commits, 2)
	for _, c := range commits {
		require.NotNil(t, c.FeatureID)
		assert.Equal(t, f.ID, *c.FeatureID)
	}

	// Re-delivering the same commits is idempotent
	err = svc.EndSession(ctx, models.SessionEndRequest{
		SessionID: "commit-sess",
		Commits:   []models.CommitRecord{{Hash: "abc123", Message: "add login"}},
	})
	require.NoError(t, err)
	count, err := client.Commit.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	session, err := svc.GetSession(ctx, "commit-sess")
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusEnded, session.Status)
	assert.NotNil(t, session.EndedAt)
}

func TestEndSession_NotFound(t *testing.T) {
	client, _ := setupProject(t)
	svc := NewSessionService(client)

	err := svc.EndSession(context.Background(), models.SessionEndRequest{SessionID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.EndSession(context.Background(), models.SessionEndRequest{})
	assert.True(t, IsValidationError(err))
}

func TestTouchActivity(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "touched", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.TouchActivity(ctx, "touched"))
	require.NoError(t, svc.TouchActivity(ctx, "touched"))

	session, err := svc.GetSession(ctx, "touched")
	require.NoError(t, err)
	assert.Equal(t, 2, session.EventCount)

	assert.ErrorIs(t, svc.TouchActivity(ctx, "ghost"), ErrNotFound)
}

func TestMarkNudgeShown_OncePerSession(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "nudged", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)

	first, err := svc.MarkNudgeShown(ctx, "nudged", "commit_reminder")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := svc.MarkNudgeShown(ctx, "nudged", "commit_reminder")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := svc.MarkNudgeShown(ctx, "nudged", "stuck")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestIsSessionActive(t *testing.T) {
	client, project := setupProject(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, StartSessionRequest{
		SessionID: "alive", Agent: "claude-code", ProjectID: project.ID,
	})
	require.NoError(t, err)

	active, err := svc.IsSessionActive(ctx, "alive", 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, active)

	err = client.AgentSession.UpdateOneID("alive").
		SetLastActivity(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	active, err = svc.IsSessionActive(ctx, "alive", 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, active)
}
