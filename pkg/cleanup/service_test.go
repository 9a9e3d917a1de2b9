package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/pkg/services"
	testdb "github.com/ijoka-ai/ijoka/test/database"
)

func TestSweeper_MarksSilentSessionsStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	project, err := services.NewProjectService(client.Client).EnsureProject(ctx, "/tmp/sweep-test")
	require.NoError(t, err)

	_, err = sessions.StartSession(ctx, services.StartSessionRequest{
		SessionID: "sweep-silent",
		Agent:     "claude-code",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	err = client.Client.AgentSession.UpdateOneID("sweep-silent").
		SetLastActivity(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	sweeper := NewSweeper(client.Client, time.Hour)
	sweeper.sweep()

	updated, err := client.Client.AgentSession.Get(ctx, "sweep-silent")
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusStale, updated.Status)
}

func TestSweeper_PreservesActiveAndEndedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	project, err := services.NewProjectService(client.Client).EnsureProject(ctx, "/tmp/sweep-test")
	require.NoError(t, err)

	_, err = sessions.StartSession(ctx, services.StartSessionRequest{
		SessionID: "sweep-active",
		Agent:     "claude-code",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	_, err = sessions.StartSession(ctx, services.StartSessionRequest{
		SessionID: "sweep-ended",
		Agent:     "claude-code",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	// Ended long ago, but already closed: the sweeper must not touch it
	err = client.Client.AgentSession.UpdateOneID("sweep-ended").
		SetStatus(agentsession.StatusEnded).
		SetLastActivity(time.Now().Add(-3 * time.Hour)).
		SetEndedAt(time.Now().Add(-3 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	sweeper := NewSweeper(client.Client, time.Hour)
	sweeper.sweep()

	active, err := client.Client.AgentSession.Get(ctx, "sweep-active")
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusActive, active.Status)

	ended, err := client.Client.AgentSession.Get(ctx, "sweep-ended")
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusEnded, ended.Status)
}

func TestNewSweeper_IntervalFloor(t *testing.T) {
	s := NewSweeper(nil, 2*time.Minute)
	assert.Equal(t, time.Minute, s.interval)

	s = NewSweeper(nil, 8*time.Hour)
	assert.Equal(t, 2*time.Hour, s.interval)
}
