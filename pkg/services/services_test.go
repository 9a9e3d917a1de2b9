package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	testdb "github.com/ijoka-ai/ijoka/test/database"
)

// setupProject creates a fresh database with one project for the test.
func setupProject(t *testing.T) (*ent.Client, *ent.Project) {
	t.Helper()
	client := testdb.NewTestClient(t)

	project, err := NewProjectService(client.Client).
		EnsureProject(context.Background(), "/tmp/ijoka-test/"+t.Name())
	require.NoError(t, err)

	return client.Client, project
}
