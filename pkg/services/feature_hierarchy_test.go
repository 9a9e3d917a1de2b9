package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

func createChain(t *testing.T, client *ent.Client, projectID string, descriptions ...string) []*ent.Feature {
	t.Helper()
	svc := NewFeatureService(client)
	ctx := context.Background()

	out := make([]*ent.Feature, 0, len(descriptions))
	for i, desc := range descriptions {
		req := models.CreateFeatureRequest{Description: desc, Category: "core"}
		if i > 0 {
			req.ParentID = out[i-1].ID
		}
		f, err := svc.CreateFeature(ctx, projectID, req)
		require.NoError(t, err)
		out = append(out, f)
	}
	return out
}

func TestLinkToParent_RejectsCycles(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	chain := createChain(t, client, project.ID, "epic", "story", "task")

	// Linking the epic under its grandchild would close a loop
	err := svc.LinkToParent(ctx, chain[0].ID, chain[2].ID)
	require.Error(t, err)
	assert.True(t, IsCycleError(err))

	// Self-parenting
	err = svc.LinkToParent(ctx, chain[0].ID, chain[0].ID)
	assert.True(t, IsCycleError(err))

	// Missing parent
	err = svc.LinkToParent(ctx, chain[2].ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHierarchyTraversal(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	chain := createChain(t, client, project.ID, "epic", "story", "task")

	ancestors, err := svc.GetAncestors(ctx, chain[2].ID)
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, chain[1].ID, ancestors[0].ID, "nearest ancestor first")
	assert.Equal(t, chain[0].ID, ancestors[1].ID)

	descendants, err := svc.GetDescendants(ctx, chain[0].ID)
	require.NoError(t, err)
	assert.Len(t, descendants, 2)

	children, err := svc.GetChildren(ctx, chain[0].ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, chain[1].ID, children[0].ID)
}

func TestUnlinkFromParent(t *testing.T) {
	client, project := setupProject(t)
	svc := NewFeatureService(client)
	ctx := context.Background()

	chain := createChain(t, client, project.ID, "parent", "child")

	require.NoError(t, svc.UnlinkFromParent(ctx, chain[1].ID))

	orphan, err := svc.GetFeature(ctx, chain[1].ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.ParentID)

	ancestors, err := svc.GetAncestors(ctx, chain[1].ID)
	require.NoError(t, err)
	assert.Empty(t, ancestors)
}
