package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
)

// Hierarchy operations. CHILD_OF links induce a DAG: a single
// ancestor-contains check before the link write keeps it acyclic.

// LinkToParent makes child a child of parent. Rejects self-parenting and
// links that would create a cycle.
func (s *FeatureService) LinkToParent(httpCtx context.Context, childID, parentID string) error {
	if childID == parentID {
		return &CycleError{FeatureID: childID, AncestorID: parentID}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ancestors, err := s.GetAncestors(ctx, parentID)
	if err != nil {
		return err
	}
	for _, a := range ancestors {
		if a.ID == childID {
			return &CycleError{FeatureID: childID, AncestorID: parentID}
		}
	}

	err = s.client.Feature.UpdateOneID(childID).
		SetParentID(parentID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if ent.IsConstraintError(err) {
			// Parent does not exist
			return ErrNotFound
		}
		return fmt.Errorf("failed to link to parent: %w", err)
	}
	return nil
}

// UnlinkFromParent detaches the feature from its parent.
func (s *FeatureService) UnlinkFromParent(httpCtx context.Context, childID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Feature.UpdateOneID(childID).
		ClearParentID().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to unlink from parent: %w", err)
	}
	return nil
}

// GetChildren returns the direct children of a feature.
func (s *FeatureService) GetChildren(ctx context.Context, id string) ([]*ent.Feature, error) {
	children, err := s.client.Feature.Query().
		Where(feature.ParentIDEQ(id)).
		Order(ent.Desc(feature.FieldPriority), ent.Asc(feature.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	return children, nil
}

// GetAncestors walks the parent chain from the feature to the root,
// nearest ancestor first.
func (s *FeatureService) GetAncestors(ctx context.Context, id string) ([]*ent.Feature, error) {
	var ancestors []*ent.Feature

	current, err := s.GetFeature(ctx, id)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{current.ID: {}}

	for current.ParentID != nil {
		parent, err := s.GetFeature(ctx, *current.ParentID)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[parent.ID]; dup {
			// A pre-existing cycle would loop forever; stop here
			break
		}
		seen[parent.ID] = struct{}{}
		ancestors = append(ancestors, parent)
		current = parent
	}
	return ancestors, nil
}

// GetDescendants returns all transitive children, breadth-first.
func (s *FeatureService) GetDescendants(ctx context.Context, id string) ([]*ent.Feature, error) {
	var descendants []*ent.Feature
	frontier := []string{id}
	seen := map[string]struct{}{id: {}}

	for len(frontier) > 0 {
		children, err := s.client.Feature.Query().
			Where(feature.ParentIDIn(frontier...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query descendants: %w", err)
		}

		frontier = frontier[:0]
		for _, c := range children {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			descendants = append(descendants, c)
			frontier = append(frontier, c.ID)
		}
	}
	return descendants, nil
}

// GetDescendantEvents returns the union of events linked to the feature
// and any of its descendants, newest first. Used to show rolled-up
// activity on epics.
func (s *FeatureService) GetDescendantEvents(ctx context.Context, id string, limit int) ([]*ent.HookEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	descendants, err := s.GetDescendants(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(descendants)+1)
	ids = append(ids, id)
	for _, d := range descendants {
		ids = append(ids, d.ID)
	}

	events, err := s.client.HookEvent.Query().
		Where(hookevent.HasFeaturesWith(feature.IDIn(ids...))).
		Order(ent.Desc(hookevent.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query descendant events: %w", err)
	}
	return events, nil
}
