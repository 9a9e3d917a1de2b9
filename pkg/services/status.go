package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
)

// statusTransition describes one feature status change.
type statusTransition struct {
	To        feature.Status
	By        string
	SessionID string
	Reason    string
}

// recordStatus writes the feature's new status and the matching
// StatusEvent together, keeping the materialised status column in sync
// with the append-only audit trail. Both clients must come from the same
// transaction when atomicity matters.
//
// mutate may add further field changes (claim triple, completed_at, ...)
// to the same update.
func recordStatus(
	ctx context.Context,
	features *ent.FeatureClient,
	statusEvents *ent.StatusEventClient,
	f *ent.Feature,
	t statusTransition,
	mutate func(*ent.FeatureUpdateOne) *ent.FeatureUpdateOne,
) (*ent.Feature, error) {
	update := features.UpdateOneID(f.ID).SetStatus(t.To)
	if mutate != nil {
		update = mutate(update)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update feature status: %w", err)
	}

	create := statusEvents.Create().
		SetID(uuid.New().String()).
		SetFromStatus(string(f.Status)).
		SetToStatus(string(t.To)).
		SetAt(time.Now()).
		SetBy(t.By).
		SetFeatureID(f.ID)
	if t.SessionID != "" {
		create = create.SetSessionID(t.SessionID)
	}
	if t.Reason != "" {
		create = create.SetReason(t.Reason)
	}
	if err := create.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record status event: %w", err)
	}

	return updated, nil
}
