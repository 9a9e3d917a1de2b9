package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// driftTolerance is the relative change against the prior window that
// triggers a velocity warning.
const driftTolerance = 0.30

// Velocity measures completion throughput over the given window and
// compares it against the immediately preceding window of the same
// length.
func (s *Service) Velocity(ctx context.Context, projectID string, windowDays int) (*models.VelocityResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultVelocityWindowDays
	}

	now := time.Now()
	windowStart := now.AddDate(0, 0, -windowDays)
	priorStart := now.AddDate(0, 0, -2*windowDays)

	current, err := s.measureWindow(ctx, projectID, windowStart, now, windowDays)
	if err != nil {
		return nil, err
	}
	prior, err := s.measureWindow(ctx, projectID, priorStart, windowStart, windowDays)
	if err != nil {
		return nil, err
	}

	resp := &models.VelocityResponse{
		Current:       current,
		DriftWarnings: []string{},
	}

	if prior.Completed > 0 {
		change := float64(current.Completed-prior.Completed) / float64(prior.Completed)
		if change < -driftTolerance {
			resp.DriftWarnings = append(resp.DriftWarnings, fmt.Sprintf(
				"completions dropped %.0f%% vs the prior %d days (%d -> %d)",
				-change*100, windowDays, prior.Completed, current.Completed))
		}
	}
	if prior.AvgCycleHours > 0 && current.AvgCycleHours > prior.AvgCycleHours*(1+driftTolerance) {
		resp.DriftWarnings = append(resp.DriftWarnings, fmt.Sprintf(
			"average cycle time rose from %.1fh to %.1fh",
			prior.AvgCycleHours, current.AvgCycleHours))
	}

	return resp, nil
}

// measureWindow computes one window's numbers. Starts come from
// transitions into in_progress; completions from completed_at stamps.
func (s *Service) measureWindow(ctx context.Context, projectID string, from, to time.Time, windowDays int) (models.VelocityWindow, error) {
	w := models.VelocityWindow{WindowDays: windowDays}

	started, err := s.client.StatusEvent.Query().
		Where(
			statusevent.ToStatusEQ(string(feature.StatusInProgress)),
			statusevent.AtGT(from),
			statusevent.AtLTE(to),
			statusevent.HasFeatureWith(
				feature.ProjectIDEQ(projectID),
				feature.IsSessionWork(false),
			),
		).
		Select(statusevent.FieldFeatureID).
		Strings(ctx)
	if err != nil {
		return w, fmt.Errorf("failed to query started features: %w", err)
	}
	distinct := make(map[string]struct{}, len(started))
	for _, id := range started {
		distinct[id] = struct{}{}
	}
	w.Started = len(distinct)

	completed, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.IsSessionWork(false),
			feature.CompletedAtGT(from),
			feature.CompletedAtLTE(to),
		).
		All(ctx)
	if err != nil {
		return w, fmt.Errorf("failed to query completed features: %w", err)
	}
	w.Completed = len(completed)

	if len(completed) > 0 {
		var totalHours float64
		for _, f := range completed {
			totalHours += f.CompletedAt.Sub(f.CreatedAt).Hours()
		}
		w.AvgCycleHours = totalHours / float64(len(completed))
	}
	if windowDays > 0 {
		w.FeaturesPerDay = float64(w.Completed) / float64(windowDays)
	}
	return w, nil
}
