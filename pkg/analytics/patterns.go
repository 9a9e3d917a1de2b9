package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// Bottleneck severity thresholds in hours blocked.
const (
	criticalBlockHours = 72
	highBlockHours     = 24
	mediumBlockHours   = 8
)

const minWorkflowFrequency = 2

// Patterns computes the three pattern views for a project: category
// clusters, recurring step workflows, and blocked-feature bottlenecks.
func (s *Service) Patterns(ctx context.Context, projectID string) (*models.PatternsResponse, error) {
	features, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.IsSessionWork(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}

	clusters := clusterByCategory(features)

	workflows, err := s.recurringWorkflows(ctx, features)
	if err != nil {
		return nil, err
	}

	bottlenecks, err := s.bottlenecks(ctx, features)
	if err != nil {
		return nil, err
	}

	return &models.PatternsResponse{
		Clusters:    clusters,
		Workflows:   workflows,
		Bottlenecks: bottlenecks,
	}, nil
}

// clusterByCategory groups features sharing a category. Singleton
// categories are noise, not clusters.
func clusterByCategory(features []*ent.Feature) []models.FeatureCluster {
	byCategory := make(map[string][]*ent.Feature)
	for _, f := range features {
		byCategory[f.Category] = append(byCategory[f.Category], f)
	}

	clusters := make([]models.FeatureCluster, 0, len(byCategory))
	for category, members := range byCategory {
		if len(members) < 2 {
			continue
		}
		descriptions := make([]string, 0, len(members))
		for _, m := range members {
			descriptions = append(descriptions, m.Description)
		}
		clusters = append(clusters, models.FeatureCluster{
			Name:     category + " work",
			Category: category,
			Size:     len(members),
			Features: descriptions,
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Size != clusters[j].Size {
			return clusters[i].Size > clusters[j].Size
		}
		return clusters[i].Category < clusters[j].Category
	})
	return clusters
}

// recurringWorkflows finds ordered step-description sequences that
// repeat across completed features.
func (s *Service) recurringWorkflows(ctx context.Context, features []*ent.Feature) ([]models.Workflow, error) {
	sequences := make(map[string][]string)
	counts := make(map[string]int)

	for _, f := range features {
		if f.Status != feature.StatusComplete {
			continue
		}
		steps, err := s.client.Step.Query().
			Where(step.FeatureIDEQ(f.ID)).
			Order(ent.Asc(step.FieldStepOrder)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query steps: %w", err)
		}
		if len(steps) < 2 {
			continue
		}

		descriptions := make([]string, 0, len(steps))
		for _, st := range steps {
			descriptions = append(descriptions, normalizeStep(st.Description))
		}
		key := strings.Join(descriptions, " -> ")
		sequences[key] = descriptions
		counts[key]++
	}

	workflows := make([]models.Workflow, 0)
	for key, count := range counts {
		if count < minWorkflowFrequency {
			continue
		}
		workflows = append(workflows, models.Workflow{
			Steps:     sequences[key],
			Frequency: count,
		})
	}
	sort.Slice(workflows, func(i, j int) bool {
		return workflows[i].Frequency > workflows[j].Frequency
	})
	return workflows, nil
}

// bottlenecks lists blocked features with time-blocked severity. The
// block start comes from the latest transition into blocked.
func (s *Service) bottlenecks(ctx context.Context, features []*ent.Feature) ([]models.Bottleneck, error) {
	now := time.Now()
	bottlenecks := make([]models.Bottleneck, 0)

	for _, f := range features {
		if f.Status != feature.StatusBlocked {
			continue
		}

		blockedAt := f.UpdatedAt
		transition, err := s.client.StatusEvent.Query().
			Where(
				statusevent.FeatureIDEQ(f.ID),
				statusevent.ToStatusEQ(string(feature.StatusBlocked)),
			).
			Order(ent.Desc(statusevent.FieldAt)).
			First(ctx)
		if err == nil {
			blockedAt = transition.At
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query block transition: %w", err)
		}

		hours := now.Sub(blockedAt).Hours()
		b := models.Bottleneck{
			FeatureID:    f.ID,
			Description:  f.Description,
			HoursBlocked: hours,
			Severity:     blockSeverity(hours),
		}
		if f.BlockReason != nil {
			b.Reason = *f.BlockReason
		}
		bottlenecks = append(bottlenecks, b)
	}

	sort.Slice(bottlenecks, func(i, j int) bool {
		return bottlenecks[i].HoursBlocked > bottlenecks[j].HoursBlocked
	})
	return bottlenecks, nil
}

func blockSeverity(hours float64) string {
	switch {
	case hours > criticalBlockHours:
		return "critical"
	case hours > highBlockHours:
		return "high"
	case hours > mediumBlockHours:
		return "medium"
	default:
		return "low"
	}
}

// normalizeStep collapses step descriptions for sequence comparison.
func normalizeStep(description string) string {
	return strings.Join(strings.Fields(strings.ToLower(description)), " ")
}
