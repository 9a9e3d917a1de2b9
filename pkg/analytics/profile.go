package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

const preferredCategoryLimit = 5

// Profile summarises one agent's work history in a project: volume,
// completion rate, average completion time, and the categories it works
// in most.
func (s *Service) Profile(ctx context.Context, projectID, agent string) (*models.AgentProfile, error) {
	features, err := s.client.Feature.Query().
		Where(
			feature.ProjectIDEQ(projectID),
			feature.AssignedAgentEQ(agent),
			feature.IsSessionWork(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent features: %w", err)
	}

	profile := &models.AgentProfile{
		Agent:               agent,
		TotalFeatures:       len(features),
		PreferredCategories: []string{},
	}

	categoryCounts := make(map[string]int)
	var totalHours float64
	for _, f := range features {
		categoryCounts[f.Category]++
		if f.Status == feature.StatusComplete {
			profile.CompletedFeatures++
			if f.CompletedAt != nil {
				totalHours += f.CompletedAt.Sub(f.CreatedAt).Hours()
			}
		}
	}

	if profile.TotalFeatures > 0 {
		profile.CompletionRate = float64(profile.CompletedFeatures) / float64(profile.TotalFeatures)
	}
	if profile.CompletedFeatures > 0 {
		profile.AvgHoursToComplete = totalHours / float64(profile.CompletedFeatures)
	}

	type categoryCount struct {
		name  string
		count int
	}
	ranked := make([]categoryCount, 0, len(categoryCounts))
	for name, count := range categoryCounts {
		ranked = append(ranked, categoryCount{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	for i, c := range ranked {
		if i >= preferredCategoryLimit {
			break
		}
		profile.PreferredCategories = append(profile.PreferredCategories, c.name)
	}

	return profile, nil
}
