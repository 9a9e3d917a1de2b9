package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// Impact scores per digest entry kind. Ranking multiplies impact by
// confidence so a vague critical signal can lose to a certain high one.
const (
	impactCriticalBottleneck = 0.95
	impactHighBottleneck     = 0.8
	impactVelocityDrift      = 0.6
	impactCluster            = 0.4
)

// Digest assembles the daily summary: the highest-ranked insights, the
// week's velocity, and currently blocked features.
func (s *Service) Digest(ctx context.Context, projectID string) (*models.DigestResponse, error) {
	patterns, err := s.Patterns(ctx, projectID)
	if err != nil {
		return nil, err
	}
	velocity, err := s.Velocity(ctx, projectID, DefaultVelocityWindowDays)
	if err != nil {
		return nil, err
	}

	insights := make([]models.DigestInsight, 0)

	for _, b := range patterns.Bottlenecks {
		impact := impactHighBottleneck
		confidence := 0.8
		if b.Severity == "critical" {
			impact = impactCriticalBottleneck
			confidence = 0.95
		} else if b.Severity == "low" || b.Severity == "medium" {
			continue
		}
		insights = append(insights, models.DigestInsight{
			Kind:        "bottleneck",
			Title:       fmt.Sprintf("%q blocked for %.0f hours", b.Description, b.HoursBlocked),
			Detail:      b.Reason,
			ImpactScore: impact,
			Confidence:  confidence,
		})
	}

	for _, warning := range velocity.DriftWarnings {
		insights = append(insights, models.DigestInsight{
			Kind:        "velocity_drift",
			Title:       "Velocity is drifting",
			Detail:      warning,
			ImpactScore: impactVelocityDrift,
			Confidence:  0.7,
		})
	}

	for _, c := range patterns.Clusters {
		if c.Size < 3 {
			continue
		}
		insights = append(insights, models.DigestInsight{
			Kind:        "cluster",
			Title:       fmt.Sprintf("%d features cluster around %s", c.Size, c.Category),
			Detail:      "Consider an epic to track this area of work.",
			ImpactScore: impactCluster,
			Confidence:  0.6,
		})
	}

	sort.Slice(insights, func(i, j int) bool {
		return insights[i].ImpactScore*insights[i].Confidence >
			insights[j].ImpactScore*insights[j].Confidence
	})
	if len(insights) > digestInsightLimit {
		insights = insights[:digestInsightLimit]
	}

	bottlenecks := patterns.Bottlenecks
	if len(bottlenecks) > digestBottleneckLimit {
		bottlenecks = bottlenecks[:digestBottleneckLimit]
	}

	return &models.DigestResponse{
		Date:              time.Now().Format("2006-01-02"),
		TopInsights:       insights,
		Velocity:          velocity.Current,
		ActiveBottlenecks: bottlenecks,
	}, nil
}
