package analytics

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// knownAgents are agent names the router recognises in a question.
// Longer names come first so "claude-code" is not swallowed by "claude".
var knownAgents = []string{"claude-code", "claude", "codex", "gemini", "cursor"}

var (
	bottleneckPattern = regexp.MustCompile(`(?i)\b(stuck|blocked|bottleneck|blocker)`)
	velocityPattern   = regexp.MustCompile(`(?i)\b(velocity|pace|throughput|how fast|how slow|progress)`)
	patternPattern    = regexp.MustCompile(`(?i)\b(pattern|cluster|workflow|recurring|trend)`)
	agentPattern      = regexp.MustCompile(`(?i)\b(agent|who|profile)`)
)

// Query routes a natural-language question to the matching analytics
// view by keyword. No model calls; the router is a fixed set of regular
// expressions.
func (s *Service) Query(ctx context.Context, projectID, question string) (*models.QueryResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is empty")
	}

	if agent := detectAgent(question); agent != "" {
		profile, err := s.Profile(ctx, projectID, agent)
		if err != nil {
			return nil, err
		}
		return &models.QueryResponse{
			QueryType: "agent_profile",
			Data:      profile,
			Insights: []string{fmt.Sprintf(
				"%s completed %d of %d features (%.0f%%)",
				agent, profile.CompletedFeatures, profile.TotalFeatures, profile.CompletionRate*100)},
		}, nil
	}

	switch {
	case bottleneckPattern.MatchString(question):
		patterns, err := s.Patterns(ctx, projectID)
		if err != nil {
			return nil, err
		}
		insights := make([]string, 0, len(patterns.Bottlenecks))
		for _, b := range patterns.Bottlenecks {
			insights = append(insights, fmt.Sprintf("%q has been blocked for %.0f hours (%s)", b.Description, b.HoursBlocked, b.Severity))
		}
		if len(insights) == 0 {
			insights = append(insights, "Nothing is currently blocked.")
		}
		return &models.QueryResponse{QueryType: "bottlenecks", Data: patterns.Bottlenecks, Insights: insights}, nil

	case velocityPattern.MatchString(question):
		velocity, err := s.Velocity(ctx, projectID, windowDaysFor(question))
		if err != nil {
			return nil, err
		}
		insights := []string{fmt.Sprintf(
			"%d features completed in the last %d days (%.1f/day)",
			velocity.Current.Completed, velocity.Current.WindowDays, velocity.Current.FeaturesPerDay)}
		insights = append(insights, velocity.DriftWarnings...)
		return &models.QueryResponse{QueryType: "velocity", Data: velocity, Insights: insights}, nil

	case patternPattern.MatchString(question):
		patterns, err := s.Patterns(ctx, projectID)
		if err != nil {
			return nil, err
		}
		insights := make([]string, 0, len(patterns.Clusters))
		for _, c := range patterns.Clusters {
			insights = append(insights, fmt.Sprintf("%d features share the %s category", c.Size, c.Category))
		}
		return &models.QueryResponse{QueryType: "patterns", Data: patterns, Insights: insights}, nil

	case agentPattern.MatchString(question):
		// Agent question without a recognisable agent name
		return &models.QueryResponse{
			QueryType: "agent_profile",
			Insights:  []string{"Name an agent (e.g. claude-code, codex) to see its profile."},
		}, nil

	default:
		digest, err := s.Digest(ctx, projectID)
		if err != nil {
			return nil, err
		}
		insights := make([]string, 0, len(digest.TopInsights))
		for _, in := range digest.TopInsights {
			insights = append(insights, in.Title)
		}
		return &models.QueryResponse{QueryType: "digest", Data: digest, Insights: insights}, nil
	}
}

func detectAgent(question string) string {
	lower := strings.ToLower(question)
	for _, agent := range knownAgents {
		if strings.Contains(lower, agent) {
			return agent
		}
	}
	return ""
}

// windowDaysFor extracts a time window from the question, defaulting to
// one week.
func windowDaysFor(question string) int {
	lower := strings.ToLower(question)
	switch {
	case strings.Contains(lower, "today"):
		return 1
	case strings.Contains(lower, "two weeks"), strings.Contains(lower, "fortnight"):
		return 14
	case strings.Contains(lower, "month"):
		return 30
	case strings.Contains(lower, "week"):
		return 7
	default:
		return DefaultVelocityWindowDays
	}
}
