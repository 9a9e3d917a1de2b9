package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/pkg/attribution"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

const defaultInsightLimit = 10

// InsightService records and retrieves long-lived learnings: solutions,
// anti-patterns, best practices, tool usage notes.
type InsightService struct {
	client *ent.Client
}

// NewInsightService creates a new InsightService
func NewInsightService(client *ent.Client) *InsightService {
	return &InsightService{client: client}
}

var validPatternTypes = map[string]insight.PatternType{
	"solution":      insight.PatternTypeSolution,
	"anti_pattern":  insight.PatternTypeAntiPattern,
	"best_practice": insight.PatternTypeBestPractice,
	"tool_usage":    insight.PatternTypeToolUsage,
}

// CreateInsight records a new insight, optionally attached to a feature.
func (s *InsightService) CreateInsight(httpCtx context.Context, req models.CreateInsightRequest) (*ent.Insight, error) {
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	patternType, ok := validPatternTypes[req.PatternType]
	if !ok {
		return nil, NewValidationError("pattern_type", fmt.Sprintf("unknown pattern type %q", req.PatternType))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Insight.Create().
		SetID(uuid.New().String()).
		SetDescription(req.Description).
		SetPatternType(patternType)
	if len(req.Tags) > 0 {
		create = create.SetTags(normalizeTags(req.Tags))
	}
	if req.FeatureID != "" {
		create = create.SetFeatureID(req.FeatureID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Dangling feature reference
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}
	return created, nil
}

// SearchInsights returns insights matching the query text and tags,
// newest first, and bumps usage_count on every hit returned. A retrieved
// insight is presumed shown to an agent.
func (s *InsightService) SearchInsights(httpCtx context.Context, query string, tags []string, limit int) ([]*ent.Insight, error) {
	if limit <= 0 {
		limit = defaultInsightLimit
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	all, err := s.client.Insight.Query().
		Order(ent.Desc(insight.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}

	wantTags := normalizeTags(tags)
	queryTokens := attribution.TokenSet(query)

	matched := make([]*ent.Insight, 0, limit)
	for _, in := range all {
		if len(wantTags) > 0 && !hasAnyTag(in.Tags, wantTags) {
			continue
		}
		if len(queryTokens) > 0 {
			descTokens := attribution.TokenSet(in.Description)
			if overlap(queryTokens, descTokens) == 0 && !substringMatch(in.Description, query) {
				continue
			}
		}
		matched = append(matched, in)
		if len(matched) >= limit {
			break
		}
	}

	for _, in := range matched {
		err := s.client.Insight.UpdateOneID(in.ID).
			AddUsageCount(1).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to bump usage count: %w", err)
		}
	}
	return matched, nil
}

// GetInsight retrieves an insight by ID
func (s *InsightService) GetInsight(ctx context.Context, id string) (*ent.Insight, error) {
	in, err := s.client.Insight.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return in, nil
}

// RecordFeedback applies one helpful/unhelpful vote and recomputes the
// effectiveness score as helpful_count / feedback_count.
func (s *InsightService) RecordFeedback(httpCtx context.Context, req models.InsightFeedbackRequest) (*ent.Insight, error) {
	if req.InsightID == "" {
		return nil, NewValidationError("insight_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in, err := s.GetInsight(ctx, req.InsightID)
	if err != nil {
		return nil, err
	}

	feedback := in.FeedbackCount + 1
	helpful := in.HelpfulCount
	if req.Helpful {
		helpful++
	}

	updated, err := s.client.Insight.UpdateOneID(in.ID).
		SetFeedbackCount(feedback).
		SetHelpfulCount(helpful).
		SetEffectivenessScore(float64(helpful) / float64(feedback)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}
	return updated, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hasAnyTag(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

func substringMatch(text, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return q != "" && strings.Contains(strings.ToLower(text), q)
}
