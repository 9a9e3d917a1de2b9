package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// insightView is the slice of the insight JSON the CLI renders.
type insightView struct {
	ID                 string   `json:"id"`
	Description        string   `json:"description"`
	PatternType        string   `json:"pattern_type"`
	Tags               []string `json:"tags"`
	UsageCount         int      `json:"usage_count"`
	EffectivenessScore *float64 `json:"effectiveness_score"`
}

func (in insightView) line() string {
	score := "unrated"
	if in.EffectivenessScore != nil {
		score = fmt.Sprintf("%.0f%% helpful", *in.EffectivenessScore*100)
	}
	return fmt.Sprintf("%-36s  %-13s  %s  (%s, used %d times)",
		in.ID, in.PatternType, in.Description, score, in.UsageCount)
}

func newInsightCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Record and search insights",
	}
	cmd.AddCommand(newInsightAddCmd(opts), newInsightSearchCmd(opts), newInsightFeedbackCmd(opts))
	return cmd
}

func newInsightAddCmd(opts *options) *cobra.Command {
	var req models.CreateInsightRequest

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Record an insight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Description = args[0]

			c := newClient(opts)
			var created insightView
			if err := c.post(cmd.Context(), "/api/v1/insights", req, &created); err != nil {
				return err
			}
			return c.render(created, "recorded "+created.ID)
		},
	}

	cmd.Flags().StringVar(&req.PatternType, "type", "", "pattern type: solution, anti_pattern, best_practice, tool_usage (required)")
	cmd.Flags().StringArrayVar(&req.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVar(&req.FeatureID, "feature", "", "feature this insight came from")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newInsightSearchCmd(opts *options) *cobra.Command {
	var tags []string
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search insights",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ""
			if len(args) == 1 {
				q = "q=" + url.QueryEscape(args[0])
			}
			if len(tags) > 0 {
				if q != "" {
					q += "&"
				}
				q += "tags=" + url.QueryEscape(strings.Join(tags, ","))
			}
			if limit > 0 {
				if q != "" {
					q += "&"
				}
				q += "limit=" + strconv.Itoa(limit)
			}

			c := newClient(opts)
			var resp struct {
				Insights []insightView `json:"insights"`
				Count    int           `json:"count"`
			}
			if err := c.get(cmd.Context(), "/api/v1/insights?"+q, &resp); err != nil {
				return err
			}

			lines := make([]string, 0, len(resp.Insights))
			for _, in := range resp.Insights {
				lines = append(lines, in.line())
			}
			if len(lines) == 0 {
				lines = append(lines, "no insights")
			}
			return c.render(resp, strings.Join(lines, "\n"))
		},
	}

	cmd.Flags().StringArrayVar(&tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results")
	return cmd
}

func newInsightFeedbackCmd(opts *options) *cobra.Command {
	var helpful, notHelpful bool
	var comment string

	cmd := &cobra.Command{
		Use:   "feedback <insight-id>",
		Short: "Record whether an insight helped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpful == notHelpful {
				return fmt.Errorf("%w: exactly one of --helpful or --not-helpful is required", errUsage)
			}

			c := newClient(opts)
			var updated insightView
			err := c.post(cmd.Context(), "/api/v1/insights/feedback", models.InsightFeedbackRequest{
				InsightID: args[0],
				Helpful:   helpful,
				Comment:   comment,
			}, &updated)
			if err != nil {
				return err
			}
			return c.render(updated, updated.line())
		},
	}

	cmd.Flags().BoolVar(&helpful, "helpful", false, "the insight helped")
	cmd.Flags().BoolVar(&notHelpful, "not-helpful", false, "the insight did not help")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	return cmd
}
