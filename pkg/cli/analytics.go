package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

func newAnalyticsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Derived views over the project history",
	}
	cmd.AddCommand(
		newAnalyticsPatternsCmd(opts),
		newAnalyticsVelocityCmd(opts),
		newAnalyticsProfileCmd(opts),
		newAnalyticsDigestCmd(opts),
	)
	return cmd
}

func newAnalyticsPatternsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Show clusters, workflows, and bottlenecks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var patterns models.PatternsResponse
			if err := c.get(cmd.Context(), "/api/v1/analytics/patterns?"+q, &patterns); err != nil {
				return err
			}

			var lines []string
			for _, cl := range patterns.Clusters {
				lines = append(lines, fmt.Sprintf("cluster: %s (%d features)", cl.Category, cl.Size))
			}
			for _, w := range patterns.Workflows {
				lines = append(lines, fmt.Sprintf("workflow x%d: %s", w.Frequency, strings.Join(w.Steps, " -> ")))
			}
			for _, b := range patterns.Bottlenecks {
				lines = append(lines, fmt.Sprintf("bottleneck [%s]: %s (%.0fh)", b.Severity, b.Description, b.HoursBlocked))
			}
			if len(lines) == 0 {
				lines = append(lines, "no patterns yet")
			}
			return c.render(patterns, strings.Join(lines, "\n"))
		},
	}
}

func newAnalyticsVelocityCmd(opts *options) *cobra.Command {
	var windowDays int

	cmd := &cobra.Command{
		Use:   "velocity",
		Short: "Show completion throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}
			if windowDays > 0 {
				q += "&window_days=" + strconv.Itoa(windowDays)
			}

			var velocity models.VelocityResponse
			if err := c.get(cmd.Context(), "/api/v1/analytics/velocity?"+q, &velocity); err != nil {
				return err
			}

			lines := []string{fmt.Sprintf(
				"last %d days: %d started, %d completed (%.1f/day, avg cycle %.1fh)",
				velocity.Current.WindowDays, velocity.Current.Started, velocity.Current.Completed,
				velocity.Current.FeaturesPerDay, velocity.Current.AvgCycleHours)}
			for _, w := range velocity.DriftWarnings {
				lines = append(lines, "warning: "+w)
			}
			return c.render(velocity, strings.Join(lines, "\n"))
		},
	}

	cmd.Flags().IntVar(&windowDays, "window", 0, "window in days (default 7)")
	return cmd
}

func newAnalyticsProfileCmd(opts *options) *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show an agent's work profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var profile models.AgentProfile
			if err := c.get(cmd.Context(), "/api/v1/analytics/profile?"+q+"&agent="+agent, &profile); err != nil {
				return err
			}

			human := fmt.Sprintf("%s: %d features, %d complete (%.0f%%), avg %.1fh",
				profile.Agent, profile.TotalFeatures, profile.CompletedFeatures,
				profile.CompletionRate*100, profile.AvgHoursToComplete)
			if len(profile.PreferredCategories) > 0 {
				human += "\n  works in: " + strings.Join(profile.PreferredCategories, ", ")
			}
			return c.render(profile, human)
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "agent name (required)")
	_ = cmd.MarkFlagRequired("agent")
	return cmd
}

func newAnalyticsDigestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Show the daily digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var digest models.DigestResponse
			if err := c.get(cmd.Context(), "/api/v1/analytics/digest?"+q, &digest); err != nil {
				return err
			}

			lines := []string{"digest for " + digest.Date}
			for _, in := range digest.TopInsights {
				lines = append(lines, fmt.Sprintf("  [%s] %s", in.Kind, in.Title))
			}
			lines = append(lines, fmt.Sprintf("  velocity: %d completed in %d days",
				digest.Velocity.Completed, digest.Velocity.WindowDays))
			return c.render(digest, strings.Join(lines, "\n"))
		},
	}
}

func newQueryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <question>",
		Short: "Ask a question about the project history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var resp models.QueryResponse
			err = c.post(cmd.Context(), "/api/v1/analytics/query?"+q, models.QueryRequest{Question: args[0]}, &resp)
			if err != nil {
				return err
			}

			lines := resp.Insights
			if len(lines) == 0 {
				lines = []string{"no insights for this question"}
			}
			return c.render(resp, strings.Join(lines, "\n"))
		},
	}
}
