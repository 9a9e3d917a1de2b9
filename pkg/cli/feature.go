package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// featureView is the slice of the feature JSON the CLI renders.
type featureView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	WorkCount   int    `json:"work_count"`
	IsPrimary   bool   `json:"is_primary"`
}

func (f featureView) line() string {
	marker := " "
	if f.IsPrimary {
		marker = "*"
	}
	return fmt.Sprintf("%s %-36s  %-11s  %-8s  p%-4d  %s", marker, f.ID, f.Status, f.Type, f.Priority, f.Description)
}

func newFeatureCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Manage features",
	}
	cmd.AddCommand(
		newFeatureCreateCmd(opts),
		newFeatureListCmd(opts),
		newFeatureShowCmd(opts),
		newFeatureStartCmd(opts),
		newFeatureNextCmd(opts),
		newFeatureCompleteCmd(opts),
		newFeatureBlockCmd(opts),
		newFeatureDiscoverCmd(opts),
		newFeatureParentCmd(opts),
		newFeatureChildrenCmd(opts),
	)
	return cmd
}

func newFeatureCreateCmd(opts *options) *cobra.Command {
	var req models.CreateFeatureRequest
	var criteriaType string
	var criteriaCount int

	cmd := &cobra.Command{
		Use:   "create <description>",
		Short: "Create a feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Description = args[0]
			if criteriaType != "" {
				req.CompletionCriteria = map[string]interface{}{"type": criteriaType}
				if criteriaCount > 0 {
					req.CompletionCriteria["count"] = criteriaCount
				}
			}

			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var created featureView
			if err := c.post(cmd.Context(), "/api/v1/features?"+q, req, &created); err != nil {
				return err
			}
			return c.render(created, "created "+created.line())
		},
	}

	cmd.Flags().StringVar(&req.Category, "category", "", "feature category (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "feature type: feature, bug, spike, chore, hotfix, epic")
	cmd.Flags().IntVar(&req.Priority, "priority", 0, "priority in [-100, 100]")
	cmd.Flags().StringArrayVar(&req.Steps, "step", nil, "plan step (repeatable, in order)")
	cmd.Flags().StringArrayVar(&req.FilePatterns, "file-pattern", nil, "file glob for attribution (repeatable)")
	cmd.Flags().StringVar(&req.BranchHint, "branch-hint", "", "git branch associated with this feature")
	cmd.Flags().StringVar(&req.ParentID, "parent", "", "parent feature id")
	cmd.Flags().BoolVar(&req.IsPrimary, "primary", false, "make this the project's primary feature")
	cmd.Flags().StringVar(&criteriaType, "complete-on", "", "auto-completion rule: build, test, lint, any_success, work_count")
	cmd.Flags().IntVar(&criteriaCount, "complete-count", 0, "event count for the work_count rule")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newFeatureListCmd(opts *options) *cobra.Command {
	var status, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}
			if status != "" {
				q += "&status=" + url.QueryEscape(status)
			}
			if category != "" {
				q += "&category=" + url.QueryEscape(category)
			}

			var resp struct {
				Features []featureView `json:"features"`
				Count    int           `json:"count"`
			}
			if err := c.get(cmd.Context(), "/api/v1/features?"+q, &resp); err != nil {
				return err
			}

			lines := make([]string, 0, len(resp.Features))
			for _, f := range resp.Features {
				lines = append(lines, f.line())
			}
			if len(lines) == 0 {
				lines = append(lines, "no features")
			}
			return c.render(resp, strings.Join(lines, "\n"))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}

func newFeatureShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <feature-id>",
		Short: "Show one feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			var f map[string]interface{}
			if err := c.get(cmd.Context(), "/api/v1/features/"+url.PathEscape(args[0]), &f); err != nil {
				return err
			}
			return c.render(f, "")
		},
	}
}

func newFeatureStartCmd(opts *options) *cobra.Command {
	var req models.StartFeatureRequest

	cmd := &cobra.Command{
		Use:   "start <feature-id>",
		Short: "Claim a feature and move it to in_progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			var started featureView
			err := c.post(cmd.Context(), "/api/v1/features/"+url.PathEscape(args[0])+"/start", req, &started)
			if err != nil {
				return err
			}
			return c.render(started, "started "+started.line())
		},
	}

	cmd.Flags().StringVar(&req.Agent, "agent", "", "agent name (required)")
	cmd.Flags().StringVar(&req.SessionID, "session", "", "claiming session id")
	cmd.Flags().BoolVar(&req.ForceOverride, "force", false, "override an active claim")
	_ = cmd.MarkFlagRequired("agent")
	return cmd
}

func newFeatureNextCmd(opts *options) *cobra.Command {
	var req models.StartFeatureRequest

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Claim the next startable pending feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var started featureView
			if err := c.post(cmd.Context(), "/api/v1/features/start-next?"+q, req, &started); err != nil {
				return err
			}
			return c.render(started, "started "+started.line())
		},
	}

	cmd.Flags().StringVar(&req.Agent, "agent", "", "agent name (required)")
	cmd.Flags().StringVar(&req.SessionID, "session", "", "claiming session id")
	_ = cmd.MarkFlagRequired("agent")
	return cmd
}

func newFeatureCompleteCmd(opts *options) *cobra.Command {
	var agent, session, summary string

	cmd := &cobra.Command{
		Use:   "complete <feature-id>",
		Short: "Mark a feature complete and release its claim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			body := map[string]string{"agent": agent, "session_id": session, "summary": summary}
			var completed featureView
			err := c.post(cmd.Context(), "/api/v1/features/"+url.PathEscape(args[0])+"/complete", body, &completed)
			if err != nil {
				return err
			}
			return c.render(completed, "completed "+completed.line())
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "agent name")
	cmd.Flags().StringVar(&session, "session", "", "session id")
	cmd.Flags().StringVar(&summary, "summary", "", "completion summary")
	return cmd
}

func newFeatureBlockCmd(opts *options) *cobra.Command {
	var req models.BlockFeatureRequest

	cmd := &cobra.Command{
		Use:   "block <feature-id>",
		Short: "Mark a feature blocked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			var blocked featureView
			err := c.post(cmd.Context(), "/api/v1/features/"+url.PathEscape(args[0])+"/block", req, &blocked)
			if err != nil {
				return err
			}
			return c.render(blocked, "blocked "+blocked.line())
		},
	}

	cmd.Flags().StringVar(&req.Reason, "reason", "", "why the feature is blocked (required)")
	cmd.Flags().StringVar(&req.BlockingFeatureID, "blocked-by", "", "feature id this one waits on")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newFeatureDiscoverCmd(opts *options) *cobra.Command {
	var req models.DiscoverFeatureRequest
	var session string

	cmd := &cobra.Command{
		Use:   "discover <description>",
		Short: "Create a feature retroactively and claim recent unattributed work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Description = args[0]

			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}
			if session != "" {
				q += "&session_id=" + url.QueryEscape(session)
			}

			var result models.DiscoverResult
			if err := c.post(cmd.Context(), "/api/v1/features/discover?"+q, req, &result); err != nil {
				return err
			}
			return c.render(result, fmt.Sprintf("feature %s (%d events re-attributed)", result.FeatureID, result.ReattributedCount))
		},
	}

	cmd.Flags().StringVar(&req.Category, "category", "", "feature category (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "feature type")
	cmd.Flags().IntVar(&req.Priority, "priority", 0, "priority in [-100, 100]")
	cmd.Flags().StringArrayVar(&req.Steps, "step", nil, "plan step (repeatable)")
	cmd.Flags().IntVar(&req.LookbackMinutes, "lookback", 0, "re-attribution window in minutes")
	cmd.Flags().BoolVar(&req.MarkComplete, "complete", false, "mark the feature complete immediately")
	cmd.Flags().StringVar(&req.BranchHint, "branch-hint", "", "git branch associated with this feature")
	cmd.Flags().StringVar(&session, "session", "", "restrict re-attribution to this session")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newFeatureParentCmd(opts *options) *cobra.Command {
	var parentID string
	var unlink bool

	cmd := &cobra.Command{
		Use:   "parent <feature-id>",
		Short: "Link or unlink a feature's parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			path := "/api/v1/features/" + url.PathEscape(args[0]) + "/parent"

			if unlink {
				if err := c.delete(cmd.Context(), path, nil); err != nil {
					return err
				}
				fmt.Println("unlinked")
				return nil
			}
			if parentID == "" {
				return fmt.Errorf("%w: --parent or --unlink is required", errUsage)
			}

			var resp map[string]interface{}
			if err := c.request(cmd.Context(), "PUT", path, map[string]string{"parent_id": parentID}, &resp); err != nil {
				return err
			}
			return c.render(resp, "linked under "+parentID)
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "parent feature id")
	cmd.Flags().BoolVar(&unlink, "unlink", false, "detach from the current parent")
	return cmd
}

func newFeatureChildrenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "children <feature-id>",
		Short: "List a feature's direct children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			var resp struct {
				Children []featureView `json:"children"`
				Count    int           `json:"count"`
			}
			err := c.get(cmd.Context(), "/api/v1/features/"+url.PathEscape(args[0])+"/children", &resp)
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(resp.Children))
			for _, f := range resp.Children {
				lines = append(lines, f.line())
			}
			if len(lines) == 0 {
				lines = append(lines, "no children")
			}
			return c.render(resp, strings.Join(lines, "\n"))
		},
	}
}
