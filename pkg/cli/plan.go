package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

func newPlanCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage a feature's step plan",
	}
	cmd.AddCommand(newPlanSetCmd(opts), newPlanShowCmd(opts))
	return cmd
}

func renderPlan(plan models.PlanResponse) string {
	lines := []string{fmt.Sprintf("plan for %s (%d/%d done, %.0f%%)",
		plan.FeatureID, plan.Progress.Completed, plan.Progress.Total, plan.Progress.Percentage)}
	for _, st := range plan.Steps {
		marker := " "
		switch st.Status {
		case "completed":
			marker = "x"
		case "in_progress":
			marker = ">"
		case "skipped":
			marker = "-"
		}
		lines = append(lines, fmt.Sprintf("  [%s] %d. %s", marker, st.StepOrder+1, st.Description))
	}
	return strings.Join(lines, "\n")
}

func newPlanSetCmd(opts *options) *cobra.Command {
	var steps []string

	cmd := &cobra.Command{
		Use:   "set [feature-id]",
		Short: "Replace a plan (the active feature's when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(steps) == 0 {
				return fmt.Errorf("%w: at least one --step is required", errUsage)
			}

			c := newClient(opts)
			var plan models.PlanResponse
			var err error
			if len(args) == 1 {
				err = c.request(cmd.Context(), "PUT",
					"/api/v1/features/"+url.PathEscape(args[0])+"/plan",
					models.SetPlanRequest{Steps: steps}, &plan)
			} else {
				var q string
				if q, err = c.projectQuery(); err != nil {
					return err
				}
				err = c.post(cmd.Context(), "/api/v1/plan?"+q, models.SetPlanRequest{Steps: steps}, &plan)
			}
			if err != nil {
				return err
			}
			return c.render(plan, renderPlan(plan))
		},
	}

	cmd.Flags().StringArrayVar(&steps, "step", nil, "plan step (repeatable, in order)")
	return cmd
}

func newPlanShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show [feature-id]",
		Short: "Show a plan (the active feature's when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			var plan models.PlanResponse
			if len(args) == 1 {
				if err := c.get(cmd.Context(), "/api/v1/features/"+url.PathEscape(args[0])+"/plan", &plan); err != nil {
					return err
				}
			} else {
				q, err := c.projectQuery()
				if err != nil {
					return err
				}
				if err := c.get(cmd.Context(), "/api/v1/plan?"+q, &plan); err != nil {
					return err
				}
			}
			return c.render(plan, renderPlan(plan))
		},
	}
}

func newCheckpointCmd(opts *options) *cobra.Command {
	var featureID string
	var req models.CheckpointRequest

	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Report plan progress on the active feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			var resp models.CheckpointResponse
			var err error
			if featureID != "" {
				err = c.post(cmd.Context(), "/api/v1/features/"+url.PathEscape(featureID)+"/checkpoint", req, &resp)
			} else {
				var q string
				if q, err = c.projectQuery(); err != nil {
					return err
				}
				err = c.post(cmd.Context(), "/api/v1/checkpoint?"+q, req, &resp)
			}
			if err != nil {
				return err
			}

			lines := []string{fmt.Sprintf("progress %d/%d (%.0f%%)",
				resp.Progress.Completed, resp.Progress.Total, resp.Progress.Percentage)}
			if resp.ActiveStep != nil {
				lines = append(lines, "active step: "+resp.ActiveStep.Description)
			}
			for _, w := range resp.Warnings {
				lines = append(lines, "warning: "+w)
			}
			return c.render(resp, strings.Join(lines, "\n"))
		},
	}

	cmd.Flags().StringVar(&featureID, "feature", "", "feature id (default: the active feature)")
	cmd.Flags().StringVar(&req.StepCompleted, "completed", "", "description of the step just completed")
	cmd.Flags().StringVar(&req.CurrentActivity, "activity", "", "what is being worked on now")
	return cmd
}
