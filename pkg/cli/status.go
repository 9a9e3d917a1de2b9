package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show project status and the current feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(opts)
			q, err := c.projectQuery()
			if err != nil {
				return err
			}

			var status models.StatusResponse
			if err := c.get(cmd.Context(), "/api/v1/status?"+q, &status); err != nil {
				return err
			}

			human := fmt.Sprintf("%s\n  total: %d  pending: %d  in progress: %d  blocked: %d  complete: %d",
				status.Project,
				status.Stats.Total, status.Stats.Pending, status.Stats.InProgress,
				status.Stats.Blocked, status.Stats.Complete)
			if f, ok := status.CurrentFeature.(map[string]interface{}); ok {
				if desc, ok := f["description"].(string); ok {
					human += "\n  current: " + desc
				}
			}
			return c.render(status, human)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ijoka version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versionString())
		},
	}
}
