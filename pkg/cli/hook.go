package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/hooks"
	"github.com/ijoka-ai/ijoka/pkg/version"
)

// defaultAgent identifies the agent runtime delivering hook events.
// Overridable because other runtimes can reuse the same hook contract.
const defaultAgent = "claude-code"

func newHookCmd(opts *options) *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:    "hook",
		Short:  "Process one agent hook event from stdin",
		Hidden: true,
		Args:   cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Hooks always succeed from the agent's point of view; errors
			// are logged, never surfaced
			runner := hooks.NewRunner(opts.cfg, agent)
			runner.Run(cmd.Context(), os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&agent, "agent", defaultAgent, "agent runtime name")
	return cmd
}

func versionString() string {
	return version.Full()
}
