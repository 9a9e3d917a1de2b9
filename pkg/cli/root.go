// Package cli implements the ijoka command line interface. Every
// command is a thin client over the HTTP API; the hook subcommand embeds
// the hook adapter.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ijoka-ai/ijoka/pkg/config"
	"github.com/ijoka-ai/ijoka/pkg/hooks"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errUsage marks validation failures that should exit with ExitUsage.
var errUsage = errors.New("usage error")

// options carries global flags shared by all commands.
type options struct {
	cfg     *config.Config
	project string
	jsonOut bool
}

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{cfg: cfg}

	root := &cobra.Command{
		Use:           "ijoka",
		Short:         "Feature attribution and plan tracking for AI coding agents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.project == "" {
				cwd, err := os.Getwd()
				if err == nil {
					opts.project = hooks.ResolveProjectPath("", cwd)
				}
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.project, "project", "", "project path (default: enclosing git root)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print raw JSON responses")

	root.AddCommand(
		newStatusCmd(opts),
		newFeatureCmd(opts),
		newPlanCmd(opts),
		newCheckpointCmd(opts),
		newInsightCmd(opts),
		newAnalyticsCmd(opts),
		newQueryCmd(opts),
		newHookCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		return ExitUsage
	}

	root := NewRootCmd(cfg)
	if err := root.Execute(); err != nil {
		printError(err)
		if errors.Is(err, errUsage) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

func printError(err error) {
	_, _ = os.Stderr.WriteString("ijoka: " + err.Error() + "\n")
}
