// Ijoka CLI: project status, feature and plan management, insights,
// analytics, and the agent hook adapter.
package main

import (
	"os"

	"github.com/ijoka-ai/ijoka/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
