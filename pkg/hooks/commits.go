package hooks

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

const commitLogFormat = "%H%x1f%s%x1f%an%x1f%aI"

// CaptureRecentCommits lists the newest commits in the project so the
// server can link them to the ending session. Duplicate hashes are
// deduplicated server-side, so over-reporting is harmless.
func CaptureRecentCommits(ctx context.Context, projectPath string, limit int) []models.CommitRecord {
	if limit <= 0 {
		limit = 20
	}

	cmd := exec.CommandContext(ctx, "git", "-C", projectPath,
		"log", "--format="+commitLogFormat, "-n", strconv.Itoa(limit))
	out, err := cmd.Output()
	if err != nil {
		// Not a git repository, or git missing: nothing to report
		return nil
	}

	var commits []models.CommitRecord
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		fields := strings.Split(line, "\x1f")
		if len(fields) != 4 || fields[0] == "" {
			continue
		}
		commits = append(commits, models.CommitRecord{
			Hash:      fields[0],
			Message:   fields[1],
			Author:    fields[2],
			Timestamp: fields[3],
		})
	}
	return commits
}
