package hooks

import (
	"os"
	"path/filepath"
)

// ResolveProjectPath determines the project the event belongs to.
// Resolution order: the git root containing the touched file, the git
// root containing the working directory, the IJOKA_PROJECT_DIR override,
// and finally the working directory itself.
func ResolveProjectPath(filePath, cwd string) string {
	if filePath != "" {
		if root := findGitRoot(filepath.Dir(filePath)); root != "" {
			return root
		}
	}
	if cwd != "" {
		if root := findGitRoot(cwd); root != "" {
			return root
		}
	}
	if dir := os.Getenv("IJOKA_PROJECT_DIR"); dir != "" {
		return dir
	}
	return cwd
}

// findGitRoot walks up from dir looking for a .git entry.
func findGitRoot(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
