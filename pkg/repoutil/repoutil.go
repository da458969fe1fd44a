// Package repoutil provides helpers for repository slugs and repository-rooted paths.
package repoutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/refdocs/refcheck/pkg/logger"
)

var log = logger.New("repoutil:repoutil")

// SplitRepoSlug splits a repository slug (owner/repo) into owner and repo parts.
// Returns an error if the slug format is invalid.
func SplitRepoSlug(slug string) (owner, repo string, err error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		log.Printf("Invalid repo slug format: %s", slug)
		return "", "", fmt.Errorf("invalid repo format: %s", slug)
	}
	return parts[0], parts[1], nil
}

// FindRepoRoot walks upward from start looking for a directory containing
// a .git entry and returns it. Returns an error when no repository root is
// found before the filesystem root.
func FindRepoRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			log.Printf("Repository root: %s", dir)
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no repository root found above %s", start)
		}
		dir = parent
	}
}

// RelativeToRoot renders path relative to the repository root for display:
// the root prefix and its trailing separator are stripped. Paths outside
// the root are returned unchanged.
func RelativeToRoot(root, path string) string {
	if root == "" {
		return path
	}
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
