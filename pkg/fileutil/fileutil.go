// Package fileutil provides utility functions for file paths and file discovery.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/refdocs/refcheck/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsYAMLFile reports whether the path has a YAML extension.
func IsYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// FindYAMLFiles walks root recursively and returns the paths of all YAML
// files, in lexical walk order. Hidden directories are skipped.
func FindYAMLFiles(root string) ([]string, error) {
	log.Printf("Discovering YAML files under: %s", root)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsYAMLFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d YAML files under %s", len(files), root)
	return files, nil
}
