// Package project provides the outer driver's entry-file discovery: walking
// a project root to build the file set that gets fed into
// resolveProjectFile. This sits outside the resolver itself, driving it the
// way a real caller would.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverEntryFiles walks root and returns every file whose extension is in
// exts, skipping any node_modules directory it encounters. Results are
// sorted for deterministic output.
func DiscoverEntryFiles(root string, exts []string) ([]string, error) {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[ext] = true
	}

	var result []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if info.IsDir() {
			if info.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}

		if wanted[filepath.Ext(path)] {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project root %s: %w", root, err)
	}

	sort.Strings(result)
	return result, nil
}

// SplitExts parses a comma-separated extension list the way a cobra flag
// value arrives, normalizing each entry to a leading dot.
func SplitExts(raw string) []string {
	var exts []string
	for _, ext := range strings.Split(raw, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}
