package project

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/LegacyCodeHQ/solresolve/resolver"
)

// importPattern extracts double- or single-quoted Solidity import strings,
// since the front-end Solidity parser is out of scope here.
var importPattern = regexp.MustCompile(`import\s*(?:\{[^}]*\}\s*from\s*)?["']([^"']+)["']`)

// ExtractImports returns every import string found in content, in the order
// they appear.
func ExtractImports(content string) []string {
	matches := importPattern.FindAllStringSubmatch(content, -1)
	imports := make([]string, 0, len(matches))
	for _, m := range matches {
		imports = append(imports, m[1])
	}
	return imports
}

// ResolveEntries resolves every entry file and transitively every import it
// reaches. Shared by every CLI command that needs to drive a resolver over a
// project: each traversed import also populates the resolver's dependency
// map and auxiliary import graph as a side effect of ResolveImport.
func ResolveEntries(res *resolver.Resolver, entries []string) ([]resolver.ResolvedFile, error) {
	visited := make(map[string]bool)
	var files []resolver.ResolvedFile

	var visit func(rf resolver.ResolvedFile) error
	visit = func(rf resolver.ResolvedFile) error {
		if visited[rf.Source()] {
			return nil
		}
		visited[rf.Source()] = true
		files = append(files, rf)

		for _, importString := range ExtractImports(rf.Text()) {
			next, err := res.ResolveImport(rf, importString)
			if err != nil {
				return fmt.Errorf("resolving %q from %s: %w", importString, rf.Source(), err)
			}
			if err := visit(next); err != nil {
				return err
			}
		}
		return nil
	}

	for _, entry := range entries {
		absEntry, err := filepath.Abs(entry)
		if err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
		pf, err := res.ResolveProjectFile(absEntry)
		if err != nil {
			return nil, fmt.Errorf("resolving entry %s: %w", entry, err)
		}
		if err := visit(pf); err != nil {
			return nil, err
		}
	}

	return files, nil
}
