package resolver

import (
	"fmt"
	"sort"
)

// DependencyMap tracks, per origin (the project or a package's root source
// name), which external package each imported package name resolved to
// (spec §4.H). Each (origin, importedPackageName) slot is set at most once.
type DependencyMap struct {
	data map[string]map[string]Dependency
}

func newDependencyMap() *DependencyMap {
	return &DependencyMap{data: make(map[string]map[string]Dependency)}
}

// Get looks up the dependency resolved for (origin, importedPackageName).
func (m *DependencyMap) Get(origin, importedPackageName string) (Dependency, bool) {
	byPkg, ok := m.data[origin]
	if !ok {
		return Dependency{}, false
	}
	dep, ok := byPkg[importedPackageName]
	return dep, ok
}

// Set records the dependency resolved for (origin, importedPackageName). A
// repeated call with an equal dependency is a no-op; a repeated call with a
// different dependency is a programmer error, since the node-style lookup
// the caller drives is deterministic (spec §4.H) and cannot legitimately
// disagree with itself.
func (m *DependencyMap) Set(origin, importedPackageName string, dep Dependency) error {
	byPkg, ok := m.data[origin]
	if !ok {
		byPkg = make(map[string]Dependency)
		m.data[origin] = byPkg
	}

	if existing, ok := byPkg[importedPackageName]; ok {
		if existing == dep {
			return nil
		}
		return fmt.Errorf("resolver: conflicting dependency for (%q, %q): had %+v, got %+v",
			origin, importedPackageName, existing, dep)
	}

	byPkg[importedPackageName] = dep
	return nil
}

// Entries visits every (origin, importedPackageName, dependency) triple in a
// stable order: origins and, within an origin, imported package names, both
// sorted lexically. Stability is what lets getRemappings() be order-stable
// across equal dependency-map states (spec §8 property 4).
func (m *DependencyMap) Entries() []DependencyEntry {
	origins := make([]string, 0, len(m.data))
	for origin := range m.data {
		origins = append(origins, origin)
	}
	sort.Strings(origins)

	var entries []DependencyEntry
	for _, origin := range origins {
		byPkg := m.data[origin]
		names := make([]string, 0, len(byPkg))
		for name := range byPkg {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			entries = append(entries, DependencyEntry{
				Origin:      origin,
				ImportedPkg: name,
				Dependency:  byPkg[name],
			})
		}
	}

	return entries
}

// DependencyEntry is one resolved (origin, imported package, dependency)
// triple.
type DependencyEntry struct {
	Origin      string
	ImportedPkg string
	Dependency  Dependency
}

// Len returns the number of (origin, importedPackageName) entries in the map.
func (m *DependencyMap) Len() int {
	count := 0
	for _, byPkg := range m.data {
		count += len(byPkg)
	}
	return count
}
