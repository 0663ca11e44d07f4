package resolver

import (
	"strings"

	"github.com/LegacyCodeHQ/solresolve/nodelookup"
	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/LegacyCodeHQ/solresolve/remap"
	"github.com/LegacyCodeHQ/solresolve/sourcefs"
)

// Resolver is the resolver engine described in spec §3's Lifecycle: created
// once per project, serving resolveProjectFile/resolveImport/getRemappings
// calls, never thread-shared.
type Resolver struct {
	projectRoot      string
	workingDirectory string
	fs               sourcefs.FS
	lookup           nodelookup.Lookup
	locator          *nodepkg.Locator
	remappings       []remap.UserRemapping
	cache            *fileCache
	depMap           *DependencyMap
	graph            *ImportGraph
}

// Create validates rawRemappings and returns a ready-to-use Resolver. The
// working directory is resolved to its real path once, at construction, per
// spec §9's resolved Open Question (real_path is used only here, never
// during classification).
func Create(projectRoot string, rawRemappings []string, workingDirectory string, fs sourcefs.FS, lookup nodelookup.Lookup) (*Resolver, error) {
	root := strings.TrimSuffix(projectRoot, "/")

	wd := workingDirectory
	if wd == "" {
		wd = root
	}
	if real, err := fs.RealPath(wd); err == nil {
		wd = real
	}

	locator := nodepkg.NewLocator(lookup, fs)

	remappings, err := remap.ParseAndValidateAll(rawRemappings, root, locator)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		projectRoot:      root,
		workingDirectory: wd,
		fs:               fs,
		lookup:           lookup,
		locator:          locator,
		remappings:       remappings,
		cache:            newFileCache(),
		depMap:           newDependencyMap(),
		graph:            newImportGraph(),
	}, nil
}

// ProjectRoot returns the resolver's project root absolute path.
func (r *Resolver) ProjectRoot() string {
	return r.projectRoot
}

// WorkingDirectory returns the resolver's configured working directory,
// used by the user-friendly path formatter.
func (r *Resolver) WorkingDirectory() string {
	return r.workingDirectory
}

// Graph exposes the auxiliary, driver-facing import graph built while
// traversing resolveImport results.
func (r *Resolver) Graph() *ImportGraph {
	return r.graph
}
