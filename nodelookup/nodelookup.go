// Package nodelookup implements the node-style module lookup primitive the
// resolver delegates to: given a package name and a starting directory, find
// that package's package.json by walking up through node_modules directories.
// The resolver never inspects a package's exports map or main field; it only
// ever asks for "<name>/package.json".
package nodelookup

import "path/filepath"

// Lookup maps (package-name, from-directory) to an absolute package.json path.
type Lookup interface {
	// ResolveManifest locates <packageName>/package.json reachable from
	// fromAbsDir by walking up through node_modules directories. ok is false
	// if no such manifest exists anywhere on the walk.
	ResolveManifest(packageName, fromAbsDir string) (absManifestPath string, ok bool, err error)
}

// Exists is the minimal filesystem probe the walker needs.
type Exists func(absPath string) bool

// Walker is the default node_modules upward-walking Lookup, grounded on the
// resolution order node.js and bundlers use for CommonJS-style lookups.
type Walker struct {
	exists Exists
}

// New returns a Walker backed by exists for file-existence checks.
func New(exists Exists) Walker {
	return Walker{exists: exists}
}

func (w Walker) ResolveManifest(packageName, fromAbsDir string) (string, bool, error) {
	dir := filepath.Clean(fromAbsDir)

	for {
		candidate := filepath.Join(dir, "node_modules", packageName, "package.json")
		if w.exists(candidate) {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
