package nodepkg

import (
	"github.com/LegacyCodeHQ/solresolve/nodelookup"
	"github.com/LegacyCodeHQ/solresolve/sourcefs"
)

// Locator is the node-style package locator (spec §4.D) plus the manifest
// cache that keeps a resolver from re-parsing the same package.json
// repeatedly during a traversal.
type Locator struct {
	lookup    nodelookup.Lookup
	fs        sourcefs.FS
	manifests *manifestCache
}

// NewLocator builds a Locator backed by lookup for manifest discovery and fs
// for reading discovered manifests.
func NewLocator(lookup nodelookup.Lookup, fs sourcefs.FS) *Locator {
	return &Locator{
		lookup:    lookup,
		fs:        fs,
		manifests: newManifestCache(fs),
	}
}

// ProjectManifest reads the project's own package.json, if present. The
// resolver uses its "name" to send any import of the project's package name,
// from the project or from a package, back to the project root without a
// node_modules walk.
func (l *Locator) ProjectManifest(projectRoot string) (absManifestPath string, manifest Manifest, ok bool) {
	absManifestPath = projectRoot + "/package.json"
	if !l.fs.Exists(absManifestPath) {
		return "", Manifest{}, false
	}

	manifest, err := l.manifests.read(absManifestPath)
	if err != nil {
		return "", Manifest{}, false
	}
	return absManifestPath, manifest, true
}

// Locate finds packageName's package.json starting the walk at fromAbsDir
// and returns its absolute path and parsed manifest. ok is false if the
// package is not installed anywhere on the walk.
func (l *Locator) Locate(packageName, fromAbsDir string) (absManifestPath string, manifest Manifest, ok bool, err error) {
	absManifestPath, found, err := l.lookup.ResolveManifest(packageName, fromAbsDir)
	if err != nil {
		return "", Manifest{}, false, err
	}
	if !found {
		return "", Manifest{}, false, nil
	}

	manifest, err = l.manifests.read(absManifestPath)
	if err != nil {
		return "", Manifest{}, false, err
	}

	return absManifestPath, manifest, true, nil
}
