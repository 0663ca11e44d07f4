package nodepkg

import (
	"strings"
)

// Kind is the classification of a located manifest.
type Kind int

const (
	// KindProject is the project's own manifest.
	KindProject Kind = iota
	// KindMonorepoSibling is a package outside node_modules and outside the
	// project root; its version is always forced to "local".
	KindMonorepoSibling
	// KindInstalled is a package under some node_modules directory; its
	// version comes from the manifest.
	KindInstalled
)

// Classify decides whether a located manifest belongs to the project, a
// monorepo sibling, or an installed package, purely from string predicates
// on its absolute path relative to projectRoot (spec §4.E).
func Classify(absManifestPath, projectRoot string) Kind {
	dir := DirOfManifest(absManifestPath)

	if containsNodeModules(dir) {
		return KindInstalled
	}
	if isWithin(projectRoot, dir) {
		return KindProject
	}
	return KindMonorepoSibling
}

func containsNodeModules(dir string) bool {
	normalized := strings.ReplaceAll(dir, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == "node_modules" {
			return true
		}
	}
	return false
}

func isWithin(root, dir string) bool {
	root = strings.TrimSuffix(strings.ReplaceAll(root, "\\", "/"), "/")
	normalized := strings.ReplaceAll(dir, "\\", "/")
	return normalized == root || strings.HasPrefix(normalized, root+"/")
}

// BuildPackage constructs the resolved Package for a located, classified
// manifest. kind must not be KindProject (the project is represented by a
// sentinel, not a Package — see the resolver package).
func BuildPackage(absManifestPath string, kind Kind, manifest Manifest) Package {
	version := manifest.Version
	if kind == KindMonorepoSibling {
		version = "local"
	}

	return Package{
		Name:             manifest.Name,
		Version:          version,
		RootAbsolutePath: DirOfManifest(absManifestPath),
		RootSourceName:   RootSourceNameFor(manifest.Name, version),
	}
}
