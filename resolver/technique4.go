package resolver

import (
	"github.com/LegacyCodeHQ/solresolve/directimport"
	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/LegacyCodeHQ/solresolve/rerr"
)

// technique4 resolves a cross-package npm import. originSourceName is
// projectOrigin ("") or a package's root source name; originBaseDir is
// where the node-style lookup starts; isProjectOrigin distinguishes the two
// for the DependencyMissing error text.
func (r *Resolver) technique4(originSourceName, originBaseDir string, isProjectOrigin bool, direct string) (ResolvedFile, error) {
	parsed, err := directimport.Parse(direct)
	if err != nil {
		return nil, &rerr.MalformedNpmImport{Import: direct}
	}

	dep, ok := r.depMap.Get(originSourceName, parsed.Package)
	if !ok {
		dep, err = r.discoverDependency(originSourceName, originBaseDir, isProjectOrigin, parsed.Package)
		if err != nil {
			return nil, err
		}
	}

	if dep.IsProject {
		return r.technique1(parsed.Path)
	}
	return r.technique3(dep.Package, dep.Package.RootSourceName+parsed.Path)
}

// discoverDependency runs the node-style lookup and classification for a
// package name not yet present in the dependency map, records the result
// exactly once, and returns it.
//
// The project's own package.json name is checked first: an import of that
// name, whether it comes from the project or from any package, resolves to
// the project root without a node_modules walk, even when a package manager
// also hoists a node_modules entry for it.
func (r *Resolver) discoverDependency(originSourceName, originBaseDir string, isProjectOrigin bool, importedPackage string) (Dependency, error) {
	if _, projectManifest, ok := r.locator.ProjectManifest(r.projectRoot); ok && projectManifest.Name == importedPackage {
		dep := ProjectDependency()
		if err := r.depMap.Set(originSourceName, importedPackage, dep); err != nil {
			return Dependency{}, err
		}
		return dep, nil
	}

	absManifestPath, manifest, found, err := r.locator.Locate(importedPackage, originBaseDir)
	if err != nil {
		return Dependency{}, err
	}
	if !found {
		return Dependency{}, &rerr.DependencyMissing{Package: importedPackage, Origin: originSourceName, IsProject: isProjectOrigin}
	}

	kind := nodepkg.Classify(absManifestPath, r.projectRoot)

	dep := ProjectDependency()
	if kind != nodepkg.KindProject {
		dep = PackageDependency(nodepkg.BuildPackage(absManifestPath, kind, manifest))
	}

	if err := r.depMap.Set(originSourceName, importedPackage, dep); err != nil {
		return Dependency{}, err
	}

	return dep, nil
}
