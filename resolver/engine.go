package resolver

import (
	"strings"

	"github.com/LegacyCodeHQ/solresolve/pathutil"
	"github.com/LegacyCodeHQ/solresolve/remap"
	"github.com/LegacyCodeHQ/solresolve/rerr"
)

// ResolveProjectFile implements resolveProjectFile: it computes the file's
// project-relative source name, validates existence and casing, and caches
// and returns the result.
func (r *Resolver) ResolveProjectFile(absPath string) (ProjectFile, error) {
	relative, ok := relativeToRoot(r.projectRoot, absPath)
	if !ok {
		return ProjectFile{}, &rerr.NotWithinProject{AbsPath: absPath, ProjectRoot: r.projectRoot}
	}

	pf, err := r.buildProjectFile(relative)
	if err != nil {
		return ProjectFile{}, err
	}

	r.commit(pf.SourceName, pf)
	return pf, nil
}

// buildProjectFile validates and reads a project-relative source name but
// does not mutate the cache: callers commit once dispatch has fully
// succeeded, so nothing is inserted on a failed resolution.
func (r *Resolver) buildProjectFile(sourceName string) (ProjectFile, error) {
	if cached, ok := r.cache.get(sourceName); ok {
		if pf, isProject := cached.(ProjectFile); isProject {
			return pf, nil
		}
	}

	correct, matches, found, err := pathutil.TrueCase(r.fs, r.projectRoot, sourceName)
	if err != nil {
		return ProjectFile{}, err
	}
	if !found {
		return ProjectFile{}, &rerr.ProjectFileMissing{SourceName: sourceName}
	}
	if !matches {
		return ProjectFile{}, &rerr.IncorrectCasing{Requested: sourceName, Correct: correct}
	}

	absPath := r.projectRoot + "/" + sourceName
	content, err := r.fs.ReadUTF8(absPath)
	if err != nil {
		return ProjectFile{}, err
	}

	return ProjectFile{SourceName: sourceName, AbsolutePath: absPath, Content: content}, nil
}

// ResolveImport implements resolveImport: it computes the direct import,
// dispatches to one of the four techniques based on from's type, and
// returns the cached or freshly built ResolvedFile.
func (r *Resolver) ResolveImport(from ResolvedFile, importString string) (ResolvedFile, error) {
	direct, err := r.directImport(from, importString)
	if err != nil {
		return nil, err
	}

	var result ResolvedFile
	switch f := from.(type) {
	case ProjectFile:
		result, err = r.resolveFromProject(f, direct)
	case PackageFile:
		result, err = r.resolveFromPackage(f, direct)
	default:
		return nil, &rerr.MalformedNpmImport{Import: importString}
	}
	if err != nil {
		return nil, err
	}

	r.commit(result.Source(), result)
	r.graph.addEdge(from.Source(), result.Source())
	return result, nil
}

// directImport normalizes importString relative to from.
func (r *Resolver) directImport(from ResolvedFile, importString string) (string, error) {
	if !strings.HasPrefix(importString, "./") && !strings.HasPrefix(importString, "../") {
		return importString, nil
	}

	direct := pathutil.JoinSource(pathutil.DirOf(from.Source()), importString)

	switch f := from.(type) {
	case ProjectFile:
		if pathutil.IsOutside(direct) {
			return "", &rerr.ImportOutsideProject{Import: importString}
		}
	case PackageFile:
		if !strings.HasPrefix(direct, f.Package.RootSourceName) {
			return "", &rerr.ImportOutsidePackage{Import: importString, Package: f.Package.RootSourceName}
		}
	}

	return direct, nil
}

// resolveFromProject dispatches a direct import originating in a project
// file to technique 1, 2, or 4, per the user-remapping and locality rules.
func (r *Resolver) resolveFromProject(from ProjectFile, direct string) (ResolvedFile, error) {
	if best, ok := remap.SelectBest(r.remappings, from.SourceName, direct); ok {
		remapped := remap.Apply(best, direct)

		if best.TargetPackage != nil {
			return r.technique3(*best.TargetPackage, remapped)
		}

		if !isLocal(r.fs, r.projectRoot, remapped) {
			return nil, &rerr.RemapNotLocal{Remapping: best.RawText, Remapped: remapped}
		}
		return r.technique1(remapped)
	}

	if isLocal(r.fs, r.projectRoot, direct) {
		return r.technique1(direct)
	}

	return r.technique4(projectOrigin, r.projectRoot, true, direct)
}

// resolveFromPackage dispatches a direct import originating in a package
// file to technique 3 or 4. Per-package user remappings are not applied.
func (r *Resolver) resolveFromPackage(from PackageFile, direct string) (ResolvedFile, error) {
	if strings.HasPrefix(direct, from.Package.RootSourceName) {
		return r.technique3(from.Package, direct)
	}

	if isLocal(r.fs, from.Package.RootAbsolutePath, direct) {
		return r.technique3(from.Package, from.Package.RootSourceName+direct)
	}

	return r.technique4(from.Package.RootSourceName, from.Package.RootAbsolutePath, false, direct)
}

// commit is the single place the cache is mutated, consolidating the "no
// partial state on error" discipline: nothing lands in the cache until a
// resolution has fully succeeded.
func (r *Resolver) commit(sourceName string, rf ResolvedFile) {
	if _, ok := r.cache.get(sourceName); ok {
		return
	}
	r.cache.put(sourceName, rf)
}

// relativeToRoot strips root from absPath on a "/" boundary, reporting
// whether absPath is root itself or lies under it.
func relativeToRoot(root, absPath string) (string, bool) {
	if absPath == root {
		return "", true
	}
	if rest, ok := pathutil.StripPrefix(absPath, root+"/"); ok {
		return rest, true
	}
	return "", false
}
