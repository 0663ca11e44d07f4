// Package rerr holds every structured error kind the resolver can return
// (spec §7). Splitting these out of the resolver package lets both remap and
// resolver construct them without an import cycle.
package rerr

import "fmt"

// InvalidUserRemapping is returned when a remapping has no "=" separating
// prefix and target, or when its context begins with "npm/".
type InvalidUserRemapping struct {
	Raw string
}

func (e *InvalidUserRemapping) Error() string {
	return fmt.Sprintf("invalid user remapping %q: expected [context:]prefix=target with a context not beginning with npm/", e.Raw)
}

// InvalidNpmTarget is returned when a remapping's target begins with "npm/"
// but does not match the npm/<name>@<version>/... grammar.
type InvalidNpmTarget struct {
	Raw    string
	Target string
}

func (e *InvalidNpmTarget) Error() string {
	return fmt.Sprintf("invalid npm target %q in remapping %q", e.Target, e.Raw)
}

// PackageNotInstalled is returned when a remapping's npm target names a
// package that cannot be located from the project root.
type PackageNotInstalled struct {
	Raw     string
	Package string
}

func (e *PackageNotInstalled) Error() string {
	return fmt.Sprintf("package %q referenced by remapping %q is not installed", e.Package, e.Raw)
}

// RemapIntoProject is returned when a remapping's npm target resolves to the
// project's own manifest.
type RemapIntoProject struct {
	Raw string
}

func (e *RemapIntoProject) Error() string {
	return fmt.Sprintf("remapping %q targets the project itself, not an npm package", e.Raw)
}

// MonorepoVersionMismatch is returned when a remapping's npm target resolves
// to a monorepo sibling but declares a version other than "local".
type MonorepoVersionMismatch struct {
	Raw             string
	DeclaredVersion string
}

func (e *MonorepoVersionMismatch) Error() string {
	return fmt.Sprintf("remapping %q resolves to a monorepo sibling but declares version %q, not local", e.Raw, e.DeclaredVersion)
}

// PackageVersionMismatch is returned when a remapping's declared version
// disagrees with an installed package's manifest version.
type PackageVersionMismatch struct {
	Raw             string
	DeclaredVersion string
	ActualVersion   string
}

func (e *PackageVersionMismatch) Error() string {
	return fmt.Sprintf("remapping %q declares version %q but the installed package is %q", e.Raw, e.DeclaredVersion, e.ActualVersion)
}

// NotWithinProject is returned by resolveProjectFile when the requested
// absolute path is not under the project root.
type NotWithinProject struct {
	AbsPath     string
	ProjectRoot string
}

func (e *NotWithinProject) Error() string {
	return fmt.Sprintf("%s is not within the project root %s", e.AbsPath, e.ProjectRoot)
}

// ProjectFileMissing is returned when a project-relative source name does
// not exist on disk.
type ProjectFileMissing struct {
	SourceName string
}

func (e *ProjectFileMissing) Error() string {
	return fmt.Sprintf("project file not found: %s", e.SourceName)
}

// IncorrectCasing is returned whenever a relative path's casing does not
// match the filesystem's true casing. Correct carries the on-disk casing so
// the caller can report it.
type IncorrectCasing struct {
	Requested string
	Correct   string
}

func (e *IncorrectCasing) Error() string {
	return fmt.Sprintf("incorrect casing: requested %q, on disk it is %q", e.Requested, e.Correct)
}

// ImportOutsideProject is returned when a relative import from a project
// file normalizes to a path above the project root.
type ImportOutsideProject struct {
	Import string
}

func (e *ImportOutsideProject) Error() string {
	return fmt.Sprintf("import %q escapes the project root", e.Import)
}

// ImportOutsidePackage is returned when a relative import from a package
// file normalizes to a path outside that package's root.
type ImportOutsidePackage struct {
	Import  string
	Package string
}

func (e *ImportOutsidePackage) Error() string {
	return fmt.Sprintf("import %q escapes package %s", e.Import, e.Package)
}

// RemapNotLocal is returned when a user remapping with no target_package
// substitutes to a direct import that is not local.
type RemapNotLocal struct {
	Remapping string
	Remapped  string
}

func (e *RemapNotLocal) Error() string {
	return fmt.Sprintf("remapping %q produced non-local import %q; express it with an npm/ target instead", e.Remapping, e.Remapped)
}

// MalformedNpmImport is returned when a cross-package import does not match
// the anchored npm-import grammar.
type MalformedNpmImport struct {
	Import string
}

func (e *MalformedNpmImport) Error() string {
	return fmt.Sprintf("malformed npm import %q", e.Import)
}

// DependencyMissing is returned when technique 4 cannot locate the imported
// package's manifest. IsProject distinguishes a project-origin request from
// a package-origin one, per spec §7.
type DependencyMissing struct {
	Package   string
	Origin    string
	IsProject bool
}

func (e *DependencyMissing) Error() string {
	if e.IsProject {
		return fmt.Sprintf("the project imports %q but it is not installed", e.Package)
	}
	return fmt.Sprintf("package %q imports %q but it is not installed", e.Origin, e.Package)
}

// FileMissingInPackage is returned when a source name is not found under a
// package's root.
type FileMissingInPackage struct {
	SourceName string
	Package    string
}

func (e *FileMissingInPackage) Error() string {
	return fmt.Sprintf("%s not found in package %s", e.SourceName, e.Package)
}
