// Package resolver implements the import-graph resolution engine: the cache
// (§4.G), the dependency map (§4.H), the four resolution techniques and
// their dispatcher (§4.I), and the remapping emitter (§4.J).
package resolver

import "github.com/LegacyCodeHQ/solresolve/nodepkg"

// ResolvedFile is the two-arm tagged variant spec.md §3 describes: every
// resolved file is either a ProjectFile or a PackageFile.
type ResolvedFile interface {
	// Source is the file's canonical source name.
	Source() string
	// Abs is the file's absolute on-disk path.
	Abs() string
	// Text is the file's content at resolution time.
	Text() string
	// isResolvedFile restricts the interface to this package's two arms.
	isResolvedFile()
}

// ProjectFile is a file resolved relative to the project root.
type ProjectFile struct {
	SourceName   string
	AbsolutePath string
	Content      string
}

func (f ProjectFile) Source() string { return f.SourceName }
func (f ProjectFile) Abs() string    { return f.AbsolutePath }
func (f ProjectFile) Text() string   { return f.Content }
func (ProjectFile) isResolvedFile()  {}

// PackageFile is a file resolved under a discovered npm-style package root.
type PackageFile struct {
	SourceName   string
	AbsolutePath string
	Content      string
	Package      nodepkg.Package
}

func (f PackageFile) Source() string { return f.SourceName }
func (f PackageFile) Abs() string    { return f.AbsolutePath }
func (f PackageFile) Text() string   { return f.Content }
func (PackageFile) isResolvedFile()  {}

// Dependency is the tagged variant ProjectSentinel | Package from spec §9: a
// dependency-map slot either points back at the project or at a resolved
// Package. The tag lives in IsProject, never in an overloaded empty string.
type Dependency struct {
	IsProject bool
	Package   nodepkg.Package
}

// ProjectDependency is the project sentinel dependency value.
func ProjectDependency() Dependency {
	return Dependency{IsProject: true}
}

// PackageDependency wraps a resolved Package as a dependency-map value.
func PackageDependency(pkg nodepkg.Package) Dependency {
	return Dependency{Package: pkg}
}

// projectOrigin is the project's implicit root source name (spec §3): the
// empty string. It is a legitimate origin key, not a stand-in sentinel —
// the project's root source name really is "".
const projectOrigin = ""
