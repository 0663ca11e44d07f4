package resolver

import (
	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/LegacyCodeHQ/solresolve/pathutil"
	"github.com/LegacyCodeHQ/solresolve/rerr"
)

// technique3 builds a PackageFile for direct, a source name already known to
// fall under pkg's root. It also serves technique 2 (a user remapping that
// targets a package directly) and the package-file construction step of
// technique 4, both of which reduce to the same operation.
func (r *Resolver) technique3(pkg nodepkg.Package, direct string) (PackageFile, error) {
	relative, ok := pathutil.StripPrefix(direct, pkg.RootSourceName)
	if !ok {
		return PackageFile{}, &rerr.FileMissingInPackage{SourceName: direct, Package: pkg.RootSourceName}
	}
	return r.buildPackageFile(pkg, relative)
}

// buildPackageFile validates and reads relative under pkg's root but does
// not mutate the cache; the engine dispatcher commits once resolution fully
// succeeds.
func (r *Resolver) buildPackageFile(pkg nodepkg.Package, relative string) (PackageFile, error) {
	sourceName := pkg.RootSourceName + relative

	if cached, ok := r.cache.get(sourceName); ok {
		if pf, isPkg := cached.(PackageFile); isPkg {
			return pf, nil
		}
	}

	correct, matches, found, err := pathutil.TrueCase(r.fs, pkg.RootAbsolutePath, relative)
	if err != nil {
		return PackageFile{}, err
	}
	if !found {
		return PackageFile{}, &rerr.FileMissingInPackage{SourceName: relative, Package: pkg.RootSourceName}
	}
	if !matches {
		return PackageFile{}, &rerr.IncorrectCasing{Requested: relative, Correct: correct}
	}

	absPath := pkg.RootAbsolutePath + "/" + relative
	content, err := r.fs.ReadUTF8(absPath)
	if err != nil {
		return PackageFile{}, err
	}

	return PackageFile{
		SourceName:   sourceName,
		AbsolutePath: absPath,
		Content:      content,
		Package:      pkg,
	}, nil
}
