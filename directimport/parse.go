// Package directimport splits a direct import that names an npm-style
// package into the package name and the path within that package.
package directimport

import (
	"fmt"
	"regexp"
)

// pattern mirrors the anchored npm-import grammar: an optional "@scope/"
// prefix, a package name, a slash, then the remaining path.
var pattern = regexp.MustCompile(`^(?P<pkg>(@[a-z0-9-~._]+/)?[a-z0-9-~][a-z0-9-~._]*)/(?P<path>.*)$`)

var pkgIdx, pathIdx = subexpIndices()

func subexpIndices() (int, int) {
	pkg, path := -1, -1
	for i, name := range pattern.SubexpNames() {
		switch name {
		case "pkg":
			pkg = i
		case "path":
			path = i
		}
	}
	return pkg, path
}

// Parsed is a direct import split into its npm package name and the path
// within that package.
type Parsed struct {
	Package string
	Path    string
}

// Parse splits direct into (package, path). It returns an error if direct
// does not match the anchored npm-import grammar.
func Parse(direct string) (Parsed, error) {
	match := pattern.FindStringSubmatch(direct)
	if match == nil {
		return Parsed{}, fmt.Errorf("directimport: malformed npm import %q", direct)
	}

	return Parsed{
		Package: match[pkgIdx],
		Path:    match[pathIdx],
	}, nil
}
