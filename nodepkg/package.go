package nodepkg

import "fmt"

// Package identifies an npm-style package root the resolver has discovered:
// its declared name and version, its on-disk root, and the canonical
// "npm/<name>@<version>/" source-name prefix every file under it shares.
type Package struct {
	Name             string
	Version          string
	RootAbsolutePath string
	RootSourceName   string
}

// RootSourceNameFor builds the canonical "npm/<name>@<version>/" prefix for a
// resolved package. The trailing slash is part of the prefix so every strip
// and every begins-with check is unambiguous.
func RootSourceNameFor(name, version string) string {
	return fmt.Sprintf("npm/%s@%s/", name, version)
}
