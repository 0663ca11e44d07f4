package nodepkg_test

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
		root     string
		want     nodepkg.Kind
	}{
		{"project", "/P/package.json", "/P", nodepkg.KindProject},
		{"monorepo sibling", "/sib/package.json", "/P", nodepkg.KindMonorepoSibling},
		{"installed", "/P/node_modules/dep/package.json", "/P", nodepkg.KindInstalled},
		{"scoped installed", "/P/node_modules/@s/u/package.json", "/P", nodepkg.KindInstalled},
	}

	for _, c := range cases {
		got := nodepkg.Classify(c.manifest, c.root)
		require.Equal(t, c.want, got, c.name)
	}
}

func TestBuildPackage(t *testing.T) {
	installed := nodepkg.BuildPackage(
		"/P/node_modules/dep/package.json",
		nodepkg.KindInstalled,
		nodepkg.Manifest{Name: "dep", Version: "1.2.3"},
	)
	require.Equal(t, "dep", installed.Name)
	require.Equal(t, "1.2.3", installed.Version)
	require.Equal(t, "/P/node_modules/dep", installed.RootAbsolutePath)
	require.Equal(t, "npm/dep@1.2.3/", installed.RootSourceName)

	sibling := nodepkg.BuildPackage(
		"/sib/package.json",
		nodepkg.KindMonorepoSibling,
		nodepkg.Manifest{Name: "sib", Version: "3.0.0"},
	)
	require.Equal(t, "local", sibling.Version)
	require.Equal(t, "npm/sib@local/", sibling.RootSourceName)
}
