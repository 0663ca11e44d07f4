package resolver

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/LegacyCodeHQ/solresolve/remap"
	"github.com/stretchr/testify/require"
)

func TestGetRemappings_NoDependenciesOmitsIdentity(t *testing.T) {
	r := &Resolver{depMap: newDependencyMap()}

	require.Empty(t, r.GetRemappings())
}

func TestGetRemappings_UserRemappingsFirst(t *testing.T) {
	user := remap.UserRemapping{RawText: "contracts/=npm/dep@1.2.3/src/", Prefix: "contracts/", Target: "npm/dep@1.2.3/src/"}

	r := &Resolver{depMap: newDependencyMap(), remappings: []remap.UserRemapping{user}}
	require.NoError(t, r.depMap.Set("", "dep", PackageDependency(nodepkg.Package{
		Name: "dep", Version: "1.2.3", RootSourceName: "npm/dep@1.2.3/",
	})))

	triples := r.GetRemappings()
	require.Len(t, triples, 3)
	require.Equal(t, user.ToTriple(), triples[0])
	require.Equal(t, npmIdentity, triples[1])
	require.Equal(t, remap.Triple{Context: "", Prefix: "dep/", Target: "npm/dep@1.2.3/"}, triples[2])
}

func TestGetRemappings_ProjectDependencyHasEmptyTarget(t *testing.T) {
	r := &Resolver{depMap: newDependencyMap()}
	require.NoError(t, r.depMap.Set("npm/dep@1.2.3/", "proj", ProjectDependency()))

	triples := r.GetRemappings()
	require.Contains(t, triples, remap.Triple{Context: "npm/dep@1.2.3/", Prefix: "proj/", Target: ""})
}
