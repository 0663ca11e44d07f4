package project_test

import (
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/solresolve/nodelookup"
	"github.com/LegacyCodeHQ/solresolve/project"
	"github.com/LegacyCodeHQ/solresolve/resolver"
	"github.com/LegacyCodeHQ/solresolve/sourcefs"

	"github.com/stretchr/testify/require"
)

func TestExtractImports(t *testing.T) {
	content := `
import "./File2.sol";
import {Thing} from "dep/Thing.sol";
import '@s/u/Y.sol';
`
	require.Equal(t, []string{"./File2.sol", "dep/Thing.sol", "@s/u/Y.sol"}, project.ExtractImports(content))
}

func TestResolveEntries_FollowsImportsTransitively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"proj","version":"1.0.0"}`)
	writeFile(t, filepath.Join(root, "contracts", "File.sol"), `import "./Helper.sol";`)
	writeFile(t, filepath.Join(root, "contracts", "Helper.sol"), `contract Helper {}`)

	fs := sourcefs.New()
	lookup := nodelookup.New(fs.Exists)
	res, err := resolver.Create(root, nil, "", fs, lookup)
	require.NoError(t, err)

	files, err := project.ResolveEntries(res, []string{filepath.Join(root, "contracts", "File.sol")})
	require.NoError(t, err)
	require.Len(t, files, 2)
}

// ResolveEntries must populate the dependency map, since that is what
// GetRemappings() reads from — a driver that only calls ResolveProjectFile
// per entry, without following imports, would see remappings() echo nothing
// but the user's own --remap flags.
func TestResolveEntries_PopulatesDependencyMapAcrossNpmImport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"proj","version":"1.0.0"}`)
	writeFile(t, filepath.Join(root, "contracts", "File.sol"), `import "dep/X.sol";`)
	writeFile(t, filepath.Join(root, "node_modules", "dep", "package.json"), `{"name":"dep","version":"1.2.3"}`)
	writeFile(t, filepath.Join(root, "node_modules", "dep", "X.sol"), `contract X {}`)

	fs := sourcefs.New()
	lookup := nodelookup.New(fs.Exists)
	res, err := resolver.Create(root, nil, "", fs, lookup)
	require.NoError(t, err)

	_, err = project.ResolveEntries(res, []string{filepath.Join(root, "contracts", "File.sol")})
	require.NoError(t, err)

	require.NotEmpty(t, res.GetRemappings())
}
