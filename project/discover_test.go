package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/solresolve/project"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverEntryFiles_FiltersExtensionAndSkipsNodeModules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "contracts", "File.sol"), "contract File {}")
	writeFile(t, filepath.Join(root, "README.md"), "# readme")
	writeFile(t, filepath.Join(root, "node_modules", "dep", "Ignored.sol"), "contract Ignored {}")

	files, err := project.DiscoverEntryFiles(root, []string{".sol"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(root, "contracts", "File.sol"), files[0])
}

func TestDiscoverEntryFiles_SortedAndDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Z.sol"), "contract Z {}")
	writeFile(t, filepath.Join(root, "A.sol"), "contract A {}")

	files, err := project.DiscoverEntryFiles(root, []string{".sol"})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "A.sol"), filepath.Join(root, "Z.sol")}, files)
}

func TestSplitExts(t *testing.T) {
	require.Equal(t, []string{".sol"}, project.SplitExts("sol"))
	require.Equal(t, []string{".sol", ".t.sol"}, project.SplitExts(".sol, .t.sol"))
	require.Nil(t, project.SplitExts(""))
}
