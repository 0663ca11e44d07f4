package sourcefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/solresolve/sourcefs"
	"github.com/stretchr/testify/require"
)

func TestOS_TrueCase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Contracts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Contracts", "Token.sol"), []byte("contract"), 0o644))

	fs := sourcefs.New()

	got, err := fs.TrueCase(dir, "contracts/token.sol")
	require.NoError(t, err)
	require.Equal(t, "Contracts/Token.sol", got)

	_, err = fs.TrueCase(dir, "contracts/missing.sol")
	require.ErrorIs(t, err, sourcefs.ErrNotFound)
}

func TestOS_ReadJSON(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`{"name":"dep","version":"1.2.3"}`), 0o644))

	fs := sourcefs.New()
	var v struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	require.NoError(t, fs.ReadJSON(manifestPath, &v))
	require.Equal(t, "dep", v.Name)
	require.Equal(t, "1.2.3", v.Version)
}

func TestOS_Exists(t *testing.T) {
	dir := t.TempDir()
	fs := sourcefs.New()
	require.False(t, fs.Exists(filepath.Join(dir, "nope")))

	path := filepath.Join(dir, "here")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.True(t, fs.Exists(path))
}
