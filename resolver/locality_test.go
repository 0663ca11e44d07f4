package resolver

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/sourcefs/memfs"
	"github.com/stretchr/testify/require"
)

func TestIsLocal(t *testing.T) {
	fs := memfs.New()
	fs.WriteFile("/P/contracts/File.sol", `contract File {}`)
	fs.WriteFile("/P/node_modules/dep/package.json", `{"name":"dep","version":"1.0.0"}`)

	require.False(t, isLocal(fs, "/P", hardhatConsole), "the hardhat console magic import is never local")
	require.True(t, isLocal(fs, "/P", "NoSlash.sol"), "an import with no slash is always local")
	require.True(t, isLocal(fs, "/P", "contracts/File.sol"), "first segment names an existing project directory")
	require.False(t, isLocal(fs, "/P", "dep/X.sol"), "first segment names no existing entry under the root")
}
