package pathutil_test

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/pathutil"
	"github.com/LegacyCodeHQ/solresolve/sourcefs/memfs"
	"github.com/stretchr/testify/require"
)

func TestTrueCase(t *testing.T) {
	fs := memfs.New()
	fs.WriteFile("/proj/contracts/Token.sol", "contract Token {}")

	correct, matches, found, err := pathutil.TrueCase(fs, "/proj", "contracts/Token.sol")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, matches)
	require.Equal(t, "contracts/Token.sol", correct)

	correct, matches, found, err = pathutil.TrueCase(fs, "/proj", "contracts/token.sol")
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, matches)
	require.Equal(t, "contracts/Token.sol", correct)

	_, _, found, err = pathutil.TrueCase(fs, "/proj", "contracts/Missing.sol")
	require.NoError(t, err)
	require.False(t, found)
}
