package pathutil_test

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/pathutil"
	"github.com/stretchr/testify/require"
)

func TestJoinSource(t *testing.T) {
	cases := []struct {
		baseDir  string
		relative string
		want     string
	}{
		{"contracts", "./File2.sol", "contracts/File2.sol"},
		{"contracts", "../File.sol", "File.sol"},
		{"contracts", "../../Outside.sol", "../Outside.sol"},
		{"", "./a.sol", "a.sol"},
		{"npm/dep@1.2.3", "./Y.sol", "npm/dep@1.2.3/Y.sol"},
	}

	for _, c := range cases {
		got := pathutil.JoinSource(c.baseDir, c.relative)
		require.Equal(t, c.want, got, "JoinSource(%q, %q)", c.baseDir, c.relative)
	}
}

func TestIsOutside(t *testing.T) {
	require.True(t, pathutil.IsOutside(".."))
	require.True(t, pathutil.IsOutside("../Outside.sol"))
	require.False(t, pathutil.IsOutside("File.sol"))
	require.False(t, pathutil.IsOutside(""))
}

func TestDirOf(t *testing.T) {
	require.Equal(t, "contracts", pathutil.DirOf("contracts/Token.sol"))
	require.Equal(t, "", pathutil.DirOf("Token.sol"))
}

func TestFirstSegment(t *testing.T) {
	require.Equal(t, "dep", pathutil.FirstSegment("dep/contracts/X.sol"))
	require.Equal(t, "dep", pathutil.FirstSegment("dep"))
}

func TestStripPrefix(t *testing.T) {
	rest, ok := pathutil.StripPrefix("npm/dep@1.2.3/X.sol", "npm/dep@1.2.3/")
	require.True(t, ok)
	require.Equal(t, "X.sol", rest)

	_, ok = pathutil.StripPrefix("contracts/X.sol", "npm/dep@1.2.3/")
	require.False(t, ok)
}

func TestShorten(t *testing.T) {
	require.Equal(t, "contracts/Token.sol", pathutil.Shorten("/home/user/proj", "/home/user/proj/contracts/Token.sol"))
	require.Equal(t, "/elsewhere/Token.sol", pathutil.Shorten("/home/user/proj", "/elsewhere/Token.sol"))
	require.Equal(t, ".", pathutil.Shorten("/home/user/proj", "/home/user/proj"))
}
