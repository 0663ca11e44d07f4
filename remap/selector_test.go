package remap_test

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/remap"
	"github.com/stretchr/testify/require"
)

func TestSelectBest_PicksLongestContextThenPrefix(t *testing.T) {
	remappings := []remap.UserRemapping{
		{RawText: "a", Context: "", Prefix: "contracts/", Target: "npm/dep@1.0.0/"},
		{RawText: "b", Context: "contracts", Prefix: "contracts/", Target: "npm/other@1.0.0/"},
		{RawText: "c", Context: "", Prefix: "contracts/sub/", Target: "npm/deepest@1.0.0/"},
	}

	best, ok := remap.SelectBest(remappings, "contracts/File.sol", "contracts/sub/A.sol")
	require.True(t, ok)
	require.Equal(t, "b", best.RawText)
}

func TestSelectBest_NoMatch(t *testing.T) {
	remappings := []remap.UserRemapping{
		{RawText: "a", Context: "", Prefix: "other/", Target: "npm/dep@1.0.0/"},
	}

	_, ok := remap.SelectBest(remappings, "contracts/File.sol", "contracts/A.sol")
	require.False(t, ok)
}

func TestApply(t *testing.T) {
	r := remap.UserRemapping{Prefix: "contracts/", Target: "npm/dep@1.2.3/src/"}
	got := remap.Apply(r, "contracts/A.sol")
	require.Equal(t, "npm/dep@1.2.3/src/A.sol", got)
}
