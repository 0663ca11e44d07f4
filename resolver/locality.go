package resolver

import (
	"github.com/LegacyCodeHQ/solresolve/pathutil"
	"github.com/LegacyCodeHQ/solresolve/sourcefs"
)

// hardhatConsole is the magic constant spec §6 calls out: always resolved
// through npm even when a local "hardhat/" directory exists.
const hardhatConsole = "hardhat/console.sol"

// isLocal implements the locality predicate (spec §4.I "Locality
// predicate"): direct is local when it isn't the hardhat console magic
// constant, has no slash, or its first segment names an existing file or
// directory under rootAbsDir.
func isLocal(fs sourcefs.FS, rootAbsDir, direct string) bool {
	if direct == hardhatConsole {
		return false
	}

	first := pathutil.FirstSegment(direct)
	if first == direct {
		return true
	}

	return fs.Exists(rootAbsDir + "/" + first)
}
