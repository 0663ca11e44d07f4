package pathutil

import (
	"errors"

	"github.com/LegacyCodeHQ/solresolve/sourcefs"
)

// TrueCase asks fs for the on-disk casing of relative under baseAbs and
// reports whether it matches relative byte-for-byte. When it does not match,
// correct holds the filesystem's actual casing so the caller can build an
// IncorrectCasing error.
func TrueCase(fs sourcefs.FS, baseAbs, relative string) (correct string, matches bool, found bool, err error) {
	correct, err = fs.TrueCase(baseAbs, relative)
	if err != nil {
		if errors.Is(err, sourcefs.ErrNotFound) {
			return "", false, false, nil
		}
		return "", false, false, err
	}
	return correct, correct == relative, true, nil
}
