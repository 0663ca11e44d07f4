package remap

import "strings"

// SelectBest chooses the user remapping that best matches (contextSourceName,
// directImport): its Context must be a prefix of contextSourceName and its
// Prefix must be a prefix of directImport, breaking ties by longest Context,
// then longest Prefix, then declaration order (spec §4.C).
func SelectBest(remappings []UserRemapping, contextSourceName, directImport string) (UserRemapping, bool) {
	bestIdx := -1
	var best UserRemapping

	for i, r := range remappings {
		if !strings.HasPrefix(contextSourceName, r.Context) {
			continue
		}
		if !strings.HasPrefix(directImport, r.Prefix) {
			continue
		}

		if bestIdx == -1 || isBetter(r, best) {
			best = r
			bestIdx = i
		}
	}

	return best, bestIdx != -1
}

func isBetter(candidate, current UserRemapping) bool {
	if len(candidate.Context) != len(current.Context) {
		return len(candidate.Context) > len(current.Context)
	}
	return len(candidate.Prefix) > len(current.Prefix)
}

// Apply substitutes r.Prefix with r.Target in directImport.
func Apply(r UserRemapping, directImport string) string {
	rest := strings.TrimPrefix(directImport, r.Prefix)
	return r.Target + rest
}
