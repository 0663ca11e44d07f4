// Package pathutil provides forward-slash source-name arithmetic, true-case
// lookups, and user-friendly path shortening for the resolver. Source names
// never touch the OS; only absolute paths do, and only through sourcefs.
package pathutil

import "strings"

// DirOf returns the directory portion of a forward-slash source name, the
// way filepath.Dir works for OS paths but without ever touching the host
// path separator. DirOf("contracts/Token.sol") is "contracts"; DirOf("Token.sol")
// is "".
func DirOf(sourceName string) string {
	idx := strings.LastIndex(sourceName, "/")
	if idx < 0 {
		return ""
	}
	return sourceName[:idx]
}

// JoinSource normalizes relative against baseDir using "./" and "../"
// segment rules, always on forward slashes. It does not enforce that the
// result stays under any particular root — callers apply that check
// themselves, since the legal root differs between a project file and a
// package file (see engine rules in the resolver package).
func JoinSource(baseDir, relative string) string {
	var segments []string
	if baseDir != "" {
		segments = strings.Split(baseDir, "/")
	}

	for _, part := range strings.Split(relative, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(segments) > 0 && segments[len(segments)-1] != ".." {
				segments = segments[:len(segments)-1]
			} else {
				segments = append(segments, "..")
			}
		default:
			segments = append(segments, part)
		}
	}

	return strings.Join(segments, "/")
}

// StripPrefix removes prefix from sourceName and returns the remainder,
// along with whether sourceName actually had that prefix.
func StripPrefix(sourceName, prefix string) (string, bool) {
	if !strings.HasPrefix(sourceName, prefix) {
		return "", false
	}
	return sourceName[len(prefix):], true
}

// IsOutside reports whether a normalized source name escapes above its root,
// i.e. it is "../..." or exactly "..".
func IsOutside(normalized string) bool {
	return normalized == ".." || strings.HasPrefix(normalized, "../")
}

// FirstSegment returns the first forward-slash segment of a direct import,
// e.g. FirstSegment("dep/contracts/X.sol") == "dep".
func FirstSegment(path string) string {
	idx := strings.Index(path, "/")
	if idx < 0 {
		return path
	}
	return path[:idx]
}
