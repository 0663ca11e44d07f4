package remap

import "strings"

// parseSurface splits the raw "context:prefix=target" text into its three
// parts. context is empty when the optional leading "context:" is absent.
func parseSurface(raw string) (context, prefix, target string, ok bool) {
	eq := strings.Index(raw, "=")
	if eq < 0 {
		return "", "", "", false
	}

	left := raw[:eq]
	target = raw[eq+1:]

	if colon := strings.Index(left, ":"); colon >= 0 {
		return left[:colon], left[colon+1:], target, true
	}

	return "", left, target, true
}

// npmTargetPrefix starts every "npm/<name>@<version>/<path>" target, where
// name may begin with "@scope/" and version is "local" or a dotted
// major.minor.patch triple (checked by splitNpmTarget).
const npmTargetPrefix = "npm/"

// splitNpmTarget parses an npm/ target into (name, version, pathWithinPackage).
func splitNpmTarget(target string) (name, version, path string, ok bool) {
	rest, ok := cutPrefix(target, npmTargetPrefix)
	if !ok {
		return "", "", "", false
	}

	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return "", "", "", false
	}

	name = rest[:at]
	if name == "" {
		return "", "", "", false
	}

	remainder := rest[at+1:]
	slash := strings.Index(remainder, "/")
	if slash < 0 {
		return "", "", "", false
	}

	version = remainder[:slash]
	path = remainder[slash+1:]

	if version != "local" && !isDottedTriple(version) {
		return "", "", "", false
	}

	return name, version, path, true
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	return s[len(prefix):], true
}

func isDottedTriple(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}
