// Package sourcefs defines the filesystem contract the resolver needs: existence
// checks, UTF-8 reads, JSON reads, true-case lookups, and real-path resolution.
// The resolver never touches the OS directly; it only calls through FS.
package sourcefs

import "errors"

// ErrNotFound is returned by TrueCase when no entry matches, case-insensitively,
// at some segment of the requested relative path.
var ErrNotFound = errors.New("sourcefs: not found")

// FS is the external filesystem collaborator consumed by the resolver and by
// nodepkg/nodelookup. Implementations must not follow symlinks beyond what the
// host OS itself normalizes.
type FS interface {
	// Exists reports whether absPath names a file or directory.
	Exists(absPath string) bool

	// ReadUTF8 reads absPath and returns its contents as a string.
	ReadUTF8(absPath string) (string, error)

	// ReadJSON reads absPath and unmarshals its contents into v.
	ReadJSON(absPath string, v any) error

	// TrueCase returns the on-disk relative path under baseAbs with the
	// filesystem's exact casing for every segment of relative. relative must
	// use forward slashes. Returns ErrNotFound if any segment is missing.
	TrueCase(baseAbs, relative string) (string, error)

	// RealPath resolves symlinks in absPath and returns the canonical path.
	RealPath(absPath string) (string, error)
}
