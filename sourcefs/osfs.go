package sourcefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OS is the default FS backed by the host filesystem.
type OS struct{}

// New returns the default OS-backed filesystem collaborator.
func New() OS {
	return OS{}
}

func (OS) Exists(absPath string) bool {
	_, err := os.Stat(absPath)
	return err == nil
}

func (OS) ReadUTF8(absPath string) (string, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("sourcefs: read %s: %w", absPath, err)
	}
	return string(content), nil
}

func (o OS) ReadJSON(absPath string, v any) error {
	f, err := os.Open(absPath)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("sourcefs: decode %s: %w", absPath, err)
	}
	return nil
}

// TrueCase walks relative one segment at a time, case-insensitively matching
// each segment against the directory's real entries and accumulating their
// exact on-disk names.
func (o OS) TrueCase(baseAbs, relative string) (string, error) {
	segments := strings.Split(relative, "/")
	dir := baseAbs
	trueSegments := make([]string, 0, len(segments))

	for _, segment := range segments {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, relative)
		}

		matched := ""
		found := false
		for _, entry := range entries {
			if strings.EqualFold(entry.Name(), segment) {
				matched = entry.Name()
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("%w: %s", ErrNotFound, relative)
		}

		trueSegments = append(trueSegments, matched)
		dir = filepath.Join(dir, matched)
	}

	return strings.Join(trueSegments, "/"), nil
}

func (OS) RealPath(absPath string) (string, error) {
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return absPath, err
	}
	return resolved, nil
}

