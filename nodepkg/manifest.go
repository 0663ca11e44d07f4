package nodepkg

import (
	"fmt"
	"path/filepath"

	"github.com/LegacyCodeHQ/solresolve/sourcefs"
)

// Manifest is the subset of package.json the resolver cares about.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// manifestCache memoizes package.json reads by absolute path so a
// many-times-imported package's manifest is parsed only once per resolver
// lifetime.
type manifestCache struct {
	fs      sourcefs.FS
	entries map[string]Manifest
}

func newManifestCache(fs sourcefs.FS) *manifestCache {
	return &manifestCache{fs: fs, entries: make(map[string]Manifest)}
}

func (c *manifestCache) read(absManifestPath string) (Manifest, error) {
	if m, ok := c.entries[absManifestPath]; ok {
		return m, nil
	}

	var m Manifest
	if err := c.fs.ReadJSON(absManifestPath, &m); err != nil {
		return Manifest{}, fmt.Errorf("nodepkg: read manifest %s: %w", absManifestPath, err)
	}

	c.entries[absManifestPath] = m
	return m, nil
}

// DirOfManifest returns the directory containing a package.json path.
func DirOfManifest(absManifestPath string) string {
	return filepath.Dir(absManifestPath)
}
