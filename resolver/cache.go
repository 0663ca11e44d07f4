package resolver

import lru "github.com/hashicorp/golang-lru/v2"

// defaultCacheCapacity is generous: eviction only matters for very large,
// long-running watch sessions, and a cache miss just recomputes a pure
// function of stable file content (see SPEC_FULL.md's domain-stack entry for
// this cache).
const defaultCacheCapacity = 8192

// fileCache memoizes source_name -> ResolvedFile (spec §4.G).
type fileCache struct {
	lru *lru.Cache[string, ResolvedFile]
}

func newFileCache() *fileCache {
	c, err := lru.New[string, ResolvedFile](defaultCacheCapacity)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// defaultCacheCapacity never is.
		panic(err)
	}
	return &fileCache{lru: c}
}

func (c *fileCache) get(sourceName string) (ResolvedFile, bool) {
	return c.lru.Get(sourceName)
}

func (c *fileCache) put(sourceName string, rf ResolvedFile) {
	c.lru.Add(sourceName, rf)
}
