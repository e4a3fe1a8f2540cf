// SPDX-License-Identifier: MIT

package repath

import (
	"sync"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/grid"
)

// PartialPathCache collects the paths found for agents sharing one
// destination and offers their suffixes to later searches. It is safe for
// concurrent use: searches share the read lock, Record takes the write lock.
type PartialPathCache struct {
	mu    sync.RWMutex
	paths astar.PartialPaths
}

// NewPartialPathCache returns an empty cache.
func NewPartialPathCache() *PartialPathCache {
	return &PartialPathCache{paths: make(astar.PartialPaths)}
}

// Record registers every proper prefix cell of path; existing entries win.
func (c *PartialPathCache) Record(path []grid.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths.Record(path)
}

// Len returns the number of splice points.
func (c *PartialPathCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.paths)
}

// Snapshot returns a copy of the current map. Suffix slices are shared and
// must not be modified.
func (c *PartialPathCache) Snapshot() astar.PartialPaths {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(astar.PartialPaths, len(c.paths))
	for k, v := range c.paths {
		out[k] = v
	}
	return out
}

// Search runs astar.Search with the cache's current contents as partial
// paths. opts are applied first, so a caller-supplied WithPartialPaths is
// overridden.
func (c *PartialPathCache) Search(g *grid.Grid, start, goal grid.Coordinates, h astar.Heuristic, opts ...astar.Option) ([]grid.Coordinates, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]astar.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, astar.WithPartialPaths(c.paths))

	return astar.Search(g, start, goal, h, all...)
}
