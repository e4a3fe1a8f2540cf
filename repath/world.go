// SPDX-License-Identifier: MIT

package repath

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/grid"
)

// World is a grid shared between editors and path searches.
type World struct {
	mu   sync.RWMutex // guards grid
	grid *grid.Grid
	opts Options
}

// Report summarises one Repath batch.
type Report struct {
	Groups      int           // distinct destinations searched
	Searched    int           // agents with CheckPath set
	Found       int           // agents that received a path
	Unreachable int           // agents left without a path
	Elapsed     time.Duration // wall time of the batch
}

// NewWorld wraps g. The World takes ownership: g must not be touched
// directly afterwards.
func NewWorld(g *grid.Grid, opts ...Option) *World {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = astar.Manhattan
	}

	return &World{grid: g, opts: cfg}
}

// Mutate runs fn with exclusive access to the grid.
func (w *World) Mutate(fn func(g *grid.Grid)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.grid)
}

// SetCell replaces the node at c.
func (w *World) SetCell(c grid.Coordinates, n grid.Node) {
	w.Mutate(func(g *grid.Grid) { g.Set(c, n) })
}

// ToggleCell flips c between fully open and fully closed and returns the
// new node.
func (w *World) ToggleCell(c grid.Coordinates) grid.Node {
	var n grid.Node
	w.Mutate(func(g *grid.Grid) { n = g.Toggle(c) })
	return n
}

// Entangle adds a shortcut between a and b.
func (w *World) Entangle(a, b grid.Coordinates) {
	w.Mutate(func(g *grid.Grid) { g.Entangle(a, b) })
}

// Snapshot returns a deep copy of the grid.
func (w *World) Snapshot() *grid.Grid {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Clone()
}

// Search runs a single search against the current grid.
func (w *World) Search(start, goal grid.Coordinates) ([]grid.Coordinates, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return astar.Search(w.grid, start, goal, w.opts.Heuristic, w.opts.Search...)
}

// Invalidate marks the agents whose paths may be affected by edits to
// changes and returns how many are now marked. Off-grid changes and nil
// agents are ignored.
func (w *World) Invalidate(agents []*Agent, changes []grid.Coordinates) int {
	changed := mapset.New[grid.Coordinates]()
	opened := false

	w.mu.RLock()
	for _, c := range changes {
		if !w.grid.Contains(c) {
			continue
		}
		changed.Put(c)
		if w.grid.Get(c).Left {
			opened = true
		}
	}
	w.mu.RUnlock()

	marked := 0
	for _, a := range agents {
		if a == nil {
			continue
		}
		if opened || !a.HasPath() || crosses(a.Path, changed) {
			a.CheckPath = true
		}
		if a.CheckPath {
			marked++
		}
	}

	return marked
}

func crosses(path []grid.Coordinates, cells mapset.Set[grid.Coordinates]) bool {
	for _, c := range path {
		if cells.Has(c) {
			return true
		}
	}
	return false
}

// group is the ordered set of agents heading to one destination.
type group struct {
	dest   grid.Coordinates
	agents []*Agent
}

// groupByDestination buckets the agents that need a search, keeping the
// first-seen order of destinations and the input order inside each bucket.
func groupByDestination(agents []*Agent) []group {
	idx := make(map[grid.Coordinates]int)
	var out []group
	for _, a := range agents {
		if a == nil || !a.CheckPath {
			continue
		}
		i, ok := idx[a.Destination]
		if !ok {
			i = len(out)
			idx[a.Destination] = i
			out = append(out, group{dest: a.Destination})
		}
		out[i].agents = append(out[i].agents, a)
	}
	return out
}

// Repath searches a new path for every agent with CheckPath set.
//
// On success an agent gets the new path, Traversal 0 and CheckPath false.
// On failure its Path is cleared, Traversal becomes -1 and CheckPath stays
// set so the next batch retries. Agents must not be shared between
// concurrent Repath calls.
//
// The returned error is ctx.Err() if the batch was cancelled, or wraps
// ErrAgentOutOfBounds; agents already processed keep their results.
func (w *World) Repath(ctx context.Context, agents []*Agent) (Report, error) {
	began := time.Now()
	groups := groupByDestination(agents)
	reports := make([]Report, len(groups))

	w.mu.RLock()
	defer w.mu.RUnlock()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.opts.Workers)
	for i := range groups {
		i := i // per-iteration copy; go.mod targets go1.21 semantics
		eg.Go(func() error {
			return w.repathGroup(ctx, groups[i], &reports[i])
		})
	}
	err := eg.Wait()

	total := Report{Groups: len(groups), Elapsed: time.Since(began)}
	for _, r := range reports {
		total.Searched += r.Searched
		total.Found += r.Found
		total.Unreachable += r.Unreachable
	}
	w.opts.Logger.WithFields(logrus.Fields{
		"groups":      total.Groups,
		"searched":    total.Searched,
		"found":       total.Found,
		"unreachable": total.Unreachable,
		"elapsed":     total.Elapsed,
	}).Debug("repath batch done")

	return total, err
}

// repathGroup processes one destination group in order. Caller holds the
// read lock.
func (w *World) repathGroup(ctx context.Context, grp group, r *Report) error {
	if !w.grid.Contains(grp.dest) {
		return fmt.Errorf("%w: destination %v", ErrAgentOutOfBounds, grp.dest)
	}

	cache := NewPartialPathCache()
	for _, a := range grp.agents {
		if err := ctx.Err(); err != nil {
			return err
		}

		start, prepend := a.searchStart()
		if !w.grid.Contains(start) {
			return fmt.Errorf("%w: agent %s start %v", ErrAgentOutOfBounds, a, start)
		}

		r.Searched++
		path, ok := cache.Search(w.grid, start, a.Destination, w.opts.Heuristic, w.opts.Search...)
		if !ok {
			a.Path = nil
			a.Traversal = -1
			a.CheckPath = true
			r.Unreachable++
			w.opts.Logger.WithFields(logrus.Fields{
				"agent": a.ID,
				"name":  a.Name,
				"from":  start,
				"to":    a.Destination,
			}).Info("destination unreachable")
			continue
		}

		cache.Record(path)
		if prepend {
			path = append([]grid.Coordinates{a.Position}, path...)
		}
		a.Path = path
		a.Traversal = 0
		a.CheckPath = false
		r.Found++
	}

	return nil
}
