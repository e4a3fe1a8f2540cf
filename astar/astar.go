// SPDX-License-Identifier: MIT

// Package astar implements weighted A* search over a grid.Grid.
//
// The search walks the 4-connected wall model of package grid plus every
// declared entanglement. While entanglement endpoints remain unvisited the
// heuristic of a newly discovered cell is measured towards the closest of
// them (or the goal, whichever is nearer), which pulls the frontier towards
// shortcuts before it commits to walking.
//
// Complexity:
//
//   - Time:  O(N·(d+E)·T + N log N), N = cells expanded, d = 4,
//     E = entanglements, T = 2E+1 target candidates.
//   - Space: O(N) for the open set, closed set and cost lookup.
//
// Notes on implementation choices:
//
//   - The open set is a binary heap with lazy decrease-key: a superseded
//     entry stays in the heap and is discarded when popped, because its g no
//     longer matches the best cost recorded for its cell.
//   - The goal test runs before the partial-path test, so a search whose goal
//     is itself a splice key returns a plain path.
//   - Splicing never lengthens a result. The pop order is the same with or
//     without partial paths; a splice candidate is only returned when it is
//     no longer than the path the plain search would return.
//   - A single call never yields and cannot be cancelled; it runs until the
//     goal, an accepted splice, an exhausted frontier or the expansion budget.
//
// Options:
//
//   - WithPartialPaths: finish early by splicing onto suffix paths
//     already computed for other agents heading to the same goal.
//   - WithTieBreak:     secondary ordering for equal f (default: none).
//   - WithUniformCost:  g = g(parent) + Weight instead of the additive
//     "parent g + neighbour g-or-Weight" formula.
//   - WithMaxExpansions: give up after n expanded nodes (default: no cap).
//
// Example usage:
//
//	path, ok := astar.Search(g, grid.C(0, 0), grid.C(9, 9), astar.Manhattan)
//	if !ok {
//	    // destination unreachable: hold position or pick another goal
//	}
package astar

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/letterbox/grid"
)

// Search finds a path from start to goal on g.
//
// Returns:
//
//   - path: cells from start to goal inclusive (or, when spliced onto a
//     partial path, to the end of that partial path). path[0] == start.
//   - ok:   false iff no path exists (or the expansion budget ran out).
//
// start == goal yields ([start], true). A nil heuristic defaults to
// Manhattan. start and goal must lie within g; otherwise Search panics.
func Search(g *grid.Grid, start, goal grid.Coordinates, h Heuristic, opts ...Option) ([]grid.Coordinates, bool) {
	// 1) Apply options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if h == nil {
		h = Manhattan
	}

	// 2) Validate endpoints (programmer error if out of bounds).
	g.Index(start)
	g.Index(goal)

	// 3) Collect target candidates: every entanglement endpoint, then goal.
	es := g.Entanglements()
	targets := make([]grid.Coordinates, 0, 2*len(es)+1)
	for _, e := range es {
		targets = append(targets, e.A, e.B)
	}
	targets = append(targets, goal)

	r := &runner{
		g:       g,
		goal:    goal,
		h:       h,
		options: cfg,
		open:    heap.New[PathNode](lessFn(cfg.TieBreak)),
		closed:  make(map[grid.Coordinates]PathNode),
		lookup:  map[grid.Coordinates]int{start: 0},
		targets: targets,
	}
	r.open.Push(Initial(start, goal, h))

	return r.process()
}

// runner holds the mutable state of a single Search call.
type runner struct {
	g       *grid.Grid
	goal    grid.Coordinates
	h       Heuristic
	options Options

	open    *heap.Heap[PathNode]          // frontier ordered by f
	closed  map[grid.Coordinates]PathNode // expanded nodes, for back-pointers
	lookup  map[grid.Coordinates]int      // best g seen per cell
	targets []grid.Coordinates            // entanglement endpoints + goal

	expansions int
}

// splice is the cheapest partial-path join found so far.
type splice struct {
	at     PathNode
	suffix []grid.Coordinates
	moves  int
}

// process is the main loop: pop, test, close, expand.
//
// A popped splice key does not end the search on its own. It is kept as a
// candidate costing moves(key)+len(suffix), the key is expanded like any
// other cell, and the candidate is returned once it can no longer lose:
// when the goal is popped at a cost no lower, when the frontier or the
// expansion budget runs out, or, on a grid without entanglements, when the
// smallest f left reaches the candidate's cost. The last rule relies on a
// consistent heuristic such as Manhattan.
func (r *runner) process() ([]grid.Coordinates, bool) {
	var best *splice
	monotone := len(r.targets) == 1

	for {
		cur, ok := r.open.Pop()
		if !ok {
			return r.finish(best)
		}
		if r.stale(cur) {
			continue
		}

		if cur.Index == r.goal {
			if best != nil && best.moves < moves(cur) {
				return r.finish(best)
			}
			return r.reconstruct(cur), true
		}
		if best != nil && monotone && cur.F >= best.moves {
			return r.finish(best)
		}
		if suffix, hit := r.options.PartialPaths[cur.Index]; hit {
			if c := moves(cur) + len(suffix); best == nil || c < best.moves {
				best = &splice{at: cur, suffix: suffix, moves: c}
			}
		}

		r.closed[cur.Index] = cur

		r.expansions++
		if r.options.MaxExpansions > 0 && r.expansions > r.options.MaxExpansions {
			return r.finish(best)
		}

		r.expand(cur)
	}
}

// finish returns the spliced path of best, or no path when best is nil.
func (r *runner) finish(best *splice) ([]grid.Coordinates, bool) {
	if best == nil {
		return nil, false
	}
	path := r.reconstruct(best.at)
	return append(path, best.suffix...), true
}

// moves is the number of steps from the start to n. The seed carries
// G = Weight but sits at distance zero.
func moves(n PathNode) int {
	if !n.HasParent {
		return 0
	}
	return n.G
}

// stale reports whether cur was superseded after being pushed: either its
// cell is already expanded or a cheaper entry was recorded since.
func (r *runner) stale(cur PathNode) bool {
	if _, done := r.closed[cur.Index]; done {
		return true
	}
	// The seed node carries G = Weight while lookup[start] = 0; it is
	// never superseded.
	return cur.HasParent && r.lookup[cur.Index] != cur.G
}

// expand relaxes every neighbour of cur that is not yet closed.
func (r *runner) expand(cur PathNode) {
	gSelf, seen := r.lookup[cur.Index]
	if !seen {
		gSelf = Weight
		r.lookup[cur.Index] = gSelf
	}

	for _, n := range r.g.NearestNeighbours(cur.Index) {
		if _, done := r.closed[n]; done {
			continue
		}

		gN, visited := r.lookup[n]
		if !visited {
			gN = Weight
		}

		var g int
		switch r.options.Cost {
		case CostUniform:
			g = gSelf + Weight
		default:
			g = gSelf + gN
		}

		if visited && g >= gN {
			continue
		}

		est := r.h(n, r.target(n))
		r.open.Push(PathNode{
			Index:     n,
			Parent:    cur.Index,
			HasParent: true,
			G:         g,
			H:         est,
			F:         g + est,
		})
		r.lookup[n] = g
	}
}

// target picks the closest (by heuristic from n) candidate that has not
// been seen yet; ties go to the earliest candidate. Falls back to goal.
func (r *runner) target(n grid.Coordinates) grid.Coordinates {
	best, bestD, found := r.goal, 0, false
	for _, t := range r.targets {
		if _, seen := r.lookup[t]; seen {
			continue
		}
		d := r.h(n, t)
		if !found || d < bestD {
			best, bestD, found = t, d, true
		}
	}

	return best
}

// reconstruct walks parent pointers from last back to the seed node and
// returns the cells in start→last order.
func (r *runner) reconstruct(last PathNode) []grid.Coordinates {
	rev := []grid.Coordinates{last.Index}
	for cur := last; cur.HasParent; {
		cur = r.closed[cur.Parent]
		rev = append(rev, cur.Index)
	}

	path := make([]grid.Coordinates, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}
