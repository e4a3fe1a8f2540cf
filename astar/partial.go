// SPDX-License-Identifier: MIT

package astar

import "github.com/katalvlaran/letterbox/grid"

// PartialPaths maps a cell to a suffix path that leads from that cell to
// some agent's goal. The suffix excludes the key cell itself: for a known
// path P, PartialPaths{P[i]: P[i+1:]}.
//
// A PartialPaths value is built for one batch of searches sharing a goal
// and discarded afterwards; Search only reads it.
type PartialPaths map[grid.Coordinates][]grid.Coordinates

// Record adds every proper prefix cell of path as a splice point. Existing
// keys are kept (first writer wins), so suffixes recorded earlier in a
// batch are never replaced by later ones. The suffixes share one private
// copy of path.
func (pp PartialPaths) Record(path []grid.Coordinates) {
	if len(path) < 2 {
		return
	}
	own := make([]grid.Coordinates, len(path))
	copy(own, path)

	for i := 0; i+1 < len(own); i++ {
		if _, ok := pp[own[i]]; ok {
			continue
		}
		pp[own[i]] = own[i+1 : len(own) : len(own)]
	}
}

// Valid reports whether path is a non-empty walk on g: every cell is in
// bounds and each consecutive pair is one move apart (a passable side or an
// entanglement).
func Valid(g *grid.Grid, path []grid.Coordinates) bool {
	if len(path) == 0 {
		return false
	}
	for _, c := range path {
		if !g.Contains(c) {
			return false
		}
	}
	for i := 0; i+1 < len(path); i++ {
		if !g.Adjacent(path[i], path[i+1]) {
			return false
		}
	}

	return true
}
