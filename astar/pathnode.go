// SPDX-License-Identifier: MIT

package astar

import "github.com/katalvlaran/letterbox/grid"

// PathNode is one frontier record of a search: the cell, its predecessor
// on the discovered path, the cost so far (G), the heuristic estimate (H)
// and the priority key F = G + H.
//
// Two PathNodes are the same frontier entry when their Index matches,
// regardless of cost.
type PathNode struct {
	Index     grid.Coordinates
	Parent    grid.Coordinates // valid only when HasParent
	HasParent bool
	G, H, F   int
}

// Initial builds the seed node for a search from index towards goal.
// It carries G = Weight and F = H + Weight.
func Initial(index, goal grid.Coordinates, h Heuristic) PathNode {
	est := h(index, goal)

	return PathNode{
		Index: index,
		G:     Weight,
		H:     est,
		F:     est + Weight,
	}
}

// Equal reports whether n and o describe the same cell.
func (n PathNode) Equal(o PathNode) bool {
	return n.Index == o.Index
}

// Less orders by ascending F. It is the priority relation of the open set
// under TieBreakNone.
func (n PathNode) Less(o PathNode) bool {
	return n.F < o.F
}

// lessFn returns the heap ordering for tb.
func lessFn(tb TieBreak) func(a, b PathNode) bool {
	if tb == TieBreakDeeper {
		return func(a, b PathNode) bool {
			if a.F != b.F {
				return a.F < b.F
			}
			return a.G > b.G
		}
	}
	return PathNode.Less
}
