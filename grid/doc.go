// SPDX-License-Identifier: MIT

// Package grid models a mutable tile grid as a connectivity graph for
// pathfinding.
//
// What:
//
//   - Coordinates identifies a cell by (Row, Col), zero-based, row-major.
//   - Node stores four passability flags (Left, Top, Right, Bottom) and packs
//     them into a single byte: left<<3 | top<<2 | right<<1 | bottom.
//   - Grid is a fixed-size row-major container of Nodes plus a list of
//     entanglements: bidirectional shortcut edges between arbitrary cells.
//   - Movement (Left, Up, Right, Down, NearestNeighbours) derives the
//     traversable neighbours of a cell from the node flags and entanglements.
//
// Passability:
//
//	A step from c to its east neighbour e is allowed iff e.Left is true.
//	Only the destination's inward flag is consulted; c.Right is ignored.
//	Use SetWall to keep both sides of a wall consistent.
//
// Preconditions:
//
//	Grid is a trusted internal structure. Get, Set, Entangle and the
//	movement methods panic on out-of-bounds coordinates. Boundary code
//	(cursor → cell conversion, file input) must call Contains first.
//
// Concurrency:
//
//	Grid performs no locking. Many goroutines may read it concurrently as
//	long as no goroutine mutates it at the same time; see package repath
//	for the stop-the-world wrapper.
//
// Complexity:
//
//   - New: O(R×C). Get/Set/Contains: O(1).
//   - NearestNeighbours: O(E) where E = number of entanglements.
//   - Reachable: O((R×C)·(4+E)).
package grid
