// SPDX-License-Identifier: MIT

// Package letterbox is a pathfinding engine for tile games whose obstacles
// change while actors are on the move.
//
// The grid is a fixed matrix of cells, each with four passable-or-not
// sides, plus "entanglements": shortcut edges joining two arbitrary cells.
// Actors are routed with a weighted A* that is drawn towards unvisited
// shortcut endpoints and can stop early by splicing onto a route another
// actor already found for the same destination.
//
// Packages:
//
//	grid/          Coordinates, Node, Grid, movement rules and reachability
//	astar/         the A* search, heuristics, options and partial paths
//	lbfile/        the zlib-compressed ".lb" grid format
//	repath/        World, Agent and batched, grouped repathing after edits
//	scenario/      YAML descriptions of grids and agents
//	config/        LETTERBOX_* environment settings
//	cmd/letterbox/ command-line front end
//	examples/      a runnable swarm demo
//
// Quick start:
//
//	g := grid.New(20, 20, grid.Open())
//	g.Set(grid.C(5, 5), grid.Closed())
//	g.Entangle(grid.C(0, 0), grid.C(19, 19))
//	path, ok := astar.Search(g, grid.C(0, 0), grid.C(19, 18), astar.Manhattan)
//
// Movement is asymmetric by construction: stepping from a cell into its
// neighbour only consults the neighbour's side facing back; use
// Grid.SetWall to keep both faces of a wall consistent.
package letterbox
