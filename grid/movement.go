// SPDX-License-Identifier: MIT

package grid

import "github.com/zyedidia/generic/mapset"

// Left returns the west neighbour of c if it exists and its Right flag is
// passable. c's own Left flag is not consulted.
func (g *Grid) Left(c Coordinates) (Coordinates, bool) {
	g.mustContain(c)
	if c.Col == 0 {
		return Coordinates{}, false
	}
	n := Coordinates{Row: c.Row, Col: c.Col - 1}

	return n, g.cells[g.Index(n)].Right
}

// Up returns the north neighbour of c if it exists and its Bottom flag is
// passable.
func (g *Grid) Up(c Coordinates) (Coordinates, bool) {
	g.mustContain(c)
	if c.Row == 0 {
		return Coordinates{}, false
	}
	n := Coordinates{Row: c.Row - 1, Col: c.Col}

	return n, g.cells[g.Index(n)].Bottom
}

// Right returns the east neighbour of c if it exists and its Left flag is
// passable.
func (g *Grid) Right(c Coordinates) (Coordinates, bool) {
	g.mustContain(c)
	if c.Col >= g.cols-1 {
		return Coordinates{}, false
	}
	n := Coordinates{Row: c.Row, Col: c.Col + 1}

	return n, g.cells[g.Index(n)].Left
}

// Down returns the south neighbour of c if it exists and its Top flag is
// passable.
func (g *Grid) Down(c Coordinates) (Coordinates, bool) {
	g.mustContain(c)
	if c.Row >= g.rows-1 {
		return Coordinates{}, false
	}
	n := Coordinates{Row: c.Row + 1, Col: c.Col}

	return n, g.cells[g.Index(n)].Top
}

// Step dispatches to Left/Up/Right/Down by side.
func (g *Grid) Step(c Coordinates, d Direction) (Coordinates, bool) {
	switch d {
	case Left:
		return g.Left(c)
	case Top:
		return g.Up(c)
	case Right:
		return g.Right(c)
	case Bottom:
		return g.Down(c)
	}
	return Coordinates{}, false
}

// NearestNeighbours returns every cell reachable from c in one move:
// first the far endpoint of each entanglement touching c (in declaration
// order, duplicates kept), then the passable left, up, right and down
// neighbours. Callers should treat the result as a set.
// Complexity: O(E).
func (g *Grid) NearestNeighbours(c Coordinates) []Coordinates {
	out := make([]Coordinates, 0, 4)
	for _, e := range g.entanglements {
		if e.Touches(c) {
			out = append(out, e.Other(c))
		}
	}
	for _, d := range Directions {
		if n, ok := g.Step(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// Adjacent reports whether a single move leads from a to b, either by a
// passable side or by an entanglement.
func (g *Grid) Adjacent(a, b Coordinates) bool {
	for _, n := range g.NearestNeighbours(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Reachable returns all cells reachable from start, start included, in
// breadth-first order. Reachability is directed: it follows the same
// inward-flag rule as the movement methods.
// Complexity: O((R×C)·(4+E)) time, O(R×C) memory.
func (g *Grid) Reachable(start Coordinates) []Coordinates {
	g.mustContain(start)
	seen := mapset.New[Coordinates]()
	seen.Put(start)
	queue := []Coordinates{start}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.NearestNeighbours(queue[qi]) {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}

	return queue
}
