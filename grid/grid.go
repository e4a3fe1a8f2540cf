// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Grid is a fixed-size, row-major matrix of Nodes plus a list of
// entanglements. It is created once with a default fill and then mutated
// cell by cell; it is never resized.
type Grid struct {
	rows, cols    int            // dimensions, fixed at construction
	cells         []Node         // row-major storage, len == rows*cols
	entanglements []Entanglement // shortcut edges, duplicates allowed
}

// New allocates a rows×cols grid with every cell set to def and no
// entanglements. Negative dimensions panic.
// Complexity: O(rows×cols).
func New(rows, cols int, def Node) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols))
	}
	cells := make([]Node, rows*cols)
	for i := range cells {
		cells[i] = def
	}

	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether c lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) Contains(c Coordinates) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major offset. Panics if !Contains(c).
func (g *Grid) Index(c Coordinates) int {
	g.mustContain(c)
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major offset back to Coordinates.
func (g *Grid) Coordinate(i int) Coordinates {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Errorf("%w: index %d of %d", ErrOutOfBounds, i, len(g.cells)))
	}
	return Coordinates{Row: i / g.cols, Col: i % g.cols}
}

// Get returns a copy of the node at c. Panics if !Contains(c).
func (g *Grid) Get(c Coordinates) Node {
	return g.cells[g.Index(c)]
}

// Set replaces the node at c. Panics if !Contains(c).
// Only c is written; the facing flags of neighbours are left untouched.
func (g *Grid) Set(c Coordinates, n Node) {
	g.cells[g.Index(c)] = n
}

// SetWall opens or closes side d of c together with the facing side of
// the adjacent cell, keeping both halves of the wall in sync. If the
// neighbour lies off-grid only c is written.
func (g *Grid) SetWall(c Coordinates, d Direction, open bool) {
	i := g.Index(c)
	g.cells[i].Put(d, open)

	dr, dc := d.Offset()
	n := Coordinates{Row: c.Row + dr, Col: c.Col + dc}
	if !g.Contains(n) {
		return
	}
	g.cells[g.Index(n)].Put(d.Opposite(), open)
}

// Toggle flips c between Open and Closed, keyed on its Left flag: a cell
// whose left side is passable becomes Closed, any other cell becomes Open.
// The new node is returned.
func (g *Grid) Toggle(c Coordinates) Node {
	i := g.Index(c)
	next := Open()
	if g.cells[i].Left {
		next = Closed()
	}
	g.cells[i] = next

	return next
}

// Entangle declares a bidirectional shortcut between a and b. Both
// endpoints must be in bounds. Self-loops and duplicates are accepted and
// every copy is considered during search.
func (g *Grid) Entangle(a, b Coordinates) {
	g.mustContain(a)
	g.mustContain(b)
	g.entanglements = append(g.entanglements, Entanglement{A: a, B: b})
}

// Entanglements returns a copy of the declared shortcut edges in
// declaration order.
func (g *Grid) Entanglements() []Entanglement {
	out := make([]Entanglement, len(g.entanglements))
	copy(out, g.entanglements)

	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coordinates, n Node)) {
	for i, n := range g.cells {
		fn(Coordinates{Row: i / g.cols, Col: i % g.cols}, n)
	}
}

// Clone returns a deep copy of the grid, entanglements included.
// Complexity: O(rows×cols + E).
func (g *Grid) Clone() *Grid {
	cells := make([]Node, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		rows:          g.rows,
		cols:          g.cols,
		cells:         cells,
		entanglements: g.Entanglements(),
	}
}

func (g *Grid) mustContain(c Coordinates) {
	if !g.Contains(c) {
		panic(fmt.Errorf("%w: %v not in %d×%d", ErrOutOfBounds, c, g.rows, g.cols))
	}
}
