package astar_test

import (
	"fmt"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/grid"
)

// ExampleSearch routes around a closed cell in the middle of a 3×3 room.
func ExampleSearch() {
	g := grid.New(3, 3, grid.Open())
	g.Set(grid.C(1, 1), grid.Closed())

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(2, 2), astar.Manhattan, astar.WithUniformCost())
	fmt.Println(ok, len(path)-1)
	// Output:
	// true 4
}

// ExampleSearch_entanglement crosses a fully closed grid over a shortcut.
func ExampleSearch_entanglement() {
	g := grid.New(5, 5, grid.Closed())
	g.Entangle(grid.C(0, 0), grid.C(2, 2))

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(2, 2), astar.Manhattan)
	fmt.Println(ok, path)
	// Output:
	// true [(0,0) (2,2)]
}

// ExamplePartialPaths shares one agent's route with the next.
func ExamplePartialPaths() {
	g := grid.New(4, 4, grid.Open())
	goal := grid.C(0, 3)

	first, _ := astar.Search(g, grid.C(0, 0), goal, astar.Manhattan)
	pp := astar.PartialPaths{}
	pp.Record(first)

	second, ok := astar.Search(g, grid.C(0, 0), goal, astar.Manhattan, astar.WithPartialPaths(pp))
	fmt.Println(ok, second)
	// Output:
	// true [(0,0) (0,1) (0,2) (0,3)]
}
