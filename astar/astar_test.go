package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/grid"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Degenerate and unreachable cases
// ------------------------------------------------------------------------

// TestSearch_StartIsGoal returns the single-cell path for any in-bounds cell.
func TestSearch_StartIsGoal(t *testing.T) {
	g := grid.New(4, 4, grid.Closed())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			x := grid.C(r, c)
			path, ok := astar.Search(g, x, x, astar.Manhattan)
			require.True(t, ok)
			require.Equal(t, []grid.Coordinates{x}, path)
		}
	}
}

// TestSearch_Isolated returns no path when every way out is blocked.
func TestSearch_Isolated(t *testing.T) {
	g := grid.New(5, 5, grid.Open())
	// Box in (2,2): each neighbour's side facing it is closed.
	g.SetWall(grid.C(2, 2), grid.Left, false)
	g.SetWall(grid.C(2, 2), grid.Top, false)
	g.SetWall(grid.C(2, 2), grid.Right, false)
	g.SetWall(grid.C(2, 2), grid.Bottom, false)

	path, ok := astar.Search(g, grid.C(2, 2), grid.C(0, 0), astar.Manhattan)
	require.False(t, ok)
	require.Nil(t, path)

	_, ok = astar.Search(g, grid.C(0, 0), grid.C(2, 2), astar.Manhattan)
	require.False(t, ok)
}

// TestSearch_OutOfBoundsPanics documents the precondition on endpoints.
func TestSearch_OutOfBoundsPanics(t *testing.T) {
	g := grid.New(3, 3, grid.Open())
	require.Panics(t, func() { astar.Search(g, grid.C(0, 0), grid.C(3, 3), astar.Manhattan) })
	require.Panics(t, func() { astar.Search(g, grid.C(-1, 0), grid.C(1, 1), astar.Manhattan) })
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

// TestSearch_AroundClosedCentre: 5×5 open grid with (2,2) closed.
func TestSearch_AroundClosedCentre(t *testing.T) {
	g := grid.New(5, 5, grid.Open())
	g.Set(grid.C(2, 2), grid.Closed())

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(4, 4), astar.Manhattan)
	require.True(t, ok)
	require.Len(t, path, 9)
	require.Equal(t, grid.C(0, 0), path[0])
	require.Equal(t, grid.C(4, 4), path[len(path)-1])
	require.NotContains(t, path, grid.C(2, 2))
	require.True(t, astar.Valid(g, path))
}

// TestSearch_EntanglementOnClosedGrid: the only edge is the shortcut.
func TestSearch_EntanglementOnClosedGrid(t *testing.T) {
	g := grid.New(5, 5, grid.Closed())
	g.Entangle(grid.C(0, 0), grid.C(2, 2))

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(2, 2), astar.Manhattan)
	require.True(t, ok)
	require.Equal(t, []grid.Coordinates{grid.C(0, 0), grid.C(2, 2)}, path)

	// Traversable in both directions.
	path, ok = astar.Search(g, grid.C(2, 2), grid.C(0, 0), astar.Manhattan)
	require.True(t, ok)
	require.Equal(t, []grid.Coordinates{grid.C(2, 2), grid.C(0, 0)}, path)
}

// TestSearch_EntanglementShortcut prefers the shortcut over walking.
func TestSearch_EntanglementShortcut(t *testing.T) {
	g := grid.New(10, 10, grid.Open())
	g.Entangle(grid.C(0, 0), grid.C(9, 9))

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(9, 9), astar.Manhattan)
	require.True(t, ok)
	require.Equal(t, []grid.Coordinates{grid.C(0, 0), grid.C(9, 9)}, path)
}

// TestSearch_EntanglementDetour walks to a shortcut endpoint and jumps.
func TestSearch_EntanglementDetour(t *testing.T) {
	// Two rooms separated by a closed column; the only bridge is a shortcut.
	g := grid.New(3, 7, grid.Open())
	for r := 0; r < 3; r++ {
		g.Set(grid.C(r, 3), grid.Closed())
	}
	g.Entangle(grid.C(2, 1), grid.C(0, 5))

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(2, 6), astar.Manhattan)
	require.True(t, ok)
	require.True(t, astar.Valid(g, path))
	require.Contains(t, path, grid.C(2, 1))
	require.Contains(t, path, grid.C(0, 5))
	require.Equal(t, grid.C(2, 6), path[len(path)-1])
}

// TestSearch_NilHeuristicDefaultsToManhattan.
func TestSearch_NilHeuristicDefaultsToManhattan(t *testing.T) {
	g := grid.New(4, 4, grid.Open())
	a, okA := astar.Search(g, grid.C(0, 0), grid.C(3, 3), nil)
	b, okB := astar.Search(g, grid.C(0, 0), grid.C(3, 3), astar.Manhattan)
	require.True(t, okA && okB)
	require.Equal(t, b, a)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestSearch_MaxExpansions(t *testing.T) {
	g := grid.New(10, 10, grid.Open())
	_, ok := astar.Search(g, grid.C(0, 0), grid.C(9, 9), astar.Manhattan, astar.WithMaxExpansions(3))
	require.False(t, ok)

	path, ok := astar.Search(g, grid.C(0, 0), grid.C(9, 9), astar.Manhattan, astar.WithMaxExpansions(1000), astar.WithUniformCost())
	require.True(t, ok)
	require.Len(t, path, 19)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { astar.WithMaxExpansions(-1) })
	require.Panics(t, func() { astar.WithTieBreak(astar.TieBreak(42)) })
}

func TestDefaultOptions(t *testing.T) {
	o := astar.DefaultOptions()
	require.Nil(t, o.PartialPaths)
	require.Equal(t, astar.TieBreakNone, o.TieBreak)
	require.Equal(t, astar.CostAdditive, o.Cost)
	require.Zero(t, o.MaxExpansions)
}

// ------------------------------------------------------------------------
// 4. Randomised properties against a BFS oracle
// ------------------------------------------------------------------------

// bfsSteps returns the minimum number of moves from a to b, or -1.
func bfsSteps(g *grid.Grid, a, b grid.Coordinates) int {
	dist := map[grid.Coordinates]int{a: 0}
	queue := []grid.Coordinates{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return dist[u]
		}
		for _, v := range g.NearestNeighbours(u) {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return -1
}

// randomGrid closes roughly density of the cells (all four sides).
func randomGrid(rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	g := grid.New(rows, cols, grid.Open())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < density {
				g.Set(grid.C(r, c), grid.Closed())
			}
		}
	}
	return g
}

// TestSearch_RandomGrids checks, for both cost models and tie-breaks, that a
// path exists iff BFS finds one, that every returned path is a valid walk
// from start to goal, and that the uniform cost model is optimal.
func TestSearch_RandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	variants := []struct {
		name    string
		opts    []astar.Option
		optimal bool
	}{
		{"additive", nil, false},
		{"uniform", []astar.Option{astar.WithUniformCost()}, true},
		{"uniform+deeper", []astar.Option{astar.WithUniformCost(), astar.WithTieBreak(astar.TieBreakDeeper)}, true},
		{"additive+deeper", []astar.Option{astar.WithTieBreak(astar.TieBreakDeeper)}, false},
	}

	for round := 0; round < 40; round++ {
		g := randomGrid(rng, 12, 12, 0.3)
		start := grid.C(rng.Intn(12), rng.Intn(12))
		goal := grid.C(rng.Intn(12), rng.Intn(12))
		want := bfsSteps(g, start, goal)

		for _, v := range variants {
			path, ok := astar.Search(g, start, goal, astar.Manhattan, v.opts...)
			require.Equal(t, want >= 0, ok, "%s round %d %v→%v", v.name, round, start, goal)
			if !ok {
				continue
			}
			require.Equal(t, start, path[0])
			require.Equal(t, goal, path[len(path)-1])
			require.True(t, astar.Valid(g, path), "%s round %d", v.name, round)
			if v.optimal {
				require.Equal(t, want+1, len(path), "%s round %d", v.name, round)
			}
		}
	}
}
