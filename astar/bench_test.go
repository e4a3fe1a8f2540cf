package astar_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/letterbox/astar"
	"github.com/katalvlaran/letterbox/grid"
)

// benchGrid is an open n×n grid with the Left and Top sides of (1,9) closed.
func benchGrid(n int) *grid.Grid {
	g := grid.New(n, n, grid.Open())
	c := grid.C(1, 9)
	cell := g.Get(c)
	cell.Left = false
	cell.Top = false
	g.Set(c, cell)
	return g
}

func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{100, 1000} {
		g := benchGrid(n)
		goal := grid.C(n-1, n-1)
		for _, mode := range []struct {
			name string
			opts []astar.Option
		}{
			{"additive", nil},
			{"uniform", []astar.Option{astar.WithUniformCost()}},
		} {
			b.Run(fmt.Sprintf("%dx%d/%s", n, n, mode.name), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, ok := astar.Search(g, grid.C(0, 0), goal, astar.Manhattan, mode.opts...); !ok {
						b.Fatal("no path")
					}
				}
			})
		}
	}
}
