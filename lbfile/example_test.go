package lbfile_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/letterbox/grid"
	"github.com/katalvlaran/letterbox/lbfile"
)

func ExampleWrite() {
	g := grid.New(2, 2, grid.Open())
	g.Set(grid.C(1, 1), grid.Closed())

	e, _ := lbfile.Encode(g)
	var buf bytes.Buffer
	if err := lbfile.Write(&buf, e); err != nil {
		panic(err)
	}

	back, _ := lbfile.Read(&buf)
	fmt.Println(back.Rows, back.Cols, back.Cells)
	// Output:
	// 2 2 [15 15 15 0]
}
