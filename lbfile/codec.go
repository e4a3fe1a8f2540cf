// SPDX-License-Identifier: MIT

// Package lbfile implements the compact ".lb" grid format.
//
// A grid is encoded as one byte per cell (see grid.Node.Byte) preceded by
// the row and column counts, each stored in a single byte:
//
//	rows | cols | cell[0] | cell[1] | ... | cell[rows*cols-1]
//
// On disk the whole sequence is wrapped in a zlib stream. Entanglements are
// not part of the format; a decoded grid never has any.
package lbfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/katalvlaran/letterbox/grid"
)

// MaxDimension is the largest row or column count the header can carry.
const MaxDimension = 255

// Sentinel errors returned by the codec.
var (
	// ErrDimensionLimit indicates rows or cols exceed MaxDimension.
	ErrDimensionLimit = errors.New("lbfile: dimension exceeds 255")

	// ErrCellCount indicates len(Cells) != Rows*Cols.
	ErrCellCount = errors.New("lbfile: cell count does not match dimensions")

	// ErrTruncated indicates a stream shorter than its two-byte header.
	ErrTruncated = errors.New("lbfile: truncated stream")
)

// Encoded is the uncompressed form of a grid: dimensions plus one byte per
// cell in row-major order.
type Encoded struct {
	Rows  int
	Cols  int
	Cells []byte
}

// Encode converts g to its byte form.
func Encode(g *grid.Grid) (Encoded, error) {
	if g.Rows() > MaxDimension || g.Cols() > MaxDimension {
		return Encoded{}, fmt.Errorf("%w: %d×%d", ErrDimensionLimit, g.Rows(), g.Cols())
	}

	cells := make([]byte, 0, g.Len())
	g.Each(func(_ grid.Coordinates, n grid.Node) {
		cells = append(cells, n.Byte())
	})

	return Encoded{Rows: g.Rows(), Cols: g.Cols(), Cells: cells}, nil
}

// Decode rebuilds a grid from e. The result has no entanglements.
func Decode(e Encoded) (*grid.Grid, error) {
	if e.Rows < 0 || e.Cols < 0 || len(e.Cells) != e.Rows*e.Cols {
		return nil, fmt.Errorf("%w: %d cells for %d×%d", ErrCellCount, len(e.Cells), e.Rows, e.Cols)
	}

	g := grid.New(e.Rows, e.Cols, grid.Closed())
	for i, b := range e.Cells {
		g.Set(g.Coordinate(i), grid.NodeFromByte(b))
	}

	return g, nil
}

// Write compresses e onto w as a zlib stream.
func Write(w io.Writer, e Encoded) error {
	if e.Rows > MaxDimension || e.Cols > MaxDimension || e.Rows < 0 || e.Cols < 0 {
		return fmt.Errorf("%w: %d×%d", ErrDimensionLimit, e.Rows, e.Cols)
	}

	zw := zlib.NewWriter(w)
	if _, err := zw.Write([]byte{byte(e.Rows), byte(e.Cols)}); err != nil {
		_ = zw.Close()
		return fmt.Errorf("lbfile: write header: %w", err)
	}
	if _, err := zw.Write(e.Cells); err != nil {
		_ = zw.Close()
		return fmt.Errorf("lbfile: write cells: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("lbfile: flush: %w", err)
	}

	return nil
}

// Read decompresses one zlib stream from r. The cell count is not checked
// here; Decode does that.
func Read(r io.Reader) (Encoded, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Encoded{}, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return Encoded{}, fmt.Errorf("lbfile: open zlib stream: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return Encoded{}, fmt.Errorf("lbfile: inflate: %w", err)
	}
	if len(raw) < 2 {
		return Encoded{}, fmt.Errorf("%w: %d bytes", ErrTruncated, len(raw))
	}

	return Encoded{
		Rows:  int(raw[0]),
		Cols:  int(raw[1]),
		Cells: bytes.Clone(raw[2:]),
	}, nil
}
