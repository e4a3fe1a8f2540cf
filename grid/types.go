// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds is carried by the panic raised when a cell outside
	// [0,rows)×[0,cols) is indexed.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")

	// ErrBadShape indicates negative dimensions passed to New.
	ErrBadShape = errors.New("grid: rows and cols must be non-negative")

	// ErrUnknownDirection indicates a Direction value outside Left..Bottom.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)

// Coordinates identifies a single cell. Equality and hashing are by value,
// so Coordinates can be used directly as a map key.
type Coordinates struct {
	Row int
	Col int
}

// C is shorthand for Coordinates{Row: row, Col: col}.
func C(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// String renders the coordinates as "(row,col)".
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction selects one of the four sides of a cell.
type Direction int

const (
	// Left is the west side of a cell.
	Left Direction = iota
	// Top is the north side of a cell.
	Top
	// Right is the east side of a cell.
	Right
	// Bottom is the south side of a cell.
	Bottom
)

// Directions lists all sides in encoding order.
var Directions = [4]Direction{Left, Top, Right, Bottom}

// Opposite returns the side facing d on the adjacent cell.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownDirection, int(d)))
}

// Offset returns the (row, col) delta towards the neighbour on side d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Left:
		return 0, -1
	case Top:
		return -1, 0
	case Right:
		return 0, 1
	case Bottom:
		return 1, 0
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownDirection, int(d)))
}

// String returns the lower-case side name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection maps a side name ("left", "top", "right", "bottom",
// also "up"/"down") to its Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "l":
		return Left, nil
	case "top", "up", "t", "u":
		return Top, nil
	case "right", "r":
		return Right, nil
	case "bottom", "down", "b", "d":
		return Bottom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Entanglement is an unordered shortcut edge between two cells. It is
// traversable in both directions regardless of wall flags.
type Entanglement struct {
	A, B Coordinates
}

// Touches reports whether c is one of the endpoints.
func (e Entanglement) Touches(c Coordinates) bool {
	return e.A == c || e.B == c
}

// Other returns the endpoint opposite to c. For a self-loop both
// endpoints are c and c is returned.
func (e Entanglement) Other(c Coordinates) Coordinates {
	if e.A == c {
		return e.B
	}
	return e.A
}
