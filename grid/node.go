// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Bit layout of the packed node byte.
const (
	bitLeft   byte = 0b1000
	bitTop    byte = 0b0100
	bitRight  byte = 0b0010
	bitBottom byte = 0b0001
	bitsAll        = bitLeft | bitTop | bitRight | bitBottom
)

// Node is the passability record of one cell. Each flag tells whether the
// cell's edge on that side can be crossed. Node is a value type; the Grid
// hands out copies.
type Node struct {
	Left   bool
	Top    bool
	Right  bool
	Bottom bool
}

// Open returns a node with all four sides passable.
func Open() Node {
	return Node{Left: true, Top: true, Right: true, Bottom: true}
}

// Closed returns a node with all four sides blocked.
func Closed() Node {
	return Node{}
}

// NodeFromByte decodes the low four bits of b. Higher bits are ignored.
func NodeFromByte(b byte) Node {
	return Node{
		Left:   b&bitLeft != 0,
		Top:    b&bitTop != 0,
		Right:  b&bitRight != 0,
		Bottom: b&bitBottom != 0,
	}
}

// Byte packs the node as left<<3 | top<<2 | right<<1 | bottom.
func (n Node) Byte() byte {
	var b byte
	if n.Left {
		b |= bitLeft
	}
	if n.Top {
		b |= bitTop
	}
	if n.Right {
		b |= bitRight
	}
	if n.Bottom {
		b |= bitBottom
	}
	return b
}

// Get returns the flag for side d.
func (n Node) Get(d Direction) bool {
	switch d {
	case Left:
		return n.Left
	case Top:
		return n.Top
	case Right:
		return n.Right
	case Bottom:
		return n.Bottom
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownDirection, int(d)))
}

// With returns a copy of n whose side d is set to v.
func (n Node) With(d Direction, v bool) Node {
	n.Put(d, v)
	return n
}

// Put sets side d to v in place.
func (n *Node) Put(d Direction, v bool) {
	switch d {
	case Left:
		n.Left = v
	case Top:
		n.Top = v
	case Right:
		n.Right = v
	case Bottom:
		n.Bottom = v
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownDirection, int(d)))
	}
}

// IsOpen reports whether all four sides are passable.
func (n Node) IsOpen() bool { return n.Byte() == bitsAll }

// IsClosed reports whether all four sides are blocked.
func (n Node) IsClosed() bool { return n.Byte() == 0 }

// String renders the node as "[LTRB]", with '-' in place of blocked sides.
func (n Node) String() string {
	out := []byte("[----]")
	if n.Left {
		out[1] = 'L'
	}
	if n.Top {
		out[2] = 'T'
	}
	if n.Right {
		out[3] = 'R'
	}
	if n.Bottom {
		out[4] = 'B'
	}
	return string(out)
}
