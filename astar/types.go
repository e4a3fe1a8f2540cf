// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"

	"github.com/katalvlaran/letterbox/grid"
)

// Weight is the cost of a single move.
const Weight = 1

// Heuristic estimates the remaining distance from a to b. It must be
// admissible for the returned paths to be shortest.
type Heuristic func(a, b grid.Coordinates) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b grid.Coordinates) int {
	return abs(b.Row-a.Row) + abs(b.Col-a.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// TieBreak selects the secondary ordering of frontier nodes whose f is
// equal.
type TieBreak int

const (
	// TieBreakNone orders by f only. Equal-f nodes leave the heap in the
	// order the heap happens to produce, which is deterministic for a given
	// grid and query.
	TieBreakNone TieBreak = iota

	// TieBreakDeeper prefers the node with the larger g among equal f,
	// which tends to follow one corridor to the goal instead of fanning out.
	TieBreakDeeper
)

// CostModel selects how the tentative g of a neighbour is computed.
type CostModel int

const (
	// CostAdditive computes g = g(current) + (g(neighbour) if already
	// seen, else Weight). Because seen neighbours can never improve under
	// this rule, the first discovery of a cell fixes its cost.
	CostAdditive CostModel = iota

	// CostUniform computes g = g(current) + Weight and re-queues a
	// neighbour whenever that strictly improves its best known g.
	CostUniform
)

// Options configures a single Search call.
//
// PartialPaths  – optional suffix map; see WithPartialPaths.
// TieBreak      – secondary frontier ordering on equal f.
// Cost          – tentative-cost formula.
// MaxExpansions – expansion budget; 0 means unlimited.
type Options struct {
	PartialPaths  PartialPaths
	TieBreak      TieBreak
	Cost          CostModel
	MaxExpansions int
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the default configuration: no partial paths,
// f-only ordering, additive cost formula, no expansion cap.
func DefaultOptions() Options {
	return Options{
		PartialPaths:  nil,
		TieBreak:      TieBreakNone,
		Cost:          CostAdditive,
		MaxExpansions: 0,
	}
}

// WithPartialPaths lets the search finish on a cell that is a key of pp,
// returning the path to that cell followed by pp[cell]. A splice is only
// taken when it is no longer than the plain path to the goal.
// A nil map disables splicing.
func WithPartialPaths(pp PartialPaths) Option {
	return func(o *Options) {
		o.PartialPaths = pp
	}
}

// WithTieBreak sets the equal-f ordering. Unknown values panic.
func WithTieBreak(tb TieBreak) Option {
	if tb != TieBreakNone && tb != TieBreakDeeper {
		panic(fmt.Sprintf("astar: WithTieBreak(%d): unknown tie-break", int(tb)))
	}
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithUniformCost switches to the conventional g = g(current) + Weight rule.
func WithUniformCost() Option {
	return func(o *Options) {
		o.Cost = CostUniform
	}
}

// WithMaxExpansions caps the number of expanded nodes. Negative values panic.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("astar: WithMaxExpansions(%d): must be non-negative", n))
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}
