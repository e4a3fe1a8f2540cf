// SPDX-License-Identifier: MIT

// Package repath keeps a population of agents routed across a mutable grid.
//
// A World owns the grid behind a sync.RWMutex. Edits (SetCell, ToggleCell,
// Entangle, Mutate) take the write lock and stop every search; a Repath
// batch holds the read lock from start to finish, so no search ever sees a
// half-applied edit.
//
// Batch model:
//
//   - Only agents with CheckPath set are searched.
//   - Agents are grouped by Destination. A group runs sequentially and
//     shares one PartialPathCache, so later agents splice onto the routes
//     already found for earlier ones. Order inside a group is input order.
//   - Groups run in parallel on a bounded errgroup (WithWorkers).
//   - ctx is checked between searches; a running search is never cut short.
//
// After grid edits, Invalidate decides which agents need a new path:
// any edited cell that is now open (its Left side passable) may offer a
// shorter route to everyone; a closed edit only affects agents whose path
// crosses it; agents without a path are always rechecked.
//
// Errors:
//
//	ErrAgentOutOfBounds - an agent's start or destination lies off the grid.
package repath

import "errors"

// ErrAgentOutOfBounds is returned by Repath when an agent's search endpoint
// lies outside the grid. The batch is abandoned.
var ErrAgentOutOfBounds = errors.New("repath: agent endpoint out of bounds")
