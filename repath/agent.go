// SPDX-License-Identifier: MIT

package repath

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/letterbox/grid"
)

// Agent is one routed actor: where it is, where it is going, and the path
// it is currently walking.
//
// Path[Traversal] is the cell the agent last reached along Path; Traversal
// is -1 when there is no path. CheckPath marks the agent for the next Repath.
type Agent struct {
	ID          uuid.UUID
	Name        string
	Position    grid.Coordinates
	Destination grid.Coordinates
	Path        []grid.Coordinates
	Traversal   int
	CheckPath   bool
}

// NewAgent returns an agent at pos heading for dest, with a fresh random ID,
// no path, and CheckPath set.
func NewAgent(name string, pos, dest grid.Coordinates) *Agent {
	return &Agent{
		ID:          uuid.New(),
		Name:        name,
		Position:    pos,
		Destination: dest,
		Traversal:   -1,
		CheckPath:   true,
	}
}

// String renders the agent for logs: name (or short ID), position, target.
func (a *Agent) String() string {
	name := a.Name
	if name == "" {
		name = a.ID.String()[:8]
	}
	return fmt.Sprintf("%s@%v→%v", name, a.Position, a.Destination)
}

// HasPath reports whether the agent holds a path it can follow.
func (a *Agent) HasPath() bool {
	return len(a.Path) > 0 && a.Traversal >= 0
}

// SetDestination retargets the agent and marks it for repathing.
func (a *Agent) SetDestination(dest grid.Coordinates) {
	a.Destination = dest
	a.CheckPath = true
}

// Remaining returns the cells still ahead of the agent, excluding the one
// it stands on. The slice aliases Path.
func (a *Agent) Remaining() []grid.Coordinates {
	if !a.HasPath() || a.Traversal >= len(a.Path)-1 {
		return nil
	}
	return a.Path[a.Traversal+1:]
}

// Advance moves the agent one cell along its path. It returns false when
// there is no path or the end has been reached.
func (a *Agent) Advance() bool {
	if !a.HasPath() || a.Traversal >= len(a.Path)-1 {
		return false
	}
	a.Traversal++
	a.Position = a.Path[a.Traversal]
	return true
}

// searchStart picks the cell a new search should start from. An agent that
// is between two cells of its path keeps heading for the next one; the
// second result reports whether Position must be prepended to the result.
func (a *Agent) searchStart() (grid.Coordinates, bool) {
	if a.HasPath() && a.Traversal < len(a.Path)-1 {
		next := a.Path[a.Traversal+1]
		return next, next != a.Position
	}
	return a.Position, false
}
