// SPDX-License-Identifier: MIT

// Package scenario reads YAML descriptions of a grid, its shortcuts and the
// agents routed across it.
//
// Document layout:
//
//	rows: 20
//	cols: 20
//	default: open          # open | closed (default open)
//	closed: [[2,2],[3,2]]  # cells set fully closed
//	open: [[5,5]]          # cells set fully open (applied after closed)
//	walls:                 # single sides, mirrored onto the neighbour
//	  - {at: [0,0], side: right}
//	  - {at: [4,4], side: top, open: true}
//	entanglements: [[[0,0],[19,19]]]
//	agents:
//	  - {name: r1, position: [0,0], destination: [19,19]}
//
// Coordinates are [row, col]. Unknown keys are rejected.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/letterbox/grid"
	"github.com/katalvlaran/letterbox/repath"
)

// ErrInvalid wraps every parse and validation failure.
var ErrInvalid = errors.New("scenario: invalid document")

// Cell is a [row, col] pair.
type Cell [2]int

// Coordinates converts c to grid coordinates.
func (c Cell) Coordinates() grid.Coordinates {
	return grid.C(c[0], c[1])
}

// Wall sets one side of a cell and the facing side of its neighbour.
type Wall struct {
	At   Cell   `yaml:"at"`
	Side string `yaml:"side"`
	Open bool   `yaml:"open,omitempty"`
}

// AgentSpec describes one agent.
type AgentSpec struct {
	Name        string `yaml:"name"`
	Position    Cell   `yaml:"position"`
	Destination Cell   `yaml:"destination"`
}

// Scenario is a decoded document.
type Scenario struct {
	Rows          int         `yaml:"rows"`
	Cols          int         `yaml:"cols"`
	Default       string      `yaml:"default,omitempty"`
	Closed        []Cell      `yaml:"closed,omitempty"`
	Open          []Cell      `yaml:"open,omitempty"`
	Walls         []Wall      `yaml:"walls,omitempty"`
	Entanglements [][2]Cell   `yaml:"entanglements,omitempty"`
	Agents        []AgentSpec `yaml:"agents,omitempty"`
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a single YAML document.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks dimensions, the default fill, every coordinate and every
// wall side.
func (s *Scenario) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %d×%d", ErrInvalid, s.Rows, s.Cols)
	}
	if _, err := s.fill(); err != nil {
		return err
	}

	in := func(what string, c Cell) error {
		if c[0] < 0 || c[0] >= s.Rows || c[1] < 0 || c[1] >= s.Cols {
			return fmt.Errorf("%w: %s %v outside %d×%d", ErrInvalid, what, c, s.Rows, s.Cols)
		}
		return nil
	}

	for _, c := range s.Closed {
		if err := in("closed cell", c); err != nil {
			return err
		}
	}
	for _, c := range s.Open {
		if err := in("open cell", c); err != nil {
			return err
		}
	}
	for _, w := range s.Walls {
		if err := in("wall", w.At); err != nil {
			return err
		}
		if _, err := grid.ParseDirection(w.Side); err != nil {
			return fmt.Errorf("%w: wall at %v: %v", ErrInvalid, w.At, err)
		}
	}
	for _, e := range s.Entanglements {
		if err := in("entanglement", e[0]); err != nil {
			return err
		}
		if err := in("entanglement", e[1]); err != nil {
			return err
		}
	}
	for _, a := range s.Agents {
		if err := in("agent "+a.Name+" position", a.Position); err != nil {
			return err
		}
		if err := in("agent "+a.Name+" destination", a.Destination); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scenario) fill() (grid.Node, error) {
	switch s.Default {
	case "", "open":
		return grid.Open(), nil
	case "closed":
		return grid.Closed(), nil
	default:
		return grid.Node{}, fmt.Errorf("%w: default %q (want open or closed)", ErrInvalid, s.Default)
	}
}

// Build creates the grid: default fill, then closed cells, open cells,
// walls and entanglements, in that order.
func (s *Scenario) Build() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	def, _ := s.fill()

	g := grid.New(s.Rows, s.Cols, def)
	for _, c := range s.Closed {
		g.Set(c.Coordinates(), grid.Closed())
	}
	for _, c := range s.Open {
		g.Set(c.Coordinates(), grid.Open())
	}
	for _, w := range s.Walls {
		d, _ := grid.ParseDirection(w.Side)
		g.SetWall(w.At.Coordinates(), d, w.Open)
	}
	for _, e := range s.Entanglements {
		g.Entangle(e[0].Coordinates(), e[1].Coordinates())
	}

	return g, nil
}

// NewAgents returns a fresh Agent for every entry, in document order.
func (s *Scenario) NewAgents() []*repath.Agent {
	out := make([]*repath.Agent, 0, len(s.Agents))
	for _, a := range s.Agents {
		out = append(out, repath.NewAgent(a.Name, a.Position.Coordinates(), a.Destination.Coordinates()))
	}
	return out
}

// Marshal renders s back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}
	return buf.Bytes(), nil
}
