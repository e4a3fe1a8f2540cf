package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/letterbox/grid"
	"github.com/katalvlaran/letterbox/scenario"
)

const sample = `
rows: 6
cols: 8
default: open
closed: [[2,2],[3,2]]
open: [[3,2]]
walls:
  - {at: [0,0], side: right}
  - {at: [5,7], side: top}
entanglements: [[[0,0],[5,7]]]
agents:
  - {name: r1, position: [0,0], destination: [5,7]}
  - {name: r2, position: [1,1], destination: [5,7]}
`

func TestParse_Sample(t *testing.T) {
	s, err := scenario.Parse([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 6, s.Rows)
	require.Equal(t, 8, s.Cols)
	require.Len(t, s.Walls, 2)
	require.Equal(t, [2]scenario.Cell{{0, 0}, {5, 7}}, s.Entanglements[0])

	g, err := s.Build()
	require.NoError(t, err)
	require.Equal(t, 6, g.Rows())
	require.Equal(t, 8, g.Cols())
	require.True(t, g.Get(grid.C(2, 2)).IsClosed())
	require.True(t, g.Get(grid.C(3, 2)).IsOpen(), "open is applied after closed")

	// The wall is mirrored onto the neighbour.
	require.False(t, g.Get(grid.C(0, 0)).Right)
	require.False(t, g.Get(grid.C(0, 1)).Left)
	require.False(t, g.Get(grid.C(5, 7)).Top)
	require.False(t, g.Get(grid.C(4, 7)).Bottom)

	require.Equal(t, []grid.Entanglement{{A: grid.C(0, 0), B: grid.C(5, 7)}}, g.Entanglements())

	agents := s.NewAgents()
	require.Len(t, agents, 2)
	require.Equal(t, "r1", agents[0].Name)
	require.Equal(t, grid.C(1, 1), agents[1].Position)
	require.Equal(t, grid.C(5, 7), agents[1].Destination)
	require.True(t, agents[0].CheckPath)

	// Each call builds new agents; the specs are untouched.
	again := s.NewAgents()
	require.NotSame(t, agents[0], again[0])
	agents[0].Position = grid.C(4, 4)
	require.NotEqual(t, grid.C(4, 4), again[0].Position)
	require.Len(t, s.Agents, 2)
}

func TestParse_ClosedDefault(t *testing.T) {
	s, err := scenario.Parse([]byte("rows: 2\ncols: 2\ndefault: closed\nwalls: [{at: [0,0], side: r, open: true}]\n"))
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)
	require.True(t, g.Get(grid.C(0, 0)).Right)
	require.True(t, g.Get(grid.C(0, 1)).Left)
	require.True(t, g.Get(grid.C(1, 1)).IsClosed())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Empty", ""},
		{"NegativeRows", "rows: -1\ncols: 2\n"},
		{"BadDefault", "rows: 2\ncols: 2\ndefault: maybe\n"},
		{"ClosedOutside", "rows: 2\ncols: 2\nclosed: [[2,0]]\n"},
		{"OpenOutside", "rows: 2\ncols: 2\nopen: [[0,-1]]\n"},
		{"WallSide", "rows: 2\ncols: 2\nwalls: [{at: [0,0], side: diagonal}]\n"},
		{"WallOutside", "rows: 2\ncols: 2\nwalls: [{at: [5,0], side: left}]\n"},
		{"EntanglementOutside", "rows: 2\ncols: 2\nentanglements: [[[0,0],[2,2]]]\n"},
		{"AgentOutside", "rows: 2\ncols: 2\nagents: [{name: x, position: [0,0], destination: [0,9]}]\n"},
		{"UnknownKey", "rows: 2\ncols: 2\ncolour: red\n"},
		{"CellArity", "rows: 2\ncols: 2\nclosed: [[0,0,0]]\n"},
		{"NotYAML", "rows: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, scenario.ErrInvalid)
		})
	}
}

func TestBuild_RevalidatesEditedScenario(t *testing.T) {
	s, err := scenario.Parse([]byte("rows: 2\ncols: 2\n"))
	require.NoError(t, err)
	s.Closed = append(s.Closed, scenario.Cell{7, 7})
	_, err = s.Build()
	require.ErrorIs(t, err, scenario.ErrInvalid)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	require.Len(t, s.Agents, 2)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: 1\ncols: 1\nclosed: [[1,1]]\n"), 0o644))
	_, err = scenario.Load(bad)
	require.ErrorIs(t, err, scenario.ErrInvalid)
}

func TestMarshal_RoundTrip(t *testing.T) {
	s, err := scenario.Parse([]byte(sample))
	require.NoError(t, err)

	out, err := s.Marshal()
	require.NoError(t, err)

	back, err := scenario.Parse(out)
	require.NoError(t, err)
	require.Equal(t, s, back)
}
