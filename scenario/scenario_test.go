package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flowfield/navigation"
	"github.com/lixenwraith/flowfield/parameter"
)

func TestLoad_Chicane(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "chicane.toml"))
	require.NoError(t, err)

	assert.Equal(t, "chicane", s.Name)
	assert.Equal(t, 640.0, s.Width)
	assert.Equal(t, 320.0, s.Height)
	assert.Equal(t, 32, s.CellSize)
	assert.Equal(t, [2]float64{624, 160}, s.Goal)
	require.Len(t, s.Spawns, 2)
	require.Len(t, s.Obstacles, 3)
	assert.Equal(t, uint8(0), s.Obstacles[1].Cost, "omitted cost decodes as zero")

	g := s.Grid()
	assert.Equal(t, 20, g.Cols())
	assert.Equal(t, 10, g.Rows())

	cost := navigation.NewCostField(g)
	s.Apply(cost)
	assert.True(t, cost.IsImpassable(g.Index(6, 0)))
	assert.True(t, cost.IsImpassable(g.Index(6, 7)))
	assert.False(t, cost.IsImpassable(g.Index(6, 8)))
	assert.True(t, cost.IsImpassable(g.Index(13, 9)), "zero cost stamps a wall")
	assert.Equal(t, uint8(6), cost.Cost(g.Index(17, 6)))
	assert.Equal(t, parameter.CostDefault, cost.Cost(g.Index(0, 0)))

	// Both spawns reach the goal around the chicane
	integ := navigation.NewIntegrationField(g)
	integ.Calculate(s.Goal[0], s.Goal[1], cost)
	for _, cell := range s.SpawnCells(g) {
		assert.True(t, integ.Reachable(cell))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "width = "},
		{"zero size", "width = 0\nheight = 10"},
		{"negative cell", "width = 10\nheight = 10\ncell_size = -4"},
		{"unknown key", "width = 10\nheight = 10\nheigth = 3"},
		{"negative obstacle", "width = 10\nheight = 10\n[[obstacle]]\nw = -1"},
		{"cost out of range", "width = 10\nheight = 10\n[[obstacle]]\ncost = 300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_DefaultsCellSize(t *testing.T) {
	s, err := Parse([]byte("width = 64\nheight = 64"))
	require.NoError(t, err)
	assert.Equal(t, parameter.CellSize, s.CellSize)
	assert.Empty(t, s.Obstacles)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	s := Default(320, 160, 0)
	require.NoError(t, s.Validate())
	assert.Equal(t, parameter.CellSize, s.CellSize)

	g := s.Grid()
	goal := g.CellIndexOf(s.Goal[0], s.Goal[1])
	col, row := g.ColRow(goal)
	assert.Equal(t, g.Cols()-1, col)
	assert.Equal(t, g.Rows()/2, row)

	spawns := s.SpawnCells(g)
	require.Len(t, spawns, 1)
	col, _ = g.ColRow(spawns[0])
	assert.Equal(t, 0, col)
}

func TestApply_ResetsPreviousTerrain(t *testing.T) {
	s := Default(96, 96, 32)
	g := s.Grid()
	cost := navigation.NewCostField(g)
	cost.SetCost(4, 77)

	s.Obstacles = []Obstacle{{Col: 2, Row: 2, W: 5, H: 5, Cost: 9}}
	s.Apply(cost)

	assert.Equal(t, parameter.CostDefault, cost.Cost(4))
	assert.Equal(t, uint8(9), cost.Cost(8), "clipped to the grid")
}

func TestLoad_BundledScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "scenarios", "*.toml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			require.NoError(t, err)

			g := s.Grid()
			cost := navigation.NewCostField(g)
			s.Apply(cost)

			integ := navigation.NewIntegrationField(g)
			integ.Calculate(s.Goal[0], s.Goal[1], cost)
			for _, cell := range s.SpawnCells(g) {
				assert.True(t, integ.Reachable(cell), "spawn %d cut off", cell)
			}
		})
	}
}
