// Package scenario loads map layouts for the flow-field viewer from TOML
package scenario

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/flowfield/navigation"
	"github.com/lixenwraith/flowfield/parameter"
)

// Obstacle is a rectangle of cells with a shared traversal cost
// Cost 255 makes a wall, 1..254 a weighted patch; zero means wall
type Obstacle struct {
	Col  int   `toml:"col"`
	Row  int   `toml:"row"`
	W    int   `toml:"w"`
	H    int   `toml:"h"`
	Cost uint8 `toml:"cost"`
}

// Scenario describes the world, goal, spawn points and static terrain
type Scenario struct {
	Name      string       `toml:"name"`
	Width     float64      `toml:"width"`
	Height    float64      `toml:"height"`
	CellSize  int          `toml:"cell_size"`
	Goal      [2]float64   `toml:"goal"`
	Spawns    [][2]float64 `toml:"spawns"`
	Obstacles []Obstacle   `toml:"obstacle"`
}

// Default returns an empty map with the goal at the east edge and one spawn at the west edge
func Default(width, height float64, cellSize int) *Scenario {
	if cellSize <= 0 {
		cellSize = parameter.CellSize
	}
	half := float64(cellSize) / 2
	return &Scenario{
		Name:     "default",
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Goal:     [2]float64{width - half, height / 2},
		Spawns:   [][2]float64{{half, height / 2}},
	}
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario read: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates scenario TOML
// Unknown keys are rejected so typos do not silently drop terrain
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{CellSize: parameter.CellSize}
	meta, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, fmt.Errorf("scenario parse: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("scenario: unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks dimensions and obstacle shapes
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scenario: world size must be positive, got %gx%g", s.Width, s.Height)
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("scenario: cell_size must be positive, got %d", s.CellSize)
	}
	for i, o := range s.Obstacles {
		if o.W < 0 || o.H < 0 {
			return fmt.Errorf("scenario: obstacle %d: negative size %dx%d", i, o.W, o.H)
		}
	}
	return nil
}

// Grid builds the navigation grid for this scenario
func (s *Scenario) Grid() *navigation.Grid {
	return navigation.NewGrid(s.Width, s.Height, s.CellSize)
}

// Apply resets cost then stamps every obstacle; cells outside the grid are skipped
func (s *Scenario) Apply(cost *navigation.CostField) {
	cost.Reset()
	g := cost.Grid()
	for _, o := range s.Obstacles {
		c := o.Cost
		if c == 0 {
			c = parameter.CostImpassable
		}
		w, h := max(o.W, 1), max(o.H, 1)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				cost.SetCost(g.Index(o.Col+dx, o.Row+dy), c)
			}
		}
	}
}

// SpawnCells resolves spawn positions to cell indices on g
func (s *Scenario) SpawnCells(g *navigation.Grid) []int {
	cells := make([]int, len(s.Spawns))
	for i, sp := range s.Spawns {
		cells[i] = g.CellIndexOf(sp[0], sp[1])
	}
	return cells
}
