package navigation

import (
	"math"
)

// FlowField stores one steering vector per cell, interleaved x,y
// Each vector is unit length toward the cheapest neighbor, or zero for no movement
type FlowField struct {
	grid    *Grid
	vectors []float64

	neighbors []int
}

// NewFlowField creates a flow field sized to the grid, every vector zero
func NewFlowField(grid *Grid) *FlowField {
	return &FlowField{
		grid:      grid,
		vectors:   make([]float64, 2*grid.CellCount()),
		neighbors: make([]int, 0, 4),
	}
}

// Grid returns the grid this field is indexed by
func (f *FlowField) Grid() *Grid {
	return f.grid
}

// Generate derives directions from the integration field by steepest descent
//
// For each cell the neighbor with the lowest distance wins, first in N,S,E,W order on ties.
// A cell whose best neighbor is not strictly cheaper (goal, unreachable, local minimum) gets zero
func (f *FlowField) Generate(integration *IntegrationField) {
	count := f.grid.CellCount()

	for i := 0; i < count; i++ {
		current := integration.ValueAt(i)
		best := -1
		bestValue := current

		f.neighbors = f.grid.NeighborsOf(i, f.neighbors[:0])
		for _, n := range f.neighbors {
			if v := integration.ValueAt(n); v < bestValue {
				bestValue = v
				best = n
			}
		}

		if best < 0 {
			f.vectors[2*i] = 0
			f.vectors[2*i+1] = 0
			continue
		}

		cx, cy := f.grid.CellCenterOf(i)
		nx, ny := f.grid.CellCenterOf(best)
		dx, dy := nx-cx, ny-cy
		mag := math.Hypot(dx, dy)
		f.vectors[2*i] = dx / mag
		f.vectors[2*i+1] = dy / mag
	}
}

// VectorAt returns the stored vector of cell index, zero when out of range
func (f *FlowField) VectorAt(index int) (dx, dy float64) {
	if index < 0 || 2*index+1 >= len(f.vectors) {
		return 0, 0
	}
	return f.vectors[2*index], f.vectors[2*index+1]
}

// DirectionAt returns the steering vector for the cell containing world position (x, y)
func (f *FlowField) DirectionAt(x, y float64) (dx, dy float64) {
	return f.VectorAt(f.grid.CellIndexOf(x, y))
}

// Clear zeroes every vector in place
func (f *FlowField) Clear() {
	clear(f.vectors)
}
