package navigation

import (
	"github.com/lixenwraith/flowfield/parameter"
)

// CostField holds the traversal cost of entering each grid cell
// 1..254 is a finite weight, 255 is the impassable sentinel
type CostField struct {
	grid  *Grid
	costs []uint8
}

// NewCostField creates a cost field sized to the grid, every cell at the default cost
func NewCostField(grid *Grid) *CostField {
	c := &CostField{
		grid:  grid,
		costs: make([]uint8, grid.CellCount()),
	}
	c.Reset()
	return c
}

// Grid returns the grid this field is indexed by
func (c *CostField) Grid() *Grid {
	return c.grid
}

// Len returns the number of cells
func (c *CostField) Len() int {
	return len(c.costs)
}

// Reset fills every cell with the default cost in place
func (c *CostField) Reset() {
	c.Fill(parameter.CostDefault)
}

// Fill sets every cell to cost
func (c *CostField) Fill(cost uint8) {
	for i := range c.costs {
		c.costs[i] = cost
	}
}

// SetCost writes the cost of cell index, silently ignoring out-of-range indices
func (c *CostField) SetCost(index int, cost uint8) {
	if index < 0 || index >= len(c.costs) {
		return
	}
	c.costs[index] = cost
}

// Cost returns the cost of cell index; off the map reads as a wall
func (c *CostField) Cost(index int) uint8 {
	if index < 0 || index >= len(c.costs) {
		return parameter.CostImpassable
	}
	return c.costs[index]
}

// IsImpassable reports whether entering index is forbidden
func (c *CostField) IsImpassable(index int) bool {
	return c.Cost(index) == parameter.CostImpassable
}

// CopyFrom overwrites this field with src; fields of different size are left untouched
func (c *CostField) CopyFrom(src *CostField) {
	if len(src.costs) != len(c.costs) {
		return
	}
	copy(c.costs, src.costs)
}
