package navigation

import (
	"github.com/lixenwraith/flowfield/parameter"
)

// FlowFieldCache owns the integration and flow fields and throttles their recomputation
// The cost field is borrowed; the placement side mutates it and calls MarkDirty
type FlowFieldCache struct {
	grid        *Grid
	cost        *CostField
	integration *IntegrationField
	flow        *FlowField

	// Goal in world units and the cell it resolved to at the last compute
	goalX, goalY float64
	goalIndex    int
	lastGoal     int

	// Recomputation throttling
	TicksSinceCompute      int // Ticks since last computation
	MinTicksBetweenCompute int // Minimum ticks between recomputes
	DirtyDistance          int // Goal must move this many cells (Manhattan) to trigger immediate recompute

	// PendingUpdate latches true on any state change, cleared after compute
	PendingUpdate bool

	valid    bool
	computes int
}

// NewFlowFieldCache creates a cache over grid and cost with the given throttling
func NewFlowFieldCache(grid *Grid, cost *CostField, minTicks, dirtyDist int) *FlowFieldCache {
	if dirtyDist < 1 {
		dirtyDist = 1
	}
	return &FlowFieldCache{
		grid:                   grid,
		cost:                   cost,
		integration:            NewIntegrationField(grid),
		flow:                   NewFlowField(grid),
		goalIndex:              -1,
		lastGoal:               -1,
		TicksSinceCompute:      minTicks, // Allow immediate first compute
		MinTicksBetweenCompute: minTicks,
		DirtyDistance:          dirtyDist,
		PendingUpdate:          true, // Force initial compute
	}
}

// NewDefaultFlowFieldCache creates a cache with throttling from parameter
func NewDefaultFlowFieldCache(grid *Grid, cost *CostField) *FlowFieldCache {
	return NewFlowFieldCache(grid, cost, parameter.NavFlowMinTicksBetweenCompute, parameter.NavFlowDirtyDistance)
}

// SetGoal moves the goal to world position (x, y)
// A move of at least DirtyDistance cells makes the next Update recompute regardless of throttling
func (c *FlowFieldCache) SetGoal(x, y float64) {
	c.goalX, c.goalY = x, y
	idx := c.grid.CellIndexOf(x, y)
	if idx == c.goalIndex {
		return
	}
	c.goalIndex = idx

	if c.lastGoal < 0 {
		c.PendingUpdate = true
		c.TicksSinceCompute = c.MinTicksBetweenCompute
		return
	}

	col, row := c.grid.ColRow(idx)
	lastCol, lastRow := c.grid.ColRow(c.lastGoal)
	dx := col - lastCol
	dy := row - lastRow
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	c.PendingUpdate = true
	if dx+dy >= c.DirtyDistance {
		c.TicksSinceCompute = c.MinTicksBetweenCompute
	}
}

// Goal returns the current goal in world units
func (c *FlowFieldCache) Goal() (x, y float64) {
	return c.goalX, c.goalY
}

// GoalIndex returns the current goal cell, -1 before SetGoal
func (c *FlowFieldCache) GoalIndex() int {
	return c.goalIndex
}

// MarkDirty forces recomputation on next eligible tick
func (c *FlowFieldCache) MarkDirty() {
	c.PendingUpdate = true
}

// Update advances one tick and recomputes if needed
// Returns true if the fields were rebuilt this tick
func (c *FlowFieldCache) Update() bool {
	c.TicksSinceCompute++

	if c.goalIndex < 0 {
		return false
	}

	if (c.PendingUpdate && c.TicksSinceCompute >= c.MinTicksBetweenCompute) || !c.valid {
		c.Recompute()
		return true
	}
	return false
}

// Recompute rebuilds both fields immediately, ignoring throttling
func (c *FlowFieldCache) Recompute() {
	if c.goalIndex < 0 {
		return
	}
	c.integration.CalculateIndex(c.goalIndex, c.cost)
	c.flow.Generate(c.integration)

	c.lastGoal = c.goalIndex
	c.TicksSinceCompute = 0
	c.PendingUpdate = false
	c.valid = true
	c.computes++
}

// DirectionAt returns cached flow direction for world position (x, y)
func (c *FlowFieldCache) DirectionAt(x, y float64) (dx, dy float64) {
	if !c.valid {
		return 0, 0
	}
	return c.flow.DirectionAt(x, y)
}

// DistanceAt returns cached distance to goal for world position (x, y), MaxCost if unknown
func (c *FlowFieldCache) DistanceAt(x, y float64) uint32 {
	if !c.valid {
		return parameter.MaxCost
	}
	return c.integration.ValueAt(c.grid.CellIndexOf(x, y))
}

// IsValid returns true if fields hold data from at least one compute
func (c *FlowFieldCache) IsValid() bool {
	return c.valid
}

// Computes returns the number of full recomputations performed
func (c *FlowFieldCache) Computes() int {
	return c.computes
}

// Grid returns the shared grid
func (c *FlowFieldCache) Grid() *Grid { return c.grid }

// Cost returns the borrowed cost field
func (c *FlowFieldCache) Cost() *CostField { return c.cost }

// Integration returns the owned integration field
func (c *FlowFieldCache) Integration() *IntegrationField { return c.integration }

// Flow returns the owned flow field
func (c *FlowFieldCache) Flow() *FlowField { return c.flow }
