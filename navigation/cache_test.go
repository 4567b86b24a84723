package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flowfield/parameter"
)

func TestFlowFieldCache_NoGoalNoCompute(t *testing.T) {
	g, cost := newOpen3x3()
	c := NewFlowFieldCache(g, cost, 3, 1)

	assert.False(t, c.Update())
	assert.False(t, c.IsValid())
	assert.Equal(t, -1, c.GoalIndex())

	dx, dy := c.DirectionAt(10, 10)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.Equal(t, parameter.MaxCost, c.DistanceAt(10, 10))
}

func TestFlowFieldCache_FirstUpdateComputes(t *testing.T) {
	g, cost := newOpen3x3()
	c := NewFlowFieldCache(g, cost, 3, 1)
	c.SetGoal(48, 48)

	require.True(t, c.Update())
	assert.True(t, c.IsValid())
	assert.Equal(t, 1, c.Computes())
	assert.Equal(t, uint32(2), c.DistanceAt(0, 0))

	dx, dy := c.DirectionAt(48, 10)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 1.0, dy)

	// Nothing changed: no further computes
	for i := 0; i < 10; i++ {
		assert.False(t, c.Update())
	}
	assert.Equal(t, 1, c.Computes())
}

func TestFlowFieldCache_MarkDirtyIsThrottled(t *testing.T) {
	g, cost := newOpen3x3()
	c := NewFlowFieldCache(g, cost, 3, 1)
	c.SetGoal(48, 48)
	require.True(t, c.Update())

	cost.SetCost(3, parameter.CostImpassable)
	c.MarkDirty()

	assert.False(t, c.Update(), "tick 1 is inside the throttle window")
	assert.False(t, c.Update(), "tick 2 is inside the throttle window")
	assert.True(t, c.Update(), "tick 3 reaches the minimum interval")
	assert.Equal(t, 2, c.Computes())
	assert.Equal(t, parameter.MaxCost, c.Integration().ValueAt(3))
}

func TestFlowFieldCache_GoalMoveBypassesThrottle(t *testing.T) {
	g, cost := newOpen3x3()
	c := NewFlowFieldCache(g, cost, 5, 1)
	c.SetGoal(48, 48)
	require.True(t, c.Update())

	c.SetGoal(80, 80)
	assert.True(t, c.Update())
	assert.Equal(t, 8, c.Integration().Goal())

	x, y := c.Goal()
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 80.0, y)
}

func TestFlowFieldCache_SmallGoalMoveWaitsForThrottle(t *testing.T) {
	g := NewGrid(320, 320, 32)
	cost := NewCostField(g)
	c := NewFlowFieldCache(g, cost, 2, 3)
	c.SetGoal(16, 16)
	require.True(t, c.Update())

	// One cell east is below the dirty distance
	c.SetGoal(48, 16)
	assert.False(t, c.Update())
	assert.True(t, c.Update())
	assert.Equal(t, g.Index(1, 0), c.Integration().Goal())

	// Same cell: no pending work
	c.SetGoal(50, 20)
	assert.False(t, c.PendingUpdate)
}

func TestFlowFieldCache_RecomputeIgnoresThrottle(t *testing.T) {
	g, cost := newOpen3x3()
	c := NewDefaultFlowFieldCache(g, cost)
	c.SetGoal(48, 48)
	c.Recompute()

	assert.True(t, c.IsValid())
	assert.Equal(t, 1, c.Computes())
	assert.False(t, c.PendingUpdate)
	assert.Same(t, cost, c.Cost())
	assert.Same(t, g, c.Grid())
	assert.Same(t, g, c.Flow().Grid())
}
