package parameter

import "time"

// Viewer - Simulation
const (
	// TickInterval is the simulation step of the viewer loop
	TickInterval = 50 * time.Millisecond

	// AgentSpeed is agent movement in world units per second
	AgentSpeed = 96.0

	// MaxAgents caps live agents; spawns beyond the cap are dropped
	MaxAgents = 512

	// MudWeight is the traversal cost painted by the mud key
	MudWeight uint8 = 8
)

// Viewer - Layout
const (
	// FieldOffsetX and FieldOffsetY place the grid on screen, leaving room for the status line
	FieldOffsetX = 1
	FieldOffsetY = 2
)
