package parameter

import "math"

// Navigation - Cost Field
const (
	// CostDefault is the traversal cost of open terrain after a reset
	CostDefault uint8 = 1

	// CostImpassable is the reserved wall sentinel, never summed into a distance
	CostImpassable uint8 = 255

	// MaxCost marks an unreached or unreachable cell in the integration field
	// Above any reachable sum: 254 per step stays below it for grids under 16M cells
	MaxCost uint32 = math.MaxUint32
)

// Navigation - Grid
const (
	// CellSize is the edge length of one grid cell in world units
	CellSize = 32

	// WorldWidth and WorldHeight are the default world dimensions in world units
	WorldWidth  = 640
	WorldHeight = 480
)

// Navigation - Flow Field
const (
	// NavFlowMinTicksBetweenCompute is minimum game ticks between flow field recomputation
	NavFlowMinTicksBetweenCompute = 3

	// NavFlowDirtyDistance triggers immediate recompute if goal moves this far (cells)
	NavFlowDirtyDistance = 1

	// NavFlowVectorEpsilon is the tolerance used when checking unit vectors
	NavFlowVectorEpsilon = 1e-5
)
