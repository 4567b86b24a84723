package navigation

import (
	"github.com/lixenwraith/flowfield/parameter"
)

// heapEntry is one open-set record; dist is the distance at push time and may go stale
type heapEntry struct {
	idx  int
	dist uint32
}

func heapEntryLess(a, b heapEntry) bool {
	return a.dist < b.dist
}

// IntegrationField stores the minimum accumulated cost from each cell to a goal cell
type IntegrationField struct {
	grid      *Grid
	distances []uint32
	goal      int

	// Reusable buffers to avoid allocation across recomputes
	open      *BinaryHeap[heapEntry]
	neighbors []int
}

// NewIntegrationField creates a field sized to the grid with every cell unreached
func NewIntegrationField(grid *Grid) *IntegrationField {
	size := grid.CellCount()
	f := &IntegrationField{
		grid:      grid,
		distances: make([]uint32, size),
		goal:      -1,
		open:      NewBinaryHeap(heapEntryLess, size/4+1),
		neighbors: make([]int, 0, 4),
	}
	f.Reset()
	return f
}

// Grid returns the grid this field is indexed by
func (f *IntegrationField) Grid() *Grid {
	return f.grid
}

// Reset marks every cell unreached in place
func (f *IntegrationField) Reset() {
	for i := range f.distances {
		f.distances[i] = parameter.MaxCost
	}
}

// Goal returns the goal index of the last calculation, -1 before the first
func (f *IntegrationField) Goal() int {
	return f.goal
}

// Calculate runs Dijkstra from the cell containing (goalX, goalY) over cost
func (f *IntegrationField) Calculate(goalX, goalY float64, cost *CostField) {
	f.CalculateIndex(f.grid.CellIndexOf(goalX, goalY), cost)
}

// CalculateIndex runs Dijkstra from goal over cost, a full rebuild of the field
//
// Entering a cell is charged that cell's own cost; impassable cells are never entered.
// The heap has no decrease-key, so improved cells are pushed again and stale entries
// (recorded distance above the current one) are skipped on pop
func (f *IntegrationField) CalculateIndex(goal int, cost *CostField) {
	f.Reset()
	f.open.Clear()

	if !f.grid.InBounds(goal) {
		f.goal = -1
		return
	}
	f.goal = goal
	f.distances[goal] = 0
	f.open.Push(heapEntry{idx: goal, dist: 0})

	for {
		entry, ok := f.open.Pop()
		if !ok {
			break
		}

		if entry.dist > f.distances[entry.idx] {
			continue // Stale entry
		}

		f.neighbors = f.grid.NeighborsOf(entry.idx, f.neighbors[:0])
		for _, n := range f.neighbors {
			step := cost.Cost(n)
			if step == parameter.CostImpassable {
				continue
			}

			// 254 per step cannot reach MaxCost below 16M cells; the guard keeps larger grids finite
			candidate := f.distances[entry.idx] + uint32(step)
			if candidate < f.distances[entry.idx] || candidate == parameter.MaxCost {
				candidate = parameter.MaxCost - 1
			}

			if candidate < f.distances[n] {
				f.distances[n] = candidate
				f.open.Push(heapEntry{idx: n, dist: candidate})
			}
		}
	}
}

// ValueAt returns the distance of cell index, MaxCost when out of range or unreached
func (f *IntegrationField) ValueAt(index int) uint32 {
	if index < 0 || index >= len(f.distances) {
		return parameter.MaxCost
	}
	return f.distances[index]
}

// Reachable reports whether index has a finite distance to the goal
func (f *IntegrationField) Reachable(index int) bool {
	return f.ValueAt(index) != parameter.MaxCost
}

// MaxFinite returns the largest finite distance in the field, 0 if none
func (f *IntegrationField) MaxFinite() uint32 {
	var maxDist uint32
	for _, d := range f.distances {
		if d != parameter.MaxCost && d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}
