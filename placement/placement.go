// Package placement stamps tower footprints into a cost field and refuses placements
// that would cut every spawn off from the goal
package placement

import (
	"errors"

	"github.com/lixenwraith/flowfield/navigation"
	"github.com/lixenwraith/flowfield/parameter"
)

var (
	ErrOutOfBounds = errors.New("placement: footprint outside grid")
	ErrOccupied    = errors.New("placement: footprint overlaps a wall")
	ErrBlocksPath  = errors.New("placement: footprint blocks every path to the goal")
	ErrNotPlaced   = errors.New("placement: no placed tower under footprint")
	ErrWeight      = errors.New("placement: weight must be in 1..254")
)

// Footprint is a rectangular block of cells anchored at its top-left cell
type Footprint struct {
	W, H int
}

// Single is a one-cell footprint
var Single = Footprint{W: 1, H: 1}

// Placer mutates the cost field on behalf of the tower layer and signals the flow cache
type Placer struct {
	grid  *navigation.Grid
	cost  *navigation.CostField
	cache *navigation.FlowFieldCache

	// Towers this placer stamped and the cost beneath each
	owned []bool
	under []uint8

	// Scratch state for reachability probes, allocated once
	scratchCost  *navigation.CostField
	scratchField *navigation.IntegrationField
	cells        []int
	protected    []int
}

// NewPlacer creates a placer over cache's grid and cost field
func NewPlacer(cache *navigation.FlowFieldCache) *Placer {
	grid := cache.Grid()
	return &Placer{
		grid:         grid,
		cost:         cache.Cost(),
		cache:        cache,
		owned:        make([]bool, grid.CellCount()),
		under:        make([]uint8, grid.CellCount()),
		scratchCost:  navigation.NewCostField(grid),
		scratchField: navigation.NewIntegrationField(grid),
		cells:        make([]int, 0, 16),
		protected:    make([]int, 0, 4),
	}
}

// footprintCells collects the indices covered by fp at (col, row), false if any falls outside
func (p *Placer) footprintCells(col, row int, fp Footprint) bool {
	p.cells = p.cells[:0]
	if fp.W <= 0 || fp.H <= 0 {
		return false
	}
	for dy := 0; dy < fp.H; dy++ {
		for dx := 0; dx < fp.W; dx++ {
			idx := p.grid.Index(col+dx, row+dy)
			if idx < 0 {
				return false
			}
			p.cells = append(p.cells, idx)
		}
	}
	return true
}

// Check validates a placement without mutating anything
// spawns are cell indices that must keep their path to the current goal; the goal cell itself is never buildable
func (p *Placer) Check(col, row int, fp Footprint, spawns []int) error {
	if !p.footprintCells(col, row, fp) {
		return ErrOutOfBounds
	}

	goal := p.cache.GoalIndex()
	for _, idx := range p.cells {
		if p.cost.IsImpassable(idx) || idx == goal {
			return ErrOccupied
		}
	}

	if goal < 0 || len(spawns) == 0 {
		return nil
	}

	// Only spawns that currently reach the goal are protected; one already cut off cannot veto
	p.scratchField.CalculateIndex(goal, p.cost)
	p.protected = p.protected[:0]
	for _, s := range spawns {
		if p.scratchField.Reachable(s) {
			p.protected = append(p.protected, s)
		}
	}
	if len(p.protected) == 0 {
		return nil
	}

	// Probe on a scratch copy so the live fields stay untouched
	p.scratchCost.CopyFrom(p.cost)
	for _, idx := range p.cells {
		p.scratchCost.SetCost(idx, parameter.CostImpassable)
	}
	p.scratchField.CalculateIndex(goal, p.scratchCost)

	for _, s := range p.protected {
		if !p.scratchField.Reachable(s) {
			return ErrBlocksPath
		}
	}
	return nil
}

// CanPlace reports whether Check would succeed
func (p *Placer) CanPlace(col, row int, fp Footprint, spawns []int) bool {
	return p.Check(col, row, fp, spawns) == nil
}

// Place stamps fp as impassable and marks the flow cache dirty
func (p *Placer) Place(col, row int, fp Footprint, spawns []int) error {
	if err := p.Check(col, row, fp, spawns); err != nil {
		return err
	}
	for _, idx := range p.cells {
		p.owned[idx] = true
		p.under[idx] = p.cost.Cost(idx)
		p.cost.SetCost(idx, parameter.CostImpassable)
	}
	p.cache.MarkDirty()
	return nil
}

// Remove lifts towers this placer stamped under fp, restoring each cell's previous cost
// Walls it did not place are left alone
func (p *Placer) Remove(col, row int, fp Footprint) error {
	if !p.footprintCells(col, row, fp) {
		return ErrOutOfBounds
	}
	found := false
	for _, idx := range p.cells {
		if p.owned[idx] {
			found = true
			p.cost.SetCost(idx, p.under[idx])
			p.owned[idx] = false
		}
	}
	if !found {
		return ErrNotPlaced
	}
	p.cache.MarkDirty()
	return nil
}

// Placed reports whether (col, row) holds a tower stamped by this placer
func (p *Placer) Placed(col, row int) bool {
	idx := p.grid.Index(col, row)
	return idx >= 0 && p.owned[idx]
}

// Reset forgets every placed tower; call after the cost field is rebuilt from scratch
func (p *Placer) Reset() {
	clear(p.owned)
}

// SetWeight changes the traversal weight of a single open cell, e.g. slowing terrain
// Weights at or above the impassable sentinel must go through Place
func (p *Placer) SetWeight(col, row int, weight uint8) error {
	idx := p.grid.Index(col, row)
	if idx < 0 {
		return ErrOutOfBounds
	}
	if weight == 0 || weight >= parameter.CostImpassable {
		return ErrWeight
	}
	if p.cost.IsImpassable(idx) {
		return ErrOccupied
	}
	p.cost.SetCost(idx, weight)
	p.cache.MarkDirty()
	return nil
}
