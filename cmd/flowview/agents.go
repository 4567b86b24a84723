package main

import (
	"github.com/lixenwraith/flowfield/navigation"
	"github.com/lixenwraith/flowfield/parameter"
)

// Agent is a creep walking the shared flow field
type Agent struct {
	X, Y float64
}

// Swarm moves every agent along the cached flow field each tick
type Swarm struct {
	Agents []Agent
	speed  float64
	limit  int
}

// NewSwarm creates an empty swarm moving at speed world units per second
func NewSwarm(speed float64, limit int) *Swarm {
	return &Swarm{
		Agents: make([]Agent, 0, 64),
		speed:  speed,
		limit:  limit,
	}
}

// Spawn adds an agent at (x, y), false when the swarm is full
func (s *Swarm) Spawn(x, y float64) bool {
	if len(s.Agents) >= s.limit {
		return false
	}
	s.Agents = append(s.Agents, Agent{X: x, Y: y})
	return true
}

// Step advances agents by dt seconds and removes those that reached the goal cell
// Returns the number of agents that leaked through to the goal
func (s *Swarm) Step(dt float64, cache *navigation.FlowFieldCache) int {
	if !cache.IsValid() {
		return 0
	}
	grid := cache.Grid()
	goal := cache.GoalIndex()
	dist := s.speed * dt

	leaked := 0
	kept := s.Agents[:0]
	for _, a := range s.Agents {
		if grid.CellIndexOf(a.X, a.Y) == goal {
			leaked++
			continue
		}

		dx, dy := cache.DirectionAt(a.X, a.Y)
		nx, ny := a.X+dx*dist, a.Y+dy*dist

		// A wall placed ahead of the agent mid-step: hold position until the field routes around it
		if !cache.Cost().IsImpassable(grid.CellIndexOf(nx, ny)) {
			a.X, a.Y = nx, ny
		}

		if grid.CellIndexOf(a.X, a.Y) == goal {
			leaked++
			continue
		}
		kept = append(kept, a)
	}
	s.Agents = kept
	return leaked
}

// Clear removes all agents
func (s *Swarm) Clear() {
	s.Agents = s.Agents[:0]
}

// Len returns the live agent count
func (s *Swarm) Len() int {
	return len(s.Agents)
}

// defaultSwarm uses the viewer tunables
func defaultSwarm() *Swarm {
	return NewSwarm(parameter.AgentSpeed, parameter.MaxAgents)
}
