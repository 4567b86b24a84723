package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flowfield/audio"
	"github.com/lixenwraith/flowfield/navigation"
	"github.com/lixenwraith/flowfield/parameter"
	"github.com/lixenwraith/flowfield/placement"
	"github.com/lixenwraith/flowfield/render"
	"github.com/lixenwraith/flowfield/scenario"
)

const helpLine = "arrows move  space tower  m mud  g goal  s spawn  r reset  x mute  q quit"

// App is the interactive viewer: one scenario, its fields, a cursor and a swarm
type App struct {
	screen   tcell.Screen
	scn      *scenario.Scenario
	grid     *navigation.Grid
	cost     *navigation.CostField
	cache    *navigation.FlowFieldCache
	placer   *placement.Placer
	renderer *render.FieldRenderer
	sound    *audio.SoundManager
	swarm    *Swarm

	spawns    []int
	cursorCol int
	cursorRow int
	status    string
	statusErr bool
	leaks     int
	quit      bool
}

// NewApp builds fields for scn and computes the initial flow field
// sound may be nil for a silent run
func NewApp(screen tcell.Screen, scn *scenario.Scenario, sound *audio.SoundManager) *App {
	grid := scn.Grid()
	cost := navigation.NewCostField(grid)
	scn.Apply(cost)

	cache := navigation.NewDefaultFlowFieldCache(grid, cost)
	cache.SetGoal(scn.Goal[0], scn.Goal[1])
	cache.Recompute()

	if sound == nil {
		sound = audio.NewSoundManager()
	}

	a := &App{
		screen:   screen,
		scn:      scn,
		grid:     grid,
		cost:     cost,
		cache:    cache,
		placer:   placement.NewPlacer(cache),
		renderer: render.NewFieldRenderer(parameter.FieldOffsetX, parameter.FieldOffsetY),
		sound:    sound,
		swarm:    defaultSwarm(),
		spawns:   scn.SpawnCells(grid),
		status:   helpLine,
	}
	a.cursorCol, a.cursorRow = grid.ColRow(cache.GoalIndex())
	log.Printf("scenario %q: %dx%d cells, %d spawns", scn.Name, grid.Cols(), grid.Rows(), len(a.spawns))
	return a
}

// Run drives the viewer until quit; tcell events are forwarded by a poller goroutine
// so fields are only touched from this loop
func (a *App) Run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen, events, done)

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	a.Draw()
	for !a.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.HandleEvent(ev)
		case <-ticker.C:
			a.Tick(parameter.TickInterval.Seconds())
		}
		a.Draw()
	}
}

// pollEvents forwards screen events until the screen finalizes or done closes
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one tcell event
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyUp:
		a.moveCursor(0, -1)
		return
	case tcell.KeyDown:
		a.moveCursor(0, 1)
		return
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
		return
	case tcell.KeyRight:
		a.moveCursor(1, 0)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		a.quit = true
	case ' ':
		a.toggleTower()
	case 'm':
		a.paintMud()
	case 'g':
		a.moveGoal()
	case 's':
		a.spawnWave()
	case 'r':
		a.reset()
	case 'x':
		a.sound.SetMuted(!a.sound.Muted())
		if a.sound.Muted() {
			a.setStatus("sound off")
		} else {
			a.setStatus("sound on")
		}
	}
}

func (a *App) moveCursor(dx, dy int) {
	a.cursorCol = min(max(a.cursorCol+dx, 0), a.grid.Cols()-1)
	a.cursorRow = min(max(a.cursorRow+dy, 0), a.grid.Rows()-1)
}

func (a *App) cursorIndex() int {
	return a.grid.Index(a.cursorCol, a.cursorRow)
}

func (a *App) toggleTower() {
	if a.placer.Placed(a.cursorCol, a.cursorRow) {
		if err := a.placer.Remove(a.cursorCol, a.cursorRow, placement.Single); err != nil {
			a.fail(err)
			return
		}
		a.sound.PlayRemove()
		a.setStatus(fmt.Sprintf("tower removed at %d,%d", a.cursorCol, a.cursorRow))
		return
	}

	if err := a.placer.Place(a.cursorCol, a.cursorRow, placement.Single, a.spawns); err != nil {
		a.fail(err)
		return
	}
	a.sound.PlayPlace()
	a.setStatus(fmt.Sprintf("tower placed at %d,%d", a.cursorCol, a.cursorRow))
}

func (a *App) paintMud() {
	if err := a.placer.SetWeight(a.cursorCol, a.cursorRow, parameter.MudWeight); err != nil {
		a.fail(err)
		return
	}
	a.setStatus(fmt.Sprintf("mud at %d,%d", a.cursorCol, a.cursorRow))
}

func (a *App) moveGoal() {
	idx := a.cursorIndex()
	if a.cost.IsImpassable(idx) {
		a.fail(placement.ErrOccupied)
		return
	}
	x, y := a.grid.CellCenterOf(idx)
	a.cache.SetGoal(x, y)
	a.setStatus(fmt.Sprintf("goal moved to %d,%d", a.cursorCol, a.cursorRow))
}

func (a *App) spawnWave() {
	spawned := 0
	for _, idx := range a.spawns {
		x, y := a.grid.CellCenterOf(idx)
		if a.swarm.Spawn(x, y) {
			spawned++
		}
	}
	a.setStatus(fmt.Sprintf("spawned %d agents", spawned))
}

func (a *App) reset() {
	a.scn.Apply(a.cost)
	a.placer.Reset()
	a.cache.SetGoal(a.scn.Goal[0], a.scn.Goal[1])
	a.cache.MarkDirty()
	a.swarm.Clear()
	a.leaks = 0
	a.setStatus("map reset")
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) fail(err error) {
	a.sound.PlayError()
	a.status = err.Error()
	a.statusErr = true
	if errors.Is(err, placement.ErrBlocksPath) {
		log.Printf("placement rejected at %d,%d: %v", a.cursorCol, a.cursorRow, err)
	}
}

// Tick advances the simulation by dt seconds
func (a *App) Tick(dt float64) {
	if a.cache.Update() {
		log.Printf("flow field recomputed (%d total)", a.cache.Computes())
	}

	if leaked := a.swarm.Step(dt, a.cache); leaked > 0 {
		a.leaks += leaked
		a.sound.PlayLeak()
	}
}

// Draw renders the whole frame
func (a *App) Draw() {
	a.screen.Clear()

	header := fmt.Sprintf("%s  agents %d  leaks %d  computes %d",
		a.scn.Name, a.swarm.Len(), a.leaks, a.cache.Computes())
	render.DrawText(a.screen, 0, 0, header, render.RgbText)

	statusColor := render.RgbText
	if a.statusErr {
		statusColor = render.RgbError
	}
	render.DrawText(a.screen, 0, 1, a.status, statusColor)

	a.renderer.Draw(a.screen, a.cache)

	for _, idx := range a.spawns {
		col, row := a.grid.ColRow(idx)
		a.renderer.DrawCell(a.screen, col, row, render.GlyphSpawn, render.RgbSpawn)
	}
	for _, ag := range a.swarm.Agents {
		col, row := a.grid.ColRow(a.grid.CellIndexOf(ag.X, ag.Y))
		a.renderer.DrawCell(a.screen, col, row, render.GlyphAgent, render.RgbAgent)
	}
	a.renderer.DrawCursor(a.screen, a.cursorCol, a.cursorRow)

	a.screen.Show()
}
