package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flowfield/navigation"
	"github.com/lixenwraith/flowfield/parameter"
)

// Glyphs used by the field view
const (
	GlyphGoal        = '●'
	GlyphWall        = '█'
	GlyphUnreachable = '·'
	GlyphStill       = '○' // Reachable but no cheaper neighbor
	GlyphAgent       = '@'
	GlyphSpawn       = 'S'
)

// Gradient endpoints: near goal = bright cyan, far = dim blue
var (
	rgbNear = RGB{100, 255, 255}
	rgbFar  = RGB{40, 80, 120}
)

// ArrowFor maps a unit axis vector to an arrow, GlyphStill for zero
func ArrowFor(dx, dy float64) rune {
	switch {
	case dy < 0:
		return '↑'
	case dy > 0:
		return '↓'
	case dx > 0:
		return '→'
	case dx < 0:
		return '←'
	}
	return GlyphStill
}

// FieldRenderer draws a flow field cache as one terminal cell per grid cell
type FieldRenderer struct {
	OffsetX, OffsetY int
}

// NewFieldRenderer creates a renderer drawing at screen offset (x, y)
func NewFieldRenderer(x, y int) *FieldRenderer {
	return &FieldRenderer{OffsetX: x, OffsetY: y}
}

// Draw renders walls, goal, reachability and flow arrows; cells outside the screen are skipped
func (r *FieldRenderer) Draw(s tcell.Screen, cache *navigation.FlowFieldCache) {
	grid := cache.Grid()
	cost := cache.Cost()
	integ := cache.Integration()
	flow := cache.Flow()
	valid := cache.IsValid()
	goal := cache.GoalIndex()

	maxDist := integ.MaxFinite()
	if maxDist == 0 {
		maxDist = 1
	}

	sw, sh := s.Size()
	for row := 0; row < grid.Rows(); row++ {
		sy := r.OffsetY + row
		if sy < 0 || sy >= sh {
			continue
		}
		for col := 0; col < grid.Cols(); col++ {
			sx := r.OffsetX + col
			if sx < 0 || sx >= sw {
				continue
			}

			idx := row*grid.Cols() + col
			c := cost.Cost(idx)

			var glyph rune
			style := Style(RgbUnreachable)

			switch {
			case c == parameter.CostImpassable:
				glyph = GlyphWall
				style = Style(RgbWall)
			case idx == goal:
				glyph = GlyphGoal
				style = Style(RgbGoal)
			case !valid || !integ.Reachable(idx):
				glyph = GlyphUnreachable
			default:
				glyph = ArrowFor(flow.VectorAt(idx))
				t := float64(integ.ValueAt(idx)) / float64(maxDist)
				style = Style(Lerp(rgbNear, rgbFar, t))
			}

			if c != parameter.CostImpassable && c > parameter.CostDefault {
				style = style.Background(RgbWeighted.ToTcell())
			}

			s.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

// DrawCell draws glyph over grid cell (col, row), keeping the cell's background
func (r *FieldRenderer) DrawCell(s tcell.Screen, col, row int, glyph rune, fg RGB) {
	sx, sy := r.OffsetX+col, r.OffsetY+row
	_, _, style, _ := s.GetContent(sx, sy)
	s.SetContent(sx, sy, glyph, nil, style.Foreground(fg.ToTcell()))
}

// DrawCursor highlights grid cell (col, row) in reverse video
func (r *FieldRenderer) DrawCursor(s tcell.Screen, col, row int) {
	sx, sy := r.OffsetX+col, r.OffsetY+row
	mainc, _, _, _ := s.GetContent(sx, sy)
	s.SetContent(sx, sy, mainc, nil, Style(RgbCursor).Reverse(true))
}

// DrawText writes text starting at screen (x, y), clipped to the screen width
func DrawText(s tcell.Screen, x, y int, text string, fg RGB) {
	sw, _ := s.Size()
	style := Style(fg)
	for _, ch := range text {
		if x >= sw {
			return
		}
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
