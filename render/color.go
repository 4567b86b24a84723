package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette for the field view
var (
	RgbBackground  = RGB{26, 27, 38}
	RgbWall        = RGB{110, 110, 120}
	RgbGoal        = RGB{255, 255, 255}
	RgbUnreachable = RGB{60, 60, 60}
	RgbWeighted    = RGB{70, 50, 30}
	RgbAgent       = RGB{255, 190, 60}
	RgbSpawn       = RGB{120, 220, 120}
	RgbCursor      = RGB{200, 80, 200}
	RgbText        = RGB{200, 200, 210}
	RgbError       = RGB{230, 80, 80}
)

// ToTcell converts RGB to tcell.Color
func (c RGB) ToTcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Lerp blends a toward b by t in [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Style returns a tcell style with fg on the field background
func Style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.ToTcell()).Background(RgbBackground.ToTcell())
}
