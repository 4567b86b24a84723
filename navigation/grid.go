package navigation

import (
	"math"
)

// Neighbor offsets in enumeration order: N, S, E, W
// The order is the tie-break for equal-cost neighbors in the flow field
var neighborOffsets = [4][2]int{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
}

// Grid discretizes a rectangular world into square cells indexed row-major
// Dimensions are fixed at construction; all methods are pure
type Grid struct {
	cols, rows int
	cellSize   int
	invCell    float64
}

// NewGrid creates a grid covering worldWidth × worldHeight with cells of cellSize units
// cols = ceil(width/cellSize), rows = ceil(height/cellSize), each at least 1
// A non-positive cellSize is treated as 1
func NewGrid(worldWidth, worldHeight float64, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(worldWidth / float64(cellSize)))
	rows := int(math.Ceil(worldHeight / float64(cellSize)))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		invCell:  1.0 / float64(cellSize),
	}
}

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// CellCount returns cols*rows
func (g *Grid) CellCount() int { return g.cols * g.rows }

// CellSize returns the cell edge length in world units
func (g *Grid) CellSize() int { return g.cellSize }

// InBounds reports whether index addresses a cell of this grid
func (g *Grid) InBounds(index int) bool {
	return index >= 0 && index < g.cols*g.rows
}

// Index returns the row-major index of (col, row), -1 if outside the grid
func (g *Grid) Index(col, row int) int {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return -1
	}
	return row*g.cols + col
}

// ColRow splits a row-major index into column and row
func (g *Grid) ColRow(index int) (col, row int) {
	return index % g.cols, index / g.cols
}

// CellIndexOf maps world coordinates to a cell index
// Coordinates outside the world (NaN and infinities included) clamp to the nearest edge cell
func (g *Grid) CellIndexOf(x, y float64) int {
	col := clampAxis(math.Floor(x*g.invCell), g.cols)
	row := clampAxis(math.Floor(y*g.invCell), g.rows)
	return row*g.cols + col
}

// clampAxis clamps v into [0, n-1] before the int conversion so huge or NaN values stay defined
func clampAxis(v float64, n int) int {
	if !(v >= 0) {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// CellCenterOf returns the world position of the center of the cell at index
// Out-of-range indices are clamped into the grid
func (g *Grid) CellCenterOf(index int) (x, y float64) {
	if index < 0 {
		index = 0
	} else if n := g.cols * g.rows; index >= n {
		index = n - 1
	}
	col, row := g.ColRow(index)
	half := float64(g.cellSize) / 2
	return float64(col*g.cellSize) + half, float64(row*g.cellSize) + half
}

// NeighborsOf appends the in-bounds axis-aligned neighbors of index to buf and returns it
// Order is N, S, E, W; no diagonals, no wraparound. Passing buf[:0] avoids allocation
func (g *Grid) NeighborsOf(index int, buf []int) []int {
	if !g.InBounds(index) {
		return buf
	}
	col, row := g.ColRow(index)
	for _, off := range neighborOffsets {
		nc := col + off[0]
		nr := row + off[1]
		if nc < 0 || nr < 0 || nc >= g.cols || nr >= g.rows {
			continue
		}
		buf = append(buf, nr*g.cols+nc)
	}
	return buf
}
