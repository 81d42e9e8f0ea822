package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Cell states. Cells are addressed row-major: cells[y][x], y is the row and x the column.
const (
	Wall  = true
	Floor = false
)

// MinSize is the smallest width or height that still leaves an interior cell
const MinSize = 3

// ErrInvalidDimension is returned when a grid is too small to have an interior,
// or when two grids do not share the stated dimensions
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid represents a cave map with a fixed wall border
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a grid of the given dimensions with every cell set to Wall
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Reset(width, height)
	return g
}

// ValidateDimensions reports whether a width and height leave a non-empty interior
func ValidateDimensions(width, height int) error {
	if width < MinSize || height < MinSize {
		return errors.Wrapf(ErrInvalidDimension, "[ValidateDimensions] %dx%d, need at least %dx%d", width, height, MinSize, MinSize)
	}
	return nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid and fills every cell with Wall
func (g *Grid) Reset(width, height int) {
	width, height = max(width, 0), max(height, 0)
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		}
	}
	g.Clear()
}

// Clear sets every cell back to Wall
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Wall
		}
	}
}

// Set sets a cell; out of range coordinates are ignored
func (g *Grid) Set(x, y int, wall bool) {
	if g.inBounds(x, y) {
		g.cells[y][x] = wall
	}
}

// Get returns the state of a cell. Out of range coordinates read as Floor.
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return Floor
	}
	return g.cells[y][x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsBorder reports whether (x, y) lies on the outermost ring
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// CountWallsR1 counts walls in the 3x3 window centred on (x, y), the cell itself included.
// Only valid for interior cells, whose window is always in bounds.
func (g *Grid) CountWallsR1(x, y int) (count int) {
	for ny := y - 1; ny <= y+1; ny++ {
		row := g.cells[ny]
		for nx := x - 1; nx <= x+1; nx++ {
			if row[nx] {
				count++
			}
		}
	}
	return
}

// CountWallsR2 counts walls in the 5x5 window centred on (x, y) without its four corners.
// Cells outside the grid do not contribute.
func (g *Grid) CountWallsR2(x, y int) (count int) {
	minY := max(0, y-2)
	maxY := min(g.height-1, y+2)
	minX := max(0, x-2)
	maxX := min(g.width-1, x+2)

	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny]
		for nx := minX; nx <= maxX; nx++ {
			if abs(ny-y) == 2 && abs(nx-x) == 2 {
				continue
			}
			if row[nx] {
				count++
			}
		}
	}
	return
}

// CountWalls returns the total number of wall cells
func (g *Grid) CountWalls() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// CountFloors returns the total number of floor cells
func (g *Grid) CountFloors() int {
	return g.width*g.height - g.CountWalls()
}

// Rows returns a copy of the cells, one slice per row
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range rows {
		rows[y] = append([]bool(nil), g.cells[y]...)
	}
	return rows
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}

// Equal reports whether two grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// copyBorder copies the border ring of src into g. Both grids must share dimensions.
func (g *Grid) copyBorder(src *Grid) {
	for x := range g.width {
		g.cells[0][x] = src.cells[0][x]
		g.cells[g.height-1][x] = src.cells[g.height-1][x]
	}
	for y := range g.height {
		g.cells[y][0] = src.cells[y][0]
		g.cells[y][g.width-1] = src.cells[y][g.width-1]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
