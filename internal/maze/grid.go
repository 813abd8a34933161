package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the occupancy state of one grid unit.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// MinDimension is the smallest accepted width or height. Anything smaller
// leaves too little room for a border ring plus interior corridors.
const MinDimension = 15

// MaxDimension is the largest accepted width or height.
const MaxDimension = 1001

// ErrInvalidDimensions is wrapped by every ConfigError.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// ConfigError reports grid dimensions the generator refuses to build.
type ConfigError struct {
	Width, Height int
	Reason        string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("maze %dx%d: %s", e.Width, e.Height, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidDimensions }

// Point is a cell coordinate: X is the column, Z the row.
type Point struct {
	X, Z int
}

// Grid is a Width x Height occupancy grid stored row-major, indexed [z][x].
// It is written once by Generate and read-only afterwards.
type Grid struct {
	Width, Height int
	Seed          uint64
	cells         []Cell
}

func newGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}
	for i := range g.cells {
		g.cells[i] = Wall
	}
	return g
}

func validateDims(width, height int) error {
	switch {
	case width < MinDimension || height < MinDimension:
		return &ConfigError{Width: width, Height: height, Reason: fmt.Sprintf("dimensions must be at least %d", MinDimension)}
	case width > MaxDimension || height > MaxDimension:
		return &ConfigError{Width: width, Height: height, Reason: fmt.Sprintf("dimensions must be at most %d", MaxDimension)}
	case width%2 == 0 || height%2 == 0:
		return &ConfigError{Width: width, Height: height, Reason: "dimensions must be odd"}
	}
	return nil
}

// InBounds reports whether (x, z) lies inside the grid.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < g.Width && z < g.Height
}

func (g *Grid) idx(x, z int) int { return z*g.Width + x }

func (g *Grid) set(x, z int, c Cell) { g.cells[g.idx(x, z)] = c }

// At returns the cell at (x, z). Out-of-grid coordinates read as Wall.
func (g *Grid) At(x, z int) Cell {
	if !g.InBounds(x, z) {
		return Wall
	}
	return g.cells[g.idx(x, z)]
}

// IsWall reports whether (x, z) is solid. Out-of-grid coordinates are solid.
func (g *Grid) IsWall(x, z int) bool {
	return g.At(x, z) == Wall
}

// IsOpen is the negation of IsWall.
func (g *Grid) IsOpen(x, z int) bool {
	return g.At(x, z) == Open
}

// Start is the seed and spawn cell.
func (g *Grid) Start() Point { return Point{X: 1, Z: 1} }

// Entrance is the border breach next to the start cell.
func (g *Grid) Entrance() Point { return Point{X: 0, Z: 1} }

// Exit is the border breach at the far corner; reaching it solves the maze.
func (g *Grid) Exit() Point { return Point{X: g.Width - 1, Z: g.Height - 2} }

// Rows returns a copy of the grid as a [z][x] matrix.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for z := range rows {
		rows[z] = make([]Cell, g.Width)
		copy(rows[z], g.cells[z*g.Width:(z+1)*g.Width])
	}
	return rows
}

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Lines renders each row as a string, '#' for walls and '.' for open cells.
func (g *Grid) Lines() []string {
	out := make([]string, g.Height)
	var sb strings.Builder
	for z := 0; z < g.Height; z++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			if g.IsWall(x, z) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[z] = sb.String()
	}
	return out
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
