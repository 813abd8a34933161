package mazeapi

import (
	"github.com/google/uuid"

	"mazerunner/internal/maze"
)

// MazeRequest selects a maze by preset or explicit size. Width and Height
// take precedence over Difficulty when both are given.
type MazeRequest struct {
	Difficulty string  `form:"difficulty"`
	Seed       *uint64 `form:"seed"`
	Width      int     `form:"width"`
	Height     int     `form:"height"`
}

// Cell is a grid coordinate on the wire.
type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

func cellOf(p maze.Point) Cell { return Cell{X: p.X, Z: p.Z} }

// MazeResponse describes a generated maze. Rows use '#' for walls and '.'
// for open cells, one string per row from z = 0.
type MazeResponse struct {
	ID         uuid.UUID `json:"id"`
	Difficulty string    `json:"difficulty,omitempty"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Seed       uint64    `json:"seed,string"`
	Rows       []string  `json:"rows"`
	Start      Cell      `json:"start"`
	Entrance   Cell      `json:"entrance"`
	Exit       Cell      `json:"exit"`
	OpenCells  int       `json:"open_cells"`
}

// SolutionResponse is the shortest cell path from start to exit.
type SolutionResponse struct {
	ID     uuid.UUID `json:"id"`
	Length int       `json:"length"`
	Path   []Cell    `json:"path"`
}

// ProbeRequest asks whether a circle at (X, Z) collides with the walls of a
// maze, and whether that point is on the goal cell. The maze is either a
// stored one (ID) or regenerated from Difficulty/Seed or Width/Height/Seed.
type ProbeRequest struct {
	ID         *uuid.UUID `json:"id"`
	Difficulty string     `json:"difficulty"`
	Seed       uint64     `json:"seed,string"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	CellSize   float64    `json:"cell_size"`
	Radius     float64    `json:"radius"`
	X          float64    `json:"x"`
	Z          float64    `json:"z"`
}

// ProbeResponse is the collision and goal test result.
type ProbeResponse struct {
	Blocked bool `json:"blocked"`
	Goal    bool `json:"goal"`
	Cell    Cell `json:"cell"`
}

// PresetResponse is one entry of the difficulty list.
type PresetResponse struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
