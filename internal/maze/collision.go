package maze

import "math"

// CellOf maps a world-space position to the cell containing it.
func CellOf(cellSize, x, z float64) Point {
	return Point{X: int(math.Floor(x / cellSize)), Z: int(math.Floor(z / cellSize))}
}

// IsBlocked reports whether a circle of the given radius centred at (x, z)
// leaves the maze bounds or overlaps a wall cell. Only the 3x3 block of cells
// around the containing cell is examined, which is exact while
// radius < cellSize/2.
func (g *Grid) IsBlocked(cellSize, radius, x, z float64) bool {
	worldW := float64(g.Width) * cellSize
	worldH := float64(g.Height) * cellSize
	if x-radius < 0 || x+radius > worldW || z-radius < 0 || z+radius > worldH {
		return true
	}

	c := CellOf(cellSize, x, z)
	r2 := radius * radius
	for nz := c.Z - 1; nz <= c.Z+1; nz++ {
		for nx := c.X - 1; nx <= c.X+1; nx++ {
			if !g.InBounds(nx, nz) || g.At(nx, nz) != Wall {
				continue
			}
			minX := float64(nx) * cellSize
			minZ := float64(nz) * cellSize
			px := clampF(x, minX, minX+cellSize)
			pz := clampF(z, minZ, minZ+cellSize)
			dx := x - px
			dz := z - pz
			if dx*dx+dz*dz < r2 {
				return true
			}
		}
	}
	return false
}

// IsGoal reports whether (x, z) lies in the exit cell.
func (g *Grid) IsGoal(cellSize, x, z float64) bool {
	return CellOf(cellSize, x, z) == g.Exit()
}

// Spawn returns the world-space centre of the start cell.
func (g *Grid) Spawn(cellSize float64) (x, z float64) {
	s := g.Start()
	return (float64(s.X) + 0.5) * cellSize, (float64(s.Z) + 0.5) * cellSize
}

// SpawnYaw faces the player along +x, into the maze and away from the entrance.
const SpawnYaw = 0.0

// Field binds a grid to the player's collision circle.
type Field struct {
	Grid     *Grid
	CellSize float64
	Radius   float64
}

func NewField(g *Grid, cellSize, radius float64) *Field {
	return &Field{Grid: g, CellSize: cellSize, Radius: radius}
}

// Blocked reports whether the player circle at (x, z) collides.
func (f *Field) Blocked(x, z float64) bool {
	return f.Grid.IsBlocked(f.CellSize, f.Radius, x, z)
}

// Goal reports whether (x, z) is in the exit cell.
func (f *Field) Goal(x, z float64) bool {
	return f.Grid.IsGoal(f.CellSize, x, z)
}

// Slide moves from (x, z) by (dx, dz) one axis at a time, dropping the
// component that would collide. A blocked axis does not stop the other one,
// so the mover slides along walls.
func (f *Field) Slide(x, z, dx, dz float64) (nx, nz float64, hitX, hitZ bool) {
	nx, nz = x, z
	if dx != 0 {
		if f.Blocked(nx+dx, nz) {
			hitX = true
		} else {
			nx += dx
		}
	}
	if dz != 0 {
		if f.Blocked(nx, nz+dz) {
			hitZ = true
		} else {
			nz += dz
		}
	}
	return nx, nz, hitX, hitZ
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
