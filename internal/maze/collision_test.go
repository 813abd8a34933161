package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridorGrid is a hand-built 15x15 grid: walls everywhere except a straight
// east-west corridor on row 7 and a north-south corridor on column 7.
func corridorGrid() *Grid {
	g := newGrid(15, 15)
	for x := 1; x < 14; x++ {
		g.set(x, 7, Open)
	}
	for z := 1; z < 14; z++ {
		g.set(7, z, Open)
	}
	return g
}

func TestIsBlockedWallCentres(t *testing.T) {
	g, err := Generate(21, 21, 11)
	require.NoError(t, err)

	for _, cs := range []float64{1, 2, 0.5} {
		for _, r := range []float64{0.01, 0.2, 0.49} {
			radius := r * cs
			for z := 0; z < g.Height; z++ {
				for x := 0; x < g.Width; x++ {
					if !g.IsWall(x, z) {
						continue
					}
					cx := (float64(x) + 0.5) * cs
					cz := (float64(z) + 0.5) * cs
					assert.True(t, g.IsBlocked(cs, radius, cx, cz), "wall centre (%d,%d) cs=%v r=%v", x, z, cs, radius)
				}
			}
		}
	}
}

func TestIsBlockedOpenCentres(t *testing.T) {
	g, err := Generate(21, 21, 12)
	require.NoError(t, err)

	// Orthogonal walls sit exactly cs/2 from an open cell centre and diagonal
	// ones further, so a radius up to cs/2 never touches them.
	for _, cs := range []float64{1, 2} {
		for _, radius := range []float64{0.1 * cs, 0.25 * cs, 0.5 * cs} {
			for z := 0; z < g.Height; z++ {
				for x := 0; x < g.Width; x++ {
					if !g.IsOpen(x, z) {
						continue
					}
					cx := (float64(x) + 0.5) * cs
					cz := (float64(z) + 0.5) * cs
					assert.False(t, g.IsBlocked(cs, radius, cx, cz), "open centre (%d,%d) cs=%v r=%v", x, z, cs, radius)
				}
			}
		}
	}
}

func TestIsBlockedOutOfBounds(t *testing.T) {
	g, err := Generate(15, 15, 1)
	require.NoError(t, err)

	const cs = 1.0
	w := float64(g.Width) * cs
	h := float64(g.Height) * cs

	tests := []struct {
		name string
		x, z float64
	}{
		{"west", -0.01, 1.5},
		{"far west", -100, 1.5},
		{"east", w + 0.01, 13.5},
		{"north", 1.5, -0.5},
		{"south", 13.5, h + 3},
		{"corner", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range []float64{0, 0.1, 0.3} {
				assert.True(t, g.IsBlocked(cs, r, tt.x, tt.z))
			}
		})
	}

	// The entrance and exit breaches are open, but the circle still may not
	// poke through the outer boundary.
	assert.True(t, g.IsBlocked(cs, 0.3, 0.2, 1.5))
	assert.False(t, g.IsBlocked(cs, 0.3, 0.5, 1.5))
	assert.True(t, g.IsBlocked(cs, 0.3, w-0.2, 13.5))
	assert.False(t, g.IsBlocked(cs, 0.3, w-0.5, 13.5))
}

func TestIsBlockedNearWall(t *testing.T) {
	g := corridorGrid()
	const cs = 1.0

	// Row 7 spans z in [7,8); walls above (z<7) and below (z>=8) away from column 7.
	assert.False(t, g.IsBlocked(cs, 0.3, 3.5, 7.5))
	assert.False(t, g.IsBlocked(cs, 0.3, 3.5, 7.31))
	assert.True(t, g.IsBlocked(cs, 0.3, 3.5, 7.29))
	assert.True(t, g.IsBlocked(cs, 0.3, 3.5, 7.75))

	// Corner clearance: the wall cell (6,6) corner is at (7,7).
	assert.False(t, g.IsBlocked(cs, 0.3, 7.5, 7.5))
	assert.True(t, g.IsBlocked(cs, 0.3, 7.1, 7.1))
}

func TestIsGoal(t *testing.T) {
	g, err := Generate(15, 15, 1)
	require.NoError(t, err)

	for _, cs := range []float64{1, 2.5} {
		exit := g.Exit()
		for z := 0; z < g.Height; z++ {
			for x := 0; x < g.Width; x++ {
				cx := (float64(x) + 0.5) * cs
				cz := (float64(z) + 0.5) * cs
				want := x == exit.X && z == exit.Z
				assert.Equal(t, want, g.IsGoal(cs, cx, cz), "cell (%d,%d) cs=%v", x, z, cs)
			}
		}

		// Cell edges floor into the cell they start.
		assert.True(t, g.IsGoal(cs, float64(exit.X)*cs, float64(exit.Z)*cs))
		assert.False(t, g.IsGoal(cs, float64(exit.X)*cs-0.001, float64(exit.Z)*cs))
	}

	ex, ez := g.Spawn(1)
	assert.False(t, g.IsGoal(1, ex, ez))
	assert.False(t, g.IsGoal(1, 0.5, 1.5), "entrance is not the goal")
}

func TestCellOf(t *testing.T) {
	assert.Equal(t, Point{X: 0, Z: 0}, CellOf(1, 0, 0))
	assert.Equal(t, Point{X: 3, Z: 2}, CellOf(1, 3.99, 2.01))
	assert.Equal(t, Point{X: -1, Z: -1}, CellOf(1, -0.01, -0.5))
	assert.Equal(t, Point{X: 1, Z: 4}, CellOf(2, 3.5, 8))
}

func TestSpawn(t *testing.T) {
	g, err := Generate(15, 15, 4)
	require.NoError(t, err)

	x, z := g.Spawn(2)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 3.0, z)
	assert.False(t, g.IsBlocked(2, 0.5, x, z))
}

func TestFieldSlide(t *testing.T) {
	g := corridorGrid()
	f := NewField(g, 1, 0.25)

	t.Run("free move", func(t *testing.T) {
		x, z, hitX, hitZ := f.Slide(3.5, 7.5, 0.2, 0)
		assert.InDelta(t, 3.7, x, 1e-9)
		assert.Equal(t, 7.5, z)
		assert.False(t, hitX)
		assert.False(t, hitZ)
	})

	t.Run("slides along wall", func(t *testing.T) {
		// Moving diagonally into the north wall keeps the x component.
		x, z, hitX, hitZ := f.Slide(3.5, 7.3, 0.2, -0.2)
		assert.InDelta(t, 3.7, x, 1e-9)
		assert.Equal(t, 7.3, z)
		assert.False(t, hitX)
		assert.True(t, hitZ)
	})

	t.Run("blocked both axes", func(t *testing.T) {
		// Dead end at the east end of row 7, pressed into the corner.
		x, z, hitX, hitZ := f.Slide(13.7, 7.7, 0.2, 0.2)
		assert.Equal(t, 13.7, x)
		assert.Equal(t, 7.7, z)
		assert.True(t, hitX)
		assert.True(t, hitZ)
	})

	t.Run("turns corner", func(t *testing.T) {
		x, z, _, hitZ := f.Slide(7.5, 7.5, 0, -0.4)
		assert.Equal(t, 7.5, x)
		assert.InDelta(t, 7.1, z, 1e-9)
		assert.False(t, hitZ)
	})

	assert.True(t, f.Blocked(0.5, 0.5))
	assert.False(t, f.Goal(7.5, 7.5))
}
