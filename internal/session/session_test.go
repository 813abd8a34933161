package session

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/internal/maze"
	"mazerunner/internal/player"
)

var testOpts = Options{CellSize: 1, Radius: 0.2, Speed: 2.5}

func TestStart(t *testing.T) {
	s := New(testOpts)
	assert.Equal(t, StateMenu, s.State)

	require.NoError(t, s.Start(maze.Easy, 7))
	assert.Equal(t, StatePlaying, s.State)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 15, s.Grid.Width)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, 1.5, s.Player.X)
	assert.Equal(t, 1.5, s.Player.Z)
	assert.Equal(t, maze.SpawnYaw, s.Player.Yaw)
	assert.Equal(t, maze.Point{X: 1, Z: 1}, s.Cell())

	first := s.ID
	require.NoError(t, s.Start(maze.Hard, 7))
	assert.NotEqual(t, first, s.ID)
	assert.Equal(t, 51, s.Grid.Width)
	assert.Zero(t, s.Elapsed)
}

func TestStartInvalidKeepsState(t *testing.T) {
	s := New(testOpts)
	require.NoError(t, s.Start(maze.Easy, 1))
	grid := s.Grid

	err := s.Start(maze.Difficulty(42), 1)
	require.Error(t, err)
	assert.Same(t, grid, s.Grid)

	err = s.StartSize(10, 10, 1)
	require.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Same(t, grid, s.Grid)
}

func TestRestartUsesNextSeed(t *testing.T) {
	s := New(testOpts)
	require.NoError(t, s.Start(maze.Normal, 99))
	before := s.Grid.Lines()

	require.NoError(t, s.Restart())
	assert.Equal(t, maze.Mix(99), s.Seed)
	assert.Equal(t, 21, s.Grid.Width)
	assert.NotEqual(t, before, s.Grid.Lines())
	assert.Equal(t, StatePlaying, s.State)
}

func TestUpdateOnlyWhilePlaying(t *testing.T) {
	s := New(testOpts)
	assert.Zero(t, s.Update(player.Intent{Forward: true}, 1))

	require.NoError(t, s.Start(maze.Easy, 3))
	s.BackToMenu()
	x := s.Player.X
	assert.Zero(t, s.Update(player.Intent{Forward: true}, 1))
	assert.Equal(t, x, s.Player.X)
	assert.Zero(t, s.Elapsed)
}

func TestUpdateBumpFiresOnce(t *testing.T) {
	s := New(testOpts)
	require.NoError(t, s.Start(maze.Easy, 3))

	// Face -z, straight into the north border wall.
	s.Player.Yaw = 270

	var bumps int
	for i := 0; i < 60; i++ {
		if s.Update(player.Intent{Forward: true}, 1.0/60).Has(EventBump) {
			bumps++
		}
	}
	assert.Equal(t, 1, bumps)
	assert.Equal(t, 1, s.Bumps)
}

// walk drives the player through the cell centres of path.
func walk(t *testing.T, s *Session, path []maze.Point) Event {
	t.Helper()
	var all Event
	cs := s.Options().CellSize
	for _, c := range path[1:] {
		tx := (float64(c.X) + 0.5) * cs
		tz := (float64(c.Z) + 0.5) * cs
		for i := 0; i < 200 && s.State == StatePlaying; i++ {
			dx, dz := tx-s.Player.X, tz-s.Player.Z
			if math.Hypot(dx, dz) < 0.02 {
				break
			}
			s.Player.Yaw = math.Atan2(dz, dx) * 180 / math.Pi
			dt := math.Min(1.0/60, math.Hypot(dx, dz)/s.Options().Speed)
			all |= s.Update(player.Intent{Forward: true}, dt)
		}
		if s.State != StatePlaying {
			break
		}
	}
	return all
}

func TestSolveByWalking(t *testing.T) {
	s := New(testOpts)
	require.NoError(t, s.Start(maze.Easy, 2024))

	path := s.Grid.Solve()
	require.NotEmpty(t, path)

	ev := walk(t, s, path)
	assert.True(t, ev.Has(EventSolved))
	assert.True(t, ev.Has(EventFootstep))
	assert.Equal(t, StateSolved, s.State)
	assert.Greater(t, s.Steps, 0)
	assert.Greater(t, s.Elapsed, 0.0)

	// Solved is terminal until restart.
	elapsed := s.Elapsed
	assert.Zero(t, s.Update(player.Intent{Forward: true}, 1))
	assert.Equal(t, elapsed, s.Elapsed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "solved", StateSolved.String())
	assert.Equal(t, "State(9)", State(9).String())
}
