package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/internal/maze"
	"mazerunner/internal/session"
)

func newExplorer(t *testing.T) *Explorer {
	t.Helper()
	s := session.New(session.Options{CellSize: 1, Radius: 0.2, Speed: 2.5})
	return New(s, maze.Easy, 1, nil)
}

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }
func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func TestMenuKeys(t *testing.T) {
	e := newExplorer(t)

	assert.False(t, e.HandleKey(key(tcell.KeyDown)))
	assert.Equal(t, maze.Normal, e.Menu.Current())

	assert.False(t, e.HandleKey(runeKey('3')))
	require.Equal(t, session.StatePlaying, e.Session.State)
	assert.Equal(t, maze.Hard, e.Session.Difficulty)
	assert.Equal(t, 51, e.Session.Grid.Width)

	e.HandleKey(key(tcell.KeyEscape))
	assert.Equal(t, session.StateMenu, e.Session.State)

	e.HandleKey(key(tcell.KeyUp))
	e.HandleKey(key(tcell.KeyEnter))
	assert.Equal(t, maze.Normal, e.Session.Difficulty)
	assert.Equal(t, session.StatePlaying, e.Session.State)

	e.Session.BackToMenu()
	assert.True(t, e.HandleKey(runeKey('q')))
	assert.True(t, e.HandleKey(key(tcell.KeyCtrlC)))
}

func TestStartUsesFreshSeeds(t *testing.T) {
	e := newExplorer(t)
	require.NoError(t, e.Start(maze.Easy))
	first := e.Session.Seed
	assert.Equal(t, uint64(1), first)

	require.NoError(t, e.Start(maze.Easy))
	assert.Equal(t, maze.Mix(first), e.Session.Seed)

	e.HandleKey(runeKey('r'))
	assert.Equal(t, maze.Mix(maze.Mix(first)), e.Session.Seed)
}

// firstMove returns the key that walks from the start cell along the solution.
func firstMove(t *testing.T, g *maze.Grid) (*tcell.EventKey, float64, float64) {
	t.Helper()
	path := g.Solve()
	require.GreaterOrEqual(t, len(path), 2)
	d := maze.Point{X: path[1].X - path[0].X, Z: path[1].Z - path[0].Z}
	switch d {
	case maze.Point{X: 1}:
		return runeKey('d'), 1, 0
	case maze.Point{X: -1}:
		return runeKey('a'), -1, 0
	case maze.Point{Z: 1}:
		return key(tcell.KeyDown), 0, 1
	}
	return key(tcell.KeyUp), 0, -1
}

func TestHeldDirectionMovesAndExpires(t *testing.T) {
	e := newExplorer(t)
	require.NoError(t, e.Start(maze.Easy))
	p := e.Session.Player
	x0, z0 := p.X, p.Z

	k, dx, dz := firstMove(t, e.Session.Grid)
	e.HandleKey(k)

	e.Tick(0.1)
	assert.InDelta(t, x0+dx*0.25, p.X, 1e-9)
	assert.InDelta(t, z0+dz*0.25, p.Z, 1e-9)

	e.Tick(0.2) // hold runs out during this tick
	x1, z1 := p.X, p.Z
	e.Tick(0.1)
	assert.Equal(t, x1, p.X)
	assert.Equal(t, z1, p.Z)
	assert.InDelta(t, 0.4, e.Session.Elapsed, 1e-9)
}

func TestSolvedBanner(t *testing.T) {
	e := newExplorer(t)
	require.NoError(t, e.Start(maze.Easy))
	exit := e.Session.Grid.Exit()
	e.Session.Player.X = float64(exit.X) + 0.5
	e.Session.Player.Z = float64(exit.Z) + 0.5

	ev := e.Tick(0.05)
	assert.True(t, ev.Has(session.EventSolved))
	assert.Equal(t, session.StateSolved, e.Session.State)
	assert.Contains(t, strings.Join(e.Frame(120, 40), "\n"), "easy maze solved")

	e.HandleKey(runeKey(' '))
	assert.Equal(t, session.StateMenu, e.Session.State)
}

func TestFrame(t *testing.T) {
	e := newExplorer(t)

	menu := e.Frame(80, 24)
	assert.Contains(t, menu[0], "MAZE RUNNER")
	assert.Contains(t, strings.Join(menu, "\n"), "> 1  easy")

	require.NoError(t, e.Start(maze.Easy))
	lines := e.Frame(80, 24)
	require.Len(t, lines, 16)
	assert.Contains(t, lines[0], "easy 15x15")
	assert.Equal(t, strings.Repeat("##", 15), lines[1])
	assert.Equal(t, "@ ", lines[2][2:4])
	assert.Equal(t, "<>", lines[1+13][28:30])
	assert.NotContains(t, strings.Join(lines, ""), "::")

	e.HandleKey(runeKey('?'))
	assert.True(t, e.ShowPath)
	assert.Contains(t, strings.Join(e.Frame(80, 24), ""), "::")
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name                   string
		player, cells, visible int
		want                   int
	}{
		{"fits", 5, 15, 40, 0},
		{"near start", 3, 51, 20, 0},
		{"centred", 25, 51, 20, 15},
		{"near end", 50, 51, 20, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, viewport(tt.player, tt.cells, tt.visible))
		})
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 30)

	e := newExplorer(t)
	require.NoError(t, e.Start(maze.Easy))
	e.Draw(screen)

	r, _, style, _ := screen.GetContent(0, 1)
	assert.Equal(t, '#', r)
	assert.Equal(t, styles[kindWall], style)
	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, '@', r)
}
