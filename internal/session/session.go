// Package session owns one run through a maze: the grid, its collision
// field, the player and the menu/playing/solved state machine.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"mazerunner/internal/maze"
	"mazerunner/internal/player"
)

type State int

const (
	StateMenu    State = iota
	StatePlaying       // walking the maze
	StateSolved        // exit cell reached
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateSolved:
		return "solved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event is a bitmask of things that happened during an Update.
type Event uint8

const (
	EventFootstep Event = 1 << iota
	EventBump
	EventSolved
)

// Has reports whether all bits of e2 are set.
func (e Event) Has(e2 Event) bool { return e&e2 == e2 }

// Options are the movement parameters a session is built with.
type Options struct {
	CellSize float64
	Radius   float64
	Speed    float64
}

// Session is created once and restarted for every maze.
type Session struct {
	ID         uuid.UUID
	State      State
	Difficulty maze.Difficulty
	Seed       uint64

	Grid   *maze.Grid
	Field  *maze.Field
	Player *player.Player

	Elapsed  float64 // Seconds spent in StatePlaying
	Steps    int     // Footsteps taken
	LastFoot int     // Foot of the most recent EventFootstep
	Bumps    int

	opts Options
	// bumping suppresses repeated bump events while pressed against a wall.
	bumping bool
}

func New(opts Options) *Session {
	return &Session{State: StateMenu, opts: opts}
}

// Options returns the movement parameters.
func (s *Session) Options() Options { return s.opts }

// Start generates a fresh maze for d and seed, replacing any previous one
// wholesale, and places the player at the spawn point. On error the session
// is left unchanged.
func (s *Session) Start(d maze.Difficulty, seed uint64) error {
	g, err := maze.GenerateDifficulty(d, seed)
	if err != nil {
		return fmt.Errorf("start %s maze: %w", d, err)
	}
	s.begin(g, d, seed)
	return nil
}

// StartSize is Start for an explicit grid size.
func (s *Session) StartSize(width, height int, seed uint64) error {
	g, err := maze.Generate(width, height, seed)
	if err != nil {
		return fmt.Errorf("start %dx%d maze: %w", width, height, err)
	}
	s.begin(g, s.Difficulty, seed)
	return nil
}

func (s *Session) begin(g *maze.Grid, d maze.Difficulty, seed uint64) {
	s.ID = uuid.New()
	s.Difficulty = d
	s.Seed = seed
	s.Grid = g
	s.Field = maze.NewField(g, s.opts.CellSize, s.opts.Radius)

	x, z := g.Spawn(s.opts.CellSize)
	s.Player = player.New(x, z, maze.SpawnYaw, s.opts.CellSize)

	s.Elapsed = 0
	s.Steps = 0
	s.LastFoot = 0
	s.Bumps = 0
	s.bumping = false
	s.State = StatePlaying
}

// Restart builds a new maze of the same size with the next seed.
func (s *Session) Restart() error {
	if s.Grid == nil {
		return s.Start(s.Difficulty, maze.Mix(s.Seed))
	}
	return s.StartSize(s.Grid.Width, s.Grid.Height, maze.Mix(s.Seed))
}

// BackToMenu drops to the menu, keeping the maze for display behind it.
func (s *Session) BackToMenu() {
	s.State = StateMenu
}

// Update advances the session by dt seconds of input. Only StatePlaying
// moves the player; the solved transition fires exactly once.
func (s *Session) Update(in player.Intent, dt float64) Event {
	if s.State != StatePlaying || s.Player == nil {
		return 0
	}
	s.Elapsed += dt

	var ev Event
	res := s.Player.Move(in, s.opts.Speed, dt, s.Field)
	if res.Step {
		s.Steps++
		s.LastFoot = res.Foot
		ev |= EventFootstep
	}
	if res.Bumped && !s.bumping {
		s.Bumps++
		ev |= EventBump
	}
	s.bumping = res.Bumped

	if s.Field.Goal(s.Player.X, s.Player.Z) {
		s.State = StateSolved
		ev |= EventSolved
	}
	return ev
}

// Cell is the grid cell the player stands in.
func (s *Session) Cell() maze.Point {
	if s.Player == nil {
		return maze.Point{}
	}
	return maze.CellOf(s.opts.CellSize, s.Player.X, s.Player.Z)
}
