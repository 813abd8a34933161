// Package termview is a top-down terminal explorer for generated mazes.
package termview

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazerunner/internal/maze"
	"mazerunner/internal/player"
	"mazerunner/internal/session"
	"mazerunner/internal/view"
)

const (
	// HoldTime keeps a direction moving after its last key event. Terminals
	// only report presses and auto-repeats, never releases.
	HoldTime = 0.25
	TickRate = 30 * time.Millisecond
	CellCols = 2 // terminal columns per maze cell
)

type dir int

const (
	dirUp dir = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

type glyphKind int

const (
	kindOpen glyphKind = iota
	kindWall
	kindPath
	kindExit
	kindPlayer
)

var styles = [...]tcell.Style{
	kindOpen:   tcell.StyleDefault,
	kindWall:   tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorDarkSlateGray),
	kindPath:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	kindExit:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	kindPlayer: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
}

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true)
	menuStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	pickStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// Explorer drives a session from terminal key events. The maze is seen from
// above with -z at the top of the screen, and the player keeps yaw 0 so the
// arrow keys map onto fixed world directions.
type Explorer struct {
	Session  *session.Session
	Menu     *view.Menu
	ShowPath bool

	held     [dirCount]float64 // seconds left per direction
	path     map[maze.Point]bool
	pathSeed uint64
	nextSeed uint64
	logger   *log.Logger
}

func New(s *session.Session, d maze.Difficulty, seed uint64, logger *log.Logger) *Explorer {
	return &Explorer{Session: s, Menu: view.NewMenu(d), nextSeed: seed, logger: logger}
}

// Start begins a maze for d with the next seed.
func (e *Explorer) Start(d maze.Difficulty) error {
	if err := e.Session.Start(d, e.nextSeed); err != nil {
		return err
	}
	e.started()
	return nil
}

func (e *Explorer) started() {
	e.nextSeed = maze.Mix(e.Session.Seed)
	e.held = [dirCount]float64{}
	e.path = nil
	if e.logger != nil {
		g := e.Session.Grid
		e.logger.Printf("[INFO] session %s: %s %dx%d seed %d",
			e.Session.ID, e.Session.Difficulty, g.Width, g.Height, e.Session.Seed)
	}
}

// HandleKey applies one key event and reports whether the program should exit.
func (e *Explorer) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	s := e.Session
	switch s.State {
	case session.StateMenu:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyUp:
			e.Menu.Up()
		case ev.Key() == tcell.KeyDown:
			e.Menu.Down()
		case ev.Key() == tcell.KeyEnter:
			e.startLogged(e.Menu.Current())
		case ev.Key() == tcell.KeyRune:
			if d, ok := e.Menu.Pick(ev.Rune()); ok {
				e.startLogged(d)
			}
		}

	case session.StatePlaying:
		if d, ok := keyDir(ev); ok {
			e.held[d] = HoldTime
			return false
		}
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			s.BackToMenu()
		case ev.Rune() == '?':
			e.ShowPath = !e.ShowPath
		case ev.Rune() == 'r':
			e.restart()
		}

	case session.StateSolved:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == ' ' || ev.Rune() == 'q':
			s.BackToMenu()
		case ev.Rune() == 'r':
			e.restart()
		}
	}
	return false
}

func (e *Explorer) startLogged(d maze.Difficulty) {
	if err := e.Start(d); err != nil && e.logger != nil {
		e.logger.Printf("[ERROR] %v", err)
	}
}

func (e *Explorer) restart() {
	if err := e.Session.Restart(); err != nil {
		if e.logger != nil {
			e.logger.Printf("[ERROR] %v", err)
		}
		return
	}
	e.started()
}

func keyDir(ev *tcell.EventKey) (dir, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return dirUp, true
		case 's', 'j':
			return dirDown, true
		case 'a', 'h':
			return dirLeft, true
		case 'd', 'l':
			return dirRight, true
		}
	}
	return 0, false
}

// Tick advances the session by dt seconds using the held directions.
func (e *Explorer) Tick(dt float64) session.Event {
	var in player.Intent
	for d := range e.held {
		if e.held[d] <= 0 {
			continue
		}
		e.held[d] -= dt
		switch dir(d) {
		case dirUp:
			in.Left = true
		case dirDown:
			in.Right = true
		case dirLeft:
			in.Back = true
		case dirRight:
			in.Forward = true
		}
	}
	return e.Session.Update(in, dt)
}

// solution returns the cached solution cells for the current maze.
func (e *Explorer) solution() map[maze.Point]bool {
	g := e.Session.Grid
	if e.path != nil && e.pathSeed == g.Seed {
		return e.path
	}
	e.path = make(map[maze.Point]bool)
	for _, p := range g.Solve() {
		e.path[p] = true
	}
	e.pathSeed = g.Seed
	return e.path
}

func (e *Explorer) glyph(p, at maze.Point, path map[maze.Point]bool) (string, glyphKind) {
	g := e.Session.Grid
	switch {
	case p == at:
		return "@ ", kindPlayer
	case g.IsWall(p.X, p.Z):
		return "##", kindWall
	case p == g.Exit():
		return "<>", kindExit
	case path[p]:
		return "::", kindPath
	}
	return "  ", kindOpen
}

// viewport returns the first visible cell on an axis so that the player
// stays centred while the maze is larger than the screen.
func viewport(player, cells, visible int) int {
	if cells <= visible {
		return 0
	}
	o := player - visible/2
	return max(0, min(o, cells-visible))
}

// Frame renders the screen as text lines of width w and height h.
func (e *Explorer) Frame(w, h int) []string {
	lines := make([]string, 0, h)
	e.frame(w, h, func(x, y int, text string, _ tcell.Style) {
		for len(lines) <= y {
			lines = append(lines, "")
		}
		row := []rune(lines[y])
		for len(row) < x {
			row = append(row, ' ')
		}
		for i, r := range text {
			if x+i < len(row) {
				row[x+i] = r
			} else {
				row = append(row, r)
			}
		}
		lines[y] = string(row)
	})
	return lines
}

// Draw paints the current frame onto screen.
func (e *Explorer) Draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	e.frame(w, h, func(x, y int, text string, style tcell.Style) {
		for i, r := range []rune(text) {
			screen.SetContent(x+i, y, r, nil, style)
		}
	})
	screen.Show()
}

func (e *Explorer) frame(w, h int, put func(x, y int, text string, style tcell.Style)) {
	if w <= 0 || h <= 0 {
		return
	}
	s := e.Session
	if s.State == session.StateMenu {
		put(0, 0, clip("MAZE RUNNER - pick a maze", w), pickStyle)
		for i, line := range e.Menu.Lines() {
			style := menuStyle
			if i == e.Menu.Selected {
				style = pickStyle
			}
			put(0, 2+i, clip(line, w), style)
		}
		put(0, 3+len(maze.Difficulties), clip("1/2/3 or Up/Down+Enter, q to quit", w), menuStyle)
		return
	}

	g := s.Grid
	at := s.Cell()
	var path map[maze.Point]bool
	if e.ShowPath {
		path = e.solution()
	}

	status := fmt.Sprintf(" %s %dx%d  %s  steps %d  ? path  r new  q menu",
		s.Difficulty, g.Width, g.Height, view.FormatClock(s.Elapsed), s.Steps)
	put(0, 0, clip(status, w), statusStyle)

	cols, rows := w/CellCols, h-1
	ox := viewport(at.X, g.Width, cols)
	oz := viewport(at.Z, g.Height, rows)
	for z := oz; z < g.Height && z-oz < rows; z++ {
		for x := ox; x < g.Width && x-ox < cols; x++ {
			text, kind := e.glyph(maze.Point{X: x, Z: z}, at, path)
			put((x-ox)*CellCols, 1+z-oz, text, styles[kind])
		}
	}

	if s.State == session.StateSolved {
		banner := " " + view.SolvedSummary(s.Difficulty, s.Elapsed, s.Steps) + " - space for menu, r for new maze "
		banner = clip(banner, w)
		put(max(0, (w-len(banner))/2), h/2, banner, bannerStyle)
	}
}

func clip(s string, w int) string {
	if len(s) > w {
		return s[:w]
	}
	return s
}

// Run polls screen events and redraws until the user quits.
func Run(screen tcell.Screen, e *Explorer) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(TickRate)
	defer ticker.Stop()
	last := time.Now()

	e.Draw(screen)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if ev := e.Tick(dt); ev.Has(session.EventSolved) && e.logger != nil {
				s := e.Session
				e.logger.Printf("[INFO] session %s: %s", s.ID, view.SolvedSummary(s.Difficulty, s.Elapsed, s.Steps))
			}
			e.Draw(screen)
		}
	}
}
