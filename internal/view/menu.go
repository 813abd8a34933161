package view

import (
	"fmt"

	"mazerunner/internal/maze"
)

// Menu is the difficulty picker shared by the desktop and terminal front-ends.
type Menu struct {
	Selected int
}

func NewMenu(d maze.Difficulty) *Menu {
	m := &Menu{}
	for i, dd := range maze.Difficulties {
		if dd == d {
			m.Selected = i
		}
	}
	return m
}

// Up moves the cursor up one entry, wrapping.
func (m *Menu) Up() {
	n := len(maze.Difficulties)
	m.Selected = (m.Selected - 1 + n) % n
}

// Down moves the cursor down one entry, wrapping.
func (m *Menu) Down() {
	m.Selected = (m.Selected + 1) % len(maze.Difficulties)
}

// Current is the highlighted difficulty.
func (m *Menu) Current() maze.Difficulty {
	return maze.Difficulties[m.Selected]
}

// Pick selects by number key ('1'..'3'). It reports false for other keys.
func (m *Menu) Pick(key rune) (maze.Difficulty, bool) {
	i := int(key - '1')
	if i < 0 || i >= len(maze.Difficulties) {
		return 0, false
	}
	m.Selected = i
	return maze.Difficulties[i], true
}

// Lines returns one label per entry; the selected one is marked.
func (m *Menu) Lines() []string {
	out := make([]string, len(maze.Difficulties))
	for i, d := range maze.Difficulties {
		p, _ := d.Preset()
		mark := "  "
		if i == m.Selected {
			mark = "> "
		}
		out[i] = fmt.Sprintf("%s%d  %-6s %dx%d", mark, i+1, d, p.Width, p.Height)
	}
	return out
}
