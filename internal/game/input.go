package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"mazerunner/internal/player"
)

type Input struct {
	prevKeys map[glfw.Key]bool

	// Mouse look: cursor position at the previous frame. The cursor is
	// disabled, so glfw reports unbounded virtual coordinates.
	prevCursorX float64
	prevCursorY float64
	haveCursor  bool

	scroll float64 // accumulated wheel notches since the last read
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scroll += yoff
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// MouseDelta returns the cursor movement since the last call. The first
// call after ResetMouse reports zero so re-entering play does not jerk the view.
func (in *Input) MouseDelta(window *glfw.Window) (dx, dy float64) {
	cx, cy := window.GetCursorPos()
	if in.haveCursor {
		dx, dy = cx-in.prevCursorX, cy-in.prevCursorY
	}
	in.prevCursorX, in.prevCursorY = cx, cy
	in.haveCursor = true
	return dx, dy
}

func (in *Input) ResetMouse() { in.haveCursor = false }

// Scroll returns and clears the accumulated wheel movement.
func (in *Input) Scroll() float64 {
	s := in.scroll
	in.scroll = 0
	return s
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// MoveIntent reads WASD plus E/Q for fly mode.
func MoveIntent(window *glfw.Window) player.Intent {
	return player.Intent{
		Forward: held(window, glfw.KeyW),
		Back:    held(window, glfw.KeyS),
		Left:    held(window, glfw.KeyA),
		Right:   held(window, glfw.KeyD),
		Up:      held(window, glfw.KeyE),
		Down:    held(window, glfw.KeyQ),
	}
}

// ArrowLook returns the keyboard look direction in -1..1 per axis:
// yaw positive to the right, pitch positive upward.
func ArrowLook(window *glfw.Window) (yaw, pitch float64) {
	if held(window, glfw.KeyRight) {
		yaw++
	}
	if held(window, glfw.KeyLeft) {
		yaw--
	}
	if held(window, glfw.KeyUp) {
		pitch++
	}
	if held(window, glfw.KeyDown) {
		pitch--
	}
	return yaw, pitch
}
