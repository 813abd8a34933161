package view

import (
	"fmt"
	"math"

	"mazerunner/internal/maze"
)

// FormatClock renders seconds as mm:ss.t.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	tenths := int(seconds * 10)
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}

// Bearing is the signed angle in degrees from the facing direction yaw to
// the target, in (-180, 180]. Positive means the target is to the right.
func Bearing(x, z, yaw, tx, tz float64) float64 {
	to := math.Atan2(tz-z, tx-x) * 180 / math.Pi
	d := math.Mod(to-yaw, 360)
	if d <= -180 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}

// CompassHint is a short arrow text pointing from the player to the exit.
func CompassHint(x, z, yaw float64, g *maze.Grid, cellSize float64) string {
	e := g.Exit()
	tx := (float64(e.X) + 0.5) * cellSize
	tz := (float64(e.Z) + 0.5) * cellSize
	b := Bearing(x, z, yaw, tx, tz)
	dist := math.Hypot(tx-x, tz-z) / cellSize

	var arrow string
	switch {
	case math.Abs(b) <= 22.5:
		arrow = "^"
	case math.Abs(b) >= 157.5:
		arrow = "v"
	case b > 0:
		arrow = ">"
	default:
		arrow = "<"
	}
	return fmt.Sprintf("EXIT %s %.0f", arrow, dist)
}

// SolvedSummary is the line shown on the solved screen.
func SolvedSummary(d maze.Difficulty, elapsed float64, steps int) string {
	return fmt.Sprintf("%s maze solved in %s, %d steps", d, FormatClock(elapsed), steps)
}
