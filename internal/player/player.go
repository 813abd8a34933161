// Package player is the first-person navigator: look angles, zoom and
// collision-aware movement over a maze field.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	EyeHeight = 0.5  // Walking eye height in cell units
	MinPitch  = -89.0
	MaxPitch  = 89.0
	MinZoom   = 1.0  // Narrowest FOV in degrees
	MaxZoom   = 45.0 // Default and widest FOV
	FlyFloor  = 0.05 // Lowest eye height while flying, in cell units
	FlyCeil   = 3.0  // Highest eye height while flying, in cell units
)

// Collider resolves a horizontal displacement against the maze.
type Collider interface {
	Slide(x, z, dx, dz float64) (nx, nz float64, hitX, hitZ bool)
}

// Intent is one frame of movement input.
type Intent struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool // Only honoured in fly mode
}

// Any reports whether any direction is held.
func (in Intent) Any() bool {
	return in.Forward || in.Back || in.Left || in.Right || in.Up || in.Down
}

// Player is the camera body. X/Z are world coordinates on the maze floor,
// Y is eye height; Yaw and Pitch are in degrees with yaw 0 facing +x.
type Player struct {
	X, Y, Z    float64
	Yaw, Pitch float64
	FlyMode    bool
	Zoom       float64

	CellSize float64
	Stride   Stride
}

// MoveResult reports what a Move did.
type MoveResult struct {
	Distance float64 // Horizontal distance actually travelled
	Bumped   bool    // A wall stopped at least one axis
	Step     bool    // The stride completed a footstep
	Foot     int     // 0 left, 1 right; valid when Step is set
}

// New places the player at (x, z) on a maze with the given cell size.
func New(x, z, yaw, cellSize float64) *Player {
	return &Player{
		X:        x,
		Y:        EyeHeight * cellSize,
		Z:        z,
		Yaw:      yaw,
		Zoom:     MaxZoom,
		CellSize: cellSize,
		Stride:   Stride{Length: StepLength * cellSize},
	}
}

// Look turns the view. Yaw wraps to [0, 360), pitch is clamped.
func (p *Player) Look(dYaw, dPitch float64) {
	p.Yaw = math.Mod(p.Yaw+dYaw, 360)
	if p.Yaw < 0 {
		p.Yaw += 360
	}
	p.Pitch = clampF(p.Pitch+dPitch, MinPitch, MaxPitch)
}

// ZoomBy narrows (positive) or widens (negative) the field of view.
func (p *Player) ZoomBy(d float64) {
	p.Zoom = clampF(p.Zoom-d, MinZoom, MaxZoom)
}

// ToggleFly switches between walking and flying. Landing restores eye height.
func (p *Player) ToggleFly() {
	p.FlyMode = !p.FlyMode
	if !p.FlyMode {
		p.Y = EyeHeight * p.CellSize
	}
}

// Move applies one frame of input at speed world units per second.
// Movement is always horizontal-plane relative to yaw, so looking up or down
// does not slow the walk.
func (p *Player) Move(in Intent, speed, dt float64, field Collider) MoveResult {
	var res MoveResult
	if dt <= 0 {
		return res
	}

	yaw := p.Yaw * math.Pi / 180
	fx, fz := math.Cos(yaw), math.Sin(yaw)
	rx, rz := -fz, fx

	var wx, wz float64
	if in.Forward {
		wx += fx
		wz += fz
	}
	if in.Back {
		wx -= fx
		wz -= fz
	}
	if in.Right {
		wx += rx
		wz += rz
	}
	if in.Left {
		wx -= rx
		wz -= rz
	}

	step := speed * dt
	if l := math.Hypot(wx, wz); l > 1e-9 {
		dx := wx / l * step
		dz := wz / l * step
		nx, nz, hitX, hitZ := field.Slide(p.X, p.Z, dx, dz)
		res.Distance = math.Hypot(nx-p.X, nz-p.Z)
		res.Bumped = hitX || hitZ
		p.X, p.Z = nx, nz
	}

	if p.FlyMode {
		if in.Up {
			p.Y += step
		}
		if in.Down {
			p.Y -= step
		}
		p.Y = clampF(p.Y, FlyFloor*p.CellSize, FlyCeil*p.CellSize)
	} else {
		res.Step, res.Foot = p.Stride.Advance(res.Distance)
	}
	return res
}

// Front is the unit view direction.
func (p *Player) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(float32(p.Yaw))
	pitch := mgl32.DegToRad(float32(p.Pitch))
	cp := float32(math.Cos(float64(pitch)))
	return mgl32.Vec3{
		float32(math.Cos(float64(yaw))) * cp,
		float32(math.Sin(float64(pitch))),
		float32(math.Sin(float64(yaw))) * cp,
	}.Normalize()
}

// Eye is the camera position.
func (p *Player) Eye() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// ViewMatrix looks from the eye along Front with +y up.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	eye := p.Eye()
	return mgl32.LookAtV(eye, eye.Add(p.Front()), mgl32.Vec3{0, 1, 0})
}

// Projection is the perspective matrix for the current zoom.
func (p *Player) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(p.Zoom)), aspect, 0.02, 200)
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
