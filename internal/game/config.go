package game

import "time"

// Window and frame timing.
const (
	WindowTitle = "Maze Runner"
	MaxFrameDt  = 0.1 // seconds; longer frames are clamped
)

// AudioReadyTimeout bounds the wait for the output device before the
// ambience is given up.
const AudioReadyTimeout = 3 * time.Second

// Scene.
const (
	TextureSize    = 128
	FogDistance    = 9.0  // cells
	LightFalloff   = 0.35 // per cell squared
	AmbientLight   = 0.12
	BeaconHeight   = 0.55 // cells above the floor
	BeaconSize     = 0.18 // cells
	BeaconBobSpeed = 2.2
)

// Look controls.
const (
	LookSpeedStep = 0.5 // M/N adjust
	MinLookSpeed  = 0.5
	ScrollZoom    = 2.0 // FOV degrees per scroll notch
)

// Drunk filter fade, in strength per second.
const DrunkFade = 1.5

// HUD text scales (atlas cells are 7x13 px).
const (
	HUDScale   = 2.0
	TitleScale = 5.0
	MenuScale  = 2.5
)
