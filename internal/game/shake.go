package game

import "mazerunner/internal/maze"

// Bump shake, in degrees of view jitter.
const (
	BumpShakeIntensity = 0.8
	BumpShakeDuration  = 0.18
)

// Shake jitters the view after a wall bump.
type Shake struct {
	Yaw, Pitch float64 // current offset in degrees
	Timer      float64 // remaining shake time
	Intensity  float64 // max offset magnitude
}

// Add triggers a shake with given intensity and duration.
func (s *Shake) Add(intensity, duration float64) {
	if intensity > s.Intensity {
		s.Intensity = intensity
	}
	if duration > s.Timer {
		s.Timer = duration
	}
}

// Update decays the shake and picks new random offsets.
func (s *Shake) Update(dt float64, seed uint64) {
	if s.Timer <= 0 {
		s.Yaw, s.Pitch, s.Intensity = 0, 0, 0
		return
	}
	s.Timer = max(s.Timer-dt, 0)
	t := s.Timer
	rr := maze.NewRand(seed ^ uint64(t*10000))
	mag := s.Intensity * (t / (t + 0.08))
	s.Yaw = (rr.Float64()*2 - 1) * mag
	s.Pitch = (rr.Float64()*2 - 1) * mag
}
