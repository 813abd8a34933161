package player

// StepLength is the distance between footsteps, in cell units.
const StepLength = 0.45

// Stride turns travelled distance into a footstep cadence.
type Stride struct {
	Length float64
	acc    float64
	foot   int
}

// Advance adds dist to the stride. It reports a completed step and which
// foot landed; feet alternate left (0) and right (1). At most one step is
// reported per call so a long frame never produces a burst of sounds.
func (s *Stride) Advance(dist float64) (bool, int) {
	if s.Length <= 0 || dist <= 0 {
		return false, 0
	}
	s.acc += dist
	if s.acc < s.Length {
		return false, 0
	}
	s.acc -= s.Length
	if s.acc > s.Length {
		s.acc = 0
	}
	foot := s.foot
	s.foot ^= 1
	return true, foot
}

// Reset clears the accumulated distance and restarts on the left foot.
func (s *Stride) Reset() {
	s.acc = 0
	s.foot = 0
}
