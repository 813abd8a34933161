package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	FootstepDuration = 110 * time.Millisecond
	BumpDuration     = 140 * time.Millisecond
	MenuDuration     = 65 * time.Millisecond
	VictoryNote      = 110 * time.Millisecond
	VictoryTail      = 420 * time.Millisecond
)

// Footstep is a soft scuff: lowpassed noise over a short low thump. The seed
// varies the grain between steps; pan is -1 (left) .. 1 (right).
func Footstep(rate beep.SampleRate, seed uint64, pan float64) beep.Streamer {
	// Small per-step pitch wobble keeps repeated steps from sounding canned.
	wobble := 1 + 0.12*lcg(&seed)

	noise := &lowpass{streamer: NewOscillator(0, FootstepDuration, WaveNoise, rate, seed), k: 0.18}
	scuff := newPercEnvelope(noise, FootstepDuration, 4*time.Millisecond, rate)

	thump := NewOscillator(70*wobble, FootstepDuration, WaveSine, rate, 0)
	thumpShaped := newPercEnvelope(thump, 70*time.Millisecond, 2*time.Millisecond, rate)

	mixed := beep.Take(rate.N(FootstepDuration), beep.Mix(
		newVolume(scuff, 0.55),
		newVolume(thumpShaped, 0.45),
	))
	return softClip{&effects.Pan{Streamer: mixed, Pan: clampF(pan, -1, 1)}}
}

// Bump is a dull knock for walking into a wall.
func Bump(rate beep.SampleRate) beep.Streamer {
	knock := NewOscillator(95, BumpDuration, WaveSaw, rate, 0)
	dark := &lowpass{streamer: knock, k: 0.08}
	shaped := newPercEnvelope(dark, BumpDuration, 3*time.Millisecond, rate)

	click := NewOscillator(0, 12*time.Millisecond, WaveNoise, rate, 0xB0B)
	clickShaped := newPercEnvelope(click, 12*time.Millisecond, time.Millisecond, rate)

	return softClip{beep.Take(rate.N(BumpDuration), beep.Mix(
		newVolume(shaped, 1.4),
		newVolume(clickShaped, 0.2),
	))}
}

// MenuSelect is a crisp falling blip.
func MenuSelect(rate beep.SampleRate) beep.Streamer {
	return softClip{&sweep{
		from:     1400,
		to:       700,
		duration: rate.N(MenuDuration),
		rate:     rate,
		gain:     0.38,
	}}
}

// Victory is a rising C major arpeggio with a ringing final chord.
func Victory(rate beep.SampleRate) beep.Streamer {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	notes := make([]beep.Streamer, 0, len(freqs)+1)
	for _, f := range freqs[:len(freqs)-1] {
		osc := NewOscillator(f, VictoryNote, WaveSine, rate, 0)
		over := NewOscillator(f*2, VictoryNote, WaveSine, rate, 0)
		note := beep.Mix(newVolume(osc, 0.8), newVolume(over, 0.15))
		notes = append(notes, NewEnvelope(beep.Take(rate.N(VictoryNote), note), VictoryNote, 4*time.Millisecond, 40*time.Millisecond, rate))
	}

	var chord []beep.Streamer
	for _, f := range freqs {
		chord = append(chord, newVolume(NewOscillator(f, VictoryTail, WaveSine, rate, 0), 0.3))
	}
	ring := beep.Take(rate.N(VictoryTail), beep.Mix(chord...))
	notes = append(notes, newPercEnvelope(ring, VictoryTail, 5*time.Millisecond, rate))

	return softClip{newVolume(beep.Seq(notes...), 0.7)}
}

// Ambience is an endless low drone with slow wind, for behind the maze.
func Ambience(rate beep.SampleRate, seed uint64) beep.Streamer {
	if seed == 0 {
		seed = 1
	}
	return &drone{rate: rate, seed: seed}
}

// sweep is a sine glide with a pluck envelope.
type sweep struct {
	from, to float64
	duration int
	position int
	phase    float64
	rate     beep.SampleRate
	gain     float64
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		p := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*p
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		env := math.Min(p/0.004, 1) * math.Pow(1-p, 2)
		v := math.Sin(2*math.Pi*s.phase) * env * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// drone mixes two detuned low sines with LFO-swept filtered noise. Wind
// drifts between the channels for width.
type drone struct {
	rate  beep.SampleRate
	seed  uint64
	t     float64
	p1    float64
	p2    float64
	windL float64
	windR float64
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	dt := 1 / float64(d.rate)
	for i := range samples {
		d.p1 += 55.0 * dt
		d.p2 += 55.4 * dt
		d.p1 -= math.Floor(d.p1)
		d.p2 -= math.Floor(d.p2)

		swell := 0.5 + 0.5*math.Sin(2*math.Pi*0.07*d.t)
		k := 0.004 + 0.01*swell
		d.windL += (lcg(&d.seed) - d.windL) * k
		d.windR += (lcg(&d.seed) - d.windR) * k
		drift := math.Sin(2 * math.Pi * 0.031 * d.t)

		tone := (math.Sin(2*math.Pi*d.p1) + math.Sin(2*math.Pi*d.p2)) * 0.12
		samples[i][0] = softSat(tone + d.windL*(1.6+0.6*drift))
		samples[i][1] = softSat(tone + d.windR*(1.6-0.6*drift))
		d.t += dt
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
