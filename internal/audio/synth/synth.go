// Package synth builds the procedural sound effects as beep streamers.
// Nothing here touches an audio device; internal/audio renders the
// streamers and hands the samples to the output context.
package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DefaultRate is the output sample rate used by the desktop front-end.
const DefaultRate beep.SampleRate = 44100

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a fixed-length (or endless when duration < 0) tone source.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint64
}

// NewOscillator returns a wave of the given shape. A negative duration
// streams forever. Noise is seeded so renders are reproducible.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, seed uint64) beep.Streamer {
	n := -1
	if duration >= 0 {
		n = rate.N(duration)
	}
	if seed == 0 {
		seed = 1
	}
	return &oscillator{freq: freq, duration: n, wave: wave, rate: rate, seed: seed}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = lcg(&o.seed)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping over a fixed length.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
	curve          float64 // >1 makes the release fall off faster
}

// NewEnvelope shapes s with a linear attack and a release that starts at
// duration-release. Samples past duration are dropped.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
		curve:          1,
	}
}

// newPercEnvelope is NewEnvelope with an exponential-ish release.
func newPercEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	e := NewEnvelope(s, duration, attack, duration-attack, rate).(*envelope)
	e.curve = 3
	return e
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rem := e.totalSamples - e.position; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			vol = math.Pow(clampF(vol, 0, 1), e.curve)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// lowpass is a one-pole filter; k in (0,1], smaller is darker.
type lowpass struct {
	streamer beep.Streamer
	k        float64
	l, r     float64
}

func (f *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		f.l += (samples[i][0] - f.l) * f.k
		f.r += (samples[i][1] - f.r) * f.k
		samples[i][0] = f.l
		samples[i][1] = f.r
	}
	return n, ok
}

func (f *lowpass) Err() error { return f.streamer.Err() }

// softClip keeps the summed mix inside [-1,1] without hard edges.
type softClip struct {
	streamer beep.Streamer
}

func (c softClip) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = c.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] = softSat(samples[i][0])
		samples[i][1] = softSat(samples[i][1])
	}
	return n, ok
}

func (c softClip) Err() error { return c.streamer.Err() }

// newVolume scales linearly; log2(0) is -Inf so zero is mapped to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Render drains s into a sample slice, stopping after max frames for
// streamers that do not end on their own.
func Render(s beep.Streamer, max int) [][2]float64 {
	out := make([][2]float64, 0, 4096)
	buf := make([][2]float64, 512)
	for len(out) < max {
		want := len(buf)
		if rem := max - len(out); rem < want {
			want = rem
		}
		n, ok := s.Stream(buf[:want])
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
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
