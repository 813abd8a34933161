package synth

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rate = DefaultRate

func peak(samples [][2]float64) (l, r float64) {
	for _, s := range samples {
		l = math.Max(l, math.Abs(s[0]))
		r = math.Max(r, math.Abs(s[1]))
	}
	return l, r
}

func TestSoundsAreFiniteAndBounded(t *testing.T) {
	tests := []struct {
		name string
		make func() beep.Streamer
		max  time.Duration
	}{
		{"footstep", func() beep.Streamer { return Footstep(rate, 7, 0) }, FootstepDuration},
		{"bump", func() beep.Streamer { return Bump(rate) }, BumpDuration},
		{"menu", func() beep.Streamer { return MenuSelect(rate) }, MenuDuration},
		{"victory", func() beep.Streamer { return Victory(rate) }, 3*VictoryNote + VictoryTail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := rate.N(tt.max)
			out := Render(tt.make(), limit*4)
			require.NotEmpty(t, out)
			assert.LessOrEqual(t, len(out), limit)

			l, r := peak(out)
			assert.Greater(t, l+r, 0.01, "sound is silent")
			assert.LessOrEqual(t, l, 1.0)
			assert.LessOrEqual(t, r, 1.0)
		})
	}
}

func TestMenuSelectLength(t *testing.T) {
	assert.Len(t, Render(MenuSelect(rate), 1<<20), rate.N(MenuDuration))
}

func TestVictoryLength(t *testing.T) {
	want := 3*rate.N(VictoryNote) + rate.N(VictoryTail)
	assert.InDelta(t, want, len(Render(Victory(rate), 1<<20)), 1024)
}

func TestFootstepDeterministic(t *testing.T) {
	a := Render(Footstep(rate, 99, 0.3), 1<<16)
	b := Render(Footstep(rate, 99, 0.3), 1<<16)
	assert.Equal(t, a, b)

	c := Render(Footstep(rate, 100, 0.3), 1<<16)
	assert.NotEqual(t, a, c)
}

func TestFootstepPan(t *testing.T) {
	left := Render(Footstep(rate, 5, -1), 1<<16)
	l, r := peak(left)
	assert.Greater(t, l, 0.01)
	assert.InDelta(t, 0, r, 1e-9)

	right := Render(Footstep(rate, 5, 1), 1<<16)
	l, r = peak(right)
	assert.InDelta(t, 0, l, 1e-9)
	assert.Greater(t, r, 0.01)
}

func TestAmbienceIsEndless(t *testing.T) {
	s := Ambience(rate, 3)
	out := Render(s, 10000)
	assert.Len(t, out, 10000)

	more := Render(s, 500)
	assert.Len(t, more, 500)

	l, r := peak(out)
	assert.Greater(t, l, 0.01)
	assert.Greater(t, r, 0.01)
	assert.LessOrEqual(t, l, 1.0)
	assert.LessOrEqual(t, r, 1.0)
}

func TestEnvelope(t *testing.T) {
	osc := NewOscillator(0, time.Second, WaveSquare, rate, 0)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	out := Render(env, 1<<20)
	require.Len(t, out, rate.N(100*time.Millisecond))

	// Zero-frequency square is a constant 1, so the envelope shows through.
	assert.Equal(t, 0.0, out[0][0])
	assert.Equal(t, 1.0, out[len(out)/2][0])
	assert.Less(t, out[len(out)-1][0], 0.01)
}

func TestRenderStopsAtMax(t *testing.T) {
	osc := NewOscillator(440, -1, WaveSine, rate, 0)
	assert.Len(t, Render(osc, 777), 777)
}

func TestSoftSat(t *testing.T) {
	for _, x := range []float64{-10, -1.5, -1, -0.3, 0, 0.4, 1, 2, 50} {
		y := softSat(x)
		assert.LessOrEqual(t, math.Abs(y), 1.0)
		assert.Equal(t, math.Signbit(x), math.Signbit(y), "x=%v", x)
	}
}
