package synth

import (
	"io"
	"math"

	"github.com/gopxl/beep"
)

// BytesPerFrame is one stereo float32 frame.
const BytesPerFrame = 8

// EncodeF32 converts samples to interleaved float32 little-endian stereo,
// clamped to [-1,1].
func EncodeF32(samples [][2]float64) []byte {
	buf := make([]byte, len(samples)*BytesPerFrame)
	for i, s := range samples {
		putStereoF32LR(buf, i, clampF(s[0], -1, 1), clampF(s[1], -1, 1))
	}
	return buf
}

// putStereoF32LR writes independent left/right samples in [-1,1] at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// StreamReader adapts a streamer to the float32 stereo byte stream an
// output device pulls. It returns io.EOF once the streamer is drained.
type StreamReader struct {
	s    beep.Streamer
	tmp  [][2]float64
	done bool
}

func NewStreamReader(s beep.Streamer) *StreamReader {
	return &StreamReader{s: s, tmp: make([][2]float64, 1024)}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	frames := len(p) / BytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if frames > len(r.tmp) {
		frames = len(r.tmp)
	}
	n, ok := r.s.Stream(r.tmp[:frames])
	for i := 0; i < n; i++ {
		putStereoF32LR(p, i, clampF(r.tmp[i][0], -1, 1), clampF(r.tmp[i][1], -1, 1))
	}
	if !ok || n == 0 {
		r.done = true
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n * BytesPerFrame, nil
}
