package synth

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameAt(buf []byte, i int) (float32, float32) {
	l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8+4:]))
	return l, r
}

func TestEncodeF32(t *testing.T) {
	buf := EncodeF32([][2]float64{{0.5, -0.25}, {2, -3}, {0, 0}})
	require.Len(t, buf, 3*BytesPerFrame)

	l, r := frameAt(buf, 0)
	assert.Equal(t, float32(0.5), l)
	assert.Equal(t, float32(-0.25), r)

	l, r = frameAt(buf, 1)
	assert.Equal(t, float32(1), l, "clamped")
	assert.Equal(t, float32(-1), r, "clamped")
}

func TestStreamReaderDrains(t *testing.T) {
	want := Render(MenuSelect(rate), 1<<20)
	data, err := io.ReadAll(NewStreamReader(MenuSelect(rate)))
	require.NoError(t, err)
	require.Len(t, data, len(want)*BytesPerFrame)

	for _, i := range []int{0, 100, len(want) / 2, len(want) - 1} {
		l, r := frameAt(data, i)
		assert.InDelta(t, want[i][0], l, 1e-6)
		assert.InDelta(t, want[i][1], r, 1e-6)
	}
}

func TestStreamReaderSmallBuffers(t *testing.T) {
	r := NewStreamReader(Ambience(rate, 9))

	n, err := r.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Zero(t, n)

	n, err = r.Read(make([]byte, 8*3+5))
	assert.NoError(t, err)
	assert.Equal(t, 8*3, n)

	n, err = r.Read(make([]byte, 1<<20))
	assert.NoError(t, err)
	assert.Equal(t, 1024*BytesPerFrame, n)
}
