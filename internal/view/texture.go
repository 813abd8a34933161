package view

import (
	"image"
	"image/color"

	"mazerunner/internal/maze"
)

// BrickTexture paints a running-bond brick wall with per-brick tint and
// mortar lines. size must be a multiple of 16.
func BrickTexture(size int, seed uint64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	rng := maze.NewRand(seed)

	rows := 8
	bh := size / rows
	bw := size / 4
	mortar := color.NRGBA{R: 150, G: 144, B: 132, A: 255}

	tints := make([]int, rows*5)
	for i := range tints {
		tints[i] = rng.Intn(40) - 20
	}

	for y := 0; y < size; y++ {
		row := y / bh
		offset := 0
		if row%2 == 1 {
			offset = bw / 2
		}
		for x := 0; x < size; x++ {
			bx := (x + offset) % size
			col := (x + offset) / bw
			if y%bh == 0 || bx%bw == 0 {
				img.SetNRGBA(x, y, mortar)
				continue
			}
			t := tints[row*5+col]
			grain := rng.Intn(18) - 9
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampU8(150 + t + grain),
				G: clampU8(66 + t/2 + grain),
				B: clampU8(48 + t/3 + grain),
				A: 255,
			})
		}
	}
	return img
}

// FloorTexture paints worn flagstones.
func FloorTexture(size int, seed uint64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	rng := maze.NewRand(seed)
	tile := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			edge := x%tile == 0 || y%tile == 0
			base := 92
			if (x/tile+y/tile)%2 == 1 {
				base = 84
			}
			if edge {
				base = 52
			}
			n := rng.Intn(14) - 7
			v := clampU8(base + n)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: clampU8(base + n - 4), B: clampU8(base + n - 10), A: 255})
		}
	}
	return img
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
