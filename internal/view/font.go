package view

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII 32..127 in a 16 x 6 grid.
const (
	FontFirst = 32
	FontLast  = 126
	FontCols  = 16
	FontRows  = 6
)

// FontAtlas is a white-on-transparent glyph sheet for batched text quads.
type FontAtlas struct {
	Image *image.NRGBA
	CellW int
	CellH int
}

// NewFontAtlas rasterises basicfont.Face7x13 into an atlas image.
func NewFontAtlas() *FontAtlas {
	face := basicfont.Face7x13
	cw, ch := face.Advance, face.Height
	img := image.NewNRGBA(image.Rect(0, 0, cw*FontCols, ch*FontRows))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := FontFirst; c <= FontLast; c++ {
		i := c - FontFirst
		col, row := i%FontCols, i/FontCols
		d.Dot = fixed.P(col*cw, row*ch+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return &FontAtlas{Image: img, CellW: cw, CellH: ch}
}

// UV returns the texture rectangle of ch, or false when the atlas has no
// glyph for it.
func (a *FontAtlas) UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < FontFirst || ch > FontLast {
		return 0, 0, 0, 0, false
	}
	i := int(ch) - FontFirst
	col, row := i%FontCols, i/FontCols
	w := float32(a.Image.Bounds().Dx())
	h := float32(a.Image.Bounds().Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1, true
}

// TextWidth returns the pixel width of the widest line of text at scale.
func (a *FontAtlas) TextWidth(text string, scale float32) int {
	lineLen, maxLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLen {
				maxLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLen {
		maxLen = lineLen
	}
	return int(float32(maxLen*a.CellW) * scale)
}
