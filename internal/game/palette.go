package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as 0..1 components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Fog       RGB
	Lantern   RGB
	Beacon    RGB
	Text      RGB
	TextDim   RGB
	Title     RGB
	Highlight RGB
	Good      RGB
	Warn      RGB
}{
	Fog:       RGB{R: 8, G: 9, B: 14},
	Lantern:   RGB{R: 255, G: 214, B: 160},
	Beacon:    RGB{R: 120, G: 255, B: 150},
	Text:      RGB{R: 235, G: 235, B: 235},
	TextDim:   RGB{R: 140, G: 140, B: 150},
	Title:     RGB{R: 255, G: 200, B: 90},
	Highlight: RGB{R: 100, G: 255, B: 100},
	Good:      RGB{R: 120, G: 255, B: 150},
	Warn:      RGB{R: 255, G: 120, B: 80},
}
