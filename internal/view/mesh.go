// Package view holds the device-free pieces of the front-ends: meshes,
// procedural textures, the bitmap font atlas, HUD text and the menu model.
package view

import "mazerunner/internal/maze"

// Vertex layout shared by every mesh: position(3) normal(3) uv(2).
const FloatsPerVertex = 8

// WallHeight is the wall height in cell units.
const WallHeight = 1.0

// Cube returns a unit cube spanning [0,1] on every axis as 36 vertices,
// counter-clockwise when seen from outside.
func Cube() []float32 {
	type face struct {
		n       [3]float32
		corners [4][3]float32 // bottom-left, bottom-right, top-right, top-left
	}
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},  // +z
		{[3]float32{0, 0, -1}, [4][3]float32{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}}, // -z
		{[3]float32{1, 0, 0}, [4][3]float32{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},  // +x
		{[3]float32{-1, 0, 0}, [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}}, // -x
		{[3]float32{0, 1, 0}, [4][3]float32{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}},  // +y
		{[3]float32{0, -1, 0}, [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}}, // -y
	}
	uv := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	order := [6]int{0, 1, 2, 0, 2, 3}

	out := make([]float32, 0, 36*FloatsPerVertex)
	for _, f := range faces {
		for _, i := range order {
			c := f.corners[i]
			out = append(out, c[0], c[1], c[2], f.n[0], f.n[1], f.n[2], uv[i][0], uv[i][1])
		}
	}
	return out
}

// FloorQuad is a w x d rectangle at y=0 facing up, with the texture
// repeating once per tile world units.
func FloorQuad(w, d, tile float32) []float32 {
	u, v := w/tile, d/tile
	return []float32{
		0, 0, 0, 0, 1, 0, 0, 0,
		0, 0, d, 0, 1, 0, 0, v,
		w, 0, d, 0, 1, 0, u, v,
		0, 0, 0, 0, 1, 0, 0, 0,
		w, 0, d, 0, 1, 0, u, v,
		w, 0, 0, 0, 1, 0, u, 0,
	}
}

// WallInstances returns the world-space minimum corner (x, 0, z) of every
// wall cell, three floats per wall. Scaling the unit cube by cellSize at
// these offsets reproduces the collision boxes exactly.
func WallInstances(g *maze.Grid, cellSize float64) []float32 {
	out := make([]float32, 0, (g.Width*g.Height-g.OpenCount())*3)
	for z := 0; z < g.Height; z++ {
		for x := 0; x < g.Width; x++ {
			if g.IsWall(x, z) {
				out = append(out, float32(float64(x)*cellSize), 0, float32(float64(z)*cellSize))
			}
		}
	}
	return out
}
