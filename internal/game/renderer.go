package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"mazerunner/internal/maze"
	"mazerunner/internal/player"
	"mazerunner/internal/view"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Lit scene program: walls (instanced cubes) and floor.
	sceneProg uint32
	cubeVAO   uint32
	cubeVBO   uint32
	wallVBO   uint32 // per-instance wall offsets
	wallCount int32
	floorVAO  uint32
	floorVBO  uint32
	originVBO uint32 // single zero offset for non-instanced meshes

	uView, uProj, uScale, uTexScale      int32
	uViewPos, uLanternPos, uLanternColor int32
	uBeaconPos, uBeaconColor, uAmbient   int32
	uFalloff, uFogColor, uFogDist, uTex  int32

	// Lamp program for the exit beacon.
	lampProg   uint32
	lampUModel int32
	lampUView  int32
	lampUProj  int32
	lampUColor int32

	brickTex uint32
	floorTex uint32

	cellSize float64
	exit     maze.Point

	// Font/text rendering.
	font         *view.FontAtlas
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	sceneProg, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	lampProg, err := linkProgram(lampVertSrc, lampFragSrc)
	if err != nil {
		gl.DeleteProgram(sceneProg)
		return nil, fmt.Errorf("lamp program: %w", err)
	}

	r := &Renderer{sceneProg: sceneProg, lampProg: lampProg}

	// Cube VAO: interleaved pos/normal/uv plus the instanced offset stream.
	cube := view.Cube()
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.GenBuffers(1, &r.wallVBO)
	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cube)*4, gl.Ptr(cube), gl.STATIC_DRAW)
	meshAttribs()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wallVBO)
	offsetAttrib()

	// Floor VAO shares the layout; its offset stream is a single zero.
	origin := []float32{0, 0, 0}
	gl.GenVertexArrays(1, &r.floorVAO)
	gl.GenBuffers(1, &r.floorVBO)
	gl.GenBuffers(1, &r.originVBO)
	gl.BindVertexArray(r.floorVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.floorVBO)
	meshAttribs()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.originVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(origin)*4, gl.Ptr(origin), gl.STATIC_DRAW)
	offsetAttrib()
	gl.BindVertexArray(0)

	gl.UseProgram(sceneProg)
	r.uView = uniform(sceneProg, "uView")
	r.uProj = uniform(sceneProg, "uProj")
	r.uScale = uniform(sceneProg, "uScale")
	r.uTexScale = uniform(sceneProg, "uTexScale")
	r.uViewPos = uniform(sceneProg, "uViewPos")
	r.uLanternPos = uniform(sceneProg, "uLanternPos")
	r.uLanternColor = uniform(sceneProg, "uLanternColor")
	r.uBeaconPos = uniform(sceneProg, "uBeaconPos")
	r.uBeaconColor = uniform(sceneProg, "uBeaconColor")
	r.uAmbient = uniform(sceneProg, "uAmbient")
	r.uFalloff = uniform(sceneProg, "uFalloff")
	r.uFogColor = uniform(sceneProg, "uFogColor")
	r.uFogDist = uniform(sceneProg, "uFogDist")
	r.uTex = uniform(sceneProg, "uTex")
	gl.Uniform1i(r.uTex, 0)

	gl.UseProgram(lampProg)
	r.lampUModel = uniform(lampProg, "uModel")
	r.lampUView = uniform(lampProg, "uView")
	r.lampUProj = uniform(lampProg, "uProj")
	r.lampUColor = uniform(lampProg, "uColor")

	r.brickTex = uploadTexture(view.BrickTexture(TextureSize, 0xB41C), true)
	r.floorTex = uploadTexture(view.FloorTexture(TextureSize, 0xF100), true)
	return r, nil
}

// meshAttribs describes the pos/normal/uv layout of the bound ARRAY_BUFFER.
func meshAttribs() {
	stride := int32(view.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2) // aUV
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(6*4))
}

// offsetAttrib binds the bound ARRAY_BUFFER as the per-instance offset.
func offsetAttrib() {
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, 3*4, glOffset(0))
	gl.VertexAttribDivisor(3, 1)
}

func uploadTexture(img *image.NRGBA, repeat bool) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	wrap := int32(gl.CLAMP_TO_EDGE)
	if repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return tex
}

// LoadMaze rebuilds the wall instance buffer and floor for a new grid. The
// grid is static for the lifetime of a maze, so this runs once per Start.
func (r *Renderer) LoadMaze(g *maze.Grid, cellSize float64) {
	r.cellSize = cellSize
	r.exit = g.Exit()

	walls := view.WallInstances(g, cellSize)
	r.wallCount = int32(len(walls) / 3)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wallVBO)
	if len(walls) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(walls)*4, gl.Ptr(walls), gl.STATIC_DRAW)
	}

	floor := view.FloorQuad(float32(float64(g.Width)*cellSize), float32(float64(g.Height)*cellSize), float32(cellSize))
	gl.BindBuffer(gl.ARRAY_BUFFER, r.floorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(floor)*4, gl.Ptr(floor), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// beaconPos is the floating light over the exit cell.
func (r *Renderer) beaconPos(now float64) mgl32.Vec3 {
	cs := r.cellSize
	y := (BeaconHeight + 0.08*bob(now, BeaconBobSpeed)) * cs
	return mgl32.Vec3{
		float32((float64(r.exit.X) + 0.5) * cs),
		float32(y),
		float32((float64(r.exit.Z) + 0.5) * cs),
	}
}

// DrawScene renders walls, floor and the exit beacon from the player's eye.
func (r *Renderer) DrawScene(p *player.Player, fbW, fbH int, now float64) {
	if r.cellSize == 0 {
		return
	}
	fr, fg, fb := Palette.Fog.Floats()
	gl.ClearColor(fr, fg, fb, 1)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	cs := float32(r.cellSize)
	viewM := p.ViewMatrix()
	proj := p.Projection(float32(fbW) / float32(fbH))
	eye := p.Eye()
	beacon := r.beaconPos(now)

	gl.UseProgram(r.sceneProg)
	gl.UniformMatrix4fv(r.uView, 1, false, &viewM[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.Uniform3f(r.uViewPos, eye.X(), eye.Y(), eye.Z())
	gl.Uniform3f(r.uLanternPos, eye.X(), eye.Y()+0.1*cs, eye.Z())
	lr, lg, lb := Palette.Lantern.Floats()
	gl.Uniform3f(r.uLanternColor, lr, lg, lb)
	gl.Uniform3f(r.uBeaconPos, beacon.X(), beacon.Y(), beacon.Z())
	br, bg, bb := Palette.Beacon.Floats()
	gl.Uniform3f(r.uBeaconColor, br, bg, bb)
	gl.Uniform1f(r.uAmbient, AmbientLight)
	gl.Uniform1f(r.uFalloff, LightFalloff/(cs*cs))
	gl.Uniform3f(r.uFogColor, fr, fg, fb)
	gl.Uniform1f(r.uFogDist, FogDistance*cs)
	gl.ActiveTexture(gl.TEXTURE0)

	// Walls.
	gl.BindTexture(gl.TEXTURE_2D, r.brickTex)
	gl.Uniform3f(r.uScale, cs, view.WallHeight*cs, cs)
	gl.Uniform1f(r.uTexScale, 1)
	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 36, r.wallCount)

	// Floor.
	gl.BindTexture(gl.TEXTURE_2D, r.floorTex)
	gl.Uniform3f(r.uScale, 1, 1, 1)
	gl.BindVertexArray(r.floorVAO)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, 1)

	// Exit beacon.
	size := BeaconSize * cs
	model := mgl32.Translate3D(beacon.X(), beacon.Y(), beacon.Z()).
		Mul4(mgl32.HomogRotate3DY(float32(now))).
		Mul4(mgl32.Scale3D(size, size, size)).
		Mul4(mgl32.Translate3D(-0.5, -0.5, -0.5))
	gl.UseProgram(r.lampProg)
	gl.UniformMatrix4fv(r.lampUModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.lampUView, 1, false, &viewM[0])
	gl.UniformMatrix4fv(r.lampUProj, 1, false, &proj[0])
	gl.Uniform3f(r.lampUColor, br, bg, bb)
	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)

	gl.BindVertexArray(0)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.wallVBO, r.floorVBO, r.originVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cubeVAO, r.floorVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.sceneProg, r.lampProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.brickTex, r.floorTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}
