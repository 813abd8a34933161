package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PostFX renders the scene into an offscreen target and composites it with
// the drunk wobble. At zero strength the scene is drawn straight to the
// default framebuffer and the offscreen pass is skipped.
type PostFX struct {
	fbo      uint32
	colorTex uint32
	depthRBO uint32
	width    int32
	height   int32

	prog      uint32
	uScene    int32
	uTime     int32
	uStrength int32
	quadVAO   uint32
	quadVBO   uint32

	Enabled  bool
	strength float64
}

func NewPostFX(width, height int) (*PostFX, error) {
	prog, err := linkProgram(postVertSrc, postFragSrc)
	if err != nil {
		return nil, fmt.Errorf("post program: %w", err)
	}
	p := &PostFX{prog: prog, width: int32(max(width, 1)), height: int32(max(height, 1))}
	gl.UseProgram(prog)
	p.uScene = uniform(prog, "uScene")
	p.uTime = uniform(prog, "uTime")
	p.uStrength = uniform(prog, "uStrength")
	gl.Uniform1i(p.uScene, 1) // texture unit 1

	quad := []float32{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1}
	gl.GenVertexArrays(1, &p.quadVAO)
	gl.GenBuffers(1, &p.quadVBO)
	gl.BindVertexArray(p.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	gl.GenFramebuffers(1, &p.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)

	gl.GenTextures(1, &p.colorTex)
	gl.BindTexture(gl.TEXTURE_2D, p.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, p.width, p.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.colorTex, 0)

	gl.GenRenderbuffers(1, &p.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, p.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, p.width, p.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, p.depthRBO)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		p.Destroy()
		return nil, errors.New("post framebuffer not complete")
	}
	return p, nil
}

// Toggle flips the target; the visible strength fades toward it.
func (p *PostFX) Toggle() { p.Enabled = !p.Enabled }

func (p *PostFX) Update(dt float64) {
	target := 0.0
	if p.Enabled {
		target = 1
	}
	p.strength = approach(p.strength, target, DrunkFade*dt)
}

// Active reports whether the offscreen pass is needed this frame.
func (p *PostFX) Active() bool { return p != nil && p.strength > 0 }

// Resize reallocates the offscreen target when the framebuffer size changes.
func (p *PostFX) Resize(width, height int) {
	w, h := int32(max(width, 1)), int32(max(height, 1))
	if w == p.width && h == p.height {
		return
	}
	p.width, p.height = w, h
	gl.BindTexture(gl.TEXTURE_2D, p.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindRenderbuffer(gl.RENDERBUFFER, p.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, w, h)
}

// Begin redirects drawing to the offscreen target.
func (p *PostFX) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)
}

// End composites the offscreen target onto the default framebuffer.
func (p *PostFX) End(now float64, fbW, fbH int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(p.prog)
	gl.Uniform1f(p.uTime, float32(now))
	gl.Uniform1f(p.uStrength, float32(p.strength))
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, p.colorTex)
	gl.BindVertexArray(p.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (p *PostFX) Destroy() {
	if p.fbo != 0 {
		gl.DeleteFramebuffers(1, &p.fbo)
	}
	if p.colorTex != 0 {
		gl.DeleteTextures(1, &p.colorTex)
	}
	if p.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &p.depthRBO)
	}
	if p.quadVBO != 0 {
		gl.DeleteBuffers(1, &p.quadVBO)
	}
	if p.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &p.quadVAO)
	}
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
	}
}
