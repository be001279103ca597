package gfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cityrain/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uProj      int32
	uPointSize int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(colorVertSrc, colorFragSrc)
	if err != nil {
		return nil, fmt.Errorf("color program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uPointSize = gl.GetUniformLocation(prog, gl.Str("uPointSize\x00"))
	return r, nil
}

func glMode(p primitive) uint32 {
	switch p {
	case primLines:
		return gl.LINES
	case primPoints:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

func setBlend(m scene.BlendMode) {
	switch m {
	case scene.BlendOpaque:
		gl.Disable(gl.BLEND)
	case scene.BlendAdditive:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	default:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

// Flush uploads the frame's vertices once and replays the draw calls in
// recording order, switching blend state between runs.
func (r *Renderer) Flush(b *batch, proj mgl32.Mat4, pointSize float32) {
	if len(b.verts) == 0 {
		return
	}
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.Uniform1f(r.uPointSize, pointSize)

	gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*4, gl.Ptr(b.verts), gl.STREAM_DRAW)
	for _, c := range b.calls {
		setBlend(c.blend)
		gl.DrawArrays(glMode(c.prim), c.first, c.count)
	}
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}
