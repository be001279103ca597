package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cityrain/internal/scene"
)

type primitive uint8

const (
	primTriangles primitive = iota
	primLines
	primPoints
)

// floatsPerVertex: x, y, r, g, b, a.
const floatsPerVertex = 6

// drawCall is a run of vertices sharing a primitive type and blend mode.
type drawCall struct {
	prim  primitive
	blend scene.BlendMode
	first int32
	count int32
}

// batch implements scene.Canvas by collecting transformed, coloured
// vertices for one frame. The renderer uploads it in a single buffer.
type batch struct {
	verts []float32
	calls []drawCall
	blend scene.BlendMode

	xf    mgl32.Mat4
	stack []mgl32.Mat4
}

func newBatch() *batch {
	return &batch{xf: mgl32.Ident4(), blend: scene.BlendOpaque}
}

func (b *batch) reset() {
	b.verts = b.verts[:0]
	b.calls = b.calls[:0]
	b.blend = scene.BlendOpaque
	b.xf = mgl32.Ident4()
	b.stack = b.stack[:0]
}

func (b *batch) vertexCount() int32 { return int32(len(b.verts) / floatsPerVertex) }

func (b *batch) begin(p primitive) {
	if n := len(b.calls); n > 0 {
		last := &b.calls[n-1]
		if last.prim == p && last.blend == b.blend {
			return
		}
	}
	b.calls = append(b.calls, drawCall{prim: p, blend: b.blend, first: b.vertexCount()})
}

func (b *batch) vertex(x, y float32, c scene.Color) {
	v := b.xf.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	b.verts = append(b.verts, v.X(), v.Y(), c.R, c.G, c.B, c.A)
	b.calls[len(b.calls)-1].count++
}

func (b *batch) SetBlend(m scene.BlendMode) { b.blend = m }

func (b *batch) PushTransform(m mgl32.Mat4) {
	b.stack = append(b.stack, b.xf)
	b.xf = b.xf.Mul4(m)
}

func (b *batch) PopTransform() {
	n := len(b.stack)
	if n == 0 {
		b.xf = mgl32.Ident4()
		return
	}
	b.xf = b.stack[n-1]
	b.stack = b.stack[:n-1]
}

func (b *batch) Point(x, y float32, c scene.Color) {
	b.begin(primPoints)
	b.vertex(x, y, c)
}

func (b *batch) Line(x0, y0, x1, y1 float32, c scene.Color) {
	b.begin(primLines)
	b.vertex(x0, y0, c)
	b.vertex(x1, y1, c)
}

func (b *batch) FillRect(x, y, w, h float32, c scene.Color) {
	b.begin(primTriangles)
	b.vertex(x, y, c)
	b.vertex(x+w, y, c)
	b.vertex(x+w, y+h, c)
	b.vertex(x, y, c)
	b.vertex(x+w, y+h, c)
	b.vertex(x, y+h, c)
}

// circleSegments picks a tessellation from the on-screen radius.
func (b *batch) circleSegments(r float32) int {
	screenR := float64(r) * math.Hypot(float64(b.xf[0]), float64(b.xf[1]))
	return min(max(int(screenR/2), 12), 48)
}

func (b *batch) FillCircle(cx, cy, r float32, c scene.Color) {
	if r <= 0 {
		return
	}
	n := b.circleSegments(r)
	b.begin(primTriangles)
	step := 2 * math.Pi / float64(n)
	px, py := cx+r, cy
	for i := 1; i <= n; i++ {
		s, co := math.Sincos(step * float64(i))
		qx, qy := cx+r*float32(co), cy+r*float32(s)
		b.vertex(cx, cy, c)
		b.vertex(px, py, c)
		b.vertex(qx, qy, c)
		px, py = qx, qy
	}
}
