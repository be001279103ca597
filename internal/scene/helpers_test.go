package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cityrain/internal/config"
)

const (
	epsilon = 1e-9
	tickDT  = 1.0 / 60.0
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func testBounds() *Bounds {
	return &Bounds{ViewW: 1280, ViewH: 780, GroundY: config.GroundY}
}

type prim struct {
	kind  string
	layer Layer
	depth int
	blend BlendMode
	col   Color
	x, y  float32
}

// recordingCanvas captures every call so tests can assert on layer order,
// transform nesting and primitive counts.
type recordingCanvas struct {
	layers []Layer
	prims  []prim
	cur    Layer
	depth  int
	pushes int
	blend  BlendMode
}

func (r *recordingCanvas) add(kind string, x, y float32, c Color) {
	r.prims = append(r.prims, prim{kind: kind, layer: r.cur, depth: r.depth, blend: r.blend, col: c, x: x, y: y})
}

func (r *recordingCanvas) Point(x, y float32, c Color) { r.add("point", x, y, c) }
func (r *recordingCanvas) Line(x0, y0, x1, y1 float32, c Color) { r.add("line", x0, y0, c) }
func (r *recordingCanvas) FillRect(x, y, w, h float32, c Color) { r.add("rect", x, y, c) }
func (r *recordingCanvas) FillCircle(cx, cy, rr float32, c Color) { r.add("circle", cx, cy, c) }
func (r *recordingCanvas) SetBlend(m BlendMode) { r.blend = m }
func (r *recordingCanvas) PopTransform() { r.depth-- }

func (r *recordingCanvas) PushTransform(mgl32.Mat4) {
	r.depth++
	r.pushes++
}

func (r *recordingCanvas) BeginLayer(l Layer) {
	r.cur = l
	r.layers = append(r.layers, l)
}

func (r *recordingCanvas) inLayer(l Layer) []prim {
	var out []prim
	for _, p := range r.prims {
		if p.layer == l {
			out = append(out, p)
		}
	}
	return out
}

func testWorld(seed uint64) *World {
	return NewWorld(config.Default(), seed)
}
