// Package raster is a software implementation of scene.Canvas. It backs
// the terminal renderer and headless snapshots.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cityrain/internal/scene"
)

// Framebuffer holds linear RGB pixels with y growing upward, matching the
// scene's coordinate system.
type Framebuffer struct {
	W, H int
	pix  []float32 // 3 floats per pixel, row 0 at the bottom

	blend scene.BlendMode
	xf    mgl32.Mat4
	stack []mgl32.Mat4
}

func New(w, h int) *Framebuffer {
	f := &Framebuffer{xf: mgl32.Ident4(), blend: scene.BlendOpaque}
	f.Resize(w, h)
	return f
}

// Resize reallocates the pixel store. Contents are cleared.
func (f *Framebuffer) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	f.W, f.H = w, h
	if cap(f.pix) >= w*h*3 {
		f.pix = f.pix[:w*h*3]
		clear(f.pix)
		return
	}
	f.pix = make([]float32, w*h*3)
}

// Begin resets per-frame state: clears to c, drops any leftover transforms
// and restores alpha blending.
func (f *Framebuffer) Begin(c scene.Color) {
	for i := 0; i < len(f.pix); i += 3 {
		f.pix[i], f.pix[i+1], f.pix[i+2] = c.R, c.G, c.B
	}
	f.xf = mgl32.Ident4()
	f.stack = f.stack[:0]
	f.blend = scene.BlendOpaque
}

// At returns the pixel at (x, y), y up. Out-of-range reads return black.
func (f *Framebuffer) At(x, y int) scene.Color {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return scene.RGB(0, 0, 0)
	}
	i := (y*f.W + x) * 3
	return scene.RGB(f.pix[i], f.pix[i+1], f.pix[i+2])
}

func (f *Framebuffer) SetBlend(m scene.BlendMode) { f.blend = m }

func (f *Framebuffer) PushTransform(m mgl32.Mat4) {
	f.stack = append(f.stack, f.xf)
	f.xf = f.xf.Mul4(m)
}

func (f *Framebuffer) PopTransform() {
	n := len(f.stack)
	if n == 0 {
		f.xf = mgl32.Ident4()
		return
	}
	f.xf = f.stack[n-1]
	f.stack = f.stack[:n-1]
}

// Depth is the number of transforms currently pushed.
func (f *Framebuffer) Depth() int { return len(f.stack) }

func (f *Framebuffer) project(x, y float32) (float32, float32) {
	v := f.xf.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return v.X(), v.Y()
}

// scale is the length of the transformed x and y unit vectors, used for
// radii. They differ when the viewport is stretched to a cell grid.
func (f *Framebuffer) scale() (sx, sy float64) {
	return math.Hypot(float64(f.xf[0]), float64(f.xf[1])), math.Hypot(float64(f.xf[4]), float64(f.xf[5]))
}

func (f *Framebuffer) plot(x, y int, c scene.Color) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 3
	switch f.blend {
	case scene.BlendOpaque:
		f.pix[i], f.pix[i+1], f.pix[i+2] = c.R, c.G, c.B
	case scene.BlendAdditive:
		f.pix[i] = min(f.pix[i]+c.R*c.A, 1)
		f.pix[i+1] = min(f.pix[i+1]+c.G*c.A, 1)
		f.pix[i+2] = min(f.pix[i+2]+c.B*c.A, 1)
	default:
		k := 1 - c.A
		f.pix[i] = c.R*c.A + f.pix[i]*k
		f.pix[i+1] = c.G*c.A + f.pix[i+1]*k
		f.pix[i+2] = c.B*c.A + f.pix[i+2]*k
	}
}

// span fills pixels [x0, x1) on row y.
func (f *Framebuffer) span(x0, x1, y int, c scene.Color) {
	if y < 0 || y >= f.H {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, f.W)
	for x := x0; x < x1; x++ {
		f.plot(x, y, c)
	}
}

// Image converts to a top-down RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		row := f.H - 1 - y
		for x := 0; x < f.W; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, row, color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255})
		}
	}
	return img
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
