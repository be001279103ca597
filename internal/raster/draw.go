package raster

import (
	"math"

	"cityrain/internal/scene"
)

func (f *Framebuffer) Point(x, y float32, c scene.Color) {
	px, py := f.project(x, y)
	f.plot(int(math.Floor(float64(px))), int(math.Floor(float64(py))), c)
}

// Line rasterises with a DDA walk along the major axis.
func (f *Framebuffer) Line(x0, y0, x1, y1 float32, c scene.Color) {
	ax, ay := f.project(x0, y0)
	bx, by := f.project(x1, y1)
	dx, dy := float64(bx-ax), float64(by-ay)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		f.plot(int(math.Floor(float64(ax))), int(math.Floor(float64(ay))), c)
		return
	}
	// Cap work for lines that run far off screen.
	if limit := 4 * (f.W + f.H); steps > limit {
		steps = limit
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	x, y := float64(ax), float64(ay)
	for i := 0; i <= steps; i++ {
		f.plot(int(math.Floor(x)), int(math.Floor(y)), c)
		x += sx
		y += sy
	}
}

// FillRect fills the axis-aligned box spanned by the transformed corners.
func (f *Framebuffer) FillRect(x, y, w, h float32, c scene.Color) {
	ax, ay := f.project(x, y)
	bx, by := f.project(x+w, y+h)
	x0, x1 := int(math.Round(float64(min(ax, bx)))), int(math.Round(float64(max(ax, bx))))
	y0, y1 := int(math.Round(float64(min(ay, by)))), int(math.Round(float64(max(ay, by))))
	y0, y1 = max(y0, 0), min(y1, f.H)
	for row := y0; row < y1; row++ {
		f.span(x0, x1, row, c)
	}
}

// FillCircle fills scanline spans of the transformed circle, an ellipse
// under a non-uniform scale. Each pixel is written once, so alpha and
// additive fills do not double up on overlapping rows.
func (f *Framebuffer) FillCircle(cx, cy, r float32, c scene.Color) {
	px, py := f.project(cx, cy)
	sx, sy := f.scale()
	rx, ry := float64(r)*sx, float64(r)*sy
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := max(int(math.Floor(float64(py)-ry)), 0)
	y1 := min(int(math.Ceil(float64(py)+ry)), f.H-1)
	for row := y0; row <= y1; row++ {
		dy := (float64(row) + 0.5 - float64(py)) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		f.span(int(math.Round(float64(px)-half)), int(math.Round(float64(px)+half)), row, c)
	}
}
