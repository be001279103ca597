package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	CameraBlend   = 0.02 // fraction of the residual closed per tick
	CameraPanStep = 40.0
	ZoomStep      = 0.08

	sweepRate  = 0.03 // timeline cycles per second
	sweepSpan  = 0.8  // fraction of the viewport width covered by a sweep
	zoomRate   = 0.2
	zoomWobble = 0.06
)

// Camera is a smoothed horizontal pan plus zoom. Current values chase the
// targets with a first-order low-pass.
type Camera struct {
	PanX, Zoom          float64
	TargetX, TargetZoom float64
	Auto                bool
	ZoomMin, ZoomMax    float64
}

func NewCamera(auto bool, zoomMin, zoomMax float64) Camera {
	return Camera{
		Zoom:       1,
		TargetZoom: 1,
		Auto:       auto,
		ZoomMin:    zoomMin,
		ZoomMax:    zoomMax,
	}
}

// Update recomputes timeline targets in auto mode, clamps the zoom target
// and blends toward both targets.
func (c *Camera) Update(dt, simTime, viewW float64) {
	if c == nil || dt <= 0 {
		return
	}
	if c.Auto {
		cycle := math.Mod(simTime*sweepRate, 1.0)
		c.TargetX = (math.Sin(cycle*2*math.Pi)*0.5 + 0.5) * viewW * sweepSpan
		c.TargetZoom = 1 + zoomWobble*math.Sin(simTime*zoomRate)
	}
	c.TargetZoom = clampF(c.TargetZoom, c.ZoomMin, c.ZoomMax)
	c.PanX += (c.TargetX - c.PanX) * CameraBlend
	c.Zoom += (c.TargetZoom - c.Zoom) * CameraBlend
}

// PanBy shifts the manual target; ignored while the timeline drives.
func (c *Camera) PanBy(dx, viewW float64) {
	if c.Auto {
		return
	}
	c.TargetX = clampF(c.TargetX+dx, 0, viewW)
}

func (c *Camera) ZoomBy(dz float64) {
	c.TargetZoom = clampF(c.TargetZoom+dz, c.ZoomMin, c.ZoomMax)
}

// View is the world-to-viewport transform: zoom about the viewport centre,
// then pan.
func (c *Camera) View(viewW, viewH float64) mgl32.Mat4 {
	hw, hh := float32(viewW*0.5), float32(viewH*0.5)
	z := float32(c.Zoom)
	return mgl32.Translate3D(hw, hh, 0).
		Mul4(mgl32.Scale3D(z, z, 1)).
		Mul4(mgl32.Translate3D(-hw-float32(c.PanX), -hh, 0))
}
