package scene

const (
	windowRowStep  = 22
	windowColStep  = 18
	windowLitDay   = 9  // 1 in N windows of a bright building is lit
	windowLitNight = 18 // extra 1 in N lit at night

	reflectionPasses = 3
	reflectionFade   = 0.35
	roadAlpha        = 0.6

	poleW, poleH   = 12.0, 60.0
	poleBase       = 90.0
	indicatorY     = 180.0
	indicatorR     = 5.0
	antennaHeight  = 30.0
	steppedRoofH   = 14.0
	steppedRoofPad = 0.2
)

var puddles = [...]struct{ X, Y, R float32 }{
	{260, 120, 48},
	{620, 118, 78},
	{980, 118, 44},
}

// drawBuildings paints the visible sun-shaded fronts, roofs and window lights.
// Window lights are re-rolled every frame, which reads as flicker.
func (cp *Compositor) drawBuildings(c Canvas, w *World) {
	night := w.Sun.Mode() == Night
	for _, i := range cp.visible {
		b := &w.Buildings[i]
		front := w.Sun.Shade(b.Base, 0, 0, 1)

		c.SetBlend(BlendOpaque)
		c.FillRect(f32(b.X), f32(b.Y), f32(b.W), f32(b.H), front)
		top := b.Y + b.H
		switch b.Roof {
		case RoofStepped:
			c.FillRect(f32(b.X+b.W*steppedRoofPad), f32(top), f32(b.W*(1-2*steppedRoofPad)), steppedRoofH, front.Scale(0.85))
		case RoofAntenna:
			mid := f32(b.X + b.W*0.5)
			c.Line(mid, f32(top), mid, f32(top+antennaHeight), Palette.Pole)
			c.Point(mid, f32(top+antennaHeight), Palette.LightStop)
		}

		for wy := 12.0; wy < b.H; wy += windowRowStep {
			for wx := 10.0; wx < b.W; wx += windowColStep {
				lit := b.BrightWindows && cp.rng.Intn(windowLitDay) == 0
				if night {
					lit = lit || cp.rng.Intn(windowLitNight) == 0
				}
				col := Palette.WindowDim
				if lit {
					col = Palette.WindowLit
				}
				c.Point(f32(b.X+wx), f32(b.Y+wy), col)
			}
		}
	}
}

// drawReflections mirrors every visible building below the ground line in several
// fading passes, which reads as a soft wet-street blur.
func (cp *Compositor) drawReflections(c Canvas, w *World) {
	c.SetBlend(BlendAlpha)
	ground := w.Bounds.GroundY
	for pass := 0; pass < reflectionPasses; pass++ {
		alpha := 0.25 / (1 + float64(pass)*0.8)
		for _, i := range cp.visible {
			b := &w.Buildings[i]
			col := b.Base.Scale(0.5).WithAlpha(f32(alpha * reflectionFade))
			c.FillRect(f32(b.X), f32(ground-b.H), f32(b.W), f32(b.H), col)
		}
	}
}

func (cp *Compositor) drawPuddles(c Canvas, w *World) {
	c.SetBlend(BlendOpaque)
	for _, p := range puddles {
		c.FillCircle(p.X, p.Y, p.R, Palette.Puddle)
	}
}

// drawRoad lays the asphalt bands. The asphalt is translucent so the
// reflections, puddles and splashes beneath it stay visible.
func (cp *Compositor) drawRoad(c Canvas, w *World) {
	ww := f32(w.Bounds.WorldW())
	ground := f32(w.Bounds.GroundY)

	c.SetBlend(BlendAlpha)
	c.FillRect(0, 0, ww, ground, Palette.Asphalt.WithAlpha(roadAlpha))
	c.SetBlend(BlendOpaque)
	c.FillRect(0, ground, ww, 22, Palette.Curb)
	c.SetBlend(BlendAlpha)
	c.FillRect(0, 40, ww, 100, Palette.Lane.WithAlpha(roadAlpha))
	c.FillRect(0, 58, ww, 18, Palette.Sheen)
}

func phaseColor(p LightPhase) Color {
	switch p {
	case PhaseStop:
		return Palette.LightStop
	case PhaseCaution:
		return Palette.LightWarn
	default:
		return Palette.LightGo
	}
}

func (cp *Compositor) drawTrafficLights(c Canvas, w *World) {
	c.SetBlend(BlendOpaque)
	lamp := phaseColor(w.Sun.Phase())
	for _, s := range w.Traffic.Sites {
		x := f32(s.X)
		c.FillRect(x-poleW/2, poleBase, poleW, poleH, Palette.Pole)
		c.FillCircle(x, indicatorY, indicatorR, lamp)
	}
}
