package scene

import "math"

const (
	splashRingSteps = 80
	splashAlpha     = 0.6

	headlightSlices = 8
	headlightLen    = 36.0
	trailRects      = 5
	trailW, trailH  = 18.0, 6.0

	headRadius = 6.0
	swingRate  = 6.0
	swingAmp   = 8.0
)

// drawSplashes renders each splash as a squashed ring of points.
func (cp *Compositor) drawSplashes(c Canvas, w *World) {
	c.SetBlend(BlendAlpha)
	for _, s := range w.Weather.Splashes {
		col := Palette.Splash.WithAlpha(f32(s.Life * splashAlpha))
		for i := 0; i < splashRingSteps; i++ {
			th := 2 * math.Pi * float64(i) / splashRingSteps
			c.Point(f32(s.X+s.Radius*math.Cos(th)), f32(s.Y+s.Radius*0.5*math.Sin(th)), col)
		}
	}
}

func bodyColor(k VehicleKind) Color {
	if k == Bike {
		return Palette.BikeBody
	}
	return Palette.CarBody
}

func (cp *Compositor) drawVehicles(c Canvas, w *World) {
	cinematic := w.Overlay.Cinematic
	for i := range w.Traffic.Vehicles {
		v := &w.Traffic.Vehicles[i]
		tu := v.tuning()
		dir := float64(v.Dir)

		if cinematic {
			c.SetBlend(BlendAlpha)
			for k := 1; k <= trailRects; k++ {
				a := 0.08 * (1 - float64(k)*0.12)
				dx := -dir * float64(k) * v.Speed * 6
				c.FillRect(f32(v.X+dx), f32(v.Y+8), trailW, trailH, Palette.Trail.WithAlpha(f32(a)))
			}
		}

		c.SetBlend(BlendOpaque)
		c.FillRect(f32(v.X), f32(v.Y), f32(tu.bodyW), f32(tu.bodyH), bodyColor(v.Kind))
		c.FillCircle(f32(v.X+tu.bodyW*0.2), f32(v.Y-6), f32(tu.wheelR), Palette.Wheel)
		c.FillCircle(f32(v.X+tu.bodyW*0.8), f32(v.Y-6), f32(tu.wheelR), Palette.Wheel)

		// Headlight cone: slices widen and fade away from the nose.
		c.SetBlend(BlendAdditive)
		coneH := tu.bodyH - 8
		for k := 0; k < headlightSlices; k++ {
			a := 0.08 * (1 - float64(k)/headlightSlices)
			x := v.X + tu.bodyW + float64(k)*6
			if v.Dir < 0 {
				x = v.X - headlightLen - float64(k)*6
			}
			c.FillRect(f32(x), f32(v.Y+4), headlightLen, f32(coneH+float64(k)*2), Palette.Headlight.WithAlpha(f32(a)))
		}
	}
}

// drawPedestrians draws stick figures whose limbs swing with sim time.
func (cp *Compositor) drawPedestrians(c Canvas, w *World) {
	c.SetBlend(BlendOpaque)
	for i := range w.People.People {
		p := &w.People.People[i]
		swing := math.Sin(w.SimTime*swingRate+p.Phase) * swingAmp
		dir := float64(p.Dir)
		x, y := f32(p.X), f32(p.Y)
		arm := f32(swing * 0.6 * dir)
		leg := f32(swing * 0.9 * dir)

		c.FillCircle(x, y+18, headRadius, Palette.Skin)
		c.Line(x, y+12, x, y-8, Palette.Clothes)
		c.Line(x, y+6, x+arm, y+2, Palette.Clothes)
		c.Line(x, y+6, x-arm, y+2, Palette.Clothes)
		c.Line(x, y-8, x+leg, y-20, Palette.Clothes)
		c.Line(x, y-8, x-leg, y-20, Palette.Clothes)
	}
}

// drawRain streaks every drop along its velocity. Near-horizontal drops
// have no usable trail and are drawn as a point.
func (cp *Compositor) drawRain(c Canvas, w *World) {
	if !w.Raining {
		return
	}
	c.SetBlend(BlendOpaque)
	for i := range w.Weather.Drops {
		d := w.Weather.Drops[i]
		if !d.Alive {
			continue
		}
		x2, y2, ok := d.Trail()
		if !ok {
			c.Point(f32(d.X), f32(d.Y), Palette.Rain)
			continue
		}
		c.Line(f32(d.X), f32(d.Y), f32(x2), f32(y2), Palette.Rain)
	}
}
