package scene

const (
	skyBands    = 8
	sunRadius   = 26.0
	bloomRings  = 6
	bloomStep   = 6.0
	cloudPuffs  = 5
	cloudAlpha  = 0.6
	moonShading = 0.55
)

// drawSky paints the gradient between the ground line and the top of the
// viewport, then the sun or moon disc with its bloom.
func (cp *Compositor) drawSky(c Canvas, w *World) {
	b := w.Bounds
	dp := w.Sun.DayPhase()
	zenith := Palette.ZenithNight.Colorful().BlendRgb(Palette.ZenithDay.Colorful(), dp)
	horizon := Palette.SkyHorizon.Colorful()

	c.SetBlend(BlendOpaque)
	span := b.ViewH - b.GroundY
	for i := 0; i < skyBands; i++ {
		t := float64(i) / skyBands
		y0 := b.GroundY + float64(i)*span/skyBands
		y1 := b.GroundY + float64(i+1)*span/skyBands
		c.FillRect(0, f32(y0), f32(b.WorldW()), f32(y1-y0), fromColorful(horizon.BlendRgb(zenith, t), 1))
	}

	cx, cy := w.Sun.ScreenPos(b.ViewW, b.ViewH)
	core := Palette.SunCore
	if w.Sun.Mode() == Night {
		core = fromColorful(Palette.MoonCore.Colorful().BlendLab(Palette.ZenithNight.Colorful(), 1-moonShading), 1)
	}
	c.FillCircle(f32(cx), f32(cy), sunRadius, core)

	if !w.Overlay.Bloom {
		return
	}
	c.SetBlend(BlendAdditive)
	for k := 1; k <= bloomRings; k++ {
		a := float32(0.08 * (1 - float64(k)/8))
		c.FillCircle(f32(cx), f32(cy), f32(sunRadius+float64(k)*bloomStep), core.WithAlpha(a))
	}
}

func (cp *Compositor) drawCloudsBack(c Canvas, w *World) {
	cp.drawClouds(c, w, false)
}

func (cp *Compositor) drawCloudsFront(c Canvas, w *World) {
	cp.drawClouds(c, w, true)
}

// drawClouds renders either the far or the near cloud layer as clusters of
// overlapping translucent puffs.
func (cp *Compositor) drawClouds(c Canvas, w *World, front bool) {
	c.SetBlend(BlendAlpha)
	for _, cl := range w.Weather.Clouds {
		if (cl.Depth >= CloudFrontDepth) != front {
			continue
		}
		base := cloudAlpha * cl.Depth
		for k := 0; k < cloudPuffs; k++ {
			ox := float64(k-2) * cl.Size * 0.18
			oy := 6.0
			if k%2 != 0 {
				oy = -6
			}
			r := cl.Size*0.42 + float64(k)*4
			a := base * (1 - float64(k)*0.08)
			c.FillCircle(f32(cl.X+ox), f32(cl.Y+oy), f32(r), Palette.Cloud.WithAlpha(f32(a)))
		}
	}
}
