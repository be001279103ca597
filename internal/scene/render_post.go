package scene

const (
	grainCandidates = 900
	grainKeepPct    = 55
)

// drawLetterbox paints the top and bottom bars at the overlay's current
// (tweened) height.
func (cp *Compositor) drawLetterbox(c Canvas, w *World) {
	h := w.Overlay.LetterboxHeight()
	if h < 1 {
		return
	}
	vw, vh := f32(w.Bounds.ViewW), f32(w.Bounds.ViewH)
	c.SetBlend(BlendOpaque)
	c.FillRect(0, vh-f32(h), vw, f32(h), Palette.Letterbox)
	c.FillRect(0, 0, vw, f32(h), Palette.Letterbox)
}

// drawGrain scatters dark speckles over the whole viewport; nights are
// grainier than days.
func (cp *Compositor) drawGrain(c Canvas, w *World) {
	if !w.Overlay.Cinematic || !w.Overlay.Grain {
		return
	}
	col := Palette.Grain.WithAlpha(GrainAlpha(w.Sun.Mode()))
	vw, vh := int(w.Bounds.ViewW), int(w.Bounds.ViewH)
	c.SetBlend(BlendAlpha)
	for i := 0; i < grainCandidates; i++ {
		x := cp.rng.Intn(vw)
		y := cp.rng.Intn(vh)
		if cp.rng.Intn(100) < grainKeepPct {
			c.Point(float32(x), float32(y), col)
		}
	}
}
