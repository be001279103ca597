package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const letterboxSlide = 0.6 // seconds

// Overlay holds the screen-space post effects. The letterbox bars slide
// in and out instead of popping when cinematic mode toggles.
type Overlay struct {
	Cinematic bool
	Bloom     bool
	Grain     bool

	barH     float64 // full bar height
	barCur   float64
	barTween *gween.Tween
}

func NewOverlay(cinematic, bloom, grain bool, barH float64) Overlay {
	o := Overlay{Cinematic: cinematic, Bloom: bloom, Grain: grain, barH: barH}
	if cinematic {
		o.barCur = barH
	}
	return o
}

// SetCinematic starts a slide toward the new state.
func (o *Overlay) SetCinematic(on bool) {
	if o.Cinematic == on && o.barTween == nil {
		return
	}
	o.Cinematic = on
	end := 0.0
	fn := ease.InCubic
	if on {
		end = o.barH
		fn = ease.OutCubic
	}
	o.barTween = gween.New(float32(o.barCur), float32(end), letterboxSlide, fn)
}

func (o *Overlay) Update(dt float64) {
	if o.barTween == nil || dt <= 0 {
		return
	}
	v, done := o.barTween.Update(float32(dt))
	o.barCur = float64(v)
	if done {
		o.barTween = nil
	}
}

// LetterboxHeight is the current bar height in pixels.
func (o *Overlay) LetterboxHeight() float64 { return o.barCur }

// GrainAlpha is the speckle strength for the given time of day.
func GrainAlpha(mode DayMode) float32 {
	if mode == Night {
		return 0.06
	}
	return 0.02
}
