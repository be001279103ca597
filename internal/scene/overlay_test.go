package scene

import "testing"

func TestOverlayLetterboxSlides(t *testing.T) {
	o := NewOverlay(true, true, true, 40)
	if o.LetterboxHeight() != 40 {
		t.Fatalf("initial height = %v, want 40", o.LetterboxHeight())
	}

	o.SetCinematic(false)
	o.Update(letterboxSlide / 2)
	if h := o.LetterboxHeight(); h <= 0 || h >= 40 {
		t.Errorf("mid-slide height = %v, want (0,40)", h)
	}
	o.Update(letterboxSlide)
	if h := o.LetterboxHeight(); h != 0 {
		t.Errorf("height after slide = %v, want 0", h)
	}

	o.SetCinematic(true)
	for i := 0; i < 60; i++ {
		o.Update(tickDT)
	}
	if h := o.LetterboxHeight(); h != 40 {
		t.Errorf("height after slide in = %v, want 40", h)
	}
	if !o.Cinematic {
		t.Error("Cinematic = false after SetCinematic(true)")
	}
}

func TestOverlayReverseMidSlide(t *testing.T) {
	o := NewOverlay(true, false, false, 40)
	o.SetCinematic(false)
	o.Update(letterboxSlide / 3)
	mid := o.LetterboxHeight()
	o.SetCinematic(true)
	o.Update(tickDT)
	if h := o.LetterboxHeight(); h < mid {
		t.Errorf("reversed slide went %v -> %v, want rising", mid, h)
	}
}

func TestGrainAlpha(t *testing.T) {
	if GrainAlpha(Night) <= GrainAlpha(Day) {
		t.Errorf("night grain %v not stronger than day %v", GrainAlpha(Night), GrainAlpha(Day))
	}
}
