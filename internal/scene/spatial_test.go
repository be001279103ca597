package scene

import (
	"slices"
	"testing"
)

func TestSkylineQueryMatchesScan(t *testing.T) {
	r := NewRand(4)
	rects := make([]RectF, 300)
	for i := range rects {
		x, y := r.RangeF(0, 2000), r.RangeF(0, 800)
		rects[i] = RectF{X0: x, Y0: y, X1: x + r.RangeF(5, 400), Y1: y + r.RangeF(5, 300)}
	}
	ix := newSkylineIndex(rects)

	views := []RectF{
		{X0: 0, Y0: 0, X1: 640, Y1: 780},
		{X0: 900, Y0: 100, X1: 1100, Y1: 300},
		{X0: -500, Y0: 0, X1: -10, Y1: 800},
		{X0: 3000, Y0: 0, X1: 3100, Y1: 10},
	}
	for _, v := range views {
		var got []int
		ix.Query(v, &got)
		slices.Sort(got)
		var want []int
		for i, rc := range rects {
			if rc.Intersects(v) {
				want = append(want, i)
			}
		}
		if !slices.Equal(got, want) {
			t.Errorf("Query(%v) = %d ids, want %d", v, len(got), len(want))
		}
	}
}

func TestSkylineQueryEmpty(t *testing.T) {
	var got []int
	newSkylineIndex(nil).Query(RectF{X1: 100, Y1: 100}, &got)
	if len(got) != 0 {
		t.Errorf("empty index returned %v", got)
	}
}

func TestViewRect(t *testing.T) {
	c := NewCamera(false, 0.5, 2)
	c.PanX = 100
	v := c.ViewRect(800, 600)
	if v.X0 != 100 || v.X1 != 900 || v.Y0 != 0 || v.Y1 != 600 {
		t.Errorf("ViewRect at zoom 1 = %+v", v)
	}
	c.Zoom = 2
	v = c.ViewRect(800, 600)
	if v.X0 != 300 || v.X1 != 700 || v.Y0 != 150 || v.Y1 != 450 {
		t.Errorf("ViewRect at zoom 2 = %+v", v)
	}
}

func TestCullSkipsOffscreenBuildings(t *testing.T) {
	w := testWorld(21)
	w.Camera.Auto = false
	w.Camera.PanX = 0
	w.Camera.Zoom = 1
	cp := NewCompositor(21)
	cp.RenderFrame(&recordingCanvas{}, w)

	if len(cp.visible) == 0 || len(cp.visible) >= len(w.Buildings) {
		t.Fatalf("visible = %d of %d buildings", len(cp.visible), len(w.Buildings))
	}
	if !slices.IsSorted(cp.visible) {
		t.Error("visible buildings out of skyline order")
	}
	view := w.Camera.ViewRect(w.Bounds.ViewW, w.Bounds.ViewH)
	for i := range w.Buildings {
		on := buildingSpan(&w.Buildings[i], w.Bounds.GroundY).Intersects(view)
		if on != slices.Contains(cp.visible, i) {
			t.Errorf("building %d visible = %v, want %v", i, !on, on)
		}
	}
}

func TestCullRebuildsOnNewCity(t *testing.T) {
	w := testWorld(5)
	cp := NewCompositor(5)
	cp.RenderFrame(&recordingCanvas{}, w)
	first := cp.city

	w.Buildings = BuildCity(NewRand(99), w.Bounds.ViewW, w.Bounds.GroundY)
	cp.RenderFrame(&recordingCanvas{}, w)
	if cp.city == first {
		t.Error("index not rebuilt for a new skyline")
	}
	for _, i := range cp.visible {
		if i >= len(w.Buildings) {
			t.Fatalf("stale building id %d", i)
		}
	}
}
