package scene

import (
	"testing"

	"cityrain/internal/config"
)

func TestWorldDeterministic(t *testing.T) {
	a, b := testWorld(1234), testWorld(1234)
	for i := 0; i < 200; i++ {
		a.Tick(tickDT)
		b.Tick(tickDT)
	}
	if a.Stats() != b.Stats() {
		t.Fatalf("stats differ:\n%+v\n%+v", a.Stats(), b.Stats())
	}
	for i := range a.Weather.Drops {
		if a.Weather.Drops[i] != b.Weather.Drops[i] {
			t.Fatalf("drop %d differs", i)
		}
	}
	for i := range a.Traffic.Vehicles {
		if a.Traffic.Vehicles[i] != b.Traffic.Vehicles[i] {
			t.Fatalf("vehicle %d differs", i)
		}
	}
	for i := range a.People.People {
		if a.People.People[i] != b.People.People[i] {
			t.Fatalf("person %d differs", i)
		}
	}
}

func TestWorldScenarioBounds(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, 77)
	worldW := w.Bounds.WorldW()
	for tick := 0; tick < 100; tick++ {
		w.Tick(cfg.FrameSeconds())
		for i, d := range w.Weather.Drops {
			if d.Y < w.Bounds.GroundY || d.Y > w.Bounds.ViewH {
				t.Fatalf("tick %d: drop %d at y=%v outside [%v, %v]", tick, i, d.Y, w.Bounds.GroundY, w.Bounds.ViewH)
			}
		}
		if n := len(w.Weather.Splashes); n > cfg.Rain.MaxSplashes {
			t.Fatalf("tick %d: %d splashes over cap", tick, n)
		}
		for i, s := range w.Weather.Splashes {
			if s.Life <= 0 || s.Life > 1 {
				t.Fatalf("tick %d: splash %d life %v", tick, i, s.Life)
			}
		}
		for i, v := range w.Traffic.Vehicles {
			if v.X < -vehicleMargin || v.X > worldW+vehicleMargin {
				t.Fatalf("tick %d: vehicle %d at %v", tick, i, v.X)
			}
			if v.Speed < 0 {
				t.Fatalf("tick %d: vehicle %d negative speed", tick, i)
			}
		}
		for i, p := range w.People.People {
			if p.X < -personWrapOut || p.X > worldW+personWrapOut {
				t.Fatalf("tick %d: person %d at %v", tick, i, p.X)
			}
		}
		if w.Camera.Zoom < cfg.Camera.ZoomMin || w.Camera.Zoom > cfg.Camera.ZoomMax {
			t.Fatalf("tick %d: zoom %v", tick, w.Camera.Zoom)
		}
		if w.Sun.Angle < 0 || w.Sun.Angle >= 6.283185307179586 {
			t.Fatalf("tick %d: sun angle %v", tick, w.Sun.Angle)
		}
	}
	if w.Ticks() != 100 {
		t.Errorf("Ticks = %d, want 100", w.Ticks())
	}
}

func TestWorldRainToggleAppliesNextTick(t *testing.T) {
	w := testWorld(5)
	w.Push(Event{Type: EventToggleRain})
	if !w.Raining {
		t.Fatal("toggle applied before the tick")
	}
	before := append([]Drop(nil), w.Weather.Drops...)
	w.Tick(tickDT)
	if w.Raining {
		t.Fatal("rain still on after the tick drained the toggle")
	}
	moved := false
	for i := range before {
		if before[i] != w.Weather.Drops[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("drops frozen during the tick that carried the toggle")
	}

	frozen := append([]Drop(nil), w.Weather.Drops...)
	w.Tick(tickDT)
	for i := range frozen {
		if frozen[i] != w.Weather.Drops[i] {
			t.Fatalf("drop %d moved while rain is off", i)
		}
	}
}

func TestWorldInputEvents(t *testing.T) {
	w := testWorld(5)
	angle := w.Sun.Angle
	w.Push(Event{Type: EventFastForwardSun})
	w.Tick(tickDT)
	want := angle + tickDT*SunRate + SunFastForward
	if !approxEqual(w.Sun.Angle, want, 1e-9) {
		t.Errorf("sun angle = %v, want %v", w.Sun.Angle, want)
	}

	w.Push(Event{Type: EventToggleAutoCamera})
	w.Tick(tickDT)
	if w.Camera.Auto {
		t.Fatal("auto camera still on")
	}
	tx, tz := w.Camera.TargetX, w.Camera.TargetZoom
	w.Push(Event{Type: EventPanRight})
	w.Push(Event{Type: EventZoomIn})
	w.Tick(tickDT)
	if !approxEqual(w.Camera.TargetX, tx+CameraPanStep, epsilon) {
		t.Errorf("TargetX = %v, want %v", w.Camera.TargetX, tx+CameraPanStep)
	}
	if !approxEqual(w.Camera.TargetZoom, tz+ZoomStep, epsilon) {
		t.Errorf("TargetZoom = %v, want %v", w.Camera.TargetZoom, tz+ZoomStep)
	}

	w.Push(Event{Type: EventQuit})
	if w.Quit() {
		t.Fatal("quit before the tick")
	}
	if w.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", w.Pending())
	}
	w.Tick(tickDT)
	if !w.Quit() {
		t.Error("Quit() = false after quit event")
	}
}

func TestWorldRespawnEvents(t *testing.T) {
	w := testWorld(8)
	w.People.People = w.People.People[:2]
	w.Traffic.Vehicles = w.Traffic.Vehicles[:1]
	w.Push(Event{Type: EventRespawnPeople})
	w.Push(Event{Type: EventRespawnVehicles})
	w.Tick(tickDT)
	if len(w.People.People) != 18 {
		t.Errorf("people = %d, want 18", len(w.People.People))
	}
	if len(w.Traffic.Vehicles) != 16 {
		t.Errorf("vehicles = %d, want 16", len(w.Traffic.Vehicles))
	}
}

func TestWorldBusNotifications(t *testing.T) {
	w := testWorld(3)
	var modes []int
	var rain []int
	w.Bus.Subscribe(EventDayModeChanged, func(e Event) { modes = append(modes, e.Data) })
	w.Bus.Subscribe(EventRainChanged, func(e Event) { rain = append(rain, e.Data) })

	// 0.9 rad is day; two fast-forwards land past the night threshold.
	w.Push(Event{Type: EventFastForwardSun})
	w.Tick(tickDT)
	w.Push(Event{Type: EventFastForwardSun})
	w.Tick(tickDT)
	if len(modes) != 1 || DayMode(modes[0]) != Night {
		t.Errorf("day mode events = %v, want [night]", modes)
	}

	w.Push(Event{Type: EventToggleRain})
	w.Tick(tickDT)
	if len(rain) != 1 || rain[0] != 0 {
		t.Errorf("rain events = %v, want [0]", rain)
	}
}

func TestWorldResize(t *testing.T) {
	w := testWorld(3)
	w.Resize(0, 500)
	if w.Bounds.ViewW != 1280 {
		t.Errorf("zero width accepted: ViewW = %v", w.Bounds.ViewW)
	}
	w.Resize(1600, 900)
	if w.Bounds.ViewW != 1600 || w.Bounds.ViewH != 900 {
		t.Errorf("Bounds = %+v, want 1600x900", *w.Bounds)
	}
	if w.Weather.bounds != w.Bounds || w.Traffic.bounds != w.Bounds || w.People.bounds != w.Bounds {
		t.Error("systems do not share the world bounds")
	}
	w.Tick(tickDT)
}

func TestWorldResizeShortWindowKeepsRainAboveGround(t *testing.T) {
	w := testWorld(42)
	w.Resize(1280, 200)
	if w.Bounds.ViewH != config.MinHeight {
		t.Fatalf("ViewH = %v, want %v", w.Bounds.ViewH, config.MinHeight)
	}
	w.Resize(100, 500)
	if w.Bounds.ViewW != config.MinWidth {
		t.Errorf("ViewW = %v, want %v", w.Bounds.ViewW, config.MinWidth)
	}
	w.Resize(1280, 200)
	for tick := 0; tick < 300; tick++ {
		w.Tick(0.016)
		for i, d := range w.Weather.Drops {
			if d.Y < w.Bounds.GroundY {
				t.Fatalf("tick %d: drop %d at y=%v below ground", tick, i, d.Y)
			}
		}
	}
}

func TestWorldNilAndZeroDT(t *testing.T) {
	var nw *World
	nw.Tick(tickDT)

	w := testWorld(3)
	w.Tick(0)
	w.Tick(-1)
	if w.Ticks() != 0 || w.SimTime != 0 {
		t.Errorf("ticks = %d simTime = %v after non-positive dt", w.Ticks(), w.SimTime)
	}
}

func TestWorldTimeScale(t *testing.T) {
	cfg := config.Default()
	cfg.TimeScale = 2
	w := NewWorld(cfg, 1)
	w.Tick(0.5)
	if w.SimTime != 1 {
		t.Errorf("SimTime = %v, want 1", w.SimTime)
	}
}
