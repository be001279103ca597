package scene

import "testing"

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key  rune
		want EventType
	}{
		{'r', EventToggleRain},
		{'R', EventToggleRain},
		{'d', EventFastForwardSun},
		{'t', EventToggleAutoCamera},
		{'c', EventToggleCinematic},
		{'p', EventRespawnPeople},
		{'b', EventRespawnVehicles},
		{'+', EventZoomIn},
		{'=', EventZoomIn},
		{'-', EventZoomOut},
		{27, EventQuit},
	}
	for _, tt := range tests {
		e, ok := KeyEvent(tt.key)
		if !ok || e.Type != tt.want {
			t.Errorf("KeyEvent(%q) = %v, %v; want %v", tt.key, e.Type, ok, tt.want)
		}
	}
	if _, ok := KeyEvent('x'); ok {
		t.Error("KeyEvent('x') mapped, want unmapped")
	}
}

func TestArrowEvent(t *testing.T) {
	if e, ok := ArrowEvent(-1); !ok || e.Type != EventPanLeft {
		t.Errorf("ArrowEvent(-1) = %v, %v", e.Type, ok)
	}
	if e, ok := ArrowEvent(1); !ok || e.Type != EventPanRight {
		t.Errorf("ArrowEvent(1) = %v, %v", e.Type, ok)
	}
	if _, ok := ArrowEvent(0); ok {
		t.Error("ArrowEvent(0) mapped")
	}
}

func TestEventQueueDrainOrder(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventZoomIn})
	q.Push(Event{Type: EventZoomOut})
	q.Push(Event{Type: EventQuit})

	var got []EventType
	q.Drain(func(e Event) {
		got = append(got, e.Type)
		if e.Type == EventZoomIn {
			q.Push(Event{Type: EventPanLeft})
		}
	})
	want := []EventType{EventZoomIn, EventZoomOut, EventQuit}
	if len(got) != len(want) {
		t.Fatalf("drained %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if q.Len() != 1 {
		t.Errorf("queue len = %d, want the event pushed during drain", q.Len())
	}
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	bus.Subscribe(EventRainChanged, func(e Event) { calls += e.Data })
	bus.Subscribe(EventRainChanged, func(e Event) { calls += 10 * e.Data })
	bus.Emit(Event{Type: EventRainChanged, Data: 1})
	bus.Emit(Event{Type: EventDayModeChanged, Data: 1})
	if calls != 11 {
		t.Errorf("calls = %d, want 11", calls)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventToggleRain.String() != "toggle-rain" {
		t.Errorf("String() = %q", EventToggleRain.String())
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("String() = %q, want unknown", EventType(999).String())
	}
}
