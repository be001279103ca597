package scene

type EventType int

const (
	// Commands, pushed by the platform and drained at the end of a tick.
	EventToggleRain EventType = iota
	EventFastForwardSun
	EventToggleAutoCamera
	EventToggleCinematic
	EventRespawnPeople
	EventRespawnVehicles
	EventZoomIn
	EventZoomOut
	EventPanLeft
	EventPanRight
	EventQuit

	// Notifications, emitted by the world on its bus.
	EventDayModeChanged
	EventLightPhaseChanged
	EventRainChanged
)

var eventNames = [...]string{
	EventToggleRain:        "toggle-rain",
	EventFastForwardSun:    "fast-forward-sun",
	EventToggleAutoCamera:  "toggle-auto-camera",
	EventToggleCinematic:   "toggle-cinematic",
	EventRespawnPeople:     "respawn-people",
	EventRespawnVehicles:   "respawn-vehicles",
	EventZoomIn:            "zoom-in",
	EventZoomOut:           "zoom-out",
	EventPanLeft:           "pan-left",
	EventPanRight:          "pan-right",
	EventQuit:              "quit",
	EventDayModeChanged:    "day-mode-changed",
	EventLightPhaseChanged: "light-phase-changed",
	EventRainChanged:       "rain-changed",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Data int // Generic payload (e.g. the new DayMode or LightPhase).
}

// KeyEvent maps a typed character to its command.
func KeyEvent(r rune) (Event, bool) {
	switch r {
	case 'r', 'R':
		return Event{Type: EventToggleRain}, true
	case 'd', 'D':
		return Event{Type: EventFastForwardSun}, true
	case 't', 'T':
		return Event{Type: EventToggleAutoCamera}, true
	case 'c', 'C':
		return Event{Type: EventToggleCinematic}, true
	case 'p', 'P':
		return Event{Type: EventRespawnPeople}, true
	case 'b', 'B':
		return Event{Type: EventRespawnVehicles}, true
	case '+', '=':
		return Event{Type: EventZoomIn}, true
	case '-', '_':
		return Event{Type: EventZoomOut}, true
	case 27: // Esc
		return Event{Type: EventQuit}, true
	}
	return Event{}, false
}

// ArrowEvent maps a horizontal arrow: dir < 0 is left, dir > 0 right.
func ArrowEvent(dir int) (Event, bool) {
	switch {
	case dir < 0:
		return Event{Type: EventPanLeft}, true
	case dir > 0:
		return Event{Type: EventPanRight}, true
	}
	return Event{}, false
}

// EventQueue buffers commands between ticks.
type EventQueue struct {
	pending []Event
}

func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
}

func (q *EventQueue) Len() int { return len(q.pending) }

// Drain hands every queued event to fn in arrival order and empties the
// queue. Events pushed by fn are kept for the next drain.
func (q *EventQueue) Drain(fn func(Event)) {
	batch := q.pending
	q.pending = nil
	for _, e := range batch {
		fn(e)
	}
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
