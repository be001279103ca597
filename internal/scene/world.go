package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"cityrain/internal/config"
)

// Bounds is the viewport shared by every system. The street itself spans
// two viewport widths.
type Bounds struct {
	ViewW, ViewH float64
	GroundY      float64
}

func (b *Bounds) WorldW() float64 { return 2 * b.ViewW }

// Per-system seed salts, so systems draw independent streams.
const (
	saltCity    = 0x0C17
	saltClouds  = 0xC10D
	saltWeather = 0xCAFE
	saltTraffic = 0xBEEF
	saltPeople  = 0xFEED
)

// World aggregates the whole scene. Nothing in the package is global, so
// several worlds can run side by side.
type World struct {
	Bounds    *Bounds
	Sun       Sun
	Buildings []Building
	Weather   *WeatherSystem
	Traffic   *TrafficSystem
	People    *PedestrianSystem
	Camera    Camera
	Overlay   Overlay
	Bus       *EventBus

	Raining   bool
	SimTime   float64
	TimeScale float64

	events    EventQueue
	quit      bool
	seed      uint64
	ticks     uint64
	lastMode  DayMode
	lastPhase LightPhase
	logger    *log.Logger
}

func NewWorld(cfg config.Config, seed uint64) *World {
	b := &Bounds{
		ViewW:   float64(cfg.Window.Width),
		ViewH:   float64(cfg.Window.Height),
		GroundY: config.GroundY,
	}
	clouds := BuildClouds(NewRand(seed^saltClouds), cfg.Clouds, b.ViewW, b.ViewH)
	weather := NewWeatherSystem(WeatherParams{
		Drops:        cfg.Rain.Particles,
		MaxSplashes:  cfg.Rain.MaxSplashes,
		SplashChance: cfg.Rain.SplashChance,
	}, b, clouds, NewRand(seed^saltWeather))
	w := &World{
		Bounds:    b,
		Sun:       Sun{Angle: SunStartAngle},
		Buildings: BuildCity(NewRand(seed^saltCity), b.ViewW, b.GroundY),
		Weather:   weather,
		Traffic:   NewTrafficSystem(cfg.Traffic.Cars, cfg.Traffic.Bikes, b, NewRand(seed^saltTraffic)),
		People:    NewPedestrianSystem(cfg.People, b, NewRand(seed^saltPeople)),
		Camera:    NewCamera(cfg.Camera.Auto, cfg.Camera.ZoomMin, cfg.Camera.ZoomMax),
		Overlay:   NewOverlay(cfg.Cinematic, cfg.Bloom, cfg.Grain, config.LetterboxHeight),
		Bus:       NewEventBus(),
		Raining:   cfg.Rain.Enabled,
		TimeScale: cfg.TimeScale,
		seed:      seed,
		logger:    log.New(io.Discard),
	}
	w.lastMode = w.Sun.Mode()
	w.lastPhase = w.Sun.Phase()
	return w
}

func (w *World) SetLogger(l *log.Logger) {
	if l != nil {
		w.logger = l
	}
}

// Push queues an input event. It is applied at the end of the next Tick.
func (w *World) Push(e Event) {
	w.events.Push(e)
}

// Tick advances the simulation by one fixed step.
func (w *World) Tick(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.SimTime += dt * w.TimeScale
	w.Sun.Advance(dt, w.TimeScale)
	w.Weather.UpdateClouds(dt)
	if w.Raining {
		w.Weather.Update(dt)
	}
	w.Traffic.Update(dt, w.Sun.Phase())
	w.People.Update(dt, w.Traffic.Sites)
	w.Camera.Update(dt, w.SimTime, w.Bounds.ViewW)
	w.Overlay.Update(dt)
	w.ticks++

	w.events.Drain(w.apply)
	w.notify()
}

func (w *World) apply(e Event) {
	w.logger.Debug("input", "event", e.Type, "tick", w.ticks)
	switch e.Type {
	case EventToggleRain:
		w.Raining = !w.Raining
		data := 0
		if w.Raining {
			data = 1
		}
		w.Bus.Emit(Event{Type: EventRainChanged, Data: data})
	case EventFastForwardSun:
		w.Sun.FastForward(SunFastForward)
	case EventToggleAutoCamera:
		w.Camera.Auto = !w.Camera.Auto
	case EventToggleCinematic:
		w.Overlay.SetCinematic(!w.Overlay.Cinematic)
	case EventRespawnPeople:
		w.People.Respawn()
	case EventRespawnVehicles:
		w.Traffic.Respawn()
	case EventZoomIn:
		w.Camera.ZoomBy(ZoomStep)
	case EventZoomOut:
		w.Camera.ZoomBy(-ZoomStep)
	case EventPanLeft:
		w.Camera.PanBy(-CameraPanStep, w.Bounds.ViewW)
	case EventPanRight:
		w.Camera.PanBy(CameraPanStep, w.Bounds.ViewW)
	case EventQuit:
		w.quit = true
	}
}

// notify emits edge events when the clock crosses a day/night or light
// phase boundary.
func (w *World) notify() {
	if m := w.Sun.Mode(); m != w.lastMode {
		w.lastMode = m
		w.logger.Debug("day mode", "mode", m, "angle", w.Sun.Angle)
		w.Bus.Emit(Event{Type: EventDayModeChanged, Data: int(m)})
	}
	if p := w.Sun.Phase(); p != w.lastPhase {
		w.lastPhase = p
		w.Bus.Emit(Event{Type: EventLightPhaseChanged, Data: int(p)})
	}
}

// Resize adopts a new viewport. Non-positive sizes (minimised windows) are
// ignored; anything else is raised to the configured minimum so the rain
// respawn band stays above the ground line.
func (w *World) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	width = max(width, config.MinWidth)
	height = max(height, config.MinHeight)
	w.Bounds.ViewW = float64(width)
	w.Bounds.ViewH = float64(height)
	w.logger.Debug("resize", "width", width, "height", height)
}

func (w *World) Quit() bool { return w.quit }
func (w *World) Seed() uint64 { return w.seed }
func (w *World) Ticks() uint64 { return w.ticks }
func (w *World) Mode() DayMode { return w.Sun.Mode() }
func (w *World) Phase() LightPhase { return w.Sun.Phase() }
func (w *World) Pending() int { return w.events.Len() }
func (w *World) LightSites() []LightSite { return w.Traffic.Sites }

// Stats is a point-in-time summary for logging.
type Stats struct {
	Ticks    uint64
	SimTime  float64
	Mode     DayMode
	Phase    LightPhase
	Raining  bool
	Drops    int
	Splashes int
	Rejected int
	Vehicles int
	Stopped  int
	People   int
	Waiting  int
}

func (w *World) Stats() Stats {
	return Stats{
		Ticks:    w.ticks,
		SimTime:  w.SimTime,
		Mode:     w.Sun.Mode(),
		Phase:    w.Sun.Phase(),
		Raining:  w.Raining,
		Drops:    len(w.Weather.Drops),
		Splashes: len(w.Weather.Splashes),
		Rejected: w.Weather.Rejected,
		Vehicles: len(w.Traffic.Vehicles),
		Stopped:  w.Traffic.StoppedCount(),
		People:   len(w.People.People),
		Waiting:  w.People.WaitingCount(),
	}
}
