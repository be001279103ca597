// Package audio plays the scene's weather ambience: a rain wash that fades
// with the weather and thunder rolls on rainy nights.
package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/oto/v2"

	"cityrain/internal/scene"
)

const (
	rainDayGain   = 0.55
	rainNightGain = 0.7
	thunderGain   = 0.9
	fadeSeconds   = 1.5

	thunderChance = 1.0 / 600 // per followed tick on a rainy night
	thunderMinSec = 2.5
	thunderMaxSec = 5.0
)

// Ambience is a beep.Streamer. The simulation goroutine steers it through
// Follow and the world's event bus; the device goroutine pulls samples.
type Ambience struct {
	mu    sync.Mutex
	mixer beep.Mixer
	rain  *effects.Volume
	level float64

	target atomic.Uint64 // math.Float64bits of the wanted rain gain
	master float64

	raining bool
	night   bool
	seed    uint64
	rolls   int

	logger *log.Logger
	player oto.Player
}

func NewAmbience(volume float64, seed uint64, logger *log.Logger) *Ambience {
	if logger == nil {
		logger = log.Default()
	}
	a := &Ambience{
		master: volume,
		seed:   seed ^ 0xA0D10 | 1,
		logger: logger,
	}
	a.rain = newVolume(newHiss(seed), 0)
	a.mixer.Add(a.rain)
	return a
}

// Attach keeps the rain state in step with the world's edge events.
func (a *Ambience) Attach(bus *scene.EventBus) {
	if a == nil || bus == nil {
		return
	}
	bus.Subscribe(scene.EventRainChanged, func(e scene.Event) {
		a.raining = e.Data != 0
		a.retarget()
		a.logger.Debug("ambience rain", "on", a.raining)
	})
	bus.Subscribe(scene.EventDayModeChanged, func(e scene.Event) {
		a.night = scene.DayMode(e.Data) == scene.Night
		a.retarget()
	})
}

// Follow syncs with the world once per tick and rolls thunder on rainy
// nights.
func (a *Ambience) Follow(w *scene.World) {
	if a == nil || w == nil {
		return
	}
	a.raining = w.Raining
	a.night = w.Mode() == scene.Night
	a.retarget()

	if !a.raining || !a.night {
		return
	}
	if (lcg(&a.seed)+1)/2 >= thunderChance {
		return
	}
	u := (lcg(&a.seed) + 1) / 2
	roll := newThunder(a.seed, thunderMinSec+u*(thunderMaxSec-thunderMinSec))
	a.mu.Lock()
	a.mixer.Add(newVolume(roll, a.master*thunderGain))
	a.rolls++
	a.mu.Unlock()
	a.logger.Debug("thunder", "roll", a.rolls)
}

func (a *Ambience) retarget() {
	g := 0.0
	if a.raining {
		g = rainDayGain
		if a.night {
			g = rainNightGain
		}
	}
	a.target.Store(math.Float64bits(g * a.master))
}

// Target is the rain gain the stream is easing toward.
func (a *Ambience) Target() float64 {
	return math.Float64frombits(a.target.Load())
}

// Level is the rain gain currently applied.
func (a *Ambience) Level() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

func (a *Ambience) Rolls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rolls
}

func (a *Ambience) Stream(samples [][2]float64) (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	step := float64(len(samples)) / float64(SampleRate) / fadeSeconds
	target := a.Target()
	switch {
	case a.level < target:
		a.level = min(a.level+step, target)
	case a.level > target:
		a.level = max(a.level-step, target)
	}
	setGain(a.rain, a.level)
	return a.mixer.Stream(samples)
}

func (a *Ambience) Err() error { return nil }
