// Package term renders the scene into a terminal with tcell, two pixels per
// cell using the upper half block.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"cityrain/internal/raster"
	"cityrain/internal/scene"
)

const halfBlock = '▀'

type App struct {
	screen tcell.Screen
	world  *scene.World
	comp   *scene.Compositor
	fb     *raster.Framebuffer
	logger *log.Logger

	period time.Duration
	dt     float64

	// OnTick runs after every simulation step, before drawing.
	OnTick func(w *scene.World)
}

// Open creates and initialises the terminal screen.
func Open(w *scene.World, comp *scene.Compositor, frameMS int, logger *log.Logger) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal screen: %w", err)
	}
	return New(screen, w, comp, frameMS, logger), nil
}

// New wraps an already initialised screen.
func New(screen tcell.Screen, w *scene.World, comp *scene.Compositor, frameMS int, logger *log.Logger) *App {
	a := &App{
		screen: screen,
		world:  w,
		comp:   comp,
		logger: logger,
		period: time.Duration(frameMS) * time.Millisecond,
		dt:     float64(frameMS) / 1000.0,
	}
	cols, rows := screen.Size()
	a.fb = raster.New(cols, rows*2)
	a.logger.Info("terminal ready", "cols", cols, "rows", rows)
	return a
}

// Run drives the fixed-period loop until the world quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Fini()

	ticker := time.NewTicker(a.period)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			a.handle(ev)
		case <-ticker.C:
			a.Step()
			if a.world.Quit() {
				a.logger.Info("quit requested", "ticks", a.world.Ticks())
				return nil
			}
		}
	}
}

// Step advances one tick and repaints the screen.
func (a *App) Step() {
	a.world.Tick(a.dt)
	if a.OnTick != nil {
		a.OnTick(a.world)
	}
	a.draw()
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := keyToEvent(ev.Key(), ev.Rune()); ok {
			a.world.Push(e)
		}
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := ev.Size()
		a.fb.Resize(cols, rows*2)
		a.logger.Debug("terminal resized", "cols", cols, "rows", rows)
	}
}

func keyToEvent(k tcell.Key, r rune) (scene.Event, bool) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return scene.Event{Type: scene.EventQuit}, true
	case tcell.KeyLeft:
		return scene.ArrowEvent(-1)
	case tcell.KeyRight:
		return scene.ArrowEvent(1)
	case tcell.KeyRune:
		return scene.KeyEvent(r)
	}
	return scene.Event{}, false
}

// fitTransform maps the logical viewport onto the framebuffer.
func fitTransform(viewW, viewH float64, fbW, fbH int) mgl32.Mat4 {
	return mgl32.Scale3D(float32(float64(fbW)/viewW), float32(float64(fbH)/viewH), 1)
}

func (a *App) draw() {
	b := a.world.Bounds
	a.fb.Begin(scene.Palette.Letterbox)
	a.fb.PushTransform(fitTransform(b.ViewW, b.ViewH, a.fb.W, a.fb.H))
	a.comp.RenderFrame(a.fb, a.world)
	a.fb.PopTransform()
	blit(a.screen, a.fb)
	a.screen.Show()
}

type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

func rgb(c scene.Color) tcell.Color {
	return tcell.NewRGBColor(int32(to255(c.R)), int32(to255(c.G)), int32(to255(c.B)))
}

func to255(v float32) int {
	return int(min(max(v, 0), 1)*255 + 0.5)
}

// blit packs two framebuffer rows into each terminal row: the top pixel is
// the foreground of the half block, the bottom pixel its background.
func blit(s cellSetter, fb *raster.Framebuffer) {
	rows := fb.H / 2
	for r := 0; r < rows; r++ {
		top := fb.H - 1 - 2*r
		for x := 0; x < fb.W; x++ {
			style := tcell.StyleDefault.
				Foreground(rgb(fb.At(x, top))).
				Background(rgb(fb.At(x, top-1)))
			s.SetContent(x, r, halfBlock, nil, style)
		}
	}
}
