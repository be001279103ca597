// Package gfx is the desktop backend: a GLFW window with an OpenGL 4.1
// canvas driven at a fixed tick.
package gfx

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cityrain/internal/scene"
)

const statsEvery = 600 // ticks between debug frame stats

type App struct {
	window   *glfw.Window
	renderer *Renderer
	batch    *batch
	world    *scene.World
	comp     *scene.Compositor
	logger   *log.Logger

	fbW, fbH int
	period   time.Duration
	dt       float64

	// OnTick runs after every simulation step, before drawing.
	OnTick func(w *scene.World)
}

// Open creates the window and GL state. It locks the calling goroutine to
// its OS thread; call Run from the same goroutine.
func Open(w *scene.World, comp *scene.Compositor, frameMS int, logger *log.Logger) (*App, error) {
	runtime.LockOSThread()

	window, err := initWindow(int(w.Bounds.ViewW), int(w.Bounds.ViewH))
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bg := scene.Palette.Letterbox
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	a := &App{
		window:   window,
		renderer: rend,
		batch:    newBatch(),
		world:    w,
		comp:     comp,
		logger:   logger,
		period:   time.Duration(frameMS) * time.Millisecond,
		dt:       float64(frameMS) / 1000.0,
	}
	a.fbW, a.fbH = window.GetFramebufferSize()
	a.bindInput()
	logger.Info("window ready", "width", int(w.Bounds.ViewW), "height", int(w.Bounds.ViewH), "gl", gl.GoStr(gl.GetString(gl.VERSION)))
	return a, nil
}

func (a *App) Close() {
	a.renderer.Destroy()
	a.window.Destroy()
	glfw.Terminate()
}

// Run steps the world once per period with a constant dt, draws, and swaps
// buffers until the window closes, the world quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	next := time.Now()
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		glfw.PollEvents()
		a.world.Tick(a.dt)
		if a.OnTick != nil {
			a.OnTick(a.world)
		}
		if a.world.Quit() {
			a.logger.Info("quit requested", "ticks", a.world.Ticks())
			return nil
		}
		a.draw()
		a.window.SwapBuffers()

		if t := a.world.Ticks(); t%statsEvery == 0 {
			st := a.world.Stats()
			a.logger.Debug("frame", "tick", t, "mode", st.Mode, "phase", st.Phase,
				"splashes", st.Splashes, "stopped", st.Stopped, "waiting", st.Waiting,
				"vertices", a.batch.vertexCount(), "calls", len(a.batch.calls))
		}

		next = next.Add(a.period)
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		} else {
			// Running behind: do not try to catch up with a burst of ticks.
			next = time.Now()
		}
	}
	return nil
}

func (a *App) draw() {
	if a.fbW <= 0 || a.fbH <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(a.fbW), int32(a.fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	b := a.world.Bounds
	a.batch.reset()
	a.comp.RenderFrame(a.batch, a.world)
	proj := mgl32.Ortho2D(0, float32(b.ViewW), 0, float32(b.ViewH))
	pointSize := float32(a.fbW) / float32(b.ViewW)
	a.renderer.Flush(a.batch, proj, max(pointSize, 1))
}
