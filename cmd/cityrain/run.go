package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"cityrain/internal/audio"
	"cityrain/internal/config"
	"cityrain/internal/gfx"
	"cityrain/internal/raster"
	"cityrain/internal/scene"
	"cityrain/internal/term"
)

func newScene(cfg config.Config, seed uint64, logger *log.Logger) (*scene.World, *scene.Compositor) {
	w := scene.NewWorld(cfg, seed)
	w.SetLogger(logger)
	logger.Info("world built", "seed", seed, "width", cfg.Window.Width, "height", cfg.Window.Height,
		"buildings", len(w.Buildings), "vehicles", len(w.Traffic.Vehicles), "people", len(w.People.People))
	return w, scene.NewCompositor(seed)
}

// startAudio never fails the run: without a device the scene stays silent.
func startAudio(cfg config.Config, seed uint64, w *scene.World, logger *log.Logger) *audio.Ambience {
	if !cfg.Audio.Enabled {
		return nil
	}
	amb := audio.NewAmbience(cfg.Audio.Volume, seed, logger)
	if err := amb.Start(); err != nil {
		logger.Warn("audio init failed, continuing without sound", "err", err)
		return nil
	}
	amb.Attach(w.Bus)
	return amb
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runWindow(parent context.Context, cfg config.Config, seed uint64, withAudio bool, logger *log.Logger) error {
	ctx, stop := signalContext(parent)
	defer stop()

	w, comp := newScene(cfg, seed, logger)
	app, err := gfx.Open(w, comp, cfg.FrameMS, logger)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer app.Close()

	if withAudio {
		amb := startAudio(cfg, seed, w, logger)
		defer amb.Close()
		app.OnTick = amb.Follow
	}
	return app.Run(ctx)
}

func runTTY(parent context.Context, cfg config.Config, seed uint64, withAudio bool, logger *log.Logger) error {
	ctx, stop := signalContext(parent)
	defer stop()

	w, comp := newScene(cfg, seed, logger)
	app, err := term.Open(w, comp, cfg.FrameMS, logger)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if withAudio {
		amb := startAudio(cfg, seed, w, logger)
		defer amb.Close()
		app.OnTick = amb.Follow
	}
	return app.Run(ctx)
}

func runHeadless(cfg config.Config, seed uint64, ticks int, snapshot string, logger *log.Logger) error {
	if ticks < 0 {
		return fmt.Errorf("ticks %d is negative", ticks)
	}
	w, comp := newScene(cfg, seed, logger)
	dt := cfg.FrameSeconds()
	for i := 0; i < ticks && !w.Quit(); i++ {
		w.Tick(dt)
	}

	st := w.Stats()
	logger.Info("headless run done", "ticks", st.Ticks, "sim_time", st.SimTime, "mode", st.Mode,
		"phase", st.Phase, "raining", st.Raining, "drops", st.Drops, "splashes", st.Splashes,
		"rejected", st.Rejected, "stopped", st.Stopped, "waiting", st.Waiting)

	if snapshot == "" {
		return nil
	}
	return writeSnapshot(snapshot, w, comp)
}

func writeSnapshot(path string, w *scene.World, comp *scene.Compositor) error {
	fb := raster.New(int(w.Bounds.ViewW), int(w.Bounds.ViewH))
	fb.Begin(scene.Palette.Letterbox)
	comp.RenderFrame(fb, w)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		return fmt.Errorf("snapshot encode: %w", err)
	}
	return f.Close()
}
