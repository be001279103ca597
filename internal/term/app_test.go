package term

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"cityrain/internal/config"
	"cityrain/internal/raster"
	"cityrain/internal/scene"
)

func TestKeyToEvent(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want scene.EventType
		ok   bool
	}{
		{"esc", tcell.KeyEscape, 0, scene.EventQuit, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, scene.EventQuit, true},
		{"left", tcell.KeyLeft, 0, scene.EventPanLeft, true},
		{"right", tcell.KeyRight, 0, scene.EventPanRight, true},
		{"rain", tcell.KeyRune, 'r', scene.EventToggleRain, true},
		{"zoom", tcell.KeyRune, '+', scene.EventZoomIn, true},
		{"unmapped rune", tcell.KeyRune, 'z', 0, false},
		{"unmapped key", tcell.KeyF1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := keyToEvent(tt.key, tt.r)
			if ok != tt.ok || (ok && e.Type != tt.want) {
				t.Errorf("keyToEvent = %v, %v; want %v, %v", e.Type, ok, tt.want, tt.ok)
			}
		})
	}
}

type cell struct {
	r      rune
	fg, bg tcell.Color
}

type fakeCells map[[2]int]cell

func (f fakeCells) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	fg, bg, _ := style.Decompose()
	f[[2]int{x, y}] = cell{r: primary, fg: fg, bg: bg}
}

func TestBlitPacksTwoRowsPerCell(t *testing.T) {
	fb := raster.New(2, 4)
	fb.Begin(scene.RGB(0, 0, 0))
	fb.Point(0, 3, scene.RGB(1, 0, 0)) // top row of the first cell row
	fb.Point(0, 2, scene.RGB(0, 0, 1)) // bottom row of the first cell row

	cells := fakeCells{}
	blit(cells, fb)
	if len(cells) != 4 {
		t.Fatalf("cells written = %d, want 4", len(cells))
	}
	c := cells[[2]int{0, 0}]
	if c.r != halfBlock {
		t.Errorf("rune = %q, want %q", c.r, halfBlock)
	}
	if c.fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("fg = %v, want red", c.fg)
	}
	if c.bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("bg = %v, want blue", c.bg)
	}
	if c := cells[[2]int{0, 1}]; c.fg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("second row fg = %v, want black", c.fg)
	}
}

func TestFitTransform(t *testing.T) {
	m := fitTransform(1280, 780, 128, 78)
	if m[0] != 0.1 || m[5] != 0.1 {
		t.Errorf("scale = (%v, %v), want 0.1", m[0], m[5])
	}
}

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(40, 12)
	cfg := config.Default()
	w := scene.NewWorld(cfg, 3)
	return New(screen, w, scene.NewCompositor(3), cfg.FrameMS, log.New(io.Discard)), screen
}

func TestAppStep(t *testing.T) {
	a, screen := newTestApp(t)
	defer screen.Fini()
	ticked := 0
	a.OnTick = func(*scene.World) { ticked++ }
	a.Step()
	a.Step()
	if a.world.Ticks() != 2 || ticked != 2 {
		t.Errorf("ticks = %d hooks = %d, want 2 and 2", a.world.Ticks(), ticked)
	}
	if a.fb.W != 40 || a.fb.H != 24 {
		t.Errorf("framebuffer = %dx%d, want 40x24", a.fb.W, a.fb.H)
	}
}

func TestAppHandle(t *testing.T) {
	a, screen := newTestApp(t)
	defer screen.Fini()
	a.handle(tcell.NewEventResize(60, 20))
	if a.fb.W != 60 || a.fb.H != 40 {
		t.Errorf("framebuffer = %dx%d after resize, want 60x40", a.fb.W, a.fb.H)
	}
	if a.world.Bounds.ViewW != 1280 {
		t.Errorf("logical viewport changed to %v", a.world.Bounds.ViewW)
	}
}
