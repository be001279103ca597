package scene

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a linear RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float32
}

func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

func RGBA(r, g, b, a float32) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

func (c Color) Scale(k float32) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Colorful converts to a go-colorful value, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func fromColorful(c colorful.Color, a float32) Color {
	c = c.Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: a}
}

var Palette = struct {
	SkyHorizon  Color
	ZenithNight Color
	ZenithDay   Color
	SunCore     Color
	MoonCore    Color
	Cloud       Color
	WindowLit   Color
	WindowDim   Color
	Puddle      Color
	Asphalt     Color
	Curb        Color
	Lane        Color
	Sheen       Color
	Pole        Color
	LightGo     Color
	LightWarn   Color
	LightStop   Color
	CarBody     Color
	BikeBody    Color
	Wheel       Color
	Headlight   Color
	Trail       Color
	Skin        Color
	Clothes     Color
	Rain        Color
	Splash      Color
	Letterbox   Color
	Grain       Color
}{
	SkyHorizon:  RGB(0.02, 0.04, 0.08),
	ZenithNight: RGB(0.08, 0.10, 0.16),
	ZenithDay:   RGB(0.23, 0.18, 0.22),
	SunCore:     RGB(1.0, 0.94, 0.8),
	MoonCore:    RGB(0.82, 0.86, 0.95),
	Cloud:       RGB(0.9, 0.92, 0.94),
	WindowLit:   RGB(1.0, 0.95, 0.7),
	WindowDim:   RGB(0.45, 0.45, 0.35),
	Puddle:      RGB(0.03, 0.05, 0.08),
	Asphalt:     RGB(0.12, 0.12, 0.14),
	Curb:        RGB(0.18, 0.18, 0.20),
	Lane:        RGB(0.10, 0.10, 0.12),
	Sheen:       RGBA(0.22, 0.30, 0.38, 0.20),
	Pole:        RGB(0.12, 0.12, 0.12),
	LightGo:     RGB(0.1, 0.8, 0.1),
	LightWarn:   RGB(1.0, 0.9, 0.0),
	LightStop:   RGB(1.0, 0.2, 0.2),
	CarBody:     RGB(0.92, 0.24, 0.22),
	BikeBody:    RGB(0.25, 0.55, 0.85),
	Wheel:       RGB(0.08, 0.08, 0.08),
	Headlight:   RGB(1.0, 0.98, 0.8),
	Trail:       RGB(0.9, 0.3, 0.25),
	Skin:        RGB(0.95, 0.82, 0.70),
	Clothes:     RGB(0.95, 0.95, 0.98),
	Rain:        RGB(0.78, 0.84, 1.0),
	Splash:      RGB(0.6, 0.82, 1.0),
	Letterbox:   RGB(0.01, 0.01, 0.01),
	Grain:       RGB(0, 0, 0),
}
