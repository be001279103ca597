package scene

import "math"

const (
	SunRate        = 0.02 // radians per simulated second
	SunStartAngle  = 0.9
	SunFastForward = 0.8
	dayThreshold   = -0.2 // cos(angle) above this is day

	// Traffic lights cycle through lightCycleSlots tenths of a radian.
	lightCycleSlots = 17
	lightStopSlots  = 6
	lightGoSlots    = 8
)

type DayMode uint8

const (
	Night DayMode = iota
	Day
)

func (m DayMode) String() string {
	if m == Day {
		return "day"
	}
	return "night"
}

// DayModeAt is the day/night transition function. The threshold sits below
// zero so days last longer than nights.
func DayModeAt(angle float64) DayMode {
	if math.Cos(angle) > dayThreshold {
		return Day
	}
	return Night
}

type LightPhase uint8

const (
	PhaseGo LightPhase = iota
	PhaseCaution
	PhaseStop
)

func (p LightPhase) String() string {
	switch p {
	case PhaseStop:
		return "stop"
	case PhaseCaution:
		return "caution"
	default:
		return "go"
	}
}

// LightPhaseAt derives the traffic-light phase from the sun angle: each
// cycle is Stop, then Go, then Caution.
func LightPhaseAt(angle float64) LightPhase {
	slot := int(math.Floor(wrapAngle(angle)*10)) % lightCycleSlots
	switch {
	case slot < lightStopSlots:
		return PhaseStop
	case slot < lightStopSlots+lightGoSlots:
		return PhaseGo
	default:
		return PhaseCaution
	}
}

// Sun is the single time-of-day angle in [0, 2π).
type Sun struct {
	Angle float64
}

func (s *Sun) Advance(dt, timeScale float64) {
	s.Angle = wrapAngle(s.Angle + dt*SunRate*timeScale)
}

func (s *Sun) FastForward(delta float64) {
	s.Angle = wrapAngle(s.Angle + delta)
}

func (s Sun) Mode() DayMode { return DayModeAt(s.Angle) }

func (s Sun) Phase() LightPhase { return LightPhaseAt(s.Angle) }

// DayPhase maps the angle to 0 (darkest) .. 1 (brightest) for sky blending.
func (s Sun) DayPhase() float64 {
	return (math.Sin(s.Angle) + 1) * 0.5
}

// LightDir is the unit direction the light arrives from.
func (s Sun) LightDir() (x, y float64) {
	return math.Cos(s.Angle), math.Sin(s.Angle)
}

// ScreenPos places the sun (or moon) disc in world space so it sweeps
// across the double-width sky.
func (s Sun) ScreenPos(viewW, viewH float64) (x, y float64) {
	x = viewW * 1.8 * (math.Cos(s.Angle)*0.5 + 0.5)
	y = viewH - 200 + math.Sin(s.Angle)*60
	return x, y
}

// Shade applies Lambert diffuse from the sun direction to a surface with
// normal (nx, ny, nz), plus a teal grade at night.
func (s Sun) Shade(c Color, nx, ny, nz float64) Color {
	sx, sy := s.LightDir()
	dot := clampF(nx*sx+ny*sy+nz*0.6, 0, 1)
	amb := 0.08
	night := s.Mode() == Night
	if !night {
		amb = 0.25
	}
	k := float32(amb + 0.75*dot)
	out := c.Scale(k)
	if night {
		out.R *= 0.95
		out.G *= 1.05
		out.B *= 1.12
	}
	return out
}
