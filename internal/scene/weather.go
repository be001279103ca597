package scene

import "math"

type Drop struct {
	X, Y   float64
	VX, VY float64
	Len    float64
	Alive  bool
}

type Splash struct {
	X, Y   float64
	Radius float64
	Life   float64 // 1 at birth, removed at <= 0
}

const (
	MaxDriftVX     = 4.0
	windStep       = 0.0003
	dropWrapMargin = 50.0
	respawnBand    = 150
	splashGrowth   = 0.6
	splashDecay    = 0.018
	minTrailVY     = 1e-3
	frameUnits     = 60.0 // velocities are tuned in pixels per 60Hz frame
)

type WeatherParams struct {
	Drops        int
	MaxSplashes  int
	SplashChance float64
}

// WeatherSystem owns the rain-drop pool, live splashes and cloud drift.
type WeatherSystem struct {
	Drops    []Drop
	Splashes []Splash
	Clouds   []Cloud

	maxSplashes  int
	splashChance float64
	bounds       *Bounds
	rng          *Rand

	// Rejected counts splashes dropped because the pool was full.
	Rejected int
}

func NewWeatherSystem(p WeatherParams, b *Bounds, clouds []Cloud, rng *Rand) *WeatherSystem {
	ws := &WeatherSystem{
		Drops:        make([]Drop, p.Drops),
		Splashes:     make([]Splash, 0, p.MaxSplashes),
		Clouds:       clouds,
		maxSplashes:  p.MaxSplashes,
		splashChance: p.SplashChance,
		bounds:       b,
		rng:          rng,
	}
	for i := range ws.Drops {
		d := &ws.Drops[i]
		d.X = float64(rng.Intn(int(b.WorldW())))
		d.Y = b.ViewH - float64(rng.Intn(int(b.ViewH)))
		d.VX = -2 + float64(rng.Intn(5))
		d.VY = -7 - float64(rng.Intn(8))
		d.Len = float64(8 + rng.Intn(12))
		d.Alive = true
	}
	return ws
}

func (ws *WeatherSystem) recycle(d *Drop) {
	d.X = float64(ws.rng.Intn(int(ws.bounds.WorldW())))
	d.Y = max(ws.bounds.ViewH-float64(ws.rng.Intn(respawnBand)), ws.bounds.GroundY+1)
	d.VX = -2 + float64(ws.rng.Intn(5))
	d.VY = -7 - float64(ws.rng.Intn(6))
	d.Len = float64(8 + ws.rng.Intn(10))
	d.Alive = true
}

// emitSplash adds a splash unless the pool is at its cap; a full pool drops
// the splash rather than queueing it.
func (ws *WeatherSystem) emitSplash(x float64) bool {
	if len(ws.Splashes) >= ws.maxSplashes {
		ws.Rejected++
		return false
	}
	ws.Splashes = append(ws.Splashes, Splash{
		X:      x,
		Y:      ws.bounds.GroundY - 18 + float64(ws.rng.Intn(12)),
		Radius: 1,
		Life:   1,
	})
	return true
}

// Update integrates drops, spawns splashes on ground contact and ages the
// live splashes.
func (ws *WeatherSystem) Update(dt float64) {
	if ws == nil || dt <= 0 {
		return
	}
	step := dt * frameUnits
	worldW := ws.bounds.WorldW()
	ground := ws.bounds.GroundY

	for i := range ws.Drops {
		d := &ws.Drops[i]
		d.X += d.VX * step
		d.Y += d.VY * step

		// Wind wobble: a bounded random walk, clamped so it cannot run away.
		d.VX = clampF(d.VX+float64(ws.rng.Intn(100)-50)*windStep, -MaxDriftVX, MaxDriftVX)

		if d.Y < ground {
			if ws.rng.Chance(ws.splashChance) {
				ws.emitSplash(d.X)
			}
			ws.recycle(d)
		}
		if d.X < -dropWrapMargin {
			d.X = worldW + dropWrapMargin
		} else if d.X > worldW+dropWrapMargin {
			d.X = -dropWrapMargin
		}
	}

	kept := ws.Splashes[:0]
	for _, s := range ws.Splashes {
		s.Radius += splashGrowth
		s.Life -= splashDecay
		if s.Life > 0 {
			kept = append(kept, s)
		}
	}
	ws.Splashes = kept
}

// UpdateClouds drifts clouds rightward; nearer clouds move faster.
func (ws *WeatherSystem) UpdateClouds(dt float64) {
	if ws == nil {
		return
	}
	worldW := ws.bounds.WorldW()
	for i := range ws.Clouds {
		c := &ws.Clouds[i]
		c.X += c.Speed * (1 + c.Depth*0.6) * dt * frameUnits
		if c.X-c.Size > worldW {
			c.X = -c.Size
		}
	}
}

// Trail returns the end point of a drop's streak. ok is false when the
// vertical speed is too small to project a trail; draw a point instead.
func (d Drop) Trail() (x, y float64, ok bool) {
	avy := math.Abs(d.VY)
	if avy < minTrailVY {
		return d.X, d.Y, false
	}
	k := d.Len / avy
	return d.X + d.VX*k, d.Y + d.VY*k, true
}
