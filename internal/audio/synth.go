package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate beep.SampleRate = 44100

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// hiss is endless rain: two one-pole lowpasses over white noise, slightly
// decorrelated between channels so it sounds wide.
type hiss struct {
	seed uint64
	lpL  float64
	lpR  float64
	drip float64
}

func newHiss(seed uint64) *hiss {
	return &hiss{seed: seed | 1}
}

func (h *hiss) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		h.lpL = h.lpL*0.82 + lcg(&h.seed)*0.18
		h.lpR = h.lpR*0.82 + lcg(&h.seed)*0.18
		// Sparse droplet ticks on top of the wash.
		h.drip *= 0.9
		if lcg(&h.seed) > 0.995 {
			h.drip = lcg(&h.seed) * 0.5
		}
		samples[i][0] = h.lpL*0.6 + h.drip
		samples[i][1] = h.lpR*0.6 - h.drip*0.5
	}
	return len(samples), true
}

func (h *hiss) Err() error { return nil }

// thunder is one finite roll: a fast crack into a long low rumble.
type thunder struct {
	seed  uint64
	pos   int
	total int
	lp    float64
	sub   float64
}

func newThunder(seed uint64, seconds float64) *thunder {
	return &thunder{seed: seed | 1, total: SampleRate.N(secondsDur(seconds))}
}

func (t *thunder) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		p := float64(t.pos) / float64(t.total)
		raw := lcg(&t.seed)
		t.lp = t.lp*0.97 + raw*0.03
		t.sub = t.sub*0.995 + t.lp*0.005
		env := math.Exp(-p * 4)
		crack := 0.0
		if p < 0.03 {
			crack = raw * (1 - p/0.03) * 0.4
		}
		s := (t.lp*2.2+t.sub*6)*env + crack
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *thunder) Err() error { return nil }

func secondsDur(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// newVolume wraps s at a linear gain. Zero or less is silent since the
// effect works in log2 steps.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 1e-4 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}
