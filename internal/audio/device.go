package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"
)

const (
	channelCount  = 2
	bytesPerFrame = 8 // stereo float32 LE
)

// Start opens the output device and plays the ambience until Close.
func (a *Ambience) Start() error {
	ctx, ready, err := oto.NewContext(int(SampleRate), channelCount, oto.FormatFloat32LE)
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready
	p := ctx.NewPlayer(&streamReader{s: a})
	p.Play()
	a.mu.Lock()
	a.player = p
	a.mu.Unlock()
	a.logger.Info("audio ready", "rate", int(SampleRate), "volume", a.master)
	return nil
}

func (a *Ambience) Close() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	p := a.player
	a.player = nil
	a.mu.Unlock()
	if p == nil {
		return nil
	}
	return p.Close()
}

// streamReader adapts a beep.Streamer to the byte stream the device reads.
type streamReader struct {
	s   beep.Streamer
	buf [][2]float64
}

func (r *streamReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]
	n, ok := r.s.Stream(buf)
	if n == 0 && !ok {
		return 0, io.EOF
	}
	for i := 0; i < n; i++ {
		putStereoF32LR(p, i, softSat(buf[i][0]), softSat(buf[i][1]))
	}
	return n * bytesPerFrame, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
