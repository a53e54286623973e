package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const beepRate = beep.SampleRate(SampleRate)

// Beep plays effects through the beep speaker. Every sound is a streamer
// added to a single mixer that the speaker drains.
type Beep struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewBeep initialises the speaker with a 100ms buffer and starts the mixer.
func NewBeep() (*Beep, error) {
	if err := speaker.Init(beepRate, beepRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	b := &Beep{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *Beep) Play(s Sound) {
	samples := Samples(s)
	if len(samples) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	streamer := &effects.Volume{
		Streamer: newSampleStreamer(samples),
		Base:     2,
		Volume:   math.Log2(sfxVolume),
		Silent:   false,
	}
	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

func (b *Beep) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// sampleStreamer streams a mono clip to both channels once.
type sampleStreamer struct {
	data []float64
	pos  int
}

func newSampleStreamer(data []float64) *sampleStreamer {
	return &sampleStreamer{data: data}
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	n = copy2(samples, s.data[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }

func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}
