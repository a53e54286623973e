package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	// maxVoices caps overlapping copies of one sound.
	maxVoices = 3
)

// sfxVolume is the master level for effects.
var sfxVolume = 0.58

// Oto plays effects through an oto context, one player per sound.
type Oto struct {
	ctx   *oto.Context
	ready chan struct{}

	encodeOnce [soundCount]sync.Once
	encoded    [soundCount][]byte
	voices     [soundCount]atomic.Int32
}

// NewOto opens the default audio device.
func NewOto() (*Oto, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &Oto{ctx: ctx, ready: ready}, nil
}

// Play starts s on its own player and returns at once. Sounds requested
// before the device is ready are dropped.
func (o *Oto) Play(s Sound) {
	if o == nil || s < 0 || s >= soundCount {
		return
	}
	select {
	case <-o.ready:
	default:
		return
	}
	if o.voices[s].Load() >= maxVoices {
		return
	}
	data := o.pcm(s)
	if len(data) == 0 {
		return
	}
	o.voices[s].Add(1)
	go func() {
		defer o.voices[s].Add(-1)
		player := o.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Close suspends the device. oto/v2 contexts live for the whole process.
func (o *Oto) Close() error {
	if o == nil {
		return nil
	}
	return o.ctx.Suspend()
}

func (o *Oto) pcm(s Sound) []byte {
	o.encodeOnce[s].Do(func() { o.encoded[s] = encodeF32(Samples(s)) })
	return o.encoded[s]
}

// encodeF32 lays mono samples out as interleaved stereo float32 LE frames.
func encodeF32(samples []float64) []byte {
	buf := make([]byte, len(samples)*ChannelCount*4)
	for i, s := range samples {
		putStereoF32(buf, i, s)
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := range ChannelCount {
		off := i*8 + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}
