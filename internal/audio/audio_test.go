package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"bumpjump/internal/game"
)

// TestSamplesInRange verifies every effect renders audible, bounded samples
func TestSamplesInRange(t *testing.T) {
	for s := SoundJump; s < soundCount; s++ {
		buf := Samples(s)
		if len(buf) == 0 {
			t.Fatalf("%v: empty buffer", s)
		}
		peak := 0.0
		for i, v := range buf {
			if math.IsNaN(v) || v < -1 || v > 1 {
				t.Fatalf("%v: sample %d out of range: %f", s, i, v)
			}
			peak = max(peak, math.Abs(v))
		}
		if peak < 0.05 {
			t.Errorf("%v: peak %f is inaudible", s, peak)
		}
	}
}

// TestSamplesCached verifies a sound is synthesised once and is deterministic
func TestSamplesCached(t *testing.T) {
	a := Samples(SoundCrush)
	b := Samples(SoundCrush)
	if &a[0] != &b[0] {
		t.Error("expected the cached buffer to be shared")
	}
	fresh := generate(SoundCrush)
	for i := range a {
		if a[i] != fresh[i] {
			t.Fatalf("sample %d differs between renders", i)
		}
	}
	if Samples(soundCount) != nil || Samples(-1) != nil {
		t.Error("unknown sounds should have no samples")
	}
}

func TestSoundForCoversEveryEvent(t *testing.T) {
	seen := map[Sound]bool{}
	for e := game.EventJump; e <= game.EventStart; e++ {
		s, ok := SoundFor(e)
		if !ok {
			t.Fatalf("event %d has no sound", e)
		}
		if seen[s] {
			t.Errorf("sound %v mapped twice", s)
		}
		seen[s] = true
	}
	if _, ok := SoundFor(game.EventType(99)); ok {
		t.Error("unknown event mapped to a sound")
	}
}

type recorder struct{ played []Sound }

func (r *recorder) Play(s Sound) { r.played = append(r.played, s) }

func TestAttachPlaysGameEvents(t *testing.T) {
	g := game.NewGame(game.Config{Seed: 9})
	rec := &recorder{}
	Attach(g.Events, rec)

	g.StartRun()
	g.Session.Fuel.Tenths = 1
	g.Update(game.Controls{})

	if len(rec.played) < 2 {
		t.Fatalf("played = %v, want start and game over", rec.played)
	}
	if rec.played[0] != SoundStart {
		t.Errorf("first sound = %v, want start", rec.played[0])
	}
	if last := rec.played[len(rec.played)-1]; last != SoundGameOver {
		t.Errorf("last sound = %v, want gameover", last)
	}

	// Nil arguments are ignored.
	Attach(nil, rec)
	Attach(g.Events, nil)
}

func TestEncodeF32Stereo(t *testing.T) {
	buf := encodeF32([]float64{0.5, -0.25})
	if len(buf) != 2*ChannelCount*4 {
		t.Fatalf("len = %d", len(buf))
	}
	for i, want := range []float32{0.5, 0.5, -0.25, -0.25} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != want {
			t.Errorf("channel value %d = %f, want %f", i, got, want)
		}
	}
}

func TestSoundReaderEOF(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3}}
	p := make([]byte, 2)
	if n, err := r.Read(p); n != 2 || err != nil {
		t.Fatalf("first read = %d, %v", n, err)
	}
	if n, err := r.Read(p); n != 1 || err != nil {
		t.Fatalf("second read = %d, %v", n, err)
	}
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

// TestSampleStreamer verifies the beep streamer copies mono to both channels and drains
func TestSampleStreamer(t *testing.T) {
	st := newSampleStreamer([]float64{0.1, 0.2, 0.3})
	out := make([][2]float64, 2)

	n, ok := st.Stream(out)
	if !ok || n != 2 {
		t.Fatalf("first stream = %d, %v", n, ok)
	}
	if out[1][0] != 0.2 || out[1][1] != 0.2 {
		t.Errorf("frame 1 = %v", out[1])
	}
	n, ok = st.Stream(out)
	if !ok || n != 1 || out[0][0] != 0.3 {
		t.Fatalf("second stream = %d, %v, %v", n, ok, out[0])
	}
	if _, ok := st.Stream(out); ok {
		t.Error("drained streamer should report !ok")
	}
	if st.Err() != nil {
		t.Errorf("unexpected error: %v", st.Err())
	}
}

// TestMuteAndNilOto verifies silent players never panic
func TestMuteAndNilOto(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("silent player panicked: %v", r)
		}
	}()
	var m Backend = Mute{}
	m.Play(SoundJump)
	if err := m.Close(); err != nil {
		t.Error(err)
	}
	var o *Oto
	o.Play(SoundBump)
	if err := o.Close(); err != nil {
		t.Error(err)
	}
}
