// Package audio synthesises the game's sound effects and plays them through
// one of two backends. Samples are mono float64 in [-1, 1] at SampleRate;
// each backend converts to its own stream format.
package audio

import (
	"math"
	"sync"
)

const SampleRate = 44100

// Sound identifies a sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundLand
	SoundCrush
	SoundBump
	SoundPickup
	SoundRefuel
	SoundStage
	SoundHiscore
	SoundGameOver
	SoundStart
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundCrush:
		return "crush"
	case SoundBump:
		return "bump"
	case SoundPickup:
		return "pickup"
	case SoundRefuel:
		return "refuel"
	case SoundStage:
		return "stage"
	case SoundHiscore:
		return "hiscore"
	case SoundGameOver:
		return "gameover"
	case SoundStart:
		return "start"
	}
	return "unknown"
}

var (
	bankOnce [soundCount]sync.Once
	bank     [soundCount][]float64
)

// Samples returns the rendered effect. Each sound is synthesised once and
// shared; callers must not modify the slice.
func Samples(s Sound) []float64 {
	if s < 0 || s >= soundCount {
		return nil
	}
	bankOnce[s].Do(func() { bank[s] = generate(s) })
	return bank[s]
}

func generate(s Sound) []float64 {
	switch s {
	case SoundJump:
		return genJump()
	case SoundLand:
		return genLand()
	case SoundCrush:
		return genCrush(0x5eed)
	case SoundBump:
		return genBump(0xb0b)
	case SoundPickup:
		return genPickup()
	case SoundRefuel:
		return genChime([]float64{523.25, 659.25, 783.99, 1046.5}, 75, 0.18)
	case SoundStage:
		return genChime([]float64{440, 554.37, 659.25, 880, 1108.73}, 90, 0.25)
	case SoundHiscore:
		return genChime([]float64{783.99, 1046.5, 1318.51, 1567.98}, 60, 0.3)
	case SoundGameOver:
		return genGameOver()
	case SoundStart:
		return genStart()
	}
	return nil
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func frames(seconds float64) int { return int(seconds * SampleRate) }

// render runs fn for every frame of a clip and saturates the result.
func render(seconds float64, fn func(t, p float64) float64) []float64 {
	n := frames(seconds)
	out := make([]float64, n)
	for i := range n {
		out[i] = softSat(fn(float64(i)/SampleRate, float64(i)/float64(n)))
	}
	return out
}

// genJump: rising FM sweep as the car leaves the ground.
func genJump() []float64 {
	return render(0.22, func(t, p float64) float64 {
		env := adsr(p, 0.02, 0.4, 0.35, 0.3)
		freq := 260 + 520*p*p
		return fm(t, freq, 1.5, 1.8*(1-p))*env*0.42 +
			math.Sin(2*math.Pi*freq*2*t)*env*0.08
	})
}

// genLand: short sub thump with a scrape of noise.
func genLand() []float64 {
	seed := uint64(4242)
	lp := 0.0
	return render(0.14, func(t, p float64) float64 {
		lp = lp*0.7 + lcg(&seed)*0.3
		thumpFreq := 110 - 60*p
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*14) * 0.55
		return thump + lp*math.Exp(-p*9)*0.22
	})
}

// genCrush: metallic crunch when a rival is flattened from above.
func genCrush(seed uint64) []float64 {
	lp := 0.0
	return render(0.2, func(t, p float64) float64 {
		crack := 0.0
		if p < 0.18 {
			crack = lcg(&seed) * (1.0 - p/0.18) * 0.42
		}
		lp = lp*0.62 + lcg(&seed)*0.38
		body := lp * math.Exp(-p*8) * 0.3
		thump := math.Sin(2*math.Pi*(130-70*p)*t) * math.Exp(-p*12) * 0.33
		ring := fm(t, 620, 1.41, 3*(1-p)) * math.Exp(-p*10) * 0.12
		return (crack + body + thump + ring) * 0.8
	})
}

// genBump: hard transient plus a falling "oof" tone.
func genBump(seed uint64) []float64 {
	return render(0.18, func(t, p float64) float64 {
		crack := 0.0
		if p < 0.02 {
			crack = lcg(&seed) * (1 - p/0.02) * 0.8
		}
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 320 - 220*p
		tone := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.5
		body := lcg(&seed) * math.Pow(1-p, 5) * 0.2
		return crack + tone + body
	})
}

// genPickup: snappy FM pop with ascending pitch.
func genPickup() []float64 {
	return render(0.09, func(t, p float64) float64 {
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 620 + 480*p
		return fm(t, freq, 2.0, 2.5*env) * env * 0.45
	})
}

// genChime: staggered FM bells, each note ringing over the next.
func genChime(notes []float64, stepMs int, tail float64) []float64 {
	step := SampleRate * stepMs / 1000
	total := len(notes)*step + frames(tail)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * step
		dur := total - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []float64 {
	n := frames(0.75)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := frames(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genStart: crisp click and a brief high tone.
func genStart() []float64 {
	return render(0.065, func(t, p float64) float64 {
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		return fm(t, freq, 1.0, 0.6) * env * 0.38
	})
}
