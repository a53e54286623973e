package game

// Particle is one fragment of a crash burst, in screen space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Col    RGB
	Size   float64
}

// ParticleSystem runs the bump explosion. A new crash replaces the
// previous burst rather than adding to it.
type ParticleSystem struct {
	P      []Particle
	Active bool
	Timer  int
}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{P: make([]Particle, 0, CrashParticleCount)}
}

// SpawnCrash seeds a radial burst around (cx, cy) mixing the crash palette
// with both cars' paint.
func (ps *ParticleSystem) SpawnCrash(r *Rand, cx, cy float64, a, b RGB) {
	ps.P = ps.P[:0]
	ps.Active = true
	ps.Timer = 0

	cols := make([]RGB, 0, len(crashColors)+2)
	cols = append(cols, crashColors...)
	cols = append(cols, a, b)

	for range CrashParticleCount {
		ps.P = append(ps.P, Particle{
			X:    cx + float64(r.Range(-20, 20)),
			Y:    cy + float64(r.Range(-15, 15)),
			VX:   float64(r.Range(-8, 8)),
			VY:   float64(r.Range(-8, 8)),
			Col:  cols[r.Intn(len(cols))],
			Size: float64(r.Range(2, 6)),
		})
	}
}

// Update advances the burst one tick: ballistic motion, gravity on VY and
// shrink, then drops particles that are spent or off screen.
func (ps *ParticleSystem) Update() {
	if !ps.Active {
		return
	}
	ps.Timer++

	kept := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ParticleGravity
		p.Size = max(1, p.Size-ParticleShrink)
		if p.Size > 1 && p.Y < 750 && p.X > 0 && p.X < 800 {
			kept = append(kept, p)
		}
	}
	ps.P = kept

	if ps.Timer > CrashAnimationTicks || len(ps.P) == 0 {
		ps.Active = false
	}
}
