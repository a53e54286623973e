package game

// Camera scrolls along world Y. Shake is purely visual and draws from its
// own RNG stream so it never perturbs the simulation sequence.
type Camera struct {
	Y float64

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in screen pixels
	ShakeTimer     int     // remaining shake ticks
	ShakeIntensity float64 // max offset magnitude

	shakeRand *Rand
}

func NewCamera(seed uint64) Camera {
	return Camera{shakeRand: NewRand(seed)}
}

// Scroll moves the camera forward.
func (c *Camera) Scroll(dy float64) {
	c.Y += dy
}

// ScreenY converts a world row to a screen row.
func (c *Camera) ScreenY(worldY float64) float64 {
	return worldY - c.Y
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity float64, ticks int) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if ticks > c.ShakeTimer {
		c.ShakeTimer = ticks
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake() {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer--
	if c.shakeRand == nil {
		c.shakeRand = NewRand(1)
	}
	t := float64(c.ShakeTimer)
	mag := c.ShakeIntensity * (t / (t + 5))
	c.ShakeX = c.shakeRand.RangeF(-mag, mag)
	c.ShakeY = c.shakeRand.RangeF(-mag, mag)
}
