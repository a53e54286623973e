package game

// Session owns every piece of mutable state for one run, from the first
// tick until game over. Subsystems take the session explicitly; there are
// no package-level globals.
type Session struct {
	Variant Variant

	Player Car
	Camera Camera

	Enemies   []Car
	Obstacles []Obstacle
	Pickups   []Pickup
	Pumps     []FuelPump
	Bridges   []Bridge
	Scenery   []Scenery
	Displays  []ScoreDisplay
	Particles *ParticleSystem

	Score   int
	Hiscore int
	Fuel    FuelTank
	Lives   int

	Stage       int
	Distance    float64
	StageBanner int // remaining banner ticks

	JumpCooldown      int
	JumpTimer         int // remaining arc ticks
	Invulnerable      bool
	InvulnerableTimer int

	Paused bool
	Over   bool
	Reason Reason
	Ticks  int

	startHiscore  int
	hiscoreBeaten bool

	spawner Spawner
	rng     *Rand
	events  *EventBus
}

// NewSession sets up a fresh run: full tank, five lives, three rivals
// already on the road and one bridge close ahead.
func NewSession(v Variant, hiscore int, rng *Rand, events *EventBus) *Session {
	if rng == nil {
		rng = NewRand(1)
	}
	s := &Session{
		Variant:      v,
		Player:       NewCar(PlayerStartX, PlayerStartY, Palette.Red, CarPlayer),
		Camera:       NewCamera(rng.NextU64()),
		Particles:    NewParticleSystem(),
		Hiscore:      hiscore,
		startHiscore: hiscore,
		Fuel:         NewFuelTank(FuelMax),
		Lives:        StartLives,
		Stage:        1,
		StageBanner:  StageBannerDuration,
		spawner:      NewSpawner(1),
		rng:          rng,
		events:       events,
	}
	s.populate()
	return s
}

func (s *Session) populate() {
	for range 3 {
		y := float64(s.rng.Range(100, 300))
		b := Bounds(y, s.Stage)
		x := float64(s.rng.Range(b.Left+RoadEdgeInset, b.Right-40))
		e := NewCar(x, y, CarColors[s.rng.Intn(len(CarColors))], CarEnemy)
		e.Speed = s.rng.RangeF(1, 3)
		s.Enemies = append(s.Enemies, e)
	}
	s.Bridges = append(s.Bridges, Bridge{Y: 200, Stage: s.Stage})
}

// Spawner exposes the spawn timers for inspection.
func (s *Session) Spawner() *Spawner { return &s.spawner }

// Tick advances the simulation by one fixed step. The second return value
// is true once the run is over; the Result is only meaningful then.
func (s *Session) Tick(in Controls) (Result, bool) {
	if s.Over {
		return s.result(), true
	}

	if in.Pause {
		s.Paused = !s.Paused
	}
	if in.Jump && !s.Paused {
		s.tryJump()
	}
	if s.Paused {
		return Result{}, false
	}
	s.Ticks++

	s.steer(in)
	s.throttle(in)

	s.Camera.Scroll(s.Player.Speed)
	s.Distance += s.Player.Speed
	s.addScore(speedPoints(s.Player.Speed))

	s.Player.X += s.Player.TurnSpeed
	s.updatePlayerJump()
	s.clampPlayer()
	s.Player.ShadowY = s.Player.Y

	s.burnFuel()
	s.updateStage()

	s.spawner.Update(s)

	s.updateEnemies()
	s.updatePumps()
	s.updateScenery()

	s.collide()

	s.updateTimers()
	s.advanceStatic()
	s.prune()
	s.Camera.UpdateShake()

	if s.Over {
		s.events.Emit(Event{Type: EventGameOver, Data: int(s.Reason)})
		return s.result(), true
	}
	return Result{}, false
}

// speedPoints is the per-tick score with tiered bonuses for going fast.
func speedPoints(speed float64) int {
	mult := 1.0
	if speed >= 6 {
		mult = 2.0
	} else if speed >= 4 {
		mult = 1.5
	}
	return int(speed * mult)
}

// addScore is the single path for score changes so the hiscore and its
// one-shot banner stay in step with every award.
func (s *Session) addScore(points int) {
	s.Score += points
	if s.Score <= s.Hiscore {
		return
	}
	if !s.hiscoreBeaten && s.Score > s.startHiscore {
		s.hiscoreBeaten = true
		s.Displays = append(s.Displays, ScoreDisplay{X: 250, Y: 300, Label: HiscoreBannerText, TTL: HiscoreBannerTTL})
		s.events.Emit(Event{Type: EventHiscore, Data: s.Score})
	}
	s.Hiscore = s.Score
}

func (s *Session) burnFuel() {
	s.Fuel.Drain(FuelDrainPerTick)
	if s.Fuel.IsEmpty() {
		s.endRun(ReasonOutOfFuel)
	}
}

// endRun records the first terminal reason of the tick. Bridge crashes
// bypass it because they always take precedence.
func (s *Session) endRun(r Reason) {
	if s.Over {
		return
	}
	s.Over = true
	s.Reason = r
}

func (s *Session) updateStage() {
	if s.StageBanner > 0 {
		s.StageBanner--
	}
	if s.Distance < StageDistance {
		return
	}
	s.Stage++
	s.Distance = 0
	s.StageBanner = StageBannerDuration
	s.spawner.SetStage(s.Stage)
	s.events.Emit(Event{Type: EventStage, Data: s.Stage})
}

func (s *Session) updateTimers() {
	if s.Invulnerable {
		s.InvulnerableTimer++
		if s.InvulnerableTimer >= InvulnerableTicks {
			s.Invulnerable = false
			s.InvulnerableTimer = 0
		}
	}

	if s.JumpCooldown > 0 {
		s.JumpCooldown--
	}

	kept := s.Displays[:0]
	for _, d := range s.Displays {
		d.TTL--
		d.Y--
		if d.TTL > 0 {
			kept = append(kept, d)
		}
	}
	s.Displays = kept

	s.Particles.Update()
}

func (s *Session) result() Result {
	return Result{
		Score:      s.Score,
		Hiscore:    s.Hiscore,
		Reason:     s.Reason,
		NewHiscore: s.hiscoreBeaten,
		Stage:      s.Stage,
		Ticks:      s.Ticks,
	}
}

// FuelUnits is the fuel level on the 0..100 scale.
func (s *Session) FuelUnits() float64 { return s.Fuel.Units() }

// PlayerWorldY is the world row under the player's fixed screen row.
func (s *Session) PlayerWorldY() float64 {
	return s.Camera.Y + PlayerScreenY
}

// PlayerVisible reports whether the flashing invulnerable car is drawn
// this tick.
func (s *Session) PlayerVisible() bool {
	return !s.Invulnerable || (s.InvulnerableTimer/5)%2 == 0
}

// HUD returns the heads-up values for this tick.
func (s *Session) HUD() HUD {
	return HUD{
		Score:        s.Score,
		Fuel:         s.Fuel.Units(),
		Stage:        s.Stage,
		Hiscore:      s.Hiscore,
		Speed:        s.Player.Speed,
		Lives:        s.Lives,
		JumpCooldown: s.JumpCooldown,
	}
}
