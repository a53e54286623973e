package game

import (
	"math"
	"testing"
)

// quietSession returns a session with nothing on the road and every spawn
// timer pushed out of reach, so a test controls exactly what is present.
func quietSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(VariantClassic, 0, NewRand(42), nil)
	s.Enemies = nil
	s.Bridges = nil
	sp := s.Spawner()
	for _, st := range []*SpawnTimer{&sp.Enemy, &sp.Obstacle, &sp.Pickup, &sp.Pump, &sp.Bridge, &sp.Scenery} {
		st.Delay = 1 << 30
	}
	return s
}

// carAtPlayer places a stationary rival that will sit on top of the player
// after one cruise-speed tick.
func carAtPlayer(s *Session, dx float64) Car {
	return NewCar(s.Player.X+dx, s.Camera.Y+PlayerScreenY, Palette.Blue, CarEnemy)
}

func TestNewSessionPopulation(t *testing.T) {
	s := NewSession(VariantClassic, 500, NewRand(3), nil)
	if len(s.Enemies) != 3 {
		t.Fatalf("enemies = %d, want 3", len(s.Enemies))
	}
	for _, e := range s.Enemies {
		if e.Y < 100 || e.Y > 300 {
			t.Fatalf("enemy y = %.1f, want within [100,300]", e.Y)
		}
		if e.Speed < 1 || e.Speed > 3 {
			t.Fatalf("enemy speed = %.2f, want within [1,3]", e.Speed)
		}
	}
	if len(s.Bridges) != 1 || s.Bridges[0].Y != 200 {
		t.Fatalf("bridges = %+v, want one at y=200", s.Bridges)
	}
	if s.Lives != StartLives || s.Stage != 1 || s.FuelUnits() != 100 {
		t.Fatalf("lives=%d stage=%d fuel=%.1f, want 5/1/100", s.Lives, s.Stage, s.FuelUnits())
	}
	if s.Hiscore != 500 {
		t.Fatalf("hiscore = %d, want 500", s.Hiscore)
	}
}

func TestFuelRunsOutAtTick1000(t *testing.T) {
	s := quietSession(t)
	for i := 1; i < 1000; i++ {
		if _, over := s.Tick(Controls{}); over {
			t.Fatalf("run ended early at tick %d (%v)", i, s.Reason)
		}
	}
	if got := s.FuelUnits(); math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("fuel after 999 ticks = %.3f, want 0.1", got)
	}
	res, over := s.Tick(Controls{})
	if !over {
		t.Fatalf("run still going after tick 1000")
	}
	if res.Reason != ReasonOutOfFuel {
		t.Fatalf("reason = %v, want %v", res.Reason, ReasonOutOfFuel)
	}
	if res.Ticks != 1000 {
		t.Fatalf("ticks = %d, want 1000", res.Ticks)
	}
	if s.FuelUnits() != 0 {
		t.Fatalf("fuel = %.2f, want 0", s.FuelUnits())
	}
}

func TestThrottleLimits(t *testing.T) {
	s := quietSession(t)
	for range 60 {
		s.Tick(Controls{Accelerate: true})
	}
	if s.Player.Speed != CarMaxSpeed {
		t.Fatalf("speed after holding accelerate = %.2f, want %.2f", s.Player.Speed, CarMaxSpeed)
	}
	for range 60 {
		s.Tick(Controls{Brake: true})
	}
	if s.Player.Speed != CarBrakeSpeed {
		t.Fatalf("speed after holding brake = %.2f, want %.2f", s.Player.Speed, CarBrakeSpeed)
	}
	s.Tick(Controls{})
	if s.Player.Speed != CarCruiseSpeed {
		t.Fatalf("coasting speed = %.2f, want %.2f", s.Player.Speed, CarCruiseSpeed)
	}
}

func TestSteeringClampsAndDecays(t *testing.T) {
	s := quietSession(t)
	for range 20 {
		s.Tick(Controls{Left: true})
	}
	if s.Player.TurnSpeed != -CarMaxTurnSpeed {
		t.Fatalf("turn speed = %.2f, want %.2f", s.Player.TurnSpeed, -CarMaxTurnSpeed)
	}
	b := Bounds(s.PlayerWorldY(), s.Stage)
	if s.Player.X <= float64(b.Left+RoadEdgeInset) {
		t.Fatalf("player x = %.1f reached the edge too early", s.Player.X)
	}
	// Keep steering until the road edge stops the car.
	for range 40 {
		s.Tick(Controls{Left: true})
	}
	b = Bounds(s.PlayerWorldY(), s.Stage)
	if s.Player.X != float64(b.Left+RoadEdgeInset) {
		t.Fatalf("player x = %.1f, want clamped to %d", s.Player.X, b.Left+RoadEdgeInset)
	}
	s.Tick(Controls{})
	if want := -CarMaxTurnSpeed * CarTurnDecay; math.Abs(s.Player.TurnSpeed-want) > 1e-9 {
		t.Fatalf("turn speed after release = %.3f, want %.3f", s.Player.TurnSpeed, want)
	}
}

func TestSpeedPoints(t *testing.T) {
	cases := []struct {
		speed float64
		want  int
	}{
		{1, 1},
		{2, 2},
		{3.9, 3},
		{4, 6},
		{5.5, 8},
		{6, 12},
		{8, 16},
	}
	for _, c := range cases {
		if got := speedPoints(c.speed); got != c.want {
			t.Fatalf("speedPoints(%.1f) = %d, want %d", c.speed, got, c.want)
		}
	}
}

func TestJumpArcAndCooldown(t *testing.T) {
	s := quietSession(t)
	s.Tick(Controls{Jump: true})
	if !s.Player.Jumping || s.Player.JumpHeight != 0 {
		t.Fatalf("after jump tick: jumping=%v height=%.2f, want true/0", s.Player.Jumping, s.Player.JumpHeight)
	}

	// Extra presses mid-air must not restart the arc.
	for k := 2; k <= JumpDuration; k++ {
		s.Tick(Controls{Jump: true})
		want := JumpArc(k - 1)
		if math.Abs(s.Player.JumpHeight-want) > 1e-9 {
			t.Fatalf("tick %d: height = %.4f, want %.4f", k, s.Player.JumpHeight, want)
		}
		if k == 91 && math.Abs(s.Player.JumpHeight-JumpPeakHeight) > 1e-9 {
			t.Fatalf("peak height = %.4f, want %.1f", s.Player.JumpHeight, JumpPeakHeight)
		}
	}
	if !s.Player.Jumping {
		t.Fatalf("landed before the arc finished")
	}

	s.Tick(Controls{})
	if s.Player.Jumping || s.Player.JumpHeight != 0 {
		t.Fatalf("after landing: jumping=%v height=%.2f", s.Player.Jumping, s.Player.JumpHeight)
	}
	if s.JumpCooldown != JumpCooldownMax-1 {
		t.Fatalf("cooldown = %d, want %d", s.JumpCooldown, JumpCooldownMax-1)
	}

	for s.JumpCooldown > 0 {
		s.Tick(Controls{Jump: true})
		if s.Player.Jumping {
			t.Fatalf("jump triggered with cooldown %d", s.JumpCooldown)
		}
	}
	s.Tick(Controls{Jump: true})
	if !s.Player.Jumping {
		t.Fatalf("jump not triggered once cooldown expired")
	}
}

func TestCrushWhileAirborne(t *testing.T) {
	s := quietSession(t)
	s.Enemies = append(s.Enemies, carAtPlayer(s, 0))
	s.Player.Jumping = true
	s.JumpTimer = JumpDuration / 2

	s.Tick(Controls{})
	if len(s.Enemies) != 0 {
		t.Fatalf("enemies = %d, want crushed", len(s.Enemies))
	}
	if s.Lives != StartLives {
		t.Fatalf("lives = %d, want %d", s.Lives, StartLives)
	}
	if s.Score != 2+ScoreCrush {
		t.Fatalf("score = %d, want %d", s.Score, 2+ScoreCrush)
	}
	found := false
	for _, d := range s.Displays {
		if d.Value == ScoreCrush && d.TTL == CrushDisplayTTL-1 && d.Text() == "+200" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no +200 display in %+v", s.Displays)
	}
}

func TestLowJumpBumpsInsteadOfCrushing(t *testing.T) {
	s := quietSession(t)
	s.Enemies = append(s.Enemies, carAtPlayer(s, 0))
	s.Player.Jumping = true
	s.JumpTimer = JumpDuration // height 0 on this tick

	s.Tick(Controls{})
	if len(s.Enemies) != 1 {
		t.Fatalf("enemy removed by a low jump")
	}
	if s.Lives != StartLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives, StartLives-1)
	}
}

func TestBumpPushesRivalAway(t *testing.T) {
	s := quietSession(t)
	s.Enemies = append(s.Enemies, carAtPlayer(s, 10))

	s.Tick(Controls{})
	if s.Lives != StartLives-1 {
		t.Fatalf("lives = %d, want %d", s.Lives, StartLives-1)
	}
	if !s.Invulnerable || s.InvulnerableTimer != 1 {
		t.Fatalf("invulnerable=%v timer=%d, want true/1", s.Invulnerable, s.InvulnerableTimer)
	}
	e := s.Enemies[0]
	if e.TurnSpeed != BumpTurnImpulse {
		t.Fatalf("enemy turn speed = %.1f, want %.1f", e.TurnSpeed, BumpTurnImpulse)
	}
	if !e.Jumping {
		t.Fatalf("bumped enemy should hop")
	}
	if !s.Particles.Active || len(s.Particles.P) == 0 {
		t.Fatalf("no crash particles")
	}

	// Still overlapping, but invulnerable: no second life lost.
	s.Enemies[0] = carAtPlayer(s, 0)
	s.Tick(Controls{})
	if s.Lives != StartLives-1 {
		t.Fatalf("lives = %d after invulnerable contact, want %d", s.Lives, StartLives-1)
	}
}

func TestInvulnerabilityExpires(t *testing.T) {
	s := quietSession(t)
	s.Invulnerable = true
	for range InvulnerableTicks - 1 {
		s.Tick(Controls{})
	}
	if !s.Invulnerable {
		t.Fatalf("invulnerability ended early")
	}
	s.Tick(Controls{})
	if s.Invulnerable {
		t.Fatalf("invulnerability still active after %d ticks", InvulnerableTicks)
	}
}

func TestLastLifeBumpEndsRun(t *testing.T) {
	s := quietSession(t)
	s.Lives = 1
	s.Enemies = append(s.Enemies, carAtPlayer(s, 0))

	res, over := s.Tick(Controls{})
	if !over {
		t.Fatalf("run should end on the last life")
	}
	if res.Reason != ReasonNoLivesRemaining {
		t.Fatalf("reason = %v, want %v", res.Reason, ReasonNoLivesRemaining)
	}
	if s.Lives != 0 {
		t.Fatalf("lives = %d, want 0", s.Lives)
	}
}

func TestObstacleOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		kind    ObstacleKind
		jumping bool
		want    Reason
	}{
		{"barrel", ObstacleBarrel, false, ReasonCrashedIntoObstacle},
		{"water", ObstacleWater, false, ReasonFellIntoWater},
		{"jumped", ObstacleBarrel, true, ReasonNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := quietSession(t)
			s.Obstacles = append(s.Obstacles, Obstacle{X: s.Player.X, Y: 2 + PlayerScreenY, Kind: c.kind})
			if c.jumping {
				s.Player.Jumping = true
				s.JumpTimer = JumpDuration / 2
			}
			_, over := s.Tick(Controls{})
			if over != (c.want != ReasonNone) {
				t.Fatalf("over = %v, want %v", over, c.want != ReasonNone)
			}
			if s.Reason != c.want {
				t.Fatalf("reason = %v, want %v", s.Reason, c.want)
			}
			if len(s.Obstacles) != 1 {
				t.Fatalf("obstacle consumed by collision")
			}
		})
	}
}

func TestBridgeOverridesEarlierReason(t *testing.T) {
	s := quietSession(t)
	s.Lives = 1
	s.Enemies = append(s.Enemies, carAtPlayer(s, 0))
	s.Obstacles = append(s.Obstacles, Obstacle{X: s.Player.X, Y: 2 + PlayerScreenY})
	s.Bridges = append(s.Bridges, Bridge{Y: 2 + PlayerScreenY, Stage: 1})

	res, over := s.Tick(Controls{})
	if !over {
		t.Fatalf("run should be over")
	}
	if res.Reason != ReasonCrashedIntoBridge {
		t.Fatalf("reason = %v, want %v", res.Reason, ReasonCrashedIntoBridge)
	}
}

func TestBridgeClearedByHighJump(t *testing.T) {
	s := quietSession(t)
	s.Bridges = append(s.Bridges, Bridge{Y: 2 + PlayerScreenY, Stage: 1})
	s.Player.Jumping = true
	s.JumpTimer = JumpDuration / 2

	if _, over := s.Tick(Controls{}); over {
		t.Fatalf("high jump should clear the bridge, got %v", s.Reason)
	}
}

func TestPickupAndFuelPump(t *testing.T) {
	s := quietSession(t)
	s.Pickups = append(s.Pickups, Pickup{X: s.Player.X, Y: 2 + PlayerScreenY})
	s.Tick(Controls{})
	if len(s.Pickups) != 0 || s.Score != 2+ScorePickup {
		t.Fatalf("pickups=%d score=%d, want 0/%d", len(s.Pickups), s.Score, 2+ScorePickup)
	}

	s = quietSession(t)
	s.Fuel.Tenths = 100
	s.Pumps = append(s.Pumps, FuelPump{X: s.Player.X, Y: PlayerScreenY})
	s.Tick(Controls{})
	if len(s.Pumps) != 0 {
		t.Fatalf("pump not consumed")
	}
	if s.Fuel.Tenths != 99+FuelPumpRefill {
		t.Fatalf("fuel tenths = %d, want %d", s.Fuel.Tenths, 99+FuelPumpRefill)
	}
	if s.Score != 2+ScoreFuelPump {
		t.Fatalf("score = %d, want %d", s.Score, 2+ScoreFuelPump)
	}

	s = quietSession(t)
	s.Pumps = append(s.Pumps, FuelPump{X: s.Player.X, Y: PlayerScreenY})
	s.Tick(Controls{})
	if s.Fuel.Tenths != FuelMax {
		t.Fatalf("refill over a near-full tank = %d, want capped at %d", s.Fuel.Tenths, FuelMax)
	}
}

func TestStageAdvance(t *testing.T) {
	s := quietSession(t)
	s.Distance = StageDistance - 1

	s.Tick(Controls{})
	if s.Stage != 2 {
		t.Fatalf("stage = %d, want 2", s.Stage)
	}
	if s.Distance != 0 {
		t.Fatalf("distance = %.1f, want 0", s.Distance)
	}
	if s.StageBanner != StageBannerDuration {
		t.Fatalf("banner = %d, want %d", s.StageBanner, StageBannerDuration)
	}
	sp := s.Spawner()
	if sp.Enemy.Delay != 50 || sp.Obstacle.Delay != 105 {
		t.Fatalf("delays enemy=%d obstacle=%d, want 50/105", sp.Enemy.Delay, sp.Obstacle.Delay)
	}
	if s.FuelUnits() != 99.9 {
		t.Fatalf("fuel = %.1f, stage advance must not refuel", s.FuelUnits())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := quietSession(t)
	s.Tick(Controls{})
	cam, fuel, score := s.Camera.Y, s.Fuel.Tenths, s.Score

	s.Tick(Controls{Pause: true})
	if !s.Paused {
		t.Fatalf("pause not toggled on")
	}
	for range 30 {
		s.Tick(Controls{Accelerate: true, Jump: true})
	}
	if s.Camera.Y != cam || s.Fuel.Tenths != fuel || s.Score != score || s.Ticks != 1 {
		t.Fatalf("state changed while paused")
	}
	if s.Player.Jumping {
		t.Fatalf("jump accepted while paused")
	}

	s.Tick(Controls{Pause: true})
	if s.Paused || s.Ticks != 2 {
		t.Fatalf("paused=%v ticks=%d, want false/2", s.Paused, s.Ticks)
	}
}

func TestHiscoreBannerFiresOnce(t *testing.T) {
	s := quietSession(t)
	s.Hiscore, s.startHiscore = 10, 10

	for range 20 {
		s.Tick(Controls{})
	}
	banners := 0
	for _, d := range s.Displays {
		if d.Label == HiscoreBannerText {
			banners++
		}
	}
	if banners != 1 {
		t.Fatalf("hiscore banners = %d, want 1", banners)
	}
	if s.Hiscore != s.Score || s.Score != 40 {
		t.Fatalf("hiscore=%d score=%d, want 40/40", s.Hiscore, s.Score)
	}
	if !s.result().NewHiscore {
		t.Fatalf("result should report a new hiscore")
	}
}

func TestHiscoreUnbeaten(t *testing.T) {
	s := quietSession(t)
	s.Hiscore, s.startHiscore = 1000, 1000
	for range 20 {
		s.Tick(Controls{})
	}
	if s.Hiscore != 1000 || len(s.Displays) != 0 || s.result().NewHiscore {
		t.Fatalf("hiscore=%d displays=%d, want untouched", s.Hiscore, len(s.Displays))
	}
}

func TestEntitiesPrunedBehindCamera(t *testing.T) {
	s := quietSession(t)
	s.Obstacles = append(s.Obstacles, Obstacle{X: 60, Y: EntityCullMargin})
	s.Pickups = append(s.Pickups, Pickup{X: 60, Y: 0})
	s.Enemies = append(s.Enemies, NewCar(200, EnemyCullMargin+1, Palette.Blue, CarEnemy))

	s.Tick(Controls{})
	if len(s.Obstacles) != 0 {
		t.Fatalf("obstacle past the cull line was kept")
	}
	if len(s.Pickups) != 1 {
		t.Fatalf("pickup ahead of the cull line was removed")
	}
	if len(s.Enemies) != 0 {
		t.Fatalf("enemy past the cull line was kept")
	}
}

func TestInvulnerableFlash(t *testing.T) {
	s := quietSession(t)
	s.Invulnerable = true
	for timer, want := range map[int]bool{0: true, 4: true, 5: false, 9: false, 10: true} {
		s.InvulnerableTimer = timer
		if got := s.PlayerVisible(); got != want {
			t.Fatalf("visible at timer %d = %v, want %v", timer, got, want)
		}
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() Result {
		s := NewSession(VariantClassic, 0, NewRand(7), nil)
		for i := 0; i < 5000; i++ {
			in := Controls{
				Accelerate: i%3 != 0,
				Left:       i%120 < 15,
				Right:      i%200 < 10,
				Jump:       i%400 == 10,
			}
			if res, over := s.Tick(in); over {
				return res
			}
		}
		return s.result()
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
}
