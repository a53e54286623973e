package game

// HUD carries the heads-up values for one frame.
type HUD struct {
	Score        int
	Fuel         float64 // 0..100
	Stage        int
	Hiscore      int
	Speed        float64
	Lives        int
	JumpCooldown int // ticks; 0 means ready
}

// Presenter draws one frame. The core calls it in back-to-front order
// between BeginFrame and EndFrame and never reads anything back.
// World-space entities come with the camera row so the presenter can
// convert to screen space itself; shake offsets arrive in BeginFrame.
type Presenter interface {
	BeginFrame(shakeX, shakeY float64)
	EndFrame()

	DrawStartScreen(v Variant, hiscore int)

	DrawRoad(cameraY float64, stage int)
	DrawScenery(sc *Scenery, cameraY float64)
	DrawEnemy(c *Car, cameraY float64)
	DrawObstacle(o *Obstacle, cameraY float64)
	DrawPickup(p *Pickup, cameraY float64)
	DrawFuelPump(p *FuelPump, cameraY float64)
	DrawBridge(b *Bridge, cameraY float64, style BridgeStyle)
	DrawScoreDisplay(d *ScoreDisplay)
	DrawPlayer(c *Car, screenY float64, visible bool)
	DrawParticle(p *Particle)

	DrawStageBanner(stage int)
	DrawHUD(h HUD)
	DrawPauseBanner()
	DrawGameOver(score int, reason Reason, isNewHiscore bool)
}

// Render draws the current state. The game-over box is layered over the
// last frame of the finished run.
func (g *Game) Render(p Presenter) {
	switch g.State {
	case StateStart:
		p.BeginFrame(0, 0)
		p.DrawStartScreen(g.cfg.Variant, g.Hiscore)
		p.EndFrame()

	case StatePlaying:
		g.Session.draw(p)
		p.EndFrame()

	case StateGameOver:
		if g.Session != nil {
			g.Session.draw(p)
		} else {
			p.BeginFrame(0, 0)
		}
		p.DrawGameOver(g.Last.Score, g.Last.Reason, g.Last.NewHiscore)
		p.EndFrame()
	}
}

// draw issues the world, effects and HUD calls for one frame. It does not
// mutate the session.
func (s *Session) draw(p Presenter) {
	p.BeginFrame(s.Camera.ShakeX, s.Camera.ShakeY)
	cam := s.Camera.Y

	p.DrawRoad(cam, s.Stage)
	for i := range s.Scenery {
		p.DrawScenery(&s.Scenery[i], cam)
	}
	for i := range s.Enemies {
		p.DrawEnemy(&s.Enemies[i], cam)
	}
	for i := range s.Obstacles {
		p.DrawObstacle(&s.Obstacles[i], cam)
	}
	for i := range s.Pickups {
		p.DrawPickup(&s.Pickups[i], cam)
	}
	for i := range s.Pumps {
		p.DrawFuelPump(&s.Pumps[i], cam)
	}
	for i := range s.Bridges {
		p.DrawBridge(&s.Bridges[i], cam, s.Variant.Bridge)
	}
	for i := range s.Displays {
		p.DrawScoreDisplay(&s.Displays[i])
	}

	p.DrawPlayer(&s.Player, PlayerScreenY, s.PlayerVisible())

	if s.Particles.Active {
		for i := range s.Particles.P {
			p.DrawParticle(&s.Particles.P[i])
		}
	}
	if s.StageBanner > 0 {
		p.DrawStageBanner(s.Stage)
	}
	p.DrawHUD(s.HUD())
	if s.Paused {
		p.DrawPauseBanner()
	}
}
