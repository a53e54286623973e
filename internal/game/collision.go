package game

import "math"

func (s *Session) playerRect() RectF {
	return s.Player.ScreenRect(PlayerScreenY)
}

// collide resolves the player against every entity list in a fixed order.
// Bridges come last and override whatever ended the run earlier this tick.
func (s *Session) collide() {
	pr := s.playerRect()
	s.collideEnemies(pr)
	s.collideObstacles(pr)
	s.collidePickups(pr)
	s.collidePumps(pr)
	s.collideBridges(pr)
}

// canCrush reports whether the player is high enough to land on a rival.
func (s *Session) canCrush() bool {
	return s.Player.Jumping && s.Player.JumpHeight > CrushMinHeight
}

func (s *Session) collideEnemies(pr RectF) {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		screenY := s.Camera.ScreenY(e.Y)
		if pr.Intersects(e.ScreenRect(screenY)) {
			if s.canCrush() {
				s.crush(&e, screenY)
				continue
			}
			if !s.Invulnerable {
				s.bump(&e)
			}
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
}

func (s *Session) crush(e *Car, screenY float64) {
	s.addScore(ScoreCrush)
	s.Displays = append(s.Displays, ScoreDisplay{
		X:     e.X + 15,
		Y:     screenY,
		Value: ScoreCrush,
		TTL:   CrushDisplayTTL,
	})
	s.events.Emit(Event{Type: EventCrush, X: e.X, Y: screenY, Data: ScoreCrush})
}

// bump costs a life, starts invulnerability and shoves the rival away
// from the player.
func (s *Session) bump(e *Car) {
	p := &s.Player
	s.Lives--
	s.Invulnerable = true
	s.InvulnerableTimer = 0

	cx := math.Floor((p.X+e.X)/2) + 15
	cy := PlayerScreenY + 25.0
	s.Particles.SpawnCrash(s.rng, cx, cy, p.Color, e.Color)

	if p.X < e.X {
		e.TurnSpeed = BumpTurnImpulse
	} else {
		e.TurnSpeed = -BumpTurnImpulse
	}
	e.Hop(EnemyHopImpulse)
	s.Camera.AddShake(6, 20)
	s.events.Emit(Event{Type: EventBump, X: cx, Y: cy, Data: s.Lives})

	if s.Lives <= 0 {
		s.endRun(ReasonNoLivesRemaining)
	}
}

// collideObstacles ends the run on contact unless the player is airborne.
// Obstacles are never removed by a hit.
func (s *Session) collideObstacles(pr RectF) {
	if s.Player.Jumping {
		return
	}
	cam := s.Camera.Y
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if !pr.Intersects(o.ScreenRect(cam)) {
			continue
		}
		if o.Kind == ObstacleWater {
			s.endRun(ReasonFellIntoWater)
		} else {
			s.endRun(ReasonCrashedIntoObstacle)
		}
	}
}

func (s *Session) collidePickups(pr RectF) {
	cam := s.Camera.Y
	kept := s.Pickups[:0]
	for _, p := range s.Pickups {
		if pr.Intersects(p.ScreenRect(cam)) {
			s.addScore(ScorePickup)
			s.events.Emit(Event{Type: EventPickup, X: p.X, Y: s.Camera.ScreenY(p.Y), Data: ScorePickup})
			continue
		}
		kept = append(kept, p)
	}
	s.Pickups = kept
}

func (s *Session) collidePumps(pr RectF) {
	cam := s.Camera.Y
	kept := s.Pumps[:0]
	for _, p := range s.Pumps {
		if pr.Intersects(p.ScreenRect(cam)) {
			s.Fuel.Refill(FuelPumpRefill)
			s.addScore(ScoreFuelPump)
			s.events.Emit(Event{Type: EventRefuel, X: p.X, Y: s.Camera.ScreenY(p.Y), Data: ScoreFuelPump})
			continue
		}
		kept = append(kept, p)
	}
	s.Pumps = kept
}

// collideBridges ends the run when the player meets a bridge slab without
// enough height. This overrides any reason set earlier in the tick.
func (s *Session) collideBridges(pr RectF) {
	cam := s.Camera.Y
	for i := range s.Bridges {
		if !pr.Intersects(s.Bridges[i].ClearanceRect(cam)) {
			continue
		}
		if s.Player.Jumping && s.Player.JumpHeight >= BridgeClearance {
			continue
		}
		s.Over = true
		s.Reason = ReasonCrashedIntoBridge
		return
	}
}
