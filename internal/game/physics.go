package game

import "math"

// steer moves turn speed toward the held direction, or lets it decay
// exponentially toward zero.
func (s *Session) steer(in Controls) {
	p := &s.Player
	switch {
	case in.Left:
		p.TurnSpeed = max(p.TurnSpeed-CarTurnAccel, -p.MaxTurnSpeed)
	case in.Right:
		p.TurnSpeed = min(p.TurnSpeed+CarTurnAccel, p.MaxTurnSpeed)
	default:
		p.TurnSpeed *= CarTurnDecay
	}
}

// throttle never lets the car stop: coasting settles at cruise speed and
// braking at a crawl.
func (s *Session) throttle(in Controls) {
	p := &s.Player
	switch {
	case in.Accelerate:
		p.Speed = min(p.Speed+p.Acceleration, p.MaxSpeed)
	case in.Brake:
		p.Speed = max(p.Speed-p.Deceleration, CarBrakeSpeed)
	default:
		p.Speed = max(p.Speed-CarCoastDecel, CarCruiseSpeed)
	}
}

// tryJump starts the arc when grounded and the cooldown has run out.
func (s *Session) tryJump() {
	p := &s.Player
	if p.Jumping || s.JumpCooldown > 0 {
		return
	}
	p.Jumping = true
	p.JumpHeight = 0
	p.JumpVelocity = 0
	s.JumpTimer = JumpDuration
	s.events.Emit(Event{Type: EventJump, X: p.X, Y: PlayerScreenY})
}

// JumpArc is the player's height after elapsed ticks of a jump.
func JumpArc(elapsed int) float64 {
	if elapsed <= 0 || elapsed >= JumpDuration {
		return 0
	}
	progress := float64(elapsed) / JumpDuration
	return JumpPeakHeight * math.Sin(progress*math.Pi)
}

// updatePlayerJump follows the timed arc; the cooldown starts on landing.
func (s *Session) updatePlayerJump() {
	p := &s.Player
	if !p.Jumping {
		return
	}
	if s.JumpTimer > 0 {
		p.JumpHeight = JumpArc(JumpDuration - s.JumpTimer)
		s.JumpTimer--
		return
	}
	p.JumpHeight = 0
	p.Jumping = false
	p.JumpVelocity = 0
	s.JumpCooldown = JumpCooldownMax
	s.events.Emit(Event{Type: EventLand, X: p.X, Y: PlayerScreenY})
}

// clampPlayer keeps the player on the road at its own world row.
func (s *Session) clampPlayer() {
	b := Bounds(s.PlayerWorldY(), s.Stage)
	lo := float64(b.Left + RoadEdgeInset)
	hi := float64(b.Right) - s.Player.Width
	if s.Player.X < lo {
		s.Player.X = lo
	} else if s.Player.X > hi {
		s.Player.X = hi
	}
}

// updateEnemies moves rivals at closing speed, bounces them off the road
// edges and drops the ones that fell behind.
func (s *Session) updateEnemies() {
	limit := s.Camera.Y + EnemyCullMargin
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.Y += s.Player.Speed + e.Speed
		e.X += e.TurnSpeed
		e.updateHop()
		e.ShadowY = e.Y

		b := Bounds(e.Y, s.Stage)
		lo := float64(b.Left + RoadEdgeInset)
		hi := float64(b.Right) - e.Width
		if e.X < lo {
			e.X = lo
			e.TurnSpeed = math.Abs(e.TurnSpeed)
		} else if e.X > hi {
			e.X = hi
			e.TurnSpeed = -math.Abs(e.TurnSpeed)
		}

		if e.Y > limit {
			continue
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
}

// updatePumps is the first of two pump advances per tick; see advanceStatic.
func (s *Session) updatePumps() {
	limit := s.Camera.Y + EnemyCullMargin
	kept := s.Pumps[:0]
	for _, p := range s.Pumps {
		p.Y += s.Player.Speed
		if p.Y > limit {
			continue
		}
		kept = append(kept, p)
	}
	s.Pumps = kept
}

func (s *Session) updateScenery() {
	limit := s.Camera.Y + SceneryCullMargin
	kept := s.Scenery[:0]
	for _, sc := range s.Scenery {
		sc.Y += s.Player.Speed + BridgeApproach
		if sc.Y > limit {
			continue
		}
		kept = append(kept, sc)
	}
	s.Scenery = kept
}

// advanceStatic moves world-fixed entities after collisions have been
// resolved against their previous positions.
func (s *Session) advanceStatic() {
	v := s.Player.Speed
	for i := range s.Obstacles {
		s.Obstacles[i].Y += v
	}
	for i := range s.Pickups {
		s.Pickups[i].Y += v
	}
	for i := range s.Pumps {
		s.Pumps[i].Y += v
	}
	for i := range s.Bridges {
		s.Bridges[i].Y += v + BridgeApproach
	}
}

// prune drops everything that has scrolled well past the player.
func (s *Session) prune() {
	limit := s.Camera.Y + EntityCullMargin
	s.Obstacles = keepBefore(s.Obstacles, limit, func(o *Obstacle) float64 { return o.Y })
	s.Pickups = keepBefore(s.Pickups, limit, func(p *Pickup) float64 { return p.Y })
	s.Pumps = keepBefore(s.Pumps, limit, func(p *FuelPump) float64 { return p.Y })
	s.Bridges = keepBefore(s.Bridges, limit, func(b *Bridge) float64 { return b.Y })
	s.Scenery = keepBefore(s.Scenery, limit, func(sc *Scenery) float64 { return sc.Y })
}

// keepBefore compacts items in place, keeping those with y < limit.
func keepBefore[T any](items []T, limit float64, y func(*T) float64) []T {
	kept := items[:0]
	for i := range items {
		if y(&items[i]) < limit {
			kept = append(kept, items[i])
		}
	}
	return kept
}
