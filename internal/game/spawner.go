package game

// SpawnTimer counts ticks toward the next spawn of one entity kind.
type SpawnTimer struct {
	Count int
	Delay int
}

func (t *SpawnTimer) ready() bool {
	t.Count++
	if t.Count < t.Delay {
		return false
	}
	t.Count = 0
	return true
}

// Spawner paces every entity kind with its own counter. Enemy and obstacle
// delays come from the stage; the bridge delay ratchets down on its own.
type Spawner struct {
	Enemy    SpawnTimer
	Obstacle SpawnTimer
	Pickup   SpawnTimer
	Pump     SpawnTimer
	Bridge   SpawnTimer
	Scenery  SpawnTimer

	Theme SceneryTheme
}

func NewSpawner(stage int) Spawner {
	sp := Spawner{Bridge: SpawnTimer{Delay: BridgeStartDelay}}
	sp.SetStage(stage)
	return sp
}

// SetStage reloads the per-stage delays. Counters and the bridge ratchet
// carry over.
func (sp *Spawner) SetStage(stage int) {
	cfg := GetStageConfig(stage)
	sp.Enemy.Delay = cfg.EnemyDelay
	sp.Obstacle.Delay = cfg.ObstacleDelay
	sp.Pickup.Delay = cfg.PickupDelay
	sp.Pump.Delay = cfg.FuelPumpDelay
	sp.Scenery.Delay = cfg.SceneryDelay
	sp.Theme = cfg.Theme
}

// Update advances every counter and spawns whatever is due, in a fixed
// order so runs replay identically from the same seed.
func (sp *Spawner) Update(s *Session) {
	if sp.Enemy.ready() {
		s.spawnEnemy()
	}
	if sp.Obstacle.ready() {
		s.spawnObstacle()
	}
	if sp.Pickup.ready() {
		s.spawnPickup()
	}
	if sp.Pump.ready() {
		s.spawnFuelPump()
	}
	if sp.Bridge.ready() {
		s.spawnBridge()
		sp.Bridge.Delay = NextBridgeDelay(sp.Bridge.Delay)
	}
	if sp.Scenery.ready() {
		s.spawnScenery(sp.Theme)
	}
}

func (s *Session) spawnEnemy() {
	y := s.Camera.Y - float64(s.rng.Range(100, 300))
	b := Bounds(y, s.Stage)
	x := float64(s.rng.Range(b.Left+RoadEdgeInset, b.Right-40))
	e := NewCar(x, y, CarColors[s.rng.Intn(len(CarColors))], CarEnemy)
	e.Speed = s.rng.RangeF(1, 4)
	s.Enemies = append(s.Enemies, e)
}

func (s *Session) spawnObstacle() {
	y := s.Camera.Y - float64(s.rng.Range(200, 400))
	b := Bounds(y, s.Stage)
	x := float64(s.rng.Range(b.Left+20, b.Right-60))
	kind := ObstacleKind(s.rng.Intn(2))
	s.Obstacles = append(s.Obstacles, Obstacle{X: x, Y: y, Kind: kind})
}

func (s *Session) spawnPickup() {
	y := s.Camera.Y - float64(s.rng.Range(150, 300))
	b := Bounds(y, s.Stage)
	x := float64(s.rng.Range(b.Left+15, b.Right-35))
	s.Pickups = append(s.Pickups, Pickup{X: x, Y: y})
}

// spawnFuelPump drops a pump below the camera row; the double advance in
// the tick carries it up into the player's path.
func (s *Session) spawnFuelPump() {
	y := s.Camera.Y + float64(s.rng.Range(200, 400))
	b := Bounds(y, s.Stage)
	x := float64(s.rng.Range(b.Left+20, b.Right-45))
	s.Pumps = append(s.Pumps, FuelPump{X: x, Y: y})
}

func (s *Session) spawnBridge() {
	y := s.Camera.Y - float64(s.rng.Range(300, 500))
	s.Bridges = append(s.Bridges, Bridge{Y: y, Stage: s.Stage})
}

// spawnScenery places one decoration on a random shoulder. Narrow
// shoulders that cannot fit it are skipped.
func (s *Session) spawnScenery(theme SceneryTheme) {
	if len(theme.Kinds) == 0 {
		return
	}
	y := s.Camera.Y + float64(s.rng.Range(200, 500))
	b := Bounds(y, s.Stage)
	kind := theme.Kinds[s.rng.Intn(len(theme.Kinds))]

	lo, hi := 10, b.Left-40
	if s.rng.Bool() {
		lo, hi = b.Right+20, SceneryMaxX
	}
	if hi < lo {
		return
	}
	x := s.rng.Range(lo, hi)
	if x <= 0 || x >= SceneryMaxX {
		return
	}

	scale := s.Variant.SceneryScale
	if scale <= 0 {
		scale = 1
	}
	s.Scenery = append(s.Scenery, Scenery{
		X:      float64(x),
		Y:      y,
		Kind:   kind,
		Stage:  s.Stage,
		Width:  SceneryWidth * scale,
		Height: SceneryHeight * scale,
	})
}
