package game

// Playfield dimensions (in screen pixels).
const (
	ScreenWidth  = 600
	ScreenHeight = 800
	ScreenCenter = ScreenWidth / 2
)

// Fixed simulation rate. The game is frame-locked; there is no delta time.
const TicksPerSecond = 60

// Road layout.
const (
	RoadBaseWidth   = 300
	RoadWidthStep   = 20 // narrower per stage
	RoadMinWidth    = 180
	RoadMarginLeft  = 50
	RoadMarginRight = 550
	RoadEdgeInset   = 10 // cars keep this far from the left edge
)

// Car physics/visual.
const (
	CarWidth        = 36
	CarHeight       = 42
	CarMaxSpeed     = 8.0
	CarAccel        = 0.3
	CarDecel        = 0.2
	CarCoastDecel   = 0.1
	CarCruiseSpeed  = 2.0 // minimum speed without braking
	CarBrakeSpeed   = 1.0 // minimum speed while braking
	CarMaxTurnSpeed = 4.0
	CarTurnAccel    = 0.5
	CarTurnDecay    = 0.8
)

// Player placement and lifecycle.
const (
	PlayerScreenY = 600 // player is drawn at a fixed screen row
	PlayerStartX  = 300
	PlayerStartY  = 500
	StartLives    = 5
)

// Jump arc (player) and hop (enemy).
const (
	JumpDuration    = 180 // ticks, 3s
	JumpCooldownMax = 300 // ticks, 5s; starts at landing
	JumpPeakHeight  = 40.0
	CrushMinHeight  = 10.0 // player must be above this to crush an enemy
	EnemyHopImpulse = 6.0
	EnemyGravity    = -0.5
)

// Fuel, stored in tenths of a unit.
const (
	FuelMax          = 1000
	FuelDrainPerTick = 1
	FuelPumpRefill   = 600
)

// Scoring.
const (
	ScoreCrush        = 200
	ScorePickup       = 25
	ScoreFuelPump     = 100
	HiscoreBannerTTL  = 180
	CrushDisplayTTL   = 60
	HiscoreBannerText = "NEW HI-SCORE!"
)

// Stage progression.
const (
	StageDistance       = 2000.0
	StageBannerDuration = 120 // ticks, 2s
)

// Collision response.
const (
	InvulnerableTicks   = 120
	BumpTurnImpulse     = 8.0
	CrashParticleCount  = 30
	CrashAnimationTicks = 90
	ParticleGravity     = 0.3
	ParticleShrink      = 0.1
)

// Entity sizes.
const (
	ObstacleWidth     = 40
	ObstacleHeight    = 20
	PickupSize        = 20
	FuelPumpWidth     = 25
	FuelPumpHeight    = 40
	BridgeHeight      = 40
	BridgeClearance   = 25
	SceneryWidth      = 30
	SceneryHeight     = 40
	SceneryMaxX       = 570
	BridgeApproach    = 2.0 // bridges and scenery close in faster than the road
	EnemyCullMargin   = 700
	EntityCullMargin  = 900
	SceneryCullMargin = 800
)
