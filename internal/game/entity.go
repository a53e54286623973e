package game

import "strconv"

type CarKind uint8

const (
	CarPlayer CarKind = iota
	CarEnemy
)

// Car is both the player's car and the rivals.
type Car struct {
	X, Y         float64
	Color        RGB
	Width        float64
	Height       float64
	Speed        float64
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	TurnSpeed    float64
	MaxTurnSpeed float64
	Kind         CarKind

	Jumping      bool
	JumpHeight   float64
	JumpVelocity float64
	ShadowY      float64
}

func NewCar(x, y float64, col RGB, kind CarKind) Car {
	return Car{
		X: x, Y: y,
		Color:        col,
		Width:        CarWidth,
		Height:       CarHeight,
		MaxSpeed:     CarMaxSpeed,
		Acceleration: CarAccel,
		Deceleration: CarDecel,
		MaxTurnSpeed: CarMaxTurnSpeed,
		Kind:         kind,
		ShadowY:      y,
	}
}

// Hop starts an enemy jump. It is a no-op while already airborne.
func (c *Car) Hop(impulse float64) {
	if c.Jumping {
		return
	}
	c.Jumping = true
	c.JumpVelocity = impulse
}

// updateHop integrates the enemy jump under gravity.
func (c *Car) updateHop() {
	if !c.Jumping {
		return
	}
	c.JumpVelocity += EnemyGravity
	c.JumpHeight += c.JumpVelocity
	if c.JumpHeight <= 0 {
		c.JumpHeight = 0
		c.Jumping = false
		c.JumpVelocity = 0
	}
}

// ScreenRect returns the car footprint given its screen row.
func (c *Car) ScreenRect(screenY float64) RectF {
	return Rect(c.X, screenY, c.Width, c.Height)
}

type ObstacleKind uint8

const (
	ObstacleBarrel ObstacleKind = iota
	ObstacleWater
)

func (k ObstacleKind) String() string {
	if k == ObstacleWater {
		return "water"
	}
	return "barrel"
}

type Obstacle struct {
	X, Y float64
	Kind ObstacleKind
}

func (o *Obstacle) ScreenRect(cameraY float64) RectF {
	return Rect(o.X, o.Y-cameraY, ObstacleWidth, ObstacleHeight)
}

// Bridge spans the whole road. Its horizontal extent is derived from the
// road at its own row every time it is needed, never stored.
type Bridge struct {
	Y     float64
	Stage int
}

func (b *Bridge) Bounds() RoadBounds {
	return Bounds(b.Y, b.Stage)
}

// ClearanceRect is the slab a car must be high enough to pass over.
func (b *Bridge) ClearanceRect(cameraY float64) RectF {
	rb := b.Bounds()
	return Rect(float64(rb.Left), b.Y-cameraY, float64(rb.Width), BridgeClearance)
}

// Pickup awards score only; fuel comes from pumps.
type Pickup struct {
	X, Y float64
}

func (p *Pickup) ScreenRect(cameraY float64) RectF {
	return Rect(p.X, p.Y-cameraY, PickupSize, PickupSize)
}

type FuelPump struct {
	X, Y float64
}

func (p *FuelPump) ScreenRect(cameraY float64) RectF {
	return Rect(p.X, p.Y-cameraY, FuelPumpWidth, FuelPumpHeight)
}

// Scenery is decorative and never collides.
type Scenery struct {
	X, Y          float64
	Kind          SceneryKind
	Stage         int
	Width, Height float64
}

// ScoreDisplay is a floating "+200" or banner label.
type ScoreDisplay struct {
	X, Y  float64
	Value int
	Label string // non-empty for text banners
	TTL   int
}

// Text returns what the presentation should print.
func (d *ScoreDisplay) Text() string {
	if d.Label != "" {
		return d.Label
	}
	return "+" + strconv.Itoa(d.Value)
}
