package desktop

import "bumpjump/internal/game"

// carSpan is the unscaled length of the car sprite, nose to rear wing.
const carSpan = 45.0

// carPart is one rectangle of the car sprite relative to the car's
// horizontal centre and top edge, in unscaled pixels.
type carPart struct {
	x, y, w, h float64
	col        func(c *game.Car) game.RGB
}

func solid(col game.RGB) func(*game.Car) game.RGB {
	return func(*game.Car) game.RGB { return col }
}

func paint(c *game.Car) game.RGB { return c.Color }

var carParts = []carPart{
	{-22, 8, 10, 14, solid(game.Palette.Black)}, // front wheels
	{16, 8, 10, 14, solid(game.Palette.Black)},
	{-22, 2, 40, 3, solid(game.Palette.DarkGray)}, // front wing
	{-18, 5, 36, 2, solid(game.Palette.Silver)},
	{-4, 12, 8, 18, paint},                       // monocoque
	{-3, 14, 6, 8, solid(game.Palette.Black)},    // cockpit
	{-22, 26, 10, 14, solid(game.Palette.Black)}, // rear wheels
	{16, 26, 10, 14, solid(game.Palette.Black)},
	{-16, 40, 32, 3, solid(game.Palette.DarkGray)}, // rear wing
	{-14, 43, 28, 2, solid(game.Palette.Silver)},
	{-16, 38, 3, 7, solid(game.Palette.DarkGray)}, // endplates
	{13, 38, 3, 7, solid(game.Palette.DarkGray)},
	{-2, 38, 2, 5, solid(game.Palette.DarkGray)}, // wing supports
	{0, 38, 2, 5, solid(game.Palette.DarkGray)},
	{-10, 16, 3, 6, solid(game.Palette.Black)}, // intakes
	{7, 16, 3, 6, solid(game.Palette.Black)},
}

// carPolys are the angled body panels, same frame as carParts.
var carPolys = []struct {
	pts  [][2]float64
	nose bool
}{
	{[][2]float64{{0, 7}, {-6, 12}, {6, 12}}, true},
	{[][2]float64{{-18, 14}, {-6, 12}, {-6, 26}, {-16, 30}}, false},
	{[][2]float64{{18, 14}, {6, 12}, {6, 26}, {16, 30}}, false},
	{[][2]float64{{-4, 30}, {4, 30}, {2, 38}, {-2, 38}}, false},
}

// drawCar paints the open-wheel racer at (c.X, y) in screen space. Rivals
// face down the screen; the player is flipped to face up. The sprite grows
// with jump height.
func drawCar(r *Renderer, c *game.Car, y float64, flip bool) {
	if c.Jumping && c.JumpHeight > 0 {
		shadowY := y
		if c.Kind == game.CarEnemy {
			shadowY += c.ShadowY - c.Y
		}
		r.FillEllipseA(c.X+5, shadowY+34, 26, 10, game.Palette.Shadow, 0.8)
	}

	top := y - c.JumpHeight
	cx := c.X + c.Width/2
	s := 1.0 + (c.JumpHeight/100.0)*0.3

	mapY := func(py, h float64) float64 {
		if flip {
			return top + (carSpan-py-h)*s
		}
		return top + py*s
	}

	for _, p := range carParts {
		r.FillRect(cx+p.x*s, mapY(p.y, p.h), p.w*s, p.h*s, p.col(c))
	}
	for _, poly := range carPolys {
		col := c.Color
		if poly.nose {
			col = c.Color.Add(30, 30, 30)
		}
		pts := make([][2]float64, len(poly.pts))
		for i, pt := range poly.pts {
			pts[i] = [2]float64{cx + pt[0]*s, mapY(pt[1], 0)}
		}
		r.FillPolygon(pts, col)
	}

	helmet := game.Palette.Yellow
	if c.Kind == game.CarPlayer {
		helmet = game.Palette.White
		stripe := game.Palette.Black
		if int(c.Color.R)+int(c.Color.G)+int(c.Color.B) < 400 {
			stripe = game.Palette.White
		}
		r.FillRect(cx-1*s, mapY(14, 12), 2*s, 12*s, stripe)
	}
	r.FillCircle(cx, mapY(18, 0), 2*s, helmet)
}

func drawObstacle(r *Renderer, o *game.Obstacle, y float64) {
	switch o.Kind {
	case game.ObstacleWater:
		r.FillRect(o.X, y, game.ObstacleWidth*3, game.ObstacleHeight, game.Palette.Water)
	default:
		r.FillEllipse(o.X, y, game.ObstacleWidth, game.ObstacleHeight, game.Palette.Brown)
		r.FillEllipse(o.X+5, y+5, 30, 10, game.Palette.DarkGray)
	}
}

// drawPickup is a red gas can with an "F".
func drawPickup(r *Renderer, p *game.Pickup, y float64) {
	red, white := game.Palette.Red, game.Palette.White
	r.FillRect(p.X, y, game.PickupSize, game.PickupSize, red)
	r.FillRect(p.X+3, y+3, 14, 14, white)
	r.FillRect(p.X+6, y+6, 8, 8, red)
	r.FillRect(p.X+8, y+8, 2, 6, white)
	r.FillRect(p.X+8, y+8, 4, 2, white)
	r.FillRect(p.X+8, y+11, 3, 2, white)
}

func drawFuelPump(r *Renderer, p *game.FuelPump, y float64) {
	r.FillRect(p.X, y+20, game.FuelPumpWidth, 20, game.Palette.Gray)
	r.FillRect(p.X+3, y+10, 19, 15, game.Palette.Red)
	r.FillRect(p.X+20, y+15, 8, 3, game.Palette.Black)
	r.FillRect(p.X+6, y+12, 8, 6, game.Palette.Green)
	r.FillRect(p.X+22, y+18, 6, 2, game.Palette.Silver)
	r.FillRect(p.X+2, y+35, 21, 3, game.Palette.DarkGray)
	r.DrawString("FUEL", p.X+4, y+1, 0.62, game.Palette.White)
}

func drawScenery(r *Renderer, sc *game.Scenery, y float64) {
	// Sprites are authored for the 30x40 footprint and scaled to fit.
	k := sc.Width / game.SceneryWidth
	x := sc.X
	at := func(dx, dy float64) (float64, float64) { return x + dx*k, y + dy*k }
	rect := func(dx, dy, w, h float64, col game.RGB) {
		px, py := at(dx, dy)
		r.FillRect(px, py, w*k, h*k, col)
	}
	ellipse := func(dx, dy, w, h float64, col game.RGB) {
		px, py := at(dx, dy)
		r.FillEllipse(px, py, w*k, h*k, col)
	}
	circle := func(dx, dy, rad float64, col game.RGB) {
		px, py := at(dx, dy)
		r.FillCircle(px, py, rad*k, col)
	}

	switch sc.Kind {
	case game.SceneryTree:
		rect(10, 25, 8, 15, game.Palette.Brown)
		circle(14, 20, 12, game.Palette.DarkGreen)
		circle(11, 17, 4, game.Palette.Green)
	case game.SceneryHouse:
		rect(0, 15, 25, 20, game.Palette.Brown)
		x0, y0 := at(-2, 15)
		x1, y1 := at(12, 5)
		x2, y2 := at(27, 15)
		r.FillTriangle(x0, y0, x1, y1, x2, y2, game.Palette.Red, 1)
		rect(8, 25, 6, 10, game.Palette.DarkGray)
		rect(16, 20, 5, 5, game.Palette.Yellow)
	case game.SceneryWaterFeature:
		ellipse(0, 20, 20, 15, game.Palette.Water)
		ellipse(5, 22, 8, 6, game.Palette.DarkGreen)
	case game.SceneryCactus:
		rect(12, 10, 6, 25, game.Palette.DarkGreen)
		rect(6, 15, 8, 4, game.Palette.DarkGreen)
		rect(16, 20, 8, 4, game.Palette.DarkGreen)
		for i := range 3 {
			circle(14, float64(15+i*8), 1, game.Palette.White)
		}
	case game.SceneryRock:
		ellipse(0, 25, 25, 12, game.Palette.Gray)
		ellipse(5, 20, 15, 10, game.Palette.LightGray)
	}
}

var (
	brickRed    = game.RGB{R: 180, G: 50, B: 50}
	brickDark   = game.RGB{R: 140, G: 30, B: 30}
	mortar      = game.RGB{R: 220, G: 220, B: 200}
	bridgeShade = game.RGB{R: 30, G: 30, B: 30}
	concrete    = game.RGB{R: 170, G: 170, B: 160}
)

const (
	brickW     = 12
	brickH     = 6
	archHeight = 18
)

// drawBricks fills (x, y, w, h) with a running-bond brick pattern. When
// vary is set every third brick is darker.
func drawBricks(r *Renderer, x, y, w, h float64, vary bool) {
	r.FillRect(x, y, w, h, brickRed)
	for row := 0; row < int(h); row += brickH {
		offset := 0
		if (row/brickH)%2 == 1 {
			offset = brickW / 2
		}
		py := y + float64(row)
		for col := -offset; col < int(w)+offset; col += brickW {
			if col < 0 || col+brickW > int(w) {
				continue
			}
			px := x + float64(col)
			fill := brickRed
			if vary && (col+row)%3 == 0 {
				fill = brickDark
			}
			r.FillRect(px, py, brickW-1, brickH-1, fill)
			r.FillRect(px+brickW-1, py, 1, brickH, mortar)
			r.FillRect(px, py+brickH-1, brickW, 1, mortar)
		}
	}
}

// drawBridge spans the road at the bridge's own row. Both styles share the
// collision slab; only the look differs.
func drawBridge(r *Renderer, b *game.Bridge, y float64, style game.BridgeStyle) {
	if y <= -100 || y >= 900 {
		return
	}
	rb := b.Bounds()
	left, right, width := float64(rb.Left), float64(rb.Right), float64(rb.Width)
	pillarH := float64(game.BridgeHeight + 25)

	switch style {
	case game.BridgeOverpass:
		r.FillRect(left-20, y-15, 20, pillarH, concrete)
		r.FillRect(right, y-15, 20, pillarH, concrete)
		r.FillRect(left-20, y, width+40, archHeight, concrete)
		r.FillRect(left-20, y+archHeight-3, width+40, 3, game.Palette.DarkGray)
		for px := left - 16; px < right+16; px += 12 {
			r.FillRect(px, y-6, 3, 6, game.Palette.LightGray)
		}
		r.FillRect(left-20, y-8, width+40, 2, game.Palette.LightGray)
	default:
		drawBricks(r, left-20, y-15, 25, pillarH, false)
		drawBricks(r, right-5, y-15, 25, pillarH, false)
		drawBricks(r, left, y, width, archHeight, true)
		r.FillRect(left-5, y-3, width+10, 3, mortar)
	}
	r.FillRectA(left+8, y+archHeight, width-16, 25, bridgeShade, 0.85)

	if y > 60 && y < 150 {
		drawBridgeSign(r, left+width/2-15, y+50)
	}
}

// drawBridgeSign is the yellow diamond warning that shows while a bridge
// is approaching.
func drawBridgeSign(r *Renderer, x, y float64) {
	r.FillRect(x+13, y+20, 4, 25, game.Palette.Brown)
	r.FillPolygon([][2]float64{{x + 15, y - 2}, {x + 32, y + 10}, {x + 15, y + 22}, {x - 2, y + 10}}, game.Palette.Black)
	r.FillPolygon([][2]float64{{x + 15, y}, {x + 30, y + 10}, {x + 15, y + 20}, {x, y + 10}}, game.Palette.Yellow)
	r.FillRect(x+8, y+9, 14, 2, game.Palette.Black)
	r.FillRect(x+7, y+10, 2, 5, game.Palette.Black)
	r.FillRect(x+21, y+10, 2, 5, game.Palette.Black)
}

// drawRoad fills the ground for the stage theme, then the curved road in
// 10px strips, guardrails from stage 3 and the scrolling centre line.
func drawRoad(r *Renderer, cameraY float64, stage int) {
	r.FillRect(0, 0, game.ScreenWidth, game.ScreenHeight, game.GroundColor(stage))

	for y := 0; y < game.ScreenHeight; y += 10 {
		rb := game.Bounds(cameraY+float64(y), stage)
		fy := float64(y)
		r.FillRect(float64(rb.Left), fy, float64(rb.Width), 10, game.Palette.Road)
		if stage >= 3 && y%20 == 0 {
			r.FillRect(float64(rb.Left-10), fy, 5, 15, game.Palette.Guardrail)
			r.FillRect(float64(rb.Right+5), fy, 5, 15, game.Palette.Guardrail)
		}
	}

	off := int(cameraY) % 40
	for y := -off; y < game.ScreenHeight; y += 40 {
		rb := game.Bounds(cameraY+float64(y), stage)
		r.FillRect(float64(rb.Center()-5), float64(y), 10, 20, game.Palette.RoadLine)
	}
}
