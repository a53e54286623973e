package term

import (
	"math"
	"strconv"

	"bumpjump/internal/game"
)

var (
	brick    = game.RGB{R: 180, G: 50, B: 50}
	concrete = game.RGB{R: 170, G: 170, B: 160}
)

// Screen is the terminal rendition of a frame: coarse blocks for the
// road and entities, a glyph per decoration, text rows for the HUD.
type Screen struct {
	c *canvas
}

var _ game.Presenter = (*Screen)(nil)

func (s *Screen) BeginFrame(shakeX, shakeY float64) {
	s.c.begin()
	s.c.setOffset(shakeX, shakeY)
}

func (s *Screen) EndFrame() { s.c.screen.Show() }

func (s *Screen) DrawStartScreen(v game.Variant, hiscore int) {
	c := s.c
	c.fill(0, 0, 150, game.ScreenHeight, game.Palette.Grass)
	c.fill(450, 0, 150, game.ScreenHeight, game.Palette.Grass)
	c.fill(150, 0, 300, game.ScreenHeight, game.Palette.Road)
	c.fill(100, 190, 400, 230, game.Palette.Black)

	c.centered(210, v.Title, game.Palette.Yellow)
	c.centered(250, v.Subtitle, game.Palette.Silver)
	lines := []string{
		"ARROWS/WASD: Steer and accelerate",
		"SPACE: Jump over obstacles",
		"BUMP rivals off the road!",
		"",
		"Press any key to start",
	}
	for i, line := range lines {
		col := game.Palette.White
		if i == len(lines)-1 {
			col = game.Palette.Yellow
		}
		c.centered(float64(300+i*25), line, col)
	}
	if hiscore > 0 {
		c.centered(550, "HIGH SCORE: "+strconv.Itoa(hiscore), game.Palette.Yellow)
	}
}

// DrawRoad paints one road strip per cell row, sampled at the row centre.
func (s *Screen) DrawRoad(cameraY float64, stage int) {
	c := s.c
	c.fill(0, 0, game.ScreenWidth, game.ScreenHeight, game.GroundColor(stage))
	for row := 0; row < c.rows; row++ {
		y := c.rowY(row)
		worldY := cameraY + y
		rb := game.Bounds(worldY, stage)
		c.fill(float64(rb.Left), y, float64(rb.Width), 1, game.Palette.Road)
		if stage >= 3 {
			c.glyph(float64(rb.Left-10), y, '▐', game.Palette.Guardrail)
			c.glyph(float64(rb.Right+5), y, '▌', game.Palette.Guardrail)
		}
		if int(math.Floor(worldY))%40 < 20 {
			c.glyph(float64(rb.Center()), y, '┃', game.Palette.RoadLine)
		}
	}
}

func (s *Screen) DrawScenery(sc *game.Scenery, cameraY float64) {
	y := sc.Y - cameraY
	ch, col := '♣', game.Palette.DarkGreen
	switch sc.Kind {
	case game.SceneryHouse:
		ch, col = '⌂', game.Palette.Brown
	case game.SceneryWaterFeature:
		ch, col = '≈', game.Palette.Water
	case game.SceneryCactus:
		ch, col = 'Ψ', game.Palette.DarkGreen
	case game.SceneryRock:
		ch, col = '●', game.Palette.Gray
	}
	s.c.glyph(sc.X+sc.Width/2, y+sc.Height/2, ch, col)
}

func (s *Screen) drawCar(c *game.Car, y float64, nose rune) {
	if c.Jumping && c.JumpHeight > 0 {
		s.c.fill(c.X+5, y+34, 26, 10, game.Palette.Shadow)
	}
	top := y - c.JumpHeight
	s.c.fill(c.X, top, c.Width, c.Height, c.Color)
	mark := game.Palette.Black
	if int(c.Color.R)+int(c.Color.G)+int(c.Color.B) < 400 {
		mark = game.Palette.White
	}
	s.c.glyph(c.X+c.Width/2, top+c.Height/2, nose, mark)
}

func (s *Screen) DrawEnemy(c *game.Car, cameraY float64) {
	s.drawCar(c, c.Y-cameraY, '▼')
}

func (s *Screen) DrawObstacle(o *game.Obstacle, cameraY float64) {
	y := o.Y - cameraY
	if o.Kind == game.ObstacleWater {
		s.c.fill(o.X, y, game.ObstacleWidth*3, game.ObstacleHeight, game.Palette.Water)
		return
	}
	s.c.fill(o.X, y, game.ObstacleWidth, game.ObstacleHeight, game.Palette.Brown)
	s.c.glyph(o.X+game.ObstacleWidth/2, y+game.ObstacleHeight/2, 'O', game.Palette.DarkGray)
}

func (s *Screen) DrawPickup(p *game.Pickup, cameraY float64) {
	y := p.Y - cameraY
	s.c.fill(p.X, y, game.PickupSize, game.PickupSize, game.Palette.Red)
	s.c.glyph(p.X+game.PickupSize/2, y+game.PickupSize/2, 'F', game.Palette.White)
}

func (s *Screen) DrawFuelPump(p *game.FuelPump, cameraY float64) {
	y := p.Y - cameraY
	s.c.fill(p.X, y+10, game.FuelPumpWidth, game.FuelPumpHeight-10, game.Palette.Red)
	s.c.glyph(p.X+game.FuelPumpWidth/2, y+25, 'P', game.Palette.Green)
}

func (s *Screen) DrawBridge(b *game.Bridge, cameraY float64, style game.BridgeStyle) {
	y := b.Y - cameraY
	rb := b.Bounds()
	left, width := float64(rb.Left), float64(rb.Width)
	col := brick
	if style == game.BridgeOverpass {
		col = concrete
	}
	s.c.fill(left-20, y-15, 25, game.BridgeHeight+25, col)
	s.c.fill(float64(rb.Right)-5, y-15, 25, game.BridgeHeight+25, col)
	s.c.fill(left, y, width, 18, col)
	s.c.fill(left+8, y+18, width-16, 25, game.Palette.Shadow)
}

func (s *Screen) DrawScoreDisplay(d *game.ScoreDisplay) {
	col := game.Palette.Yellow
	if d.Label != "" {
		col = game.Palette.Cyan
	}
	s.c.text(d.X, d.Y, d.Text(), col)
}

func (s *Screen) DrawPlayer(c *game.Car, screenY float64, visible bool) {
	if visible {
		s.drawCar(c, screenY, '▲')
	}
}

func (s *Screen) DrawParticle(p *game.Particle) {
	s.c.glyph(p.X, p.Y, '*', p.Col)
}

func (s *Screen) DrawStageBanner(stage int) {
	s.c.setOffset(0, 0)
	s.c.fill(150, 365, 300, 70, game.Palette.BannerBack)
	s.c.centered(380, "STAGE "+strconv.Itoa(stage), game.Palette.Yellow)
	s.c.centered(410, game.StageName(stage), game.Palette.White)
}

// DrawHUD packs the three HUD lines into the top rows.
func (s *Screen) DrawHUD(h game.HUD) {
	c := s.c
	c.setOffset(0, 0)
	c.fill(0, 0, game.ScreenWidth, 80, game.Palette.Black)

	c.text(10, 10, "SCORE: "+strconv.Itoa(h.Score), game.Palette.White)
	c.text(200, 10, "HI SCORE: "+strconv.Itoa(h.Hiscore), game.Palette.Yellow)
	c.text(400, 10, "STAGE: "+strconv.Itoa(h.Stage), game.Palette.Cyan)

	c.text(10, 35, "FUEL: "+strconv.Itoa(max(0, int(math.Round(h.Fuel)))), game.FuelColor(h.Fuel))
	lives := game.Palette.White
	if h.Lives <= 2 {
		lives = game.Palette.Red
	}
	c.text(200, 35, "LIVES: "+strconv.Itoa(h.Lives), lives)
	c.text(400, 35, "SPEED: "+strconv.Itoa(int(h.Speed)), game.Palette.White)

	switch secs := h.JumpCooldown/game.TicksPerSecond + 1; {
	case h.JumpCooldown == 0:
		c.text(10, 60, "JUMP: ▲", game.Palette.Green)
	case secs > 1:
		c.text(10, 60, "JUMP: "+strconv.Itoa(secs), game.Palette.Orange)
	default:
		c.text(10, 60, "JUMP: READY", game.Palette.Green)
	}
}

func (s *Screen) DrawPauseBanner() {
	s.c.setOffset(0, 0)
	s.c.fill(150, 350, 300, 100, game.Palette.Black)
	s.c.centered(385, "PAUSED", game.Palette.Cyan)
	s.c.centered(420, "Press P to resume", game.Palette.White)
}

func (s *Screen) DrawGameOver(score int, reason game.Reason, isNewHiscore bool) {
	c := s.c
	c.setOffset(0, 0)
	c.fill(100, 300, 400, 200, game.Palette.Black)
	c.centered(340, "GAME OVER", game.Palette.Red)
	c.centered(380, reason.String(), game.Palette.White)
	off := 0.0
	if isNewHiscore {
		c.centered(400, "NEW HIGH SCORE!", game.Palette.Yellow)
		off = 20
	}
	c.centered(420+off, "FINAL SCORE: "+strconv.Itoa(score), game.Palette.White)
	c.centered(455+off, "Press SPACE to play again", game.Palette.Yellow)
	c.centered(478+off, "Press ESC to quit", game.Palette.White)
}
