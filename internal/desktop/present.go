package desktop

import (
	"math"
	"strconv"

	"bumpjump/internal/game"
)

// fontScale converts a point size in playfield pixels to an atlas scale.
func fontScale(px float64) float32 { return float32(px / FontCellH) }

var titleColors = []game.RGB{
	game.Palette.Red, game.Palette.Orange, game.Palette.Yellow, game.Palette.Green,
	game.Palette.Cyan, game.Palette.Blue, game.Palette.Purple, game.Palette.White,
	game.Palette.Silver,
}

// Screen draws frames through the GL renderer. World calls follow the
// camera shake; banners and the HUD are pinned to the screen.
type Screen struct {
	r        *Renderer
	fbW, fbH int
}

var _ game.Presenter = (*Screen)(nil)

func NewScreen(r *Renderer) *Screen {
	return &Screen{r: r, fbW: game.ScreenWidth, fbH: game.ScreenHeight}
}

// Resize records the framebuffer size used by the next BeginFrame.
func (s *Screen) Resize(fbW, fbH int) { s.fbW, s.fbH = fbW, fbH }

func (s *Screen) BeginFrame(shakeX, shakeY float64) {
	s.r.BeginFrame(s.fbW, s.fbH)
	s.r.SetOffset(shakeX, shakeY)
}

func (s *Screen) EndFrame() { s.r.Flush() }

func (s *Screen) pin() { s.r.SetOffset(0, 0) }

func (s *Screen) DrawStartScreen(v game.Variant, hiscore int) {
	r := s.r
	r.FillRect(0, 0, game.ScreenWidth, game.ScreenHeight, game.Palette.Black)
	r.FillRect(150, 0, 300, game.ScreenHeight, game.Palette.Road)
	for y := 0; y < game.ScreenHeight; y += 40 {
		r.FillRect(295, float64(y), 10, 20, game.Palette.RoadLine)
	}
	r.FillRect(0, 0, 150, game.ScreenHeight, game.Palette.Grass)
	r.FillRect(450, 0, 150, game.ScreenHeight, game.Palette.Grass)

	// Each title letter gets its own colour, cycling the palette.
	scale := fontScale(50)
	if TextWidth(v.Title, scale) > game.ScreenWidth-20 {
		scale = float32(game.ScreenWidth-20) / float32(len(v.Title)*FontCellW)
	}
	x := float64(game.ScreenWidth-TextWidth(v.Title, scale)) / 2
	adv := float64(FontCellW) * float64(scale)
	for i, ch := range v.Title {
		r.DrawChar(ch, float32(x), 200, scale, titleColors[i%len(titleColors)])
		x += adv
	}
	r.DrawCentered(v.Subtitle, 265, fontScale(12), game.Palette.Silver)

	lines := []string{
		"ARROWS: Steer and accelerate",
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
		r.DrawCentered(line, float64(320+i*25), fontScale(16), col)
	}
	if hiscore > 0 {
		r.DrawCentered("HIGH SCORE: "+strconv.Itoa(hiscore), 550, fontScale(18), game.Palette.Yellow)
	}
}

func (s *Screen) DrawRoad(cameraY float64, stage int) { drawRoad(s.r, cameraY, stage) }

func (s *Screen) DrawScenery(sc *game.Scenery, cameraY float64) {
	y := sc.Y - cameraY
	if y > -60 && y < 860 {
		drawScenery(s.r, sc, y)
	}
}

func (s *Screen) DrawEnemy(c *game.Car, cameraY float64) {
	drawCar(s.r, c, c.Y-cameraY, false)
}

func (s *Screen) DrawObstacle(o *game.Obstacle, cameraY float64) {
	drawObstacle(s.r, o, o.Y-cameraY)
}

func (s *Screen) DrawPickup(p *game.Pickup, cameraY float64) {
	drawPickup(s.r, p, p.Y-cameraY)
}

func (s *Screen) DrawFuelPump(p *game.FuelPump, cameraY float64) {
	y := p.Y - cameraY
	if y > -50 && y < 850 {
		drawFuelPump(s.r, p, y)
	}
}

func (s *Screen) DrawBridge(b *game.Bridge, cameraY float64, style game.BridgeStyle) {
	drawBridge(s.r, b, b.Y-cameraY, style)
}

func (s *Screen) DrawScoreDisplay(d *game.ScoreDisplay) {
	col := game.Palette.Yellow
	if d.Label != "" {
		col = game.Palette.Cyan
	}
	s.r.DrawString(d.Text(), d.X, d.Y, fontScale(16), col)
}

func (s *Screen) DrawPlayer(c *game.Car, screenY float64, visible bool) {
	if visible {
		drawCar(s.r, c, screenY, true)
	}
}

func (s *Screen) DrawParticle(p *game.Particle) {
	s.r.FillCircle(p.X, p.Y, math.Floor(p.Size), p.Col)
}

func (s *Screen) DrawStageBanner(stage int) {
	s.pin()
	r := s.r
	r.FillRectA(150, 365, 300, 70, game.Palette.Black, 0.5)
	r.DrawCentered("STAGE "+strconv.Itoa(stage), 375, fontScale(28), game.Palette.Yellow)
	r.DrawCentered(game.StageName(stage), 410, fontScale(12), game.Palette.White)
}

func (s *Screen) DrawHUD(h game.HUD) {
	s.pin()
	r := s.r
	r.FillRect(0, 0, game.ScreenWidth, 80, game.Palette.Black)

	sc := fontScale(14)
	r.DrawString("SCORE: "+strconv.Itoa(h.Score), 10, 10, sc, game.Palette.White)
	r.DrawString("HI SCORE: "+strconv.Itoa(h.Hiscore), 200, 10, sc, game.Palette.Yellow)
	r.DrawString("STAGE: "+strconv.Itoa(h.Stage), 400, 10, sc, game.Palette.Cyan)

	fuel := max(0, int(math.Round(h.Fuel)))
	r.DrawString("FUEL: "+strconv.Itoa(fuel), 10, 35, sc, game.FuelColor(h.Fuel))
	livesCol := game.Palette.White
	if h.Lives <= 2 {
		livesCol = game.Palette.Red
	}
	r.DrawString("LIVES: "+strconv.Itoa(h.Lives), 200, 35, sc, livesCol)
	r.DrawString("SPEED: "+strconv.Itoa(int(h.Speed)), 400, 35, sc, game.Palette.White)

	if h.JumpCooldown > 0 {
		if secs := h.JumpCooldown/game.TicksPerSecond + 1; secs > 1 {
			r.DrawString("JUMP: "+strconv.Itoa(secs), 10, 60, sc, game.Palette.Orange)
		} else {
			r.DrawString("JUMP: READY", 10, 60, sc, game.Palette.Green)
		}
		return
	}
	r.DrawString("JUMP:", 10, 60, sc, game.Palette.Green)
	r.FillRect(70, 62, 12, 8, game.Palette.Red)
	r.FillCircle(72, 70, 2, game.Palette.Black)
	r.FillCircle(80, 70, 2, game.Palette.Black)
}

func (s *Screen) DrawPauseBanner() {
	s.pin()
	r := s.r
	r.FillRect(150, 350, 300, 100, game.Palette.Black)
	r.DrawCentered("PAUSED", 370, fontScale(40), game.Palette.Cyan)
	r.DrawCentered("Press P to resume", 420, fontScale(16), game.Palette.White)
}

func (s *Screen) DrawGameOver(score int, reason game.Reason, isNewHiscore bool) {
	s.pin()
	r := s.r
	r.FillRect(100, 300, 400, 200, game.Palette.Black)
	r.DrawCentered("GAME OVER", 335, fontScale(40), game.Palette.Red)
	r.DrawCentered(reason.String(), 380, fontScale(14), game.Palette.White)

	off := 0.0
	if isNewHiscore {
		r.DrawCentered("NEW HIGH SCORE!", 400, fontScale(18), game.Palette.Yellow)
		off = 20
	}
	r.DrawCentered("FINAL SCORE: "+strconv.Itoa(score), 420+off, fontScale(16), game.Palette.White)
	r.DrawCentered("Press SPACE to play again", 455+off, fontScale(14), game.Palette.Yellow)
	r.DrawCentered("Press ESC to quit", 478+off, fontScale(12), game.Palette.White)
}
