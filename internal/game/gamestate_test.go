package game

import (
	"slices"
	"testing"
)

// recorder is a Presenter that only remembers which calls arrived.
type recorder struct {
	calls   []string
	hud     HUD
	visible bool
	over    Reason
}

func (r *recorder) add(name string) { r.calls = append(r.calls, name) }

func (r *recorder) BeginFrame(_, _ float64) { r.calls = r.calls[:0]; r.add("BeginFrame") }
func (r *recorder) EndFrame() { r.add("EndFrame") }
func (r *recorder) DrawStartScreen(Variant, int) { r.add("DrawStartScreen") }
func (r *recorder) DrawRoad(float64, int) { r.add("DrawRoad") }
func (r *recorder) DrawScenery(*Scenery, float64) { r.add("DrawScenery") }
func (r *recorder) DrawEnemy(*Car, float64) { r.add("DrawEnemy") }
func (r *recorder) DrawObstacle(*Obstacle, float64) { r.add("DrawObstacle") }
func (r *recorder) DrawPickup(*Pickup, float64) { r.add("DrawPickup") }
func (r *recorder) DrawFuelPump(*FuelPump, float64) { r.add("DrawFuelPump") }
func (r *recorder) DrawBridge(*Bridge, float64, BridgeStyle) { r.add("DrawBridge") }
func (r *recorder) DrawScoreDisplay(*ScoreDisplay) { r.add("DrawScoreDisplay") }
func (r *recorder) DrawParticle(*Particle) { r.add("DrawParticle") }
func (r *recorder) DrawStageBanner(int) { r.add("DrawStageBanner") }
func (r *recorder) DrawPauseBanner() { r.add("DrawPauseBanner") }
func (r *recorder) DrawHUD(h HUD) { r.hud = h; r.add("DrawHUD") }
func (r *recorder) DrawGameOver(_ int, reason Reason, _ bool) { r.over = reason; r.add("DrawGameOver") }

func (r *recorder) DrawPlayer(_ *Car, _ float64, visible bool) {
	r.visible = visible
	r.add("DrawPlayer")
}

func (r *recorder) index(name string) int { return slices.Index(r.calls, name) }

func (r *recorder) lastIndex(name string) int {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i] == name {
			return i
		}
	}
	return -1
}

func TestGameStateMachine(t *testing.T) {
	g := NewGame(Config{Seed: 11})
	if g.State != StateStart {
		t.Fatalf("state = %v, want start", g.State)
	}
	g.Update(Controls{})
	if g.State != StateStart {
		t.Fatalf("idle tick left the start screen")
	}
	g.Update(Controls{AnyKey: true})
	if g.State != StatePlaying || g.Session == nil {
		t.Fatalf("state = %v, want playing", g.State)
	}

	g.Session.Fuel.Tenths = 1
	g.Update(Controls{})
	if g.State != StateGameOver {
		t.Fatalf("state = %v, want gameover", g.State)
	}
	if g.Last.Reason != ReasonOutOfFuel {
		t.Fatalf("last reason = %v, want %v", g.Last.Reason, ReasonOutOfFuel)
	}
	if g.Hiscore != g.Last.Score || g.Hiscore == 0 {
		t.Fatalf("hiscore = %d, want %d", g.Hiscore, g.Last.Score)
	}

	g.Update(Controls{AnyKey: true})
	if g.State != StateGameOver {
		t.Fatalf("only restart should leave the game over screen")
	}

	first := g.Session
	g.Update(Controls{Restart: true})
	if g.State != StatePlaying || g.Session == first {
		t.Fatalf("restart did not begin a new session")
	}
	if g.Session.Hiscore != g.Hiscore {
		t.Fatalf("new session hiscore = %d, want carried %d", g.Session.Hiscore, g.Hiscore)
	}
	if g.Session.Score != 0 || g.Session.Lives != StartLives {
		t.Fatalf("new session not reset: score=%d lives=%d", g.Session.Score, g.Session.Lives)
	}

	if g.Update(Controls{Quit: true}) {
		t.Fatalf("quit should stop the game")
	}
}

func TestRestartsUseFreshRoads(t *testing.T) {
	g := NewGame(Config{Seed: 5})
	g.StartRun()
	a := g.Session.Enemies[0]
	g.StartRun()
	b := g.Session.Enemies[0]
	if a.X == b.X && a.Y == b.Y && a.Speed == b.Speed {
		t.Fatalf("restart replayed the same opening")
	}
}

func TestStartEventEmitted(t *testing.T) {
	g := NewGame(Config{Seed: 1})
	var seen []EventType
	g.Events.SubscribeAll(func(e Event) { seen = append(seen, e.Type) })
	g.Update(Controls{AnyKey: true})
	if !slices.Contains(seen, EventStart) {
		t.Fatalf("events = %v, want a start event", seen)
	}
	g.Session.Tick(Controls{Jump: true})
	if !slices.Contains(seen, EventJump) {
		t.Fatalf("events = %v, want a jump event", seen)
	}
}

func TestRenderStartScreen(t *testing.T) {
	g := NewGame(Config{})
	r := &recorder{}
	g.Render(r)
	want := []string{"BeginFrame", "DrawStartScreen", "EndFrame"}
	if !slices.Equal(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestRenderDrawOrder(t *testing.T) {
	g := NewGame(Config{Seed: 2})
	g.StartRun()
	s := g.Session
	s.Obstacles = append(s.Obstacles, Obstacle{X: 200, Y: 100})
	s.Pickups = append(s.Pickups, Pickup{X: 200, Y: 150})
	s.Pumps = append(s.Pumps, FuelPump{X: 200, Y: 400})
	s.Scenery = append(s.Scenery, Scenery{X: 20, Y: 300, Width: 30, Height: 40})
	s.Displays = append(s.Displays, ScoreDisplay{X: 10, Y: 10, Value: 25, TTL: 10})
	s.Particles.SpawnCrash(NewRand(1), 300, 625, Palette.Red, Palette.Blue)
	s.Paused = true

	r := &recorder{}
	g.Render(r)

	order := []string{
		"BeginFrame", "DrawRoad", "DrawScenery", "DrawEnemy", "DrawObstacle",
		"DrawPickup", "DrawFuelPump", "DrawBridge", "DrawScoreDisplay",
		"DrawPlayer", "DrawParticle", "DrawStageBanner", "DrawHUD",
		"DrawPauseBanner", "EndFrame",
	}
	prev := -1
	for _, name := range order {
		i := r.index(name)
		if i < 0 {
			t.Fatalf("%s never called; calls = %v", name, r.calls)
		}
		if i < prev {
			t.Fatalf("%s drawn out of order; calls = %v", name, r.calls)
		}
		prev = r.lastIndex(name)
	}
	if r.hud.Lives != StartLives || r.hud.Stage != 1 || r.hud.Fuel != 100 {
		t.Fatalf("hud = %+v", r.hud)
	}
	if !r.visible {
		t.Fatalf("player hidden while not invulnerable")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := NewGame(Config{Seed: 3})
	g.StartRun()
	g.Session.Fuel.Tenths = 1
	g.Update(Controls{})

	r := &recorder{}
	g.Render(r)
	n := len(r.calls)
	if n < 3 || r.calls[n-2] != "DrawGameOver" || r.calls[n-1] != "EndFrame" {
		t.Fatalf("calls = %v, want the game over box last", r.calls)
	}
	if r.index("DrawRoad") < 0 {
		t.Fatalf("game over should overlay the final frame")
	}
	if r.over != ReasonOutOfFuel {
		t.Fatalf("reason = %v, want %v", r.over, ReasonOutOfFuel)
	}
}

func TestVariants(t *testing.T) {
	v, ok := VariantByName("overpass")
	if !ok || v.Bridge != BridgeOverpass {
		t.Fatalf("overpass variant = %+v, %v", v, ok)
	}
	if _, ok := VariantByName("nope"); ok {
		t.Fatalf("unknown variant accepted")
	}
	if g := NewGame(Config{}); g.Variant().Name != "classic" {
		t.Fatalf("default variant = %q, want classic", g.Variant().Name)
	}
}
