package game

type GameState int

const (
	StateStart    GameState = iota
	StatePlaying            // a session is running
	StateGameOver           // waiting for restart or quit
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// Config is what the entry point decides before the first frame.
type Config struct {
	Seed    uint64
	Variant Variant
}

// Game is the top-level state machine. The hiscore lives here so it
// survives restarts within one process; nothing is persisted to disk.
type Game struct {
	State   GameState
	Hiscore int
	Session *Session
	Last    Result
	Events  *EventBus

	cfg  Config
	runs uint64
}

func NewGame(cfg Config) *Game {
	if cfg.Variant.Name == "" {
		cfg.Variant = VariantClassic
	}
	return &Game{
		State:  StateStart,
		Events: NewEventBus(),
		cfg:    cfg,
	}
}

func (g *Game) Variant() Variant { return g.cfg.Variant }

// StartRun begins a fresh session. Each run draws its own seed from the
// base seed so restarts do not replay the previous road.
func (g *Game) StartRun() {
	seed := mixSeed(g.cfg.Seed, g.runs)
	g.runs++
	g.Session = NewSession(g.cfg.Variant, g.Hiscore, NewRand(seed), g.Events)
	g.Last = Result{}
	g.State = StatePlaying
	g.Events.Emit(Event{Type: EventStart, Data: int(g.runs)})
}

// Update advances the state machine by one tick. It returns false once the
// player has asked to quit.
func (g *Game) Update(in Controls) bool {
	switch g.State {
	case StateStart:
		if in.Quit {
			return false
		}
		if in.AnyKey || in.Jump || in.Restart {
			g.StartRun()
		}

	case StatePlaying:
		if in.Quit {
			return false
		}
		res, over := g.Session.Tick(in)
		if g.Session.Hiscore > g.Hiscore {
			g.Hiscore = g.Session.Hiscore
		}
		if over {
			g.Last = res
			g.State = StateGameOver
		}

	case StateGameOver:
		if in.Quit {
			return false
		}
		if in.Restart {
			g.StartRun()
		}
	}
	return true
}
