package game

// Controls is one tick's worth of player input. Steering and throttle are
// held levels; the rest are key-press edges.
type Controls struct {
	Left       bool
	Right      bool
	Accelerate bool
	Brake      bool

	Jump    bool
	Pause   bool
	Restart bool
	Quit    bool
	AnyKey  bool
}

// Carry folds the next poll into c: levels come from next alone, edges
// that have not reached a tick yet are kept.
func (c Controls) Carry(next Controls) Controls {
	next.Jump = next.Jump || c.Jump
	next.Pause = next.Pause || c.Pause
	next.Restart = next.Restart || c.Restart
	next.Quit = next.Quit || c.Quit
	next.AnyKey = next.AnyKey || c.AnyKey
	return next
}

// Held keeps only the level inputs. Front ends that run several ticks per
// frame pass edges to the first tick and Held to the rest.
func (c Controls) Held() Controls {
	return Controls{Left: c.Left, Right: c.Right, Accelerate: c.Accelerate, Brake: c.Brake}
}
