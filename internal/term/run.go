package term

import (
	"fmt"
	"time"

	"bumpjump/internal/game"

	"github.com/gdamore/tcell/v2"
)

const tickInterval = time.Second / game.TicksPerSecond

// Run takes over the terminal and drives g until the player quits.
func Run(g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	loop(screen, g, ticker.C)
	return nil
}

// loop forwards terminal events into the keyboard and runs one tick per
// value on ticks. It returns once the game reports it should stop.
func loop(screen tcell.Screen, g *game.Game, ticks <-chan time.Time) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	kb := &keyboard{}
	view := &Screen{c: newCanvas(screen)}
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				kb.handle(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticks:
			if !g.Update(kb.next()) {
				return
			}
			g.Render(view)
		}
	}
}
