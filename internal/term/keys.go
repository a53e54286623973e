package term

import (
	"bumpjump/internal/game"

	"github.com/gdamore/tcell/v2"
)

// holdTicks is how long a steering or throttle key counts as held after
// its last key event. Terminals report presses and auto-repeats but never
// releases.
const holdTicks = 8

type action int

const (
	actLeft action = iota
	actRight
	actUp
	actDown
	actCount
)

// keyboard turns tcell key events into per-tick Controls.
type keyboard struct {
	hold  [actCount]int
	edges game.Controls
}

func (k *keyboard) press(a action) {
	k.hold[a] = holdTicks
	// Opposite directions cancel.
	switch a {
	case actLeft:
		k.hold[actRight] = 0
	case actRight:
		k.hold[actLeft] = 0
	case actUp:
		k.hold[actDown] = 0
	case actDown:
		k.hold[actUp] = 0
	}
}

func (k *keyboard) handle(ev *tcell.EventKey) {
	k.edges.AnyKey = true
	switch ev.Key() {
	case tcell.KeyLeft:
		k.press(actLeft)
	case tcell.KeyRight:
		k.press(actRight)
	case tcell.KeyUp:
		k.press(actUp)
	case tcell.KeyDown:
		k.press(actDown)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.edges.AnyKey = false
		k.edges.Quit = true
	case tcell.KeyEnter:
		k.edges.Restart = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.press(actLeft)
		case 'd', 'D':
			k.press(actRight)
		case 'w', 'W':
			k.press(actUp)
		case 's', 'S':
			k.press(actDown)
		case ' ':
			k.edges.Jump = true
			k.edges.Restart = true
		case 'p', 'P':
			k.edges.Pause = true
		case 'q', 'Q':
			k.edges.AnyKey = false
			k.edges.Quit = true
		}
	}
}

// next returns the Controls for one tick, ageing the holds and consuming
// the edges.
func (k *keyboard) next() game.Controls {
	c := k.edges
	c.Left = k.hold[actLeft] > 0
	c.Right = k.hold[actRight] > 0
	c.Accelerate = k.hold[actUp] > 0
	c.Brake = k.hold[actDown] > 0
	for i := range k.hold {
		if k.hold[i] > 0 {
			k.hold[i]--
		}
	}
	k.edges = game.Controls{}
	return c
}
