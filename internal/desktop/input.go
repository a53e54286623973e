package desktop

import (
	"bumpjump/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key bindings. Arrows and WASD both drive; any watched key starts a run.
var (
	keysLeft  = []glfw.Key{glfw.KeyLeft, glfw.KeyA}
	keysRight = []glfw.Key{glfw.KeyRight, glfw.KeyD}
	keysUp    = []glfw.Key{glfw.KeyUp, glfw.KeyW}
	keysDown  = []glfw.Key{glfw.KeyDown, glfw.KeyS}

	keysAny = []glfw.Key{
		glfw.KeySpace, glfw.KeyEnter, glfw.KeyP,
		glfw.KeyLeft, glfw.KeyRight, glfw.KeyUp, glfw.KeyDown,
		glfw.KeyA, glfw.KeyD, glfw.KeyW, glfw.KeyS,
	}
)

// keyState answers whether a key is down right now.
type keyState func(glfw.Key) bool

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func windowKeys(window *glfw.Window) keyState {
	return func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }
}

// JustPressed reports a key that went down since the previous poll.
func (in *Input) JustPressed(down keyState, key glfw.Key) bool {
	d := down(key)
	jp := d && !in.prevKeys[key]
	in.prevKeys[key] = d
	return jp
}

// Poll samples held levels and press edges into one Controls value.
func (in *Input) Poll(down keyState) game.Controls {
	c := game.Controls{
		Left:       anyDown(down, keysLeft),
		Right:      anyDown(down, keysRight),
		Accelerate: anyDown(down, keysUp),
		Brake:      anyDown(down, keysDown),
	}

	edges := make(map[glfw.Key]bool, len(keysAny))
	for _, k := range keysAny {
		edges[k] = in.JustPressed(down, k)
		c.AnyKey = c.AnyKey || edges[k]
	}
	c.Jump = edges[glfw.KeySpace]
	c.Restart = edges[glfw.KeySpace]
	c.Pause = edges[glfw.KeyP]
	c.Quit = in.JustPressed(down, glfw.KeyEscape)
	return c
}

func anyDown(down keyState, keys []glfw.Key) bool {
	for _, k := range keys {
		if down(k) {
			return true
		}
	}
	return false
}
