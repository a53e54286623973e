package desktop

import (
	"fmt"
	"runtime"

	"bumpjump/internal/game"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// maxFrameDt caps catch-up after a stall so the simulation never runs a
// long burst of ticks in one frame.
const maxFrameDt = 0.25

// Run opens the window and drives g at a fixed 60 ticks per second until
// the player quits or the window is closed.
func Run(g *game.Game) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(g.Variant().Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	screen := NewScreen(rend)
	input := NewInput()
	keys := windowKeys(window)

	var clock stepper

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if !clock.advance(dt, input.Poll(keys), g.Update) {
			window.SetShouldClose(true)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		screen.Resize(fbW, fbH)
		g.Render(screen)
		window.SwapBuffers()
	}
	return nil
}

const tickStep = 1.0 / game.TicksPerSecond

// stepper turns variable frame times into fixed ticks. Edges polled on a
// frame that runs no tick wait for the next one; levels are always the
// latest poll.
type stepper struct {
	acc     float64
	pending game.Controls
}

// advance runs as many ticks as dt covers and reports false once tick does.
func (s *stepper) advance(dt float64, in game.Controls, tick func(game.Controls) bool) bool {
	s.pending = s.pending.Carry(in)
	s.acc += min(dt, maxFrameDt)
	for s.acc >= tickStep {
		s.acc -= tickStep
		if !tick(s.pending) {
			return false
		}
		s.pending = in.Held()
	}
	return true
}
