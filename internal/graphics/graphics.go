package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// background is the clear color behind the room.
var background = rl.NewColor(200, 205, 212, 255)

// Run opens the window and runs the main loop. Each frame it calls update (input, composing),
// then clears the screen and calls draw. setup runs once after the GL context exists and
// teardown once before it is destroyed; either may be nil.
func Run(w Window, setup, update, draw, teardown func()) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	width, height := w.Width, w.Height
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(width), int32(height), w.Title)
	defer rl.CloseWindow()
	if w.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(rl.GetCurrentMonitor()), rl.GetMonitorHeight(rl.GetCurrentMonitor()))
	}

	rl.SetExitKey(rl.KeyNull) // ESC toggles the terminal; close via the window button
	rl.SetTargetFPS(60)

	if setup != nil {
		setup()
	}
	if teardown != nil {
		defer teardown()
	}
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
