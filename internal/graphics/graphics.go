package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
}

// Run opens the window and drives the main loop. Each frame it calls update (input and ticks),
// then clears the screen and calls draw. Run returns when the window is closed;
// beforeClose runs while the GL context still exists so GPU resources can be released.
func Run(w Window, update, draw, beforeClose func()) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := w.Width, w.Height
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	if w.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull) // ESC toggles the terminal; close via window button
	fps := w.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
	if beforeClose != nil {
		beforeClose()
	}
}

var background = rl.NewColor(24, 24, 28, 255)

// SetFullscreen switches between fullscreen and windowed mode.
func SetFullscreen(on bool) {
	if rl.IsWindowFullscreen() != on {
		rl.ToggleFullscreen()
	}
}
