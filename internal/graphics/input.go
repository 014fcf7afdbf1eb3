package graphics

import (
	"cube-scene/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollInput reads the mouse and turns it into a scene.Input for this frame.
// When captured is true (e.g. the terminal is open) the pointer is withheld from the scene,
// which makes the hovered mesh receive a leave.
func PollInput(cam scene.Camera, captured bool) scene.Input {
	if captured || !rl.IsCursorOnScreen() {
		return scene.Input{}
	}
	pos := rl.GetMousePosition()
	return scene.Input{
		Ray:        cam.Ray(pos.X, pos.Y, rl.GetScreenWidth(), rl.GetScreenHeight()),
		HasPointer: true,
		Pressed:    rl.IsMouseButtonPressed(rl.MouseButtonLeft),
	}
}
