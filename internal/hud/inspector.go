package hud

import (
	"fmt"
	"math"

	"cube-scene/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 10
	lineHeight = fontSize + 6
	panelWidth = 300
)

var (
	panelColor  = rl.NewColor(20, 20, 20, 200)
	borderColor = rl.NewColor(90, 90, 90, 255)
	hintColor   = rl.NewColor(150, 150, 150, 255)
)

const hint = "hover to tint, click to grow, ESC for terminal"

// Lines returns the inspector text for a mesh: name, rotation in degrees, render parameters and flags.
func Lines(in *scene.Instance) []string {
	x, y := in.Ctrl.Rotation()
	p := in.Ctrl.RenderParams()
	return []string{
		in.Name + " (" + in.Shape + ")",
		fmt.Sprintf("Rotation: %.1f, %.1f deg", degrees(x), degrees(y)),
		fmt.Sprintf("Scale: %.2f  Color: %s", p.Scale, p.Color),
		fmt.Sprintf("Hovered: %v  Clicked: %v", in.Ctrl.Hovered(), in.Ctrl.Clicked()),
	}
}

// degrees converts an unbounded angle to [0, 360) for display only.
func degrees(rad float32) float64 {
	d := math.Mod(float64(rad)*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Inspector is a top-left panel describing the mesh under the pointer, plus a one-line hint.
type Inspector struct {
	Visible bool
}

// Draw draws the panel for s's hovered mesh, or only the hint when nothing is hovered.
func (i *Inspector) Draw(s *scene.Scene) {
	if !i.Visible {
		return
	}
	rl.DrawText(hint, padding, padding, fontSize, hintColor)
	in, ok := s.Hovered()
	if !ok {
		if s.Paused() {
			rl.DrawText("paused", padding, padding+lineHeight, fontSize, rl.Yellow)
		}
		return
	}
	lines := Lines(in)
	top := int32(padding + lineHeight)
	h := int32(len(lines)*lineHeight + padding)
	rl.DrawRectangle(padding, top, panelWidth, h, panelColor)
	rl.DrawRectangleLines(padding, top, panelWidth, h, borderColor)
	for n, line := range lines {
		rl.DrawText(line, 2*padding, top+int32(padding/2+n*lineHeight), fontSize, rl.White)
	}
}
