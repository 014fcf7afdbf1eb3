package graphics

import (
	"cube-scene/internal/palette"
	"cube-scene/internal/primitives"
	"cube-scene/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var hoverOutline = rl.NewColor(255, 255, 255, 160)

// Renderer draws a scene with the primitives registry. Colors are resolved once per name.
type Renderer struct {
	reg    *primitives.Registry
	colors map[string]rl.Color
}

// NewRenderer returns a renderer drawing through reg.
func NewRenderer(reg *primitives.Registry) *Renderer {
	return &Renderer{reg: reg, colors: make(map[string]rl.Color)}
}

// Color resolves a palette name to a raylib color. Unknown names draw magenta so they stand out.
func (r *Renderer) Color(name string) rl.Color {
	if c, ok := r.colors[name]; ok {
		return c
	}
	c := rl.Magenta
	if p, ok := palette.Parse(name); ok {
		c = rl.NewColor(p.R, p.G, p.B, p.A)
	}
	r.colors[name] = c
	return c
}

// Camera3D converts the scene camera to raylib's.
func Camera3D(c scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z()),
		Target:     rl.NewVector3(c.Target.X(), c.Target.Y(), c.Target.Z()),
		Up:         rl.NewVector3(c.Up.X(), c.Up.Y(), c.Up.Z()),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders the scene: grid (if visible), then every mesh with its current render parameters.
// Call between BeginDrawing and EndDrawing, before any 2D overlay.
func (r *Renderer) Draw(s *scene.Scene) {
	cam := s.Camera
	r.reg.SetView([3]float32(cam.Position), [3]float32(s.Light), s.Ambient)

	rl.BeginMode3D(Camera3D(cam))
	if s.GridVisible {
		drawGrid()
	}
	hovered, _ := s.Hovered()
	for _, in := range s.Instances() {
		p := in.Ctrl.RenderParams()
		model := in.Model()
		r.reg.Draw(in.Shape, model, r.Color(p.Color))
		if in == hovered {
			r.reg.DrawWires(in.Shape, model, hoverOutline)
		}
	}
	rl.EndMode3D()
}

// drawGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
