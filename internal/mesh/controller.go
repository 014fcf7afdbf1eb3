package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultStep is the rotation added to each axis per tick, in radians.
const DefaultStep = 0.01

const (
	DefaultIdleColor    = "orange"
	DefaultHoverColor   = "hotpink"
	DefaultBaseScale    = 1.0
	DefaultClickedScale = 1.5
)

// Style holds the per-mesh constants that map interaction state to render parameters.
// The zero value is not useful; start from DefaultStyle.
type Style struct {
	Step         float32
	IdleColor    string
	HoverColor   string
	BaseScale    float32
	ClickedScale float32
}

// DefaultStyle returns the classic behavior: 0.01 rad per tick, orange/hotpink, 1.0/1.5.
func DefaultStyle() Style {
	return Style{
		Step:         DefaultStep,
		IdleColor:    DefaultIdleColor,
		HoverColor:   DefaultHoverColor,
		BaseScale:    DefaultBaseScale,
		ClickedScale: DefaultClickedScale,
	}
}

// RenderParams is the derived state the host applies when drawing the mesh.
type RenderParams struct {
	Scale float32
	Color string
}

// Controller owns one mesh's rotation and its hovered/clicked flags.
// It is driven from the render thread only and does no locking.
type Controller struct {
	style   Style
	rotX    float32
	rotY    float32
	hovered bool
	clicked bool
	mounted bool
}

// New mounts a controller with the given style. Rotation starts at zero and both flags are false.
func New(style Style) *Controller {
	return &Controller{style: style, mounted: true}
}

// Tick advances both rotation axes by one step. Called once per frame by the host.
// Angles are left unbounded; only the periodic visual effect matters.
func (c *Controller) Tick() {
	c.rotX += c.style.Step
	c.rotY += c.style.Step
}

// PointerEnter marks the mesh as hovered.
func (c *Controller) PointerEnter() {
	c.hovered = true
}

// PointerLeave clears the hovered flag.
func (c *Controller) PointerLeave() {
	c.hovered = false
}

// Click flips the clicked flag.
func (c *Controller) Click() {
	c.clicked = !c.clicked
}

// RenderParams returns the scale and color for the current state.
// Calling it on a controller that is not mounted is a programming error and panics.
func (c *Controller) RenderParams() RenderParams {
	if c == nil || !c.mounted {
		panic("mesh: RenderParams called on a controller that is not mounted")
	}
	p := RenderParams{Scale: c.style.BaseScale, Color: c.style.IdleColor}
	if c.clicked {
		p.Scale = c.style.ClickedScale
	}
	if c.hovered {
		p.Color = c.style.HoverColor
	}
	return p
}

// Unmount discards the controller. Further RenderParams calls panic.
func (c *Controller) Unmount() {
	c.mounted = false
}

// Mounted reports whether the controller is live.
func (c *Controller) Mounted() bool {
	return c != nil && c.mounted
}

// Rotation returns the accumulated X and Y angles in radians.
func (c *Controller) Rotation() (x, y float32) {
	return c.rotX, c.rotY
}

// Hovered reports whether the pointer is over the mesh.
func (c *Controller) Hovered() bool { return c.hovered }

// Clicked reports whether the mesh is in its clicked (grown) state.
func (c *Controller) Clicked() bool { return c.clicked }

// Style returns the controller's style.
func (c *Controller) Style() Style {
	return c.style
}

// SetStep changes the per-tick increment. Accumulated rotation is kept.
func (c *Controller) SetStep(step float32) {
	c.style.Step = step
}

// Model returns the model matrix for the mesh placed at position with unit size scaled by size:
// translate, then yaw, then pitch, then scale. The renderer and the picker share it.
func (c *Controller) Model(position, size mgl32.Vec3) mgl32.Mat4 {
	p := c.RenderParams()
	s := size.Mul(p.Scale)
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DY(c.rotY)).
		Mul4(mgl32.HomogRotate3DX(c.rotX)).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}
