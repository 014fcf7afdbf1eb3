package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cube-scene/internal/picking"
	"cube-scene/internal/scenedef"
)

// Clip planes match raylib's defaults so picking agrees with what BeginMode3D draws.
const (
	nearPlane = 0.01
	farPlane  = 1000
)

// Camera is a perspective camera looking at a target with +Y up. Fovy is in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
}

// NewCamera builds a camera from a scene definition.
func NewCamera(def scenedef.Camera) Camera {
	return Camera{
		Position: mgl32.Vec3(def.Position),
		Target:   mgl32.Vec3(def.Target),
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     def.Fovy,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective matrix for a viewport of the given aspect (width/height).
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, nearPlane, farPlane)
}

// Ray returns the world-space ray through screen pixel (x, y) of a width x height viewport,
// with y growing downward as in window coordinates. The ray starts at the camera position
// and its direction is normalized. A degenerate viewport yields the forward ray.
func (c Camera) Ray(x, y float32, width, height int) picking.Ray {
	forward := c.Target.Sub(c.Position).Normalize()
	if width <= 0 || height <= 0 {
		return picking.Ray{Origin: c.Position, Direction: forward}
	}
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	ndcX := 2*x/float32(width) - 1
	ndcY := 1 - 2*y/float32(height)
	tanHalf := float32(math.Tan(float64(mgl32.DegToRad(c.Fovy)) / 2))
	aspect := float32(width) / float32(height)

	dir := forward.
		Add(right.Mul(ndcX * tanHalf * aspect)).
		Add(up.Mul(ndcY * tanHalf))
	return picking.Ray{Origin: c.Position, Direction: dir.Normalize()}
}
