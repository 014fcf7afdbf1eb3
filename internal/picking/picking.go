package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line from Origin along Direction. Direction need not be normalized;
// distances are reported in units of |Direction|, so pass a unit vector to get world units.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBox tests the ray against the box [-half, half] placed in the world by model.
// The ray is carried into model space with the inverse matrix, so rotation and scale are honored.
// Returns the ray parameter of the nearest hit in front of the origin.
// A singular model (e.g. zero scale) never hits.
func IntersectBox(r Ray, model mgl32.Mat4, half mgl32.Vec3) (float32, bool) {
	if model.Det() == 0 {
		return 0, false
	}
	inv := model.Inv()
	o := inv.Mul4x1(r.Origin.Vec4(1)).Vec3()
	d := inv.Mul4x1(r.Direction.Vec4(0)).Vec3()

	// The affine transform preserves the ray parameter, so t in model space is t in world space.
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < -half[axis] || o[axis] > half[axis] {
				return 0, false
			}
			continue
		}
		t1 := (-half[axis] - o[axis]) / d[axis]
		t2 := (half[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Origin is inside the box.
		return 0, true
	}
	return tMin, true
}

// IntersectSphere tests the ray against a sphere. Returns the ray parameter of the nearest hit
// in front of the origin.
func IntersectSphere(r Ray, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	if a == 0 {
		return 0, false
	}
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := float32(math.Sqrt(float64(disc)))
	t := (-b - sq) / a
	if t < 0 {
		t = (-b + sq) / a
		if t < 0 {
			return 0, false
		}
		return 0, true
	}
	return t, true
}

// IntersectModelSphere tests the ray against a sphere of the given radius in model space,
// so a non-uniform scale in model turns it into an ellipsoid.
func IntersectModelSphere(r Ray, model mgl32.Mat4, radius float32) (float32, bool) {
	if model.Det() == 0 {
		return 0, false
	}
	inv := model.Inv()
	local := Ray{
		Origin:    inv.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Direction: inv.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}
	return IntersectSphere(local, mgl32.Vec3{}, radius)
}
