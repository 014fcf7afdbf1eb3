package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

var unitHalf = mgl32.Vec3{0.5, 0.5, 0.5}

func TestIntersectBoxHeadOn(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	d, ok := IntersectBox(r, mgl32.Ident4(), unitHalf)
	if !ok {
		t.Fatal("expected hit")
	}
	if !approx(d, 4.5) {
		t.Errorf("distance = %v, want 4.5", d)
	}
}

func TestIntersectBoxTranslatedAndScaled(t *testing.T) {
	model := mgl32.Translate3D(1.2, 0, 0).Mul4(mgl32.Scale3D(1.5, 1.5, 1.5))
	r := Ray{Origin: mgl32.Vec3{1.2, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	d, ok := IntersectBox(r, model, unitHalf)
	if !ok {
		t.Fatal("expected hit")
	}
	if !approx(d, 4.25) {
		t.Errorf("distance = %v, want 4.25", d)
	}
}

func TestIntersectBoxMiss(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
	}{
		{"beside", Ray{Origin: mgl32.Vec3{2, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}},
		{"behind", Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}}},
		{"parallel outside slab", Ray{Origin: mgl32.Vec3{0, 1, 5}, Direction: mgl32.Vec3{1, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := IntersectBox(tt.ray, mgl32.Ident4(), unitHalf); ok {
				t.Error("expected miss")
			}
		})
	}
}

func TestIntersectBoxRotationMatters(t *testing.T) {
	// Just past the corner of an axis-aligned unit box; a 45° yaw pushes the corner out to ~0.707.
	r := Ray{Origin: mgl32.Vec3{0.6, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	if _, ok := IntersectBox(r, mgl32.Ident4(), unitHalf); ok {
		t.Fatal("unrotated box should be missed")
	}
	rotated := mgl32.HomogRotate3DY(math.Pi / 4)
	if _, ok := IntersectBox(r, rotated, unitHalf); !ok {
		t.Fatal("rotated box should be hit")
	}
}

func TestIntersectBoxOriginInside(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{1, 0, 0}}
	d, ok := IntersectBox(r, mgl32.Ident4(), unitHalf)
	if !ok || d != 0 {
		t.Errorf("got (%v, %v), want (0, true)", d, ok)
	}
}

func TestIntersectBoxSingularModel(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	if _, ok := IntersectBox(r, mgl32.Scale3D(0, 0, 0), unitHalf); ok {
		t.Error("zero-scale box should never be hit")
	}
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	d, ok := IntersectSphere(r, mgl32.Vec3{}, 1)
	if !ok || !approx(d, 4) {
		t.Errorf("got (%v, %v), want (4, true)", d, ok)
	}
	if _, ok := IntersectSphere(Ray{Origin: mgl32.Vec3{2, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}, mgl32.Vec3{}, 1); ok {
		t.Error("expected miss")
	}
}

func TestIntersectModelSphereScaled(t *testing.T) {
	model := mgl32.Translate3D(0, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	r := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	d, ok := IntersectModelSphere(r, model, 0.5)
	if !ok || !approx(d, 4) {
		t.Errorf("got (%v, %v), want (4, true)", d, ok)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 1, 1}, Direction: mgl32.Vec3{0, 0, -1}}
	if got := r.At(2); got != (mgl32.Vec3{1, 1, -1}) {
		t.Errorf("At(2) = %v", got)
	}
}
