package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// boxEdges indexes pairs of BoxCorners that form the 12 edges of a box.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxCorners returns the 8 corners of the unit box [-0.5, 0.5]^3 transformed by model.
// Corner i has x = +0.5 when bit 0 is set, y when bit 1 is set, z when bit 2 is set.
func BoxCorners(model mgl32.Mat4) [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range out {
		p := mgl32.Vec4{-0.5, -0.5, -0.5, 1}
		if i&1 != 0 {
			p[0] = 0.5
		}
		if i&2 != 0 {
			p[1] = 0.5
		}
		if i&4 != 0 {
			p[2] = 0.5
		}
		out[i] = model.Mul4x1(p).Vec3()
	}
	return out
}

// ToMatrix converts a column-major mathgl matrix to raylib's layout.
// Both index element k as column*4+row; raylib just names them M0..M15.
func ToMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M4: m[4], M8: m[8], M12: m[12],
		M1: m[1], M5: m[5], M9: m[9], M13: m[13],
		M2: m[2], M6: m[6], M10: m[10], M14: m[14],
		M3: m[3], M7: m[7], M11: m[11], M15: m[15],
	}
}
