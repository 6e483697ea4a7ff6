package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform returns a·[x y z 1]. The bottom row of a is assumed to be
// [0 0 0 1]; the resulting w is dropped, not divided out.
func Transform(a mgl64.Mat4, v mgl64.Vec3) mgl64.Vec3 {
	return a.Mul4x1(v.Vec4(1)).Vec3()
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
