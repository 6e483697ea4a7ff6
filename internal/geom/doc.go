// Package geom holds the rotation and affine plumbing used to transform
// points in 3D Cartesian space, built on mgl64's fixed-size value types:
//
//   - [Axis]: a principal rotation axis, with [ParseAxis] and [Rotation]
//   - [Transform]: applies a homogeneous mgl64.Mat4 to an mgl64.Vec3
//   - [IsFinite]: rejects NaN and infinite components
//
// mgl64 matrices are column-major arrays, so they are copied by value and
// never allocate. Build one from rows with mgl64.Mat3FromRows.
//
// # Example
//
//	rot, err := geom.Rotation(geom.AxisZ, math.Pi/2)
//	if err != nil {
//	    return err
//	}
//	v := rot.Mul3x1(mgl64.Vec3{1, 2, 3})                // (-2, 1, 3)
//	v = geom.Transform(mgl64.Translate3D(1, 2, 3), v) // (-1, 3, 6)
package geom
