// Package coord represents a point in 3D space in three coordinate systems.
//
// A [Point] stores a single canonical [Cartesian] value. Its [Cylindrical] and
// [Spherical] views are derived on every read, so they can never go stale
// after a transform:
//
//   - [Cartesian]: (x, y, z)
//   - [Cylindrical]: (r, phi, z), phi = atan2(y, x)
//   - [Spherical]: (rho, theta, phi), theta measured from +z
//
// Transforms (rotate, translate, scale, or any mgl64.Mat3 / mgl64.Mat4)
// always operate on the Cartesian value.
//
// # Example
//
//	var p coord.Point
//	p.SetCartesian(1, 2, 3)
//	if err := p.Rotate(math.Pi/2, geom.AxisZ); err != nil {
//	    return err
//	}
//	p.Translate(1, 2, 3)
//	p.Scale(2, 2, 2)
//	fmt.Println(p.Cartesian()) // ≈ (-2, 6, 12)
//
// # Thread Safety
//
// Point is a plain value with no locking. Callers sharing one across
// goroutines must synchronize access themselves.
package coord
