package coord

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/coordsim/internal/geom"
)

// Point is a location in 3D space. The zero value is the origin.
type Point struct {
	c Cartesian
}

func FromCartesian(x, y, z float64) Point {
	return Point{c: Cartesian{X: x, Y: y, Z: z}}
}

func FromCylindrical(r, phi, z float64) Point {
	return Point{c: CylindricalToCartesian(Cylindrical{R: r, Phi: phi, Z: z})}
}

func FromSpherical(rho, theta, phi float64) Point {
	return Point{c: SphericalToCartesian(Spherical{Rho: rho, Theta: theta, Phi: phi})}
}

func (p *Point) SetCartesian(x, y, z float64) {
	p.c = Cartesian{X: x, Y: y, Z: z}
}

// SetCylindrical replaces the point with the one at (r, phi, z).
func (p *Point) SetCylindrical(r, phi, z float64) {
	*p = FromCylindrical(r, phi, z)
}

// SetSpherical replaces the point with the one at (rho, theta, phi).
func (p *Point) SetSpherical(rho, theta, phi float64) {
	*p = FromSpherical(rho, theta, phi)
}

// Cartesian returns the stored coordinates verbatim.
func (p Point) Cartesian() Cartesian { return p.c }

func (p Point) Cylindrical() Cylindrical { return CartesianToCylindrical(p.c) }

func (p Point) Spherical() Spherical { return CartesianToSpherical(p.c) }

func (p Point) Views() Views {
	return Views{
		Cartesian:   p.c,
		Cylindrical: p.Cylindrical(),
		Spherical:   p.Spherical(),
	}
}

// Vec returns the point as a position vector.
func (p Point) Vec() mgl64.Vec3 { return mgl64.Vec3{p.c.X, p.c.Y, p.c.Z} }

func fromVec(v mgl64.Vec3) Cartesian { return Cartesian{X: v[0], Y: v[1], Z: v[2]} }

// Norm is the distance from the origin.
func (p Point) Norm() float64 { return p.Vec().Len() }

func (p Point) String() string { return p.c.String() }

// ApplyMatrix replaces the point with m·p. The product reads a snapshot of
// the old coordinates, so every output sees the pre-transform values.
func (p *Point) ApplyMatrix(m mgl64.Mat3) {
	p.c = fromVec(m.Mul3x1(p.Vec()))
}

// ApplyAffine replaces the point with a·[x y z 1].
func (p *Point) ApplyAffine(a mgl64.Mat4) {
	p.c = fromVec(geom.Transform(a, p.Vec()))
}

// Rotate turns the point by angle radians about axis. An unknown axis
// returns a *geom.AxisError and leaves the point untouched.
func (p *Point) Rotate(angle float64, axis geom.Axis) error {
	m, err := geom.Rotation(axis, angle)
	if err != nil {
		return err
	}
	p.ApplyMatrix(m)
	return nil
}

func (p *Point) Translate(dx, dy, dz float64) {
	p.ApplyAffine(mgl64.Translate3D(dx, dy, dz))
}

func (p *Point) Scale(sx, sy, sz float64) {
	p.ApplyAffine(mgl64.Scale3D(sx, sy, sz))
}
