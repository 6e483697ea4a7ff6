package coord

import "fmt"

// Cartesian coordinates in a right-handed Euclidean frame.
type Cartesian struct {
	X, Y, Z float64
}

// Cylindrical coordinates. Z matches the Cartesian z.
type Cylindrical struct {
	R, Phi, Z float64
}

// Spherical coordinates, with Theta the polar angle from the +z axis and
// Phi the azimuth in the xy-plane.
type Spherical struct {
	Rho, Theta, Phi float64
}

// Views holds all three representations of one point.
type Views struct {
	Cartesian   Cartesian
	Cylindrical Cylindrical
	Spherical   Spherical
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.Z)
}

func (c Cylindrical) String() string {
	return fmt.Sprintf("(r=%g, phi=%g, z=%g)", c.R, c.Phi, c.Z)
}

func (s Spherical) String() string {
	return fmt.Sprintf("(rho=%g, theta=%g, phi=%g)", s.Rho, s.Theta, s.Phi)
}
