package coord

import "math"

// CartesianToCylindrical maps (x, y, z) to (r, phi, z). On the z axis
// phi is atan2(0, 0) = 0.
func CartesianToCylindrical(c Cartesian) Cylindrical {
	return Cylindrical{
		R:   math.Hypot(c.X, c.Y),
		Phi: math.Atan2(c.Y, c.X),
		Z:   c.Z,
	}
}

// CartesianToSpherical maps (x, y, z) to (rho, theta, phi). At the origin
// both angles are 0.
func CartesianToSpherical(c Cartesian) Spherical {
	r := math.Hypot(c.X, c.Y)
	return Spherical{
		Rho:   math.Hypot(r, c.Z),
		Theta: math.Atan2(r, c.Z),
		Phi:   math.Atan2(c.Y, c.X),
	}
}

func CylindricalToCartesian(c Cylindrical) Cartesian {
	sin, cos := math.Sincos(c.Phi)
	return Cartesian{
		X: c.R * cos,
		Y: c.R * sin,
		Z: c.Z,
	}
}

func SphericalToCartesian(s Spherical) Cartesian {
	sinT, cosT := math.Sincos(s.Theta)
	sinP, cosP := math.Sincos(s.Phi)
	return Cartesian{
		X: s.Rho * sinT * cosP,
		Y: s.Rho * sinT * sinP,
		Z: s.Rho * cosT,
	}
}
