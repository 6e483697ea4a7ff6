package geom

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis names a principal axis of the Cartesian frame.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

func (a Axis) String() string { return string(rune(a)) }

// Valid reports whether a is one of x, y or z.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// ParseAxis accepts "x", "y" or "z" in either case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, &AxisError{Axis: s}
}

// Rotation builds the right-handed rotation by angle radians about axis.
// Positive angles turn counterclockwise when looking from the positive
// axis toward the origin.
func Rotation(axis Axis, angle float64) (mgl64.Mat3, error) {
	switch axis {
	case AxisX:
		return mgl64.Rotate3DX(angle), nil
	case AxisY:
		return mgl64.Rotate3DY(angle), nil
	case AxisZ:
		return mgl64.Rotate3DZ(angle), nil
	}
	return mgl64.Mat3{}, &AxisError{Axis: axis.String()}
}
