package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/coordsim/internal/geom"
)

type Op string

const (
	OpRotate    Op = "rotate"
	OpTranslate Op = "translate"
	OpScale     Op = "scale"
)

// Step is one transform in a pipeline. Rotations read Axis and Angle
// (radians); translations and scalings read Vector as offsets or factors.
type Step struct {
	Op     Op
	Axis   geom.Axis
	Angle  float64
	Vector mgl64.Vec3
}

func Rotate(axis geom.Axis, angle float64) Step {
	return Step{Op: OpRotate, Axis: axis, Angle: angle}
}

func Translate(dx, dy, dz float64) Step {
	return Step{Op: OpTranslate, Vector: mgl64.Vec3{dx, dy, dz}}
}

func Scale(sx, sy, sz float64) Step {
	return Step{Op: OpScale, Vector: mgl64.Vec3{sx, sy, sz}}
}

func (s Step) String() string {
	switch s.Op {
	case OpRotate:
		return fmt.Sprintf("rotate %g rad about %s", s.Angle, s.Axis)
	case OpTranslate, OpScale:
		return fmt.Sprintf("%s (%g, %g, %g)", s.Op, s.Vector[0], s.Vector[1], s.Vector[2])
	}
	return string(s.Op)
}
