package transform

import (
	"math"

	"github.com/san-kum/coordsim/internal/coord"
)

type Metric interface {
	Name() string
	Observe(s Step, before, after coord.Point)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(i int, s Step, before, after coord.Point)
}

// NormDrift tracks the largest relative change of the distance from the
// origin caused by a rotation. Exact rotations keep it at rounding level.
type NormDrift struct {
	maxDrift float64
}

func NewNormDrift() *NormDrift { return &NormDrift{} }

func (n *NormDrift) Name() string { return "norm_drift" }

func (n *NormDrift) Observe(s Step, before, after coord.Point) {
	if s.Op != OpRotate {
		return
	}
	r0 := before.Norm()
	if r0 == 0 {
		return
	}
	n.maxDrift = math.Max(n.maxDrift, math.Abs(after.Norm()-r0)/r0)
}

func (n *NormDrift) Value() float64 { return n.maxDrift }

func (n *NormDrift) Reset() { n.maxDrift = 0 }

// PathLength sums the straight-line distance moved by each step.
type PathLength struct {
	total float64
}

func NewPathLength() *PathLength { return &PathLength{} }

func (p *PathLength) Name() string { return "path_length" }

func (p *PathLength) Observe(_ Step, before, after coord.Point) {
	p.total += after.Vec().Sub(before.Vec()).Len()
}

func (p *PathLength) Value() float64 { return p.total }

func (p *PathLength) Reset() { p.total = 0 }
