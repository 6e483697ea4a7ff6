package transform

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/coordsim/internal/geom"
)

// Builder turns a step into the affine matrix that performs it.
type Builder func(Step) (mgl64.Mat4, error)

type Registry struct {
	builders map[Op]Builder
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[Op]Builder)}

	r.builders[OpRotate] = func(s Step) (mgl64.Mat4, error) {
		m, err := geom.Rotation(s.Axis, s.Angle)
		if err != nil {
			return mgl64.Mat4{}, err
		}
		return m.Mat4(), nil
	}
	r.builders[OpTranslate] = func(s Step) (mgl64.Mat4, error) {
		return mgl64.Translate3D(s.Vector[0], s.Vector[1], s.Vector[2]), nil
	}
	r.builders[OpScale] = func(s Step) (mgl64.Mat4, error) {
		return mgl64.Scale3D(s.Vector[0], s.Vector[1], s.Vector[2]), nil
	}

	return r
}

// Register adds or replaces the builder for op. A zero Registry starts
// with no builders.
func (r *Registry) Register(op Op, b Builder) {
	if r.builders == nil {
		r.builders = make(map[Op]Builder)
	}
	r.builders[op] = b
}

func (r *Registry) Has(op Op) bool {
	_, ok := r.builders[op]
	return ok
}

func (r *Registry) Build(s Step) (mgl64.Mat4, error) {
	b, ok := r.builders[s.Op]
	if !ok {
		return mgl64.Mat4{}, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
	return b(s)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for op := range r.builders {
		names = append(names, string(op))
	}
	sort.Strings(names)
	return names
}
