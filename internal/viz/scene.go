package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/coordsim/internal/coord"
)

// Scene draws a trace of points in an orthographic view. The camera first
// turns the world by Yaw about z, then tilts it by Pitch about x.
type Scene struct {
	Yaw, Pitch float64
	Axes       bool
}

func NewScene() *Scene {
	return &Scene{Yaw: -math.Pi / 6, Pitch: -math.Pi / 3, Axes: true}
}

// Render draws the trace as a polyline on c, scaled so the farthest point
// fits.
func (s *Scene) Render(c *Canvas, trace []coord.Point) {
	c.Clear()
	if c.Width == 0 || c.Height == 0 {
		return
	}

	yaw, pitch := mgl64.Rotate3DZ(s.Yaw), mgl64.Rotate3DX(s.Pitch)
	extent := 1.0
	for _, p := range trace {
		extent = math.Max(extent, p.Norm())
	}

	dw, dh := c.Dots()
	half := float64(min(dw, dh)) / 2
	scale := 0.9 * half / extent
	cx, cy := dw/2, dh/2

	view := pitch.Mul3(yaw)
	project := func(v mgl64.Vec3) (int, int) {
		r := view.Mul3x1(v)
		return cx + int(math.Round(r[0]*scale)), cy - int(math.Round(r[1]*scale))
	}

	if s.Axes {
		ox, oy := project(mgl64.Vec3{})
		for _, axis := range []mgl64.Vec3{{extent, 0, 0}, {0, extent, 0}, {0, 0, extent}} {
			ax, ay := project(axis)
			c.DrawLine(ox, oy, ax, ay)
		}
	}

	for i, p := range trace {
		x, y := project(p.Vec())
		if i == 0 {
			c.Set(x, y)
			continue
		}
		px, py := project(trace[i-1].Vec())
		c.DrawLine(px, py, x, y)
	}
}
