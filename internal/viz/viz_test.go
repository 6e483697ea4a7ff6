package viz

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/geom"
	"github.com/san-kum/coordsim/internal/transform"
)

func TestCanvas_Set(t *testing.T) {
	c := NewCanvas(2, 1)
	if w, h := c.Dots(); w != 4 || h != 4 {
		t.Fatalf("Dots() = %d, %d", w, h)
	}

	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != blank|0x80 {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}

	c.Clear()
	if c.String() != "\u2800\u2800\n" {
		t.Errorf("String() after Clear = %q", c.String())
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(1, 1)
	c.DrawLine(0, 0, 0, 3)
	if c.Grid[0][0] != blank|0x1|0x2|0x4|0x40 {
		t.Errorf("vertical line = %U", c.Grid[0][0])
	}
}

func TestScene_Render(t *testing.T) {
	c := NewCanvas(20, 10)
	trace := []coord.Point{
		coord.FromCartesian(1, 0, 0),
		coord.FromCartesian(0, 1, 0),
		coord.FromCartesian(0, 0, 1),
	}

	NewScene().Render(c, trace)

	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank && r <= 0x28ff }) {
		t.Error("expected dots on the canvas")
	}
}

func TestScene_RenderEmptyCanvas(t *testing.T) {
	c := NewCanvas(0, 0)
	NewScene().Render(c, []coord.Point{coord.FromCartesian(1, 1, 1)})
	if c.String() != "" {
		t.Errorf("expected empty output, got %q", c.String())
	}
}

func TestRenderViews(t *testing.T) {
	out := RenderViews(coord.FromCartesian(0, 2, 0).Views())

	for _, want := range []string{"cartesian", "cylindrical", "spherical", "x=0", "r=2", "rho=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderViews missing %q:\n%s", want, out)
		}
	}
}

func runReference(t *testing.T) *transform.Result {
	t.Helper()
	p := transform.New(nil, nil)
	p.AddMetric(transform.NewPathLength())
	result, err := p.Run(context.Background(), coord.FromCartesian(1, 2, 3), []transform.Step{
		transform.Rotate(geom.AxisZ, math.Pi/2),
		transform.Rotate(geom.Axis('w'), 1),
		transform.Translate(1, 2, 3),
		transform.Scale(2, 2, 2),
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestRenderTrace(t *testing.T) {
	out := RenderTrace(runReference(t))

	for _, want := range []string{"start", "translate (1, 2, 3)", "(-2, 6, 12)", "invalid axis", "path_length"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTrace missing %q:\n%s", want, out)
		}
	}
}

func TestPlotComponents(t *testing.T) {
	out := PlotComponents(runReference(t), 40, 8)
	if !strings.Contains(out, "x, y, z by step") {
		t.Errorf("plot missing caption:\n%s", out)
	}

	if got := PlotComponents(&transform.Result{Points: []coord.Point{{}}}, 40, 8); got != "" {
		t.Errorf("single point should not plot, got %q", got)
	}
}
