package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/transform"
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, Label.Render(label), Value.Render(value))
}

// RenderViews shows the three representations of a point.
func RenderViews(v coord.Views) string {
	lines := []string{
		row("cartesian", fmt.Sprintf("x=%.6g  y=%.6g  z=%.6g", v.Cartesian.X, v.Cartesian.Y, v.Cartesian.Z)),
		row("cylindrical", fmt.Sprintf("r=%.6g  phi=%.6g  z=%.6g", v.Cylindrical.R, v.Cylindrical.Phi, v.Cylindrical.Z)),
		row("spherical", fmt.Sprintf("rho=%.6g  theta=%.6g  phi=%.6g", v.Spherical.Rho, v.Spherical.Theta, v.Spherical.Phi)),
	}
	return strings.Join(lines, "\n")
}

// RenderTrace lists every point of a run with the step that produced it,
// followed by rejected steps and metrics.
func RenderTrace(r *transform.Result) string {
	var b strings.Builder
	for i, p := range r.Points {
		label := "start"
		if i > 0 && i-1 < len(r.Steps) {
			label = r.Steps[i-1].String()
		}
		c := p.Cartesian()
		fmt.Fprintf(&b, "%s %s\n",
			Subtle.Render(fmt.Sprintf("%3d %-32s", i, label)),
			Value.Render(fmt.Sprintf("(%.6g, %.6g, %.6g)", c.X, c.Y, c.Z)))
	}
	for _, err := range r.Errors {
		b.WriteString(Warning.Render("! "+err.Error()) + "\n")
	}
	for _, name := range sortedKeys(r.Metrics) {
		b.WriteString(row(name, fmt.Sprintf("%.6g", r.Metrics[name])) + "\n")
	}
	return b.String()
}

// PlotComponents plots x, y and z of every point against its index.
func PlotComponents(r *transform.Result, width, height int) string {
	if len(r.Points) < 2 {
		return ""
	}
	xs := make([]float64, len(r.Points))
	ys := make([]float64, len(r.Points))
	zs := make([]float64, len(r.Points))
	for i, p := range r.Points {
		c := p.Cartesian()
		xs[i], ys[i], zs[i] = c.X, c.Y, c.Z
	}
	return asciigraph.PlotMany([][]float64{xs, ys, zs},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("x, y, z by step"),
	)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
