package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/geom"
	"github.com/san-kum/coordsim/internal/viz"
)

const (
	rotateStep = math.Pi / 12
	moveStep   = 1.0
	maxTrail   = 64
)

type model struct {
	start   coord.Point
	point   coord.Point
	trail   []coord.Point
	scene   *viz.Scene
	lastOp  string
	lastErr error

	width  int
	height int
}

func NewInteractiveApp(start coord.Point) *model {
	return &model{
		start:  start,
		point:  start,
		trail:  []coord.Point{start},
		scene:  viz.NewScene(),
		lastOp: "start",
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "x", "y", "z":
		m.rotate(rotateStep, key)
	case "X", "Y", "Z":
		m.rotate(-rotateStep, strings.ToLower(key))
	case "w":
		// not an axis: the error is shown and the point is left alone
		m.rotate(rotateStep, key)
	case "left":
		m.apply("translate -x", func(p *coord.Point) { p.Translate(-moveStep, 0, 0) })
	case "right":
		m.apply("translate +x", func(p *coord.Point) { p.Translate(moveStep, 0, 0) })
	case "down":
		m.apply("translate -y", func(p *coord.Point) { p.Translate(0, -moveStep, 0) })
	case "up":
		m.apply("translate +y", func(p *coord.Point) { p.Translate(0, moveStep, 0) })
	case "pgdown":
		m.apply("translate -z", func(p *coord.Point) { p.Translate(0, 0, -moveStep) })
	case "pgup":
		m.apply("translate +z", func(p *coord.Point) { p.Translate(0, 0, moveStep) })
	case "+", "=":
		m.apply("scale x2", func(p *coord.Point) { p.Scale(2, 2, 2) })
	case "-":
		m.apply("scale x0.5", func(p *coord.Point) { p.Scale(0.5, 0.5, 0.5) })
	case "[":
		m.scene.Yaw -= rotateStep
	case "]":
		m.scene.Yaw += rotateStep
	case "r":
		m.point = m.start
		m.trail = []coord.Point{m.start}
		m.lastOp, m.lastErr = "reset", nil
	}
	return m, nil
}

func (m *model) rotate(angle float64, name string) {
	axis := geom.Axis(name[0])
	if err := m.point.Rotate(angle, axis); err != nil {
		m.lastOp, m.lastErr = "rotate "+name, err
		return
	}
	m.record(fmt.Sprintf("rotate %+.0f° about %s", mgl64.RadToDeg(angle), axis))
}

func (m *model) apply(op string, fn func(*coord.Point)) {
	fn(&m.point)
	m.record(op)
}

func (m *model) record(op string) {
	m.lastOp, m.lastErr = op, nil
	m.trail = append(m.trail, m.point)
	if len(m.trail) > maxTrail {
		m.trail = m.trail[len(m.trail)-maxTrail:]
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("coordsim") + "  " + viz.Subtle.Render(m.lastOp) + "\n\n")
	b.WriteString(viz.Panel.Render(viz.RenderViews(m.point.Views())) + "\n")
	if m.lastErr != nil {
		b.WriteString(viz.Warning.Render(m.lastErr.Error()) + "\n")
	}

	w, h := m.width-4, m.height-14
	if w > 0 && h > 2 {
		c := viz.NewCanvas(w, h)
		m.scene.Render(c, m.trail)
		b.WriteString(c.String())
	}

	b.WriteString(viz.KeyHint.Render("x/y/z rotate  X/Y/Z back  arrows pgup/pgdn move  +/- scale  [ ] turn view  r reset  q quit"))
	return b.String()
}

// RunInteractive opens the full-screen view starting from start.
func RunInteractive(start coord.Point) error {
	p := tea.NewProgram(NewInteractiveApp(start), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
