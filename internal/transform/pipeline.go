package transform

import (
	"context"
	"errors"
	"log/slog"

	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/geom"
)

// Result is the trace of a pipeline run. Points[0] is the start point and
// Points[i+1] the point after Steps[i]; a rejected step repeats the
// previous point.
type Result struct {
	Points       []coord.Point
	Steps        []Step
	Metrics      map[string]float64
	Errors       []error
	StepsApplied int
}

// Final returns the last point of the trace.
func (r *Result) Final() coord.Point {
	if len(r.Points) == 0 {
		return coord.Point{}
	}
	return r.Points[len(r.Points)-1]
}

// Err joins the per-step errors, or returns nil when every step applied.
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

// Pipeline applies steps to a point one after another. Each step sees the
// output of the previous one; steps are never pre-multiplied into a single
// matrix.
type Pipeline struct {
	registry  *Registry
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(registry *Registry, logger *slog.Logger) *Pipeline {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		registry:  registry,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (p *Pipeline) AddMetric(m Metric)     { p.metrics = append(p.metrics, m) }
func (p *Pipeline) AddObserver(o Observer) { p.observers = append(p.observers, o) }

// Run applies steps to start in order. A step whose matrix cannot be built
// (an invalid rotation axis) is recorded in Result.Errors and skipped,
// leaving the point unchanged. A step with a non-finite result stops the
// run. Unknown ops are rejected before any step is applied.
func (p *Pipeline) Run(ctx context.Context, start coord.Point, steps []Step) (*Result, error) {
	for i, s := range steps {
		if !p.registry.Has(s.Op) {
			return nil, &StepError{Index: i, Step: s, Wrapped: ErrUnknownOp}
		}
	}

	result := &Result{
		Points:  make([]coord.Point, 0, len(steps)+1),
		Steps:   append([]Step(nil), steps...),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range p.metrics {
		m.Reset()
	}

	pt := start
	result.Points = append(result.Points, pt)

	for i, s := range steps {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		a, err := p.registry.Build(s)
		if err != nil {
			stepErr := &StepError{Index: i, Step: s, Wrapped: err}
			p.logger.Warn("step rejected", "index", i, "step", s.String(), "err", err)
			result.Errors = append(result.Errors, stepErr)
			result.Points = append(result.Points, pt)
			continue
		}

		next := pt
		next.ApplyAffine(a)
		if !geom.IsFinite(next.Vec()) {
			stepErr := &StepError{Index: i, Step: s, Wrapped: ErrNonFinite}
			p.logger.Warn("step produced non-finite point", "index", i, "step", s.String())
			result.Errors = append(result.Errors, stepErr)
			break
		}

		for _, m := range p.metrics {
			m.Observe(s, pt, next)
		}
		for _, obs := range p.observers {
			obs.OnStep(i, s, pt, next)
		}

		p.logger.Debug("step applied", "index", i, "step", s.String(), "point", next.String())

		pt = next
		result.StepsApplied++
		result.Points = append(result.Points, pt)
	}

	for _, m := range p.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
