package config

import "sort"

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"reference_b": {
		Name: "reference_b", Units: UnitsDegrees,
		Start: StartConfig{System: SystemCartesian, Coords: []float64{3.3, 2.2, 4.4}},
		Steps: []StepConfig{
			{Op: "rotate", Axis: "z", Angle: 90},
			{Op: "translate", By: []float64{1, 2, 3}},
			{Op: "scale", By: []float64{2, 2, 2}},
		},
	},
	"orbit": {
		Name: "orbit", Units: UnitsDegrees,
		Start: StartConfig{System: SystemCylindrical, Coords: []float64{2, 0, 1}},
		Steps: repeat(24, StepConfig{Op: "rotate", Axis: "z", Angle: 15}),
	},
	"helix": {
		Name: "helix", Units: UnitsDegrees,
		Start: StartConfig{System: SystemCylindrical, Coords: []float64{1, 0, 0}},
		Steps: repeat(12,
			StepConfig{Op: "rotate", Axis: "z", Angle: 30},
			StepConfig{Op: "translate", By: []float64{0, 0, 0.25}},
		),
	},
	"tumble": {
		Name: "tumble", Units: UnitsRadians,
		Start: StartConfig{System: SystemSpherical, Coords: []float64{1, 1.5707963267948966, 0}},
		Steps: repeat(8,
			StepConfig{Op: "rotate", Axis: "x", Angle: 0.4},
			StepConfig{Op: "rotate", Axis: "y", Angle: 0.3},
		),
	},
	"bad_axis": {
		Name: "bad_axis", Units: UnitsDegrees,
		Start: StartConfig{System: SystemCartesian, Coords: []float64{1, 2, 3}},
		Steps: []StepConfig{
			{Op: "rotate", Axis: "w", Angle: 90},
			{Op: "translate", By: []float64{1, 1, 1}},
		},
	},
}

func repeat(n int, steps ...StepConfig) []StepConfig {
	out := make([]StepConfig, 0, n*len(steps))
	for i := 0; i < n; i++ {
		out = append(out, steps...)
	}
	return out
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Start.Coords = append([]float64(nil), p.Start.Coords...)
	cfg.Steps = make([]StepConfig, len(p.Steps))
	for i, s := range p.Steps {
		s.By = append([]float64(nil), s.By...)
		cfg.Steps[i] = s
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
