package config

import "sort"

// Preset is a named view. Applying it replaces the evaluator, view and
// iteration bound and leaves palette, size and animation settings alone.
type Preset struct {
	Description string
	Evaluator   string
	Iterations  int
	Center      Pair
	Julia       Pair
	Zoom        float64
}

var Presets = map[string]Preset{
	"classic": {
		Description: "whole Mandelbrot set",
		Evaluator:   "mandelbrot",
		Iterations:  30,
		Center:      Pair{Re: -0.5},
		Zoom:        1.1,
	},
	"seahorse": {
		Description: "seahorse valley between the main cardioid and the period-2 bulb",
		Evaluator:   "mandelbrot",
		Iterations:  200,
		Center:      Pair{Re: -0.745, Im: 0.1},
		Zoom:        0.04,
	},
	"elephant": {
		Description: "elephant valley on the right of the main cardioid",
		Evaluator:   "mandelbrot",
		Iterations:  150,
		Center:      Pair{Re: 0.285, Im: 0.01},
		Zoom:        0.03,
	},
	"spiral": {
		Description: "double spiral deep in seahorse valley",
		Evaluator:   "mandelbrot",
		Iterations:  400,
		Center:      Pair{Re: -0.7453, Im: 0.1127},
		Zoom:        0.003,
	},
	"rabbit": {
		Description: "Douady rabbit Julia set",
		Evaluator:   "julia",
		Iterations:  60,
		Julia:       Pair{Re: -0.123, Im: 0.745},
		Zoom:        1.2,
	},
	"dendrite": {
		Description: "dendrite Julia set for c = i",
		Evaluator:   "julia",
		Iterations:  60,
		Julia:       Pair{Re: 0, Im: 1},
		Zoom:        1.3,
	},
	"siegel": {
		Description: "Siegel disk Julia set",
		Evaluator:   "julia",
		Iterations:  80,
		Julia:       Pair{Re: -0.390541, Im: -0.586788},
		Zoom:        1.2,
	},
	"basilica": {
		Description: "basilica Julia set for c = -1",
		Evaluator:   "julia",
		Iterations:  50,
		Julia:       Pair{Re: -1, Im: 0},
		Zoom:        1.3,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset view into cfg.
func (p *Preset) Apply(cfg *Config) {
	cfg.Evaluator = p.Evaluator
	cfg.Iterations = p.Iterations
	cfg.Center = p.Center
	cfg.Zoom = p.Zoom
	if p.Evaluator == "julia" {
		cfg.Julia = p.Julia
	}
}
