package fractal

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DefaultIterations = 30
	DefaultZoom       = 1.0
	DefaultFontAspect = 0.5
	DefaultPalette    = " .:-+=oO0#"
	DefaultInterior   = '@'
	DefaultFrameDelay = 30 * time.Millisecond
)

// DefaultJulia is the Julia constant used when none is given.
var DefaultJulia = Point{Re: -0.46, Im: 0.58}

// Kind selects the escape-time evaluator.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts the names produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mandelbrot":
		return Mandelbrot, nil
	case "julia":
		return Julia, nil
	default:
		return Mandelbrot, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Point is a point of the complex plane.
type Point struct {
	Re float64
	Im float64
}

// Config describes one frame. The animation driver rewrites Julia, Center
// and Zoom between frames; nothing else changes after validation.
type Config struct {
	Iterations int
	Center     Point
	Julia      Point
	Zoom       float64
	FontAspect float64
	Width      int
	Height     int
	Kind       Kind
	Palette    []rune
	Interior   rune
	Animate    bool
	Bounce     bool
	FrameDelay time.Duration
}

// DefaultConfig returns the default view with an unset viewport.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Julia:      DefaultJulia,
		Zoom:       DefaultZoom,
		FontAspect: DefaultFontAspect,
		Kind:       Mandelbrot,
		Palette:    []rune(DefaultPalette),
		Interior:   DefaultInterior,
		Bounce:     true,
		FrameDelay: DefaultFrameDelay,
	}
}

func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w, got %d", ErrIterations, c.Iterations)
	}
	if len(c.Palette) == 0 {
		return ErrEmptyPalette
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w, got %dx%d", ErrViewport, c.Width, c.Height)
	}
	if !(c.Zoom > 0) || math.IsInf(c.Zoom, 0) {
		return fmt.Errorf("%w, got %g", ErrZoom, c.Zoom)
	}
	if !(c.FontAspect > 0) || math.IsInf(c.FontAspect, 0) {
		return fmt.Errorf("%w, got %g", ErrFontAspect, c.FontAspect)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w, got %v", ErrFrameDelay, c.FrameDelay)
	}
	return nil
}

// Clone returns a copy that shares nothing mutable with c.
func (c Config) Clone() Config {
	c.Palette = append([]rune(nil), c.Palette...)
	return c
}
