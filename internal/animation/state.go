package animation

import (
	"math"
	"math/rand"

	"github.com/san-kum/asciibrot/internal/fractal"
)

const (
	// TenthDegreeBound is a full turn in tenths of a degree.
	TenthDegreeBound = 3600
	// HundredthDegreeBound is a full turn in hundredths of a degree.
	HundredthDegreeBound = 36000

	ZoomDepthStep    = 15
	ZoomRotationStep = 50

	bounceDepth  = 0.25
	bounceRadius = 0.5
)

// StepChoices are the per-run step sizes for the radius and rotation
// accumulators, in tenths of a degree per frame.
var StepChoices = []int{-6, -4, -2, 2, 4, 6}

// RadiusShape sets the Julia radius oscillation: r = sin(phase)*Span + Offset.
type RadiusShape struct {
	Span   float64
	Offset float64
}

// RadiusShapes are the per-run choices for the Julia radius oscillation.
var RadiusShapes = []RadiusShape{
	{Span: 0.5, Offset: 0.5},
	{Span: 0.1, Offset: 0.77},
	{Span: 0.35, Offset: 0.85},
}

// Accumulator is an integer position on a turn of Bound units that moves by
// Step every frame.
type Accumulator struct {
	Value int
	Step  int
	Bound int
}

// Advance moves the accumulator one step, wrapping into [0, Bound).
func (a *Accumulator) Advance() {
	a.Value = ((a.Value+a.Step)%a.Bound + a.Bound) % a.Bound
}

// Period is the number of frames after which Value repeats.
func (a Accumulator) Period() int {
	if a.Step == 0 {
		return 1
	}
	return a.Bound / gcd(abs(a.Step), a.Bound)
}

// Radians returns the accumulator position as an angle.
func (a Accumulator) Radians() float64 {
	return float64(a.Value) * 2 * math.Pi / float64(a.Bound)
}

// SinCos returns sin and cos of the accumulator angle.
func (a Accumulator) SinCos() (sin, cos float64) {
	if t := tableFor(a.Bound); t != nil {
		return t.SinCos(a.Value)
	}
	return math.Sincos(a.Radians())
}

// State is the per-run animation trajectory.
type State struct {
	Radius       Accumulator
	Rotation     Accumulator
	ZoomDepth    Accumulator
	ZoomRotation Accumulator
	Shape        RadiusShape
}

// NewState picks random phases, steps and radius shape from rng.
func NewState(rng *rand.Rand) State {
	return State{
		Radius: Accumulator{
			Value: rng.Intn(TenthDegreeBound),
			Step:  StepChoices[rng.Intn(len(StepChoices))],
			Bound: TenthDegreeBound,
		},
		Rotation: Accumulator{
			Value: rng.Intn(TenthDegreeBound),
			Step:  StepChoices[rng.Intn(len(StepChoices))],
			Bound: TenthDegreeBound,
		},
		Shape: RadiusShapes[rng.Intn(len(RadiusShapes))],
		ZoomDepth: Accumulator{
			Value: rng.Intn(TenthDegreeBound),
			Step:  ZoomDepthStep,
			Bound: TenthDegreeBound,
		},
		ZoomRotation: Accumulator{
			Value: rng.Intn(HundredthDegreeBound),
			Step:  ZoomRotationStep,
			Bound: HundredthDegreeBound,
		},
	}
}

// JuliaRadius is the current distance of the Julia parameter from the origin.
func (s *State) JuliaRadius() float64 {
	sin, _ := s.Radius.SinCos()
	return sin*s.Shape.Span + s.Shape.Offset
}

// Apply writes the parameters for the current frame into cfg. The Julia
// parameter is (0, r) rotated by the rotation angle. With bounce enabled the
// center circles the origin and the zoom breathes around 1.
func (s *State) Apply(cfg *fractal.Config) {
	r := s.JuliaRadius()
	sin, cos := s.Rotation.SinCos()
	cfg.Julia = fractal.Point{Re: -r * sin, Im: r * cos}

	if !cfg.Bounce {
		return
	}

	depth, _ := s.ZoomDepth.SinCos()
	sin, cos = s.ZoomRotation.SinCos()
	cfg.Center = fractal.Point{Re: bounceRadius * sin, Im: bounceRadius * cos}
	cfg.Zoom = depth*bounceDepth + 1
}

// Advance steps all four accumulators.
func (s *State) Advance() {
	s.Radius.Advance()
	s.Rotation.Advance()
	s.ZoomDepth.Advance()
	s.ZoomRotation.Advance()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
