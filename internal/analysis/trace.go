package analysis

import (
	"github.com/san-kum/asciibrot/internal/animation"
)

// RadiusTrace returns the Julia radius for n consecutive frames starting at
// state s. s is not modified.
func RadiusTrace(s animation.State, n int) []float64 {
	trace := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		trace = append(trace, s.JuliaRadius())
		s.Advance()
	}
	return trace
}
