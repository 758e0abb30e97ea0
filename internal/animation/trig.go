package animation

import "math"

// sineTable holds sin and cos for every step of a full turn split into n
// equal parts. Accumulators are integer positions on such a turn, so lookups
// are exact and need no interpolation.
type sineTable struct {
	sin []float64
	cos []float64
	n   int
}

var (
	tenthDegrees     = newSineTable(TenthDegreeBound)
	hundredthDegrees = newSineTable(HundredthDegreeBound)
)

func newSineTable(n int) *sineTable {
	t := &sineTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}

	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}

	return t
}

func (t *sineTable) index(i int) int {
	i %= t.n
	if i < 0 {
		i += t.n
	}
	return i
}

func (t *sineTable) SinCos(i int) (sin, cos float64) {
	i = t.index(i)
	return t.sin[i], t.cos[i]
}

// tableFor returns the shared table for bound, or nil for other bounds.
func tableFor(bound int) *sineTable {
	switch bound {
	case TenthDegreeBound:
		return tenthDegrees
	case HundredthDegreeBound:
		return hundredthDegrees
	default:
		return nil
	}
}
