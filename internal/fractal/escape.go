package fractal

// escapeRadiusSq is |z|² beyond which the orbit is known to diverge.
const escapeRadiusSq = 4.0

// Result is the outcome of escape-time iteration for one point.
// Speed is n/Iterations for the step n at which the orbit escaped and is
// meaningless when Bounded is set.
type Result struct {
	Bounded bool
	Speed   float64
}

// Evaluate iterates z = z² + c for the point (x, y).
func Evaluate(x, y float64, cfg *Config) Result {
	switch cfg.Kind {
	case Julia:
		return iterate(x, y, cfg.Julia.Re, cfg.Julia.Im, cfg.Iterations)
	default:
		return iterate(0, 0, x, y, cfg.Iterations)
	}
}

func iterate(reZ, imZ, reC, imC float64, nmax int) Result {
	for n := 0; n < nmax; n++ {
		reZ, imZ = reZ*reZ-imZ*imZ+reC, 2*reZ*imZ+imC

		if reZ*reZ+imZ*imZ > escapeRadiusSq {
			return Result{Speed: float64(n) / float64(nmax)}
		}
	}
	return Result{Bounded: true}
}
