package analysis

import (
	"github.com/san-kum/asciibrot/internal/fractal"
)

// FrameStats counts how the cells of one frame escaped.
type FrameStats struct {
	Cells    int
	Interior int
	// Steps[n] is the number of cells that escaped on step n.
	Steps []int
	// Buckets[i] is the number of escaped cells drawn with Palette[i].
	Buckets []int
	Palette []rune
}

// Analyze evaluates every cell of the frame described by cfg.
func Analyze(cfg *fractal.Config) *FrameStats {
	stats := &FrameStats{
		Steps:   make([]int, cfg.Iterations),
		Buckets: make([]int, len(cfg.Palette)),
		Palette: append([]rune(nil), cfg.Palette...),
	}

	fractal.Walk(cfg, func(_, _ int, r fractal.Result) {
		stats.Cells++
		if r.Bounded {
			stats.Interior++
			return
		}
		n := int(r.Speed*float64(cfg.Iterations) + 0.5)
		if n >= cfg.Iterations {
			n = cfg.Iterations - 1
		}
		stats.Steps[n]++
		stats.Buckets[fractal.Bucket(r.Speed, len(cfg.Palette))]++
	})

	return stats
}

// Coverage is the fraction of cells that never escaped.
func (s *FrameStats) Coverage() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Interior) / float64(s.Cells)
}

// MeanEscape is the average escape step of the cells that escaped.
func (s *FrameStats) MeanEscape() float64 {
	escaped, sum := 0, 0
	for n, count := range s.Steps {
		escaped += count
		sum += n * count
	}
	if escaped == 0 {
		return 0
	}
	return float64(sum) / float64(escaped)
}
