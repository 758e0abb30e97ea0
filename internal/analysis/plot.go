package analysis

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotSteps charts the escape-step histogram of a frame.
func PlotSteps(s *FrameStats, width, height int) string {
	if len(s.Steps) == 0 {
		return ""
	}
	data := make([]float64, len(s.Steps))
	for i, c := range s.Steps {
		data[i] = float64(c)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("cells escaped per iteration"),
	)
}

// PlotTrace charts a Julia radius trace.
func PlotTrace(trace []float64, width, height int) string {
	if len(trace) == 0 {
		return ""
	}
	return asciigraph.Plot(trace,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption("julia radius per frame"),
	)
}

// BucketTable lists palette bucket counts, one glyph per line.
func BucketTable(s *FrameStats) string {
	var b strings.Builder
	escaped := s.Cells - s.Interior
	for i, count := range s.Buckets {
		share := 0.0
		if escaped > 0 {
			share = 100 * float64(count) / float64(escaped)
		}
		fmt.Fprintf(&b, "  %q  %6d  %5.1f%%\n", s.Palette[i], count, share)
	}
	return b.String()
}
