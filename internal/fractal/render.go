package fractal

import (
	"bufio"
	"io"
	"strings"
)

// Render produces one frame: Height rows of Width glyphs separated by
// newlines, without a trailing newline.
func Render(cfg *Config) string {
	var b strings.Builder
	b.Grow((cfg.Width + 1) * cfg.Height)
	renderRows(&b, cfg)
	return b.String()
}

// RenderTo writes the frame produced by Render to w.
func RenderTo(w io.Writer, cfg *Config) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriterSize(w, (cfg.Width+1)*cfg.Height)
	}
	renderRows(bw, cfg)
	return bw.Flush()
}

type runeWriter interface {
	WriteRune(r rune) (int, error)
	WriteByte(c byte) error
}

func renderRows(w runeWriter, cfg *Config) {
	for yTerm := 0; yTerm < cfg.Height; yTerm++ {
		for xTerm := 0; xTerm < cfg.Width; xTerm++ {
			x, y := ToPlane(xTerm, yTerm, cfg)
			w.WriteRune(Quantize(Evaluate(x, y, cfg), cfg))
		}

		if yTerm < cfg.Height-1 {
			w.WriteByte('\n')
		}
	}
}

// Walk calls fn for every cell of the frame in render order.
func Walk(cfg *Config, fn func(xTerm, yTerm int, r Result)) {
	for yTerm := 0; yTerm < cfg.Height; yTerm++ {
		for xTerm := 0; xTerm < cfg.Width; xTerm++ {
			x, y := ToPlane(xTerm, yTerm, cfg)
			fn(xTerm, yTerm, Evaluate(x, y, cfg))
		}
	}
}
