package fractal

import "errors"

// Domain errors for frame configuration.
var (
	// ErrIterations indicates a non-positive iteration bound.
	ErrIterations = errors.New("fractal: iteration bound must be positive")

	// ErrEmptyPalette indicates a palette with no glyphs.
	ErrEmptyPalette = errors.New("fractal: palette must not be empty")

	// ErrViewport indicates a viewport with a non-positive dimension.
	ErrViewport = errors.New("fractal: viewport dimensions must be positive")

	// ErrZoom indicates a non-positive or non-finite zoom factor.
	ErrZoom = errors.New("fractal: zoom must be positive")

	// ErrFontAspect indicates a non-positive or non-finite font aspect ratio.
	ErrFontAspect = errors.New("fractal: font aspect must be positive")

	// ErrFrameDelay indicates a negative or unrepresentable frame delay.
	ErrFrameDelay = errors.New("fractal: frame delay must be a non-negative duration")

	// ErrUnknownKind indicates an evaluator name that is neither mandelbrot nor julia.
	ErrUnknownKind = errors.New("fractal: unknown evaluator kind")
)
