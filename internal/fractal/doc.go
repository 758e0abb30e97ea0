// Package fractal provides the escape-time core for character-cell fractal
// rendering.
//
// The package defines the configuration and the pure functions that turn a
// viewport of terminal cells into one frame of text:
//
//   - [Config]: view, evaluator and palette settings for a frame
//   - [Evaluate]: escape-time iteration for a single plane point
//   - [ToPlane]: terminal cell to complex-plane mapping
//   - [Quantize]: escape speed to palette glyph
//   - [Render]: full frame composition
//
// # Example
//
//	cfg := fractal.DefaultConfig()
//	cfg.Width, cfg.Height = 80, 24
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	fmt.Println(fractal.Render(&cfg))
//
// # Thread Safety
//
// All functions only read the [Config] they are given. A Config must not be
// modified while a frame is being rendered from it.
package fractal
