package fractal

import "math"

// ToPlane maps the terminal cell (xTerm, yTerm) to a point of the plane.
//
// Both axes share the scale min(Width*FontAspect, Height) so the picture
// keeps its proportions on any terminal shape. The imaginary center offset
// is subtracted, not added.
func ToPlane(xTerm, yTerm int, cfg *Config) (x, y float64) {
	c := scale(cfg)

	x = float64(2*xTerm-cfg.Width) / c
	x *= cfg.FontAspect * cfg.Zoom
	x += cfg.Center.Re

	y = float64(2*yTerm-cfg.Height) / c
	y *= cfg.Zoom
	y -= cfg.Center.Im

	return x, y
}

// GridStep returns the plane distance between horizontally and vertically
// adjacent cells.
func GridStep(cfg *Config) (dx, dy float64) {
	c := scale(cfg)
	return 2 / c * cfg.FontAspect * cfg.Zoom, 2 / c * cfg.Zoom
}

func scale(cfg *Config) float64 {
	return math.Min(float64(cfg.Width)*cfg.FontAspect, float64(cfg.Height))
}
