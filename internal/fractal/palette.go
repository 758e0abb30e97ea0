package fractal

// Quantize picks the glyph for an evaluation result. Faster escapes map to
// later (denser) palette entries; bounded points use the interior glyph.
func Quantize(r Result, cfg *Config) rune {
	if r.Bounded {
		return cfg.Interior
	}
	return cfg.Palette[Bucket(r.Speed, len(cfg.Palette))]
}

// Bucket returns the palette index for speed t in a palette of n glyphs.
func Bucket(t float64, n int) int {
	i := int(t * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
