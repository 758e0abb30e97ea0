package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/san-kum/asciibrot/internal/fractal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultIterations = fractal.DefaultIterations
	DefaultZoom       = fractal.DefaultZoom
	DefaultFontAspect = fractal.DefaultFontAspect
	DefaultPalette    = fractal.DefaultPalette
	DefaultInterior   = "@"
	DefaultDelay      = 0.03
)

var (
	// ErrMalformedPair indicates a "re:im" argument without its delimiter or
	// with a non-numeric part.
	ErrMalformedPair = errors.New("config: expected a pair of numbers as <re>:<im>")

	// ErrMalformedSize indicates a "WxH" argument without its delimiter or
	// with a non-integer part.
	ErrMalformedSize = errors.New("config: expected a size as <width>x<height>")
)

type Config struct {
	Evaluator  string  `yaml:"evaluator"`
	Iterations int     `yaml:"iterations"`
	Center     Pair    `yaml:"center"`
	Julia      Pair    `yaml:"julia"`
	Zoom       float64 `yaml:"zoom"`
	FontAspect float64 `yaml:"font_aspect"`
	Size       string  `yaml:"size,omitempty"`
	Palette    string  `yaml:"palette"`
	Interior   string  `yaml:"interior"`
	Animate    bool    `yaml:"animate"`
	Bounce     bool    `yaml:"bounce"`
	Delay      float64 `yaml:"delay"`
	Seed       *int64  `yaml:"seed,omitempty"`
	Frames     int     `yaml:"frames,omitempty"`
}

type Pair struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (p Pair) String() string {
	return strconv.FormatFloat(p.Re, 'g', -1, 64) + ":" + strconv.FormatFloat(p.Im, 'g', -1, 64)
}

func DefaultConfig() *Config {
	return &Config{
		Evaluator:  fractal.Mandelbrot.String(),
		Iterations: DefaultIterations,
		Julia:      Pair{Re: fractal.DefaultJulia.Re, Im: fractal.DefaultJulia.Im},
		Zoom:       DefaultZoom,
		FontAspect: DefaultFontAspect,
		Palette:    DefaultPalette,
		Interior:   DefaultInterior,
		Bounce:     true,
		Delay:      DefaultDelay,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the settings present in the file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode writes cfg to w as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Viewport returns the fixed viewport size. fixed is false when no size is
// configured and the caller should ask the terminal.
func (c *Config) Viewport() (width, height int, fixed bool, err error) {
	if c.Size == "" {
		return 0, 0, false, nil
	}
	width, height, err = ParseSize(c.Size)
	if err != nil {
		return 0, 0, false, err
	}
	return width, height, true, nil
}

// Fractal builds and validates the frame configuration for a width x height
// viewport.
func (c *Config) Fractal(width, height int) (fractal.Config, error) {
	kind, err := fractal.ParseKind(c.Evaluator)
	if err != nil {
		return fractal.Config{}, err
	}
	delay, err := c.frameDelay()
	if err != nil {
		return fractal.Config{}, err
	}

	fc := fractal.Config{
		Iterations: c.Iterations,
		Center:     fractal.Point{Re: c.Center.Re, Im: c.Center.Im},
		Julia:      fractal.Point{Re: c.Julia.Re, Im: c.Julia.Im},
		Zoom:       c.Zoom,
		FontAspect: c.FontAspect,
		Width:      width,
		Height:     height,
		Kind:       kind,
		Palette:    []rune(c.Palette),
		Interior:   InteriorRune(c.Interior),
		Animate:    c.Animate,
		Bounce:     c.Bounce,
		FrameDelay: delay,
	}
	if err := fc.Validate(); err != nil {
		return fractal.Config{}, err
	}
	return fc, nil
}

// maxDelay is the longest delay, in seconds, a time.Duration can hold.
const maxDelay = float64(math.MaxInt64) / float64(time.Second)

func (c *Config) frameDelay() (time.Duration, error) {
	if math.IsNaN(c.Delay) || c.Delay < 0 || c.Delay >= maxDelay {
		return 0, fmt.Errorf("%w, got %g seconds", fractal.ErrFrameDelay, c.Delay)
	}
	return time.Duration(c.Delay * float64(time.Second)), nil
}

// InteriorRune returns the first glyph of s, or a space when s is empty.
// A leading invalid UTF-8 byte yields U+FFFD, like any other decode.
func InteriorRune(s string) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ' '
	}
	return r
}

// ParsePair parses "<re>:<im>".
func ParsePair(s string) (Pair, error) {
	re, im, ok := strings.Cut(s, ":")
	if !ok {
		return Pair{}, fmt.Errorf("%w, got %q", ErrMalformedPair, s)
	}
	a, errA := strconv.ParseFloat(strings.TrimSpace(re), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if errA != nil || errB != nil {
		return Pair{}, fmt.Errorf("%w, got %q", ErrMalformedPair, s)
	}
	return Pair{Re: a, Im: b}, nil
}

// ParseSize parses "<width>x<height>".
func ParseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w, got %q", ErrMalformedSize, s)
	}
	width, errW := strconv.Atoi(strings.TrimSpace(w))
	height, errH := strconv.Atoi(strings.TrimSpace(h))
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("%w, got %q", ErrMalformedSize, s)
	}
	return width, height, nil
}
