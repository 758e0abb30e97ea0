package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/san-kum/asciibrot/internal/animation"
	"github.com/san-kum/asciibrot/internal/config"
	"github.com/san-kum/asciibrot/internal/fractal"
	"github.com/san-kum/asciibrot/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	chars      string
	inside     string
	iterations int
	zoom       float64
	position   string
	juliaParam string
	julia      bool
	fontAspect float64
	animate    bool
	noBounce   bool
	delay      float64
	size       string
	// Config file
	configFile string
	// Preset name
	preset string
	seed   int64
	frames int
	debug  bool

	logFile *os.File
)

// main runs the asciibrot CLI and exits with status 1 if the command fails.
func main() {
	err := newRootCmd().Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asciibrot",
		Short: "mandelbrot and julia sets in the terminal",
		Args:  cobra.NoArgs,
		// Flags parsed; from here on errors are reported without usage.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
			logFile = setupLogging(debug)
		},
		RunE: runRender,
	}

	f := rootCmd.PersistentFlags()
	f.StringVarP(&chars, "chars", "c", config.DefaultPalette, "palette, slowest escape first")
	f.StringVarP(&inside, "inside", "C", config.DefaultInterior, "character for points inside the set")
	f.IntVarP(&iterations, "iterations", "i", config.DefaultIterations, "iteration bound")
	f.Float64VarP(&zoom, "zoom", "z", config.DefaultZoom, "zoom (smaller is closer)")
	f.StringVarP(&position, "position", "p", "0:0", "view center as re:im")
	f.StringVarP(&juliaParam, "julia-param", "J", config.DefaultConfig().Julia.String(), "julia constant as re:im")
	f.BoolVarP(&julia, "julia", "j", false, "render the julia set")
	f.Float64VarP(&fontAspect, "font-aspect", "f", config.DefaultFontAspect, "character width over height")
	f.BoolVarP(&animate, "animate", "a", false, "animate the julia constant")
	f.BoolVarP(&noBounce, "no-bounce", "b", false, "keep the view fixed while animating")
	f.Float64VarP(&delay, "delay", "d", config.DefaultDelay, "seconds between frames")
	f.StringVarP(&size, "size", "s", "", "fixed viewport as WxH (default terminal size)")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use a named view preset")
	f.Int64Var(&seed, "seed", 0, "animation random seed (default time based)")
	f.IntVar(&frames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	f.BoolVar(&debug, "debug", false, "write a debug log")

	rootCmd.AddCommand(newPresetsCmd(), newStatsCmd(), newExploreCmd(), newConfigCmd())
	return rootCmd
}

// resolveConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		p.Apply(cfg)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("chars") {
		cfg.Palette = chars
	}
	if flags.Changed("inside") {
		cfg.Interior = inside
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("position") {
		p, err := config.ParsePair(position)
		if err != nil {
			return nil, fmt.Errorf("position: %w", err)
		}
		cfg.Center = p
	}
	if flags.Changed("julia-param") {
		p, err := config.ParsePair(juliaParam)
		if err != nil {
			return nil, fmt.Errorf("julia-param: %w", err)
		}
		cfg.Julia = p
	}
	if flags.Changed("julia") {
		cfg.Evaluator = fractal.Mandelbrot.String()
		if julia {
			cfg.Evaluator = fractal.Julia.String()
		}
	}
	if flags.Changed("font-aspect") {
		cfg.FontAspect = fontAspect
	}
	if flags.Changed("animate") {
		cfg.Animate = animate
	}
	if flags.Changed("no-bounce") {
		cfg.Bounce = !noBounce
	}
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		s := seed
		cfg.Seed = &s
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	return cfg, nil
}

// frameConfig sizes the view to the configured viewport or the terminal.
func frameConfig(cfg *config.Config) (fractal.Config, error) {
	w, h, fixed, err := cfg.Viewport()
	if err != nil {
		return fractal.Config{}, err
	}
	if !fixed {
		w, h = terminal.SizeOrFallback()
	}
	return cfg.Fractal(w, h)
}

func newState(cfg *config.Config) animation.State {
	s := time.Now().UnixNano()
	if cfg.Seed != nil {
		s = *cfg.Seed
	}
	log.Printf("animation seed %d", s)
	return animation.NewState(rand.New(rand.NewSource(s)))
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fc, err := frameConfig(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !fc.Animate {
		if err := fractal.RenderTo(out, &fc); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
	defer stop()

	driver := animation.NewDriver(&fc, terminal.NewScreen(out), newState(cfg))
	driver.MaxFrames = cfg.Frames
	if err := driver.Run(ctx); err != nil {
		return err
	}
	log.Printf("stopped after %d frames", driver.Frames())
	return nil
}
