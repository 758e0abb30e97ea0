package main

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/asciibrot/internal/animation"
	"github.com/san-kum/asciibrot/internal/config"
	"github.com/san-kum/asciibrot/internal/fractal"
	"github.com/san-kum/asciibrot/internal/terminal"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithErr(t, args...)
	return out, err
}

func executeWithErr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStaticRender(t *testing.T) {
	out, err := execute(t, "-s", "10x5")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := strings.Join([]string{
		"  ..:@.   ",
		"..-0@@-+  ",
		"@+@@@@@@. ",
		"@+@@@@@@. ",
		"..-0@@-+  ",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("unexpected frame:\n%q\nwant\n%q", out, want)
	}
}

func TestStaticRenderFlags(t *testing.T) {
	out, err := execute(t, "-s", "6x3", "-c", "x", "-C", "", "-j", "-J", "10:0")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// c=10 escapes everywhere on the first step.
	want := "xxxxxx\nxxxxxx\nxxxxxx\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestAnimatedRender(t *testing.T) {
	out, err := execute(t, "-a", "-s", "10x5", "-d", "0", "--frames", "3", "--seed", "1")
	if err != nil {
		t.Fatalf("animate failed: %v", err)
	}

	if !strings.HasPrefix(out, terminal.CursorHide) {
		t.Error("expected the cursor to be hidden first")
	}
	if !strings.HasSuffix(out, terminal.CursorShow+"\n") {
		t.Error("expected the cursor to be restored last")
	}
	if n := strings.Count(out, terminal.CursorHome); n != 3 {
		t.Errorf("expected 3 frames, got %d", n)
	}
}

func TestAnimationIsSeeded(t *testing.T) {
	args := []string{"-a", "-s", "12x6", "-d", "0", "--frames", "4", "--seed", "42"}
	first, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same seed produced different animations")
	}
}

func TestUnknownFlagPrintsUsage(t *testing.T) {
	out, errOut, err := executeWithErr(t, "--bogus")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(out+errOut, "Usage:") {
		t.Errorf("expected usage for an unknown flag, got:\n%s%s", out, errOut)
	}
}

func TestSeedZeroIsHonored(t *testing.T) {
	out, err := execute(t, "config", "--seed", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "seed: 0") {
		t.Errorf("expected seed 0 in the resolved config:\n%s", out)
	}

	zero := int64(0)
	cfg := config.DefaultConfig()
	cfg.Seed = &zero
	if newState(cfg) != animation.NewState(rand.New(rand.NewSource(0))) {
		t.Error("seed 0 did not produce the seed 0 trajectory")
	}
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"position without delimiter", []string{"-p", "0.5"}, config.ErrMalformedPair},
		{"julia param not numeric", []string{"-J", "a:b"}, config.ErrMalformedPair},
		{"size without delimiter", []string{"-s", "80"}, config.ErrMalformedSize},
		{"empty viewport", []string{"-s", "0x5"}, fractal.ErrViewport},
		{"nan zoom", []string{"-s", "10x5", "-z", "nan"}, fractal.ErrZoom},
		{"zero iterations", []string{"-s", "10x5", "-i", "0"}, fractal.ErrIterations},
		{"nan delay", []string{"-s", "10x5", "-d", "nan"}, fractal.ErrFrameDelay},
		{"stats with bad position", []string{"stats", "-p", "1"}, config.ErrMalformedPair},
		{"config with bad size", []string{"config", "-s", "x"}, config.ErrMalformedSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := executeWithErr(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
			if strings.Contains(out+errOut, "Usage:") {
				t.Errorf("usage printed for a value error:\n%s", errOut)
			}
			if !strings.Contains(errOut, "Error:") {
				t.Errorf("expected the error to be reported, got %q", errOut)
			}
		})
	}

	for _, args := range [][]string{
		{"-i", "0", "-s", "10x5"},
		{"-c", "", "-s", "10x5"},
		{"--preset", "nonexistent"},
		{"--bogus"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "view.yaml")
	if err := os.WriteFile(file, []byte("iterations: 99\npalette: \"ab\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	saved := filepath.Join(dir, "resolved.yaml")

	if _, err := execute(t, "config", saved, "--preset", "rabbit", "--config", file, "-i", "7", "-b"); err != nil {
		t.Fatalf("config failed: %v", err)
	}
	cfg, err := config.Load(saved)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Iterations != 7 {
		t.Errorf("flag should win over file: iterations %d", cfg.Iterations)
	}
	if cfg.Palette != "ab" {
		t.Errorf("file should win over defaults: palette %q", cfg.Palette)
	}
	if cfg.Evaluator != "julia" || cfg.Julia != (config.Pair{Re: -0.123, Im: 0.745}) {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if cfg.Bounce {
		t.Error("expected -b to disable bounce")
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("missing preset %s in:\n%s", name, out)
		}
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "-s", "10x5")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"mandelbrot 10x5", "cells 50", "palette buckets:"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	out, err = execute(t, "stats", "-s", "10x5", "-a", "--seed", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "julia radius per frame") {
		t.Errorf("expected a radius trace in:\n%s", out)
	}
}
