package animation

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/san-kum/asciibrot/internal/fractal"
)

// Screen is the output sink for animated frames. Writes may be buffered;
// Flush must deliver everything written so far.
type Screen interface {
	io.Writer
	HideCursor()
	ShowCursor()
	Home()
	Flush() error
}

// Driver renders frames from a State until canceled.
type Driver struct {
	cfg    *fractal.Config
	screen Screen
	state  State
	frames int

	// MaxFrames stops the animation after that many frames. Zero runs until
	// the context is canceled.
	MaxFrames int
}

// NewDriver returns a driver that owns cfg for the duration of Run.
func NewDriver(cfg *fractal.Config, screen Screen, state State) *Driver {
	return &Driver{
		cfg:    cfg,
		screen: screen,
		state:  state,
	}
}

// State returns the current trajectory state.
func (d *Driver) State() State { return d.state }

// Frames returns the number of frames emitted so far.
func (d *Driver) Frames() int { return d.frames }

// Run animates until ctx is canceled or MaxFrames is reached. Cancellation is
// observed only between frames; the cursor is restored after the last frame
// has been flushed. A canceled context is a clean stop and returns nil.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.cfg.Validate(); err != nil {
		return err
	}
	d.cfg.Kind = fractal.Julia

	d.screen.HideCursor()
	defer func() {
		d.screen.ShowCursor()
		if err := d.screen.Flush(); err != nil {
			log.Printf("restore cursor: %v", err)
		}
	}()

	log.Printf("animation start: radius=%+v rotation=%+v shape=%+v bounce=%v",
		d.state.Radius, d.state.Rotation, d.state.Shape, d.cfg.Bounce)

	for {
		if err := d.Step(); err != nil {
			return err
		}

		if d.MaxFrames > 0 && d.frames >= d.MaxFrames {
			log.Printf("animation done after %d frames", d.frames)
			return nil
		}

		sleepContext(ctx, d.cfg.FrameDelay)
		if ctx.Err() != nil {
			log.Printf("animation canceled after %d frames", d.frames)
			return nil
		}
	}
}

// Step computes, renders and flushes one frame, then advances the state.
func (d *Driver) Step() error {
	d.state.Apply(d.cfg)

	d.screen.Home()
	if _, err := io.WriteString(d.screen, fractal.Render(d.cfg)); err != nil {
		return fmt.Errorf("write frame %d: %w", d.frames, err)
	}
	if err := d.screen.Flush(); err != nil {
		return fmt.Errorf("flush frame %d: %w", d.frames, err)
	}
	d.frames++

	d.state.Advance()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
