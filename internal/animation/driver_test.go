package animation_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciibrot/internal/animation"
	"github.com/san-kum/asciibrot/internal/fractal"
	"github.com/san-kum/asciibrot/internal/terminal"
)

// recordingScreen keeps every flushed chunk separately so tests can check
// that frames are emitted whole.
type recordingScreen struct {
	pending bytes.Buffer
	flushed []string
	events  []string
	onFlush func(n int)
	failAt  int
}

func (s *recordingScreen) Write(p []byte) (int, error) { return s.pending.Write(p) }
func (s *recordingScreen) HideCursor()                 { s.events = append(s.events, "hide") }
func (s *recordingScreen) ShowCursor()                 { s.events = append(s.events, "show") }
func (s *recordingScreen) Home()                       { s.pending.WriteString(terminal.CursorHome) }

func (s *recordingScreen) Flush() error {
	if s.failAt > 0 && len(s.flushed)+1 == s.failAt {
		return errors.New("broken pipe")
	}
	if s.pending.Len() > 0 {
		s.flushed = append(s.flushed, s.pending.String())
		s.pending.Reset()
		s.events = append(s.events, "frame")
		if s.onFlush != nil {
			s.onFlush(len(s.flushed))
		}
	}
	return nil
}

func testConfig() *fractal.Config {
	cfg := fractal.DefaultConfig()
	cfg.Width, cfg.Height = 24, 8
	cfg.FrameDelay = 0
	return &cfg
}

var _ = Describe("Driver", func() {
	var (
		cfg    *fractal.Config
		screen *recordingScreen
		state  animation.State
	)

	BeforeEach(func() {
		cfg = testConfig()
		screen = &recordingScreen{}
		state = animation.NewState(rand.New(rand.NewSource(99)))
	})

	It("stops after MaxFrames and restores the cursor", func() {
		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = 5

		Expect(d.Run(context.Background())).To(Succeed())
		Expect(d.Frames()).To(Equal(5))
		Expect(screen.flushed).To(HaveLen(5))
		Expect(screen.events[0]).To(Equal("hide"))
		Expect(screen.events[len(screen.events)-1]).To(Equal("show"))
	})

	It("switches to the Julia evaluator", func() {
		cfg.Kind = fractal.Mandelbrot
		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = 1

		Expect(d.Run(context.Background())).To(Succeed())
		Expect(cfg.Kind).To(Equal(fractal.Julia))
	})

	It("emits each frame whole, prefixed with cursor home and without a trailing newline", func() {
		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = 3

		Expect(d.Run(context.Background())).To(Succeed())
		for _, chunk := range screen.flushed {
			Expect(chunk).To(HavePrefix(terminal.CursorHome))
			body := strings.TrimPrefix(chunk, terminal.CursorHome)
			Expect(strings.Split(body, "\n")).To(HaveLen(cfg.Height))
			Expect(body).NotTo(HaveSuffix("\n"))
		}
	})

	It("renders the frame for the parameters of that tick", func() {
		expected := state
		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = 2

		Expect(d.Run(context.Background())).To(Succeed())

		for i := 0; i < 2; i++ {
			want := cfg.Clone()
			want.Kind = fractal.Julia
			expected.Apply(&want)
			Expect(screen.flushed[i]).To(Equal(terminal.CursorHome + fractal.Render(&want)))
			expected.Advance()
		}
	})

	It("advances every accumulator once per frame", func() {
		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = 4
		Expect(d.Run(context.Background())).To(Succeed())

		want := state
		for i := 0; i < 4; i++ {
			want.Advance()
		}
		Expect(d.State()).To(Equal(want))
	})

	It("returns to its initial trajectory after a full period", func() {
		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = state.Radius.Period()
		Expect(d.Run(context.Background())).To(Succeed())

		Expect(d.State().Radius).To(Equal(state.Radius))
	})

	It("leaves the view alone when bounce is off", func() {
		cfg.Bounce = false
		cfg.Center = fractal.Point{Re: 0.1, Im: 0.2}
		cfg.Zoom = 0.5

		d := animation.NewDriver(cfg, screen, state)
		d.MaxFrames = 3
		Expect(d.Run(context.Background())).To(Succeed())

		Expect(cfg.Center).To(Equal(fractal.Point{Re: 0.1, Im: 0.2}))
		Expect(cfg.Zoom).To(Equal(0.5))
	})

	Context("when canceled", func() {
		It("finishes the frame in flight and stops cleanly", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			screen.onFlush = func(n int) {
				if n == 3 {
					cancel()
				}
			}

			d := animation.NewDriver(cfg, screen, state)
			Expect(d.Run(ctx)).To(Succeed())

			Expect(d.Frames()).To(Equal(3))
			Expect(screen.events).To(Equal([]string{"hide", "frame", "frame", "frame", "show"}))
		})

		It("interrupts a long frame delay", func() {
			cfg.FrameDelay = time.Hour
			ctx, cancel := context.WithCancel(context.Background())
			screen.onFlush = func(int) { cancel() }

			d := animation.NewDriver(cfg, screen, state)
			done := make(chan error, 1)
			go func() { done <- d.Run(ctx) }()

			Eventually(done).WithTimeout(2 * time.Second).Should(Receive(BeNil()))
			Expect(d.Frames()).To(Equal(1))
		})
	})

	It("reports output errors", func() {
		screen.failAt = 2
		d := animation.NewDriver(cfg, screen, state)

		err := d.Run(context.Background())
		Expect(err).To(MatchError(ContainSubstring("broken pipe")))
		Expect(screen.events[len(screen.events)-1]).To(Equal("show"))
	})

	It("rejects an invalid configuration before touching the screen", func() {
		cfg.Iterations = 0
		d := animation.NewDriver(cfg, screen, state)

		Expect(d.Run(context.Background())).To(MatchError(fractal.ErrIterations))
		Expect(screen.events).To(BeEmpty())
	})
})
