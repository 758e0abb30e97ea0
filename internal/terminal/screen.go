package terminal

import (
	"bufio"
	"io"
)

// Screen buffers output so each frame reaches the terminal in one flush.
type Screen struct {
	w *bufio.Writer
}

func NewScreen(w io.Writer) *Screen {
	return &Screen{w: bufio.NewWriterSize(w, 64*1024)}
}

func (s *Screen) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *Screen) WriteString(str string) (int, error) { return s.w.WriteString(str) }

func (s *Screen) HideCursor() { s.w.WriteString(CursorHide) }

// ShowCursor restores the cursor and moves to a fresh line below the frame.
func (s *Screen) ShowCursor() { s.w.WriteString(CursorShow + "\n") }

func (s *Screen) Home() { s.w.WriteString(CursorHome) }

func (s *Screen) Flush() error { return s.w.Flush() }
