package terminal

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// Fallback viewport used when the terminal size cannot be read.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// ErrNotTerminal indicates the file descriptor is not attached to a terminal.
var ErrNotTerminal = errors.New("terminal: not a terminal")

// Size returns the current size of the terminal on fd.
func Size(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal: query size: %w", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("terminal: reported size %dx%d", width, height)
	}
	return width, height, nil
}

// SizeOrFallback returns the size of the terminal on stdout, or 80x24 when
// stdout is not a terminal.
func SizeOrFallback() (width, height int) {
	w, h, err := Size(int(os.Stdout.Fd()))
	if err != nil {
		log.Printf("using fallback size %dx%d: %v", FallbackWidth, FallbackHeight, err)
		return FallbackWidth, FallbackHeight
	}
	return w, h
}
