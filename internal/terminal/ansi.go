package terminal

// Control sequences written around animated output.
const (
	CursorHome = "\x1b[1;1H"
	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?12l\x1b[?25h" // blink off, then visible
)
