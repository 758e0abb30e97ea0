// Package terminal holds the thin terminal plumbing used by the renderer:
// viewport size detection, cursor control sequences and a buffered frame
// sink.
package terminal
