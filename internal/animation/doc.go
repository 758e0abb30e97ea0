// Package animation drives the real-time fractal animation.
//
// A [State] holds four wrapping integer accumulators that describe a
// periodic trajectory for the Julia parameter and, optionally, the view
// center and zoom. A [Driver] applies the state to a fractal configuration,
// renders and emits a frame, advances the accumulators and sleeps, until its
// context is canceled.
//
// # Cancellation
//
// The context is only consulted while the driver sleeps between frames, so
// a frame is always written and flushed completely before Run returns.
package animation
