// Package analysis summarizes rendered frames and animation trajectories.
//
//   - [Analyze]: escape-step histogram, palette bucket counts and interior
//     coverage of one frame
//   - [RadiusTrace]: Julia radius over the frames of an animation period
//
// Both results can be drawn with [PlotSteps] and [PlotTrace], which use
// asciigraph line charts.
package analysis
