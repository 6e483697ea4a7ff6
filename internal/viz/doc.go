// Package viz renders points and transform traces for the terminal.
//
//   - [RenderViews]: the Cartesian, cylindrical and spherical views of a point
//   - [RenderTrace]: a step-by-step table of a pipeline run
//   - [PlotComponents]: x, y and z against step index, drawn with asciigraph
//   - [Scene]: an orthographic 3D view of a trace on a Braille [Canvas]
//
// Styles are lipgloss styles shared with the interactive view.
package viz
