// Package viz renders finished rocket runs.
//
//   - [SaveFigure]: three side by side panels (position, velocity and
//     acceleration against time) written to PNG, SVG, PDF and the other
//     formats gonum/plot supports
//   - [RenderASCII]: the same curves as terminal line charts
//   - [Viewer]: an interactive Bubble Tea program over one run
//   - [Summary]: a styled block of the run's headline figures
//
// # Key Bindings
//
//	Tab/→  - Next panel
//	←      - Previous panel
//	1-3    - Jump to panel
//	T      - Cycle color themes
//	Q      - Quit
package viz
