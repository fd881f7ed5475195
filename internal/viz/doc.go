// Package viz projects ribbon frames onto a screen.
//
// The package provides:
//
//   - [Camera]: orbit camera with polar angle phi, azimuth theta and a
//     perspective focal distance
//   - [ProjectFrame]: depth-sorted screen segments shared by every backend
//   - [Canvas]: Braille-based pixel canvas for terminal rendering
//   - [LiveModel]: Bubble Tea program that plays the scene in the terminal
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from t=0
//	T     - Cycle color themes
//	+/-   - Zoom in/out
//	Q     - Quit
package viz
