// Package viz is the terminal front end of the binary search visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the application state and its single update function
//   - [Canvas]: colored cell grid the bar chart is rasterized onto
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Enter   - Start search (or submit the focused field)
//	Space   - Play/Pause, Reset once finished
//	←/→     - Step back/forward (adjust size on the size field)
//	R       - Randomize the list
//	+/-     - Faster/slower playback
//	T       - Cycle color themes
//	M       - Mute audio cues
//	Tab     - Move focus between the size, list and target fields
//	?       - Show full help
package viz
