// Package viz provides a terminal live view of the simulation.
//
// The view runs on the Bubble Tea framework:
//
//   - [Model]: frame-ticked event loop, one simulation step per tick
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Camera]: software 3D projection onto the canvas plane
//
// # Key Bindings
//
//	1/2/3   - Spawn electron / proton / neutron
//	Arrows  - Rotate camera
//	+/-     - Zoom
//	Space   - Pause/Resume
//	G       - Toggle mean-speed graph
//	Q       - Quit
package viz
