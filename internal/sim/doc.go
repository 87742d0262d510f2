// Package sim owns the particle collection and advances it one discrete
// tick at a time.
//
// A tick reads a snapshot of the whole collection taken at the start of the
// step, computes every particle's net acceleration from that snapshot, then
// commits velocity and position updates. Results therefore never depend on
// iteration order, and N calls to Step always advance exactly N ticks. The
// timestep is implicitly 1; frame time never scales the physics.
//
// The package is not safe for concurrent use: the host render loop is the
// sole caller, one Step per frame.
package sim
