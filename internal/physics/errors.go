package physics

import "errors"

// ErrInsufficientParticles indicates a net-acceleration computation over a
// set containing no particle distinct from the subject. Callers get a
// checkable error rather than a panic on the empty reduction.
var ErrInsufficientParticles = errors.New("physics: insufficient particles (no distinct other particle)")
