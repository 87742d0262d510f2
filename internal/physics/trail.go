package physics

// Trail is a fixed-capacity ring buffer of recent positions, used only for
// rendering. It holds value data and has no effect on the dynamics.
type Trail struct {
	buf  []Vec3
	head int
}

// NewTrail returns a trail of the given capacity with every slot pre-filled
// with fill, so a fresh particle's history collapses to its spawn point.
func NewTrail(capacity int, fill Vec3) *Trail {
	if capacity <= 0 {
		return nil
	}
	buf := make([]Vec3, capacity)
	for i := range buf {
		buf[i] = fill
	}
	return &Trail{buf: buf}
}

// Record overwrites the oldest entry with p.
func (t *Trail) Record(p Vec3) {
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

func (t *Trail) Cap() int { return len(t.buf) }

// Positions returns the history ordered oldest to newest.
func (t *Trail) Positions() []Vec3 {
	out := make([]Vec3, len(t.buf))
	for i := range t.buf {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}
