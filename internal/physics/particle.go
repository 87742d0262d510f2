package physics

// Particle is one simulated body. ID is a stable identity assigned by the
// owning simulation; force computation excludes particles strictly by ID,
// never by field equality.
type Particle struct {
	ID   uint64
	Kind Kind
	Mass float32

	Pos Vec3
	Vel Vec3
	Acc Vec3

	trail *Trail
}

// NewParticle builds a particle of the given kind at pos with zero velocity
// and acceleration. trailCap <= 0 disables the position history.
func NewParticle(id uint64, kind Kind, pos Vec3, trailCap int) Particle {
	return Particle{
		ID:    id,
		Kind:  kind,
		Mass:  kind.Mass(),
		Pos:   pos,
		trail: NewTrail(trailCap, pos),
	}
}

// RecordTrail appends the current position to the history, if one exists.
func (p *Particle) RecordTrail() {
	if p.trail != nil {
		p.trail.Record(p.Pos)
	}
}

// Trail returns the recorded positions oldest to newest, or nil when the
// history is disabled.
func (p *Particle) Trail() []Vec3 {
	if p.trail == nil {
		return nil
	}
	return p.trail.Positions()
}
