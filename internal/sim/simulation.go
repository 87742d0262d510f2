package sim

import (
	"fmt"

	"github.com/san-kum/rutherford/internal/compute"
	"github.com/san-kum/rutherford/internal/physics"
)

// backendThreshold is the particle count at which the force pass is handed
// to the compute backend instead of the in-place loop.
const backendThreshold = 32

// Spawn describes one particle of the initial scene. A nil Pos requests a
// random position inside the spawn bounds.
type Spawn struct {
	Kind physics.Kind
	Pos  *physics.Vec3
}

// Simulation owns an ordered collection of particles. Order is stable for
// trail and debug purposes but carries no physical meaning.
type Simulation struct {
	cfg       Config
	src       Source
	particles []physics.Particle
	nextID    uint64
	ticks     uint64
}

// New builds a simulation from the initial scene using a source seeded from
// cfg.Seed.
func New(cfg Config, initial []Spawn) *Simulation {
	return NewWithSource(cfg, NewSource(cfg.Seed), initial)
}

// NewWithSource is New with an explicit random source, for deterministic
// replays and tests.
func NewWithSource(cfg Config, src Source, initial []Spawn) *Simulation {
	s := &Simulation{
		cfg: cfg,
		src: src,
	}
	for _, sp := range initial {
		s.Insert(sp.Kind, sp.Pos)
	}
	return s
}

// Insert appends one particle with zero velocity and acceleration. A nil
// pos draws a random position. The core never caps the particle count; the
// host rate-limits via discrete key events.
func (s *Simulation) Insert(kind physics.Kind, pos *physics.Vec3) physics.Particle {
	at := s.randomPosition()
	if pos != nil {
		at = *pos
	}

	s.nextID++
	p := physics.NewParticle(s.nextID, kind, at, s.trailCapacity())
	s.particles = append(s.particles, p)
	return p
}

func (s *Simulation) trailCapacity() int {
	if !s.cfg.TrailEnabled {
		return 0
	}
	if s.cfg.TrailCapacity > 0 {
		return s.cfg.TrailCapacity
	}
	return DefaultTrailCapacity
}

// randomPosition draws each coordinate independently from [lo, hi), with an
// exact 0 replaced by lo. The replacement slightly biases the distribution;
// it is a load-bearing quirk, do not remove it.
func (s *Simulation) randomPosition() physics.Vec3 {
	draw := func() float32 {
		v := s.src.GenRange(s.cfg.SpawnLo, s.cfg.SpawnHi)
		if v == 0 {
			return s.cfg.SpawnLo
		}
		return v
	}
	return physics.Vec3{X: draw(), Y: draw(), Z: draw()}
}

// Step advances every particle by one tick: net acceleration from the
// start-of-step snapshot, then vel += acc and pos += vel. A collection with
// fewer than two particles integrates with zero acceleration; that choice
// (rather than erroring) keeps the host loop's unconditional per-frame call
// total.
func (s *Simulation) Step() error {
	n := len(s.particles)

	switch {
	case n >= backendThreshold:
		s.accelerateBackend()
	case n >= 2:
		snapshot := make([]physics.Particle, n)
		copy(snapshot, s.particles)
		for i := range s.particles {
			p := &s.particles[i]
			acc, err := physics.NetAccel(*p, snapshot)
			if err != nil {
				return fmt.Errorf("sim: tick %d: %w", s.ticks, err)
			}
			p.Acc = acc
		}
	default:
		for i := range s.particles {
			s.particles[i].Acc = physics.Vec3{}
		}
	}

	for i := range s.particles {
		p := &s.particles[i]
		p.Vel = p.Vel.Add(p.Acc)
		p.Pos = p.Pos.Add(p.Vel)
		p.RecordTrail()
	}
	s.ticks++
	return nil
}

// accelerateBackend runs the force pass through the compute backend. The
// flattened buffers are themselves the start-of-step snapshot: they are
// fully read before any particle is written.
func (s *Simulation) accelerateBackend() {
	n := len(s.particles)
	pos := make([]float32, n*3)
	charge := make([]float32, n)
	mass := make([]float32, n)

	for i := range s.particles {
		p := &s.particles[i]
		pos[i*3], pos[i*3+1], pos[i*3+2] = p.Pos.X, p.Pos.Y, p.Pos.Z
		charge[i] = p.Kind.Charge()
		mass[i] = p.Mass
	}

	acc := compute.GetBackend().CoulombAccel(pos, charge, mass, physics.CoulombK)
	for i := range s.particles {
		s.particles[i].Acc = physics.Vec3{X: acc[i*3], Y: acc[i*3+1], Z: acc[i*3+2]}
	}
}

// Particles returns a copy of the collection in insertion order. Trail
// storage is shared with the simulation; use Particle.Trail for a stable
// copy of the history.
func (s *Simulation) Particles() []physics.Particle {
	out := make([]physics.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

func (s *Simulation) Len() int       { return len(s.particles) }
func (s *Simulation) Ticks() uint64  { return s.ticks }
func (s *Simulation) Config() Config { return s.cfg }

// MeanSpeed is the average velocity magnitude, the scalar the render layers
// graph and the sonification tracks. Zero for an empty collection.
func (s *Simulation) MeanSpeed() float32 {
	if len(s.particles) == 0 {
		return 0
	}
	var sum float32
	for i := range s.particles {
		sum += s.particles[i].Vel.Length()
	}
	return sum / float32(len(s.particles))
}

// KindCounts tallies particles per kind for the HUD.
func (s *Simulation) KindCounts() map[physics.Kind]int {
	counts := make(map[physics.Kind]int, 3)
	for i := range s.particles {
		counts[s.particles[i].Kind]++
	}
	return counts
}
