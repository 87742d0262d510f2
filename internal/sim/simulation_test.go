package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rutherford/internal/physics"
	"github.com/san-kum/rutherford/internal/sim"
)

// zeroSource always draws an exact 0, the edge the spawn bias rule handles.
type zeroSource struct{}

func (zeroSource) GenRange(lo, hi float32) float32 { return 0 }

func vecPtr(x, y, z float32) *physics.Vec3 {
	return &physics.Vec3{X: x, Y: y, Z: z}
}

var _ = Describe("Simulation", func() {
	Describe("Insert", func() {
		It("grows the collection by exactly one with zeroed kinematics", func() {
			s := sim.New(sim.DefaultConfig(), nil)

			before := s.Len()
			p := s.Insert(physics.Electron, nil)

			Expect(s.Len()).To(Equal(before + 1))
			Expect(p.Vel).To(Equal(physics.Vec3{}))
			Expect(p.Acc).To(Equal(physics.Vec3{}))
			Expect(p.Mass).To(Equal(physics.ElectronMass))
		})

		It("draws random positions inside the spawn bounds", func() {
			cfg := sim.DefaultConfig()
			cfg.Seed = 11
			s := sim.New(cfg, nil)

			for i := 0; i < 50; i++ {
				p := s.Insert(physics.Neutron, nil)
				for _, c := range []float32{p.Pos.X, p.Pos.Y, p.Pos.Z} {
					Expect(c).To(And(
						BeNumerically(">=", cfg.SpawnLo),
						BeNumerically("<", cfg.SpawnHi),
					))
				}
			}
		})

		It("replaces an exact zero draw with the lower bound", func() {
			cfg := sim.DefaultConfig()
			s := sim.NewWithSource(cfg, zeroSource{}, nil)

			p := s.Insert(physics.Proton, nil)
			Expect(p.Pos).To(Equal(physics.Vec3{X: cfg.SpawnLo, Y: cfg.SpawnLo, Z: cfg.SpawnLo}))
		})

		It("respects explicit positions", func() {
			s := sim.New(sim.DefaultConfig(), nil)
			p := s.Insert(physics.Proton, vecPtr(1, 2, 3))
			Expect(p.Pos).To(Equal(physics.Vec3{X: 1, Y: 2, Z: 3}))
		})

		It("assigns distinct identities to field-identical particles", func() {
			s := sim.New(sim.DefaultConfig(), nil)
			a := s.Insert(physics.Proton, vecPtr(1, 1, 1))
			b := s.Insert(physics.Proton, vecPtr(1, 1, 1))
			Expect(a.ID).NotTo(Equal(b.ID))

			// Distinct identity means neither sees an empty other-set.
			Expect(s.Step()).To(Succeed())
		})
	})

	Describe("Step", func() {
		It("advances the classic electron/proton scene along x only", func() {
			s := sim.New(sim.DefaultConfig(), []sim.Spawn{
				{Kind: physics.Electron, Pos: vecPtr(200, 0, 0)},
				{Kind: physics.Proton, Pos: vecPtr(100, 0, 0)},
			})

			Expect(s.Step()).To(Succeed())

			// Same expression, same float32 evaluation order as the kernel.
			wantE := physics.CoulombK * physics.Electron.Charge() * physics.Proton.Charge() / (100 * physics.ElectronMass)

			electron := s.Particles()[0]
			Expect(electron.Vel).To(Equal(physics.Vec3{X: wantE}))
			Expect(electron.Pos).To(Equal(physics.Vec3{X: 200 + wantE}))
			Expect(electron.Pos.Y).To(Equal(float32(0)))
			Expect(electron.Pos.Z).To(Equal(float32(0)))
		})

		It("computes every acceleration from the start-of-step snapshot", func() {
			s := sim.New(sim.DefaultConfig(), []sim.Spawn{
				{Kind: physics.Electron, Pos: vecPtr(200, 0, 0)},
				{Kind: physics.Proton, Pos: vecPtr(100, 0, 0)},
			})

			Expect(s.Step()).To(Succeed())

			// The proton is processed after the electron has moved; its
			// acceleration must still reflect the pre-step separation of
			// exactly 100.
			wantP := physics.CoulombK * physics.Proton.Charge() * physics.Electron.Charge() / (100 * physics.NucleonMass)
			Expect(s.Particles()[1].Acc).To(Equal(physics.Vec3{X: wantP}))
		})

		It("leaves a neutron-only system at rest indefinitely", func() {
			spawns := []sim.Spawn{
				{Kind: physics.Neutron, Pos: vecPtr(0, 0, 0)},
				{Kind: physics.Neutron, Pos: vecPtr(5, -3, 1)},
				{Kind: physics.Neutron, Pos: vecPtr(-7, 2, 9)},
			}
			s := sim.New(sim.DefaultConfig(), spawns)

			for i := 0; i < 25; i++ {
				Expect(s.Step()).To(Succeed())
			}

			for i, p := range s.Particles() {
				Expect(p.Pos).To(Equal(*spawns[i].Pos), "neutron %d drifted", i)
				Expect(p.Vel).To(Equal(physics.Vec3{}))
			}
		})

		It("integrates a lone particle with zero acceleration", func() {
			s := sim.New(sim.DefaultConfig(), []sim.Spawn{
				{Kind: physics.Electron, Pos: vecPtr(4, 4, 4)},
			})

			Expect(s.Step()).To(Succeed())
			Expect(s.Ticks()).To(Equal(uint64(1)))

			p := s.Particles()[0]
			Expect(p.Pos).To(Equal(physics.Vec3{X: 4, Y: 4, Z: 4}))
			Expect(p.Acc).To(Equal(physics.Vec3{}))
		})

		It("is a no-op on an empty collection", func() {
			s := sim.New(sim.DefaultConfig(), nil)
			Expect(s.Step()).To(Succeed())
			Expect(s.Ticks()).To(Equal(uint64(1)))
		})

		It("hands large collections to the compute backend without diverging", func() {
			cfg := sim.DefaultConfig()
			s := sim.NewWithSource(cfg, sim.NewSource(3), nil)
			for i := 0; i < 40; i++ {
				kind := physics.Kind(i % 3)
				s.Insert(kind, nil)
			}

			for i := 0; i < 5; i++ {
				Expect(s.Step()).To(Succeed())
			}
			Expect(s.Len()).To(Equal(40))
		})
	})

	Describe("determinism", func() {
		run := func() []physics.Vec3 {
			cfg := sim.DefaultConfig()
			s := sim.NewWithSource(cfg, sim.NewSource(99), []sim.Spawn{
				{Kind: physics.Proton, Pos: vecPtr(0, 0, 0)},
				{Kind: physics.Electron, Pos: nil},
			})
			for i := 0; i < 30; i++ {
				if i == 10 {
					s.Insert(physics.Electron, nil)
				}
				if i == 20 {
					s.Insert(physics.Neutron, nil)
				}
				Expect(s.Step()).To(Succeed())
			}
			out := make([]physics.Vec3, 0, s.Len())
			for _, p := range s.Particles() {
				out = append(out, p.Pos)
			}
			return out
		}

		It("reproduces identical trajectories for identical seeds and calls", func() {
			Expect(run()).To(Equal(run()))
		})
	})

	Describe("trails", func() {
		It("records positions into a bounded ring when enabled", func() {
			cfg := sim.DefaultConfig()
			cfg.TrailEnabled = true
			cfg.TrailCapacity = 3

			s := sim.New(cfg, []sim.Spawn{
				{Kind: physics.Electron, Pos: vecPtr(200, 0, 0)},
				{Kind: physics.Proton, Pos: vecPtr(100, 0, 0)},
			})

			for i := 0; i < 5; i++ {
				Expect(s.Step()).To(Succeed())
			}

			p := s.Particles()[0]
			trail := p.Trail()
			Expect(trail).To(HaveLen(3))
			Expect(trail[2]).To(Equal(p.Pos), "newest entry is the current position")
		})

		It("keeps trails disabled by default", func() {
			s := sim.New(sim.DefaultConfig(), []sim.Spawn{
				{Kind: physics.Neutron, Pos: vecPtr(0, 0, 0)},
			})
			Expect(s.Step()).To(Succeed())
			Expect(s.Particles()[0].Trail()).To(BeNil())
		})
	})

	Describe("telemetry", func() {
		It("reports zero mean speed for an empty or static system", func() {
			s := sim.New(sim.DefaultConfig(), nil)
			Expect(s.MeanSpeed()).To(Equal(float32(0)))

			s.Insert(physics.Neutron, vecPtr(0, 0, 0))
			Expect(s.Step()).To(Succeed())
			Expect(s.MeanSpeed()).To(Equal(float32(0)))
		})

		It("counts particles per kind", func() {
			s := sim.New(sim.DefaultConfig(), nil)
			s.Insert(physics.Electron, nil)
			s.Insert(physics.Electron, nil)
			s.Insert(physics.Proton, nil)

			counts := s.KindCounts()
			Expect(counts[physics.Electron]).To(Equal(2))
			Expect(counts[physics.Proton]).To(Equal(1))
			Expect(counts[physics.Neutron]).To(Equal(0))
		})
	})
})
