package compute

import (
	"math/rand"
	"testing"

	"github.com/san-kum/rutherford/internal/physics"
)

// buildSet makes n particles with deterministic mixed kinds and positions,
// returning both the physics representation and the flattened buffers.
func buildSet(n int) ([]physics.Particle, []float32, []float32, []float32) {
	rng := rand.New(rand.NewSource(7))
	kinds := []physics.Kind{physics.Electron, physics.Proton, physics.Neutron}

	particles := make([]physics.Particle, n)
	pos := make([]float32, n*3)
	charge := make([]float32, n)
	mass := make([]float32, n)

	for i := 0; i < n; i++ {
		kind := kinds[i%len(kinds)]
		p := physics.Vec3{
			X: rng.Float32()*200 - 100,
			Y: rng.Float32()*200 - 100,
			Z: rng.Float32()*200 - 100,
		}
		particles[i] = physics.NewParticle(uint64(i+1), kind, p, 0)
		pos[i*3], pos[i*3+1], pos[i*3+2] = p.X, p.Y, p.Z
		charge[i] = kind.Charge()
		mass[i] = kind.Mass()
	}
	return particles, pos, charge, mass
}

func checkAgainstReference(t *testing.T, n int) {
	t.Helper()

	particles, pos, charge, mass := buildSet(n)
	cpu := NewCPUBackend()
	acc := cpu.CoulombAccel(pos, charge, mass, physics.CoulombK)

	for i := range particles {
		want, err := physics.NetAccel(particles[i], particles)
		if err != nil {
			t.Fatalf("reference NetAccel: %v", err)
		}
		got := physics.Vec3{X: acc[i*3], Y: acc[i*3+1], Z: acc[i*3+2]}
		if got != want {
			t.Fatalf("particle %d: backend %+v != reference %+v", i, got, want)
		}
	}
}

func TestCPUBackendMatchesReferenceSerial(t *testing.T) {
	checkAgainstReference(t, 8) // below the parallel cutover
}

func TestCPUBackendMatchesReferenceParallel(t *testing.T) {
	checkAgainstReference(t, 48) // forces the worker-partitioned path
}

func TestCPUBackendSingleParticle(t *testing.T) {
	cpu := NewCPUBackend()
	acc := cpu.CoulombAccel([]float32{1, 2, 3}, []float32{physics.ElementaryCharge}, []float32{physics.NucleonMass}, physics.CoulombK)
	if len(acc) != 3 || acc[0] != 0 || acc[1] != 0 || acc[2] != 0 {
		t.Errorf("lone particle should see zero acceleration, got %v", acc)
	}
}

func TestAutoSelectBackend(t *testing.T) {
	b := AutoSelectBackend()
	if !b.Available() {
		t.Fatal("auto-selected backend must be available")
	}
}
