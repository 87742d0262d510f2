package physics

// axisAccel is the per-axis force kernel. Coincident coordinates contribute
// nothing; otherwise the separation enters unsigned, so the sign of the
// result is the sign of the charge product alone. Evaluation is strictly
// left to right in float32; reordering changes low bits.
func axisAccel(q1, q2, mass, self, other float32) float32 {
	d := other - self
	if d < 0 {
		d = -d
	}
	if d == 0 {
		return 0
	}
	return CoulombK * q1 * q2 / (d * mass)
}

// PairwiseAccel returns the acceleration contribution on self from a single
// other particle, computed independently per axis.
func PairwiseAccel(self, other Particle) Vec3 {
	q1 := self.Kind.Charge()
	q2 := other.Kind.Charge()
	return Vec3{
		X: axisAccel(q1, q2, self.Mass, self.Pos.X, other.Pos.X),
		Y: axisAccel(q1, q2, self.Mass, self.Pos.Y, other.Pos.Y),
		Z: axisAccel(q1, q2, self.Mass, self.Pos.Z, other.Pos.Z),
	}
}

// NetAccel sums the pairwise contributions on self from every particle in
// others with a different ID. Summation follows slice order so results are
// reproducible across runs and backends. Returns ErrInsufficientParticles
// when others holds no distinct particle.
func NetAccel(self Particle, others []Particle) (Vec3, error) {
	var acc Vec3
	n := 0
	for i := range others {
		if others[i].ID == self.ID {
			continue
		}
		acc = acc.Add(PairwiseAccel(self, others[i]))
		n++
	}
	if n == 0 {
		return Vec3{}, ErrInsufficientParticles
	}
	return acc, nil
}
