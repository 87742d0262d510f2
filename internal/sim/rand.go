package sim

import (
	"math/rand"
	"time"
)

// Source yields uniform draws from the half-open interval [lo, hi). The
// host may supply its own implementation; tests use fixed sequences.
type Source interface {
	GenRange(lo, hi float32) float32
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a seeded uniform source. A zero seed picks the current
// time, matching unseeded behavior.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) GenRange(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}
