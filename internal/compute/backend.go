package compute

// Backend computes per-particle accelerations under the simplified Coulomb
// law. pos holds n interleaved xyz triples; charge and mass hold n scalars;
// the result is n interleaved xyz triples. Entry i receives no contribution
// from itself.
type Backend interface {
	Name() string
	Available() bool
	CoulombAccel(pos, charge, mass []float32, k float32) []float32
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	cuda := NewCUDABackend()
	if cuda.Available() {
		return cuda
	}
	return NewCPUBackend()
}
