//go:build !cuda

package compute

type CUDABackend struct{}

func NewCUDABackend() *CUDABackend {
	return &CUDABackend{}
}

func (c *CUDABackend) Name() string    { return "cuda (not available)" }
func (c *CUDABackend) Available() bool { return false }
func (c *CUDABackend) Cleanup()        {}

func (c *CUDABackend) CoulombAccel(pos, charge, mass []float32, k float32) []float32 {
	cpu := NewCPUBackend()
	return cpu.CoulombAccel(pos, charge, mass, k)
}
