//go:build cuda

package compute

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lkernels -lstdc++
#include <stdlib.h>

extern int cuda_device_count();
extern const char* cuda_device_name_get();
extern void coulomb_gpu(float* positions, float* charges, float* masses, float* accels, int n, float k);
*/
import "C"
import "unsafe"

type CUDABackend struct {
	available  bool
	deviceName string
}

func NewCUDABackend() *CUDABackend {
	count := int(C.cuda_device_count())
	name := ""
	if count > 0 {
		name = C.GoString(C.cuda_device_name_get())
	}
	return &CUDABackend{
		available:  count > 0,
		deviceName: name,
	}
}

func (c *CUDABackend) Name() string {
	if c.available {
		return "cuda (" + c.deviceName + ")"
	}
	return "cuda (not available)"
}

func (c *CUDABackend) Available() bool { return c.available }
func (c *CUDABackend) Cleanup()        {}

func (c *CUDABackend) CoulombAccel(pos, charge, mass []float32, k float32) []float32 {
	if !c.available {
		cpu := NewCPUBackend()
		return cpu.CoulombAccel(pos, charge, mass, k)
	}

	n := len(charge)
	acc := make([]float32, n*3)
	if n == 0 {
		return acc
	}

	C.coulomb_gpu(
		(*C.float)(unsafe.Pointer(&pos[0])),
		(*C.float)(unsafe.Pointer(&charge[0])),
		(*C.float)(unsafe.Pointer(&mass[0])),
		(*C.float)(unsafe.Pointer(&acc[0])),
		C.int(n),
		C.float(k),
	)

	return acc
}
