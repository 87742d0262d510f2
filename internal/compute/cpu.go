package compute

import (
	"runtime"
	"sync"
)

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) CoulombAccel(pos, charge, mass []float32, k float32) []float32 {
	n := len(charge)
	acc := make([]float32, n*3)

	if n < 16 {
		c.coulombRange(pos, charge, mass, k, acc, 0, n)
		return acc
	}

	c.coulombParallel(pos, charge, mass, k, acc)
	return acc
}

// coulombRange accumulates accelerations for particles [start, end).
// j ascends for every i, matching the serial reference order so results are
// identical regardless of how the i range is partitioned.
func (c *CPUBackend) coulombRange(pos, charge, mass []float32, k float32, acc []float32, start, end int) {
	n := len(charge)

	for i := start; i < end; i++ {
		xi, yi, zi := pos[i*3], pos[i*3+1], pos[i*3+2]
		mi := mass[i]
		kq := k * charge[i]

		var ax, ay, az float32
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			num := kq * charge[j]
			ax += axisTerm(num, mi, xi, pos[j*3])
			ay += axisTerm(num, mi, yi, pos[j*3+1])
			az += axisTerm(num, mi, zi, pos[j*3+2])
		}

		acc[i*3] = ax
		acc[i*3+1] = ay
		acc[i*3+2] = az
	}
}

func axisTerm(num, mass, self, other float32) float32 {
	d := other - self
	if d < 0 {
		d = -d
	}
	if d == 0 {
		return 0
	}
	return num / (d * mass)
}

func (c *CPUBackend) coulombParallel(pos, charge, mass []float32, k float32, acc []float32) {
	n := len(charge)
	chunkSize := (n + c.workers - 1) / c.workers

	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			c.coulombRange(pos, charge, mass, k, acc, start, end)
		}(start, end)
	}
	wg.Wait()
}
