// Package audio sonifies the running simulation: an ambient pad whose
// filter opens with the particles' mean speed. Purely an output surface;
// the simulation never depends on it.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// historyLen speed samples (~4s at 60 updates/s) feed the FFT that
	// picks the modulation rate.
	historyLen = 256
)

type Processor struct {
	Stream *portaudio.Stream

	mu          sync.Mutex
	speed       float64
	speedSmooth float64
	history     []float64
	modRate     float64

	// Synthesis state
	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int

	Active bool
}

func NewProcessor() *Processor {
	delayLen := int(float64(SampleRate) * 0.6)
	return &Processor{
		history:   make([]float64, 0, historyLen),
		modRate:   0.2,
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

// Start opens the default output stream. Failure leaves the processor
// inactive; the caller keeps running silently.
func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.processAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// SetSpeed feeds the latest mean particle speed, once per frame. When
// enough history has accumulated, its dominant oscillation picks the pad's
// modulation rate.
func (a *Processor) SetSpeed(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.speed = v
	a.history = append(a.history, v)
	if len(a.history) < historyLen {
		return
	}

	a.modRate = dominantRate(a.history)
	a.history = a.history[:0]
}

// dominantRate runs an FFT over the speed history and maps the strongest
// non-DC bin into a slow LFO range.
func dominantRate(samples []float64) float64 {
	spectrum := fft.FFTReal(samples)

	best, bestMag := 1, 0.0
	for i := 1; i < len(spectrum)/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}

	// Bin index over a ~4s window gives cycles per window; clamp to a
	// breathing-room LFO band.
	rate := float64(best) / 4.0
	if rate < 0.05 {
		rate = 0.05
	}
	if rate > 2.0 {
		rate = 2.0
	}
	return rate
}

// Triangle wave: smooth, no harsh buzz.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One-pole low pass.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (a *Processor) processAudio(in []float32, out [][]float32) {
	// Gm7 add9 pad
	freqs := []float64{98.00, 116.54, 146.83, 174.61, 220.00}

	a.mu.Lock()
	targetSpeed := a.speed
	modRate := a.modRate
	a.mu.Unlock()

	// Slow morph so particle bursts swell rather than click.
	a.speedSmooth = a.speedSmooth*0.995 + targetSpeed*0.005

	// Speed opens the filter: 300Hz base up to 1200Hz.
	cutoff := 300.0 + math.Min(a.speedSmooth*200.0, 900.0)
	dt := 1.0 / float64(SampleRate)
	vol := 0.25

	for i := 0; i < len(out[0]); i++ {
		sampleL := 0.0
		sampleR := 0.0

		for j, f := range freqs {
			oscL := triangle(a.time * (f * 0.999))
			oscR := triangle(a.time * (f * 1.001))

			g := 1.0 / float64(len(freqs))
			lfo := math.Sin(a.time*2*math.Pi*modRate + float64(j))

			sampleL += oscL * g * (0.7 + 0.3*lfo)
			sampleR += oscR * g * (0.7 + 0.3*lfo)
		}

		var outL, outR float64
		outL, a.filterState[0] = lpf(sampleL, cutoff, dt, a.filterState[0])
		outR, a.filterState[1] = lpf(sampleR, cutoff, dt, a.filterState[1])

		delayL := a.delayLine[0][a.delayHead]
		delayR := a.delayLine[1][a.delayHead]

		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		a.delayLine[0][a.delayHead] = mixL * 0.7
		a.delayLine[1][a.delayHead] = mixR * 0.7
		a.delayHead = (a.delayHead + 1) % len(a.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		a.time += dt
	}
}
