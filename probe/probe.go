// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package probe measures the signal strength of the CRT clock circuit.
package probe

// PERIODIC_OFFSET and PERIODIC_PERIOD select cycles 20, 60, 100, ...
const (
	PERIODIC_OFFSET = 20
	PERIODIC_PERIOD = 40
)

// Sampler decides which cycles contribute to the checksum.
type Sampler interface {
	Sample(cycle int, x int) (ok bool, err error)
}

// Periodic samples when (cycle + Offset) % Period == 0.
type Periodic struct {
	Offset int
	Period int
}

// Sample implements Sampler.
func (p Periodic) Sample(cycle int, x int) (ok bool, err error) {
	if p.Period <= 0 {
		err = ErrPeriod
		return
	}

	ok = (cycle+p.Offset)%p.Period == 0
	return
}

// Checksum sums cycle * x over the sampled cycles.
type Checksum struct {
	Sampler Sampler // If nil, the default Periodic sampler is used.

	Sum     int // Running checksum.
	Samples int // Number of cycles that contributed to Sum.
}

// NewChecksum creates a checksum using the default periodic sampler.
func NewChecksum() *Checksum {
	return &Checksum{
		Sampler: Periodic{Offset: PERIODIC_OFFSET, Period: PERIODIC_PERIOD},
	}
}

// Reset the accumulated checksum.
func (cs *Checksum) Reset() {
	cs.Sum = 0
	cs.Samples = 0
}

// Observe implements cpu.Observer.
func (cs *Checksum) Observe(cycle int, x int) (err error) {
	sampler := cs.Sampler
	if sampler == nil {
		sampler = Periodic{Offset: PERIODIC_OFFSET, Period: PERIODIC_PERIOD}
	}

	ok, err := sampler.Sample(cycle, x)
	if err != nil || !ok {
		return
	}

	cs.Sum += cycle * x
	cs.Samples++

	return
}
