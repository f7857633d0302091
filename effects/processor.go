// SPDX-License-Identifier: EPL-2.0

package effects

// Processor transforms one interleaved stereo frame at a time. State
// persists across calls until Reset.
type Processor interface {
	Process(l, r float32) (float32, float32)
	Reset()
}

// Chain applies a sequence of processors in order.
type Chain struct {
	procs []Processor
}

// NewChain creates a chain running the given processors front to back.
func NewChain(procs ...Processor) *Chain {
	return &Chain{procs: procs}
}

// Process runs the frame through every processor in order.
func (c *Chain) Process(l, r float32) (float32, float32) {
	for _, p := range c.procs {
		l, r = p.Process(l, r)
	}
	return l, r
}

// Reset clears the state of every processor.
func (c *Chain) Reset() {
	for _, p := range c.procs {
		p.Reset()
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
