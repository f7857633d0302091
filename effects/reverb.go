// SPDX-License-Identifier: EPL-2.0

package effects

import "math"

const (
	reverbNumCombs     = 8
	reverbNumAllpasses = 4

	reverbFixedGain = 0.015

	// Classic Freeverb tunings, calibrated for 44.1 kHz. The right
	// channel runs the same network offset by the stereo spread.
	reverbStereoSpread = 23

	reverbCombTuning1 = 1116
	reverbCombTuning2 = 1188
	reverbCombTuning3 = 1277
	reverbCombTuning4 = 1356
	reverbCombTuning5 = 1422
	reverbCombTuning6 = 1491
	reverbCombTuning7 = 1557
	reverbCombTuning8 = 1617

	reverbAllpassTuning1 = 556
	reverbAllpassTuning2 = 441
	reverbAllpassTuning3 = 341
	reverbAllpassTuning4 = 225
)

// DefaultRoomSize and DefaultDamp are the fixed reverb constants of the
// standard loopmix chain; the knob only moves the wet mix.
const (
	DefaultRoomSize = 0.7
	DefaultDamp     = 0.5
)

type reverbAllpass struct {
	feedback float64
	buffer   []float64
	index    int
}

func newReverbAllpass(size int) reverbAllpass {
	return reverbAllpass{
		feedback: 0.5,
		buffer:   make([]float64, size),
	}
}

func (a *reverbAllpass) process(input float64) float64 {
	bufOut := a.buffer[a.index]
	output := bufOut - input
	a.buffer[a.index] = input + bufOut*a.feedback
	a.index++
	if a.index >= len(a.buffer) {
		a.index = 0
	}
	return output
}

func (a *reverbAllpass) reset() {
	for i := range a.buffer {
		a.buffer[i] = 0
	}
	a.index = 0
}

type reverbComb struct {
	feedback    float64
	filterStore float64
	dampA       float64
	dampB       float64
	buffer      []float64
	index       int
}

func newReverbComb(size, spread int, roomSize, damp float64) reverbComb {
	c := reverbComb{
		feedback: roomSize,
		buffer:   make([]float64, size+spread),
	}
	c.dampA = damp
	c.dampB = 1 - damp
	return c
}

func (c *reverbComb) process(input float64) float64 {
	output := c.buffer[c.index]
	c.filterStore = output*c.dampB + c.filterStore*c.dampA
	if math.Abs(c.filterStore) < 1e-23 {
		c.filterStore = 0
	}
	c.buffer[c.index] = input + c.filterStore*c.feedback
	c.index++
	if c.index >= len(c.buffer) {
		c.index = 0
	}
	return output
}

func (c *reverbComb) reset() {
	for i := range c.buffer {
		c.buffer[i] = 0
	}
	c.index = 0
	c.filterStore = 0
}

// reverbUnit is one mono Freeverb network; Reverb runs two, offset by the
// stereo spread.
type reverbUnit struct {
	combs   [reverbNumCombs]reverbComb
	allpass [reverbNumAllpasses]reverbAllpass
}

func newReverbUnit(spread int, roomSize, damp float64) reverbUnit {
	return reverbUnit{
		combs: [reverbNumCombs]reverbComb{
			newReverbComb(reverbCombTuning1, spread, roomSize, damp),
			newReverbComb(reverbCombTuning2, spread, roomSize, damp),
			newReverbComb(reverbCombTuning3, spread, roomSize, damp),
			newReverbComb(reverbCombTuning4, spread, roomSize, damp),
			newReverbComb(reverbCombTuning5, spread, roomSize, damp),
			newReverbComb(reverbCombTuning6, spread, roomSize, damp),
			newReverbComb(reverbCombTuning7, spread, roomSize, damp),
			newReverbComb(reverbCombTuning8, spread, roomSize, damp),
		},
		allpass: [reverbNumAllpasses]reverbAllpass{
			newReverbAllpass(reverbAllpassTuning1 + spread),
			newReverbAllpass(reverbAllpassTuning2 + spread),
			newReverbAllpass(reverbAllpassTuning3 + spread),
			newReverbAllpass(reverbAllpassTuning4 + spread),
		},
	}
}

func (u *reverbUnit) process(input float64) float64 {
	var acc float64
	for i := range u.combs {
		acc += u.combs[i].process(input)
	}
	for i := range u.allpass {
		acc = u.allpass[i].process(acc)
	}
	return acc
}

func (u *reverbUnit) reset() {
	for i := range u.combs {
		u.combs[i].reset()
	}
	for i := range u.allpass {
		u.allpass[i].reset()
	}
}

// Reverb is a stereo Schroeder/Freeverb style reverb with fixed room size
// and damping; only the wet/dry mix follows its knob.
type Reverb struct {
	roomSize float64
	damp     float64
	gain     float64
	wet      float64

	left, right reverbUnit
}

// NewReverb creates a reverb with the given room size and damping, fully
// dry. Room size and damping are clamped to sane Freeverb ranges and then
// never change for the lifetime of the reverb.
func NewReverb(roomSize, damp float64) *Reverb {
	roomSize = clamp(roomSize, 0, 0.98)
	damp = clamp(damp, 0, 0.99)
	return &Reverb{
		roomSize: roomSize,
		damp:     damp,
		gain:     reverbFixedGain,
		left:     newReverbUnit(0, roomSize, damp),
		right:    newReverbUnit(reverbStereoSpread, roomSize, damp),
	}
}

// SetAmount sets the wet mix to a knob position in [0,1]: 0 is fully dry,
// 1 fully wet.
func (r *Reverb) SetAmount(amount float64) {
	r.wet = clamp(amount, 0, 1)
}

// Mix returns the current wet mix.
func (r *Reverb) Mix() float64 { return r.wet }

// RoomSize returns the fixed room size.
func (r *Reverb) RoomSize() float64 { return r.roomSize }

// Damp returns the fixed damping.
func (r *Reverb) Damp() float64 { return r.damp }

// Process runs one stereo frame through the reverb.
func (r *Reverb) Process(l, rt float32) (float32, float32) {
	if r.wet == 0 {
		return l, rt
	}

	// Both networks are fed the attenuated mono sum, as in Freeverb.
	input := (float64(l) + float64(rt)) * r.gain

	wetL := r.left.process(input)
	wetR := r.right.process(input)

	outL := float64(l)*(1-r.wet) + wetL*r.wet
	outR := float64(rt)*(1-r.wet) + wetR*r.wet
	return float32(outL), float32(outR)
}

// Reset clears all comb and allpass state.
func (r *Reverb) Reset() {
	r.left.reset()
	r.right.reset()
}
