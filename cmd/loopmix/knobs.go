// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"
	"sync/atomic"
)

// knobs stores the three control values as bit-cast float64s, so the
// keyboard goroutine can write them while the audio goroutine samples
// them once per tick without locking. Implements engine.KnobSource.
type knobs struct {
	balance atomic.Uint64
	delay   atomic.Uint64
	reverb  atomic.Uint64
}

func newKnobs(balance, delay, reverb float64) *knobs {
	k := &knobs{}
	k.balance.Store(math.Float64bits(balance))
	k.delay.Store(math.Float64bits(delay))
	k.reverb.Store(math.Float64bits(reverb))
	return k
}

func (k *knobs) Knobs() (balance, delay, reverb float64) {
	return math.Float64frombits(k.balance.Load()),
		math.Float64frombits(k.delay.Load()),
		math.Float64frombits(k.reverb.Load())
}

// adjust adds step to a knob, clamped to [0,1].
func adjust(v *atomic.Uint64, step float64) {
	cur := math.Float64frombits(v.Load())
	next := cur + step
	if next < 0 {
		next = 0
	} else if next > 1 {
		next = 1
	}
	v.Store(math.Float64bits(next))
}
