// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

// Curve selects the balance curve of the crossfader.
type Curve uint8

const (
	// CurveLinear maps the knob directly: ambient = 1-k, rhythm = k.
	CurveLinear Curve = iota

	// CurvePower raises both sides to an exponent: ambient = (1-k)^p,
	// rhythm = k^p. The two volumes deliberately do not sum to one; the
	// loudness dip at center buys perceptual smoothness at the edges.
	CurvePower
)

// DefaultCurveExponent is the power-curve exponent used when none is
// configured.
const DefaultCurveExponent = 1.5

// Crossfader maps a single balance knob in [0,1] to the two channel
// volumes. k=0 gives the ambient channel full volume, k=1 the rhythm
// channel.
type Crossfader struct {
	curve    Curve
	exponent float64
	k        float64
}

// NewCrossfader creates a crossfader. A non-positive exponent falls back
// to DefaultCurveExponent.
func NewCrossfader(curve Curve, exponent float64) *Crossfader {
	if exponent <= 0 {
		exponent = DefaultCurveExponent
	}
	return &Crossfader{curve: curve, exponent: exponent}
}

// Set stores the knob position clamped to [0,1]. Calling Set with the
// same value is a no-op beyond the store.
func (f *Crossfader) Set(k float64) {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	f.k = k
}

// Position returns the current knob position.
func (f *Crossfader) Position() float64 { return f.k }

// Volumes derives the (ambient, rhythm) volume pair from the current knob
// position. Both endpoints are exact for either curve: k=0 yields (1,0)
// and k=1 yields (0,1).
func (f *Crossfader) Volumes() (ambient, rhythm float64) {
	switch f.curve {
	case CurvePower:
		return math.Pow(1-f.k, f.exponent), math.Pow(f.k, f.exponent)
	default:
		return 1 - f.k, f.k
	}
}
