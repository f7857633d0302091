// SPDX-License-Identifier: EPL-2.0

package effects

// DelayBand is the discrete parameter band a delay knob position maps to.
type DelayBand uint8

const (
	DelayBandOff DelayBand = iota
	DelayBandLow
	DelayBandMid
	DelayBandHigh
)

const (
	delayLowEdge = 0.30
	delayMidEdge = 0.70

	delayLowSeconds  = 0.200
	delayMidSeconds  = 0.400
	delayHighSeconds = 0.800

	delayLowFeedback  = 0.30
	delayMidFeedback  = 0.50
	delayHighFeedback = 0.70

	// maxDelaySeconds sizes the ring buffer once; band changes only move
	// the read offset and never reallocate or clear the line.
	maxDelaySeconds = delayHighSeconds
)

// String returns the band name as shown by the display.
func (b DelayBand) String() string {
	switch b {
	case DelayBandLow:
		return "SHORT"
	case DelayBandMid:
		return "MEDIUM"
	case DelayBandHigh:
		return "LONG"
	default:
		return "OFF"
	}
}

// Delay is a mono-summed feedback delay applied to the stereo mix, with
// its time and feedback selected by a banded knob position and its wet mix
// following the knob continuously.
type Delay struct {
	sampleRate int

	bufL, bufR []float32
	write      int

	band         DelayBand
	delaySamples int
	feedback     float32
	mix          float32
}

// NewDelay creates a delay for the given sample rate, initially bypassed.
func NewDelay(sampleRate int) *Delay {
	size := int(maxDelaySeconds * float64(sampleRate))
	if size < 1 {
		size = 1
	}
	d := &Delay{
		sampleRate:   sampleRate,
		bufL:         make([]float32, size),
		bufR:         make([]float32, size),
		delaySamples: int(delayLowSeconds * float64(sampleRate)),
		feedback:     delayLowFeedback,
	}
	return d
}

// BandFor maps a knob position in [0,1] to its band. Band edges belong to
// the lower band: 0.30 is still the short band and 0.70 the medium one.
func BandFor(amount float64) DelayBand {
	switch {
	case amount <= 0:
		return DelayBandOff
	case amount <= delayLowEdge:
		return DelayBandLow
	case amount <= delayMidEdge:
		return DelayBandMid
	default:
		return DelayBandHigh
	}
}

// SetAmount applies the banded mapping for a knob position in [0,1].
// Time and feedback step at the band edges; the wet mix equals the knob
// position. Switching bands keeps the delay line contents.
func (d *Delay) SetAmount(amount float64) {
	amount = clamp(amount, 0, 1)
	d.band = BandFor(amount)

	switch d.band {
	case DelayBandOff:
		d.mix = 0
		return
	case DelayBandLow:
		d.delaySamples = int(delayLowSeconds * float64(d.sampleRate))
		d.feedback = delayLowFeedback
	case DelayBandMid:
		d.delaySamples = int(delayMidSeconds * float64(d.sampleRate))
		d.feedback = delayMidFeedback
	case DelayBandHigh:
		d.delaySamples = int(delayHighSeconds * float64(d.sampleRate))
		d.feedback = delayHighFeedback
	}
	d.mix = float32(amount)
}

// Band returns the currently selected band.
func (d *Delay) Band() DelayBand { return d.band }

// Time returns the current delay time in seconds, or 0 when bypassed.
func (d *Delay) Time() float64 {
	if d.band == DelayBandOff {
		return 0
	}
	return float64(d.delaySamples) / float64(d.sampleRate)
}

// Feedback returns the current feedback gain.
func (d *Delay) Feedback() float64 { return float64(d.feedback) }

// Mix returns the current wet mix.
func (d *Delay) Mix() float64 { return float64(d.mix) }

// Process runs one stereo frame through the delay. The line is fed even
// while bypassed so that raising the knob reveals echoes of what was
// already playing.
func (d *Delay) Process(l, r float32) (float32, float32) {
	read := d.write - d.delaySamples
	if read < 0 {
		read += len(d.bufL)
	}
	delL := d.bufL[read]
	delR := d.bufR[read]

	d.bufL[d.write] = l + delL*d.feedback
	d.bufR[d.write] = r + delR*d.feedback
	d.write++
	if d.write >= len(d.bufL) {
		d.write = 0
	}

	return l*(1-d.mix) + delL*d.mix, r*(1-d.mix) + delR*d.mix
}

// Reset clears the delay line.
func (d *Delay) Reset() {
	for i := range d.bufL {
		d.bufL[i] = 0
		d.bufR[i] = 0
	}
	d.write = 0
}
