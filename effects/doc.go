// SPDX-License-Identifier: EPL-2.0

// Package effects implements the post-mix effects chain of loopmix: a
// feedback delay with banded parameters followed by a Schroeder/Freeverb
// style reverb.
//
// # Processors
//
// Every effect implements the Processor interface, one stereo frame at a
// time:
//
//	type Processor interface {
//	    Process(l, r float32) (float32, float32)
//	    Reset()
//	}
//
// Chain runs processors in order. The standard loopmix chain is fixed:
// delay, then reverb, both applied to the single mixed signal rather than
// per channel.
//
// # Banded delay
//
// The delay knob is discretized into three bands plus bypass. Time and
// feedback step at the band edges while the wet mix follows the knob
// continuously, so the echo character changes audibly at 0.30 and 0.70.
// That step is the intended behavior, not something to smooth over.
//
//	amount = 0           bypass
//	0    < amount ≤ 0.30 200 ms, feedback 0.30, mix = amount
//	0.30 < amount ≤ 0.70 400 ms, feedback 0.50, mix = amount
//	0.70 < amount ≤ 1.00 800 ms, feedback 0.70, mix = amount
//
// # Reverb
//
// The reverb keeps its room size and damping fixed; only the wet/dry mix
// follows its knob. Internal comb and allpass state persists across
// channel reloads, so tails ring out naturally while sources change.
//
// Effect state is never reset by the engine during normal operation;
// Reset exists for tests and for reinitializing a chain between sessions.
package effects
