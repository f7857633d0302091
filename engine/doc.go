// SPDX-License-Identifier: EPL-2.0

// Package engine implements the real-time rendering and mixing core of
// loopmix: two independently looping channels blended by a crossfader,
// with automatic source replacement when a channel falls silent.
//
// # Rendering
//
// Short source loops are expanded once, at load time, into fixed-length
// playback buffers with RenderLoop. Each repetition of the loop is blended
// into the previous one across the sample's seam-crossfade region, so the
// resulting buffer wraps seamlessly and the playback path never has to
// compute a crossfade:
//
//	buf, err := engine.RenderLoop(sample.Frames, 2, seamFrames, targetFrames)
//
// RenderLoop is a pure function: identical inputs always produce
// bit-identical output. The returned buffer is always exactly
// targetFrames long, regardless of the source loop length, which keeps the
// wrap-around arithmetic in Channel independent of the material.
//
// # Channels and the crossfader
//
// A Channel owns one rendered buffer, a playhead and a volume scalar.
// The Crossfader maps a single balance knob in [0,1] to the two channel
// volumes, either linearly or through a power curve.
//
// # Auto-loading
//
// When a channel's volume crosses into exactly zero, the AutoLoader
// synchronously pulls the next sample from a Provider, renders it, and
// swaps the channel's buffer. The swap only ever happens while the channel
// is silent, so the discontinuity is inaudible by construction. This is
// deliberate: the blocking load stalls the tick loop, but only at moments
// when the stalled channel contributes nothing to the mix.
//
// # The mix engine
//
// Engine ties everything together. Each tick it samples the latest knob
// positions, advances both channels, scales and sums them, runs the result
// through the post-mix effects chain, and emits one block of frames.
// Engine implements io.Reader producing 16-bit little-endian PCM, suitable
// for oto's NewPlayer.
//
// Exactly two rendered buffers are resident at any instant, one per
// channel; a reload renders the replacement first and drops the old buffer
// in the same swap.
package engine
