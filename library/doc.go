// SPDX-License-Identifier: EPL-2.0

// Package library is the source-file collaborator of loopmix: it scans
// sample directories, reads per-sample sidecar configs and selects which
// sample a channel plays next.
//
// # Scanning
//
// A sample is selectable only if a sidecar config sits next to it: a small
// JSON text file named after the audio file with a .txt extension,
// carrying the seam-crossfade duration in milliseconds:
//
//	{"crossfade_ms": 1000}
//
// Files without a valid sidecar are excluded at scan time, so the
// rendering core never sees a sample whose seam duration is unknown.
//
// # Selection
//
// Two selection policies are provided, both driven by an injected
// *rand.Rand so tests can run them deterministically:
//
//   - RandomSelector picks uniformly, avoiding the currently playing
//     sample whenever an alternative exists.
//   - LeastPlayedSelector picks among the least-played samples, breaking
//     ties randomly, and counts a play on every commit.
//
// Both keep a queued "next" entry per category. PeekNext previews it
// without committing, which is what lets the display show the upcoming
// sample while a channel is silent.
package library
