// SPDX-License-Identifier: EPL-2.0

// Package loopmix plays two independent pools of short audio loops as a
// continuous two-channel mix.
//
// A session scans two directories of source loops (the "ambient" pool and
// the "rhythm" pool), expands each selected loop into a long seamless
// playback buffer, and mixes one buffer per channel through a crossfader.
// Whenever a channel is faded all the way out, the engine swaps in a
// freshly rendered buffer from that channel's pool, so the mix never has
// to stop for loading.
//
// # Supported Formats
//
// Source loops can be any of the following, decoded via the formats
// subpackages:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// Scan the pools, wire a provider, and read mixed audio from the engine:
//
//	lib := library.NewLibrary()
//	lib.ScanDir("ambient", "loops/ambient")
//	lib.ScanDir("rhythm", "loops/rhythm")
//
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	sel := library.NewRandomSelector(lib, rng)
//	provider := loopmix.NewSampleProvider(loopmix.DefaultRegistry(), sel, 44100)
//
//	eng, _ := engine.New(engine.Config{}, provider, knobs)
//
//	// eng implements io.Reader over 16-bit little-endian stereo PCM,
//	// ready to hand to an audio output library.
//
// # Loading Pipeline
//
// LoadSample builds the decoding pipeline for one file: decode, resample
// to the engine rate, normalize to stereo, and collect the frames:
//
//	sample, err := loopmix.LoadSample(reg, "loops/ambient/pad.wav", 500, 44100)
//
// The resulting engine.Sample carries the seam-crossfade duration from
// the file's sidecar config; engine.RenderLoop expands it into a
// fixed-length buffer whose loop repetitions are crossfaded into each
// other so the seams are inaudible.
//
// # Sidecar Configs
//
// Every audio file needs a sidecar .txt file next to it holding a JSON
// object with the seam-crossfade duration in milliseconds:
//
//	{"crossfade_ms": 500}
//
// Files without a valid sidecar are skipped during scanning.
package loopmix
