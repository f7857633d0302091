// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives of the loopmix loading
// pipeline: the Source interface, sample-rate conversion, stereo layout
// adaptation, and the decoder registry.
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement it, so they can be chained:
// a decoded file is resampled to the engine rate, adapted to stereo, and
// collected into a sample buffer, each stage wrapping the previous one.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 44100)
//
// Both upsampling and downsampling are supported; a simple low-pass is
// applied when downsampling.
//
// # Stereo Adaptation
//
// The engine renders interleaved stereo only. StereoMixer adapts any
// source: mono is duplicated into both channels, stereo passes through,
// wider layouts keep their first pair.
//
//	stereo := audio.NewStereoMixer(source)
//
// # Collecting
//
// ReadAll drains a source into one slice, which is how whole loops are
// loaded before rendering:
//
//	frames, err := audio.ReadAll(stereo, 4096)
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]: 0.0 is silence, ±1.0 is full scale.
// The normalized format keeps intermediate processing free of bit-depth
// concerns and clipping.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples
//	}
package audio
