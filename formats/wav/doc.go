// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav for robust chunk handling;
// encoding writes canonical PCM files directly.
//
// # Supported Formats
//
//   - PCM 16-bit (the common WAV format)
//   - Mono and stereo (and wider layouts, passed through as-is)
//   - Any sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("loop.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source producing float32 samples in
// [-1.0, 1.0]. When the input is not an io.ReadSeeker the whole stream is
// buffered in memory first; loopmix loops are short, so this is the
// normal case for piped input.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create PCM 16-bit files, mono or stereo:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("out.wav")
//	err := wav.WriteWAV16(file, 44100, 2, samples)
//
// # Error Handling
//
// The package defines sentinel errors:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: valid RIFF but unusable structure
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
