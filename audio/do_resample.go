package audio

import (
	"fmt"
	"io"

	"github.com/ik5/loopmix/utils"
)

// ResampleToStereo16 is a high-level convenience function that resamples
// audio to a target sample rate, converts it to stereo, and collects all
// samples as 16-bit PCM data.
//
// This function creates a processing pipeline:
//  1. Resamples the source audio to targetRate using cubic interpolation
//  2. Converts the resampled audio to interleaved stereo
//  3. Reads all samples from the pipeline
//  4. Converts float32 samples to int16 PCM format
//
// Parameters:
//   - src: The audio source to process (implements Source interface)
//   - targetRate: Target sample rate in Hz (e.g., 22050, 44100, 48000)
//   - bufferSize: Size of the buffer for reading samples (e.g., 4096).
//     Must be even; odd sizes are rounded down.
//
// Returns:
//   - []int16: Collected interleaved stereo PCM samples
//   - int: The output sample rate (same as targetRate)
//   - error: Any error encountered during processing
//
// Note: This is a convenience function for exporting rendered audio. For
// more control over the pipeline, use NewResampler() and NewStereoMixer()
// directly.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, rate, err := audio.ResampleToStereo16(src, 44100, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains stereo 16-bit PCM at 44.1kHz
func ResampleToStereo16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	// Create the processing pipeline: resample -> stereo
	resampler := NewResampler(src, targetRate)
	stereo := NewStereoMixer(resampler)

	if bufferSize < 2 {
		bufferSize = 4096
	}
	bufferSize -= bufferSize % 2

	// Collect all samples
	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := stereo.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}
	}

	return pcm16, targetRate, nil
}
