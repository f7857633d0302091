// SPDX-License-Identifier: EPL-2.0

package engine

// RenderLoop expands a source loop into a buffer of exactly targetFrames
// frames. The loop is repeated as many times as needed, and each
// repetition is blended into the tail of the previous one across
// seamFrames frames with a linear ramp, so the result plays back without a
// click at any loop boundary.
//
// seamFrames is clamped to half the loop length; when clamping happens the
// buffer is still returned, together with ErrSeamClamped so the caller can
// surface a configuration warning. A seam of zero frames means plain
// concatenation.
//
// When the source is at least targetFrames long, a single truncated copy
// is returned and no seam is rendered.
//
// RenderLoop is pure: the same inputs always yield bit-identical output.
func RenderLoop(src []float32, channels, seamFrames, targetFrames int) ([]float32, error) {
	if channels < 1 {
		return nil, ErrBadChannelCount
	}
	if len(src) == 0 {
		return nil, ErrEmptySource
	}
	if len(src)%channels != 0 {
		return nil, ErrNotInterleaved
	}
	if targetFrames < 1 {
		return nil, ErrBadTarget
	}

	loopFrames := len(src) / channels

	var warn error
	seam := seamFrames
	if seam < 0 {
		seam = 0
	}
	if seam > loopFrames/2 {
		seam = loopFrames / 2
		warn = ErrSeamClamped
	}

	out := make([]float32, targetFrames*channels)

	// Source at least as long as the target: one truncated copy.
	if loopFrames >= targetFrames {
		copy(out, src[:targetFrames*channels])
		return out, warn
	}

	// First repetition is written whole; every following repetition
	// overlaps the previous one by the seam length. Repetition k starts
	// writing its blended head at frame loopFrames+(k-1)*(loopFrames-seam)-seam.
	copy(out, src)

	for pos := loopFrames; pos-seam < targetFrames; pos += loopFrames - seam {
		blendSeam(out, src, channels, pos, seam, targetFrames)

		// Body of this repetition, past the blended head.
		for f := seam; f < loopFrames; f++ {
			dst := pos + f - seam
			if dst >= targetFrames {
				break
			}
			copy(out[dst*channels:(dst+1)*channels], src[f*channels:(f+1)*channels])
		}
	}

	return out, warn
}

// blendSeam overwrites out frames [pos-seam, pos) with a linear ramp from
// the existing tail into the head of src.
func blendSeam(out, src []float32, channels, pos, seam, targetFrames int) {
	for f := 0; f < seam; f++ {
		dst := pos - seam + f
		if dst >= targetFrames {
			return
		}

		var t float32
		if seam > 1 {
			t = float32(f) / float32(seam-1)
		}

		for c := 0; c < channels; c++ {
			tail := out[dst*channels+c]
			head := src[f*channels+c]
			out[dst*channels+c] = tail*(1-t) + head*t
		}
	}
}

// RenderSample renders a sample into a playback buffer of targetFrames
// frames, converting the sample's configured seam duration to frames.
func RenderSample(s *Sample, targetFrames int) ([]float32, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return RenderLoop(s.Frames, s.Channels, s.SeamFrames(), targetFrames)
}
