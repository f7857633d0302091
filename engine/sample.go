// SPDX-License-Identifier: EPL-2.0

package engine

// Category identifies one of the two sample pools.
type Category string

const (
	CategoryAmbient Category = "ambient"
	CategoryRhythm  Category = "rhythm"
)

// Sample is an immutable decoded source loop: interleaved stereo float32
// frames in [-1, 1] plus the seam-crossfade duration configured for it.
// A Sample is consumed exactly once, by the render call that expands it
// into a playback buffer.
type Sample struct {
	// ID identifies the source, typically the file name.
	ID string

	// Frames holds interleaved samples, Channels values per frame.
	Frames []float32

	// SampleRate of the frames in Hz.
	SampleRate int

	// Channels count. The loading pipeline always delivers stereo.
	Channels int

	// SeamMS is the seam-crossfade duration in milliseconds, taken from
	// the sample's sidecar config.
	SeamMS int
}

// FrameCount returns the number of whole frames in the sample.
func (s *Sample) FrameCount() int {
	if s.Channels < 1 {
		return 0
	}
	return len(s.Frames) / s.Channels
}

// SeamFrames converts the configured seam duration to frames at the
// sample's own rate.
func (s *Sample) SeamFrames() int {
	return s.SeamMS * s.SampleRate / 1000
}

// Validate reports whether the sample can be rendered.
func (s *Sample) Validate() error {
	if s.Channels < 1 {
		return ErrBadChannelCount
	}
	if len(s.Frames) == 0 {
		return ErrEmptySource
	}
	if len(s.Frames)%s.Channels != 0 {
		return ErrNotInterleaved
	}
	return nil
}
