// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrSeamClamped reports that a seam-crossfade duration exceeded half
	// the loop length and was clamped. RenderLoop still returns a valid
	// buffer alongside this error; callers may treat it as a warning.
	ErrSeamClamped = errors.New("seam crossfade clamped to half the loop length")

	// ErrEmptySource indicates a source with no frames.
	ErrEmptySource = errors.New("source has no frames")

	// ErrBadChannelCount indicates a channel count the renderer cannot handle.
	ErrBadChannelCount = errors.New("channel count must be at least 1")

	// ErrBadTarget indicates a non-positive target duration.
	ErrBadTarget = errors.New("target frame count must be positive")

	// ErrNotInterleaved indicates sample data whose length is not a whole
	// number of frames.
	ErrNotInterleaved = errors.New("sample length is not a multiple of the channel count")

	// ErrNoProvider indicates an Engine constructed without a sample provider.
	ErrNoProvider = errors.New("engine needs a sample provider")
)
