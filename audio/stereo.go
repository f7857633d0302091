// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer adapts any source to exactly two channels. Mono sources are
// duplicated left/right; stereo sources pass through; sources with more
// channels keep their first two. This is the only channel-layout
// conversion the loopmix pipeline performs.
type StereoMixer struct {
	src Source
	tmp []float32
}

// NewStereoMixer wraps src into a two-channel source.
func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }

func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with interleaved stereo samples. dst length must
// be a multiple of two.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	if channels == 2 {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	needed := frames * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, needed)
	}

	n, err := m.src.ReadSamples(m.tmp[:needed])
	if n == 0 {
		return 0, err
	}
	srcFrames := n / channels

	if channels == 1 {
		for f := 0; f < srcFrames; f++ {
			v := m.tmp[f]
			dst[2*f] = v
			dst[2*f+1] = v
		}
	} else {
		// More than two channels: keep the first pair.
		for f := 0; f < srcFrames; f++ {
			dst[2*f] = m.tmp[f*channels]
			dst[2*f+1] = m.tmp[f*channels+1]
		}
	}

	return srcFrames * 2, err
}
