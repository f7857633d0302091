// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides scripted PCM sources for examples and
// tests. It mirrors the audio.Source interface without importing the
// audio package, to avoid a dependency cycle.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	frame       int
	waveform    func(sample int, channel int) float32
}

// NewMockSource builds a source that generates totalFrames frames at
// sampleRate, asking waveform for each (frame, channel) value.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource generates all-zero frames.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource generates a sine at the given frequency, identical on
// all channels.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates the same value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.frame = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.frame >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if rem := m.totalFrames - m.frame; frames > rem {
		frames = rem
	}

	for f := 0; f < frames; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.waveform(m.frame+f, ch)
		}
	}
	m.frame += frames

	n := frames * m.channels
	if m.frame >= m.totalFrames {
		return n, io.EOF
	}
	return n, nil
}
