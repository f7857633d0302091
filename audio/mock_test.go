package audio

import (
	"io"
	"math"
)

// mockSource implements Source over a waveform function, so tests can
// script exactly what a decoder would deliver.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	frame       int
	waveform    func(sample int, channel int) float32
	closed      bool
}

// newMockSource builds a source that generates totalFrames frames at
// sampleRate, asking waveform for each (frame, channel) value.
func newMockSource(sampleRate, channels, totalFrames int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// newConstantSource generates the same value on every channel.
func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// newSineSource generates a sine at the given frequency, identical on
// all channels.
func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
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
