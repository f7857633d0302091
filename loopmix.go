// SPDX-License-Identifier: EPL-2.0

package loopmix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/loopmix/audio"
	"github.com/ik5/loopmix/engine"
	"github.com/ik5/loopmix/formats/aiff"
	"github.com/ik5/loopmix/formats/mp3"
	"github.com/ik5/loopmix/formats/vorbis"
	"github.com/ik5/loopmix/formats/wav"
	"github.com/ik5/loopmix/library"
)

// ErrUnknownFormat indicates a file extension no registered decoder
// handles.
var ErrUnknownFormat = errors.New("unknown audio format")

// formatByExt maps file extensions to registry format keys.
var formatByExt = map[string]string{
	".wav":  "wav",
	".mp3":  "mp3",
	".ogg":  "ogg vorbis",
	".aiff": "aiff",
	".aif":  "aiff",
}

// DefaultRegistry returns a registry with all built-in format decoders
// registered.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg vorbis", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// DecoderFor returns the registered decoder for a file path, keyed by its
// extension.
func DecoderFor(reg *audio.Registry, path string) (audio.Decoder, error) {
	key, ok := formatByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}

	dec, ok := reg.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %s", ErrUnknownFormat, key)
	}
	return dec, nil
}

// LoadSample decodes an audio file into a stereo engine.Sample at
// sampleRate, carrying seamMS as its seam-crossfade duration. The whole
// file is decoded up front; source loops are short by design.
func LoadSample(reg *audio.Registry, path string, seamMS, sampleRate int) (*engine.Sample, error) {
	dec, err := DecoderFor(reg, path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	var pipeline audio.Source = src
	if src.SampleRate() != sampleRate {
		pipeline = audio.NewResampler(pipeline, sampleRate)
	}
	stereo := audio.NewStereoMixer(pipeline)

	frames, err := audio.ReadAll(stereo, stereo.BufSize())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	sample := &engine.Sample{
		ID:         filepath.Base(path),
		Frames:     frames,
		SampleRate: sampleRate,
		Channels:   2,
		SeamMS:     seamMS,
	}
	if err := sample.Validate(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return sample, nil
}

// SampleProvider joins a library selector with the decoding pipeline to
// satisfy engine.Provider: Next commits the selector's queued entry and
// decodes it, Peek previews the queued entry's name for the display.
type SampleProvider struct {
	reg        *audio.Registry
	sel        library.Selector
	sampleRate int
}

// NewSampleProvider creates a provider decoding selected entries at
// sampleRate.
func NewSampleProvider(reg *audio.Registry, sel library.Selector, sampleRate int) *SampleProvider {
	return &SampleProvider{
		reg:        reg,
		sel:        sel,
		sampleRate: sampleRate,
	}
}

// Next selects and decodes the next sample for a category. It blocks for
// the duration of the decode; the auto-loader calls it only while the
// channel is silent.
func (p *SampleProvider) Next(category engine.Category) (*engine.Sample, error) {
	entry, err := p.sel.SelectNext(string(category))
	if err != nil {
		return nil, fmt.Errorf("selecting %s sample: %w", category, err)
	}

	sample, err := LoadSample(p.reg, entry.Path, entry.CrossfadeMS, p.sampleRate)
	if err != nil {
		return nil, err
	}
	return sample, nil
}

// Peek previews the name of the sample Next would return.
func (p *SampleProvider) Peek(category engine.Category) (string, bool) {
	entry, ok := p.sel.PeekNext(string(category))
	if !ok {
		return "", false
	}
	return entry.ID, true
}
