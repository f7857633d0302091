// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"sync"

	"github.com/ik5/loopmix/effects"
	"github.com/ik5/loopmix/utils"
)

// Config carries the engine-wide constants. Every fixed number of the
// system lives here rather than in compile-time literals, so alternate
// profiles are testable without rebuilding.
type Config struct {
	// SampleRate of the whole pipeline in Hz.
	SampleRate int

	// BufferSeconds is the fixed duration of every rendered playback
	// buffer, independent of source material.
	BufferSeconds int

	// TickFrames is the number of frames rendered per tick.
	TickFrames int

	// Curve and CurveExponent configure the crossfader.
	Curve         Curve
	CurveExponent float64

	// ReverbRoomSize and ReverbDamp are the fixed reverb constants.
	ReverbRoomSize float64
	ReverbDamp     float64
}

// Defaults for any zero Config field.
const (
	DefaultSampleRate    = 44100
	DefaultBufferSeconds = 300
	DefaultTickFrames    = 1024
)

func (c *Config) fillDefaults() {
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.BufferSeconds <= 0 {
		c.BufferSeconds = DefaultBufferSeconds
	}
	if c.TickFrames <= 0 {
		c.TickFrames = DefaultTickFrames
	}
	if c.CurveExponent <= 0 {
		c.CurveExponent = DefaultCurveExponent
	}
	if c.ReverbRoomSize <= 0 {
		c.ReverbRoomSize = effects.DefaultRoomSize
	}
	if c.ReverbDamp <= 0 {
		c.ReverbDamp = effects.DefaultDamp
	}
}

// BufferFrames returns the fixed length of a rendered buffer in frames.
func (c Config) BufferFrames() int {
	return c.SampleRate * c.BufferSeconds
}

// KnobSource exposes the latest positions of the three control knobs, each
// in [0,1]. The engine samples it exactly once per tick; updates between
// ticks are simply the latest value winning.
type KnobSource interface {
	Knobs() (balance, delay, reverb float64)
}

type fixedKnobs struct{}

func (fixedKnobs) Knobs() (float64, float64, float64) { return 0.5, 0, 0 }

// ChannelStatus is the display-facing view of one channel.
type ChannelStatus struct {
	// Source is the id of the currently playing sample.
	Source string

	// Volume is the channel's current volume scalar.
	Volume float64

	// NextSource is the id queued for the next reload. It is known only
	// while the channel is silent, because that is the only time the
	// selection is previewed before commit.
	NextSource string

	// Starved is set while the channel is silent and the selector could
	// not produce a replacement.
	Starved bool
}

// Snapshot is a read-only copy of the engine state for the display.
type Snapshot struct {
	Ambient ChannelStatus
	Rhythm  ChannelStatus

	BufferSeconds int

	Balance      float64
	DelayAmount  float64
	ReverbAmount float64
}

// Engine is the per-tick orchestrator: it advances both channels, blends
// them by the crossfader volumes, runs the mix through the effects chain
// and emits fixed-size frame blocks.
//
// The mixing path is single-threaded; the mutex exists only so Snapshot
// can be called from a display goroutine while an audio player drives
// Read from its own.
type Engine struct {
	mu sync.Mutex

	cfg Config

	ambient *Channel
	rhythm  *Channel
	fader   *Crossfader
	delay   *effects.Delay
	reverb  *effects.Reverb
	chain   *effects.Chain

	knobs    KnobSource
	provider Provider
	loader   *AutoLoader

	balance   float64
	delayAmt  float64
	reverbAmt float64

	scratchA []float32
	scratchB []float32
	tickBuf  []float32
	tickPos  int
}

// New builds an engine, loading the initial sample for each category from
// the provider. A category whose initial load fails starts silent and is
// retried through the normal auto-load path. A nil knobs source pins the
// balance at center with both effects off.
func New(cfg Config, provider Provider, knobs KnobSource) (*Engine, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	cfg.fillDefaults()
	if knobs == nil {
		knobs = fixedKnobs{}
	}

	e := &Engine{
		cfg:      cfg,
		fader:    NewCrossfader(cfg.Curve, cfg.CurveExponent),
		delay:    effects.NewDelay(cfg.SampleRate),
		reverb:   effects.NewReverb(cfg.ReverbRoomSize, cfg.ReverbDamp),
		knobs:    knobs,
		provider: provider,
		loader:   NewAutoLoader(provider, cfg.BufferFrames()),
		scratchA: make([]float32, cfg.TickFrames*stereoChannels),
		scratchB: make([]float32, cfg.TickFrames*stereoChannels),
		tickBuf:  make([]float32, cfg.TickFrames*stereoChannels),
	}
	e.chain = effects.NewChain(e.delay, e.reverb)
	e.tickPos = len(e.tickBuf)

	e.ambient = e.initialChannel(CategoryAmbient)
	e.rhythm = e.initialChannel(CategoryRhythm)

	// Settle the volumes on the starting knob positions so the first tick
	// does not see a spurious zero-crossing.
	balance, delayAmt, reverbAmt := e.knobs.Knobs()
	e.fader.Set(balance)
	va, vr := e.fader.Volumes()
	for i := 0; i < 2; i++ {
		e.ambient.SetVolume(va)
		e.rhythm.SetVolume(vr)
	}
	e.balance, e.delayAmt, e.reverbAmt = balance, delayAmt, reverbAmt

	return e, nil
}

func (e *Engine) initialChannel(category Category) *Channel {
	sample, err := e.provider.Next(category)
	if err != nil {
		e.loader.lastErr[category] = err
		return NewChannel("", nil)
	}

	buf, err := RenderSample(sample, e.cfg.BufferFrames())
	if buf == nil {
		e.loader.lastErr[category] = err
		return NewChannel("", nil)
	}
	return NewChannel(sample.ID, buf)
}

// Config returns the engine configuration with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) renderTick() {
	balance, delayAmt, reverbAmt := e.knobs.Knobs()
	e.balance, e.delayAmt, e.reverbAmt = balance, delayAmt, reverbAmt

	e.fader.Set(balance)
	va, vr := e.fader.Volumes()
	e.ambient.SetVolume(va)
	e.rhythm.SetVolume(vr)

	// Reloads run between blocks, exactly when the crossed channel is
	// silent. The blocking render is masked by that silence.
	e.loader.Check(e.ambient, CategoryAmbient)
	e.loader.Check(e.rhythm, CategoryRhythm)

	e.delay.SetAmount(delayAmt)
	e.reverb.SetAmount(reverbAmt)

	e.ambient.Advance(e.scratchA)
	e.rhythm.Advance(e.scratchB)

	fva, fvr := float32(va), float32(vr)
	for i := 0; i < len(e.tickBuf); i += stereoChannels {
		l := e.scratchA[i]*fva + e.scratchB[i]*fvr
		r := e.scratchA[i+1]*fva + e.scratchB[i+1]*fvr
		l, r = e.chain.Process(l, r)
		e.tickBuf[i] = l
		e.tickBuf[i+1] = r
	}
	e.tickPos = 0
}

// ReadFloat fills dst with the next mixed samples, rendering whole ticks
// as needed. It always fills dst completely; the stream never ends.
func (e *Engine) ReadFloat(dst []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	filled := 0
	for filled < len(dst) {
		if e.tickPos >= len(e.tickBuf) {
			e.renderTick()
		}
		n := copy(dst[filled:], e.tickBuf[e.tickPos:])
		filled += n
		e.tickPos += n
	}
}

// Read produces 16-bit little-endian PCM, which is what oto's player
// expects from its io.Reader. The sample count is rounded down to whole
// samples; Read never returns io.EOF.
func (e *Engine) Read(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for n+1 < len(p) {
		if e.tickPos >= len(e.tickBuf) {
			e.renderTick()
		}
		for e.tickPos < len(e.tickBuf) && n+1 < len(p) {
			v := utils.Float32ToInt16(e.tickBuf[e.tickPos])
			binary.LittleEndian.PutUint16(p[n:n+2], uint16(v))
			e.tickPos++
			n += 2
		}
	}
	return n, nil
}

// Snapshot copies the current state for the display collaborator.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Ambient:       e.channelStatus(e.ambient, CategoryAmbient),
		Rhythm:        e.channelStatus(e.rhythm, CategoryRhythm),
		BufferSeconds: e.cfg.BufferSeconds,
		Balance:       e.balance,
		DelayAmount:   e.delayAmt,
		ReverbAmount:  e.reverbAmt,
	}
}

func (e *Engine) channelStatus(ch *Channel, category Category) ChannelStatus {
	st := ChannelStatus{
		Source: ch.Source(),
		Volume: ch.Volume(),
	}
	if ch.Volume() == 0 {
		if id, ok := e.provider.Peek(category); ok {
			st.NextSource = id
		}
		st.Starved = e.loader.LastError(category) != nil
	}
	return st
}
