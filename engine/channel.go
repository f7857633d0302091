// SPDX-License-Identifier: EPL-2.0

package engine

// stereoChannels is the channel count of every rendered buffer; the
// loading pipeline duplicates mono sources before rendering.
const stereoChannels = 2

// Channel owns one rendered playback buffer, a playhead and a volume
// scalar. All methods are driven from the single mixing timeline; Channel
// performs no locking of its own.
type Channel struct {
	buf    []float32
	frames int
	pos    int

	source string

	volume     float64
	prevVolume float64
}

// NewChannel creates a channel. buf may be empty, in which case the
// channel produces silence until the first Reload.
func NewChannel(source string, buf []float32) *Channel {
	return &Channel{
		buf:    buf,
		frames: len(buf) / stereoChannels,
		source: source,
		volume: 1,
	}
}

// Source returns the identity of the currently playing sample.
func (c *Channel) Source() string { return c.source }

// Volume returns the current volume scalar.
func (c *Channel) Volume() float64 { return c.volume }

// Frames returns the length of the current buffer in frames.
func (c *Channel) Frames() int { return c.frames }

// SetVolume stores v clamped to [0,1] and records the tick-to-tick
// transition for WentSilent and LeftSilence.
func (c *Channel) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	c.prevVolume = c.volume
	c.volume = v
}

// WentSilent reports whether the last SetVolume crossed from nonzero to
// exactly zero. This is the sole auto-reload trigger; re-entering zero
// without first leaving it does not re-trigger.
func (c *Channel) WentSilent() bool {
	return c.prevVolume > 0 && c.volume == 0
}

// LeftSilence reports whether the last SetVolume crossed from exactly zero
// to nonzero.
func (c *Channel) LeftSilence() bool {
	return c.prevVolume == 0 && c.volume > 0
}

// Advance copies len(dst)/2 frames starting at the playhead into dst,
// wrapping at the end of the buffer, and moves the playhead forward. The
// copied frames are not scaled; the mixer applies the volume.
func (c *Channel) Advance(dst []float32) {
	if c.frames == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	frames := len(dst) / stereoChannels
	written := 0

	for written < frames {
		run := frames - written
		if avail := c.frames - c.pos; run > avail {
			run = avail
		}

		copy(dst[written*stereoChannels:(written+run)*stereoChannels],
			c.buf[c.pos*stereoChannels:(c.pos+run)*stereoChannels])

		written += run
		c.pos += run
		if c.pos == c.frames {
			c.pos = 0
		}
	}
}

// Reload swaps in a freshly rendered buffer and resets the playhead. The
// caller guarantees the channel's volume is exactly zero, which is what
// makes the discontinuity inaudible. The previous buffer is released by
// the swap; at no point does the channel hold two buffers.
func (c *Channel) Reload(buf []float32, source string) {
	c.buf = buf
	c.frames = len(buf) / stereoChannels
	c.pos = 0
	c.source = source
}
