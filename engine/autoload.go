// SPDX-License-Identifier: EPL-2.0

package engine

// Provider supplies samples for a category. Next blocks until the sample
// is decoded; Peek previews the identity of the sample Next would return,
// without committing to it.
//
// The library package's selectors combined with the root package's loader
// satisfy this interface; tests inject scripted providers.
type Provider interface {
	Next(category Category) (*Sample, error)
	Peek(category Category) (id string, ok bool)
}

// AutoLoader replaces a channel's buffer when its volume crosses into
// silence. The whole select-decode-render-swap sequence runs synchronously
// on the mixing timeline: the stall is masked by the channel being silent
// for its entire duration, and the swap is atomic from the mixer's point
// of view.
type AutoLoader struct {
	provider     Provider
	targetFrames int

	// lastErr remembers a failed reload per category so the display can
	// report "channel silent, no replacement available". A failure leaves
	// the channel on its current buffer; the trigger re-arms once the
	// volume leaves zero.
	lastErr map[Category]error

	reloads map[Category]int
}

// NewAutoLoader creates an auto-loader rendering buffers of targetFrames
// frames.
func NewAutoLoader(provider Provider, targetFrames int) *AutoLoader {
	return &AutoLoader{
		provider:     provider,
		targetFrames: targetFrames,
		lastErr:      make(map[Category]error),
		reloads:      make(map[Category]int),
	}
}

// Check fires a reload when the channel's volume just crossed into zero.
// It is edge-triggered: a channel that stays at zero does not reload
// again, and a failed reload is retried only after the next zero-crossing.
func (a *AutoLoader) Check(ch *Channel, category Category) {
	if ch.LeftSilence() {
		a.lastErr[category] = nil
	}
	if !ch.WentSilent() {
		return
	}

	sample, err := a.provider.Next(category)
	if err != nil {
		a.lastErr[category] = err
		return
	}

	buf, err := RenderSample(sample, a.targetFrames)
	if err != nil && buf == nil {
		// Seam clamping still yields a usable buffer; anything else is a
		// sample the scan layer should have excluded.
		a.lastErr[category] = err
		return
	}

	ch.Reload(buf, sample.ID)
	a.lastErr[category] = nil
	a.reloads[category]++
}

// LastError returns the error of the most recent failed reload for the
// category, or nil when the channel is playing normally.
func (a *AutoLoader) LastError(category Category) error {
	return a.lastErr[category]
}

// Reloads returns how many successful reloads the category has seen.
func (a *AutoLoader) Reloads(category Category) int {
	return a.reloads[category]
}
