// SPDX-License-Identifier: EPL-2.0

package library

import "math/rand"

// Selector picks the next sample for a category. SelectNext commits the
// queued entry and queues a new one; PeekNext previews the queued entry
// without committing.
type Selector interface {
	SelectNext(category string) (Entry, error)
	PeekNext(category string) (Entry, bool)
}

// selector carries the queueing logic shared by both policies. The pick
// function chooses among candidates that already exclude the currently
// playing entry.
type selector struct {
	lib     *Library
	rng     *rand.Rand
	pick    func(candidates []Entry) Entry
	current map[string]string
	queued  map[string]Entry
	hasNext map[string]bool
}

func newSelector(lib *Library, rng *rand.Rand, pick func([]Entry) Entry) *selector {
	return &selector{
		lib:     lib,
		rng:     rng,
		pick:    pick,
		current: make(map[string]string),
		queued:  make(map[string]Entry),
		hasNext: make(map[string]bool),
	}
}

// candidates returns the selectable pool minus the currently playing
// entry, unless it is the only one.
func (s *selector) candidates(category string) []Entry {
	pool := s.lib.Entries(category)
	if len(pool) <= 1 {
		return pool
	}

	cur := s.current[category]
	out := make([]Entry, 0, len(pool))
	for _, e := range pool {
		if e.Path != cur {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return pool
	}
	return out
}

func (s *selector) choose(category string) (Entry, bool) {
	cands := s.candidates(category)
	if len(cands) == 0 {
		return Entry{}, false
	}
	return s.pick(cands), true
}

func (s *selector) SelectNext(category string) (Entry, error) {
	if !s.hasNext[category] {
		e, ok := s.choose(category)
		if !ok {
			return Entry{}, ErrEmptyPool
		}
		s.queued[category] = e
	}

	chosen := s.queued[category]
	s.current[category] = chosen.Path

	// Queue the following entry now, so the display can preview it the
	// next time the channel goes silent.
	if next, ok := s.choose(category); ok {
		s.queued[category] = next
		s.hasNext[category] = true
	} else {
		s.hasNext[category] = false
	}

	return chosen, nil
}

func (s *selector) PeekNext(category string) (Entry, bool) {
	if !s.hasNext[category] {
		e, ok := s.choose(category)
		if !ok {
			return Entry{}, false
		}
		s.queued[category] = e
		s.hasNext[category] = true
	}
	return s.queued[category], true
}

// RandomSelector picks uniformly among the candidates.
type RandomSelector struct {
	*selector
}

// NewRandomSelector creates a random selector over lib driven by rng.
func NewRandomSelector(lib *Library, rng *rand.Rand) *RandomSelector {
	s := &RandomSelector{}
	s.selector = newSelector(lib, rng, func(cands []Entry) Entry {
		return cands[rng.Intn(len(cands))]
	})
	return s
}

// LeastPlayedSelector picks among the entries with the lowest play count,
// breaking ties randomly. A play is counted each time SelectNext commits
// an entry.
type LeastPlayedSelector struct {
	*selector
	plays map[string]int
}

// NewLeastPlayedSelector creates a least-played-first selector over lib
// driven by rng.
func NewLeastPlayedSelector(lib *Library, rng *rand.Rand) *LeastPlayedSelector {
	s := &LeastPlayedSelector{plays: make(map[string]int)}
	s.selector = newSelector(lib, rng, func(cands []Entry) Entry {
		minPlays := s.plays[cands[0].Path]
		for _, e := range cands[1:] {
			if s.plays[e.Path] < minPlays {
				minPlays = s.plays[e.Path]
			}
		}

		least := cands[:0:0]
		for _, e := range cands {
			if s.plays[e.Path] == minPlays {
				least = append(least, e)
			}
		}
		return least[rng.Intn(len(least))]
	})
	return s
}

// SelectNext commits the queued entry and counts the play.
func (s *LeastPlayedSelector) SelectNext(category string) (Entry, error) {
	e, err := s.selector.SelectNext(category)
	if err != nil {
		return Entry{}, err
	}
	s.plays[e.Path]++
	return e, nil
}

// Plays returns how many times an entry has been committed.
func (s *LeastPlayedSelector) Plays(path string) int {
	return s.plays[path]
}
