// SPDX-License-Identifier: EPL-2.0

package effects

import "testing"

// gainProc scales both channels, for chain-order tests.
type gainProc struct {
	gain  float32
	reset bool
}

func (g *gainProc) Process(l, r float32) (float32, float32) {
	return l * g.gain, r * g.gain
}

func (g *gainProc) Reset() { g.reset = true }

func TestChain_ProcessesInOrder(t *testing.T) {
	t.Parallel()

	c := NewChain(&gainProc{gain: 2}, &gainProc{gain: 3})

	l, r := c.Process(1, -1)
	if l != 6 || r != -6 {
		t.Errorf("Process() = (%v, %v), want (6, -6)", l, r)
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	c := NewChain()
	l, r := c.Process(0.25, 0.5)
	if l != 0.25 || r != 0.5 {
		t.Errorf("Process() = (%v, %v), want the input unchanged", l, r)
	}
}

func TestChain_ResetAll(t *testing.T) {
	t.Parallel()

	a := &gainProc{gain: 1}
	b := &gainProc{gain: 1}
	c := NewChain(a, b)

	c.Reset()
	if !a.reset || !b.reset {
		t.Error("Reset() should reach every processor")
	}
}
