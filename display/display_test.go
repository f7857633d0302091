// SPDX-License-Identifier: EPL-2.0

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ik5/loopmix/engine"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  float64
		filled int
		pct    string
	}{
		{0, 0, "  0%"},
		{0.5, 10, " 50%"},
		{1, 20, "100%"},
		{-0.5, 0, "  0%"},
		{1.5, 20, "100%"},
	}

	for _, tt := range tests {
		got := ProgressBar(tt.value, 20)
		if n := strings.Count(got, "█"); n != tt.filled {
			t.Errorf("ProgressBar(%v) filled = %d, want %d", tt.value, n, tt.filled)
		}
		if !strings.HasSuffix(got, tt.pct) {
			t.Errorf("ProgressBar(%v) = %q, want suffix %q", tt.value, got, tt.pct)
		}
	}
}

func TestCrossfaderBar_Endpoints(t *testing.T) {
	t.Parallel()

	left := CrossfaderBar(0, 30)
	if !strings.HasPrefix(left, "A <-█") {
		t.Errorf("CrossfaderBar(0) = %q, marker should sit at the left", left)
	}

	right := CrossfaderBar(1, 30)
	if !strings.HasSuffix(right, "█-> R") {
		t.Errorf("CrossfaderBar(1) = %q, marker should sit at the right", right)
	}
}

func TestDelayDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "OFF"},
		{0.2, "SHORT (20%)"},
		{0.3, "SHORT (30%)"},
		{0.5, "MEDIUM (50%)"},
		{0.7, "MEDIUM (70%)"},
		{0.9, "LONG (90%)"},
	}

	for _, tt := range tests {
		if got := DelayDescription(tt.amount); got != tt.want {
			t.Errorf("DelayDescription(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestView_Render(t *testing.T) {
	t.Parallel()

	v := View{Controls: "a/d balance  w/s delay  e/r reverb  q quit"}
	snap := engine.Snapshot{
		Ambient:      engine.ChannelStatus{Source: "pad.wav", Volume: 0.8},
		Rhythm:       engine.ChannelStatus{Source: "beat.wav", Volume: 0.2},
		Balance:      0.2,
		DelayAmount:  0.5,
		ReverbAmount: 0.25,
	}

	out := v.Render(snap)

	for _, want := range []string{
		"pad.wav", "beat.wav",
		"AMBIENT:", "RHYTHM:", "CROSSFADE:",
		"MEDIUM (50%)", "REVERB:    25%",
		"a/d balance",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}

	// Fixed-width frame: every line is the same rune count.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := len([]rune(lines[0]))
	for i, l := range lines {
		if len([]rune(l)) != width {
			t.Errorf("line %d width = %d, want %d: %q", i, len([]rune(l)), width, l)
		}
	}
}

func TestView_Render_SilentStates(t *testing.T) {
	t.Parallel()

	v := View{}

	// A silent channel with a queued sample previews it.
	snap := engine.Snapshot{
		Ambient: engine.ChannelStatus{Source: "pad.wav", Volume: 0, NextSource: "drone.wav"},
		Rhythm:  engine.ChannelStatus{Volume: 0, Starved: true},
	}

	out := v.Render(snap)
	if !strings.Contains(out, "next: drone.wav") {
		t.Errorf("Render() should preview the queued sample:\n%s", out)
	}
	if !strings.Contains(out, "(starved)") {
		t.Errorf("Render() should mark the starved channel:\n%s", out)
	}
}

func TestView_Render_EmptySources(t *testing.T) {
	t.Parallel()

	out := View{}.Render(engine.Snapshot{})
	if !strings.Contains(out, "None") {
		t.Errorf("Render() should show None for unset sources:\n%s", out)
	}
}

func TestView_Refresh(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := View{}
	if err := v.Refresh(&buf, engine.Snapshot{}); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if !strings.HasPrefix(buf.String(), "\033[H\033[2J") {
		t.Error("Refresh() should clear the screen first")
	}
	if !strings.Contains(buf.String(), "LOOPMIX") {
		t.Error("Refresh() should write the rendered view")
	}
}
