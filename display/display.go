// SPDX-License-Identifier: EPL-2.0

// Package display renders engine snapshots as a terminal status view:
// per-channel volume bars with source names, a crossfader position bar,
// and the delay/reverb state. Rendering is pure string building; the
// caller decides when and where to write it.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/loopmix/effects"
	"github.com/ik5/loopmix/engine"
)

const (
	boxWidth      = 78
	barWidth      = 20
	faderWidth    = 30
	maxSourceName = 30
)

// clearScreen moves the cursor home and wipes the terminal.
const clearScreen = "\033[H\033[2J"

// View renders snapshots into a fixed-width framed box.
type View struct {
	// Controls is the key-help line shown at the bottom. Empty hides it.
	Controls string
}

// ProgressBar renders a 0..1 value as a filled bar with a percentage.
func ProgressBar(value float64, width int) string {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %3d%%", bar, int(value*100))
}

// CrossfaderBar renders the balance position between the two channels.
// 0 is fully ambient (left), 1 fully rhythm (right).
func CrossfaderBar(value float64, width int) string {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}

	pos := int(value * float64(width-1))
	bar := strings.Repeat(" ", pos) + "█" + strings.Repeat(" ", width-pos-1)
	return fmt.Sprintf("A <-%s-> R", bar)
}

// DelayDescription names the active delay band, with the percentage when
// the delay is engaged.
func DelayDescription(amount float64) string {
	band := effects.BandFor(amount)
	if band == effects.DelayBandOff {
		return band.String()
	}
	return fmt.Sprintf("%s (%d%%)", band, int(amount*100))
}

// sourceName trims a source id for the fixed-width layout, marking the
// channel's reload state when it is silent.
func sourceName(st engine.ChannelStatus) string {
	name := st.Source
	if name == "" {
		name = "None"
	}
	if st.Starved {
		name = "(starved)"
	} else if st.NextSource != "" {
		name = "next: " + st.NextSource
	}
	if runes := []rune(name); len(runes) > maxSourceName {
		name = string(runes[:maxSourceName])
	}
	return name
}

func line(content string) string {
	runes := []rune(content)
	if len(runes) > boxWidth-4 {
		runes = runes[:boxWidth-4]
	}
	pad := boxWidth - 4 - len(runes)
	return "| " + string(runes) + strings.Repeat(" ", pad) + " |"
}

func rule(left, right string) string {
	return left + strings.Repeat("-", boxWidth-2) + right
}

// Render builds the full status view for one snapshot.
func (v View) Render(snap engine.Snapshot) string {
	var b strings.Builder

	b.WriteString(rule("+", "+") + "\n")
	b.WriteString(line("LOOPMIX") + "\n")
	b.WriteString(rule("+", "+") + "\n")

	b.WriteString(line(fmt.Sprintf("AMBIENT:  %-30s %s",
		sourceName(snap.Ambient), ProgressBar(snap.Ambient.Volume, barWidth))) + "\n")
	b.WriteString(line(fmt.Sprintf("RHYTHM:   %-30s %s",
		sourceName(snap.Rhythm), ProgressBar(snap.Rhythm.Volume, barWidth))) + "\n")
	b.WriteString(line("") + "\n")

	b.WriteString(line(fmt.Sprintf("CROSSFADE: %s", CrossfaderBar(snap.Balance, faderWidth))) + "\n")
	b.WriteString(line(fmt.Sprintf("DELAY:    %-15s %s",
		DelayDescription(snap.DelayAmount), ProgressBar(snap.DelayAmount, barWidth))) + "\n")
	b.WriteString(line(fmt.Sprintf("REVERB:   %3d%%%-12s %s",
		int(snap.ReverbAmount*100), "", ProgressBar(snap.ReverbAmount, barWidth))) + "\n")

	if v.Controls != "" {
		b.WriteString(line("") + "\n")
		b.WriteString(line(v.Controls) + "\n")
	}

	b.WriteString(rule("+", "+") + "\n")
	return b.String()
}

// Refresh clears the terminal and writes the rendered snapshot.
func (v View) Refresh(w io.Writer, snap engine.Snapshot) error {
	if _, err := io.WriteString(w, clearScreen+v.Render(snap)); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
