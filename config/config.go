// SPDX-License-Identifier: EPL-2.0

// Package config loads engine profiles from YAML files. A profile makes
// every engine-wide constant explicit, so alternate setups (short buffers
// for tests, a linear balance curve, different reverb rooms) are a file
// away instead of a rebuild.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/loopmix/engine"
)

var (
	// ErrBadCurve indicates an unknown crossfade curve name.
	ErrBadCurve = errors.New(`curve must be "linear" or "power"`)

	// ErrBadSelection indicates an unknown selection policy name.
	ErrBadSelection = errors.New(`selection must be "random" or "least-played"`)

	// ErrBadValue indicates a numeric field outside its valid range.
	ErrBadValue = errors.New("profile value out of range")
)

// Profile is the on-disk engine configuration.
type Profile struct {
	SampleRate    int `yaml:"sample_rate"`
	BufferSeconds int `yaml:"buffer_seconds"`
	TickFrames    int `yaml:"tick_frames"`

	Curve         string  `yaml:"curve"`
	CurveExponent float64 `yaml:"curve_exponent"`

	ReverbRoomSize float64 `yaml:"reverb_room_size"`
	ReverbDamp     float64 `yaml:"reverb_damp"`

	Selection string `yaml:"selection"`
}

// Default returns the built-in profile: 44.1 kHz, 300 second buffers,
// power curve with exponent 1.5, the standard reverb room, random
// selection.
func Default() Profile {
	return Profile{
		SampleRate:     engine.DefaultSampleRate,
		BufferSeconds:  engine.DefaultBufferSeconds,
		TickFrames:     engine.DefaultTickFrames,
		Curve:          "power",
		CurveExponent:  engine.DefaultCurveExponent,
		ReverbRoomSize: 0.7,
		ReverbDamp:     0.5,
		Selection:      "random",
	}
}

// Load reads a YAML profile over the defaults, so a file only needs the
// fields it changes.
func Load(path string) (Profile, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("%w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks every field range.
func (p Profile) Validate() error {
	if p.SampleRate < 8000 {
		return fmt.Errorf("%w: sample_rate %d", ErrBadValue, p.SampleRate)
	}
	if p.BufferSeconds < 1 {
		return fmt.Errorf("%w: buffer_seconds %d", ErrBadValue, p.BufferSeconds)
	}
	if p.TickFrames < 1 {
		return fmt.Errorf("%w: tick_frames %d", ErrBadValue, p.TickFrames)
	}
	if p.Curve != "linear" && p.Curve != "power" {
		return ErrBadCurve
	}
	if p.CurveExponent <= 0 {
		return fmt.Errorf("%w: curve_exponent %f", ErrBadValue, p.CurveExponent)
	}
	if p.ReverbRoomSize < 0 || p.ReverbRoomSize > 0.98 {
		return fmt.Errorf("%w: reverb_room_size %f", ErrBadValue, p.ReverbRoomSize)
	}
	if p.ReverbDamp < 0 || p.ReverbDamp > 0.99 {
		return fmt.Errorf("%w: reverb_damp %f", ErrBadValue, p.ReverbDamp)
	}
	if p.Selection != "random" && p.Selection != "least-played" {
		return ErrBadSelection
	}
	return nil
}

// EngineConfig maps the profile onto the engine's configuration struct.
func (p Profile) EngineConfig() engine.Config {
	curve := engine.CurvePower
	if p.Curve == "linear" {
		curve = engine.CurveLinear
	}
	return engine.Config{
		SampleRate:     p.SampleRate,
		BufferSeconds:  p.BufferSeconds,
		TickFrames:     p.TickFrames,
		Curve:          curve,
		CurveExponent:  p.CurveExponent,
		ReverbRoomSize: p.ReverbRoomSize,
		ReverbDamp:     p.ReverbDamp,
	}
}
