// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestWriteWAV16_Mono(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("output length = %d, want %d", len(data), 44+len(samples)*2)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}

	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 8000 {
		t.Errorf("sample rate = %d, want 8000", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}

	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2 : 46+i*2]))
		if got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWriteWAV16_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 2 {
		t.Errorf("channels = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 44100*2*2 {
		t.Errorf("byte rate = %d, want %d", got, 44100*2*2)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 4 {
		t.Errorf("block align = %d, want 4", got)
	}
}

func TestWriteWAV16_BadChannels(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(io.Discard, 44100, 3, []int16{1, 2, 3})
	if !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("WriteWAV16() error = %v, want ErrUnsupportedWavLayout", err)
	}
}

func TestWriteWAV16_PartialFrame(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(io.Discard, 44100, 2, []int16{1, 2, 3})
	if !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("WriteWAV16() error = %v, want ErrUnsupportedWavLayout", err)
	}
}

func TestWriteWAV16_Empty(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 44100, 1, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if buf.Len() != 44 {
		t.Errorf("output length = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 8192, -8192, 16384, -16384, 0}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 22050, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	out := make([]float32, len(samples))
	n, err := src.ReadSamples(out)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		want := float32(s) / 32768.0
		if diff := out[i] - want; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("sample %d = %v, want %v", i, out[i], want)
		}
	}
}
