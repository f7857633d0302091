// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ik5/loopmix/formats/wav"
)

// Example demonstrates writing a WAV file and decoding it back.
func Example() {
	// Write a short stereo clip
	samples := []int16{100, -100, 200, -200, 300, -300}
	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 44100, 2, samples); err != nil {
		log.Fatal(err)
	}

	// Decode it back
	decoder := wav.Decoder{}
	src, err := decoder.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())

	out := make([]float32, len(samples))
	n, _ := src.ReadSamples(out)
	fmt.Printf("Read %d samples\n", n)

	// Output:
	// Sample Rate: 44100 Hz
	// Channels: 2
	// Read 6 samples
}

// ExampleWriteWAV16 shows how to write mono 16-bit PCM as a WAV file.
func ExampleWriteWAV16() {
	samples := []int16{0, 16384, -16384, 0}

	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 8000, 1, samples); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote %d bytes\n", buf.Len())

	// Output:
	// Wrote 52 bytes
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid
// WAV data.
func ExampleDecoder_Decode_errorHandling() {
	decoder := wav.Decoder{}

	invalidData := bytes.NewReader([]byte("not a wav file at all, sorry"))
	_, err := decoder.Decode(invalidData)
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Not a WAV file")
	}

	// Output:
	// Not a WAV file
}

// ExampleDecoder_Decode_streaming demonstrates reading WAV data in
// chunks.
func ExampleDecoder_Decode_streaming() {
	samples := make([]int16, 1000)
	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 8000, 1, samples); err != nil {
		log.Fatal(err)
	}

	decoder := wav.Decoder{}
	src, err := decoder.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Fatal(err)
	}

	chunk := make([]float32, 256)
	var total int
	for {
		n, err := src.ReadSamples(chunk)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Streamed %d samples\n", total)

	// Output:
	// Streamed 1000 samples
}
