// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into a single slice of interleaved samples, reading
// bufSize samples at a time. Loop material is short, so loading a whole
// file before rendering is the intended use.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize < 1 {
		bufSize = 4096
	}

	out := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return out, nil
		}
	}
}
