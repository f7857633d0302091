// SPDX-License-Identifier: EPL-2.0

package library

import "errors"

var (
	// ErrEmptyPool indicates a category with no selectable entries.
	ErrEmptyPool = errors.New("no selectable samples in category")

	// ErrNoSidecar indicates an audio file without a sidecar config.
	ErrNoSidecar = errors.New("no sidecar config for sample")

	// ErrBadSidecar indicates a sidecar config that could not be parsed
	// or that carries no usable crossfade duration.
	ErrBadSidecar = errors.New("invalid sidecar config")
)
