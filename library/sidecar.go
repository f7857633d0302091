// SPDX-License-Identifier: EPL-2.0

package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sidecarConfig mirrors the sidecar file layout. Only crossfade_ms is
// consumed by the core; other keys are ignored.
type sidecarConfig struct {
	CrossfadeMS *int `json:"crossfade_ms"`
}

// SidecarPath returns the sidecar config path for an audio file: the same
// name with a .txt extension.
func SidecarPath(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return strings.TrimSuffix(audioPath, ext) + ".txt"
}

// ReadSidecar reads the seam-crossfade duration in milliseconds for an
// audio file. A missing sidecar yields ErrNoSidecar; an unparsable one or
// one without a non-negative crossfade_ms yields ErrBadSidecar.
func ReadSidecar(audioPath string) (int, error) {
	data, err := os.ReadFile(SidecarPath(audioPath))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNoSidecar
		}
		return 0, fmt.Errorf("%w", err)
	}

	var cfg sidecarConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadSidecar, err)
	}
	if cfg.CrossfadeMS == nil || *cfg.CrossfadeMS < 0 {
		return 0, ErrBadSidecar
	}
	return *cfg.CrossfadeMS, nil
}
