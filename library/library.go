// SPDX-License-Identifier: EPL-2.0

package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one selectable sample: its audio file plus the seam-crossfade
// duration from its sidecar config.
type Entry struct {
	// ID is the base file name, used for display and bookkeeping.
	ID string

	// Path is the audio file path.
	Path string

	// CrossfadeMS is the seam-crossfade duration in milliseconds.
	CrossfadeMS int
}

// audioExts are the extensions the format decoders understand.
var audioExts = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".ogg":  true,
	".aiff": true,
	".aif":  true,
}

// Library holds the scanned sample pools, one per category.
type Library struct {
	pools map[string][]Entry
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{pools: make(map[string][]Entry)}
}

// ScanDir scans a directory into a category and returns how many entries
// were added. Audio files without a valid sidecar are skipped, not
// reported as errors; a missing directory is an error. Entries are kept
// sorted by file name so scans are deterministic.
func (l *Library) ScanDir(category, dir string) (int, error) {
	names, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", dir, err)
	}

	added := 0
	for _, de := range names {
		if de.IsDir() {
			continue
		}
		if !audioExts[strings.ToLower(filepath.Ext(de.Name()))] {
			continue
		}

		path := filepath.Join(dir, de.Name())
		crossfadeMS, err := ReadSidecar(path)
		if err != nil {
			continue
		}

		l.pools[category] = append(l.pools[category], Entry{
			ID:          de.Name(),
			Path:        path,
			CrossfadeMS: crossfadeMS,
		})
		added++
	}

	sort.Slice(l.pools[category], func(i, j int) bool {
		return l.pools[category][i].ID < l.pools[category][j].ID
	})
	return added, nil
}

// Entries returns the pool of a category. The returned slice must not be
// mutated.
func (l *Library) Entries(category string) []Entry {
	return l.pools[category]
}

// Count returns the number of selectable entries in a category.
func (l *Library) Count(category string) int {
	return len(l.pools[category])
}
