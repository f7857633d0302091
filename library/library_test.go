// SPDX-License-Identifier: EPL-2.0

package library

import (
	"os"
	"path/filepath"
	"testing"
)

// addLoop creates an empty audio file with an optional sidecar.
func addLoop(t *testing.T, dir, name, sidecar string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if sidecar != "" {
		if err := os.WriteFile(SidecarPath(path), []byte(sidecar), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	addLoop(t, dir, "b.wav", `{"crossfade_ms": 200}`)
	addLoop(t, dir, "a.mp3", `{"crossfade_ms": 100}`)
	addLoop(t, dir, "c.ogg", `{"crossfade_ms": 300}`)

	lib := NewLibrary()
	added, err := lib.ScanDir("ambient", dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if added != 3 {
		t.Errorf("ScanDir() added = %d, want 3", added)
	}

	entries := lib.Entries("ambient")
	if len(entries) != 3 {
		t.Fatalf("Entries() len = %d, want 3", len(entries))
	}

	// Sorted by file name for deterministic scans.
	wantIDs := []string{"a.mp3", "b.wav", "c.ogg"}
	wantMS := []int{100, 200, 300}
	for i := range wantIDs {
		if entries[i].ID != wantIDs[i] {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, wantIDs[i])
		}
		if entries[i].CrossfadeMS != wantMS[i] {
			t.Errorf("entries[%d].CrossfadeMS = %d, want %d", i, entries[i].CrossfadeMS, wantMS[i])
		}
	}
}

func TestScanDir_SkipsInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	addLoop(t, dir, "good.wav", `{"crossfade_ms": 100}`)
	addLoop(t, dir, "nosidecar.wav", "")
	addLoop(t, dir, "badsidecar.wav", "not json")
	addLoop(t, dir, "negative.wav", `{"crossfade_ms": -1}`)
	addLoop(t, dir, "notes.txt", "") // not an audio file

	lib := NewLibrary()
	added, err := lib.ScanDir("rhythm", dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if added != 1 {
		t.Errorf("ScanDir() added = %d, want 1 (invalid entries skipped)", added)
	}
	if got := lib.Count("rhythm"); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestScanDir_SkipsSubdirs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "nested.wav"), 0o755); err != nil {
		t.Fatal(err)
	}
	addLoop(t, dir, "top.wav", `{"crossfade_ms": 50}`)

	lib := NewLibrary()
	added, err := lib.ScanDir("ambient", dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if added != 1 {
		t.Errorf("ScanDir() added = %d, want 1", added)
	}
}

func TestScanDir_MissingDir(t *testing.T) {
	t.Parallel()

	lib := NewLibrary()
	if _, err := lib.ScanDir("ambient", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ScanDir() on a missing directory should fail")
	}
}

func TestScanDir_SeparateCategories(t *testing.T) {
	t.Parallel()

	ambientDir := t.TempDir()
	rhythmDir := t.TempDir()
	addLoop(t, ambientDir, "pad.wav", `{"crossfade_ms": 100}`)
	addLoop(t, rhythmDir, "beat.wav", `{"crossfade_ms": 100}`)
	addLoop(t, rhythmDir, "beat2.wav", `{"crossfade_ms": 100}`)

	lib := NewLibrary()
	if _, err := lib.ScanDir("ambient", ambientDir); err != nil {
		t.Fatal(err)
	}
	if _, err := lib.ScanDir("rhythm", rhythmDir); err != nil {
		t.Fatal(err)
	}

	if got := lib.Count("ambient"); got != 1 {
		t.Errorf("Count(ambient) = %d, want 1", got)
	}
	if got := lib.Count("rhythm"); got != 2 {
		t.Errorf("Count(rhythm) = %d, want 2", got)
	}
}

func TestScanDir_CaseInsensitiveExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	addLoop(t, dir, "loud.WAV", `{"crossfade_ms": 10}`)
	addLoop(t, dir, "tune.Mp3", `{"crossfade_ms": 10}`)

	lib := NewLibrary()
	added, err := lib.ScanDir("ambient", dir)
	if err != nil {
		t.Fatalf("ScanDir() error = %v", err)
	}
	if added != 2 {
		t.Errorf("ScanDir() added = %d, want 2", added)
	}
}
