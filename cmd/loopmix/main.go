// SPDX-License-Identifier: EPL-2.0

// loopmix plays two directories of audio loops as a continuous
// crossfaded mix.
//
// Usage:
//
//	loopmix -ambient loops/ambient -rhythm loops/rhythm [-profile profile.yml] [-seed N]
//
// Keys: a/d move the crossfader, w/s the delay amount, e/r the reverb
// amount, q quits. Every audio file needs a .txt sidecar holding
// {"crossfade_ms": N}.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"golang.org/x/term"

	"github.com/ik5/loopmix"
	"github.com/ik5/loopmix/config"
	"github.com/ik5/loopmix/display"
	"github.com/ik5/loopmix/engine"
	"github.com/ik5/loopmix/library"
)

const knobStep = 0.05

func main() {
	ambientDir := flag.String("ambient", "", "directory of ambient loops")
	rhythmDir := flag.String("rhythm", "", "directory of rhythm loops")
	profilePath := flag.String("profile", "", "YAML profile file (optional)")
	seed := flag.Int64("seed", 0, "selection seed, 0 uses the clock")
	flag.Parse()

	if *ambientDir == "" || *rhythmDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*ambientDir, *rhythmDir, *profilePath, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(ambientDir, rhythmDir, profilePath string, seed int64) error {
	profile := config.Default()
	if profilePath != "" {
		var err error
		profile, err = config.Load(profilePath)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
	}

	lib := library.NewLibrary()
	nAmbient, err := lib.ScanDir(string(engine.CategoryAmbient), ambientDir)
	if err != nil {
		return err
	}
	nRhythm, err := lib.ScanDir(string(engine.CategoryRhythm), rhythmDir)
	if err != nil {
		return err
	}
	log.Printf("scanned %d ambient and %d rhythm loops", nAmbient, nRhythm)
	if nAmbient == 0 && nRhythm == 0 {
		return fmt.Errorf("no playable loops found")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var sel library.Selector
	if profile.Selection == "least-played" {
		sel = library.NewLeastPlayedSelector(lib, rng)
	} else {
		sel = library.NewRandomSelector(lib, rng)
	}

	provider := loopmix.NewSampleProvider(loopmix.DefaultRegistry(), sel, profile.SampleRate)
	k := newKnobs(0.5, 0, 0)

	eng, err := engine.New(profile.EngineConfig(), provider, k)
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   profile.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(eng)
	player.Play()
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	keys := make(chan byte)
	go readKeys(keys)

	view := display.View{Controls: "a/d balance  w/s delay  e/r reverb  q quit"}
	redraw := time.NewTicker(100 * time.Millisecond)
	defer redraw.Stop()

	for {
		select {
		case b := <-keys:
			switch b {
			case 'a':
				adjust(&k.balance, -knobStep)
			case 'd':
				adjust(&k.balance, knobStep)
			case 's':
				adjust(&k.delay, -knobStep)
			case 'w':
				adjust(&k.delay, knobStep)
			case 'e':
				adjust(&k.reverb, -knobStep)
			case 'r':
				adjust(&k.reverb, knobStep)
			case 'q', 3, 27: // q, ctrl-c, esc
				return nil
			}
		case <-redraw.C:
			if err := view.Refresh(crlfWriter{os.Stdout}, eng.Snapshot()); err != nil {
				return err
			}
		}
	}
}

// crlfWriter rewrites bare newlines as CR LF, which raw mode requires for
// the cursor to return to the line start.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	out := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// readKeys forwards single key presses from stdin. Raw mode delivers them
// unbuffered.
func readKeys(keys chan<- byte) {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			keys <- buf[0]
		}
	}
}
