package bank

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

func TestReloadMatchesPathBoundaries(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/beep.wav":  {Data: wavFile(44100, 16)},
		"sounds/xbeep.wav": {Data: wavFile(44100, 16)},
	}
	b := New(fsys, 44100)

	beep, err := b.Load("sounds/beep.wav")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	settle(t, b, beep)
	if !beep.Ready() {
		t.Fatalf("expected ready, got %v: %v", beep.State(), beep.Err())
	}
	origDur := beep.Sound().Duration()

	// A change to a file whose name merely ends in this asset's path must
	// not touch it.
	b.reload("assets/sounds/xbeep.wav")
	if beep.State() != AssetReady {
		t.Fatalf("unrelated change flipped the asset to %v", beep.State())
	}

	fsys["sounds/beep.wav"].Data = wavFile(44100, 64)
	b.reload("assets/sounds/beep.wav")
	if beep.State() != AssetLoading {
		t.Fatalf("matching change should re-decode, got %v", beep.State())
	}

	settle(t, b, beep)
	if !beep.Ready() {
		t.Fatalf("reload failed: %v", beep.Err())
	}
	longer := beep.Sound()
	if longer == nil {
		t.Fatalf("reloaded sound missing")
	}
	if longer.Duration() <= origDur {
		t.Fatalf("reload should pick up the longer file, got %v <= %v", longer.Duration(), origDur)
	}
}

func TestPollDrainsWatcherQueues(t *testing.T) {
	fsys := fstest.MapFS{
		"beep.wav": {Data: wavFile(44100, 16)},
	}
	b := New(fsys, 44100)
	beep, err := b.Load("beep.wav")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	settle(t, b, beep)

	// Stand in for a running watcher; Poll only reads the channels.
	b.watcher = &Watcher{
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	b.watcher.Events <- "assets/beep.wav"
	b.watcher.Errors <- errors.New("event overflow")

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	b.Poll()
	if beep.State() != AssetLoading {
		t.Fatalf("queued change should re-decode the asset, got %v", beep.State())
	}
	if !strings.Contains(logged.String(), "event overflow") {
		t.Fatalf("watcher error should be logged, got %q", logged.String())
	}

	settle(t, b, beep)
	if !beep.Ready() {
		t.Fatalf("reload failed: %v", beep.Err())
	}
}
