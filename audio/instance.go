package audio

import (
	"log"
	"time"
)

// PlaybackState mirrors the engine's internal playback states. This package
// only reads them; all transitions happen on the device side.
type PlaybackState int

const (
	PlaybackPlaying PlaybackState = iota
	PlaybackPaused
	PlaybackStopped
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackPlaying:
		return "playing"
	case PlaybackPaused:
		return "paused"
	case PlaybackStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Instance is the handle to one active playback. Control calls are
// non-blocking requests; the device applies them on its next processing
// block. An instance that finished naturally reports PlaybackStopped and
// turns further control calls into logged no-ops.
type Instance struct {
	player  Player
	track   *Track
	volume  float64
	paused  bool
	stopped bool
}

func newInstance(player Player, tr *Track, volume float64) *Instance {
	inst := &Instance{player: player, track: tr, volume: volume}
	inst.applyVolume()
	player.Play()
	return inst
}

func (i *Instance) State() PlaybackState {
	switch {
	case i.stopped:
		return PlaybackStopped
	case i.paused:
		return PlaybackPaused
	case i.player.IsPlaying():
		return PlaybackPlaying
	default:
		// The source ran out on the device side.
		return PlaybackStopped
	}
}

func (i *Instance) Track() *Track {
	return i.track
}

func (i *Instance) Pause() {
	if i.ended("pause") {
		return
	}
	i.player.Pause()
	i.paused = true
}

func (i *Instance) Resume() {
	if i.ended("resume") {
		return
	}
	i.player.Play()
	i.paused = false
}

// Stop ends playback and releases the player. Stopping an instance that
// already finished is a no-op, not an error.
func (i *Instance) Stop() error {
	if i.stopped {
		return nil
	}
	i.stopped = true
	i.paused = false
	err := i.player.Close()
	i.track.detach(i)
	return err
}

func (i *Instance) Seek(offset time.Duration) error {
	if i.ended("seek") {
		return nil
	}
	return i.player.SetPosition(offset)
}

func (i *Instance) Position() time.Duration {
	if i.stopped {
		return 0
	}
	return i.player.Position()
}

// Volume returns the instance's own volume, before track routing.
func (i *Instance) Volume() float64 {
	return i.volume
}

func (i *Instance) SetVolume(v float64) {
	if i.ended("set volume") {
		return
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	i.volume = v
	i.applyVolume()
}

func (i *Instance) applyVolume() {
	i.player.SetVolume(i.volume * i.track.EffectiveVolume())
}

func (i *Instance) ended(op string) bool {
	if i.State() != PlaybackStopped {
		return false
	}
	log.Printf("audio: %s on a finished instance is a no-op", op)
	return true
}
