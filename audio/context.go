package audio

import (
	"fmt"
	"strings"
)

// MainTrackName is the reserved name of the always-present default track.
const MainTrackName = "main"

// Context owns the handle to the audio engine plus every track, clock, and
// playing instance created through it. One context per process; the host
// scheduler serializes access, so Context does no locking of its own.
type Context struct {
	dev    Device
	main   *Track
	tracks map[string]*Track
	clocks []*Clock
	closed bool
}

// NewContext opens the audio device. A device failure here is fatal to
// plugin registration.
func NewContext(sampleRate int) (*Context, error) {
	dev, err := openDevice(sampleRate)
	if err != nil {
		return nil, err
	}
	return NewContextWithDevice(dev), nil
}

// NewContextWithDevice builds a context over a caller-supplied device, for
// tests and headless hosts.
func NewContextWithDevice(dev Device) *Context {
	c := &Context{dev: dev, tracks: make(map[string]*Track)}
	c.main = &Track{name: MainTrackName, volume: 1, ctx: c}
	return c
}

func (c *Context) SampleRate() int {
	return c.dev.SampleRate()
}

// MainTrack returns the default track that receives output unless a play
// request names another one.
func (c *Context) MainTrack() *Track {
	return c.main
}

// Track looks up a sub-track by name. The main track is addressable by
// MainTrackName.
func (c *Context) Track(name string) (*Track, bool) {
	if name == MainTrackName {
		return c.main, true
	}
	t, ok := c.tracks[name]
	return t, ok
}

// AddTrack creates a named sub-track. Tracks are only ever created
// explicitly; an empty parent routes into the main track.
func (c *Context) AddTrack(cfg TrackConfig) (*Track, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, fmt.Errorf("audio: track name is empty")
	}
	if name == MainTrackName {
		return nil, fmt.Errorf("%w: %q", ErrTrackExists, name)
	}
	if _, ok := c.tracks[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrTrackExists, name)
	}
	parent := c.main
	if p := strings.TrimSpace(cfg.Parent); p != "" && p != MainTrackName {
		existing, ok := c.tracks[p]
		if !ok {
			return nil, fmt.Errorf("%w: parent %q", ErrTrackNotFound, p)
		}
		parent = existing
	}
	t := &Track{name: name, volume: clampVolume(cfg.Volume), parent: parent, ctx: c}
	c.tracks[name] = t
	return t, nil
}

// AddClock creates a tick clock. Clocks advance on the host tick via
// AdvanceClocks.
func (c *Context) AddClock(speed ClockSpeed) (*Clock, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	if speed <= 0 {
		return nil, fmt.Errorf("audio: clock speed must be positive, got %v", float64(speed))
	}
	clock := &Clock{speed: speed}
	c.clocks = append(c.clocks, clock)
	return clock, nil
}

// Play starts sound on the given track, main when nil. The returned handle
// controls that one instance independently of any other instance of the
// same sound.
func (c *Context) Play(sound Playable, tr *Track, set PlaySettings) (*Instance, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	if sound == nil {
		return nil, ErrNilSound
	}
	if tr == nil {
		tr = c.main
	}
	inst, err := sound.play(c.dev, tr, set)
	if err != nil {
		return nil, err
	}
	tr.attach(inst)
	return inst, nil
}

// AdvanceClocks moves every running clock forward by dt seconds.
func (c *Context) AdvanceClocks(dt float64) {
	for _, clock := range c.clocks {
		clock.advance(dt)
	}
}

// NumTracks reports the number of sub-tracks, excluding main.
func (c *Context) NumTracks() int {
	return len(c.tracks)
}

func (c *Context) NumClocks() int {
	return len(c.clocks)
}

// NumPlaying counts instances that have not yet finished, on any track.
func (c *Context) NumPlaying() int {
	n := c.main.numLive()
	for _, t := range c.tracks {
		n += t.numLive()
	}
	return n
}

// Close stops every instance and releases the device handle. It is
// idempotent; play and track operations after Close fail with
// ErrContextClosed.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.main.stopAll()
	for _, t := range c.tracks {
		if stopErr := t.stopAll(); err == nil {
			err = stopErr
		}
	}
	return err
}

func clampVolume(v float64) float64 {
	if v <= 0 {
		return 1
	}
	if v > 1 {
		return 1
	}
	return v
}
