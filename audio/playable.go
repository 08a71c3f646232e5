package audio

import (
	"bytes"
	"fmt"
	"io"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// bytesPerFrame is the size of one frame in the engine's stream format,
// 16-bit little-endian stereo.
const bytesPerFrame = 4

// PlaySettings carries per-play options. The zero value plays the sound at
// its own default volume, once.
type PlaySettings struct {
	// Volume in (0, 1]. Zero means the sound's default.
	Volume float64
	// Loop restarts the source from the beginning when it runs out.
	Loop bool
}

// Playable is the uniform play capability. Exactly two kinds implement it:
// StaticSound, preloaded decoded data, and StreamSource, a caller-supplied
// stream in the engine's PCM format. The set is closed; the engine exposes
// no other source kinds.
type Playable interface {
	play(dev Device, tr *Track, set PlaySettings) (*Instance, error)
}

// StaticSound is immutable decoded audio. Many instances may play one
// StaticSound at the same time; each gets its own reader over the shared
// PCM buffer.
type StaticSound struct {
	name       string
	pcm        []byte
	sampleRate int
	volume     float64
}

// NewStaticSound wraps decoded PCM in the engine's stream format. volume is
// the sound's default in (0, 1]; zero means full volume.
func NewStaticSound(name string, pcm []byte, sampleRate int, volume float64) *StaticSound {
	return &StaticSound{
		name:       name,
		pcm:        pcm,
		sampleRate: sampleRate,
		volume:     clampVolume(volume),
	}
}

func (s *StaticSound) Name() string {
	return s.name
}

func (s *StaticSound) DefaultVolume() float64 {
	return s.volume
}

func (s *StaticSound) Duration() time.Duration {
	if s.sampleRate <= 0 {
		return 0
	}
	frames := len(s.pcm) / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(s.sampleRate)
}

func (s *StaticSound) play(dev Device, tr *Track, set PlaySettings) (*Instance, error) {
	var src io.Reader = bytes.NewReader(s.pcm)
	if set.Loop {
		src = eaudio.NewInfiniteLoop(bytes.NewReader(s.pcm), int64(len(s.pcm)))
	}
	player, err := dev.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("audio: play %q: %w", s.name, err)
	}
	volume := set.Volume
	if volume <= 0 {
		volume = s.volume
	}
	return newInstance(player, tr, volume), nil
}

// StreamSource adapts a caller-owned stream to the play capability. The
// stream yields PCM in the engine's format (16-bit little-endian stereo at
// the context sample rate) and may be infinite; looping is the stream's own
// business.
type StreamSource struct {
	// Name labels the source in logs.
	Name string
	// Source is read by the device's own goroutine until it returns io.EOF.
	Source io.Reader
	// Volume in (0, 1]; zero means full volume.
	Volume float64
}

func (s *StreamSource) play(dev Device, tr *Track, set PlaySettings) (*Instance, error) {
	if s.Source == nil {
		return nil, fmt.Errorf("%w: stream source %q has no reader", ErrNilSound, s.Name)
	}
	player, err := dev.NewPlayer(s.Source)
	if err != nil {
		return nil, fmt.Errorf("audio: play stream %q: %w", s.Name, err)
	}
	volume := set.Volume
	if volume <= 0 {
		volume = clampVolume(s.Volume)
	}
	return newInstance(player, tr, volume), nil
}
