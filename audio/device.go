package audio

import (
	"fmt"
	"io"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player is the control surface of one playing stream. The ebiten audio
// player implements it; tests substitute fakes.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Volume() float64
	SetPosition(offset time.Duration) error
	Position() time.Duration
	Close() error
}

// Device creates players from PCM streams. The production implementation
// wraps the ebiten audio context; NewContextWithDevice accepts anything
// else, which keeps every system testable without an audio device.
type Device interface {
	SampleRate() int
	NewPlayer(src io.Reader) (Player, error)
}

type ebitenDevice struct {
	ctx *eaudio.Context
}

func (d *ebitenDevice) SampleRate() int {
	return d.ctx.SampleRate()
}

func (d *ebitenDevice) NewPlayer(src io.Reader) (Player, error) {
	return d.ctx.NewPlayer(src)
}

// openDevice opens the process-wide ebiten audio context, or reuses it when
// an earlier caller already opened one at the same rate.
func openDevice(sampleRate int) (Device, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid sample rate %d", ErrDeviceInit, sampleRate)
	}
	if ctx := eaudio.CurrentContext(); ctx != nil {
		if ctx.SampleRate() != sampleRate {
			return nil, fmt.Errorf("%w: context already open at %d Hz", ErrDeviceInit, ctx.SampleRate())
		}
		return &ebitenDevice{ctx: ctx}, nil
	}
	return &ebitenDevice{ctx: eaudio.NewContext(sampleRate)}, nil
}
