package system

import (
	"io"
	"time"

	"github.com/milk9111/soundscape/audio"
)

type fakePlayer struct {
	playing bool
	closed  bool
	volume  float64
	pos     time.Duration
}

func (p *fakePlayer) Play() {
	if !p.closed {
		p.playing = true
	}
}

func (p *fakePlayer) Pause() {
	p.playing = false
}

func (p *fakePlayer) IsPlaying() bool {
	return p.playing
}

func (p *fakePlayer) SetVolume(v float64) {
	p.volume = v
}

func (p *fakePlayer) Volume() float64 {
	return p.volume
}

func (p *fakePlayer) SetPosition(d time.Duration) error {
	p.pos = d
	return nil
}

func (p *fakePlayer) Position() time.Duration {
	return p.pos
}

func (p *fakePlayer) Close() error {
	p.closed = true
	p.playing = false
	return nil
}

func (p *fakePlayer) finish() {
	p.playing = false
}

type fakeDevice struct {
	players []*fakePlayer
}

func (d *fakeDevice) SampleRate() int {
	return 44100
}

func (d *fakeDevice) NewPlayer(_ io.Reader) (audio.Player, error) {
	p := &fakePlayer{}
	d.players = append(d.players, p)
	return p, nil
}

func beep(name string) *audio.StaticSound {
	return audio.NewStaticSound(name, make([]byte, 256), 44100, 0)
}
