package bank

import (
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DecodeFunc turns an encoded file into a PCM stream in the engine's
// format at the given sample rate. Decoding itself is entirely the
// engine's; this package only routes extensions to entry points.
type DecodeFunc func(sampleRate int, src io.Reader) (io.Reader, error)

// defaultDecoders maps the compiled-in container formats onto the engine's
// decoders. Optional codecs hook in through Bank.RegisterDecoder.
func defaultDecoders() map[string]DecodeFunc {
	return map[string]DecodeFunc{
		".wav": decodeWAV,
		".ogg": decodeVorbis,
		".oga": decodeVorbis,
		".mp3": decodeMP3,
	}
}

func decodeWAV(sampleRate int, src io.Reader) (io.Reader, error) {
	return wav.DecodeWithSampleRate(sampleRate, src)
}

func decodeVorbis(sampleRate int, src io.Reader) (io.Reader, error) {
	return vorbis.DecodeWithSampleRate(sampleRate, src)
}

func decodeMP3(sampleRate int, src io.Reader) (io.Reader, error) {
	return mp3.DecodeWithSampleRate(sampleRate, src)
}
