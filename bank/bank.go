package bank

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/milk9111/soundscape/audio"
)

var (
	ErrUnsupportedFormat = errors.New("bank: unsupported format")
	ErrDecode            = errors.New("bank: decode failed")
)

// AssetState is where an asset is in its load lifecycle.
type AssetState int

const (
	AssetLoading AssetState = iota
	AssetReady
	AssetFailed
)

func (s AssetState) String() string {
	switch s {
	case AssetLoading:
		return "loading"
	case AssetReady:
		return "ready"
	case AssetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Asset is one sound in the bank's table. Its state only moves on the host
// tick, inside Poll; a failed asset never becomes ready and is never
// retried automatically.
type Asset struct {
	path   string
	volume float64
	state  AssetState
	sound  *audio.StaticSound
	err    error
}

func (a *Asset) Path() string {
	return a.path
}

func (a *Asset) State() AssetState {
	return a.state
}

func (a *Asset) Ready() bool {
	return a.state == AssetReady
}

// Err returns the load failure, if any.
func (a *Asset) Err() error {
	return a.err
}

// Sound returns the decoded sound once the asset is ready, else nil.
func (a *Asset) Sound() *audio.StaticSound {
	if a.state != AssetReady {
		return nil
	}
	return a.sound
}

type loadResult struct {
	asset *Asset
	sound *audio.StaticSound
	err   error
}

// Bank is a de-duplicated table of sound assets over an fs.FS. Decoding
// runs on its own goroutine per load; results apply on the host tick via
// Poll, so asset state never changes out from under a system.
type Bank struct {
	fsys       fs.FS
	sampleRate int
	decoders   map[string]DecodeFunc
	assets     map[string]*Asset
	results    chan loadResult
	watcher    *Watcher
}

func New(fsys fs.FS, sampleRate int) *Bank {
	return &Bank{
		fsys:       fsys,
		sampleRate: sampleRate,
		decoders:   defaultDecoders(),
		assets:     make(map[string]*Asset),
		results:    make(chan loadResult, 32),
	}
}

// RegisterDecoder maps a file extension (".flac") onto a decoder,
// replacing any built-in mapping for that extension.
func (b *Bank) RegisterDecoder(ext string, dec DecodeFunc) {
	if ext == "" || dec == nil {
		return
	}
	b.decoders[strings.ToLower(ext)] = dec
}

// Load begins loading a sound and returns its asset immediately. Loading
// the same path twice returns the same asset without decoding again. An
// extension with no registered decoder fails with ErrUnsupportedFormat and
// the asset never enters the table.
func (b *Bank) Load(name string) (*Asset, error) {
	return b.LoadWithVolume(name, 0)
}

// LoadWithVolume is Load with a default volume for the decoded sound in
// (0, 1]; zero means full volume. The volume of an already loaded asset is
// left alone.
func (b *Bank) LoadWithVolume(name string, volume float64) (*Asset, error) {
	clean := cleanSoundPath(name)
	if clean == "" {
		return nil, fmt.Errorf("bank: empty sound path %q", name)
	}
	if existing, ok := b.assets[clean]; ok {
		return existing, nil
	}
	ext := strings.ToLower(path.Ext(clean))
	dec, ok := b.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	asset := &Asset{path: clean, volume: volume, state: AssetLoading}
	b.assets[clean] = asset
	go b.decode(asset, dec)
	return asset, nil
}

// Asset returns a previously requested asset by path.
func (b *Bank) Asset(name string) (*Asset, bool) {
	asset, ok := b.assets[cleanSoundPath(name)]
	return asset, ok
}

func (b *Bank) Len() int {
	return len(b.assets)
}

// Poll applies finished loads and queued file-change reloads. It returns
// the assets that changed state this tick and never blocks; the plugin's
// bank system calls it once per tick.
func (b *Bank) Poll() []*Asset {
	b.drainWatcher()
	var done []*Asset
	for {
		select {
		case res := <-b.results:
			asset := res.asset
			if res.err != nil {
				asset.state = AssetFailed
				asset.err = res.err
				asset.sound = nil
			} else {
				asset.state = AssetReady
				asset.err = nil
				asset.sound = res.sound
			}
			done = append(done, asset)
		default:
			return done
		}
	}
}

func (b *Bank) decode(asset *Asset, dec DecodeFunc) {
	sound, err := b.decodeFile(asset.path, asset.volume, dec)
	b.results <- loadResult{asset: asset, sound: sound, err: err}
}

func (b *Bank) decodeFile(name string, volume float64, dec DecodeFunc) (*audio.StaticSound, error) {
	f, err := b.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("bank: open %q: %w", name, err)
	}
	defer f.Close()
	stream, err := dec(b.sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecode, name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecode, name, err)
	}
	return audio.NewStaticSound(name, pcm, b.sampleRate, volume), nil
}

// cleanSoundPath normalizes a caller path to the bank's fs.FS root.
func cleanSoundPath(name string) string {
	s := strings.TrimPrefix(path.Clean(strings.ReplaceAll(name, "\\", "/")), "/")
	if s == "." {
		return ""
	}
	return s
}
