package soundscape

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/audio/system"
	"github.com/milk9111/soundscape/bank"
	"github.com/milk9111/soundscape/ecs"
)

const defaultSampleRate = 44100

// SystemRegistry receives the plugin's systems at startup, in tick order.
// *ecs.Scheduler satisfies it.
type SystemRegistry interface {
	Add(ecs.System)
}

// Config controls Register. The zero value opens the real audio device at
// 44100 Hz with no bank.
type Config struct {
	// SampleRate of the device context. Zero means 44100.
	SampleRate int
	// Device overrides the real audio device, for tests and headless hosts.
	Device audio.Device
	// FS is where the bank reads sound files. Nil disables asset loading.
	FS fs.FS
	// Manifest is an optional path within FS declaring track routing and
	// sounds to preload.
	Manifest string
	// TickRate is the host ticks per second, used to step clocks. Zero
	// means 60.
	TickRate int
	// Debug registers the periodic counter logger.
	Debug bool
}

// Plugin owns the context, bank, and event queues created by Register.
type Plugin struct {
	Context *audio.Context
	Bank    *bank.Bank
	Events  *audio.Events

	tracks map[string]ecs.Entity
	sounds map[string]*bank.Asset
}

// Register creates the audio context and registers every plugin system with
// reg in tick order: bank, tracks, playback, clocks, cleanup, debug. A
// device failure is fatal and aborts registration. Nothing registers
// implicitly; call this from startup code with the registry the host runs.
func Register(reg SystemRegistry, w *ecs.World, cfg Config) (*Plugin, error) {
	sampleRate := cfg.SampleRate
	if sampleRate == 0 {
		sampleRate = defaultSampleRate
	}

	var ctx *audio.Context
	if cfg.Device != nil {
		ctx = audio.NewContextWithDevice(cfg.Device)
	} else {
		var err error
		ctx, err = audio.NewContext(sampleRate)
		if err != nil {
			return nil, err
		}
	}

	p := &Plugin{
		Context: ctx,
		Events:  audio.NewEvents(),
		tracks:  make(map[string]ecs.Entity),
		sounds:  make(map[string]*bank.Asset),
	}
	if cfg.FS != nil {
		p.Bank = bank.New(cfg.FS, ctx.SampleRate())
		reg.Add(system.NewBankSystem(p.Bank))
	}
	reg.Add(system.NewTrackSystem(ctx, p.Events))
	reg.Add(system.NewPlaybackSystem(ctx, p.Events))
	reg.Add(system.NewClockSystem(ctx, p.Events, cfg.TickRate))
	reg.Add(system.NewCleanupSystem())
	if cfg.Debug {
		reg.Add(system.NewDebugSystem(ctx, cfg.TickRate))
	}

	if cfg.Manifest != "" {
		if p.Bank == nil {
			_ = ctx.Close()
			return nil, fmt.Errorf("soundscape: manifest %q needs Config.FS", cfg.Manifest)
		}
		if err := p.applyManifest(w, cfg.FS, cfg.Manifest); err != nil {
			_ = ctx.Close()
			return nil, err
		}
	}
	return p, nil
}

// applyManifest creates one entity per declared track and preloads the
// declared sounds. Manifest problems are startup configuration errors, so
// they fail Register instead of being logged and dropped.
func (p *Plugin) applyManifest(w *ecs.World, fsys fs.FS, filename string) error {
	m, err := bank.LoadManifest(fsys, filename)
	if err != nil {
		return err
	}
	for _, cfg := range m.Tracks {
		track, err := p.Context.AddTrack(cfg)
		if err != nil {
			return fmt.Errorf("soundscape: manifest track %q: %w", cfg.Name, err)
		}
		ent := w.CreateEntity()
		err = ecs.Add(w, ent, component.TracksComponent.Kind(),
			&component.Tracks{Tracks: []*audio.Track{track}})
		if err != nil {
			return fmt.Errorf("soundscape: manifest track %q: %w", cfg.Name, err)
		}
		p.tracks[cfg.Name] = ent
	}
	for _, spec := range m.Sounds {
		asset, err := p.Bank.LoadWithVolume(spec.File, spec.Volume)
		if err != nil {
			return fmt.Errorf("soundscape: manifest sound %q: %w", spec.File, err)
		}
		name := spec.Name
		if name == "" {
			name = spec.File
		}
		p.sounds[name] = asset
	}
	return nil
}

// Track returns the entity created for a manifest track.
func (p *Plugin) Track(name string) (ecs.Entity, bool) {
	ent, ok := p.tracks[name]
	return ent, ok
}

// Sound returns a manifest-preloaded asset by name.
func (p *Plugin) Sound(name string) (*bank.Asset, bool) {
	asset, ok := p.sounds[name]
	return asset, ok
}

// SoundNames lists the manifest-preloaded sound names, sorted.
func (p *Plugin) SoundNames() []string {
	names := make([]string, 0, len(p.sounds))
	for name := range p.sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close stops every playing instance and releases the device handle.
func (p *Plugin) Close() error {
	if p.Bank != nil {
		_ = p.Bank.CloseWatcher()
	}
	return p.Context.Close()
}
