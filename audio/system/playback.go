package system

import (
	"fmt"
	"log"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

// PlaybackSystem drains the play queue once per tick, in arrival order,
// resolves each event to a track, and attaches the resulting instance to
// the target entity. A failing event is logged and dropped and never blocks
// the rest of the batch. Events in one tick start in order, but relative
// start alignment is whatever the device mixer gives.
type PlaybackSystem struct {
	ctx    *audio.Context
	events *audio.Events
}

func NewPlaybackSystem(ctx *audio.Context, events *audio.Events) *PlaybackSystem {
	return &PlaybackSystem{ctx: ctx, events: events}
}

func (s *PlaybackSystem) Update(w *ecs.World) {
	for _, ev := range s.events.DrainPlaySounds() {
		if err := s.playOne(w, ev); err != nil {
			log.Printf("audio: dropping play event: %v", err)
		}
	}
}

func (s *PlaybackSystem) playOne(w *ecs.World, ev audio.PlaySoundEvent) error {
	track, err := resolveTrack(w, s.ctx, ev.Track, ev.TrackName)
	if err != nil {
		return err
	}
	inst, err := s.ctx.Play(ev.Sound, track, ev.Settings)
	if err != nil {
		return err
	}
	target := ev.Target
	if target.Valid() {
		// The sound keeps playing on its track; only the handle is lost.
		if !w.IsAlive(target) {
			return fmt.Errorf("target entity %v is not alive, handle dropped", target)
		}
	} else {
		target = w.CreateEntity()
	}
	if sounds, ok := ecs.Get(w, target, component.PlayingSoundsComponent.Kind()); ok {
		sounds.Sounds = append(sounds.Sounds, inst)
		return nil
	}
	return ecs.Add(w, target, component.PlayingSoundsComponent.Kind(),
		&component.PlayingSounds{Sounds: []*audio.Instance{inst}})
}

// resolveTrack maps an event's track reference onto exactly one track. An
// unset reference is the main track; a set reference that does not resolve
// fails instead of falling back.
func resolveTrack(w *ecs.World, ctx *audio.Context, ent ecs.Entity, name string) (*audio.Track, error) {
	if !ent.Valid() {
		return ctx.MainTrack(), nil
	}
	tracks, ok := ecs.Get(w, ent, component.TracksComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: entity %v has no tracks", audio.ErrTrackNotFound, ent)
	}
	track, ok := tracks.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: entity %v has no track %q", audio.ErrTrackNotFound, ent, name)
	}
	return track, nil
}
