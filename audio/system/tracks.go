package system

import (
	"log"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

// TrackSystem drains add-track events and attaches the created handles to
// their entities.
type TrackSystem struct {
	ctx    *audio.Context
	events *audio.Events
}

func NewTrackSystem(ctx *audio.Context, events *audio.Events) *TrackSystem {
	return &TrackSystem{ctx: ctx, events: events}
}

func (s *TrackSystem) Update(w *ecs.World) {
	for _, ev := range s.events.DrainAddTracks() {
		if !ev.Entity.Valid() || !w.IsAlive(ev.Entity) {
			log.Printf("audio: dropping add-track event for dead entity %v", ev.Entity)
			continue
		}
		track, err := s.ctx.AddTrack(ev.Config)
		if err != nil {
			log.Printf("audio: dropping add-track event: %v", err)
			continue
		}
		if tracks, ok := ecs.Get(w, ev.Entity, component.TracksComponent.Kind()); ok {
			tracks.Tracks = append(tracks.Tracks, track)
			continue
		}
		err = ecs.Add(w, ev.Entity, component.TracksComponent.Kind(),
			&component.Tracks{Tracks: []*audio.Track{track}})
		if err != nil {
			log.Printf("audio: attach track %q: %v", track.Name(), err)
		}
	}
}
