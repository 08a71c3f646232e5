package system

import (
	"testing"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

func TestTrackSystemAttachesHandles(t *testing.T) {
	ctx := audio.NewContextWithDevice(&fakeDevice{})
	events := audio.NewEvents()
	w := ecs.NewWorld()
	sys := NewTrackSystem(ctx, events)

	ent := w.CreateEntity()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	events.AddTrack(audio.AddTrackEvent{Entity: ent, Config: audio.TrackConfig{Name: "music", Volume: 0.5}})
	events.AddTrack(audio.AddTrackEvent{Entity: ent, Config: audio.TrackConfig{Name: "drums", Parent: "music"}})
	events.AddTrack(audio.AddTrackEvent{Entity: dead, Config: audio.TrackConfig{Name: "lost"}})
	events.AddTrack(audio.AddTrackEvent{Entity: ent, Config: audio.TrackConfig{Name: "music"}})
	sys.Update(w)

	tracks, ok := ecs.Get(w, ent, component.TracksComponent.Kind())
	if !ok || len(tracks.Tracks) != 2 {
		t.Fatalf("expected 2 attached tracks, got %v", tracks)
	}
	if _, ok := ctx.Track("lost"); ok {
		t.Fatalf("dead-entity event must not create a track")
	}
	if ctx.NumTracks() != 2 {
		t.Fatalf("duplicate name must be dropped, got %d tracks", ctx.NumTracks())
	}

	drums, _ := tracks.ByName("drums")
	if drums.EffectiveVolume() != 0.5 {
		t.Fatalf("nested track should inherit parent volume")
	}
}
