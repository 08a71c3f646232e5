package system

import (
	"testing"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

func TestCleanupPrunesFinishedInstances(t *testing.T) {
	dev := &fakeDevice{}
	ctx := audio.NewContextWithDevice(dev)
	events := audio.NewEvents()
	w := ecs.NewWorld()
	playback := NewPlaybackSystem(ctx, events)
	cleanup := NewCleanupSystem()

	target := w.CreateEntity()
	events.PlaySound(audio.PlaySoundEvent{Sound: beep("a"), Target: target})
	events.PlaySound(audio.PlaySoundEvent{Sound: beep("b"), Target: target})
	playback.Update(w)

	cleanup.Update(w)
	sounds, ok := ecs.Get(w, target, component.PlayingSoundsComponent.Kind())
	if !ok || len(sounds.Sounds) != 2 {
		t.Fatalf("live instances must survive cleanup")
	}

	dev.players[0].finish()
	cleanup.Update(w)
	sounds, ok = ecs.Get(w, target, component.PlayingSoundsComponent.Kind())
	if !ok || len(sounds.Sounds) != 1 {
		t.Fatalf("expected one instance left, got %v", sounds)
	}
	if !dev.players[0].closed {
		t.Fatalf("pruning should release the player")
	}
	if ctx.NumPlaying() != 1 {
		t.Fatalf("pruned instance should detach from its track")
	}

	dev.players[1].finish()
	cleanup.Update(w)
	if ecs.Has(w, target, component.PlayingSoundsComponent.Kind()) {
		t.Fatalf("empty component should be removed")
	}
	if w.IsAlive(target) != true {
		t.Fatalf("cleanup must not destroy the entity")
	}
}

func TestCleanupLeavesPausedAlone(t *testing.T) {
	ctx := audio.NewContextWithDevice(&fakeDevice{})
	events := audio.NewEvents()
	w := ecs.NewWorld()
	playback := NewPlaybackSystem(ctx, events)
	cleanup := NewCleanupSystem()

	target := w.CreateEntity()
	events.PlaySound(audio.PlaySoundEvent{Sound: beep("a"), Target: target})
	playback.Update(w)

	sounds, _ := ecs.Get(w, target, component.PlayingSoundsComponent.Kind())
	sounds.Sounds[0].Pause()
	cleanup.Update(w)

	if !ecs.Has(w, target, component.PlayingSoundsComponent.Kind()) {
		t.Fatalf("paused instance must not be pruned")
	}
}
