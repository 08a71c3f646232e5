package system

import (
	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

// CleanupSystem prunes finished instances from PlayingSounds components,
// releasing their players and track slots, and removes the component once
// it is empty. Registered after playback so a handle lives for at least one
// tick.
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (c *CleanupSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.PlayingSoundsComponent.Kind(), func(ent ecs.Entity, sounds *component.PlayingSounds) {
		// Check before mutating so untouched components stay untouched.
		needsCleanup := false
		for _, inst := range sounds.Sounds {
			if inst.State() == audio.PlaybackStopped {
				needsCleanup = true
				break
			}
		}
		if needsCleanup {
			kept := sounds.Sounds[:0]
			for _, inst := range sounds.Sounds {
				if inst.State() == audio.PlaybackStopped {
					_ = inst.Stop()
					continue
				}
				kept = append(kept, inst)
			}
			for i := len(kept); i < len(sounds.Sounds); i++ {
				sounds.Sounds[i] = nil
			}
			sounds.Sounds = kept
		}
		if len(sounds.Sounds) == 0 {
			ecs.Remove(w, ent, component.PlayingSoundsComponent.Kind())
		}
	})
}
