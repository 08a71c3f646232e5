package component

import (
	"github.com/milk9111/soundscape/audio"
	ecscomponent "github.com/milk9111/soundscape/ecs/component"
)

// Tracks associates an entity with sub-tracks in the routing graph.
type Tracks struct {
	Tracks []*audio.Track
}

// ByName returns the named track; an empty name means the entity's first
// track.
func (t *Tracks) ByName(name string) (*audio.Track, bool) {
	if name == "" {
		if len(t.Tracks) == 0 {
			return nil, false
		}
		return t.Tracks[0], true
	}
	for _, tr := range t.Tracks {
		if tr.Name() == name {
			return tr, true
		}
	}
	return nil, false
}

var TracksComponent = ecscomponent.NewComponent[Tracks]()
