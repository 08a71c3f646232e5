package component

import (
	"github.com/milk9111/soundscape/audio"
	ecscomponent "github.com/milk9111/soundscape/ecs/component"
)

// PlayingSounds collects every active playback instance attached to an
// entity. The cleanup system prunes finished instances and removes the
// component once it is empty.
type PlayingSounds struct {
	Sounds []*audio.Instance
}

var PlayingSoundsComponent = ecscomponent.NewComponent[PlayingSounds]()
