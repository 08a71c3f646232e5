package component

import (
	"github.com/milk9111/soundscape/audio"
	ecscomponent "github.com/milk9111/soundscape/ecs/component"
)

// Clocks associates an entity with tick clocks.
type Clocks struct {
	Clocks []*audio.Clock
}

var ClocksComponent = ecscomponent.NewComponent[Clocks]()
