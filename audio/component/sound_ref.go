package component

import (
	"github.com/milk9111/soundscape/bank"
	ecscomponent "github.com/milk9111/soundscape/ecs/component"
)

// SoundRef ties an entity to a bank asset, typically so gameplay systems
// can emit play events for it without holding the bank.
type SoundRef struct {
	Asset *bank.Asset
}

var SoundRefComponent = ecscomponent.NewComponent[SoundRef]()
