package system

import (
	"log"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/audio/component"
	"github.com/milk9111/soundscape/ecs"
)

const defaultTickRate = 60

// ClockSystem drains add-clock events and advances every clock by one host
// tick. Clock resolution is the tick step, not device blocks.
type ClockSystem struct {
	ctx    *audio.Context
	events *audio.Events
	step   float64
}

// NewClockSystem builds the clock system for a host running at tickRate
// ticks per second. Zero means 60.
func NewClockSystem(ctx *audio.Context, events *audio.Events, tickRate int) *ClockSystem {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return &ClockSystem{ctx: ctx, events: events, step: 1 / float64(tickRate)}
}

func (s *ClockSystem) Update(w *ecs.World) {
	for _, ev := range s.events.DrainAddClocks() {
		if !ev.Entity.Valid() || !w.IsAlive(ev.Entity) {
			log.Printf("audio: dropping add-clock event for dead entity %v", ev.Entity)
			continue
		}
		clock, err := s.ctx.AddClock(ev.Speed)
		if err != nil {
			log.Printf("audio: dropping add-clock event: %v", err)
			continue
		}
		if clocks, ok := ecs.Get(w, ev.Entity, component.ClocksComponent.Kind()); ok {
			clocks.Clocks = append(clocks.Clocks, clock)
			continue
		}
		err = ecs.Add(w, ev.Entity, component.ClocksComponent.Kind(),
			&component.Clocks{Clocks: []*audio.Clock{clock}})
		if err != nil {
			log.Printf("audio: attach clock: %v", err)
		}
	}

	s.ctx.AdvanceClocks(s.step)
}
