package system

import (
	"log"

	"github.com/milk9111/soundscape/audio"
	"github.com/milk9111/soundscape/ecs"
)

// DebugSystem periodically logs context counters. Only registered when the
// plugin config asks for it.
type DebugSystem struct {
	ctx    *audio.Context
	every  int
	frames int
}

// NewDebugSystem logs every `every` ticks. Zero means once a second at the
// default tick rate.
func NewDebugSystem(ctx *audio.Context, every int) *DebugSystem {
	if every <= 0 {
		every = defaultTickRate
	}
	return &DebugSystem{ctx: ctx, every: every}
}

func (s *DebugSystem) Update(_ *ecs.World) {
	s.frames++
	if s.frames < s.every {
		return
	}
	s.frames = 0
	log.Printf("audio: playing=%d tracks=%d clocks=%d",
		s.ctx.NumPlaying(), s.ctx.NumTracks(), s.ctx.NumClocks())
}
