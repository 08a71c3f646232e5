package audio

import "github.com/milk9111/soundscape/ecs"

// PlaySoundEvent asks the playback system to start one sound. Events are
// consumed once, in arrival order, on the next tick.
type PlaySoundEvent struct {
	// Sound is the source to play. For bank assets pass Asset.Sound().
	Sound Playable
	// Track optionally points at an entity carrying a Tracks component.
	// Unset means the main track. A set Track that does not resolve to a
	// track fails the event; there is no fallback.
	Track ecs.Entity
	// TrackName selects among the track entity's tracks. Empty means the
	// entity's first track.
	TrackName string
	// Target receives the resulting instance in its PlayingSounds
	// component. Unset means a freshly spawned entity.
	Target   ecs.Entity
	Settings PlaySettings
}

// AddTrackEvent asks the track system to create a sub-track and attach its
// handle to Entity.
type AddTrackEvent struct {
	Entity ecs.Entity
	Config TrackConfig
}

// AddClockEvent asks the clock system to create a clock and attach its
// handle to Entity.
type AddClockEvent struct {
	Entity ecs.Entity
	Speed  ClockSpeed
}

// Events is the plugin's inbound queue set. Gameplay code pushes at any
// point in a tick; each system drains its queue once per tick, FIFO. Pushes
// are not synchronized; they must come from host-scheduled code.
type Events struct {
	play   []PlaySoundEvent
	tracks []AddTrackEvent
	clocks []AddClockEvent
}

func NewEvents() *Events {
	return &Events{}
}

func (e *Events) PlaySound(ev PlaySoundEvent) {
	e.play = append(e.play, ev)
}

func (e *Events) AddTrack(ev AddTrackEvent) {
	e.tracks = append(e.tracks, ev)
}

func (e *Events) AddClock(ev AddClockEvent) {
	e.clocks = append(e.clocks, ev)
}

// DrainPlaySounds returns all queued play events in arrival order and
// clears the queue.
func (e *Events) DrainPlaySounds() []PlaySoundEvent {
	out := e.play
	e.play = nil
	return out
}

func (e *Events) DrainAddTracks() []AddTrackEvent {
	out := e.tracks
	e.tracks = nil
	return out
}

func (e *Events) DrainAddClocks() []AddClockEvent {
	out := e.clocks
	e.clocks = nil
	return out
}
