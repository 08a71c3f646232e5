package audio

// TrackConfig describes a routing node to create. Volume zero means full
// volume.
type TrackConfig struct {
	Name   string  `yaml:"name"`
	Parent string  `yaml:"parent"`
	Volume float64 `yaml:"volume"`
}

// Track is a named node in the routing graph. Sounds play into a track, and
// a track may route into another track; the effective volume of an instance
// is its own volume multiplied down the track chain.
type Track struct {
	name      string
	volume    float64
	parent    *Track
	ctx       *Context
	instances []*Instance
}

func (t *Track) Name() string {
	return t.name
}

func (t *Track) Volume() float64 {
	return t.volume
}

// EffectiveVolume is the product of this track's volume and all of its
// ancestors'.
func (t *Track) EffectiveVolume() float64 {
	v := t.volume
	for p := t.parent; p != nil; p = p.parent {
		v *= p.volume
	}
	return v
}

// SetVolume changes the track volume and re-applies routing to every
// instance playing anywhere in the graph, so nested tracks pick up the
// change too.
func (t *Track) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	t.volume = v
	t.ctx.reapplyVolumes()
}

// Instances returns the instances currently attached to this track.
func (t *Track) Instances() []*Instance {
	out := make([]*Instance, 0, len(t.instances))
	return append(out, t.instances...)
}

func (t *Track) attach(i *Instance) {
	t.instances = append(t.instances, i)
}

func (t *Track) detach(i *Instance) {
	for idx, inst := range t.instances {
		if inst == i {
			last := len(t.instances) - 1
			t.instances[idx] = t.instances[last]
			t.instances[last] = nil
			t.instances = t.instances[:last]
			return
		}
	}
}

func (t *Track) numLive() int {
	n := 0
	for _, inst := range t.instances {
		if inst.State() != PlaybackStopped {
			n++
		}
	}
	return n
}

func (t *Track) stopAll() error {
	var err error
	for _, inst := range t.Instances() {
		if stopErr := inst.Stop(); err == nil {
			err = stopErr
		}
	}
	return err
}

func (t *Track) reapply() {
	for _, inst := range t.instances {
		inst.applyVolume()
	}
}

func (c *Context) reapplyVolumes() {
	c.main.reapply()
	for _, t := range c.tracks {
		t.reapply()
	}
}
