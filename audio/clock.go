package audio

import "math"

// ClockSpeed is a tick rate in ticks per second.
type ClockSpeed float64

func TicksPerSecond(n float64) ClockSpeed {
	return ClockSpeed(n)
}

func TicksPerMinute(n float64) ClockSpeed {
	return ClockSpeed(n / 60)
}

// Clock counts ticks at a fixed speed while started. Clocks are advanced on
// the host tick, so tick edges resolve to the scheduler step, not to device
// blocks.
type Clock struct {
	speed   ClockSpeed
	running bool
	ticks   uint64
	frac    float64
}

// Start begins or resumes ticking. Clocks start stopped.
func (c *Clock) Start() {
	c.running = true
}

// Stop pauses the clock without rewinding it.
func (c *Clock) Stop() {
	c.running = false
}

// Reset stops the clock and rewinds it to tick zero.
func (c *Clock) Reset() {
	c.running = false
	c.ticks = 0
	c.frac = 0
}

func (c *Clock) Running() bool {
	return c.running
}

func (c *Clock) Ticks() uint64 {
	return c.ticks
}

func (c *Clock) Speed() ClockSpeed {
	return c.speed
}

func (c *Clock) SetSpeed(speed ClockSpeed) {
	if speed > 0 {
		c.speed = speed
	}
}

func (c *Clock) advance(dt float64) {
	if !c.running || dt <= 0 {
		return
	}
	c.frac += dt * float64(c.speed)
	whole := math.Floor(c.frac)
	c.ticks += uint64(whole)
	c.frac -= whole
}
