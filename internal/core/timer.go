package core

import "time"

const (
	// MinTPS is the slowest rate Slower will reach.
	MinTPS = 1.0 / 64
	// MaxTPS is the fastest rate Faster will reach.
	MaxTPS = 1 << 16
	// DefaultMaxStepsPerFrame bounds the catch-up loop of a single frame.
	DefaultMaxStepsPerFrame = 4096
)

// TickScheduler runs simulation steps at a fixed ticks-per-second rate,
// independent of how often frames arrive. Elapsed time is accumulated as an
// integer duration so that splitting the same wall time across more frames
// never changes the number of steps.
type TickScheduler struct {
	tps         float64
	step        time.Duration
	accumulator time.Duration
	maxSteps    int
}

// NewTickScheduler constructs a scheduler targeting the given TPS. Rates
// outside [MinTPS, MaxTPS] are clamped.
func NewTickScheduler(tps float64) *TickScheduler {
	t := &TickScheduler{maxSteps: DefaultMaxStepsPerFrame}
	t.SetTPS(tps)
	return t
}

// SetTPS changes the tick rate. It is safe to call from the main loop, paused
// or not; accumulated time is kept.
func (t *TickScheduler) SetTPS(tps float64) {
	if !(tps >= MinTPS) {
		tps = MinTPS
	}
	if tps > MaxTPS {
		tps = MaxTPS
	}
	t.tps = tps
	t.step = time.Duration(float64(time.Second) / tps)
	if t.step <= 0 {
		t.step = 1
	}
}

// TPS returns the current tick rate.
func (t *TickScheduler) TPS() float64 { return t.tps }

// Interval returns the duration of one tick.
func (t *TickScheduler) Interval() time.Duration { return t.step }

// Pending returns the accumulated time not yet consumed by a step.
func (t *TickScheduler) Pending() time.Duration { return t.accumulator }

// Faster doubles the rate unless that would exceed MaxTPS.
func (t *TickScheduler) Faster() bool {
	if t.tps*2 > MaxTPS {
		return false
	}
	t.SetTPS(t.tps * 2)
	return true
}

// Slower halves the rate unless that would drop below MinTPS.
func (t *TickScheduler) Slower() bool {
	if t.tps/2 < MinTPS {
		return false
	}
	t.SetTPS(t.tps / 2)
	return true
}

// SetMaxStepsPerFrame caps how many steps one Advance may run. n <= 0 removes
// the cap.
func (t *TickScheduler) SetMaxStepsPerFrame(n int) { t.maxSteps = n }

// Advance adds elapsed to the accumulator and calls step once for every whole
// tick it now holds, returning the number of calls. Negative elapsed values
// count as zero. When the per-frame cap is reached the backlog is dropped,
// keeping only the fraction of a tick that was already pending.
func (t *TickScheduler) Advance(elapsed time.Duration, step func()) int {
	if elapsed > 0 {
		t.accumulator += elapsed
	}
	n := 0
	for t.accumulator >= t.step {
		if t.maxSteps > 0 && n >= t.maxSteps {
			t.accumulator %= t.step
			break
		}
		step()
		t.accumulator -= t.step
		n++
	}
	return n
}
