package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 15
	}
	fs := &FixedStep{}
	fs.SetRate(tps)
	return fs
}

// SetRate changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(tps int) {
	if tps <= 0 {
		tps = 15
	}
	f.step = time.Second / time.Duration(tps)
}

// Advance adds elapsed time to the accumulator and returns how many whole
// ticks fit. The remainder is carried over to the next call.
func (f *FixedStep) Advance(dt time.Duration) int {
	f.accumulator += dt
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}

// ShouldStep reports whether the simulation should advance by one tick,
// measuring elapsed wall-clock time since the previous call.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta) > 0
}
