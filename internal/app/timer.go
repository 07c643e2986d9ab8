package app

import "time"

// maxCatchUp caps how many steps a single poll may report after a stall.
const maxCatchUp = 5

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60 and the
// interval never drops below one nanosecond.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
	if f.step < time.Nanosecond {
		f.step = time.Nanosecond
	}
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many ticks have accumulated up to now, at most maxCatchUp.
// Time beyond the cap is dropped rather than carried forward.
func (f *FixedStep) Due(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == maxCatchUp && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}

// RateMeter measures how many steps per second were observed over roughly
// one-second windows.
type RateMeter struct {
	window time.Duration
	start  time.Time
	count  int
	rate   float64
}

// NewRateMeter returns a meter that refreshes its rate once per second.
func NewRateMeter() *RateMeter {
	return &RateMeter{window: time.Second}
}

// Tick records one step at the given time.
func (m *RateMeter) Tick(now time.Time) {
	if m.start.IsZero() {
		m.start = now
	}
	m.count++
	if elapsed := now.Sub(m.start); elapsed >= m.window {
		m.rate = float64(m.count) / elapsed.Seconds()
		m.start = now
		m.count = 0
	}
}

// Rate returns the rate observed over the last completed window.
func (m *RateMeter) Rate() float64 { return m.rate }
