package playback

import "time"

const (
	MinInterval     = 30 * time.Millisecond
	DefaultInterval = 500 * time.Millisecond
)

// Timer tracks the single outstanding playback tick. Each Schedule call
// supersedes the previous tick; a fired tick is honoured only if its
// generation is still current.
type Timer struct {
	gen      uint64
	pending  bool
	interval time.Duration
}

// NewTimer returns a timer with the given interval, clamped to MinInterval.
func NewTimer(interval time.Duration) *Timer {
	t := &Timer{}
	t.SetInterval(interval)
	return t
}

// Interval returns the delay between ticks.
func (t *Timer) Interval() time.Duration {
	if t.interval == 0 {
		return DefaultInterval
	}
	return t.interval
}

// SetInterval changes the delay between ticks. It does not reschedule.
func (t *Timer) SetInterval(d time.Duration) {
	if d < MinInterval {
		d = MinInterval
	}
	t.interval = d
}

// Schedule cancels any outstanding tick and returns the generation of the
// new one.
func (t *Timer) Schedule() uint64 {
	t.gen++
	t.pending = true
	return t.gen
}

// Cancel invalidates the outstanding tick.
func (t *Timer) Cancel() {
	t.gen++
	t.pending = false
}

// Pending reports whether a tick is outstanding.
func (t *Timer) Pending() bool { return t.pending }

// Accept consumes a fired tick. It returns false for superseded ticks.
func (t *Timer) Accept(gen uint64) bool {
	if !t.pending || gen != t.gen {
		return false
	}
	t.pending = false
	return true
}
