package fractal

import "time"

// Debouncer defers an action until a fixed quiet period with no new Arm
// calls has elapsed (trailing-edge debounce). It holds no goroutine or OS
// timer: the owner polls Fire from its update tick, which keeps the whole
// interaction model on a single logical thread and makes the
// exactly-one-fire guarantee directly testable.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	armed    bool

	// now is swapped for a fake clock in tests.
	now func() time.Time
}

// NewDebouncer creates a debouncer with the given quiet-period delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, now: time.Now}
}

// Arm cancels any pending countdown and restarts it. A burst of Arm calls
// yields exactly one fire, one delay after the last call.
func (d *Debouncer) Arm() {
	d.armed = true
	d.deadline = d.now().Add(d.delay)
}

// Cancel discards any pending countdown. Idempotent.
func (d *Debouncer) Cancel() {
	d.armed = false
}

// Armed reports whether a countdown is pending.
func (d *Debouncer) Armed() bool {
	return d.armed
}

// Fire reports whether the quiet period has elapsed, clearing the countdown
// when it has. Armed at time T, it never returns true before T+delay, and
// returns true at most once per Arm.
func (d *Debouncer) Fire() bool {
	if !d.armed || d.now().Before(d.deadline) {
		return false
	}
	d.armed = false
	return true
}
