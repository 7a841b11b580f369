package core

import "time"

// Throttle rate-limits an action to a maximum number of firings per second.
// The viewer uses it to coalesce regeneration requests while a control is
// being adjusted repeatedly.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// NewThrottle constructs a Throttle allowing at most perSec firings per second.
func NewThrottle(perSec int) *Throttle {
	if perSec <= 0 {
		perSec = 30
	}
	return &Throttle{interval: time.Second / time.Duration(perSec)}
}

// Allow reports whether the action may fire now and, if so, records the firing.
func (t *Throttle) Allow() bool {
	now := time.Now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
