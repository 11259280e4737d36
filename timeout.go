package ppmv

import "time"

// TimeoutPolicy closes the session once Budget has elapsed since Start.
// A zero Budget disables it.
type TimeoutPolicy struct {
	Budget time.Duration
	Start  time.Time
}

func (p TimeoutPolicy) Enabled() bool {
	return p.Budget > 0
}

// Expired reports whether more than Budget has elapsed at now.
func (p TimeoutPolicy) Expired(now time.Time) bool {
	return p.Enabled() && now.Sub(p.Start) > p.Budget
}
