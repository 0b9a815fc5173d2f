// Package clock provides the time source for the real-time frame loop
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-arena/internal/pkg/clock Clock,Ticker

// Clock provides time functionality
type Clock interface {
	Now() time.Time

	// NewTicker paces the frame loop
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers frame times until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// NewTicker wraps a time.Ticker
func (c *Real) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }

// New returns a new real clock
func New() Clock {
	return &Real{}
}
