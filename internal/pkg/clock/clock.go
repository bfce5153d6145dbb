// Package clock abstracts the current time for code that measures how long
// work took.
package clock

import (
	"sync"
	"time"
)

// Clocker returns the current time.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock.
type TimeClocker struct{}

// New returns a TimeClocker.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns time.Now.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Stepper is a deterministic Clocker that moves forward by a fixed step on
// every call to Now. It is safe for concurrent use.
type Stepper struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepper returns a Stepper whose first Now call returns start.
func NewStepper(start time.Time, step time.Duration) *Stepper {
	return &Stepper{now: start, step: step}
}

// Now returns the current fake time and then advances it.
func (s *Stepper) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now
	s.now = s.now.Add(s.step)
	return now
}
