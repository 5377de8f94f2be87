package spin

import "time"

// Clock provides the current time with monotonic readings. The animation
// loop never pauses, so the real provider is a thin wrapper over time.Now;
// tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real monotonic clock.
type SystemClock struct{}

// NewSystemClock creates the real time provider.
func NewSystemClock() SystemClock { return SystemClock{} }

// Now returns the current time with a monotonic clock reading.
func (SystemClock) Now() time.Time { return time.Now() }
