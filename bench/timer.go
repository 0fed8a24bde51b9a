// SPDX-License-Identifier: MIT

package bench

import "time"

// Timer measures wall-clock time from its last Reset on the monotonic clock.
// The zero value is not started; use NewTimer.
type Timer struct {
	start time.Time
}

// NewTimer returns a Timer started now.
func NewTimer() *Timer {
	t := &Timer{}
	t.Reset()

	return t
}

// Reset restarts the measurement.
func (t *Timer) Reset() { t.start = time.Now() }

// Elapsed returns the time since the last Reset.
func (t *Timer) Elapsed() time.Duration { return time.Since(t.start) }

