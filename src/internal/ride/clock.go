package ride

import (
	"time"

	"github.com/spf13/viper"
)

// Clock derives everything about a ride's progress from one monotonic elapsed
// duration. Status and cancellation eligibility come from the same counter,
// so the two can never disagree.
type Clock struct {
	AcceptedAfter   time.Duration
	PickupAfter     time.Duration
	InProgressAfter time.Duration
	CompletedAfter  time.Duration
	CancelWindow    time.Duration
}

// DefaultClock mirrors the production simulation schedule.
func DefaultClock() Clock {
	return Clock{
		AcceptedAfter:   2 * time.Second,
		PickupAfter:     8 * time.Second,
		InProgressAfter: 15 * time.Second,
		CompletedAfter:  25 * time.Second,
		CancelWindow:    180 * time.Second,
	}
}

// NewClock reads the schedule from configuration, falling back to the
// defaults for any missing key.
func NewClock(v *viper.Viper) Clock {
	clock := DefaultClock()
	if d := v.GetDuration("ride.accepted_after"); d > 0 {
		clock.AcceptedAfter = d
	}
	if d := v.GetDuration("ride.pickup_after"); d > 0 {
		clock.PickupAfter = d
	}
	if d := v.GetDuration("ride.in_progress_after"); d > 0 {
		clock.InProgressAfter = d
	}
	if d := v.GetDuration("ride.completed_after"); d > 0 {
		clock.CompletedAfter = d
	}
	if d := v.GetDuration("ride.cancel_window"); d > 0 {
		clock.CancelWindow = d
	}
	return clock
}

// StatusAt maps elapsed ride time to the client-side status.
func (c Clock) StatusAt(elapsed time.Duration) Status {
	switch {
	case elapsed >= c.CompletedAfter:
		return StatusCompleted
	case elapsed >= c.InProgressAfter:
		return StatusInProgress
	case elapsed >= c.PickupAfter:
		return StatusPickup
	case elapsed >= c.AcceptedAfter:
		return StatusAccepted
	default:
		return StatusSearching
	}
}

// CanCancelAt reports whether the cancellation window is still open.
func (c Clock) CanCancelAt(elapsed time.Duration) bool {
	return elapsed < c.CancelWindow
}

// CancelTimeLeftAt returns the whole seconds remaining in the cancellation
// window, zero once it has closed.
func (c Clock) CancelTimeLeftAt(elapsed time.Duration) int {
	left := c.CancelWindow - elapsed
	if left <= 0 {
		return 0
	}
	return int(left / time.Second)
}
