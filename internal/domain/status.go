package domain

import "time"

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusActive   Status = "active"
	StatusEnded    Status = "ended"
)

// StatusAt places now in exactly one phase of the [start, end] window.
func StatusAt(now, start, end time.Time) Status {
	switch {
	case IsUpcoming(now, start):
		return StatusUpcoming
	case IsEnded(now, end):
		return StatusEnded
	default:
		return StatusActive
	}
}

func IsUpcoming(now, start time.Time) bool {
	return !now.After(start)
}

func IsEnded(now, end time.Time) bool {
	return now.After(end)
}

func IsActive(now, start, end time.Time) bool {
	return !IsUpcoming(now, start) && !IsEnded(now, end)
}
