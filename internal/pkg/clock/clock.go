package clock

import "time"

// Reference is the timezone used to derive calendar days. All attendance
// records are keyed by the start of day in this location.
var Reference = time.UTC

// Clock supplies the current instant. Injected into services so tests can
// run against fixed times.
type Clock interface {
	Now() time.Time
}

// System is the production clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

// DayOf truncates an instant to the start of its calendar day in the
// reference timezone.
func DayOf(t time.Time) time.Time {
	t = t.In(Reference)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Reference)
}
