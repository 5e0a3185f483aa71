package model

import "time"

// CalendarEvent is the service-internal view of one calendar event. The
// scheduling engine reads and writes these through an abstract event store and
// owns no persistent state itself.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
	Location    string
	HTMLLink    string
}

// Duration returns the event length.
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps reports whether the event intersects [start, end). Intervals are
// half-open: touching boundaries is not an overlap.
func (e CalendarEvent) Overlaps(start, end time.Time) bool {
	return start.Before(e.End) && end.After(e.Start)
}
