package scheduling

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// CreateEvent places one event on the account's calendar.
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (model.CalendarEvent, error)

	// EventsForDay returns the account's events for one calendar day, ordered
	// by start time.
	EventsForDay(ctx context.Context, sc model.Scope, day time.Time) ([]model.CalendarEvent, error)

	// CheckConflicts reports events overlapping [start, end) and, only when
	// conflicts exist, up to 5 alternative free starts of the same duration.
	CheckConflicts(ctx context.Context, sc model.Scope, start, end time.Time) (ConflictResult, error)

	// FindFreeTime scans [searchStart, searchEnd] at 30-minute granularity
	// and returns the first 10 conflict-free starts in chronological order.
	FindFreeTime(ctx context.Context, sc model.Scope, duration time.Duration, searchStart, searchEnd time.Time) ([]time.Time, error)

	// SmartSchedule books the first free preferred time, or falls back to a
	// preference-filtered search over the request's time range.
	SmartSchedule(ctx context.Context, sc model.Scope, input SmartScheduleInput) (SmartScheduleOutput, error)

	// FindOptimalTime searches a 14-day horizon on the account's own calendar
	// for the best open slot. Attendee calendars are not consulted.
	FindOptimalTime(ctx context.Context, sc model.Scope, duration time.Duration, attendees []string, prefs Preferences) (OptimalTimeOutput, error)

	// RescheduleEvent moves an event to newStart, preserving its original
	// duration. With checkConflicts set, a blocked target window leaves the
	// event untouched.
	RescheduleEvent(ctx context.Context, sc model.Scope, eventID string, newStart time.Time, checkConflicts bool) (RescheduleOutput, error)
}
