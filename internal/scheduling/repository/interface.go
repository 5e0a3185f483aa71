package repository

import (
	"context"
	"time"

	"conversational-assistant/internal/model"
)

// EventStore is the interface for calendar event data access, scoped to one
// account per call.
type EventStore interface {
	Create(ctx context.Context, userID string, opt CreateOptions) (model.CalendarEvent, error)

	// List returns events overlapping [start, end), ordered by start time.
	List(ctx context.Context, userID string, start, end time.Time) ([]model.CalendarEvent, error)

	Get(ctx context.Context, userID, eventID string) (model.CalendarEvent, error)
	Update(ctx context.Context, userID string, opt UpdateOptions) (model.CalendarEvent, error)
	Delete(ctx context.Context, userID, eventID string) error
}

// CreateOptions defines the fields of a new event.
type CreateOptions struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

// UpdateOptions patches an existing event. Zero-valued fields are left
// untouched.
type UpdateOptions struct {
	EventID string
	Title   string
	Start   time.Time
	End     time.Time
}
