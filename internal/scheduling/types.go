package scheduling

import (
	"time"

	"conversational-assistant/internal/model"
)

// ConflictResult is the outcome of one conflict query. Ephemeral, computed
// per query.
type ConflictResult struct {
	HasConflicts bool                  `json:"has_conflicts"`
	Conflicts    []model.CalendarEvent `json:"conflicts,omitempty"`
	Suggestions  []time.Time           `json:"suggestions,omitempty"` // at most 5
}

// WorkingHours bounds candidate slots by hour of day (0-23).
type WorkingHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Preferences are per-call scheduling constraints. Not persisted by the
// engine.
type Preferences struct {
	WorkingHours WorkingHours   `json:"working_hours"`
	WorkingDays  []time.Weekday `json:"working_days,omitempty"`

	// BufferTime is how long a slot must be free on both sides of the event,
	// not just at the edges.
	BufferTime time.Duration `json:"buffer_time"`

	PreferMorning   bool `json:"prefer_morning"`
	PreferAfternoon bool `json:"prefer_afternoon"`
}

// CreateEventInput is the input for placing one event.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

// SmartScheduleInput describes one booking request with preferences.
type SmartScheduleInput struct {
	Title       string
	Description string
	Attendees   []string
	Duration    time.Duration

	// PreferredTimes are tried in order before any automatic search.
	PreferredTimes []time.Time

	// RangeStart/RangeEnd bound the fallback free-slot search.
	RangeStart time.Time
	RangeEnd   time.Time

	Prefs Preferences
}

// SmartScheduleOutput is the booking outcome. When Success is false the
// caller must surface Alternatives to the user instead of erroring.
type SmartScheduleOutput struct {
	Success      bool
	Event        *model.CalendarEvent
	Alternatives []time.Time // at most 3
}

// OptimalTimeOutput is the best open slot plus fallback choices. Best is nil
// when the horizon holds no open slot.
type OptimalTimeOutput struct {
	Best         *time.Time
	Alternatives []time.Time // at most 4
}

// RescheduleOutput reports a move attempt. On conflict nothing was mutated,
// Event is nil and Conflicts carries the blocking events.
type RescheduleOutput struct {
	Success   bool
	Event     *model.CalendarEvent
	OldStart  time.Time
	Conflicts []model.CalendarEvent
}
