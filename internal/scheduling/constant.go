package scheduling

import "time"

const (
	// ConflictFetchPadding widens the fetch window around a queried interval
	// so adjacent events are visible to the overlap filter.
	ConflictFetchPadding = 30 * time.Minute

	// ScanGranularity is the step between candidate starts in free-slot scans.
	ScanGranularity = 30 * time.Minute

	// MaxFreeSlots caps FindFreeTime results.
	MaxFreeSlots = 10

	// MaxSuggestions caps conflict alternatives.
	MaxSuggestions = 5

	// MaxAlternatives caps smart-schedule fallback choices.
	MaxAlternatives = 3

	// MaxOptimalAlternatives caps optimal-time fallback choices.
	MaxOptimalAlternatives = 4

	// OptimalSearchDays is the horizon for optimal-slot search.
	OptimalSearchDays = 14

	// DefaultWorkingHourStart and DefaultWorkingHourEnd apply when a request
	// carries no working-hours preference.
	DefaultWorkingHourStart = 9
	DefaultWorkingHourEnd   = 17

	// DefaultEventDuration applies when a request names no duration.
	DefaultEventDuration = 60 * time.Minute

	// ReminderDuration is the length of the calendar block a reminder
	// occupies.
	ReminderDuration = 15 * time.Minute
)
