package timeparse

import (
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var weekdayOrder = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// matchWeekday finds the first weekday name contained in lower-cased text.
// Scan order is fixed so inputs naming two days resolve deterministically.
func matchWeekday(lower string) (time.Weekday, bool) {
	for _, name := range weekdayOrder {
		if strings.Contains(lower, name) {
			return weekdays[name], true
		}
	}
	return 0, false
}

// ResolveDay converts a day-level expression ("today", "tomorrow", a weekday
// name) to the start of that day in the resolver's timezone.
func (r *Resolver) ResolveDay(day string, referenceNow time.Time) (time.Time, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	now := referenceNow.In(r.location)

	switch day {
	case "", "today":
		return r.StartOfDay(now), nil
	case "tomorrow":
		return r.StartOfDay(now.AddDate(0, 0, 1)), nil
	}

	target, ok := weekdays[strings.TrimPrefix(day, "next ")]
	if !ok {
		return time.Time{}, ErrUnknownDay
	}

	daysUntil := int(target - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return r.StartOfDay(now.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the resolver's
// timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
