package usecase

import (
	"sort"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/scheduling"
)

// normalizePrefs fills in default working hours and days.
func normalizePrefs(p scheduling.Preferences) scheduling.Preferences {
	if p.WorkingHours.Start == 0 && p.WorkingHours.End == 0 {
		p.WorkingHours.Start = scheduling.DefaultWorkingHourStart
		p.WorkingHours.End = scheduling.DefaultWorkingHourEnd
	}
	if len(p.WorkingDays) == 0 {
		p.WorkingDays = []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		}
	}
	return p
}

// overlapping filters events to true overlaps with the half-open window
// [start, end). A touching boundary is not a conflict.
func overlapping(events []model.CalendarEvent, start, end time.Time) []model.CalendarEvent {
	var out []model.CalendarEvent
	for _, ev := range events {
		if ev.Overlaps(start, end) {
			out = append(out, ev)
		}
	}
	return out
}

// scanFree walks candidate starts at the fixed granularity across
// [searchStart, searchEnd], keeping starts whose [t, t+duration) window
// touches none of busy. Greedy chronological scan, not optimal packing.
func scanFree(busy []model.CalendarEvent, duration time.Duration, searchStart, searchEnd time.Time, limit int) []time.Time {
	var out []time.Time
	for t := searchStart; !t.Add(duration).After(searchEnd); t = t.Add(scheduling.ScanGranularity) {
		if len(out) >= limit {
			break
		}
		if len(overlapping(busy, t, t.Add(duration))) == 0 {
			out = append(out, t)
		}
	}
	return out
}

// withinWorkingHours reports whether the whole [t, t+duration) window falls
// inside the hour-of-day bounds of t's own day.
func withinWorkingHours(t time.Time, duration time.Duration, wh scheduling.WorkingHours) bool {
	if t.Hour() < wh.Start {
		return false
	}
	dayEnd := time.Date(t.Year(), t.Month(), t.Day(), wh.End, 0, 0, 0, t.Location())
	return !t.Add(duration).After(dayEnd)
}

func isWorkingDay(t time.Time, days []time.Weekday) bool {
	for _, d := range days {
		if t.Weekday() == d {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Second)
}

// sortByPreference stably moves morning or afternoon starts to the front.
// Without a bias the chronological order is kept.
func sortByPreference(times []time.Time, prefs scheduling.Preferences) {
	if !prefs.PreferMorning && !prefs.PreferAfternoon {
		return
	}
	preferred := func(t time.Time) bool {
		if prefs.PreferMorning {
			return t.Hour() < 12
		}
		return t.Hour() >= 12
	}
	sort.SliceStable(times, func(i, j int) bool {
		return preferred(times[i]) && !preferred(times[j])
	})
}
