package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/model"
)

// resolveFuture parses a time expression and enforces that it lies in the
// future. The second return value is a ready user-facing message when the
// input is unusable, empty otherwise.
func (u *implUseCase) resolveFuture(timeText string) (time.Time, string) {
	now := u.now()
	at, err := u.resolver.Resolve(timeText, now)
	if err != nil {
		return time.Time{}, fmt.Sprintf(MsgUnparseableTime, timeText)
	}
	// An instant equal to now is already unusable for scheduling.
	if !at.After(now) {
		return time.Time{}, fmt.Sprintf(MsgPastTime, timeText)
	}
	return at, ""
}

// paramDuration reads the "duration" parameter as minutes.
func (u *implUseCase) paramDuration(res intent.Result, fallback time.Duration) time.Duration {
	raw := res.Param("duration", "durationMinutes", "length")
	if raw == "" {
		return fallback
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minutes <= 0 {
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}

func (u *implUseCase) clock(t time.Time) string {
	return t.In(u.resolver.Location()).Format("3:04 PM")
}

// joinTimes renders instants as a short comma-separated list of clock times
// with the day attached to the first entry.
func (u *implUseCase) joinTimes(times []time.Time) string {
	parts := make([]string, len(times))
	for i, t := range times {
		local := t.In(u.resolver.Location())
		if i == 0 {
			parts[i] = local.Format("Jan 2 3:04 PM")
			continue
		}
		parts[i] = local.Format("3:04 PM")
	}
	return strings.Join(parts, ", ")
}

func joinEventTitles(events []model.CalendarEvent) string {
	parts := make([]string, len(events))
	for i, ev := range events {
		parts[i] = fmt.Sprintf("%q", ev.Title)
	}
	return strings.Join(parts, ", ")
}

// dayLabel echoes the user's own day word, defaulting to "today".
func dayLabel(dayText string) string {
	dayText = strings.TrimSpace(strings.ToLower(dayText))
	if dayText == "" {
		return "today"
	}
	switch dayText {
	case "today", "tomorrow":
		return dayText
	}
	return "on " + strings.ToUpper(dayText[:1]) + dayText[1:]
}
