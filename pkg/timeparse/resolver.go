package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts natural-language time expressions to absolute time.Time
// values in a fixed display timezone. Resolution is a pure function of the
// input text and the reference instant; no clock reads happen inside.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Kolkata".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's display timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

var (
	// "in 20 minutes", "after 2 hours", "3 days from now", "30 mins later"
	relativeRe = regexp.MustCompile(`(?i)(?:\b(?:in|after)\s+)?\b(\d+)\s*(minutes?|mins?|hours?|hrs?|days?)\b(?:\s+(?:from\s+now|later))?`)

	// "3pm", "10:30", "10:30 pm". Requires minutes or a meridiem so a bare
	// number never reads as a clock time.
	clockRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm)?\b`)

	// ISO dates and month names mark an explicit date expression. Their clock
	// fragment ("15:04" in "2026-04-01 15:04") must not match the bare clock
	// rule, so these go through the layout parse first.
	explicitDateRe = regexp.MustCompile(`(?i)\b(\d{4}-\d{2}-\d{2}|jan(uary)?|feb(ruary)?|mar(ch)?|apr(il)?|may|jun(e)?|jul(y)?|aug(ust)?|sep(tember)?|oct(ober)?|nov(ember)?|dec(ember)?)\b`)
)

// Resolve converts a time expression into an absolute instant relative to
// referenceNow. Rules are tried in a fixed order; the first match wins:
//
//  1. relative units ("in N minutes/hours/days")
//  2. "tomorrow" with optional clock time
//  3. "next week" (time-of-day ignored)
//  4. explicit dates (ISO or month name) via the date layouts
//  5. bare clock time today, with elapsed-AM shift and one-day roll-forward
//  6. general date layouts
//
// Returns ErrUnparseable when nothing matches.
func (r *Resolver) Resolve(text string, referenceNow time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, ErrUnparseable
	}

	lower := strings.ToLower(text)
	now := referenceNow.In(r.location)

	// 1. Pure relative units
	if m := relativeRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit := strings.ToLower(m[2])
		switch {
		case strings.HasPrefix(unit, "min"):
			return now.Add(time.Duration(n) * time.Minute), nil
		case strings.HasPrefix(unit, "h"):
			return now.Add(time.Duration(n) * time.Hour), nil
		default:
			return now.AddDate(0, 0, n), nil
		}
	}

	// 2. "tomorrow", optionally with an embedded clock time
	if strings.Contains(lower, "tomorrow") {
		base := now.AddDate(0, 0, 1)
		hour, minute := DefaultHour, 0
		if h, m, meridiem, ok := extractClock(text); ok {
			hour, minute = applyMeridiem(h, meridiem), m
		}
		return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, r.location), nil
	}

	// 3. "next week": always 9:00 AM seven days out; an embedded time is
	// ignored (known limitation, kept as documented behavior)
	if strings.Contains(lower, "next week") {
		base := now.AddDate(0, 0, 7)
		return time.Date(base.Year(), base.Month(), base.Day(), DefaultHour, 0, 0, 0, r.location), nil
	}

	// 3b. Weekday name ("next wednesday", "friday at 2pm"): next occurrence
	// strictly after today
	if wd, ok := matchWeekday(lower); ok {
		daysUntil := int(wd - now.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		base := now.AddDate(0, 0, daysUntil)
		hour, minute := DefaultHour, 0
		if h, m, meridiem, clockOK := extractClock(text); clockOK {
			hour, minute = applyMeridiem(h, meridiem), m
		}
		return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, r.location), nil
	}

	// 4. Explicit date expressions skip the bare clock rule entirely.
	if explicitDateRe.MatchString(text) {
		if t, ok := r.parseLayouts(text); ok {
			return t, nil
		}
	}

	// 5. Bare clock time today
	if h, m, meridiem, ok := extractClock(text); ok {
		hour := h
		switch meridiem {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		default:
			// No meridiem: if the implied AM time already elapsed today,
			// the user means PM ("10:30" asked at 2 PM is 10:30 PM).
			if hour < 12 {
				implied := time.Date(now.Year(), now.Month(), now.Day(), hour, m, 0, 0, r.location)
				if !implied.After(now) {
					hour += 12
				}
			}
		}

		resolved := time.Date(now.Year(), now.Month(), now.Day(), hour, m, 0, 0, r.location)
		// Roll forward exactly one day, never more.
		if !resolved.After(now) {
			resolved = resolved.AddDate(0, 0, 1)
		}
		return resolved, nil
	}

	// 6. General-purpose layouts
	if t, ok := r.parseLayouts(text); ok {
		return t, nil
	}

	return time.Time{}, ErrUnparseable
}

func (r *Resolver) parseLayouts(text string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
		"Jan 2, 2006 3:04 PM",
		"January 2, 2006",
	} {
		if t, err := time.ParseInLocation(layout, text, r.location); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// extractClock pulls an H[:MM][am|pm] fragment out of text. It only accepts
// matches that carry minutes or a meridiem marker.
func extractClock(text string) (hour, minute int, meridiem string, ok bool) {
	for _, m := range clockRe.FindAllStringSubmatch(text, -1) {
		if m[2] == "" && m[3] == "" {
			continue
		}
		h, err := strconv.Atoi(m[1])
		if err != nil || h > 23 {
			continue
		}
		mm := 0
		if m[2] != "" {
			mm, _ = strconv.Atoi(m[2])
		}
		return h, mm, strings.ToLower(m[3]), true
	}
	return 0, 0, "", false
}

// applyMeridiem converts a 12-hour clock hour to 24-hour form.
func applyMeridiem(hour int, meridiem string) int {
	switch meridiem {
	case "pm":
		if hour < 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}
