package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

// Shared entity extraction regexps. Compiled once; all matching is
// case-insensitive but runs against the original message so addresses and
// proper nouns keep their casing.
var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d{10,15}`)
	uuidRe  = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

	eventIDRe = regexp.MustCompile(`(?i)\b(?:event|id)\s*#?\s*(\d+)`)

	durationRe      = regexp.MustCompile(`(?i)\b(?:for|in|about)\s+(?:an?\s+)?(\d+)\s*(minutes?|mins?|hours?|hrs?)\b`)
	durationRangeRe = regexp.MustCompile(`(?i)\bfrom\s+(\d+)\s+to\s+(\d+)\s*(minutes?|mins?|hours?|hrs?)\b`)

	dayWord = `(?:today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	clock   = `\d{1,2}(?::\d{2})?\s*(?:am|pm)?`

	// Time-text patterns, tried in order; the first capturing match wins.
	// They recognize day+clock in either order, relative durations, and bare
	// clock or day words.
	timeTextRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + dayWord + `\s+(?:at\s+)?` + clock + `\b`),
		regexp.MustCompile(`(?i)\b(?:at\s+)?` + clock + `\s+` + dayWord + `\b`),
		regexp.MustCompile(`(?i)\b(?:in|after)\s+\d+\s*(?:minutes?|mins?|hours?|hrs?|days?)\b`),
		regexp.MustCompile(`(?i)\b\d+\s*(?:minutes?|mins?|hours?|hrs?|days?)\s+(?:from\s+now|later)\b`),
		regexp.MustCompile(`(?i)\b(?:at\s+)?\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:next\s+week|` + dayWord + `)\b`),
	}

	// Words that disqualify a syntactic title match: time references plus the
	// verbs and fillers that surround a title without being one.
	titleStopWords = map[string]bool{
		"today": true, "tomorrow": true, "tonight": true, "next": true,
		"week": true, "monday": true, "tuesday": true, "wednesday": true,
		"thursday": true, "friday": true, "saturday": true, "sunday": true,
		"am": true, "pm": true, "at": true, "the": true, "a": true, "an": true,
		"schedule": true, "create": true, "add": true, "book": true,
		"set": true, "up": true, "make": true, "plan": true, "my": true,
		"me": true, "please": true, "new": true, "quick": true,
	}
)

// extractEmail returns the first email-shaped token, preserving casing.
func extractEmail(original string) string {
	return emailRe.FindString(original)
}

// extractPhone returns the first phone-shaped token (10-15 digits, optional +).
func extractPhone(original string) string {
	return phoneRe.FindString(original)
}

// extractEventID returns a UUID or "event/id <digits>" identifier, or "".
func extractEventID(original string) string {
	if id := uuidRe.FindString(original); id != "" {
		return id
	}
	if m := eventIDRe.FindStringSubmatch(original); m != nil {
		return m[1]
	}
	return ""
}

// extractTimeText pulls the raw time expression out of a message. The text is
// returned as written (minus a leading "at") for the time resolver to handle.
func extractTimeText(original string) string {
	for _, re := range timeTextRes {
		if m := re.FindString(original); m != "" {
			m = strings.TrimSpace(m)
			lower := strings.ToLower(m)
			if strings.HasPrefix(lower, "at ") {
				m = strings.TrimSpace(m[3:])
			}
			return m
		}
	}
	return ""
}

// extractDuration returns a duration in minutes, or 0 when none is present.
// Ranges ("from 30 to 60 minutes") yield the absolute difference.
func extractDuration(original string) int {
	if m := durationRangeRe.FindStringSubmatch(original); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		d := b - a
		if d < 0 {
			d = -d
		}
		return toMinutes(d, m[3])
	}
	if m := durationRe.FindStringSubmatch(original); m != nil {
		n, _ := strconv.Atoi(m[1])
		return toMinutes(n, m[2])
	}
	return 0
}

func toMinutes(n int, unit string) int {
	if strings.HasPrefix(strings.ToLower(unit), "h") {
		return n * 60
	}
	return n
}

var titleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:about|regarding)\s+(.+?)(?:\s+(?:on|at|today|tomorrow|next)\b|$)`),
	regexp.MustCompile(`(?i)\bfor\s+(?:a\s+|an\s+|the\s+)?(.+?)(?:\s+(?:on|at|today|tomorrow|next)\b|$)`),
	regexp.MustCompile(`(?i)\b([a-z][a-z0-9 ]{1,40}?)\s+(?:meeting|event|appointment)\b`),
}

// extractTitle derives an event title from "about/for/regarding X" or
// "X meeting" phrasing. Candidates made purely of time/stop words are
// rejected even when the regex matched syntactically.
func extractTitle(original string) string {
	for _, re := range titleRes {
		m := re.FindStringSubmatch(original)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if candidate == "" || isStopWords(candidate) {
			continue
		}
		return candidate
	}
	return DefaultEventTitle
}

// isStopWords reports whether every word of the candidate is a stop word.
func isStopWords(candidate string) bool {
	words := strings.Fields(strings.ToLower(candidate))
	if len(words) == 0 {
		return true
	}
	for _, w := range words {
		if !titleStopWords[w] && !isNumeric(w) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// stripTimeText removes a trailing time reference from a task description.
func stripTimeText(task string) string {
	if tt := extractTimeText(task); tt != "" {
		if idx := strings.Index(strings.ToLower(task), strings.ToLower(tt)); idx >= 0 {
			// Also drop a dangling "at"/"in"/"on" connector left behind.
			head := strings.TrimSpace(task[:idx])
			head = strings.TrimSuffix(head, " at")
			head = strings.TrimSuffix(head, " in")
			head = strings.TrimSuffix(head, " on")
			tail := strings.TrimSpace(task[idx+len(tt):])
			if tail != "" {
				return strings.TrimSpace(head + " " + tail)
			}
			return head
		}
	}
	return strings.TrimSpace(task)
}

// looksLikeClockTime reports whether the token carries digits or an am/pm
// marker, i.e. reads as a time rather than a day name.
func looksLikeClockTime(token string) bool {
	lower := strings.ToLower(token)
	if strings.Contains(lower, "am") || strings.Contains(lower, "pm") {
		return true
	}
	return strings.ContainsAny(lower, "0123456789")
}
