package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"conversational-assistant/internal/intent"
)

var (
	emailVerbRe   = regexp.MustCompile(`(?i)\b(send|mail|email)\b`)
	reminderRe    = regexp.MustCompile(`(?i)\b(?:set|create|add)\s+(?:a\s+)?reminder\b`)
	reminderTask  = regexp.MustCompile(`(?i)\bremind\s+me\b.*?\bto\s+(.+)$`)
	reminderColon = regexp.MustCompile(`(?i)\breminder:?\s+(?:to\s+)?(.+)$`)

	createVerbRe = regexp.MustCompile(`(?i)\b(?:schedule|create|add|book|set\s+up)\b.*\b(meeting|event|appointment|call)\b`)
	createNounRe = regexp.MustCompile(`(?i)\b(?:meeting|event|appointment)\b.*(?:\btoday\b|\btomorrow\b|\bnext\b|\bat\s+\d|\bon\s+(?:mon|tues|wednes|thurs|fri|satur|sun)day\b)`)

	rescheduleNounRe = regexp.MustCompile(`(?i)\b(?:move|change)\b.*\b(?:meeting|event|appointment|time)\b`)

	scheduleAskRe = regexp.MustCompile(`(?i)\b(?:how'?s|how\s+is|what'?s|what\s+is|show(?:\s+me)?|check)\b.*\b(?:schedule|calendar|day\s+look)`)

	availabilityRe = regexp.MustCompile(`(?i)\b(?:am\s+i|are\s+we|is)\b.*\bfree\b|\bfree\s+(?:at|on)\b|\bavailab`)

	findTimeRe = regexp.MustCompile(`(?i)\bfind\b.*\btime\b|\bbest\s+time\b|\bwhen\s+(?:am\s+i|are\s+we)\s+free\b`)

	smsVerbRe  = regexp.MustCompile(`(?i)\b(?:send|text|sms|message)\b`)
	callVerbRe = regexp.MustCompile(`(?i)\b(?:call|dial|phone)\b`)

	leadingConnectors = []string{"about ", "regarding ", "saying ", "that ", "to say "}
)

// matchSendEmail requires an email-shaped token AND a send verb somewhere in
// the message. The address alone is not sufficient: a message merely
// mentioning an address must not auto-send anything.
func matchSendEmail(original, lower string) *intent.Result {
	addr := extractEmail(original)
	if addr == "" {
		return nil
	}

	// The address itself can contain a verb substring ("@gmail.com"), so the
	// verb test runs with the address blanked out.
	rest := strings.Replace(lower, strings.ToLower(addr), " ", 1)
	if !emailVerbRe.MatchString(rest) {
		return nil
	}

	subject, body := deriveSubjectBody(afterToken(original, addr))

	return &intent.Result{
		Confidence: ConfidenceEmail,
		Entities:   map[string]string{"email": addr},
		Parameters: map[string]string{
			"to":      addr,
			"subject": subject,
			"body":    body,
		},
	}
}

// deriveSubjectBody splits the text following the address into subject and
// body. "subject" as a literal word splits the text around it; otherwise the
// trailing clause becomes the body and the subject is a truncation of it.
func deriveSubjectBody(after string) (subject, body string) {
	after = trimConnectors(after)

	if idx := strings.Index(strings.ToLower(after), "subject"); idx >= 0 {
		body = strings.TrimSpace(after[:idx])
		subject = strings.TrimSpace(strings.TrimLeft(after[idx+len("subject"):], ": -"))
		if body == "" {
			body = subject
		}
		return subject, body
	}

	body = after
	if body == "" {
		return "(no subject)", ""
	}
	subject = body
	if len(subject) > MaxSubjectLen {
		subject = subject[:MaxSubjectLen] + "..."
	}
	return subject, body
}

func matchSetReminder(original, lower string) *intent.Result {
	if !strings.Contains(lower, "remind me") && !reminderRe.MatchString(original) {
		return nil
	}

	timeText := extractTimeText(original)

	var task string
	if m := reminderTask.FindStringSubmatch(original); m != nil {
		task = m[1]
	} else if m := reminderColon.FindStringSubmatch(original); m != nil {
		task = m[1]
	}
	task = stripTimeText(task)

	return &intent.Result{
		Confidence: ConfidenceReminder,
		Entities:   map[string]string{"time_text": timeText},
		Parameters: map[string]string{
			"reminder": task,
			"time":     timeText,
		},
	}
}

func matchCreateEvent(original, lower string) *intent.Result {
	if !createVerbRe.MatchString(original) && !createNounRe.MatchString(original) {
		return nil
	}
	// "reschedule my meeting to tomorrow" satisfies the noun+time pattern but
	// belongs to the reschedule rule below.
	if strings.Contains(lower, "reschedule") || rescheduleNounRe.MatchString(original) {
		return nil
	}

	timeText := extractTimeText(original)
	params := map[string]string{
		"title": extractTitle(original),
		// Both aliases populated on purpose; the dispatcher probes either.
		"time":      timeText,
		"startTime": timeText,
	}
	if d := extractDuration(original); d > 0 {
		params["duration"] = strconv.Itoa(d)
	}
	if attendees := emailRe.FindAllString(original, -1); len(attendees) > 0 {
		params["attendees"] = strings.Join(attendees, ",")
	}

	return &intent.Result{
		Confidence: ConfidenceCreateEvent,
		Entities:   map[string]string{"time_text": timeText},
		Parameters: params,
	}
}

// matchReschedule fires on reschedule/move/change near an event noun. The
// event identifier may legitimately be absent; the dispatcher must then ask
// the user to clarify rather than guessing.
func matchReschedule(original, lower string) *intent.Result {
	if !strings.Contains(lower, "reschedule") && !rescheduleNounRe.MatchString(original) {
		return nil
	}

	timeText := extractTimeText(original)
	return &intent.Result{
		Confidence: ConfidenceReschedule,
		Entities:   map[string]string{"time_text": timeText},
		Parameters: map[string]string{
			"eventId": extractEventID(original),
			"newTime": timeText,
			"time":    timeText,
		},
	}
}

func matchCheckSchedule(original, lower string) *intent.Result {
	if !scheduleAskRe.MatchString(original) {
		return nil
	}

	day := "today"
	if d := findDayWord(lower); d != "" {
		day = d
	}

	return &intent.Result{
		Confidence: ConfidenceCheckSchedule,
		Entities:   map[string]string{"day": day},
		Parameters: map[string]string{"day": day},
	}
}

// matchCheckAvailability disambiguates which fragment is the time and which
// is the day: digits or am/pm markers read as a clock time, membership in the
// weekday set reads as a day.
func matchCheckAvailability(original, lower string) *intent.Result {
	if !availabilityRe.MatchString(original) {
		return nil
	}

	timeText := ""
	if tt := extractTimeText(original); tt != "" && looksLikeClockTime(tt) {
		timeText = tt
	}
	day := findDayWord(lower)
	if day == "" {
		day = "today"
	}

	return &intent.Result{
		Confidence: ConfidenceCheckAvailability,
		Entities:   map[string]string{"time_text": timeText, "day": day},
		Parameters: map[string]string{
			"time": timeText,
			"day":  day,
		},
	}
}

func matchCheckConflicts(original, lower string) *intent.Result {
	if !strings.Contains(lower, "conflict") {
		return nil
	}

	timeText := extractTimeText(original)
	day := findDayWord(lower)
	if day == "" {
		day = "today"
	}

	return &intent.Result{
		Confidence: ConfidenceCheckConflicts,
		Entities:   map[string]string{"time_text": timeText, "day": day},
		Parameters: map[string]string{
			"time": timeText,
			"day":  day,
		},
	}
}

func matchFindTime(original, lower string) *intent.Result {
	if !findTimeRe.MatchString(original) {
		return nil
	}

	params := map[string]string{}
	if d := extractDuration(original); d > 0 {
		params["duration"] = strconv.Itoa(d)
	}
	if day := findDayWord(lower); day != "" {
		params["day"] = day
	}

	return &intent.Result{
		Confidence: ConfidenceFindTime,
		Parameters: params,
	}
}

func matchSendSMS(original, lower string) *intent.Result {
	number := extractPhone(original)
	if number == "" || !smsVerbRe.MatchString(lower) {
		return nil
	}

	body := trimConnectors(afterToken(original, number))

	return &intent.Result{
		Confidence: ConfidenceSendSMS,
		Entities:   map[string]string{"phone": number},
		Parameters: map[string]string{
			"to":      number,
			"message": body,
		},
	}
}

func matchMakeCall(original, lower string) *intent.Result {
	number := extractPhone(original)
	if number == "" || !callVerbRe.MatchString(lower) {
		return nil
	}

	return &intent.Result{
		Confidence: ConfidenceMakeCall,
		Entities:   map[string]string{"phone": number},
		Parameters: map[string]string{"to": number},
	}
}

// afterToken returns the trimmed text following the first occurrence of token.
func afterToken(original, token string) string {
	idx := strings.Index(original, token)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(original[idx+len(token):], " ,.:;-"))
}

// trimConnectors drops a leading connector word ("about", "saying", ...).
func trimConnectors(s string) string {
	lower := strings.ToLower(s)
	for _, c := range leadingConnectors {
		if strings.HasPrefix(lower, c) {
			return strings.TrimSpace(s[len(c):])
		}
	}
	return strings.TrimSpace(s)
}

// findDayWord returns the first day reference in the lowered message.
func findDayWord(lower string) string {
	for _, w := range append([]string{"today", "tomorrow"}, weekdayNames...) {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return ""
}

var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
