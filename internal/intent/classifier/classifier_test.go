package classifier_test

import (
	"strings"
	"testing"

	"conversational-assistant/internal/intent"
	"conversational-assistant/internal/intent/classifier"
)

func TestClassify_SendEmail(t *testing.T) {
	c := classifier.New()

	res := c.Classify("Send email to john@example.com about the report")

	if res.Intent != intent.IntentSendEmail {
		t.Fatalf("expected send_email, got %s", res.Intent)
	}
	if res.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %v", res.Confidence)
	}
	if res.Parameters["to"] != "john@example.com" {
		t.Errorf("expected to=john@example.com, got %q", res.Parameters["to"])
	}
	if !strings.Contains(res.Parameters["body"], "the report") {
		t.Errorf("expected body to contain 'the report', got %q", res.Parameters["body"])
	}
	if res.NeedsAI {
		t.Errorf("rule match must not set NeedsAI")
	}
}

func TestClassify_EmailGate(t *testing.T) {
	c := classifier.New()

	// Address alone, no send verb: must NOT classify as send_email.
	res := c.Classify("my address is john@example.com")

	if res.Intent == intent.IntentSendEmail {
		t.Fatalf("address without a send verb must not classify as send_email")
	}
	if res.Intent != intent.IntentGeneralChat {
		t.Errorf("expected fall-through to general_chat, got %s", res.Intent)
	}
	if !res.NeedsAI {
		t.Errorf("expected NeedsAI=true for unmatched message")
	}
}

func TestClassify_EmailSubjectSplit(t *testing.T) {
	c := classifier.New()

	res := c.Classify("email john@example.com quarterly numbers subject Q3 Report")

	if res.Intent != intent.IntentSendEmail {
		t.Fatalf("expected send_email, got %s", res.Intent)
	}
	if res.Parameters["subject"] != "Q3 Report" {
		t.Errorf("expected subject 'Q3 Report', got %q", res.Parameters["subject"])
	}
	if res.Parameters["body"] != "quarterly numbers" {
		t.Errorf("expected body 'quarterly numbers', got %q", res.Parameters["body"])
	}
}

func TestClassify_EmailSubjectTruncation(t *testing.T) {
	c := classifier.New()

	long := "send email to a@b.com about " + strings.Repeat("x", 50)
	res := c.Classify(long)

	if res.Intent != intent.IntentSendEmail {
		t.Fatalf("expected send_email, got %s", res.Intent)
	}
	subject := res.Parameters["subject"]
	if !strings.HasSuffix(subject, "...") {
		t.Errorf("expected truncated subject with ellipsis, got %q", subject)
	}
	if len(subject) != 33 { // 30 chars + "..."
		t.Errorf("expected 33-char subject, got %d", len(subject))
	}
}

func TestClassify_SetReminder(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		name         string
		message      string
		wantTime     string
		wantReminder string
	}{
		{
			name:         "relative time before task",
			message:      "remind me in 20 minutes to call mom",
			wantTime:     "in 20 minutes",
			wantReminder: "call mom",
		},
		{
			name:         "relative time after task",
			message:      "remind me to call mom in 20 minutes",
			wantTime:     "in 20 minutes",
			wantReminder: "call mom",
		},
		{
			name:         "day plus clock time",
			message:      "set a reminder to submit the form tomorrow at 5pm",
			wantTime:     "tomorrow at 5pm",
			wantReminder: "submit the form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.message)
			if res.Intent != intent.IntentSetReminder {
				t.Fatalf("expected set_reminder, got %s", res.Intent)
			}
			if res.Confidence != 0.9 {
				t.Errorf("expected confidence 0.9, got %v", res.Confidence)
			}
			if res.Parameters["time"] != tt.wantTime {
				t.Errorf("expected time %q, got %q", tt.wantTime, res.Parameters["time"])
			}
			if !strings.Contains(res.Parameters["reminder"], tt.wantReminder) {
				t.Errorf("expected reminder containing %q, got %q", tt.wantReminder, res.Parameters["reminder"])
			}
		})
	}
}

func TestClassify_CreateEvent(t *testing.T) {
	c := classifier.New()

	res := c.Classify("Schedule a meeting about the product launch tomorrow at 5pm")

	if res.Intent != intent.IntentCreateEvent {
		t.Fatalf("expected create_event, got %s", res.Intent)
	}
	if res.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", res.Confidence)
	}
	if res.Parameters["title"] != "the product launch" {
		t.Errorf("expected title 'the product launch', got %q", res.Parameters["title"])
	}
	if res.Parameters["time"] != "tomorrow at 5pm" {
		t.Errorf("expected time 'tomorrow at 5pm', got %q", res.Parameters["time"])
	}
	// Both aliases populated intentionally.
	if res.Parameters["startTime"] != res.Parameters["time"] {
		t.Errorf("expected startTime alias to match time")
	}
}

func TestClassify_CreateEventDefaultTitle(t *testing.T) {
	c := classifier.New()

	res := c.Classify("book a meeting tomorrow at 10am")

	if res.Intent != intent.IntentCreateEvent {
		t.Fatalf("expected create_event, got %s", res.Intent)
	}
	if res.Parameters["title"] != "Meeting" {
		t.Errorf("expected default title 'Meeting', got %q", res.Parameters["title"])
	}
}

func TestClassify_PriorityOrdering(t *testing.T) {
	c := classifier.New()

	// Matches both create_event and (loosely) schedule-query phrasing; the
	// higher-priority create_event branch must win.
	res := c.Classify("schedule meeting tomorrow at 5pm")

	if res.Intent != intent.IntentCreateEvent {
		t.Fatalf("expected create_event to win priority, got %s", res.Intent)
	}
}

func TestClassify_Reschedule(t *testing.T) {
	c := classifier.New()

	t.Run("with numeric id", func(t *testing.T) {
		res := c.Classify("reschedule event 42 to tomorrow at 3pm")
		if res.Intent != intent.IntentReschedule {
			t.Fatalf("expected reschedule, got %s", res.Intent)
		}
		if res.Parameters["eventId"] != "42" {
			t.Errorf("expected eventId 42, got %q", res.Parameters["eventId"])
		}
		if res.Parameters["newTime"] != "tomorrow at 3pm" {
			t.Errorf("expected newTime 'tomorrow at 3pm', got %q", res.Parameters["newTime"])
		}
	})

	t.Run("with uuid", func(t *testing.T) {
		res := c.Classify("move my meeting 0f8fad5b-d9cb-469f-a165-70867728950e to friday at 2pm")
		if res.Intent != intent.IntentReschedule {
			t.Fatalf("expected reschedule, got %s", res.Intent)
		}
		if res.Parameters["eventId"] != "0f8fad5b-d9cb-469f-a165-70867728950e" {
			t.Errorf("expected uuid eventId, got %q", res.Parameters["eventId"])
		}
	})

	t.Run("missing id left empty for clarification", func(t *testing.T) {
		res := c.Classify("reschedule my meeting to tomorrow")
		if res.Intent != intent.IntentReschedule {
			t.Fatalf("expected reschedule, got %s", res.Intent)
		}
		if res.Parameters["eventId"] != "" {
			t.Errorf("expected empty eventId, got %q", res.Parameters["eventId"])
		}
	})
}

func TestClassify_CheckSchedule(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		message string
		wantDay string
	}{
		{message: "What's my schedule for tomorrow?", wantDay: "tomorrow"},
		{message: "how's my schedule looking", wantDay: "today"},
		{message: "show me my calendar for friday", wantDay: "friday"},
	}

	for _, tt := range tests {
		res := c.Classify(tt.message)
		if res.Intent != intent.IntentCheckSchedule {
			t.Fatalf("Classify(%q): expected check_schedule, got %s", tt.message, res.Intent)
		}
		if res.Parameters["day"] != tt.wantDay {
			t.Errorf("Classify(%q): expected day %q, got %q", tt.message, tt.wantDay, res.Parameters["day"])
		}
	}
}

func TestClassify_CheckAvailability(t *testing.T) {
	c := classifier.New()

	res := c.Classify("am I free at 3pm tomorrow?")

	if res.Intent != intent.IntentCheckAvailability {
		t.Fatalf("expected check_availability, got %s", res.Intent)
	}
	if !strings.Contains(res.Parameters["time"], "3pm") {
		t.Errorf("expected a clock time capture, got %q", res.Parameters["time"])
	}
	if res.Parameters["day"] != "tomorrow" {
		t.Errorf("expected day 'tomorrow', got %q", res.Parameters["day"])
	}
}

func TestClassify_CheckConflicts(t *testing.T) {
	c := classifier.New()

	res := c.Classify("check conflicts at 2pm tomorrow")

	if res.Intent != intent.IntentCheckConflicts {
		t.Fatalf("expected check_conflicts, got %s", res.Intent)
	}
	if res.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", res.Confidence)
	}
	if res.Parameters["day"] != "tomorrow" {
		t.Errorf("expected day=tomorrow, got %q", res.Parameters["day"])
	}

	res = c.Classify("do I have any conflicts tomorrow?")
	if res.Intent != intent.IntentCheckConflicts {
		t.Fatalf("expected check_conflicts, got %s", res.Intent)
	}
	if res.Parameters["day"] != "tomorrow" {
		t.Errorf("expected day=tomorrow, got %q", res.Parameters["day"])
	}

	res = c.Classify("any conflicts on my calendar?")
	if res.Parameters["day"] != "today" {
		t.Errorf("expected day to default to today, got %q", res.Parameters["day"])
	}
}

func TestClassify_FindTime(t *testing.T) {
	c := classifier.New()

	res := c.Classify("find the best time for a 30 minute review")

	if res.Intent != intent.IntentFindTime {
		t.Fatalf("expected find_time, got %s", res.Intent)
	}
	if res.Confidence != 0.8 {
		t.Errorf("expected confidence 0.8, got %v", res.Confidence)
	}
	if res.Parameters["duration"] != "30" {
		t.Errorf("expected duration 30, got %q", res.Parameters["duration"])
	}
}

func TestClassify_SendSMS(t *testing.T) {
	c := classifier.New()

	res := c.Classify("text 9876543210 saying running 10 mins late")

	if res.Intent != intent.IntentSendSMS {
		t.Fatalf("expected send_sms, got %s", res.Intent)
	}
	if res.Parameters["to"] != "9876543210" {
		t.Errorf("expected to=9876543210, got %q", res.Parameters["to"])
	}
	if !strings.Contains(res.Parameters["message"], "running") {
		t.Errorf("expected message body, got %q", res.Parameters["message"])
	}
}

func TestClassify_MakeCall(t *testing.T) {
	c := classifier.New()

	res := c.Classify("call +919876543210")

	if res.Intent != intent.IntentMakeCall {
		t.Fatalf("expected make_call, got %s", res.Intent)
	}
	if res.Parameters["to"] != "+919876543210" {
		t.Errorf("expected to=+919876543210, got %q", res.Parameters["to"])
	}
}

func TestClassify_GeneralChatFallback(t *testing.T) {
	c := classifier.New()

	res := c.Classify("what do you think about quantum computing?")

	if res.Intent != intent.IntentGeneralChat {
		t.Fatalf("expected general_chat, got %s", res.Intent)
	}
	if !res.NeedsAI {
		t.Errorf("expected NeedsAI=true")
	}
	if res.Confidence != 0.3 {
		t.Errorf("expected confidence 0.3, got %v", res.Confidence)
	}
}

func TestClassify_DurationRange(t *testing.T) {
	c := classifier.New()

	res := c.Classify("schedule a meeting from 30 to 90 minutes tomorrow")

	if res.Intent != intent.IntentCreateEvent {
		t.Fatalf("expected create_event, got %s", res.Intent)
	}
	// Range yields the absolute difference.
	if res.Parameters["duration"] != "60" {
		t.Errorf("expected duration 60, got %q", res.Parameters["duration"])
	}
}
