package intent

// Intent is the classified purpose of one user message.
type Intent string

const (
	IntentSendEmail         Intent = "send_email"
	IntentSetReminder       Intent = "set_reminder"
	IntentCreateEvent       Intent = "create_event"
	IntentReschedule        Intent = "reschedule"
	IntentCheckSchedule     Intent = "check_schedule"
	IntentCheckAvailability Intent = "check_availability"
	IntentCheckConflicts    Intent = "check_conflicts"
	IntentFindTime          Intent = "find_time"
	IntentSendSMS           Intent = "send_sms"
	IntentMakeCall          Intent = "make_call"
	IntentGeneralChat       Intent = "general_chat"
)

// Valid reports whether s names one of the known intents.
func (s Intent) Valid() bool {
	switch s {
	case IntentSendEmail, IntentSetReminder, IntentCreateEvent, IntentReschedule,
		IntentCheckSchedule, IntentCheckAvailability, IntentCheckConflicts,
		IntentFindTime, IntentSendSMS, IntentMakeCall, IntentGeneralChat:
		return true
	}
	return false
}

// Result is the parsed meaning of one user utterance. Created fresh per
// message, immutable once returned, never persisted.
type Result struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`

	// Entities are raw extracted fragments (provenance, not normalized).
	Entities map[string]string `json:"entities,omitempty"`

	// Parameters are action-ready fields for the dispatcher. Field names are
	// action-family-specific and intentionally overlap (both "time" and
	// "startTime" may be set) so the dispatcher can probe aliases.
	Parameters map[string]string `json:"parameters,omitempty"`

	// NeedsAI means no rule matched; confidence is definitionally low and the
	// message should go to the LLM fallback classifier.
	NeedsAI bool `json:"needs_ai"`
}

// Param returns the first non-empty value among the given parameter keys.
func (r Result) Param(keys ...string) string {
	for _, k := range keys {
		if v := r.Parameters[k]; v != "" {
			return v
		}
	}
	return ""
}
