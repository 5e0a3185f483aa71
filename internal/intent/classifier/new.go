package classifier

import (
	"strings"

	"conversational-assistant/internal/intent"
)

// matchFunc inspects one message and returns a Result when its intent family
// matches, or nil to let the next rule try. original keeps the user's casing
// (addresses, proper nouns); lower is for keyword tests.
type matchFunc func(original, lower string) *intent.Result

// rule pairs an intent with its matcher. Rules are evaluated top to bottom
// and the first match wins, so slice order is load-bearing: a message with
// both a time and the word "meeting" must hit create_event before the looser
// check_schedule pattern gets a chance.
type rule struct {
	intent intent.Intent
	match  matchFunc
}

// Classifier is the rule-based intent classifier. Pure and synchronous: no
// I/O, no clock reads, safe for concurrent use.
type Classifier struct {
	rules []rule
}

// New creates the classifier with the fixed priority order.
func New() *Classifier {
	return &Classifier{
		rules: []rule{
			{intent.IntentSendEmail, matchSendEmail},
			{intent.IntentSetReminder, matchSetReminder},
			{intent.IntentCreateEvent, matchCreateEvent},
			{intent.IntentReschedule, matchReschedule},
			{intent.IntentCheckSchedule, matchCheckSchedule},
			{intent.IntentCheckAvailability, matchCheckAvailability},
			{intent.IntentCheckConflicts, matchCheckConflicts},
			{intent.IntentFindTime, matchFindTime},
			{intent.IntentSendSMS, matchSendSMS},
			{intent.IntentMakeCall, matchMakeCall},
		},
	}
}

// Classify parses one message into an intent Result. When no rule matches it
// returns general_chat with NeedsAI set, the escape valve to the
// LLM fallback classifier.
func (c *Classifier) Classify(message string) intent.Result {
	original := strings.TrimSpace(message)
	lower := strings.ToLower(original)

	for _, r := range c.rules {
		if res := r.match(original, lower); res != nil {
			res.Intent = r.intent
			return *res
		}
	}

	return intent.Result{
		Intent:     intent.IntentGeneralChat,
		Confidence: ConfidenceGeneralChat,
		NeedsAI:    true,
	}
}
