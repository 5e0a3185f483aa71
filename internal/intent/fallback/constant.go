package fallback

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.fallback.Classify"
)

// Classifier prompts
const (
	PromptClassifySystem = `You are an intent classifier for a personal assistant. Analyze the message and determine the user's intent.

Message: "%s"

Possible intents:
1. send_email: Send an email to someone
2. set_reminder: Set a reminder for a task
3. create_event: Schedule a meeting or calendar event
4. reschedule: Move an existing event to a new time
5. check_schedule: Ask what is on the calendar for a day
6. check_availability: Ask whether a time or day is free
7. check_conflicts: Ask whether events overlap
8. find_time: Ask for a good open slot
9. send_sms: Send a text message to a phone number
10. make_call: Place a phone call
11. general_chat: Greetings, questions, ordinary conversation

Return JSON with this format:
{
  "intent": "send_email|set_reminder|create_event|reschedule|check_schedule|check_availability|check_conflicts|find_time|send_sms|make_call|general_chat",
  "confidence": 0.0-1.0,
  "parameters": {"to": "...", "time": "...", "title": "..."}
}

Only include parameters you can extract from the message. Return ONLY the JSON object, no markdown, no explanation.`

	PromptHistoryPrefix = "Recent conversation:\n"
)

// Classifier configuration
const (
	ClassifyTemperature = 0.1
	ClassifyMaxTokens   = 512

	// FallbackConfidence is used when the LLM answer cannot be trusted.
	FallbackConfidence = 0.5
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to general_chat"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to general_chat"
	ErrMsgUnknownIntent   = "Unknown intent name, falling back to general_chat"
)
